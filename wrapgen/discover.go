package wrapgen

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/teranos/wrapgen/errors"
	"github.com/teranos/wrapgen/logger"
)

// DiscoverOptions controls which directory entries count as API modules
type DiscoverOptions struct {
	// Extension is the module source file extension including the dot
	Extension string
	// Reserved names are never modules (aggregated exports, shared configuration)
	Reserved []string
}

// DiscoverModules lists dir and returns the names of every API module in
// it. A module is a package directory directly below dir holding at least
// one source file. Plain files, hidden and "_" directories, testdata, reserved
// names and directories without source files are skipped. Names are
// returned sorted.
func DiscoverModules(dir string, opts DiscoverOptions) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.Filesystem(err, "failed to read module directory %s", dir)
	}

	reserved := make(map[string]bool, len(opts.Reserved))
	for _, name := range opts.Reserved {
		reserved[name] = true
	}

	var modules []string
	for _, entry := range entries {
		name := entry.Name()
		if ignoredName(name) || name == "testdata" || reserved[name] || !isDir(dir, entry) {
			continue
		}

		files, err := SourceFiles(filepath.Join(dir, name), opts.Extension)
		if err != nil {
			return nil, err
		}
		if len(files) == 0 {
			if logger.ShouldOutput(logger.Verbosity, logger.OutputExclusions) {
				logger.Debugw("Directory without source files is not a module",
					logger.FieldDir, name)
			}
			continue
		}
		modules = append(modules, name)
	}

	sort.Strings(modules)
	return modules, nil
}

// SourceFiles returns the sorted names of the source files in a module
// directory: regular files (or links to them) with the extension, other
// than tests, hidden and "_" files.
func SourceFiles(dir, ext string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.Filesystem(err, "failed to read module %s", filepath.Base(dir))
	}

	var files []string
	for _, entry := range entries {
		name := entry.Name()
		if ignoredName(name) || !strings.HasSuffix(name, ext) || strings.HasSuffix(name, "_test.go") {
			continue
		}
		if !isRegular(dir, entry) {
			continue
		}
		files = append(files, name)
	}
	sort.Strings(files)
	return files, nil
}

// ignoredName applies the go tool's rule: names starting with "." or "_"
// are not part of a package.
func ignoredName(name string) bool {
	return name == "" || strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_")
}

func isDir(dir string, entry os.DirEntry) bool {
	return entryMode(dir, entry).IsDir()
}

func isRegular(dir string, entry os.DirEntry) bool {
	return entryMode(dir, entry).IsRegular()
}

// entryMode follows symlinks; a dangling link has no type
func entryMode(dir string, entry os.DirEntry) os.FileMode {
	mode := entry.Type()
	if mode&os.ModeSymlink == 0 {
		return mode
	}
	info, err := os.Stat(filepath.Join(dir, entry.Name()))
	if err != nil {
		return os.ModeSymlink
	}
	return info.Mode()
}
