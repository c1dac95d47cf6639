package wrapgen

import (
	"go/ast"
	"go/parser"
	"go/token"
	"os"
	"path"
	"path/filepath"
	"strconv"
	"strings"
	"unicode"

	"github.com/teranos/wrapgen/errors"
)

// Module is one parsed API module: a package directory below the module root
type Module struct {
	// Name is the module name, the directory name
	Name string
	// Dir is the directory that was parsed
	Dir string
	// Package is the package clause shared by every file
	Package string
	// Files are the module's source files in file name order
	Files []*SourceFile
	Fset  *token.FileSet
}

// SourceFile is one parsed file of a module. Imports are file scoped, so
// every file keeps its own table.
type SourceFile struct {
	Path string
	File *ast.File
	// Imports maps local package names to import paths.
	// Blank and dot imports are not listed.
	Imports map[string]string

	// contextNames are the local names of the "context" import
	contextNames map[string]bool
	// dotContext is set when "context" is dot-imported
	dotContext bool
}

// ParseModule reads and parses every source file of root/<module>.
// A read failure is a filesystem error. Any syntax error, or files that
// disagree on the package clause, is a parse failure naming the module.
func ParseModule(fset *token.FileSet, root, module, ext string) (*Module, error) {
	dir := filepath.Join(root, module)

	names, err := SourceFiles(dir, ext)
	if err != nil {
		return nil, err
	}
	if len(names) == 0 {
		return nil, errors.Filesystem(
			errors.Newf("no %s files in %s", ext, dir),
			"failed to read module %s", module)
	}

	mod := &Module{Name: module, Dir: dir, Fset: fset}
	for _, name := range names {
		path := filepath.Join(dir, name)

		src, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.Filesystem(err, "failed to read module %s", module)
		}

		file, err := parseSourceFile(fset, path, module, src)
		if err != nil {
			return nil, err
		}
		if err := mod.add(file); err != nil {
			return nil, err
		}
	}
	return mod, nil
}

// add appends file, enforcing one package clause per directory
func (m *Module) add(file *SourceFile) error {
	pkg := file.File.Name.Name
	if m.Package == "" {
		m.Package = pkg
	} else if pkg != m.Package {
		first := m.Files[0].Path
		return errors.WithHint(
			errors.Parse(
				errors.Newf("found packages %s (%s) and %s (%s)", m.Package, filepath.Base(first), pkg, filepath.Base(file.Path)),
				"failed to parse module %s", m.Name),
			"every file of a module directory must declare the same package",
		)
	}
	m.Files = append(m.Files, file)
	return nil
}

func parseSourceFile(fset *token.FileSet, path, module string, src []byte) (*SourceFile, error) {
	file, err := parser.ParseFile(fset, path, src, parser.ParseComments|parser.SkipObjectResolution)
	if err != nil {
		return nil, errors.WithHint(
			errors.Parse(err, "failed to parse module %s (%s)", module, path),
			"API modules must be valid Go; regenerate or fix the module before running wrapgen",
		)
	}

	sf := &SourceFile{
		Path:         path,
		File:         file,
		Imports:      make(map[string]string),
		contextNames: make(map[string]bool),
	}

	for _, spec := range file.Imports {
		importPath, err := strconv.Unquote(spec.Path.Value)
		if err != nil {
			continue
		}

		local := AssumedPackageName(importPath)
		if spec.Name != nil {
			local = spec.Name.Name
		}

		switch local {
		case "_":
			continue
		case ".":
			if importPath == "context" {
				sf.dotContext = true
			}
			continue
		}

		sf.Imports[local] = importPath
		if importPath == "context" {
			sf.contextNames[local] = true
		}
	}

	return sf, nil
}

// AssumedPackageName guesses the package name of an import path the way
// goimports does: the last element, without a major version suffix, a
// "go-" prefix or anything after the first non-identifier character.
func AssumedPackageName(importPath string) string {
	base := path.Base(importPath)

	if strings.HasPrefix(importPath, "gopkg.in/") {
		// gopkg.in/yaml.v3 -> yaml
		if i := strings.Index(base, ".v"); i > 0 {
			base = base[:i]
		}
	} else if isMajorVersion(base) {
		// github.com/Masterminds/semver/v3 -> semver
		if dir := path.Dir(importPath); dir != "." {
			base = path.Base(dir)
		}
	}

	base = strings.TrimPrefix(base, "go-")
	if i := strings.IndexFunc(base, func(r rune) bool {
		return !(unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_')
	}); i >= 0 {
		base = base[:i]
	}
	return base
}

func isMajorVersion(s string) bool {
	if len(s) < 2 || s[0] != 'v' {
		return false
	}
	for _, r := range s[1:] {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
