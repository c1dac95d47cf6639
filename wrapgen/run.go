package wrapgen

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/teranos/wrapgen/am"
	"github.com/teranos/wrapgen/errors"
	"github.com/teranos/wrapgen/logger"
)

// Options configures one generation run
type Options struct {
	// Dir is the module directory
	Dir      string
	Discover DiscoverOptions
	// OutputPath is the generated file
	OutputPath string
	Generator  Generator
	// PostGenerate is a shell-quoted command run with the output path
	// appended once the file is written. Empty disables the hook.
	PostGenerate string
	// Report receives the one-line summary of a successful run
	Report io.Writer
}

// Summary describes a finished run
type Summary struct {
	Modules   int
	Functions int
	Output    string
}

func (s *Summary) String() string {
	return fmt.Sprintf("Generated client for %d API functions", s.Functions)
}

// Generate discovers, parses and synthesizes in memory. Nothing is written.
func Generate(opts Options) ([]byte, *Summary, error) {
	if opts.Generator == nil {
		return nil, nil, errors.New("no generator configured")
	}

	start := time.Now()

	modules, err := DiscoverModules(opts.Dir, opts.Discover)
	if err != nil {
		return nil, nil, err
	}

	functions, err := ParseModules(opts.Dir, modules, ParseOptions{Extension: opts.Discover.Extension})
	if err != nil {
		return nil, nil, err
	}

	src, err := opts.Generator.Generate(functions)
	if err != nil {
		return nil, nil, err
	}

	if logger.ShouldOutput(logger.Verbosity, logger.OutputTiming) {
		logger.Debugw("Client synthesized",
			logger.FieldModules, len(modules),
			logger.FieldFunctions, len(functions),
			logger.FieldDurationMS, time.Since(start).Milliseconds())
	}

	return src, &Summary{
		Modules:   len(modules),
		Functions: len(functions),
		Output:    opts.OutputPath,
	}, nil
}

// Run generates the client and replaces the file at opts.OutputPath. A
// failed run leaves the previous file untouched.
func Run(ctx context.Context, opts Options) (*Summary, error) {
	if opts.OutputPath == "" {
		return nil, errors.Config("no output path configured")
	}

	src, summary, err := Generate(opts)
	if err != nil {
		return nil, err
	}

	if err := WriteFileAtomic(opts.OutputPath, src); err != nil {
		return nil, err
	}
	if logger.ShouldOutput(logger.Verbosity, logger.OutputWrites) {
		logger.Infow("Wrote client",
			logger.FieldPath, opts.OutputPath,
			logger.FieldFunctions, summary.Functions)
	}

	if opts.PostGenerate != "" {
		if err := RunHook(ctx, opts.PostGenerate, opts.OutputPath); err != nil {
			return summary, err
		}
	}

	if opts.Report != nil {
		fmt.Fprintln(opts.Report, summary.String())
	}
	return summary, nil
}

// WriteFileAtomic writes data next to path and renames it into place, so
// readers never see a partial file.
func WriteFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, am.DefaultDirPermissions); err != nil {
		return errors.Filesystem(err, "failed to create output directory %s", dir)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return errors.Filesystem(err, "failed to create temporary file in %s", dir)
	}
	tmpPath := tmp.Name()

	cleanup := func() {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
	}

	if _, err := tmp.Write(data); err != nil {
		cleanup()
		return errors.Filesystem(err, "failed to write %s", tmpPath)
	}
	if err := tmp.Sync(); err != nil {
		cleanup()
		return errors.Filesystem(err, "failed to sync %s", tmpPath)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return errors.Filesystem(err, "failed to close %s", tmpPath)
	}
	if err := os.Chmod(tmpPath, am.DefaultFilePermissions); err != nil {
		_ = os.Remove(tmpPath)
		return errors.Filesystem(err, "failed to set permissions on %s", tmpPath)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return errors.Filesystem(err, "failed to replace %s", path)
	}
	return nil
}
