package wrapgen

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/teranos/wrapgen/errors"
	"github.com/teranos/wrapgen/logger"
)

// WatchOptions controls regeneration in watch mode
type WatchOptions struct {
	// Debounce collapses bursts of file events into one run
	Debounce time.Duration
	// MaxRunsPerMinute caps regenerations; zero means no cap
	MaxRunsPerMinute int
	// OnRun is called after every run, failed runs included
	OnRun func(*Summary, error)
}

// Watcher regenerates the client whenever a module source file changes
type Watcher struct {
	opts    Options
	wopts   WatchOptions
	fs      *fsnotify.Watcher
	limiter *rate.Limiter

	mu      sync.Mutex
	timer   *time.Timer
	trigger chan struct{}
}

// NewWatcher watches opts.Dir and every module directory below it. Call Run
// to start regenerating and Close when done.
func NewWatcher(opts Options, wopts WatchOptions) (*Watcher, error) {
	fs, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err, "failed to create file watcher")
	}
	if err := fs.Add(opts.Dir); err != nil {
		fs.Close()
		return nil, errors.Filesystem(err, "failed to watch %s", opts.Dir)
	}

	entries, err := os.ReadDir(opts.Dir)
	if err != nil {
		fs.Close()
		return nil, errors.Filesystem(err, "failed to read module directory %s", opts.Dir)
	}
	for _, entry := range entries {
		if ignoredName(entry.Name()) || !isDir(opts.Dir, entry) {
			continue
		}
		dir := filepath.Join(opts.Dir, entry.Name())
		if err := fs.Add(dir); err != nil {
			fs.Close()
			return nil, errors.Filesystem(err, "failed to watch %s", dir)
		}
	}

	limit := rate.Inf
	if wopts.MaxRunsPerMinute > 0 {
		limit = rate.Limit(float64(wopts.MaxRunsPerMinute) / 60.0)
	}

	return &Watcher{
		opts:    opts,
		wopts:   wopts,
		fs:      fs,
		limiter: rate.NewLimiter(limit, 1),
		trigger: make(chan struct{}, 1),
	}, nil
}

// Run generates once, then again after every debounced change, until ctx
// is cancelled. A failed run is reported and watching continues.
func (w *Watcher) Run(ctx context.Context) error {
	w.generate(ctx)

	for {
		select {
		case <-ctx.Done():
			w.stopTimer()
			return nil

		case event, ok := <-w.fs.Events:
			if !ok {
				return nil
			}
			if !w.relevant(event) {
				continue
			}
			w.follow(event)
			if logger.ShouldOutput(logger.Verbosity, logger.OutputProgress) {
				logger.Infow("Module change detected",
					logger.FieldFile, filepath.Base(event.Name),
					logger.FieldEvent, event.Op.String())
			}
			w.schedule()

		case err, ok := <-w.fs.Errors:
			if !ok {
				return nil
			}
			logger.Warnw("File watcher error", logger.FieldError, err)

		case <-w.trigger:
			if err := w.limiter.Wait(ctx); err != nil {
				return nil
			}
			w.generate(ctx)
		}
	}
}

// Close stops watching
func (w *Watcher) Close() error {
	w.stopTimer()
	return w.fs.Close()
}

// relevant keeps events on module directories and their source files,
// skipping the generated output when it lives below the watched directory.
func (w *Watcher) relevant(event fsnotify.Event) bool {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) &&
		!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
		return false
	}

	rel, err := filepath.Rel(w.opts.Dir, event.Name)
	if err != nil {
		return false
	}
	parts := strings.Split(filepath.ToSlash(rel), "/")
	for _, part := range parts {
		if ignoredName(part) {
			return false
		}
	}

	switch len(parts) {
	case 1:
		// A module directory appeared or went away. Plain files next to the
		// modules are not part of any package.
		if event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename) {
			return filepath.Ext(event.Name) == ""
		}
		info, err := os.Stat(event.Name)
		return err == nil && info.IsDir()
	case 2:
		name := parts[1]
		if !strings.HasSuffix(name, w.opts.Discover.Extension) || strings.HasSuffix(name, "_test.go") {
			return false
		}
		return !w.isOutput(event.Name)
	}
	return false
}

func (w *Watcher) isOutput(name string) bool {
	if w.opts.OutputPath == "" {
		return false
	}
	out, err := filepath.Abs(w.opts.OutputPath)
	if err != nil {
		return false
	}
	in, err := filepath.Abs(name)
	return err == nil && in == out
}

// follow starts watching a module directory created after startup
func (w *Watcher) follow(event fsnotify.Event) {
	if !event.Has(fsnotify.Create) || filepath.Dir(event.Name) != filepath.Clean(w.opts.Dir) {
		return
	}
	info, err := os.Stat(event.Name)
	if err != nil || !info.IsDir() {
		return
	}
	if err := w.fs.Add(event.Name); err != nil {
		logger.Warnw("Failed to watch new module directory",
			logger.FieldDir, event.Name,
			logger.FieldError, err)
	}
}

func (w *Watcher) schedule() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.wopts.Debounce, func() {
		select {
		case w.trigger <- struct{}{}:
		default:
			// a run is already pending
		}
	})
}

func (w *Watcher) stopTimer() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.timer != nil {
		w.timer.Stop()
		w.timer = nil
	}
}

func (w *Watcher) generate(ctx context.Context) {
	run := uuid.NewString()
	start := time.Now()

	summary, err := Run(ctx, w.opts)
	if err != nil {
		logger.Errorw("Generation failed",
			logger.FieldRun, run,
			logger.FieldError, err)
	} else if logger.ShouldOutput(logger.Verbosity, logger.OutputTiming) {
		logger.Debugw("Regenerated client",
			logger.FieldRun, run,
			logger.FieldFunctions, summary.Functions,
			logger.FieldDurationMS, time.Since(start).Milliseconds())
	}
	if w.wopts.OnRun != nil {
		w.wopts.OnRun(summary, err)
	}
}
