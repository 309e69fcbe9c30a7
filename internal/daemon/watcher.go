// Package daemon keeps the generated site configuration up to date while the
// site build runs in development mode.
package daemon

import (
	"context"
	"log/slog"
	"path/filepath"
	"slices"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	ferrors "github.com/wirelineio/wns-docs/internal/foundation/errors"
	"github.com/wirelineio/wns-docs/internal/logfields"
)

// DefaultDebounce coalesces the burst of events editors emit on save.
const DefaultDebounce = 500 * time.Millisecond

// RegenerateFunc rebuilds the output. Errors are logged and counted; the
// watcher keeps running.
type RegenerateFunc func(ctx context.Context) error

// Watcher regenerates output when any of a set of files changes.
type Watcher struct {
	mu    sync.RWMutex
	files map[string]struct{} // absolute paths
	dirs  map[string]struct{}

	regenerate RegenerateFunc
	debounce   time.Duration
	metrics    *Metrics
	watcher    *fsnotify.Watcher

	closeOnce sync.Once
}

// Option configures a Watcher.
type Option func(*Watcher)

// WithDebounce sets the quiet period before regenerating.
func WithDebounce(d time.Duration) Option {
	return func(w *Watcher) { w.debounce = d }
}

// WithMetrics records regenerations in m.
func WithMetrics(m *Metrics) Option {
	return func(w *Watcher) { w.metrics = m }
}

// NewWatcher watches paths. The containing directories are watched rather
// than the files themselves so atomic replace-on-save is observed.
func NewWatcher(paths []string, fn RegenerateFunc, opts ...Option) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, ferrors.WrapError(err, ferrors.CategoryRuntime, "create file watcher").Build()
	}
	w := &Watcher{
		files:      map[string]struct{}{},
		dirs:       map[string]struct{}{},
		regenerate: fn,
		debounce:   DefaultDebounce,
		watcher:    fsw,
	}
	for _, opt := range opts {
		opt(w)
	}
	if err := w.Watch(paths); err != nil {
		_ = fsw.Close()
		return nil, err
	}
	return w, nil
}

// Watch replaces the watched file set. Directories no longer needed are
// released; on error the previous set stays in effect.
func (w *Watcher) Watch(paths []string) error {
	files := make(map[string]struct{}, len(paths))
	dirs := map[string]struct{}{}
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			return ferrors.WrapError(err, ferrors.CategoryRuntime, "resolve watch path").
				WithContext("path", p).Build()
		}
		files[abs] = struct{}{}
		dirs[filepath.Dir(abs)] = struct{}{}
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	var added []string
	for dir := range dirs {
		if _, ok := w.dirs[dir]; ok {
			continue
		}
		if err := w.watcher.Add(dir); err != nil {
			for _, d := range added {
				_ = w.watcher.Remove(d)
			}
			return ferrors.WrapError(err, ferrors.CategoryRuntime, "watch directory").
				WithContext("path", dir).Build()
		}
		added = append(added, dir)
	}
	for dir := range w.dirs {
		if _, ok := dirs[dir]; !ok {
			_ = w.watcher.Remove(dir)
		}
	}
	w.files, w.dirs = files, dirs
	return nil
}

// Files lists the watched files.
func (w *Watcher) Files() []string {
	w.mu.RLock()
	defer w.mu.RUnlock()
	out := make([]string, 0, len(w.files))
	for f := range w.files {
		out = append(out, f)
	}
	slices.Sort(out)
	return out
}

// Run processes events until ctx is canceled. Regenerations never overlap.
func (w *Watcher) Run(ctx context.Context) error {
	defer func() { _ = w.Close() }()

	timer := time.NewTimer(time.Hour)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if !w.relevant(event) {
				continue
			}
			slog.Debug("Watched file changed", logfields.Path(event.Name), logfields.Event(event.Op.String()))
			if w.metrics != nil {
				w.metrics.events.Inc()
			}
			timer.Reset(w.debounce)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			slog.Error("File watcher error", logfields.Error(err))
		case <-timer.C:
			w.run(ctx)
		}
	}
}

func (w *Watcher) relevant(event fsnotify.Event) bool {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
		return false
	}
	abs, err := filepath.Abs(event.Name)
	if err != nil {
		return false
	}
	w.mu.RLock()
	defer w.mu.RUnlock()
	_, ok := w.files[abs]
	return ok
}

func (w *Watcher) run(ctx context.Context) {
	start := time.Now()
	err := w.regenerate(ctx)
	if w.metrics != nil {
		w.metrics.observe(err, time.Since(start))
	}
	if err != nil {
		// the previous output stays in place
		werr := ferrors.WrapError(err, ferrors.GetCategory(err), "regeneration failed, keeping previous output").
			Warning().Build()
		slog.Log(ctx, ferrors.LogLevel(werr), werr.Message(),
			slog.String("category", string(werr.Category())), logfields.Error(err))
		return
	}
	slog.Debug("Regeneration completed", logfields.DurationMS(float64(time.Since(start).Microseconds())/1000))
}

// Close stops the underlying file watcher.
func (w *Watcher) Close() error {
	var err error
	w.closeOnce.Do(func() { err = w.watcher.Close() })
	return err
}
