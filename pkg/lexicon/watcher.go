package lexicon

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher watches a rule file or directory for changes and triggers a
// repository reload. Events are debounced so editors that write in several
// steps cause one reload, not a storm.
type Watcher struct {
	watcher  *fsnotify.Watcher
	logger   *slog.Logger
	debounce *Debouncer
	path     string
}

// DefaultDebounceInterval is the wait after the last file event before a
// reload fires.
const DefaultDebounceInterval = 100 * time.Millisecond

// NewWatcher creates a watcher for the given path. A zero debounce interval
// uses the default.
func NewWatcher(path string, debounce time.Duration, logger *slog.Logger) (*Watcher, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if debounce <= 0 {
		debounce = DefaultDebounceInterval
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}

	return &Watcher{
		watcher:  fsw,
		logger:   logger.With("component", "lexicon.watcher"),
		debounce: NewDebouncer(debounce),
		path:     path,
	}, nil
}

// Watch blocks until the context is cancelled, invoking onReload after each
// debounced burst of file events.
func (w *Watcher) Watch(ctx context.Context, onReload func(context.Context) error) error {
	if err := w.watcher.Add(w.path); err != nil {
		return fmt.Errorf("failed to watch %q: %w", w.path, err)
	}
	defer w.watcher.Close()
	defer w.debounce.Stop()

	w.logger.Info("watching lexicon for changes", "path", w.path)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			w.logger.Debug("lexicon change detected", "file", event.Name, "op", event.Op.String())
			w.debounce.Trigger(func() {
				if err := onReload(ctx); err != nil {
					w.logger.Error("lexicon reload failed, keeping previous rules", "error", err)
					return
				}
				w.logger.Info("lexicon reloaded", "path", w.path)
			})

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Error("lexicon watcher error", "error", err)
		}
	}
}

// Debouncer coalesces bursts of triggers into a single callback invocation
// after a quiet interval.
type Debouncer struct {
	interval time.Duration
	mu       sync.Mutex
	timer    *time.Timer
}

// NewDebouncer creates a debouncer with the given quiet interval.
func NewDebouncer(interval time.Duration) *Debouncer {
	return &Debouncer{interval: interval}
}

// Trigger schedules callback to run after the quiet interval, resetting the
// clock if a trigger is already pending.
func (d *Debouncer) Trigger(callback func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.interval, callback)
}

// Stop cancels any pending callback.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
