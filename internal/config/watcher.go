package config

import (
	"context"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/giantswarm/dbterra/pkg/logging"
)

// DefaultDebounceInterval is how long the watcher waits for further writes
// before reporting a change. Editors often write a file in several steps.
const DefaultDebounceInterval = 500 * time.Millisecond

// Watcher reports changes to the desired state file.
//
// The parent directory is watched rather than the file itself so that
// editors which save through rename-and-replace keep being observed.
type Watcher struct {
	path             string
	debounceInterval time.Duration
}

// NewWatcher creates a watcher for path.
func NewWatcher(path string, debounceInterval time.Duration) *Watcher {
	if debounceInterval == 0 {
		debounceInterval = DefaultDebounceInterval
	}
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	return &Watcher{
		path:             filepath.Clean(path),
		debounceInterval: debounceInterval,
	}
}

// Run blocks until ctx is cancelled, calling onChange after every settled
// burst of writes to the watched file. onChange runs on the caller's
// goroutine, so two invocations never overlap.
func (w *Watcher) Run(ctx context.Context, onChange func()) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	dir := filepath.Dir(w.path)
	if err := watcher.Add(dir); err != nil {
		return err
	}
	logging.Info("Watcher", "Watching %s for changes", w.path)

	debounce := time.NewTimer(w.debounceInterval)
	debounce.Stop()

	for {
		select {
		case <-ctx.Done():
			debounce.Stop()
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !w.relevant(event) {
				continue
			}
			logging.Debug("Watcher", "Observed %s on %s", event.Op, event.Name)
			debounce.Reset(w.debounceInterval)

		case <-debounce.C:
			onChange()

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logging.Error("Watcher", err, "Filesystem watcher error")
		}
	}
}

func (w *Watcher) relevant(event fsnotify.Event) bool {
	if filepath.Clean(event.Name) != w.path {
		return false
	}
	return event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Rename) != 0
}
