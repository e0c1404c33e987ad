package watcher

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher watches a single file and invokes a callback, debounced, whenever
// it is written, created or renamed. The parent directory is watched rather
// than the file itself: editors typically replace the file on save, which
// would otherwise drop the watch.
type Watcher struct {
	path     string
	onChange func()
	debounce *Debouncer
}

// New creates a Watcher for path. onChange runs on the watcher goroutine
// after the debounce window.
func New(path string, window time.Duration, onChange func()) *Watcher {
	return &Watcher{
		path:     filepath.Clean(path),
		onChange: onChange,
		debounce: NewDebouncer(window),
	}
}

// Run watches until ctx is cancelled. It returns nil on cancellation and an
// error if the underlying watch cannot be established or fails.
func (w *Watcher) Run(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create file watcher: %w", err)
	}
	defer fw.Close()
	defer w.debounce.Cancel()

	dir := filepath.Dir(w.path)
	if err := fw.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			w.debounce.Trigger(w.onChange)
		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			return fmt.Errorf("file watcher: %w", err)
		}
	}
}
