// Package watcher rebuilds the bundle when the project config changes,
// coalescing editor save bursts into a single rebuild.
package watcher

import (
	"sync"
	"time"
)

// DefaultDebounceWindow is the default coalescing window.
const DefaultDebounceWindow = 250 * time.Millisecond

// Debouncer coalesces rapid triggers into one callback after the window
// elapses. Only the most recently scheduled callback runs.
type Debouncer struct {
	window time.Duration
	mu     sync.Mutex
	timer  *time.Timer
	gen    uint64
}

// NewDebouncer creates a Debouncer. A zero window means
// DefaultDebounceWindow.
func NewDebouncer(window time.Duration) *Debouncer {
	if window == 0 {
		window = DefaultDebounceWindow
	}
	return &Debouncer{window: window}
}

// Trigger schedules callback after the window, replacing any pending one.
func (d *Debouncer) Trigger(callback func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.gen++
	gen := d.gen

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.window, func() {
		d.mu.Lock()
		// A timer can fire after Stop when it was already in flight;
		// the generation check drops those stale callbacks.
		stale := gen != d.gen
		if !stale {
			d.timer = nil
		}
		d.mu.Unlock()
		if stale {
			return
		}
		callback()
	})
}

// Cancel drops any pending callback, including one already in flight.
func (d *Debouncer) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.gen++
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}

// Window returns the coalescing window.
func (d *Debouncer) Window() time.Duration {
	return d.window
}
