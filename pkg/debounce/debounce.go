// Package debounce delays a function call until its trigger has been
// quiet for a fixed interval. Callers drive it from keystrokes to keep
// search queries off the wire until the user pauses typing.
package debounce

import (
	"sync"
	"time"
)

// Debouncer schedules at most one pending call. Do replaces any
// pending call with the new one; Stop cancels outright.
type Debouncer struct {
	mu    sync.Mutex
	delay time.Duration
	timer *time.Timer
}

// New builds a Debouncer with the given quiet interval.
func New(delay time.Duration) *Debouncer {
	return &Debouncer{delay: delay}
}

// Do schedules fn to run after the delay, cancelling any call still
// pending. fn runs on its own goroutine.
func (d *Debouncer) Do(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.delay, fn)
}

// Stop cancels the pending call, if any. The Debouncer stays usable.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
