// Package debounce coalesces rapid-fire triggers into one call after a
// quiet period. The dashboard uses it to bound the Gateway request rate for
// search-as-you-type; it is resource protection, not a correctness layer.
package debounce

import (
	"sync"
	"time"
)

// DefaultQuietPeriod is the delay applied to live-search triggers.
const DefaultQuietPeriod = 300 * time.Millisecond

// Debouncer runs the most recent function passed to Trigger once no new
// trigger has arrived for the quiet period. Earlier pending calls are
// dropped; last call wins.
type Debouncer struct {
	quiet time.Duration

	mu    sync.Mutex
	timer *time.Timer
}

// New creates a Debouncer with the given quiet period. A non-positive
// period falls back to the default.
func New(quiet time.Duration) *Debouncer {
	if quiet <= 0 {
		quiet = DefaultQuietPeriod
	}
	return &Debouncer{quiet: quiet}
}

// Trigger schedules fn to run after the quiet period, replacing any
// previously scheduled call that has not fired yet.
func (d *Debouncer) Trigger(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.quiet, fn)
}

// Stop cancels any pending call.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
