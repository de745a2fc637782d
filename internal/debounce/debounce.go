// Package debounce coalesces bursts of rapid input into a single settled
// value after a quiet window. It is a coalescing debounce, not a rate
// limiter: at most one settle per quiet period, always the newest value.
package debounce

import (
	"sync"
	"time"
)

const DefaultWindow = 300 * time.Millisecond

// Debouncer buffers values of type T. Push records the latest value and
// restarts the quiet-window timer; intermediate values of a burst are
// discarded, never queued.
type Debouncer[T any] struct {
	mu      sync.Mutex
	window  time.Duration
	settle  func(T)
	timer   *time.Timer
	pending T
	waiting bool

	// seq invalidates callbacks of superseded timers: a fired callback that
	// lost the race against a newer Push or a Cancel must not settle.
	seq uint64
}

// New returns a debouncer invoking settle with the surviving value once no
// Push arrives for a full window. A non-positive window uses DefaultWindow.
func New[T any](window time.Duration, settle func(T)) *Debouncer[T] {
	if window <= 0 {
		window = DefaultWindow
	}

	return &Debouncer[T]{window: window, settle: settle}
}

// Push records v as the latest value and (re)starts the timer, cancelling
// any pending unfired settle.
func (d *Debouncer[T]) Push(v T) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.pending = v
	d.waiting = true
	d.seq++

	if d.timer != nil {
		d.timer.Stop()
	}
	seq := d.seq
	d.timer = time.AfterFunc(d.window, func() { d.fire(seq) })
}

// Cancel discards any pending settle. It is an idempotent no-op when
// nothing is pending or the settle already fired, and safe to call from
// consumer teardown at any time.
func (d *Debouncer[T]) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.seq++
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.waiting = false
}

// Flush settles immediately with the pending value, if one is waiting.
func (d *Debouncer[T]) Flush() {
	d.mu.Lock()
	seq := d.seq
	d.mu.Unlock()

	d.fire(seq)
}

func (d *Debouncer[T]) fire(seq uint64) {
	d.mu.Lock()

	if !d.waiting || seq != d.seq {
		d.mu.Unlock()
		return
	}

	value := d.pending
	d.waiting = false
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}

	// Settle outside the lock so the callback may Push again.
	d.mu.Unlock()
	d.settle(value)
}
