// Package sched provides timing primitives that govern when work runs:
// debounce, throttle, batch coalescing, and chunked iteration. Each
// scheduler object owns exactly one timer handle, so two schedulers
// created for different logical keys can never interfere, and every
// scheduler exposes explicit Cancel/Flush/Stop so teardown and
// mid-flight cancellation are directly testable.
package sched

import (
	"sync"
	"time"
)

// Debouncer collapses a burst of calls into a single invocation of fn,
// fired after a quiet period of the configured delay. The invocation
// carries the arguments of the most recent call.
type Debouncer[T any] struct {
	mu      sync.Mutex
	fn      func(T)
	delay   time.Duration
	timer   *time.Timer
	pending T
	hasPend bool
	stopped bool
}

// NewDebouncer creates a debouncer around fn
func NewDebouncer[T any](delay time.Duration, fn func(T)) *Debouncer[T] {
	return &Debouncer[T]{
		fn:    fn,
		delay: delay,
	}
}

// Call records v as the latest arguments and restarts the quiet-period
// timer. fn fires once, with the last v, after delay of quiet.
func (d *Debouncer[T]) Call(v T) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped {
		return
	}

	d.pending = v
	d.hasPend = true

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.delay, d.fire)
}

// fire runs on the timer goroutine when the quiet period elapses
func (d *Debouncer[T]) fire() {
	d.mu.Lock()
	if d.stopped || !d.hasPend {
		d.mu.Unlock()
		return
	}
	v := d.pending
	d.hasPend = false
	d.timer = nil
	fn := d.fn
	d.mu.Unlock()

	fn(v)
}

// Flush invokes fn immediately with the pending arguments, if any,
// and clears the timer
func (d *Debouncer[T]) Flush() {
	d.mu.Lock()
	if d.stopped || !d.hasPend {
		d.mu.Unlock()
		return
	}
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	v := d.pending
	d.hasPend = false
	fn := d.fn
	d.mu.Unlock()

	fn(v)
}

// Cancel drops the pending invocation without firing. The debouncer
// stays usable.
func (d *Debouncer[T]) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.hasPend = false
}

// Pending reports whether an invocation is scheduled
func (d *Debouncer[T]) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.hasPend
}

// Stop cancels any pending invocation and makes further Call attempts
// no-ops. fn is guaranteed never to fire after Stop returns.
func (d *Debouncer[T]) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.stopped = true
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.hasPend = false
}
