package sched

import (
	"sync"
	"time"
)

// Throttler rate-limits calls to fn to at most one per limit interval.
// A call arriving inside the interval is coalesced into exactly one
// trailing invocation carrying the latest value, fired when the interval
// since the last real emission elapses. The final value of a rapid burst
// is therefore always delivered; intermediate values may be dropped.
type Throttler[T any] struct {
	mu       sync.Mutex
	fn       func(T)
	limit    time.Duration
	lastEmit time.Time
	timer    *time.Timer
	pending  T
	hasPend  bool
	stopped  bool
}

// NewThrottler creates a throttler around fn
func NewThrottler[T any](limit time.Duration, fn func(T)) *Throttler[T] {
	return &Throttler[T]{
		fn:    fn,
		limit: limit,
	}
}

// Call emits v immediately when at least limit has elapsed since the
// last emission and no trailing emission is queued; otherwise v becomes
// the pending trailing value.
func (t *Throttler[T]) Call(v T) {
	t.mu.Lock()
	if t.stopped {
		t.mu.Unlock()
		return
	}

	now := time.Now()
	if t.timer == nil && now.Sub(t.lastEmit) >= t.limit {
		t.lastEmit = now
		fn := t.fn
		t.mu.Unlock()
		fn(v)
		return
	}

	t.pending = v
	t.hasPend = true
	if t.timer == nil {
		t.timer = time.AfterFunc(t.lastEmit.Add(t.limit).Sub(now), t.fire)
	}
	t.mu.Unlock()
}

// fire delivers the trailing value on the timer goroutine
func (t *Throttler[T]) fire() {
	t.mu.Lock()
	t.timer = nil
	if t.stopped || !t.hasPend {
		t.mu.Unlock()
		return
	}
	v := t.pending
	t.hasPend = false
	t.lastEmit = time.Now()
	fn := t.fn
	t.mu.Unlock()

	fn(v)
}

// Flush delivers the pending trailing value immediately, if any
func (t *Throttler[T]) Flush() {
	t.mu.Lock()
	if t.stopped || !t.hasPend {
		t.mu.Unlock()
		return
	}
	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
	v := t.pending
	t.hasPend = false
	t.lastEmit = time.Now()
	fn := t.fn
	t.mu.Unlock()

	fn(v)
}

// Cancel drops the pending trailing value without firing. The throttler
// stays usable.
func (t *Throttler[T]) Cancel() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
	t.hasPend = false
}

// Pending reports whether a trailing emission is queued
func (t *Throttler[T]) Pending() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.hasPend
}

// Stop cancels any trailing emission and makes further Call attempts
// no-ops. fn is guaranteed never to fire after Stop returns.
func (t *Throttler[T]) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.stopped = true
	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
	t.hasPend = false
}
