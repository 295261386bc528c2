package sched

import (
	"sync"
	"time"
)

// Batcher coalesces queued state updates into a single transition.
// Enqueued updaters are pure functions applied in order when the batch
// flushes; the flush timer is armed by the first enqueue of a batch and
// is not extended by later enqueues. Enqueue after Stop is a silent
// no-op, because owners may enqueue work fractionally after teardown.
type Batcher[T any] struct {
	mu      sync.Mutex
	value   T
	delay   time.Duration
	queue   []func(T) T
	timer   *time.Timer
	onFlush func(T)
	stopped bool
}

// NewBatcher creates a batcher holding initial. onFlush, if non-nil, is
// called with the new value after each flush.
func NewBatcher[T any](initial T, delay time.Duration, onFlush func(T)) *Batcher[T] {
	return &Batcher[T]{
		value:   initial,
		delay:   delay,
		onFlush: onFlush,
	}
}

// Enqueue appends an updater to the pending batch. The first enqueue
// after a flush arms the flush timer.
func (b *Batcher[T]) Enqueue(updater func(T) T) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.stopped {
		return
	}

	b.queue = append(b.queue, updater)
	if b.timer == nil {
		b.timer = time.AfterFunc(b.delay, b.flush)
	}
}

// flush applies the queued updaters in enqueue order as one transition
func (b *Batcher[T]) flush() {
	b.mu.Lock()
	b.timer = nil
	if b.stopped || len(b.queue) == 0 {
		b.mu.Unlock()
		return
	}

	value := b.value
	queue := b.queue
	b.queue = nil
	for _, updater := range queue {
		value = updater(value)
	}
	b.value = value
	onFlush := b.onFlush
	b.mu.Unlock()

	if onFlush != nil {
		onFlush(value)
	}
}

// Value returns the current value. Pending updaters are not reflected
// until the batch flushes.
func (b *Batcher[T]) Value() T {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.value
}

// Pending returns the number of queued updaters
func (b *Batcher[T]) Pending() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.queue)
}

// Flush applies the pending batch immediately instead of waiting for
// the timer
func (b *Batcher[T]) Flush() {
	b.mu.Lock()
	if b.timer != nil {
		b.timer.Stop()
		b.timer = nil
	}
	b.mu.Unlock()

	b.flush()
}

// Cancel drops the pending batch without applying it. The batcher stays
// usable.
func (b *Batcher[T]) Cancel() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.timer != nil {
		b.timer.Stop()
		b.timer = nil
	}
	b.queue = nil
}

// Stop cancels the pending batch and makes further Enqueue calls
// no-ops. Updaters are guaranteed never to apply after Stop returns.
func (b *Batcher[T]) Stop() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.stopped = true
	if b.timer != nil {
		b.timer.Stop()
		b.timer = nil
	}
	b.queue = nil
}
