package renderkit

import (
	"context"
	"time"

	"github.com/gozephyr/renderkit/sched"
)

// WarmEntry pairs a key with the value to preload
type WarmEntry[V any] struct {
	Key   string
	Value V
}

// Warm bulk-loads entries into the cache in insertion order, processing
// a fixed-size chunk at a time and yielding between chunks so warming
// hundreds of records never starves the caller's loop. Cancelling the
// context stops at the next chunk boundary; already-stored entries stay
// cached.
func (c *Cache[V]) Warm(ctx context.Context, entries []WarmEntry[V], ttlDuration time.Duration) error {
	return sched.Chunks(ctx, len(entries), sched.DefaultChunkSize, func(i int) error {
		return c.Set(entries[i].Key, entries[i].Value, ttlDuration)
	})
}
