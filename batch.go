package renderkit

import (
	"context"
	"time"
)

// GetMany retrieves multiple values from the cache. Missing or expired
// keys are simply absent from the result. The context is checked before
// each key; cancellation returns the partial result.
func (c *Cache[V]) GetMany(ctx context.Context, cacheKeys []string) map[string]V {
	result := make(map[string]V, len(cacheKeys))
	for _, key := range cacheKeys {
		if ctx.Err() != nil {
			return result
		}
		if value, ok := c.Get(key); ok {
			result[key] = value
		}
	}
	return result
}

// SetMany stores multiple values in the cache with a shared TTL. The
// first failed Set stops the iteration.
func (c *Cache[V]) SetMany(ctx context.Context, entries map[string]V, ttlDuration time.Duration) error {
	for key, value := range entries {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := c.Set(key, value, ttlDuration); err != nil {
			return err
		}
	}
	return nil
}

// DeleteMany removes multiple keys from the cache
func (c *Cache[V]) DeleteMany(ctx context.Context, cacheKeys []string) error {
	for _, key := range cacheKeys {
		if err := ctx.Err(); err != nil {
			return err
		}
		c.Delete(key)
	}
	return nil
}
