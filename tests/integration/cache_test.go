package integration

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/gozephyr/renderkit"
	"github.com/gozephyr/renderkit/keys"
	"github.com/gozephyr/renderkit/monitor"
	"github.com/gozephyr/renderkit/ttl"
	"github.com/gozephyr/renderkit/window"
	"github.com/stretchr/testify/require"
)

func TestCacheIntegration(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	t.Run("Bulk Load And Hit Rate", func(t *testing.T) {
		cache := renderkit.New[string](
			renderkit.WithTTLConfig[string](ttl.Config{
				DefaultTTL: time.Minute,
				MinTTL:     time.Millisecond * 10,
				MaxTTL:     time.Hour,
			}),
		)
		defer cache.Close()

		entries := make([]renderkit.WarmEntry[string], 10000)
		allKeys := make([]string, len(entries))
		for i := range entries {
			key := keys.Build("trade", fmt.Sprintf("%d", i))
			entries[i] = renderkit.WarmEntry[string]{Key: key, Value: fmt.Sprintf("record-%d", i)}
			allKeys[i] = key
		}

		require.NoError(t, cache.Warm(ctx, entries, time.Minute))
		require.Equal(t, 10000, cache.Len())

		result := cache.GetMany(ctx, allKeys)
		require.Len(t, result, 10000)

		stats := cache.Stats()
		require.Equal(t, int64(10000), stats.Hits)
		require.Equal(t, int64(0), stats.Misses)
		require.Equal(t, 1.0, stats.HitRate)
	})

	t.Run("Pattern Invalidation Across Namespaces", func(t *testing.T) {
		cache := renderkit.New[string]()
		defer cache.Close()

		for i := 0; i < 50; i++ {
			require.NoError(t, cache.Set(keys.Build("strategy", fmt.Sprintf("%d", i)), "s", time.Minute))
			require.NoError(t, cache.Set(keys.Build("trade", fmt.Sprintf("%d", i)), "t", time.Minute))
		}

		removed := cache.InvalidatePattern("strategy:*")
		require.Equal(t, 50, removed)
		require.Equal(t, 50, cache.Len())
		require.True(t, cache.Has("trade:0"))
		require.False(t, cache.Has("strategy:0"))
	})

	t.Run("Expiry Sweep Empties Cache", func(t *testing.T) {
		cache := renderkit.New[int](renderkit.WithTTLConfig[int](ttl.Config{
			DefaultTTL: time.Minute,
		}))
		defer cache.Close()

		for i := 0; i < 100; i++ {
			require.NoError(t, cache.Set(fmt.Sprintf("key%d", i), i, 20*time.Millisecond))
		}

		time.Sleep(40 * time.Millisecond)
		require.Equal(t, 100, cache.Len())

		cache.Cleanup()
		require.Equal(t, 0, cache.Len())

		stats := cache.Stats()
		require.Equal(t, int64(100), stats.Expirations)
	})

	t.Run("Cached Window Computation", func(t *testing.T) {
		cache := renderkit.New[window.Window]()
		defer cache.Close()

		mon := monitor.New()

		computeWindow := func(itemCount, offset int) window.Window {
			key, err := keys.Hash(itemCount, offset)
			require.NoError(t, err)

			if w, ok := cache.Get(key); ok {
				return w
			}

			var w window.Window
			mon.Track("window.compute", func() {
				w, err = window.Compute(itemCount, 50, 300, offset, 2)
			})
			require.NoError(t, err)
			require.NoError(t, cache.Set(key, w, time.Minute))
			return w
		}

		first := computeWindow(10000, 5000)
		second := computeWindow(10000, 5000)
		require.Equal(t, first, second)

		stats := cache.Stats()
		require.Equal(t, int64(1), stats.Hits)
		require.Equal(t, int64(1), stats.Misses)

		samples := mon.Statistics("window.compute", 0)
		require.NotNil(t, samples)
		require.Equal(t, 1, samples.Count)
	})

	t.Run("Registry Tears Down Components", func(t *testing.T) {
		cache := renderkit.New[string]()
		require.NoError(t, cache.Set("key", "value", time.Minute))

		reg := renderkit.NewRegistry()
		reg.Register("trade-cache", cache.Close)

		require.NoError(t, reg.DisposeAll())
		require.False(t, cache.Has("key"))

		err := cache.Set("key2", "value2", time.Minute)
		require.Error(t, err)
	})
}
