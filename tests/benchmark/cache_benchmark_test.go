package benchmark

import (
	"fmt"
	"testing"
	"time"

	"github.com/gozephyr/renderkit"
	"github.com/gozephyr/renderkit/keys"
	"github.com/gozephyr/renderkit/monitor"
	"github.com/gozephyr/renderkit/ttl"
	"github.com/gozephyr/renderkit/window"
)

func BenchmarkCacheOperations(b *testing.B) {
	configs := []struct {
		name string
		opts []renderkit.Option[string]
	}{
		{
			name: "Unbounded",
		},
		{
			name: "Bounded_1000",
			opts: []renderkit.Option[string]{
				renderkit.WithMaxSize[string](1000),
			},
		},
		{
			name: "With_TTL_Bounds",
			opts: []renderkit.Option[string]{
				renderkit.WithTTLConfig[string](ttl.Config{
					DefaultTTL: time.Minute,
					MinTTL:     time.Millisecond * 10,
					MaxTTL:     time.Hour,
				}),
			},
		},
	}

	for _, cfg := range configs {
		b.Run(cfg.name, func(b *testing.B) {
			cache := renderkit.New[string](cfg.opts...)
			defer cache.Close()

			b.Run("Set", func(b *testing.B) {
				b.ResetTimer()
				for i := 0; i < b.N; i++ {
					key := fmt.Sprintf("key%d", i)
					_ = cache.Set(key, "value", time.Minute)
				}
			})

			b.Run("Get", func(b *testing.B) {
				for i := 0; i < 1000; i++ {
					_ = cache.Set(fmt.Sprintf("key%d", i), "value", time.Minute)
				}

				b.ResetTimer()
				for i := 0; i < b.N; i++ {
					_, _ = cache.Get(fmt.Sprintf("key%d", i%1000))
				}
			})

			b.Run("Delete", func(b *testing.B) {
				for i := 0; i < 1000; i++ {
					_ = cache.Set(fmt.Sprintf("key%d", i), "value", time.Minute)
				}

				b.ResetTimer()
				for i := 0; i < b.N; i++ {
					cache.Delete(fmt.Sprintf("key%d", i%1000))
				}
			})
		})
	}
}

func BenchmarkCacheEviction(b *testing.B) {
	cache := renderkit.New[string](renderkit.WithMaxSize[string](100))
	defer cache.Close()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = cache.Set(fmt.Sprintf("key%d", i), "value", time.Minute)
	}
}

func BenchmarkInvalidatePattern(b *testing.B) {
	cache := renderkit.New[string]()
	defer cache.Close()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		for j := 0; j < 100; j++ {
			_ = cache.Set(fmt.Sprintf("strategy:%d", j), "s", time.Minute)
			_ = cache.Set(fmt.Sprintf("trade:%d", j), "t", time.Minute)
		}
		b.StartTimer()

		_ = cache.InvalidatePattern("strategy:*")
	}
}

func BenchmarkWindowCompute(b *testing.B) {
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = window.Compute(1000000, 50, 900, (i*37)%50000000, 5)
	}
}

func BenchmarkKeyHash(b *testing.B) {
	record := struct {
		Symbol string
		Qty    int
		Price  float64
	}{"AAPL", 100, 187.5}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = keys.HashRecord(record)
	}
}

func BenchmarkMonitorRecord(b *testing.B) {
	m := monitor.New()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m.Record("render", time.Millisecond)
	}
}
