package renderkit

import (
	"time"

	"github.com/gozephyr/renderkit/monitor"
	"github.com/gozephyr/renderkit/policy"
	"github.com/gozephyr/renderkit/ttl"
)

// Options represents cache configuration options
type Options[V any] struct {
	// MaxSize is the maximum number of entries the cache can hold
	// (0 means unbounded)
	MaxSize int

	// TTLConfig is the configuration for TTL behavior
	TTLConfig ttl.Config

	// CleanupInterval is the suggested interval between Cleanup calls.
	// It is advisory: the cache never spawns its own timer, the consumer
	// schedules Cleanup at this cadence.
	CleanupInterval time.Duration

	// Policy is the eviction ordering to use
	Policy policy.Policy

	// Exporter receives hit/miss/eviction/size observations
	Exporter monitor.Exporter
}

// Option is a function that configures cache options
type Option[V any] func(*Options[V])

// WithMaxSize sets the maximum size of the cache
func WithMaxSize[V any](size int) Option[V] {
	return func(o *Options[V]) {
		o.MaxSize = size
	}
}

// WithTTLConfig sets the TTL configuration
func WithTTLConfig[V any](config ttl.Config) Option[V] {
	return func(o *Options[V]) {
		o.TTLConfig = config
	}
}

// WithDefaultTTL sets the TTL applied when Set is called with a zero TTL
func WithDefaultTTL[V any](d time.Duration) Option[V] {
	return func(o *Options[V]) {
		o.TTLConfig.DefaultTTL = d
	}
}

// WithCleanupInterval sets the advisory cleanup interval
func WithCleanupInterval[V any](interval time.Duration) Option[V] {
	return func(o *Options[V]) {
		o.CleanupInterval = interval
	}
}

// WithEvictionPolicy sets the eviction ordering
func WithEvictionPolicy[V any](p policy.Policy) Option[V] {
	return func(o *Options[V]) {
		o.Policy = p
	}
}

// WithExporter sets the metrics exporter
func WithExporter[V any](e monitor.Exporter) Option[V] {
	return func(o *Options[V]) {
		o.Exporter = e
	}
}

// DefaultOptions returns the default cache options
func DefaultOptions[V any]() *Options[V] {
	return &Options[V]{
		TTLConfig: ttl.DefaultConfig(),
	}
}
