// Package renderkit provides the client-side performance layer for a
// trade-journaling UI: a TTL/size-bounded cache with glob invalidation,
// plus pre-warming and resource-teardown helpers. Windowed rendering,
// scheduling primitives, and duration sampling live in the window, sched,
// and monitor subpackages; the components compose only at the call site.
package renderkit

import (
	"sync"
	"time"
	"unsafe"

	"github.com/gozephyr/renderkit/errors"
	"github.com/gozephyr/renderkit/keys"
	"github.com/gozephyr/renderkit/monitor"
	"github.com/gozephyr/renderkit/policy"
	"github.com/gozephyr/renderkit/ttl"
)

// EvictReason describes why an entry left the cache
type EvictReason int

const (
	// ReasonCapacity means the entry was evicted to stay under MaxSize
	ReasonCapacity EvictReason = iota
	// ReasonExpired means the entry outlived its TTL
	ReasonExpired
	// ReasonInvalidated means the entry matched an invalidation pattern
	ReasonInvalidated
)

// String implements fmt.Stringer
func (r EvictReason) String() string {
	switch r {
	case ReasonCapacity:
		return "capacity"
	case ReasonExpired:
		return "expired"
	case ReasonInvalidated:
		return "invalidated"
	default:
		return "unknown"
	}
}

// EvictFunc is called when an entry is removed for any reason other
// than an explicit Delete or Clear
type EvictFunc func(key string, reason EvictReason)

// entry represents a cached value with expiration metadata
type entry[V any] struct {
	value     V
	createdAt time.Time
	expiresAt time.Time
}

// StatsSnapshot is a point-in-time copy of cache statistics
type StatsSnapshot struct {
	Size        int
	Hits        int64
	Misses      int64
	Evictions   int64
	Expirations int64
	// HitRate is Hits / (Hits + Misses) since the last Clear, in [0, 1]
	HitRate float64
	// MemoryUsage is a rough per-entry estimate in bytes, not an exact
	// accounting
	MemoryUsage int64
}

// Cache is a generic key/value store with per-entry expiration, an
// optional total-size cap with FIFO eviction, and glob-style bulk
// invalidation. Expiry is lazy on access; consumers call Cleanup for
// eager sweeps (the cache never spawns its own timer).
type Cache[V any] struct {
	mu      sync.Mutex
	entries map[string]*entry[V]
	policy  policy.Policy

	maxSize         int
	ttlConfig       ttl.Config
	cleanupInterval time.Duration
	exporter        monitor.Exporter

	callbacks   []EvictFunc
	callbacksMu sync.RWMutex

	hits        int64
	misses      int64
	evictions   int64
	expirations int64
	closed      bool
}

// New creates a new cache with the given options
func New[V any](opts ...Option[V]) *Cache[V] {
	options := DefaultOptions[V]()
	for _, opt := range opts {
		opt(options)
	}

	if options.Policy == nil {
		options.Policy = policy.NewFIFO()
	}
	if options.Exporter == nil {
		options.Exporter = monitor.NewStandardExporter()
	}

	return &Cache[V]{
		entries:         make(map[string]*entry[V]),
		policy:          options.Policy,
		maxSize:         options.MaxSize,
		ttlConfig:       options.TTLConfig,
		cleanupInterval: options.CleanupInterval,
		exporter:        options.Exporter,
	}
}

// Set stores a value under key. A zero TTL resolves to the configured
// default; a negative TTL is rejected. When a size cap is configured and
// the insertion would exceed it, the oldest-inserted entries are evicted
// first until the cache fits.
func (c *Cache[V]) Set(key string, value V, ttlDuration time.Duration) error {
	if key == "" {
		return errors.Wrap("Set", key, errors.ErrInvalidKey)
	}
	if err := ttl.Validate(ttlDuration, c.ttlConfig); err != nil {
		return errors.Wrap("Set", key, errors.ErrInvalidTTL)
	}

	expiresAt := ttl.ExpirationTime(ttlDuration, c.ttlConfig)
	now := time.Now()

	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return errors.Wrap("Set", key, errors.ErrCacheClosed)
	}

	var evicted []string
	if _, exists := c.entries[key]; !exists && c.maxSize > 0 {
		for len(c.entries) >= c.maxSize {
			victim, ok := c.policy.Evict()
			if !ok {
				break
			}
			delete(c.entries, victim)
			c.evictions++
			evicted = append(evicted, victim)
		}
	}

	c.entries[key] = &entry[V]{
		value:     value,
		createdAt: now,
		expiresAt: expiresAt,
	}
	c.policy.OnSet(key)
	size := len(c.entries)
	c.mu.Unlock()

	for range evicted {
		c.exporter.RecordEviction()
	}
	c.exporter.UpdateSize(int64(size))
	c.notify(evicted, ReasonCapacity)

	return nil
}

// Get retrieves the value stored under key. A missing or expired entry
// is a routine miss, not an error; an expired entry is removed on the
// way out.
func (c *Cache[V]) Get(key string) (V, bool) {
	var zero V

	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return zero, false
	}

	e, ok := c.entries[key]
	if !ok {
		c.misses++
		c.mu.Unlock()
		c.exporter.RecordMiss()
		return zero, false
	}

	if ttl.IsExpired(e.expiresAt) {
		delete(c.entries, key)
		c.policy.OnDelete(key)
		c.expirations++
		c.misses++
		size := len(c.entries)
		c.mu.Unlock()

		c.exporter.RecordExpiration()
		c.exporter.RecordMiss()
		c.exporter.UpdateSize(int64(size))
		c.notify([]string{key}, ReasonExpired)
		return zero, false
	}

	value := e.value
	c.hits++
	c.mu.Unlock()
	c.exporter.RecordHit()
	return value, true
}

// Has reports whether a live entry exists for key. Expired entries are
// removed on the way out, exactly as in Get, but Has does not touch the
// hit/miss counters.
func (c *Cache[V]) Has(key string) bool {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return false
	}

	e, ok := c.entries[key]
	if !ok {
		c.mu.Unlock()
		return false
	}

	if ttl.IsExpired(e.expiresAt) {
		delete(c.entries, key)
		c.policy.OnDelete(key)
		c.expirations++
		size := len(c.entries)
		c.mu.Unlock()

		c.exporter.RecordExpiration()
		c.exporter.UpdateSize(int64(size))
		c.notify([]string{key}, ReasonExpired)
		return false
	}

	c.mu.Unlock()
	return true
}

// Delete removes the entry stored under key. No-op if absent.
func (c *Cache[V]) Delete(key string) {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}

	if _, ok := c.entries[key]; !ok {
		c.mu.Unlock()
		return
	}

	delete(c.entries, key)
	c.policy.OnDelete(key)
	size := len(c.entries)
	c.mu.Unlock()

	c.exporter.UpdateSize(int64(size))
}

// Clear empties the cache and resets the hit/miss counters
func (c *Cache[V]) Clear() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}

	c.entries = make(map[string]*entry[V])
	c.policy.OnClear()
	c.hits = 0
	c.misses = 0
	c.evictions = 0
	c.expirations = 0
	c.mu.Unlock()

	c.exporter.UpdateSize(0)
}

// Cleanup eagerly removes every currently-expired entry, whether or not
// it has been accessed. Idempotent.
func (c *Cache[V]) Cleanup() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}

	var expired []string
	for key, e := range c.entries {
		if ttl.IsExpired(e.expiresAt) {
			expired = append(expired, key)
		}
	}
	for _, key := range expired {
		delete(c.entries, key)
		c.policy.OnDelete(key)
		c.expirations++
	}
	size := len(c.entries)
	c.mu.Unlock()

	for range expired {
		c.exporter.RecordExpiration()
	}
	c.exporter.UpdateSize(int64(size))
	c.notify(expired, ReasonExpired)
}

// InvalidatePattern removes every entry whose key matches the glob
// pattern, where '*' matches any suffix run ("strategy:*" removes all
// keys starting with "strategy:"). A pattern without a wildcard is an
// exact-match delete. The sweep happens in one critical section, so no
// partially-invalidated state is observable. Returns the number of
// entries removed.
func (c *Cache[V]) InvalidatePattern(pattern string) int {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return 0
	}

	var matched []string
	for key := range c.entries {
		if keys.Match(pattern, key) {
			matched = append(matched, key)
		}
	}
	for _, key := range matched {
		delete(c.entries, key)
		c.policy.OnDelete(key)
	}
	size := len(c.entries)
	c.mu.Unlock()

	c.exporter.UpdateSize(int64(size))
	c.notify(matched, ReasonInvalidated)

	return len(matched)
}

// Len returns the number of entries in the cache, including entries that
// have expired but not yet been swept
func (c *Cache[V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// CleanupInterval returns the advisory cleanup cadence from the options
func (c *Cache[V]) CleanupInterval() time.Duration {
	return c.cleanupInterval
}

// Stats returns a snapshot of the cache statistics accumulated since the
// last Clear
func (c *Cache[V]) Stats() StatsSnapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	snap := StatsSnapshot{
		Size:        len(c.entries),
		Hits:        c.hits,
		Misses:      c.misses,
		Evictions:   c.evictions,
		Expirations: c.expirations,
	}

	if total := c.hits + c.misses; total > 0 {
		snap.HitRate = float64(c.hits) / float64(total)
	}

	var e entry[V]
	perEntry := int64(unsafe.Sizeof(e))
	for key := range c.entries {
		snap.MemoryUsage += int64(len(key)) + perEntry
	}

	return snap
}

// ResetStats zeroes the hit/miss/eviction/expiration counters without
// touching the cached entries
func (c *Cache[V]) ResetStats() {
	c.mu.Lock()
	c.hits = 0
	c.misses = 0
	c.evictions = 0
	c.expirations = 0
	c.mu.Unlock()

	c.exporter.Reset()
}

// OnEvict registers a callback invoked whenever entries are removed by
// capacity eviction, expiry, or pattern invalidation
func (c *Cache[V]) OnEvict(fn EvictFunc) {
	c.callbacksMu.Lock()
	c.callbacks = append(c.callbacks, fn)
	c.callbacksMu.Unlock()
}

// Close empties the cache and makes further writes fail with
// ErrCacheClosed. Reads on a closed cache are plain misses. Idempotent.
func (c *Cache[V]) Close() error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return nil
	}
	c.closed = true
	c.entries = make(map[string]*entry[V])
	c.policy.OnClear()
	c.mu.Unlock()

	c.exporter.UpdateSize(0)

	c.callbacksMu.Lock()
	c.callbacks = nil
	c.callbacksMu.Unlock()

	return nil
}

// notify invokes the eviction callbacks outside the cache lock
func (c *Cache[V]) notify(removed []string, reason EvictReason) {
	if len(removed) == 0 {
		return
	}

	c.callbacksMu.RLock()
	defer c.callbacksMu.RUnlock()

	for _, fn := range c.callbacks {
		for _, key := range removed {
			fn(key, reason)
		}
	}
}
