// Package policy provides eviction ordering for the cache. Only FIFO
// (oldest insertion first) is implemented: eviction order must not depend
// on access recency, so there is deliberately no LRU variant.
package policy

// Policy tracks key ordering for eviction decisions
type Policy interface {
	// OnSet is called when a key is stored in the cache. Overwriting an
	// existing key keeps its original position.
	OnSet(key string)

	// OnDelete is called when a key is removed from the cache
	OnDelete(key string)

	// OnClear is called when the cache is cleared
	OnClear()

	// Evict returns the next key to be evicted and removes it from the policy
	Evict() (string, bool)

	// Len returns the number of keys tracked by the policy
	Len() int
}
