package cache

import "context"

// Cache is a bounded, in-memory key/value cache with an exact, pluggable
// eviction policy. It is NOT safe for concurrent use: every method is a
// single indivisible unit of work that must not interleave with another
// call on the same instance. Callers that need concurrent access should
// guard the whole instance with one mutex; no operation blocks or depends
// on cache size, so a single lock is both sufficient and correct.
//
// Typical complexity for operations is amortized O(1):
// a map lookup plus constant-time list/bucket adjustments.
type Cache[K comparable, V any] interface {
	// Get returns the value for k and a boolean flag indicating presence.
	// On hit, the entry is touched according to the active policy
	// (promoted to MRU for LRU; usage count incremented for LFU).
	// A miss has no side effect.
	Get(k K) (V, bool)

	// Put inserts or updates k→v. An update overwrites in place and counts
	// as a use; it never changes Len and never evicts. An insert at
	// capacity first evicts the policy's victim, then admits k.
	Put(k K, v V)

	// Add inserts k→v only if k is not present.
	// Returns false if the key already exists (no update is performed).
	Add(k K, v V) bool

	// Peek returns the value for k without touching policy state:
	// no promotion, no usage count change, no hit/miss accounting.
	Peek(k K) (V, bool)

	// Remove deletes k if present and returns true on success.
	Remove(k K) bool

	// Len returns the number of resident entries. Always <= Cap.
	Len() int

	// Cap returns the capacity fixed at construction.
	Cap() int

	// Keys returns the resident keys in unspecified order.
	Keys() []K

	// Stats returns a snapshot of the hit/miss/eviction counters.
	Stats() Stats

	// GetOrLoad returns the value for k, loading it via Options.Loader on
	// miss and caching the result. If no Loader was configured, returns
	// ErrNoLoader.
	GetOrLoad(ctx context.Context, k K) (V, error)
}
