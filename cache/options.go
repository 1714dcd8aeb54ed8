package cache

import (
	"context"

	"github.com/EH225/evictcache/policy"
)

// Metrics exposes cache-level observability hooks.
// A NoopMetrics implementation is provided and used by default.
type Metrics interface {
	Hit()
	Miss()
	Evict()
	Size(entries int)
}

// Options configures the cache behavior. Zero values other than Capacity
// are safe; sane defaults are applied in New():
//   - nil Policy   => LRU
//   - nil Metrics  => NoopMetrics
type Options[K comparable, V any] struct {
	// Capacity is the entry count limit, fixed for the lifetime of the
	// cache. Must be >= 1; New rejects anything else with
	// ErrInvalidCapacity.
	Capacity int

	// Policy is a pluggable eviction policy (LRU/LFU/2Q); nil => LRU.
	Policy policy.Policy[K, V]

	// Loader fetches a value on cache miss. Used by GetOrLoad.
	Loader func(ctx context.Context, k K) (V, error)

	// Metrics receives Hit/Miss/Evict/Size signals.
	Metrics Metrics
}
