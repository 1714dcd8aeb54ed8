// Package cache provides a generic, bounded in-memory cache with exact,
// pluggable eviction policies (LRU by default; LFU and 2Q provided),
// lightweight metrics hooks, and an optional miss-through Loader.
//
// Design
//
//   - Storage: one key index (map[K]*node) for lookups plus an intrusive
//     MRU↔LRU doubly linked list for ordering. The map owns the values;
//     the ordering structures hold only node references. All operations
//     are O(1) expected (O(1) amortized for LFU).
//
//   - Policies: eviction is pluggable via the policy package. A policy
//     manipulates the engine list through policy.Hooks, keeps any private
//     ordering state of its own (the LFU frequency buckets, 2Q's queues),
//     and nominates the next victim. When an insert would exceed capacity
//     the engine evicts the victim first, then admits the new entry, so a
//     fresh key can never be displaced by its own insertion.
//
//   - LRU: victim is the back of the engine list (least recently used).
//
//   - LFU: the policy buckets keys by usage count, FIFO within a bucket,
//     and tracks the minimum occupied count. Victim is the oldest-touched
//     key among the least used ones: frequency first, recency second.
//
//   - Concurrency: none. Each cache instance is single-goroutine; calls
//     must not interleave. Because no operation blocks or scales with
//     cache size, wrapping every call in one per-instance mutex is a
//     sufficient and correct way to share an instance if you must.
//
//   - Metrics: Options.Metrics receives Hit/Miss/Evict/Size signals.
//     By default NoopMetrics is used; plug the metrics/prom adapter to
//     export Prometheus metrics. Per-instance Stats counters are always
//     maintained and available via Stats().
//
// Basic usage
//
//	// Create an LRU cache with capacity for 10k entries.
//	c, err := cache.New[string, []byte](cache.Options[string, []byte]{Capacity: 10_000})
//	if err != nil {
//	    // only possible failure: Capacity < 1
//	}
//	c.Put("a", []byte("1"))
//	if v, ok := c.Get("a"); ok {
//	    _ = v // use value
//	}
//	c.Remove("a")
//
// Using the LFU policy
//
//	c, _ := cache.New[string, string](cache.Options[string, string]{
//	    Capacity: 1024,
//	    Policy:   lfu.New[string, string](),
//	})
//
// With GetOrLoad
//
//	c, _ := cache.New[string, string](cache.Options[string, string]{
//	    Capacity: 1024,
//	    Loader: func(ctx context.Context, k string) (string, error) {
//	        // e.g. fetch from DB
//	        return "v:" + k, nil
//	    },
//	})
//	v, err := c.GetOrLoad(context.Background(), "key")
//
// Exporting metrics (example Prometheus adapter)
//
//	m := prom.New(nil, "evictcache", "demo", nil) // implements Metrics
//	c, _ := cache.New[string, []byte](cache.Options[string, []byte]{
//	    Capacity: 10_000,
//	    Metrics:  m,
//	})
//
// See package cache/options.go for all available Options fields and package
// policy for the Policy/Hooks interfaces used to implement custom strategies.
package cache
