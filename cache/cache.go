package cache

import (
	"context"
	"errors"

	"github.com/EH225/evictcache/policy"
	"github.com/EH225/evictcache/policy/lru"
)

// ErrInvalidCapacity is returned by New when Options.Capacity < 1.
var ErrInvalidCapacity = errors.New("cache: capacity must be >= 1")

// ErrNoLoader is returned by GetOrLoad when no Loader was configured in Options.
var ErrNoLoader = errors.New("cache: no Loader provided")

// engine is the single index + ordering structure behind Cache.
// The map is the canonical owner of values; the intrusive list and any
// policy-internal buckets hold only node references, never value copies.
type engine[K comparable, V any] struct {
	m    map[K]*node[K, V]
	head *node[K, V] // MRU
	tail *node[K, V] // LRU
	len  int
	cap  int

	// Policy and options (policy uses hooks to manipulate the list).
	pol policy.EnginePolicy[K, V]
	opt Options[K, V]

	stats Stats
}

// New constructs a cache with the provided Options.
// Capacity < 1 is rejected with ErrInvalidCapacity.
// Defaults:
//   - nil Metrics -> NoopMetrics
//   - nil Policy  -> LRU
func New[K comparable, V any](opt Options[K, V]) (Cache[K, V], error) {
	if opt.Capacity < 1 {
		return nil, ErrInvalidCapacity
	}
	if opt.Metrics == nil {
		opt.Metrics = NoopMetrics{}
	}
	if opt.Policy == nil {
		opt.Policy = lru.New[K, V]()
	}

	e := &engine[K, V]{
		m:   make(map[K]*node[K, V], opt.Capacity),
		cap: opt.Capacity,
		opt: opt,
	}
	// Bind the policy to this engine's list hooks.
	e.pol = opt.Policy.New(engineHooks[K, V]{e: e})
	return e, nil
}

// ---- Cache[K,V] implementation ----

// Get returns the value for k and touches the entry on hit.
func (e *engine[K, V]) Get(k K) (V, bool) {
	n, ok := e.m[k]
	if !ok {
		e.stats.Misses++
		e.opt.Metrics.Miss()
		var zero V
		return zero, false
	}
	e.pol.OnGet(n)
	e.stats.Hits++
	e.opt.Metrics.Hit()
	return n.val, true
}

// Put inserts or updates k→v.
// Updates overwrite in place: Len never changes and nothing is evicted.
func (e *engine[K, V]) Put(k K, v V) {
	if n, ok := e.m[k]; ok {
		n.val = v
		e.pol.OnUpdate(n)
		return
	}
	e.admit(k, v)
}

// Add inserts k→v only if absent. Returns false on duplicate.
func (e *engine[K, V]) Add(k K, v V) bool {
	if _, ok := e.m[k]; ok {
		return false
	}
	e.admit(k, v)
	return true
}

// Peek reads k without promotion, usage counting, or hit/miss accounting.
func (e *engine[K, V]) Peek(k K) (V, bool) {
	if n, ok := e.m[k]; ok {
		return n.val, true
	}
	var zero V
	return zero, false
}

// Remove deletes an entry by key. Returns true if the entry existed.
// Explicit removals are not counted as evictions.
func (e *engine[K, V]) Remove(k K) bool {
	n, ok := e.m[k]
	if !ok {
		return false
	}
	e.pol.OnRemove(n)
	e.removeNode(n)
	delete(e.m, k)
	e.opt.Metrics.Size(e.len)
	return true
}

// Len returns the number of resident entries.
func (e *engine[K, V]) Len() int { return e.len }

// Cap returns the capacity fixed at construction.
func (e *engine[K, V]) Cap() int { return e.cap }

// Keys returns the resident keys in unspecified (map iteration) order.
func (e *engine[K, V]) Keys() []K {
	keys := make([]K, 0, len(e.m))
	for k := range e.m {
		keys = append(keys, k)
	}
	return keys
}

// Stats returns a snapshot of the operation counters.
func (e *engine[K, V]) Stats() Stats { return e.stats }

// GetOrLoad returns the value for k; on miss it loads via Options.Loader
// and caches the result. The engine is single-goroutine, so there are no
// concurrent loads to coalesce; ctx is passed straight to the Loader.
func (e *engine[K, V]) GetOrLoad(ctx context.Context, k K) (V, error) {
	if v, ok := e.Get(k); ok {
		return v, nil
	}
	if e.opt.Loader == nil {
		var zero V
		return zero, ErrNoLoader
	}
	v, err := e.opt.Loader(ctx, k)
	if err != nil {
		var zero V
		return zero, err
	}
	e.Put(k, v)
	return v, nil
}

// ---- internals ----

// admit inserts a key known to be absent. At capacity, the policy's victim
// is evicted first, so the new entry can never be its own victim.
func (e *engine[K, V]) admit(k K, v V) {
	if e.len >= e.cap {
		if victim := e.pol.Victim(); victim != nil {
			e.evictNode(victim.(*node[K, V]))
		}
	}
	n := &node[K, V]{key: k, val: v}
	e.m[k] = n
	e.pol.OnAdd(n)
	e.opt.Metrics.Size(e.len)
}

// evictNode removes the node and updates counters/metrics.
func (e *engine[K, V]) evictNode(n *node[K, V]) {
	e.pol.OnRemove(n)
	e.removeNode(n)
	delete(e.m, n.key)
	e.stats.Evictions++
	e.opt.Metrics.Evict()
}

// insertFront inserts n at MRU in O(1).
func (e *engine[K, V]) insertFront(n *node[K, V]) {
	n.prev = nil
	n.next = e.head
	if e.head != nil {
		e.head.prev = n
	}
	e.head = n
	if e.tail == nil {
		e.tail = n
	}
	e.len++
}

// moveToFront promotes n to MRU in O(1).
func (e *engine[K, V]) moveToFront(n *node[K, V]) {
	if n == e.head {
		return
	}
	// detach
	if n.prev != nil {
		n.prev.next = n.next
	}
	if n.next != nil {
		n.next.prev = n.prev
	}
	if e.tail == n {
		e.tail = n.prev
	}
	// insert at head
	n.prev = nil
	n.next = e.head
	if e.head != nil {
		e.head.prev = n
	}
	e.head = n
	if e.tail == nil {
		e.tail = n
	}
}

// removeNode removes n from the list and updates counters in O(1).
func (e *engine[K, V]) removeNode(n *node[K, V]) {
	if n.prev != nil {
		n.prev.next = n.next
	}
	if n.next != nil {
		n.next.prev = n.prev
	}
	if e.head == n {
		e.head = n.next
	}
	if e.tail == n {
		e.tail = n.prev
	}
	n.prev, n.next = nil, nil
	e.len--
}

// back returns the current LRU node in O(1).
func (e *engine[K, V]) back() *node[K, V] { return e.tail }

// ---- policy hooks ----

// engineHooks adapts the engine's list operations to policy.Hooks.
type engineHooks[K comparable, V any] struct{ e *engine[K, V] }

func (h engineHooks[K, V]) MoveToFront(x policy.Node[K, V]) { h.e.moveToFront(x.(*node[K, V])) }
func (h engineHooks[K, V]) PushFront(x policy.Node[K, V])   { h.e.insertFront(x.(*node[K, V])) }
func (h engineHooks[K, V]) Remove(x policy.Node[K, V]) {
	// Map bookkeeping is performed by the engine itself.
	h.e.removeNode(x.(*node[K, V]))
}
func (h engineHooks[K, V]) Back() policy.Node[K, V] {
	if n := h.e.back(); n != nil {
		return n
	}
	return nil
}
func (h engineHooks[K, V]) Len() int { return h.e.len }
