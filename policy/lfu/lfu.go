// Package lfu implements the LFU eviction policy with exact frequency
// buckets and eager min-frequency tracking.
package lfu

import (
	"container/list"

	"github.com/EH225/evictcache/policy"
)

// lfu is a Least-Frequently-Used policy with recency tie-break.
//
// Bookkeeping:
//   - buckets: usage count -> insertion-ordered entries at that count
//     (Front is the oldest-touched entry, Back the newest). Each bucket
//     acts as a FIFO, so ties between equally used entries are broken by
//     how long ago they were last touched.
//   - minFreq: the smallest usage count with a non-empty bucket. Every
//     mutation that can change it updates it in the same call; it is never
//     recomputed by scanning all buckets.
//
// An entry lives in exactly one bucket, the one matching its current
// usage count. Eviction pops the front of the minFreq bucket.
type lfu[K comparable, V any] struct {
	h policy.Hooks[K, V]

	buckets map[int]*list.List                  // element.Value is policy.Node[K,V]
	elems   map[policy.Node[K, V]]*list.Element // node -> its bucket element
	freqs   map[policy.Node[K, V]]int           // node -> current usage count

	// minFreq is zero only while no entries are tracked.
	minFreq int
}

type lfuPolicy[K comparable, V any] struct{}

// New returns a Policy factory that constructs engine-bound LFU instances.
func New[K comparable, V any]() policy.Policy[K, V] { return lfuPolicy[K, V]{} }

// New implements policy.Policy by binding engine hooks and returning
// a bound policy instance.
func (lfuPolicy[K, V]) New(h policy.Hooks[K, V]) policy.EnginePolicy[K, V] {
	return &lfu[K, V]{
		h:       h,
		buckets: make(map[int]*list.List),
		elems:   make(map[policy.Node[K, V]]*list.Element),
		freqs:   make(map[policy.Node[K, V]]int),
	}
}

// OnAdd admits a fresh entry at usage count 1: MRU in the engine list and
// the back of bucket 1. A newly inserted entry is always the new minimum,
// so minFreq resets to 1 unconditionally.
func (p *lfu[K, V]) OnAdd(n policy.Node[K, V]) {
	p.h.PushFront(n)
	p.freqs[n] = 1
	p.pushBack(1, n)
	p.minFreq = 1
}

// OnGet touches the entry: MRU promotion plus a usage count increment.
func (p *lfu[K, V]) OnGet(n policy.Node[K, V]) {
	p.h.MoveToFront(n)
	p.increment(n)
}

// OnUpdate follows OnGet semantics (an overwrite counts as a use).
func (p *lfu[K, V]) OnUpdate(n policy.Node[K, V]) { p.OnGet(n) }

// OnRemove drops all policy state for the node. Called for both evictions
// and explicit removals; the engine handles map/list deletion itself.
func (p *lfu[K, V]) OnRemove(n policy.Node[K, V]) {
	f, ok := p.freqs[n]
	if !ok {
		return
	}
	p.unlink(f, n)
	delete(p.freqs, n)

	if p.buckets[f] != nil || p.minFreq != f {
		return
	}
	// The minimum bucket just emptied. Eviction always targets minFreq and
	// is followed by an insert that resets minFreq to 1, but an explicit
	// Remove can leave a hole: walk up to the next occupied count.
	if len(p.freqs) == 0 {
		p.minFreq = 0
		return
	}
	for p.buckets[p.minFreq] == nil {
		p.minFreq++
	}
}

// Victim is the front of the minFreq bucket: the oldest-touched entry
// among the least-frequently-used ones. Nil when nothing is tracked.
func (p *lfu[K, V]) Victim() policy.Node[K, V] {
	if p.minFreq == 0 {
		return nil
	}
	b := p.buckets[p.minFreq]
	return b.Front().Value.(policy.Node[K, V])
}

// increment moves n from bucket f to the back of bucket f+1.
// If bucket f empties and was the minimum, f+1 is guaranteed non-empty
// (n now occupies it), so minFreq advances by exactly one.
func (p *lfu[K, V]) increment(n policy.Node[K, V]) {
	f := p.freqs[n]
	p.unlink(f, n)
	if p.buckets[f] == nil && p.minFreq == f {
		p.minFreq = f + 1
	}
	p.freqs[n] = f + 1
	p.pushBack(f+1, n)
}

// pushBack appends n to the bucket for count f, creating it if needed.
func (p *lfu[K, V]) pushBack(f int, n policy.Node[K, V]) {
	b := p.buckets[f]
	if b == nil {
		b = list.New()
		p.buckets[f] = b
	}
	p.elems[n] = b.PushBack(n)
}

// unlink removes n from the bucket for count f, deleting the bucket when
// it empties so that buckets only ever hold occupied counts.
func (p *lfu[K, V]) unlink(f int, n policy.Node[K, V]) {
	b := p.buckets[f]
	b.Remove(p.elems[n])
	delete(p.elems, n)
	if b.Len() == 0 {
		delete(p.buckets, f)
	}
}
