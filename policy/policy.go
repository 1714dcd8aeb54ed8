package policy

// Node is the minimal contract a cache entry must satisfy for a policy.
// It provides read-only access to the key and a pointer to the value.
// The pointer allows in-place updates without re-linking the intrusive node.
type Node[K comparable, V any] interface {
	Key() K
	Value() *V
}

// Hooks expose O(1) list operations that a policy can use to manipulate
// the engine's intrusive MRU/LRU list. Implementations are provided by the
// engine.
//
// Important: hooks manage only the list; the engine owns the key->node map.
type Hooks[K comparable, V any] interface {
	// MoveToFront promotes the node to MRU.
	MoveToFront(Node[K, V])
	// PushFront inserts the node at MRU (used on admission).
	PushFront(Node[K, V])
	// Remove detaches the node from the list (map bookkeeping is done by the engine).
	Remove(Node[K, V])
	// Back returns the current LRU node (or nil if empty).
	Back() Node[K, V]
	// Len returns the number of resident nodes in the engine.
	Len() int
}

// EnginePolicy is a policy instance bound to one engine's hooks.
// All methods are invoked by the engine as part of a single Get/Put/Remove
// call; no method is ever called concurrently with another on the same
// instance.
//
// Semantics:
//   - OnAdd places a freshly admitted entry (typically at MRU) and records
//     policy-internal bookkeeping (e.g., the count-1 frequency bucket for
//     LFU). The engine has already made room: OnAdd never needs to evict.
//   - OnGet/OnUpdate touch the entry (promote to MRU, bump usage count).
//   - OnRemove is a notification to drop policy-internal state for the
//     node. The engine performs the actual map/list deletion afterwards.
//   - Victim returns the entry the policy would evict next, or nil when
//     the engine is empty. The engine calls it exactly when an insertion
//     would exceed capacity, before admitting the new entry.
type EnginePolicy[K comparable, V any] interface {
	OnAdd(Node[K, V])
	OnGet(Node[K, V])
	OnUpdate(Node[K, V])
	OnRemove(Node[K, V])
	Victim() Node[K, V]
}

// Policy is a factory that creates policy instances bound to a particular
// engine's hooks.
type Policy[K comparable, V any] interface {
	New(Hooks[K, V]) EnginePolicy[K, V]
}
