package cache

// node is an intrusive doubly linked list element owned by the engine.
// It stores the key/value alongside list links used by eviction policies.
type node[K comparable, V any] struct {
	key K
	val V

	// Intrusive list links: head is MRU, tail is LRU.
	prev *node[K, V]
	next *node[K, V]
}

// Key returns the node key (part of policy.Node interface).
func (n *node[K, V]) Key() K { return n.key }

// Value returns a pointer to the stored value (part of policy.Node interface).
func (n *node[K, V]) Value() *V { return &n.val }
