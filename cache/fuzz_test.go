package cache

import (
	"strings"
	"testing"

	"github.com/EH225/evictcache/policy/lfu"
)

// Fuzz basic Put/Get/Remove semantics under arbitrary string inputs, for
// both engines. Guards against panics and ensures core invariants hold.
// NOTE: We cap key/value lengths to avoid pathological memory usage
// during fuzzing (this does not weaken the invariants we check).
func FuzzCache_PutGetRemove(f *testing.F) {
	// Seed corpus: empty, ASCII, Unicode, long strings.
	f.Add("", "")
	f.Add("a", "1")
	f.Add("b", "2")
	f.Add("αβγ", "δ")
	f.Add("emoji🙂", "🙂🙂")
	f.Add("long", strings.Repeat("x", 1024))

	f.Fuzz(func(t *testing.T, k, v string) {
		// Cap lengths to keep memory bounded during fuzzing.
		const limit = 1 << 12 // 4096
		if len(k) > limit {
			k = k[:limit]
		}
		if len(v) > limit {
			v = v[:limit]
		}

		for name, opt := range map[string]Options[string, string]{
			"lru": {Capacity: 16},
			"lfu": {Capacity: 16, Policy: lfu.New[string, string]()},
		} {
			c, err := New[string, string](opt)
			if err != nil {
				t.Fatal(err)
			}

			// Put -> Get must return the same value.
			c.Put(k, v)
			got, ok := c.Get(k)
			if !ok || got != v {
				t.Fatalf("%s: after Put/Get: want %q, got %q ok=%v", name, v, got, ok)
			}

			// Add duplicate must not overwrite and must return false.
			if ok := c.Add(k, "other"); ok {
				t.Fatalf("%s: Add duplicate returned true", name)
			}
			// Value must remain the same after failed Add.
			if got2, ok := c.Get(k); !ok || got2 != v {
				t.Fatalf("%s: after duplicate Add: want %q, got %q ok=%v", name, v, got2, ok)
			}

			// Remove must delete and return true once.
			if !c.Remove(k) {
				t.Fatalf("%s: Remove must return true", name)
			}
			if _, ok := c.Get(k); ok {
				t.Fatalf("%s: key must be absent after Remove", name)
			}

			// After removal, Add should succeed again.
			if ok := c.Add(k, v); !ok {
				t.Fatalf("%s: Add after Remove must return true", name)
			}
			checkConsistent(t, c)
		}
	})
}
