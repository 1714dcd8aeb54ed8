package cache

import (
	"math/rand"
	"strconv"
	"testing"

	"github.com/EH225/evictcache/policy"
	"github.com/EH225/evictcache/policy/lfu"
)

// benchmarkMix exercises a read/write mix against a warm cache.
// String keys include strconv/concat costs and often allocate, which is fine
// for an end-to-end benchmark.
func benchmarkMix(b *testing.B, pol policy.Policy[string, string], readsPct int) {
	c, err := New[string, string](Options[string, string]{
		Capacity: 100_000,
		Policy:   pol,
	})
	if err != nil {
		b.Fatal(err)
	}

	// Preload half the capacity to get a realistic hit-rate.
	for i := 0; i < 50_000; i++ {
		k := "k:" + strconv.Itoa(i)
		c.Put(k, "v")
	}

	// Report per-op allocations for a rough idea where costs go.
	b.ReportAllocs()
	b.ResetTimer()

	r := rand.New(rand.NewSource(1))
	keyMask := (1 << 16) - 1 // hot keyspace (power of two for fast &-mask)

	for i := 0; i < b.N; i++ {
		k := "k:" + strconv.Itoa(i&keyMask)
		if r.Intn(100) < readsPct {
			c.Get(k)
		} else {
			c.Put(k, "v")
		}
	}
}

func BenchmarkCache_LRU_90r10w(b *testing.B) { benchmarkMix(b, nil, 90) }
func BenchmarkCache_LRU_50r50w(b *testing.B) { benchmarkMix(b, nil, 50) }
func BenchmarkCache_LFU_90r10w(b *testing.B) { benchmarkMix(b, lfu.New[string, string](), 90) }
func BenchmarkCache_LFU_50r50w(b *testing.B) { benchmarkMix(b, lfu.New[string, string](), 50) }

// benchmarkMixInt is the same workload but with int keys.
// This removes strconv/alloc noise and better exposes the cache hot path.
func benchmarkMixInt(b *testing.B, pol policy.Policy[int, int], readsPct int) {
	c, err := New[int, int](Options[int, int]{
		Capacity: 100_000,
		Policy:   pol,
	})
	if err != nil {
		b.Fatal(err)
	}

	for i := 0; i < 50_000; i++ {
		c.Put(i, 1)
	}

	b.ReportAllocs()
	b.ResetTimer()

	r := rand.New(rand.NewSource(1))
	keyMask := (1 << 16) - 1

	for i := 0; i < b.N; i++ {
		k := i & keyMask
		if r.Intn(100) < readsPct {
			c.Get(k)
		} else {
			c.Put(k, 1)
		}
	}
}

func BenchmarkCache_LRU_IntKeys_90r10w(b *testing.B) { benchmarkMixInt(b, nil, 90) }
func BenchmarkCache_LFU_IntKeys_90r10w(b *testing.B) {
	benchmarkMixInt(b, lfu.New[int, int](), 90)
}
