// Command bench runs a synthetic workload against a cache engine and
// exposes optional pprof/Prometheus endpoints.
//
// The engines are single-goroutine, so the workload runs on one goroutine;
// the HTTP endpoints may be scraped concurrently because the Prometheus
// metric types are goroutine-safe.
package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"net/http"
	_ "net/http/pprof" // registers /debug/pprof/* on DefaultServeMux
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/EH225/evictcache/cache"
	pmet "github.com/EH225/evictcache/metrics/prom"
	"github.com/EH225/evictcache/policy/lfu"
	"github.com/EH225/evictcache/policy/twoq"
)

func main() {
	// ---- Flags ----
	var (
		capacity = flag.Int("cap", 100_000, "cache capacity (entries)")
		policy   = flag.String("policy", "lru", "eviction policy: lru | lfu | 2q")

		duration = flag.Duration("duration", 10*time.Second, "benchmark duration")
		readPct  = flag.Int("reads", 80, "read percentage [0..100]")

		keys    = flag.Int("keys", 1_000_000, "keyspace size")
		zipfS   = flag.Float64("zipf_s", 1.1, "Zipf s > 1 (skew)")
		zipfV   = flag.Float64("zipf_v", 1.0, "Zipf v")
		seed    = flag.Int64("seed", time.Now().UnixNano(), "random seed")
		preload = flag.Int("preload", 0, "preload entries (0 = cap/2)")

		pprofAddr   = flag.String("pprof", "", "serve pprof at addr (e.g. :6060); empty = disabled")
		metricsAddr = flag.String("http", "", "serve Prometheus metrics at addr; empty = disabled")
	)
	flag.Parse()

	// ---- pprof server (on DefaultServeMux) ----
	if *pprofAddr != "" {
		go func() {
			log.Printf("pprof: serving at %s", *pprofAddr)
			log.Println(http.ListenAndServe(*pprofAddr, nil))
		}()
	}

	// ---- Prometheus metrics (on DefaultServeMux) ----
	var metrics cache.Metrics
	if *metricsAddr != "" {
		metrics = pmet.New(nil, "evictcache", "bench", nil)
		http.Handle("/metrics", promhttp.Handler())
		go func() {
			log.Printf("metrics: serving at %s", *metricsAddr)
			log.Println(http.ListenAndServe(*metricsAddr, nil))
		}()
	}

	// ---- Build cache ----
	opt := cache.Options[string, string]{
		Capacity: *capacity,
		Metrics:  metrics,
	}
	switch *policy {
	case "lru":
		// nil => LRU by default
	case "lfu":
		opt.Policy = lfu.New[string, string]()
	case "2q":
		// split 2Q queues as a simple default
		opt.Policy = twoq.New[string, string](*capacity/4, *capacity/2)
	default:
		log.Fatalf("unknown policy: %q (use lru, lfu or 2q)", *policy)
	}
	c, err := cache.New[string, string](opt)
	if err != nil {
		log.Fatal(err)
	}

	// ---- Preload half capacity to get a realistic hit-rate ----
	pl := *preload
	if pl == 0 {
		pl = *capacity / 2
	}
	for i := 0; i < pl; i++ {
		k := "k:" + strconv.Itoa(i)
		c.Put(k, "v"+strconv.Itoa(i))
	}

	// ---- Load generation (one goroutine; the engine is not locked) ----
	r := rand.New(rand.NewSource(*seed))
	zipf := rand.NewZipf(r, *zipfS, *zipfV, uint64(*keys-1))
	keyByZipf := func() string {
		return "k:" + strconv.FormatUint(zipf.Uint64(), 10)
	}

	var reads, writes, total uint64
	deadline := time.Now().Add(*duration)
	start := time.Now()
	for {
		// Check the clock in batches; a syscall per op would dominate.
		for i := 0; i < 1024; i++ {
			total++
			if int(r.Int31n(100)) < *readPct {
				reads++
				c.Get(keyByZipf())
			} else {
				writes++
				c.Put(keyByZipf(), "v"+strconv.Itoa(r.Int()))
			}
		}
		if time.Now().After(deadline) {
			break
		}
	}
	elapsed := time.Since(start)

	// ---- Report ----
	s := c.Stats()
	hitRate := 0.0
	if reads > 0 {
		hitRate = float64(s.Hits) / float64(reads) * 100
	}

	fmt.Printf("policy=%s cap=%d keys=%d dur=%v seed=%d\n",
		*policy, *capacity, *keys, elapsed, *seed)
	fmt.Printf("ops=%d (%.0f ops/s)  reads=%d  writes=%d\n",
		total, float64(total)/elapsed.Seconds(), reads, writes)
	fmt.Printf("hits=%d  misses=%d  evictions=%d  hit-rate=%.2f%%\n",
		s.Hits, s.Misses, s.Evictions, hitRate)
	fmt.Printf("Len()=%d\n", c.Len())
}
