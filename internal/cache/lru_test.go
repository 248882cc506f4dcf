// Stylist - Wardrobe Outfit Compatibility and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stylist

package cache

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/tomtom215/stylist/internal/metrics"
)

// fakeClock is a manually advanced clock.
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (f *fakeClock) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.now
}

func (f *fakeClock) Advance(d time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.now = f.now.Add(d)
}

func newTestLRU(capacity int, ttl time.Duration) (*LRU[string], *fakeClock) {
	clock := &fakeClock{now: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}
	c := NewLRU[string](capacity, ttl)
	c.now = clock.Now
	return c, clock
}

func TestLRU_BasicOperations(t *testing.T) {
	c, _ := newTestLRU(3, time.Minute)

	c.Set("a", "1", 0)
	c.Set("b", "2", 0)
	c.Set("c", "3", 0)

	for key, want := range map[string]string{"a": "1", "b": "2", "c": "3"} {
		got, found := c.Get(key)
		if !found || got != want {
			t.Errorf("Get(%q) = %q, %v; want %q", key, got, found, want)
		}
	}

	if c.Len() != 3 {
		t.Errorf("Len() = %d, want 3", c.Len())
	}

	c.Set("a", "updated", 0)
	if got, _ := c.Get("a"); got != "updated" {
		t.Errorf("Get(a) after update = %q", got)
	}
	if c.Len() != 3 {
		t.Errorf("update changed Len() to %d", c.Len())
	}
}

func TestLRU_Defaults(t *testing.T) {
	c := NewLRU[int](0, 0)
	if c.capacity != DefaultCapacity || c.ttl != DefaultTTL {
		t.Errorf("capacity/ttl = %d/%v, want defaults", c.capacity, c.ttl)
	}
}

func TestLRU_Eviction(t *testing.T) {
	c, _ := newTestLRU(3, time.Minute)

	c.Set("a", "1", 0)
	c.Set("b", "2", 0)
	c.Set("c", "3", 0)

	// Touch a so b becomes least recently used.
	c.Get("a")
	c.Set("d", "4", 0)

	if _, found := c.Get("b"); found {
		t.Error("expected b to be evicted")
	}
	for _, key := range []string{"a", "c", "d"} {
		if _, found := c.Get(key); !found {
			t.Errorf("expected %s to be present", key)
		}
	}
}

func TestLRU_TTL(t *testing.T) {
	c, clock := newTestLRU(10, time.Minute)

	c.Set("default", "x", 0)
	c.Set("short", "y", 10*time.Second)
	c.Set("long", "z", time.Hour)

	clock.Advance(30 * time.Second)
	if _, found := c.Get("short"); found {
		t.Error("short entry should have expired")
	}
	if _, found := c.Get("default"); !found {
		t.Error("default entry expired early")
	}

	clock.Advance(time.Minute)
	if _, found := c.Get("default"); found {
		t.Error("default entry should have expired")
	}
	if _, found := c.Get("long"); !found {
		t.Error("long entry expired early")
	}
}

func TestLRU_DeletePrefix(t *testing.T) {
	c, _ := newTestLRU(10, time.Minute)

	c.Set("rec:u1|casual", "a", 0)
	c.Set("rec:u1|formal", "b", 0)
	c.Set("rec:u10|casual", "c", 0)
	c.Set("rec:u2|casual", "d", 0)

	if n := c.DeletePrefix("rec:u1|"); n != 2 {
		t.Errorf("DeletePrefix() = %d, want 2", n)
	}
	if c.Len() != 2 {
		t.Errorf("Len() = %d, want 2", c.Len())
	}
	if _, found := c.Get("rec:u10|casual"); !found {
		t.Error("u10 entry removed by u1 prefix")
	}

	// The list must stay consistent after removals.
	c.Set("e", "e", 0)
	c.Set("f", "f", 0)
	if c.Len() != 4 {
		t.Errorf("Len() = %d, want 4", c.Len())
	}
}

func TestLRU_RemoveAndClear(t *testing.T) {
	c, _ := newTestLRU(10, time.Minute)
	c.Set("a", "1", 0)
	c.Set("b", "2", 0)

	if !c.Remove("a") {
		t.Error("Remove(a) = false")
	}
	if c.Remove("a") {
		t.Error("second Remove(a) = true")
	}

	c.Clear()
	if c.Len() != 0 {
		t.Errorf("Len() after Clear = %d", c.Len())
	}
	c.Set("c", "3", 0)
	if _, found := c.Get("c"); !found {
		t.Error("cache unusable after Clear")
	}
}

func TestLRU_CleanupExpired(t *testing.T) {
	c, clock := newTestLRU(10, time.Minute)

	c.Set("a", "1", 10*time.Second)
	c.Set("b", "2", 10*time.Second)
	c.Set("c", "3", time.Hour)

	clock.Advance(time.Minute)

	if removed := c.CleanupExpired(); removed != 2 {
		t.Errorf("CleanupExpired() = %d, want 2", removed)
	}
	if c.Len() != 1 {
		t.Errorf("Len() = %d, want 1", c.Len())
	}
}

func TestLRU_Stats(t *testing.T) {
	c, _ := newTestLRU(10, time.Minute)

	c.Set("a", "1", 0)
	c.Get("a")
	c.Get("a")
	c.Get("missing")

	hits, misses, size := c.Stats()
	if hits != 2 || misses != 1 || size != 1 {
		t.Errorf("Stats() = %d/%d/%d, want 2/1/1", hits, misses, size)
	}
}

func TestLRU_PointerValues(t *testing.T) {
	type result struct{ id string }
	c := NewLRU[*result](2, time.Minute)

	r := &result{id: "x"}
	c.Set("k", r, 0)
	got, ok := c.Get("k")
	if !ok || got != r {
		t.Errorf("Get() = %v, %v", got, ok)
	}

	if got, ok := c.Get("missing"); ok || got != nil {
		t.Errorf("missing Get() = %v, %v; want nil, false", got, ok)
	}
}

func TestLRU_ConcurrentAccess(t *testing.T) {
	c := NewLRU[int](100, time.Minute)

	var wg sync.WaitGroup
	for g := 0; g < 10; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				key := fmt.Sprintf("rec:u%d|%d", g, i%20)
				c.Set(key, i, 0)
				c.Get(key)
				if i%50 == 0 {
					c.DeletePrefix(fmt.Sprintf("rec:u%d|", g))
				}
			}
		}(g)
	}
	wg.Wait()

	if c.Len() > 100 {
		t.Errorf("Len() = %d exceeds capacity", c.Len())
	}
}

func TestLRU_NamedMetrics(t *testing.T) {
	const name = "lru_metrics_test"
	c, clock := newTestLRU(2, time.Minute)
	c.Named(name)

	c.Set("a", "1", 0)
	c.Set("b", "2", 0)
	c.Set("c", "3", 0) // evicts a
	c.Get("b")
	c.Get("a")
	clock.Advance(2 * time.Minute)
	c.Get("c") // expired
	c.DeletePrefix("b")

	checks := []struct {
		desc string
		got  float64
		want float64
	}{
		{"hits", testutil.ToFloat64(metrics.CacheHits.WithLabelValues(name)), 1},
		{"misses", testutil.ToFloat64(metrics.CacheMisses.WithLabelValues(name)), 2},
		{"capacity evictions", testutil.ToFloat64(metrics.CacheEvictions.WithLabelValues(name, "capacity")), 1},
		{"expired evictions", testutil.ToFloat64(metrics.CacheEvictions.WithLabelValues(name, "expired")), 1},
		{"invalidated", testutil.ToFloat64(metrics.CacheEvictions.WithLabelValues(name, "invalidated")), 1},
		{"size", testutil.ToFloat64(metrics.CacheSize.WithLabelValues(name)), 0},
	}
	for _, ch := range checks {
		if ch.got != ch.want {
			t.Errorf("%s = %v, want %v", ch.desc, ch.got, ch.want)
		}
	}
}
