package cache

import (
	"strconv"
	"sync"
	"testing"
)

func TestNew(t *testing.T) {
	c := New[string, int](100)
	if c.Capacity() != 100 {
		t.Errorf("expected capacity 100, got %d", c.Capacity())
	}
	if c.Len() != 0 {
		t.Errorf("expected empty cache, got %d entries", c.Len())
	}
	if got := New[string, int](0).Capacity(); got != DefaultCapacity {
		t.Errorf("expected default capacity %d, got %d", DefaultCapacity, got)
	}
}

func TestCacheGetOrCreate(t *testing.T) {
	c := New[string, int](10)
	created := 0
	create := func() int {
		created++
		return 100
	}

	if val := c.GetOrCreate("key1", create); val != 100 {
		t.Errorf("expected 100, got %d", val)
	}
	if val := c.GetOrCreate("key1", create); val != 100 {
		t.Errorf("expected cached 100, got %d", val)
	}
	if created != 1 {
		t.Errorf("expected create called once, got %d", created)
	}

	s := c.Stats()
	if s.Hits != 1 || s.Misses != 1 {
		t.Errorf("stats hits=%d misses=%d, want 1 and 1", s.Hits, s.Misses)
	}
	if s.HitRate != 0.5 {
		t.Errorf("hit rate = %v, want 0.5", s.HitRate)
	}
}

func TestCacheEvictsLeastRecentlyUsed(t *testing.T) {
	c := New[int, int](3)
	created := map[int]int{}
	get := func(k int) int {
		return c.GetOrCreate(k, func() int {
			created[k]++
			return k * 10
		})
	}
	for i := range 3 {
		get(i)
	}

	// Touch 0 so 1 becomes the oldest.
	get(0)
	get(3)

	if e := c.Stats().Evictions; e != 1 {
		t.Errorf("evictions = %d, want 1", e)
	}
	for _, k := range []int{0, 2, 3} {
		if v := get(k); v != k*10 || created[k] != 1 {
			t.Errorf("key %d: value %d, created %d times; want survivor", k, v, created[k])
		}
	}
	if get(1); created[1] != 2 {
		t.Errorf("key 1 created %d times, want rebuild after eviction", created[1])
	}
	if c.Len() != 3 {
		t.Errorf("Len = %d, want 3", c.Len())
	}
}

func TestCacheClear(t *testing.T) {
	c := New[string, int](4)
	c.GetOrCreate("a", func() int { return 1 })
	c.GetOrCreate("b", func() int { return 2 })

	c.Clear()
	if c.Len() != 0 {
		t.Errorf("Len = %d after clear, want 0", c.Len())
	}
	if s := c.Stats(); s.Misses != 2 {
		t.Errorf("Clear reset stats: misses = %d, want 2", s.Misses)
	}

	rebuilt := false
	v := c.GetOrCreate("a", func() int {
		rebuilt = true
		return 3
	})
	if !rebuilt || v != 3 {
		t.Errorf("GetOrCreate after Clear = %d, rebuilt %v", v, rebuilt)
	}
	if c.Len() != 1 {
		t.Errorf("Len = %d, want 1", c.Len())
	}
}

func TestCacheConcurrent(t *testing.T) {
	c := New[string, int](16)
	var wg sync.WaitGroup
	for g := range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range 200 {
				key := strconv.Itoa((g + i) % 32)
				v := c.GetOrCreate(key, func() int { return (g + i) % 32 })
				if strconv.Itoa(v) != key {
					t.Errorf("GetOrCreate(%s) = %d", key, v)
					return
				}
			}
		}()
	}
	wg.Wait()

	if c.Len() > 16 {
		t.Errorf("Len = %d exceeds capacity", c.Len())
	}
}

func BenchmarkCacheGetOrCreate(b *testing.B) {
	c := New[string, int](64)
	for i := 0; i < b.N; i++ {
		c.GetOrCreate(strconv.Itoa(i%100), func() int { return i })
	}
}
