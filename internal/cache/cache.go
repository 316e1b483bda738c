// Package cache provides a bounded, owning LRU cache.
//
// Values stored in the cache are owned by it: whenever an entry leaves the
// cache (capacity eviction, replacement, Remove or Purge) the release
// callback runs exactly once for it, so resources held by the value can be
// freed deterministically.
package cache

import (
	"sync"

	"github.com/golang/groupcache/lru"
)

// Stats reports cache counters.
type Stats struct {
	Hits     uint64
	Misses   uint64
	Released uint64
	Len      int
	Capacity int
}

// LRU is a generic least-recently-used cache with a fixed capacity.
// It is safe for concurrent use. The release callback runs with the cache
// lock held and must not call back into the cache.
type LRU[K comparable, V any] struct {
	mu       sync.Mutex
	entries  *lru.Cache
	capacity int
	release  func(K, V)

	hits, misses, released uint64
}

// NewLRU creates a cache holding at most capacity entries. A capacity below
// one is raised to one. release may be nil.
func NewLRU[K comparable, V any](capacity int, release func(K, V)) *LRU[K, V] {
	capacity = max(capacity, 1)
	c := &LRU[K, V]{
		entries:  lru.New(capacity),
		capacity: capacity,
		release:  release,
	}
	c.entries.OnEvicted = func(key lru.Key, value interface{}) {
		c.released++
		if c.release != nil {
			c.release(key.(K), value.(V))
		}
	}
	return c
}

// Get returns the value for key and marks it most recently used.
func (c *LRU[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	v, ok := c.entries.Get(key)
	if !ok {
		c.misses++
		var zero V
		return zero, false
	}
	c.hits++
	return v.(V), true
}

// GetFunc calls fn with the value for key while the cache lock is held,
// so the value cannot be released while fn runs. It reports whether key
// was present and counts hits and misses like Get. fn must not call back
// into the cache.
func (c *LRU[K, V]) GetFunc(key K, fn func(V)) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	v, ok := c.entries.Get(key)
	if !ok {
		c.misses++
		return false
	}
	c.hits++
	fn(v.(V))
	return true
}

// Put stores value under key. An existing value for key is released first;
// the oldest entry is released when the cache is over capacity.
func (c *LRU[K, V]) Put(key K, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.entries.Get(key); ok {
		c.entries.Remove(key)
	}
	c.entries.Add(key, value)
}

// Remove releases and deletes the entry for key.
func (c *LRU[K, V]) Remove(key K) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.entries.Get(key); !ok {
		return false
	}
	c.entries.Remove(key)
	return true
}

// Purge releases every entry.
func (c *LRU[K, V]) Purge() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries.Clear()
}

// Len returns the number of cached entries.
func (c *LRU[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.entries.Len()
}

// Stats returns a snapshot of the cache counters.
func (c *LRU[K, V]) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()

	return Stats{
		Hits:     c.hits,
		Misses:   c.misses,
		Released: c.released,
		Len:      c.entries.Len(),
		Capacity: c.capacity,
	}
}
