package ttlcache

import (
	"sync"
	"time"
)

// Entry is a cached value along with its insertion time.
type Entry[V any] struct {
	Value      V
	InsertedAt time.Time
}

func (e Entry[V]) expired(now time.Time, ttl time.Duration) bool {
	return now.Sub(e.InsertedAt) >= ttl
}

// Cache is a time-bounded map. It is safe for concurrent use.
type Cache[K comparable, V any] struct {
	registry *Registry
	mu       sync.RWMutex
	entries  map[K]Entry[V]
}

// New creates a cache attached to the registry, which controls its TTL and cleanup.
func New[K comparable, V any](r *Registry) *Cache[K, V] {
	c := &Cache[K, V]{registry: r, entries: make(map[K]Entry[V])}
	r.register(c)
	return c
}

// Get returns the value stored under the key if it is present and has not expired. Expired entries
// are left in place for the sweep.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	var zero V
	ttl := c.registry.TTL()
	if ttl == 0 {
		return zero, false
	}
	c.mu.RLock()
	entry, ok := c.entries[key]
	c.mu.RUnlock()
	if !ok || entry.expired(timeNow(), ttl) {
		return zero, false
	}
	return entry.Value, true
}

// Set stores the value under the key and arms the registry's sweep. It is a no-op when caching is
// disabled.
func (c *Cache[K, V]) Set(key K, val V) {
	if c.registry.TTL() == 0 {
		return
	}
	c.mu.Lock()
	c.entries[key] = Entry[V]{Value: val, InsertedAt: timeNow()}
	c.mu.Unlock()
	c.registry.arm()
}

// Len returns the number of stored entries, including expired ones not yet swept.
func (c *Cache[K, V]) Len() int {
	return c.size()
}

func (c *Cache[K, V]) size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

func (c *Cache[K, V]) sweep(now time.Time, ttl time.Duration) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	for key, entry := range c.entries {
		if entry.expired(now, ttl) {
			delete(c.entries, key)
		}
	}
	return len(c.entries)
}

func (c *Cache[K, V]) purge() {
	c.mu.Lock()
	defer c.mu.Unlock()
	clear(c.entries)
}
