// Package ttlcache implements time-bounded in-memory caches which share a single lazily armed
// sweep timer.
//
// Entries expire once their age reaches the registry's TTL. Expired entries are invisible to
// readers but only removed by the sweep, which fires one TTL after the first insertion, removes
// every expired entry from every cache of the registry and re-arms itself only while some entries
// remain.
package ttlcache

import (
	"fmt"
	"log/slog"
	"sync"
	"time"
)

var (
	// timeNow and afterFunc are swapped out for testing.
	timeNow   = time.Now
	afterFunc = func(d time.Duration, fn func()) stopper { return time.AfterFunc(d, fn) }
)

type stopper interface {
	Stop() bool
}

// sweepable is implemented by all caches attached to a registry.
type sweepable interface {
	sweep(now time.Time, ttl time.Duration) int
	purge()
	size() int
}

// Registry owns the TTL shared by a group of caches and schedules their cleanup. A zero TTL
// disables caching: reads always miss and writes are dropped, but existing entries are kept.
type Registry struct {
	mu     sync.Mutex
	ttl    time.Duration
	caches []sweepable
	timer  stopper
}

// NewRegistry returns an empty registry with the given TTL.
func NewRegistry(ttl time.Duration) *Registry {
	return &Registry{ttl: max(ttl, 0)}
}

// TTL returns the current time-to-live of entries.
func (r *Registry) TTL() time.Duration {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.ttl
}

// SetTTL updates the time-to-live. Stored entries keep their insertion time; only subsequent
// expiry comparisons use the new value. Negative values are treated as zero.
func (r *Registry) SetTTL(ttl time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ttl = max(ttl, 0)
}

// Len returns the number of entries, expired or not, across all caches.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, c := range r.caches {
		n += c.size()
	}
	return n
}

// Purge removes all entries from all caches.
func (r *Registry) Purge() {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.caches {
		c.purge()
	}
}

// Close disarms the sweep timer and purges all caches.
func (r *Registry) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.timer != nil {
		r.timer.Stop()
		r.timer = nil
	}
	for _, c := range r.caches {
		c.purge()
	}
}

func (r *Registry) register(c sweepable) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.caches = append(r.caches, c)
}

// arm schedules a sweep unless one is already pending.
func (r *Registry) arm() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.armLocked()
}

func (r *Registry) armLocked() {
	if r.timer != nil || r.ttl == 0 {
		return
	}
	r.timer = afterFunc(r.ttl, r.sweep)
}

func (r *Registry) sweep() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.timer = nil
	if r.ttl == 0 {
		return
	}
	now := timeNow()
	var removed, remaining int
	for _, c := range r.caches {
		before := c.size()
		left := c.sweep(now, r.ttl)
		removed += before - left
		remaining += left
	}
	slog.Debug(fmt.Sprintf("Swept %d cache entries.", removed), slog.Int("remaining", remaining))
	if remaining > 0 {
		r.armLocked()
	}
}
