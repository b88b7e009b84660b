// NightRoute - Venue Matching and Walkable Night-Out Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/nightroute

package cache

import (
	"container/list"
	"context"
	"crypto/sha256"
	"fmt"
	"sync"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/nightroute/internal/metrics"
)

// DefaultCleanupInterval is how often Serve sweeps expired entries.
const DefaultCleanupInterval = time.Minute

// entry is a cached value with its expiry, stored in the recency list.
type entry[V any] struct {
	key       string
	value     V
	expiresAt time.Time
}

// Cache is a thread-safe in-memory cache with per-entry TTL and an optional
// capacity. When full, the least recently used entry is evicted.
//
// Expired entries are removed lazily on Get and in bulk by Serve, which is
// meant to run under a supervisor.
type Cache[V any] struct {
	mu       sync.Mutex
	name     string
	ttl      time.Duration
	capacity int
	items    map[string]*list.Element
	order    *list.List // front is most recently used
	now      func() time.Time

	stats Stats
}

// Stats tracks cache performance metrics
type Stats struct {
	Hits        int64
	Misses      int64
	Evictions   int64
	TotalKeys   int64
	LastCleanup time.Time
}

// New creates a cache. name labels the cache's Prometheus series.
// capacity <= 0 means unbounded.
//
// Example:
//
//	venues := cache.New[[]models.Venue]("venues", 5*time.Minute, 1000)
//	venues.Set(key, result)
//	if v, ok := venues.Get(key); ok {
//	    // Use cached data
//	}
func New[V any](name string, ttl time.Duration, capacity int) *Cache[V] {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &Cache[V]{
		name:     name,
		ttl:      ttl,
		capacity: capacity,
		items:    make(map[string]*list.Element),
		order:    list.New(),
		now:      time.Now,
	}
}

// Name returns the cache name.
func (c *Cache[V]) Name() string {
	return c.name
}

// Get retrieves a value. Expired entries are removed and count as misses.
func (c *Cache[V]) Get(key string) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var zero V
	el, ok := c.items[key]
	if !ok {
		c.recordAccess(false)
		return zero, false
	}

	e := el.Value.(*entry[V])
	if c.now().After(e.expiresAt) {
		c.removeElement(el)
		c.recordAccess(false)
		return zero, false
	}

	c.order.MoveToFront(el)
	c.recordAccess(true)
	return e.value, true
}

// Set stores a value with the default TTL.
func (c *Cache[V]) Set(key string, value V) {
	c.SetWithTTL(key, value, c.ttl)
}

// SetWithTTL stores a value with a custom TTL.
func (c *Cache[V]) SetWithTTL(key string, value V, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	expiresAt := c.now().Add(ttl)
	if el, ok := c.items[key]; ok {
		e := el.Value.(*entry[V])
		e.value = value
		e.expiresAt = expiresAt
		c.order.MoveToFront(el)
		return
	}

	c.items[key] = c.order.PushFront(&entry[V]{key: key, value: value, expiresAt: expiresAt})
	if c.capacity > 0 && c.order.Len() > c.capacity {
		c.removeElement(c.order.Back())
	}
	c.updateSize()
}

// Delete removes a specific cache entry by key.
func (c *Cache[V]) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if el, ok := c.items[key]; ok {
		c.removeElement(el)
	}
}

// Clear removes all entries from the cache.
func (c *Cache[V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	evicted := int64(len(c.items))
	c.items = make(map[string]*list.Element)
	c.order.Init()
	c.stats.Evictions += evicted
	metrics.CacheEvictions.WithLabelValues(c.name).Add(float64(evicted))
	c.updateSize()
}

// Len returns the number of entries, including expired ones not yet swept.
func (c *Cache[V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}

// GetStats returns a snapshot of current cache statistics.
func (c *Cache[V]) GetStats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stats
}

// HitRate returns the cache hit rate as a percentage
func (c *Cache[V]) HitRate() float64 {
	stats := c.GetStats()
	total := stats.Hits + stats.Misses
	if total == 0 {
		return 0.0
	}
	return float64(stats.Hits) / float64(total) * 100.0
}

// Cleanup removes all expired entries and returns how many were removed.
func (c *Cache[V]) Cleanup() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	removed := 0
	for el := c.order.Back(); el != nil; {
		prev := el.Prev()
		if now.After(el.Value.(*entry[V]).expiresAt) {
			c.removeElement(el)
			removed++
		}
		el = prev
	}
	c.stats.LastCleanup = now
	return removed
}

// Serve sweeps expired entries every DefaultCleanupInterval until ctx is done.
// It implements suture.Service.
func (c *Cache[V]) Serve(ctx context.Context) error {
	ticker := time.NewTicker(DefaultCleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			c.Cleanup()
		}
	}
}

// String returns the service name for supervisor logs.
func (c *Cache[V]) String() string {
	return "cache-janitor-" + c.name
}

// removeElement must be called with mu held.
func (c *Cache[V]) removeElement(el *list.Element) {
	e := el.Value.(*entry[V])
	delete(c.items, e.key)
	c.order.Remove(el)
	c.stats.Evictions++
	metrics.CacheEvictions.WithLabelValues(c.name).Inc()
	c.updateSize()
}

// recordAccess must be called with mu held.
func (c *Cache[V]) recordAccess(hit bool) {
	if hit {
		c.stats.Hits++
	} else {
		c.stats.Misses++
	}
	metrics.RecordCacheAccess(c.name, hit)
}

// updateSize must be called with mu held.
func (c *Cache[V]) updateSize() {
	c.stats.TotalKeys = int64(len(c.items))
	metrics.CacheSize.WithLabelValues(c.name).Set(float64(len(c.items)))
}

// GenerateKey creates a cache key from the method name and parameters
func GenerateKey(method string, params interface{}) string {
	// Serialize parameters to JSON
	data, err := json.Marshal(params)
	if err != nil {
		// Fallback to simple string key
		return fmt.Sprintf("%s:%v", method, params)
	}

	// Hash the JSON data for a compact key
	hash := sha256.Sum256(data)
	return fmt.Sprintf("%s:%x", method, hash[:16])
}
