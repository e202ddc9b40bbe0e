// TagForge - Trending Hashtag Aggregation and Recommendation Engine
// Copyright 2026 Alex M. (tagforge)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tagforge/tagforge

// Package cache provides the thread-safe in-memory TTL cache backing the
// trending providers. Staleness is checked lazily on read: an entry older
// than its TTL is treated as absent even if still physically present, so the
// background janitor only reclaims memory and never changes results.
package cache

import (
	"strings"
	"sync"
	"time"
)

// Entry represents a cached item with expiration.
type Entry struct {
	Data      interface{}
	ExpiresAt time.Time
}

// Stats is a snapshot of cache performance counters.
type Stats struct {
	Hits      int64
	Misses    int64
	Evictions int64
	TotalKeys int64
	LastSweep time.Time
}

// Cache is a thread-safe in-memory cache with TTL support.
//
// Writes are unconditional overwrites (last-write-wins); concurrent writers
// to the same key are acceptable because entries are idempotent
// re-derivations of the same external signal, not authoritative state.
type Cache struct {
	mu      sync.RWMutex
	entries map[string]Entry
	ttl     time.Duration

	statsMu sync.Mutex
	stats   Stats
}

// New creates a cache with the given default TTL for all entries.
//
// No background goroutine is started here; pair the cache with a Janitor
// running under the supervisor tree to sweep expired entries, or rely on
// lazy expiration alone.
func New(ttl time.Duration) *Cache {
	return &Cache{
		entries: make(map[string]Entry),
		ttl:     ttl,
		stats:   Stats{LastSweep: time.Now()},
	}
}

// Get retrieves a value by key. Returns (nil, false) when the key is absent
// or the entry has expired; an expired entry is deleted on the way out.
func (c *Cache) Get(key string) (interface{}, bool) {
	c.mu.RLock()
	entry, exists := c.entries[key]
	c.mu.RUnlock()

	if !exists {
		c.recordMiss()
		return nil, false
	}

	if time.Now().After(entry.ExpiresAt) {
		// Re-check under the write lock: a concurrent Set may have
		// refreshed the entry between the two lock acquisitions, and
		// last-write-wins means the fresh value must survive.
		c.mu.Lock()
		current, ok := c.entries[key]
		expired := ok && time.Now().After(current.ExpiresAt)
		if expired {
			delete(c.entries, key)
		}
		c.mu.Unlock()

		if ok && !expired {
			c.recordHit()
			return current.Data, true
		}
		c.recordMiss()
		if expired {
			c.recordEviction()
		}
		return nil, false
	}

	c.recordHit()
	return entry.Data, true
}

// Set stores a value with the cache's default TTL, overwriting any existing
// entry under the same key.
func (c *Cache) Set(key string, value interface{}) {
	c.SetWithTTL(key, value, c.ttl)
}

// SetWithTTL stores a value with a custom TTL.
func (c *Cache) SetWithTTL(key string, value interface{}, ttl time.Duration) {
	c.mu.Lock()
	c.entries[key] = Entry{
		Data:      value,
		ExpiresAt: time.Now().Add(ttl),
	}
	total := int64(len(c.entries))
	c.mu.Unlock()

	c.statsMu.Lock()
	c.stats.TotalKeys = total
	c.statsMu.Unlock()
}

// Delete removes a cache entry. Safe to call with non-existent keys.
func (c *Cache) Delete(key string) {
	c.mu.Lock()
	_, existed := c.entries[key]
	delete(c.entries, key)
	total := int64(len(c.entries))
	c.mu.Unlock()

	c.statsMu.Lock()
	if existed {
		c.stats.Evictions++
	}
	c.stats.TotalKeys = total
	c.statsMu.Unlock()
}

// Clear removes all entries in a single atomic operation.
func (c *Cache) Clear() {
	c.mu.Lock()
	evictions := int64(len(c.entries))
	c.entries = make(map[string]Entry)
	c.mu.Unlock()

	c.statsMu.Lock()
	c.stats.Evictions += evictions
	c.stats.TotalKeys = 0
	c.statsMu.Unlock()
}

// Sweep removes all physically expired entries and returns how many were
// evicted. Called periodically by the Janitor; results are unaffected either
// way because Get already checks expiry.
func (c *Cache) Sweep() int64 {
	now := time.Now()

	c.mu.Lock()
	evictions := int64(0)
	for key, entry := range c.entries {
		if now.After(entry.ExpiresAt) {
			delete(c.entries, key)
			evictions++
		}
	}
	total := int64(len(c.entries))
	c.mu.Unlock()

	c.statsMu.Lock()
	c.stats.Evictions += evictions
	c.stats.TotalKeys = total
	c.stats.LastSweep = now
	c.statsMu.Unlock()

	return evictions
}

// GetStats returns a snapshot of current cache performance counters.
func (c *Cache) GetStats() Stats {
	c.statsMu.Lock()
	defer c.statsMu.Unlock()
	return c.stats
}

// HitRate returns the cache hit rate as a percentage.
func (c *Cache) HitRate() float64 {
	stats := c.GetStats()
	total := stats.Hits + stats.Misses
	if total == 0 {
		return 0.0
	}
	return float64(stats.Hits) / float64(total) * 100.0
}

func (c *Cache) recordHit() {
	c.statsMu.Lock()
	c.stats.Hits++
	c.statsMu.Unlock()
}

func (c *Cache) recordMiss() {
	c.statsMu.Lock()
	c.stats.Misses++
	c.statsMu.Unlock()
}

func (c *Cache) recordEviction() {
	c.statsMu.Lock()
	c.stats.Evictions++
	c.statsMu.Unlock()
}

// Key builds the composite cache key for a provider result: the provider
// name joined with the lowercased category and platform.
//
//	cache.Key("hashtagify", "Food", "instagram") => "hashtagify_food_instagram"
func Key(provider, category, platform string) string {
	return provider + "_" + strings.ToLower(category) + "_" + strings.ToLower(platform)
}
