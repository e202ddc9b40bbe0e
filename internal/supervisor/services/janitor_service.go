// TagForge - Trending Hashtag Aggregation and Recommendation Engine
// Copyright 2026 Alex M. (tagforge)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tagforge/tagforge

package services

import (
	"context"
	"time"

	"github.com/tagforge/tagforge/internal/cache"
	"github.com/tagforge/tagforge/internal/logging"
	"github.com/tagforge/tagforge/internal/metrics"
)

// SweepableCache is the cache surface the janitor needs. *cache.Cache
// satisfies it.
type SweepableCache interface {
	Sweep() int64
	GetStats() cache.Stats
}

// CacheJanitorService periodically evicts expired cache entries and
// refreshes the cache and uptime gauges. Reads already skip expired
// entries, so the sweep exists to bound memory, not correctness.
type CacheJanitorService struct {
	cache     SweepableCache
	interval  time.Duration
	startedAt time.Time
}

// NewCacheJanitorService builds a janitor over c. A non-positive interval
// falls back to one minute. The constructor runs at process startup, so
// startedAt doubles as the process start time for the uptime gauge and
// survives supervised restarts.
func NewCacheJanitorService(c SweepableCache, interval time.Duration) *CacheJanitorService {
	if interval <= 0 {
		interval = time.Minute
	}
	return &CacheJanitorService{
		cache:     c,
		interval:  interval,
		startedAt: time.Now(),
	}
}

// Serve implements suture.Service. It sweeps on every tick until the
// context is canceled.
func (j *CacheJanitorService) Serve(ctx context.Context) error {
	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case <-ticker.C:
			evicted := j.cache.Sweep()
			stats := j.cache.GetStats()

			metrics.RecordCacheSweep("trending", evicted, stats.TotalKeys)
			metrics.UpdateUptime(j.startedAt)

			if evicted > 0 {
				logging.Debug().
					Int64("evicted", evicted).
					Int64("entries", stats.TotalKeys).
					Msg("Cache sweep completed")
			}
		}
	}
}

// String implements fmt.Stringer for supervisor log output.
func (j *CacheJanitorService) String() string {
	return "cache-janitor"
}
