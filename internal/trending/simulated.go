// TagForge - Trending Hashtag Aggregation and Recommendation Engine
// Copyright 2026 Alex M. (tagforge)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tagforge/tagforge

package trending

import (
	"context"

	"github.com/tagforge/tagforge/internal/cache"
	"github.com/tagforge/tagforge/internal/logging"
	"github.com/tagforge/tagforge/internal/metrics"
)

const (
	providerHashtagify = "hashtagify"
	providerRitetag    = "ritetag"

	// ritetag's simulated feed scales engagement and suffixes tags so its
	// records stay distinguishable from the hashtagify ones after merging.
	ritetagMultiplier = 1.2
	ritetagSuffix     = "RT"
)

// SimulatedAPIProvider stands in for a credentialed hashtag-analytics API.
// Without credentials it derives best-effort records from the curated table;
// a real client can replace it behind the same Provider interface without
// touching the aggregator.
type SimulatedAPIProvider struct {
	name       string
	cache      *cache.Cache
	multiplier float64
	suffix     string
}

// NewHashtagifyProvider creates the hashtagify stand-in provider.
func NewHashtagifyProvider(c *cache.Cache) *SimulatedAPIProvider {
	return &SimulatedAPIProvider{name: providerHashtagify, cache: c, multiplier: 1.0}
}

// NewRitetagProvider creates the ritetag stand-in provider.
func NewRitetagProvider(c *cache.Cache) *SimulatedAPIProvider {
	return &SimulatedAPIProvider{name: providerRitetag, cache: c, multiplier: ritetagMultiplier, suffix: ritetagSuffix}
}

// Name implements Provider.
func (p *SimulatedAPIProvider) Name() string { return p.name }

// Fetch implements Provider. The derived records are cached under the
// provider's own key, so a hit is reported with source "<name>_cache" and a
// fresh derivation with "<name>_simulated".
func (p *SimulatedAPIProvider) Fetch(ctx context.Context, category, platform string) (FetchOutcome, error) {
	key := cache.Key(p.name, category, platform)
	if v, ok := p.cache.Get(key); ok {
		metrics.RecordCacheHit(cacheTypeTrending)
		if records, ok := v.([]HashtagRecord); ok {
			logging.Ctx(ctx).Debug().
				Str("provider", p.name).
				Str("category", category).
				Msg("using cached trending data")
			return FetchOutcome{
				Records:  records,
				Source:   p.name + "_cache",
				Category: category,
				Platform: platform,
			}, nil
		}
	} else {
		metrics.RecordCacheMiss(cacheTypeTrending)
	}

	records := simulatedRecords(category, platform, p.multiplier, p.suffix)
	p.cache.Set(key, records)

	return FetchOutcome{
		Records:  records,
		Source:   p.name + "_simulated",
		Category: category,
		Platform: platform,
	}, nil
}
