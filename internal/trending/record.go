// TagForge - Trending Hashtag Aggregation and Recommendation Engine
// Copyright 2026 Alex M. (tagforge)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tagforge/tagforge

package trending

import (
	"context"
	"sort"
	"strings"
	"time"
)

// cacheTypeTrending labels cache metrics emitted by the providers.
const cacheTypeTrending = "trending"

const platformInstagram = "instagram"

// HashtagRecord is one candidate hashtag from a signal source. Records are
// immutable once handed to the aggregator or stored in the cache; they are
// copied, never mutated in place.
//
// EngagementScore is a synthetic position-decay proxy when the source
// exposes no real metric; downstream ranking treats both the same.
type HashtagRecord struct {
	Hashtag         string    `json:"hashtag"`
	Platform        string    `json:"platform"`
	EngagementScore int       `json:"engagement_score,omitempty"`
	GrowthRate      float64   `json:"growth_rate,omitempty"`
	Category        string    `json:"category,omitempty"`
	FetchedAt       time.Time `json:"fetched_at,omitempty"`
}

// FetchOutcome is the result of one provider invocation. Source identifies
// where the records actually came from (e.g. "webscrape_cache" when served
// from the cache instead of the network).
type FetchOutcome struct {
	Records  []HashtagRecord `json:"records"`
	Source   string          `json:"source"`
	Category string          `json:"category"`
	Platform string          `json:"platform"`
}

// AggregateResult is the merged output of one aggregation call. Sources
// lists every provider attempted, in dispatch order, regardless of whether
// it contributed records.
type AggregateResult struct {
	Records  []HashtagRecord `json:"records"`
	Sources  []string        `json:"sources"`
	Category string          `json:"category"`
	Platform string          `json:"platform"`
}

// Provider is a single trending-hashtag signal source.
//
// Implementations absorb transport and access failures internally and
// return an empty outcome instead: a dead source degrades the pool, never
// the request. The error return is reserved for context cancellation and
// programming errors; the aggregator logs it and drops the outcome.
type Provider interface {
	// Name returns the stable provider identifier used in logs, metrics,
	// and the AggregateResult sources list.
	Name() string

	// Fetch produces candidate records for a category and platform.
	Fetch(ctx context.Context, category, platform string) (FetchOutcome, error)
}

// dedupeByEngagement sorts records by engagement score descending (stable,
// so equal scores keep their original order) and keeps the first record for
// each case-insensitive hashtag. The survivor therefore carries the highest
// score and its own original casing.
func dedupeByEngagement(records []HashtagRecord) []HashtagRecord {
	sorted := make([]HashtagRecord, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].EngagementScore > sorted[j].EngagementScore
	})

	seen := make(map[string]struct{}, len(sorted))
	unique := make([]HashtagRecord, 0, len(sorted))
	for _, rec := range sorted {
		key := strings.ToLower(rec.Hashtag)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		unique = append(unique, rec)
	}
	return unique
}
