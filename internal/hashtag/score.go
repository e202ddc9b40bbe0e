// TagForge - Trending Hashtag Aggregation and Recommendation Engine
// Copyright 2026 Alex M. (tagforge)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tagforge/tagforge

package hashtag

import (
	"strings"

	"github.com/tagforge/tagforge/internal/trending"
)

const (
	baseEngagement     = 5.0
	trendingMatchBoost = 0.5
	volumeBoost        = 1.0
	sweetSpotBoost     = 0.5
	sparsePenalty      = 1.0
	overloadPenalty    = 0.5

	scoreFloor = 1.0
	scoreCeil  = 10.0

	// defaultEngagement stands in for records whose source reported no
	// engagement figure.
	defaultEngagement = 500.0
)

// engagementPotential estimates how well the final selection should perform.
// It starts from a neutral base, rewards overlap with real trending tags and
// healthy list sizes, and penalizes sparse or bloated lists.
func engagementPotential(final []string, realTrending []trending.HashtagRecord) float64 {
	score := baseEngagement

	trendingSet := make(map[string]struct{}, len(realTrending))
	for _, rec := range realTrending {
		trendingSet[strings.ToLower(rec.Hashtag)] = struct{}{}
	}
	for _, tag := range final {
		if _, ok := trendingSet[strings.ToLower(tag)]; ok {
			score += trendingMatchBoost
		}
	}

	n := len(final)
	if n >= 8 {
		score += volumeBoost
	}
	switch {
	case n >= 10 && n <= 15:
		score += sweetSpotBoost
	case n < 5:
		score -= sparsePenalty
	case n > 25:
		score -= overloadPenalty
	}

	return clamp(score, scoreFloor, scoreCeil)
}

// trendingScore grades the freshness of the real trending signal on the mean
// engagement of the aggregated records, normalized to a 1-10 scale. No signal
// at all yields a neutral 3.0.
func trendingScore(realTrending []trending.HashtagRecord) float64 {
	if len(realTrending) == 0 {
		return 3.0
	}
	var total float64
	for _, rec := range realTrending {
		engagement := float64(rec.EngagementScore)
		if engagement == 0 {
			engagement = defaultEngagement
		}
		total += engagement
	}
	mean := total / float64(len(realTrending))
	return clamp(mean/1000.0*10.0, scoreFloor, scoreCeil)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
