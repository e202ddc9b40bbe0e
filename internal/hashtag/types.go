// TagForge - Trending Hashtag Aggregation and Recommendation Engine
// Copyright 2026 Alex M. (tagforge)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tagforge/tagforge

// Package hashtag implements the synthesis engine: it merges real trending
// signal from the aggregator with AI-suggested buckets, normalizes and
// deduplicates the candidates, enforces platform quotas, and scores the
// final set.
package hashtag

import (
	"github.com/tagforge/tagforge/internal/trending"
)

// Request describes one hashtag generation request.
type Request struct {
	// ImageRef identifies the content under analysis.
	ImageRef string

	// Category is the primary content category; empty means unclassified
	// and falls back to the default aggregation category.
	Category string

	// Secondary carries additional categories for prompt context.
	Secondary []string

	Platform string

	// MaxHashtags caps the final list. Non-positive values and values above
	// the platform's hard cap are clamped.
	MaxHashtags int

	IncludeTrending bool
	IncludeNiche    bool
	IncludeBranded  bool

	BrandName string
}

// SuggestionBuckets is the categorized candidate bundle produced by the AI
// collaborator.
type SuggestionBuckets struct {
	Trending []string `json:"trending_hashtags"`
	Popular  []string `json:"popular_hashtags"`
	Niche    []string `json:"niche_hashtags"`
	Branded  []string `json:"branded_hashtags"`
}

// Result is the outcome of one generation. The four bucket lists are views
// into the candidate pool; Hashtags is the final deduplicated, quota-bounded
// selection.
type Result struct {
	Hashtags []string `json:"hashtags"`

	Trending []string `json:"trending_hashtags"`
	Niche    []string `json:"niche_hashtags"`
	Popular  []string `json:"popular_hashtags"`
	Branded  []string `json:"branded_hashtags"`

	// AIGenerated is the flattened, normalized form of everything the AI
	// suggested, before merging with real trending data.
	AIGenerated []string `json:"ai_generated_hashtags"`

	// RealTrending carries the aggregator records backing the trending
	// bucket, scores included.
	RealTrending []trending.HashtagRecord `json:"real_trending_hashtags"`

	Platform   string `json:"platform"`
	TotalCount int    `json:"total_count"`

	EngagementPotential float64 `json:"engagement_potential"`
	TrendingScore       float64 `json:"trending_score"`

	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}
