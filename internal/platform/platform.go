// TagForge - Trending Hashtag Aggregation and Recommendation Engine
// Copyright 2026 Alex M. (tagforge)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tagforge/tagforge

// Package platform holds per-platform hashtag guidelines: hard limits,
// optimal ranges, and posting hints. The tables are static; an unknown
// platform falls back to Instagram rules rather than failing, so the
// pipeline never stalls on a platform name it has not seen.
package platform

import (
	"sort"
	"strings"
)

// Supported platform names. Lookups are case-insensitive.
const (
	Instagram = "instagram"
	Facebook  = "facebook"

	// Default is the platform assumed when a request names none.
	Default = Instagram
)

// DefaultMaxHashtags is the request quota applied when a request does not
// carry one.
const DefaultMaxHashtags = 15

// Guidelines describes one platform's hashtag rules.
type Guidelines struct {
	Name string `json:"name"`

	// MaxHashtags is the hard per-post cap; requests above it are clamped.
	MaxHashtags int `json:"max_hashtags"`

	// OptimalMin and OptimalMax bound the engagement sweet spot.
	OptimalMin int `json:"optimal_min"`
	OptimalMax int `json:"optimal_max"`

	// HashtagCharLimit caps a single hashtag's length.
	HashtagCharLimit int `json:"hashtag_character_limit"`

	// CaptionLimit is the platform's post body limit, exposed for clients
	// composing captions around the returned tags.
	CaptionLimit int `json:"caption_limit"`

	Style          string  `json:"style"`
	TrendingWeight float64 `json:"trending_weight"`

	BestPostingTimes []string `json:"best_posting_times"`
}

var guidelines = map[string]Guidelines{
	Instagram: {
		Name:             Instagram,
		MaxHashtags:      30,
		OptimalMin:       8,
		OptimalMax:       15,
		HashtagCharLimit: 100,
		CaptionLimit:     2200,
		Style:            "mix of popular and niche",
		TrendingWeight:   0.4,
		BestPostingTimes: []string{
			"6 AM - 9 AM (morning commute)",
			"12 PM - 2 PM (lunch break)",
			"5 PM - 7 PM (evening commute)",
			"7 PM - 9 PM (evening leisure)",
		},
	},
	Facebook: {
		Name:             Facebook,
		MaxHashtags:      10,
		OptimalMin:       3,
		OptimalMax:       7,
		HashtagCharLimit: 100,
		CaptionLimit:     63206,
		Style:            "fewer, more targeted",
		TrendingWeight:   0.3,
		BestPostingTimes: []string{
			"9 AM - 10 AM (morning check-in)",
			"1 PM - 3 PM (lunch and afternoon)",
			"7 PM - 9 PM (evening leisure)",
		},
	},
}

// For returns the guidelines for a platform. Unknown platforms get the
// Instagram table.
func For(platform string) Guidelines {
	if g, ok := guidelines[strings.ToLower(platform)]; ok {
		return g
	}
	return guidelines[Default]
}

// IsSupported reports whether the platform has its own guideline table.
func IsSupported(platform string) bool {
	_, ok := guidelines[strings.ToLower(platform)]
	return ok
}

// Supported returns the known platform names, sorted.
func Supported() []string {
	names := make([]string, 0, len(guidelines))
	for name := range guidelines {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ClampQuota bounds a requested hashtag count to the platform's hard cap.
// Non-positive requests get DefaultMaxHashtags.
func ClampQuota(platform string, requested int) int {
	if requested <= 0 {
		requested = DefaultMaxHashtags
	}
	if maxAllowed := For(platform).MaxHashtags; requested > maxAllowed {
		return maxAllowed
	}
	return requested
}
