// TagForge - Trending Hashtag Aggregation and Recommendation Engine
// Copyright 2026 Alex M. (tagforge)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tagforge/tagforge

// Package categorize classifies content into the fixed category taxonomy
// that the trending providers and curated tables are keyed on.
package categorize

// CategoryUnknown is assigned when classification produced nothing usable.
const CategoryUnknown = "unknown"

// DefaultCategory is used for aggregation when no classification is
// available at all.
const DefaultCategory = "lifestyle"

// categoryOrder fixes the taxonomy iteration order for deterministic
// fallback matching.
var categoryOrder = []string{
	"food",
	"travel",
	"fashion",
	"fitness",
	"business",
	"lifestyle",
	"technology",
	"beauty",
	"photography",
	"art",
	"events",
}

// categoryKeywords maps each category to the keywords that signal it in
// free text.
var categoryKeywords = map[string][]string{
	"food":        {"food", "cooking", "recipe", "restaurant", "foodie", "culinary"},
	"travel":      {"travel", "vacation", "destination", "tourism", "wanderlust"},
	"fashion":     {"fashion", "style", "outfit", "clothing", "ootd"},
	"fitness":     {"fitness", "workout", "gym", "health", "exercise", "wellness"},
	"business":    {"business", "entrepreneur", "marketing", "startup", "professional"},
	"lifestyle":   {"lifestyle", "daily", "life", "living", "home", "personal"},
	"technology":  {"tech", "technology", "gadget", "digital", "innovation"},
	"beauty":      {"beauty", "makeup", "skincare", "cosmetics", "beautytips"},
	"photography": {"photography", "photo", "camera", "photographer", "picture"},
	"art":         {"art", "artist", "creative", "design", "artwork", "artistic"},
	"events":      {"events", "festival", "celebration", "ceremony", "gathering", "occasion"},
}

// Categories returns the taxonomy in its fixed order.
func Categories() []string {
	out := make([]string, len(categoryOrder))
	copy(out, categoryOrder)
	return out
}

// IsValid reports whether category belongs to the taxonomy.
func IsValid(category string) bool {
	_, ok := categoryKeywords[category]
	return ok
}

// Keywords returns the signal keywords for a category, or nil for an
// unknown one.
func Keywords(category string) []string {
	kws, ok := categoryKeywords[category]
	if !ok {
		return nil
	}
	out := make([]string, len(kws))
	copy(out, kws)
	return out
}
