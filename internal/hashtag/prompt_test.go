// TagForge - Trending Hashtag Aggregation and Recommendation Engine
// Copyright 2026 Alex M. (tagforge)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tagforge/tagforge

package hashtag

import (
	"strings"
	"testing"

	"github.com/tagforge/tagforge/internal/trending"
)

func TestBuildSuggestionPromptWithTrending(t *testing.T) {
	req := Request{
		Platform:    "instagram",
		MaxHashtags: 12,
		Category:    "food",
	}
	records := []trending.HashtagRecord{
		record("#foodie2025", 800),
		record("#homecooking", 750),
	}

	prompt := buildSuggestionPrompt(req, "a plated pasta dish", records)

	for _, want := range []string{
		"IMAGE ANALYSIS: a plated pasta dish",
		"REAL TRENDING HASHTAGS FOR THIS CATEGORY: #foodie2025, #homecooking",
		"- Platform: Instagram",
		"- Number of hashtags: 8-15 (max 12)",
		"- Primary category: food",
		"- Category themes: food, cooking, recipe, restaurant, foodie, culinary",
		"1. TRENDING: Use 2 real trending hashtags",
		"Return only the JSON response, nothing else.",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}

func TestBuildSuggestionPromptNoTrending(t *testing.T) {
	prompt := buildSuggestionPrompt(Request{Platform: "facebook", MaxHashtags: 7}, "", nil)

	if !strings.Contains(prompt, "REAL TRENDING HASHTAGS FOR THIS CATEGORY: None available") {
		t.Errorf("prompt missing none-available marker:\n%s", prompt)
	}
	if !strings.Contains(prompt, "- Platform: Facebook") {
		t.Errorf("prompt missing facebook platform line")
	}
	if !strings.Contains(prompt, "- Number of hashtags: 3-7 (max 7)") {
		t.Errorf("prompt missing facebook optimal range")
	}
}

func TestBuildSuggestionPromptBrandAndSecondary(t *testing.T) {
	req := Request{
		Platform:    "instagram",
		MaxHashtags: 15,
		Category:    "fashion",
		Secondary:   []string{"lifestyle", "beauty"},
		BrandName:   "Acme",
	}

	prompt := buildSuggestionPrompt(req, "street style portrait", nil)

	if !strings.Contains(prompt, "- Secondary categories: lifestyle, beauty") {
		t.Errorf("prompt missing secondary categories")
	}
	if !strings.Contains(prompt, "- Brand: Acme") {
		t.Errorf("prompt missing brand line")
	}
}

func TestBuildSuggestionPromptOmitsEmptyLines(t *testing.T) {
	prompt := buildSuggestionPrompt(Request{Platform: "instagram", MaxHashtags: 15}, "desc", nil)

	if strings.Contains(prompt, "- Brand:") {
		t.Errorf("prompt has brand line for brandless request")
	}
	if strings.Contains(prompt, "- Primary category:") {
		t.Errorf("prompt has category line for uncategorized request")
	}
	if strings.Contains(prompt, "- Category themes:") {
		t.Errorf("prompt has themes line for uncategorized request")
	}
	if strings.Contains(prompt, "- Secondary categories:") {
		t.Errorf("prompt has secondary line for uncategorized request")
	}
}

func TestBuildSuggestionPromptJSONContract(t *testing.T) {
	prompt := buildSuggestionPrompt(Request{Platform: "instagram", MaxHashtags: 15}, "", nil)

	for _, key := range []string{
		"trending_hashtags", "popular_hashtags", "niche_hashtags", "branded_hashtags",
	} {
		if !strings.Contains(prompt, key) {
			t.Errorf("prompt missing JSON key %q", key)
		}
	}
}
