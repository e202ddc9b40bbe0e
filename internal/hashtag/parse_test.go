// TagForge - Trending Hashtag Aggregation and Recommendation Engine
// Copyright 2026 Alex M. (tagforge)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tagforge/tagforge

package hashtag

import (
	"slices"
	"testing"
)

func TestParseSuggestionsValidJSON(t *testing.T) {
	raw := `{
		"trending_hashtags": ["#summer", "#beachday"],
		"popular_hashtags": ["#travel", "#wanderlust"],
		"niche_hashtags": ["#islandhopping"],
		"branded_hashtags": ["#acmetravel"]
	}`

	got := ParseSuggestions(raw)

	if !slices.Equal(got.Trending, []string{"#summer", "#beachday"}) {
		t.Errorf("Trending = %v", got.Trending)
	}
	if !slices.Equal(got.Popular, []string{"#travel", "#wanderlust"}) {
		t.Errorf("Popular = %v", got.Popular)
	}
	if !slices.Equal(got.Niche, []string{"#islandhopping"}) {
		t.Errorf("Niche = %v", got.Niche)
	}
	if !slices.Equal(got.Branded, []string{"#acmetravel"}) {
		t.Errorf("Branded = %v", got.Branded)
	}
}

func TestParseSuggestionsFencedJSON(t *testing.T) {
	raw := "```json\n{\"popular_hashtags\": [\"#fitness\"]}\n```"

	got := ParseSuggestions(raw)

	if !slices.Equal(got.Popular, []string{"#fitness"}) {
		t.Errorf("Popular = %v, want [#fitness]", got.Popular)
	}
}

func TestParseSuggestionsBareFences(t *testing.T) {
	raw := "```\n{\"niche_hashtags\": [\"#urbansketching\"]}\n```"

	got := ParseSuggestions(raw)

	if !slices.Equal(got.Niche, []string{"#urbansketching"}) {
		t.Errorf("Niche = %v, want [#urbansketching]", got.Niche)
	}
}

func TestParseSuggestionsMissingKeys(t *testing.T) {
	got := ParseSuggestions(`{"popular_hashtags": ["#ootd"]}`)

	if len(got.Trending) != 0 || len(got.Niche) != 0 || len(got.Branded) != 0 {
		t.Errorf("missing keys should yield empty buckets, got %+v", got)
	}
}

func TestParseSuggestionsMalformedFallsBack(t *testing.T) {
	raw := "Here are some great tags: #one #two #three #four #five " +
		"#six #seven #eight #nine #ten #eleven #twelve #thirteen #fourteen"

	got := ParseSuggestions(raw)

	if !slices.Equal(got.Trending, []string{"#one", "#two", "#three"}) {
		t.Errorf("Trending = %v", got.Trending)
	}
	if !slices.Equal(got.Popular, []string{"#four", "#five", "#six", "#seven", "#eight"}) {
		t.Errorf("Popular = %v", got.Popular)
	}
	if !slices.Equal(got.Niche, []string{"#nine", "#ten", "#eleven", "#twelve"}) {
		t.Errorf("Niche = %v", got.Niche)
	}
	if !slices.Equal(got.Branded, []string{"#thirteen", "#fourteen"}) {
		t.Errorf("Branded = %v", got.Branded)
	}
}

func TestParseSuggestionsFallbackDedupes(t *testing.T) {
	got := ParseSuggestions("text #Food more text #food and #FOOD plus #travel")

	if !slices.Equal(got.Trending, []string{"#Food", "#travel"}) {
		t.Errorf("Trending = %v, want [#Food #travel]", got.Trending)
	}
	if len(got.Popular) != 0 {
		t.Errorf("Popular = %v, want empty", got.Popular)
	}
}

func TestParseSuggestionsFallbackKeepsUnderscores(t *testing.T) {
	got := ParseSuggestions("check out #street_art today")

	if !slices.Equal(got.Trending, []string{"#street_art"}) {
		t.Errorf("Trending = %v, want [#street_art]", got.Trending)
	}
}

func TestParseSuggestionsNoTagsAnywhere(t *testing.T) {
	got := ParseSuggestions("no hashtags in this response at all")

	if len(got.Trending)+len(got.Popular)+len(got.Niche)+len(got.Branded) != 0 {
		t.Errorf("expected all buckets empty, got %+v", got)
	}
}

func TestStripFences(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{name: "no fences", raw: `{"a": 1}`, want: `{"a": 1}`},
		{name: "json fence", raw: "```json\n{\"a\": 1}\n```", want: `{"a": 1}`},
		{name: "bare fence", raw: "```\n{\"a\": 1}\n```", want: `{"a": 1}`},
		{name: "surrounding space", raw: "  {\"a\": 1}  ", want: `{"a": 1}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := stripFences(tt.raw); got != tt.want {
				t.Errorf("stripFences(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}
