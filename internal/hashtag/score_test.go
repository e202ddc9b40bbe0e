// TagForge - Trending Hashtag Aggregation and Recommendation Engine
// Copyright 2026 Alex M. (tagforge)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tagforge/tagforge

package hashtag

import (
	"fmt"
	"math"
	"testing"

	"github.com/tagforge/tagforge/internal/trending"
)

func record(tag string, score int) trending.HashtagRecord {
	return trending.HashtagRecord{Hashtag: tag, EngagementScore: score}
}

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestEngagementPotential(t *testing.T) {
	trendingFive := []trending.HashtagRecord{
		record("#one", 800), record("#two", 750), record("#three", 700),
		record("#four", 650), record("#five", 600),
	}

	manyTags := func(n int) []string {
		tags := make([]string, n)
		for i := range tags {
			tags[i] = fmt.Sprintf("#filler%d", i)
		}
		return tags
	}

	tests := []struct {
		name     string
		final    []string
		trending []trending.HashtagRecord
		want     float64
	}{
		{
			name:  "empty list penalized",
			final: nil,
			want:  4.0,
		},
		{
			name:  "eight tags no matches",
			final: manyTags(8),
			want:  6.0,
		},
		{
			name:     "twelve tags five matches",
			final:    append([]string{"#one", "#two", "#three", "#four", "#five"}, manyTags(7)...),
			trending: trendingFive,
			want:     9.0,
		},
		{
			name:     "sparse list with matches",
			final:    []string{"#one", "#two", "#three", "#four"},
			trending: trendingFive,
			want:     6.0,
		},
		{
			name:  "bloated list penalized",
			final: manyTags(30),
			want:  5.5,
		},
		{
			name:     "match is case insensitive",
			final:    []string{"#ONE"},
			trending: trendingFive,
			want:     4.5,
		},
		{
			name: "clamped to ceiling",
			final: append([]string{
				"#one", "#two", "#three", "#four", "#five",
			}, "#One", "#Two", "#Three", "#Four", "#Five", "#oNe", "#tWo"),
			trending: trendingFive,
			want:     10.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := engagementPotential(tt.final, tt.trending)
			if !approxEqual(got, tt.want) {
				t.Errorf("engagementPotential = %v, want %v", got, tt.want)
			}
			if got < scoreFloor || got > scoreCeil {
				t.Errorf("engagementPotential = %v outside [1, 10]", got)
			}
		})
	}
}

func TestTrendingScore(t *testing.T) {
	tests := []struct {
		name    string
		records []trending.HashtagRecord
		want    float64
	}{
		{
			name: "no signal is neutral",
			want: 3.0,
		},
		{
			name:    "mean engagement scaled",
			records: []trending.HashtagRecord{record("#a", 800), record("#b", 750), record("#c", 700), record("#d", 650), record("#e", 600)},
			want:    7.0,
		},
		{
			name:    "zero scores use default",
			records: []trending.HashtagRecord{record("#a", 0), record("#b", 0)},
			want:    5.0,
		},
		{
			name:    "mixed zero and real",
			records: []trending.HashtagRecord{record("#a", 0), record("#b", 1000)},
			want:    7.5,
		},
		{
			name:    "clamped to ceiling",
			records: []trending.HashtagRecord{record("#a", 1500), record("#b", 1500)},
			want:    10.0,
		},
		{
			name:    "clamped to floor",
			records: []trending.HashtagRecord{record("#a", 50)},
			want:    1.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := trendingScore(tt.records)
			if !approxEqual(got, tt.want) {
				t.Errorf("trendingScore = %v, want %v", got, tt.want)
			}
			if got < scoreFloor || got > scoreCeil {
				t.Errorf("trendingScore = %v outside [1, 10]", got)
			}
		})
	}
}
