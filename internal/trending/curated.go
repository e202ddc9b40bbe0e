// TagForge - Trending Hashtag Aggregation and Recommendation Engine
// Copyright 2026 Alex M. (tagforge)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tagforge/tagforge

package trending

import (
	"context"
	"strings"
	"time"
)

const (
	providerCurated = "curated"
	sourceCurated   = "curated_table"

	curatedBaseScore  = 800
	curatedScoreStep  = 50
	curatedBaseGrowth = 0.12
	curatedGrowthStep = 0.015
)

// curatedTags is the hand-maintained floor of the system: short ordered tag
// lists per category and platform, refreshed manually when trends shift.
var curatedTags = map[string]map[string][]string{
	"food": {
		"instagram": {"#foodie2025", "#healthyrecipes", "#plantbasedmeals", "#foodphotography", "#homecooking"},
		"facebook":  {"#familymeals", "#cookingathome", "#healthyliving", "#foodblog"},
	},
	"travel": {
		"instagram": {"#wanderlust2025", "#solotravel", "#sustainabletravel", "#hiddenplaces", "#localcuisine"},
		"facebook":  {"#familytravel", "#roadtrip", "#vacation2025", "#traveltips"},
	},
	"fashion": {
		"instagram": {"#ootd2025", "#sustainablefashion", "#vintagestyle", "#thriftfinds", "#styleinspo"},
		"facebook":  {"#fashionadvice", "#styletrends", "#outfitideas", "#fashion2025"},
	},
	"fitness": {
		"instagram": {"#fitnessjourney", "#homeworkout", "#mentalhealthfitness", "#strongwomen", "#fitnessmotivation"},
		"facebook":  {"#healthylifestyle", "#workoutmotivation", "#wellness", "#fitnessgoals"},
	},
	"business": {
		"instagram": {"#entrepreneur2025", "#businessowner", "#digitalnomad", "#hustle", "#mindset"},
		"facebook":  {"#smallbusiness", "#entrepreneurship", "#businesstips", "#success"},
	},
	"events": {
		"instagram": {"#celebration2025", "#festivalstoday", "#culturalheritage", "#traditionalmeets", "#festivalvibes", "#spiritualjourney", "#communitylove", "#heritagepride", "#festivemood", "#sacredmoments"},
		"facebook":  {"#familyfestival", "#culturalevent", "#traditioncelebration", "#spiritualgathering", "#festivalmemories"},
	},
	"lifestyle": {
		"instagram": {"#mindfuliving", "#dailyinspo", "#gratitudepractice", "#selfcaresunday", "#positivevibes"},
		"facebook":  {"#lifelessons", "#inspiration", "#motivation", "#wellbeing", "#mindfulness"},
	},
	"art": {
		"instagram": {"#artistsoninstagram", "#creativeminds", "#artoftheday", "#digitalart2025", "#arttherapy"},
		"facebook":  {"#localartists", "#artcommunity", "#creativeexpression", "#artlovers", "#inspiration"},
	},
}

// CuratedRecords returns position-scored records for a category and
// platform from the curated table. An unknown category or platform yields an
// empty list, never an error.
func CuratedRecords(category, platform string) []HashtagRecord {
	tags := curatedTags[strings.ToLower(category)][strings.ToLower(platform)]

	now := time.Now()
	records := make([]HashtagRecord, 0, len(tags))
	for i, tag := range tags {
		records = append(records, HashtagRecord{
			Hashtag:         tag,
			Platform:        platform,
			EngagementScore: curatedBaseScore - i*curatedScoreStep,
			GrowthRate:      curatedBaseGrowth - float64(i)*curatedGrowthStep,
			Category:        category,
			FetchedAt:       now,
		})
	}
	return records
}

// simulatedRecords derives records from the curated table on behalf of a
// stand-in API provider, scaling engagement and tagging the per-source
// suffix so different simulated sources stay distinguishable downstream.
func simulatedRecords(category, platform string, multiplier float64, suffix string) []HashtagRecord {
	records := CuratedRecords(category, platform)
	for i := range records {
		records[i].EngagementScore = int(float64(records[i].EngagementScore) * multiplier)
		records[i].Hashtag += suffix
	}
	return records
}

// CuratedProvider serves the curated table directly. It is the terminal
// fallback of the provider chain: no cache, no network, never fails.
type CuratedProvider struct{}

// NewCuratedProvider creates the curated-table provider.
func NewCuratedProvider() *CuratedProvider {
	return &CuratedProvider{}
}

// Name implements Provider.
func (*CuratedProvider) Name() string { return providerCurated }

// Fetch implements Provider.
func (*CuratedProvider) Fetch(_ context.Context, category, platform string) (FetchOutcome, error) {
	return FetchOutcome{
		Records:  CuratedRecords(category, platform),
		Source:   sourceCurated,
		Category: category,
		Platform: platform,
	}, nil
}
