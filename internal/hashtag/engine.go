// TagForge - Trending Hashtag Aggregation and Recommendation Engine
// Copyright 2026 Alex M. (tagforge)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tagforge/tagforge

package hashtag

import (
	"context"
	"slices"
	"time"

	"github.com/tagforge/tagforge/internal/ai"
	"github.com/tagforge/tagforge/internal/categorize"
	"github.com/tagforge/tagforge/internal/logging"
	"github.com/tagforge/tagforge/internal/metrics"
	"github.com/tagforge/tagforge/internal/platform"
	"github.com/tagforge/tagforge/internal/trending"
)

// trendingFetchLimit caps how many real trending records seed one request.
const trendingFetchLimit = 8

// TrendingFetcher yields ranked trending records for a category and platform.
// *trending.Aggregator satisfies it.
type TrendingFetcher interface {
	Fetch(ctx context.Context, category, platform string, maxCount int) (trending.AggregateResult, error)
}

var _ TrendingFetcher = (*trending.Aggregator)(nil)

// Engine drives one generation request end to end: real trending fetch, AI
// description and suggestion calls, then synthesis of the final selection.
type Engine struct {
	fetcher TrendingFetcher
	client  ai.Client
}

// NewEngine wires the trending fetcher and the AI collaborator.
func NewEngine(fetcher TrendingFetcher, client ai.Client) *Engine {
	return &Engine{fetcher: fetcher, client: client}
}

// Generate produces the hashtag selection for one request. Trending fetch
// and image description failures are absorbed; only an AI-suggestion failure
// is returned, unwrapped, alongside a failed Result.
func (e *Engine) Generate(ctx context.Context, req Request) (Result, error) {
	start := time.Now()
	log := logging.Ctx(ctx)

	guide := platform.For(req.Platform)
	req.Platform = guide.Name
	req.MaxHashtags = platform.ClampQuota(req.Platform, req.MaxHashtags)
	if req.Category == "" {
		req.Category = categorize.DefaultCategory
	}

	var realTrending []trending.HashtagRecord
	agg, err := e.fetcher.Fetch(ctx, req.Category, req.Platform, trendingFetchLimit)
	if err != nil {
		log.Warn().Err(err).
			Str("category", req.Category).
			Str("platform", req.Platform).
			Msg("Trending fetch failed, generating from AI suggestions only")
	} else {
		realTrending = agg.Records
		log.Debug().
			Int("records", len(realTrending)).
			Strs("sources", agg.Sources).
			Str("category", req.Category).
			Msg("Fetched real trending hashtags")
	}

	description, err := e.client.Analyze(ctx, req.ImageRef, descriptionPrompt)
	if err != nil {
		log.Warn().Err(err).Msg("Image description failed, continuing without it")
		description = ""
	}

	raw, err := e.client.AnalyzeJSON(ctx, req.ImageRef, buildSuggestionPrompt(req, description, realTrending))
	if err != nil {
		metrics.RecordGeneration(time.Since(start), 0, err)
		log.Error().Err(err).
			Str("platform", req.Platform).
			Msg("AI hashtag suggestion failed")
		return Result{
			RealTrending: realTrending,
			Platform:     req.Platform,
			Success:      false,
			Error:        err.Error(),
		}, err
	}

	result := synthesize(req, ParseSuggestions(raw), realTrending)

	metrics.RecordGeneration(time.Since(start), len(result.Hashtags), nil)
	log.Info().
		Int("hashtags", len(result.Hashtags)).
		Int("real_trending", len(realTrending)).
		Str("platform", req.Platform).
		Str("category", req.Category).
		Float64("engagement_potential", result.EngagementPotential).
		Float64("trending_score", result.TrendingScore).
		Msg("Generated hashtags")

	return result, nil
}

// synthesize combines the AI buckets with the real trending records,
// normalizes every candidate, assembles the pool in bucket-priority order,
// deduplicates, enforces the quota, and scores the outcome.
func synthesize(req Request, buckets SuggestionBuckets, realTrending []trending.HashtagRecord) Result {
	trendingTags := make([]string, len(realTrending))
	for i, rec := range realTrending {
		trendingTags[i] = rec.Hashtag
	}

	// The AI's own trending bucket is advisory only; the real records own
	// that slot. A thin popular bucket borrows from the top trending tags.
	popular := slices.Clone(buckets.Popular)
	if len(popular) < 5 {
		for _, tag := range trendingTags[:min(3, len(trendingTags))] {
			if !slices.Contains(popular, tag) {
				popular = append(popular, tag)
			}
		}
	}

	trendingBucket := normalizeTags(trendingTags)
	nicheBucket := normalizeTags(buckets.Niche)
	popularBucket := normalizeTags(popular)
	brandedBucket := normalizeTags(buckets.Branded)

	pool := make([]string, 0, 18)
	if req.IncludeTrending {
		pool = append(pool, head(trendingBucket, 5)...)
	}
	if req.IncludeNiche {
		pool = append(pool, head(nicheBucket, 5)...)
	}
	pool = append(pool, head(popularBucket, 5)...)
	if req.IncludeBranded {
		pool = append(pool, head(brandedBucket, 3)...)
	}

	final := head(dedupeTags(pool), req.MaxHashtags)

	return Result{
		Hashtags:            final,
		Trending:            trendingBucket,
		Niche:               nicheBucket,
		Popular:             popularBucket,
		Branded:             brandedBucket,
		AIGenerated:         normalizeTags(flatten(buckets)),
		RealTrending:        realTrending,
		Platform:            req.Platform,
		TotalCount:          len(final),
		EngagementPotential: engagementPotential(final, realTrending),
		TrendingScore:       trendingScore(realTrending),
		Success:             true,
	}
}

// flatten lines the AI buckets up in their prompt order.
func flatten(b SuggestionBuckets) []string {
	out := make([]string, 0, len(b.Trending)+len(b.Popular)+len(b.Niche)+len(b.Branded))
	out = append(out, b.Trending...)
	out = append(out, b.Popular...)
	out = append(out, b.Niche...)
	out = append(out, b.Branded...)
	return out
}
