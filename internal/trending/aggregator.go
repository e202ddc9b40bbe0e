// TagForge - Trending Hashtag Aggregation and Recommendation Engine
// Copyright 2026 Alex M. (tagforge)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tagforge/tagforge

package trending

import (
	"context"
	"errors"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/tagforge/tagforge/internal/logging"
	"github.com/tagforge/tagforge/internal/metrics"
)

// ErrNoTrendingData is returned when every provider came back empty. This is
// the aggregator's only failure path; callers downstream absorb it as
// "no real trending signal" rather than surfacing it to users.
var ErrNoTrendingData = errors.New("no trending hashtags found from any source")

// DefaultProviderTimeout bounds each provider call within one aggregation.
const DefaultProviderTimeout = 10 * time.Second

// Aggregator merges the output of the configured providers into one ranked,
// deduplicated record list. Providers run concurrently per Fetch call; their
// priority order is preserved in the merged pool so that equal-score ties
// rank earlier providers first.
type Aggregator struct {
	providers []Provider
	timeout   time.Duration
}

// NewAggregator creates an aggregator over providers in priority order.
// A non-positive timeout falls back to DefaultProviderTimeout.
func NewAggregator(providers []Provider, timeout time.Duration) *Aggregator {
	if timeout <= 0 {
		timeout = DefaultProviderTimeout
	}
	return &Aggregator{providers: providers, timeout: timeout}
}

// Fetch gathers trending records for a category and platform, capped at
// maxCount (non-positive means unlimited).
//
// Every provider is dispatched concurrently under its own timeout; a
// timed-out call is discarded wholesale, identical to a transport error.
// The merge waits for all dispatched providers to finish or time out.
func (a *Aggregator) Fetch(ctx context.Context, category, platform string, maxCount int) (AggregateResult, error) {
	start := time.Now()

	outcomes := make([]FetchOutcome, len(a.providers))
	errs := make([]error, len(a.providers))
	sources := make([]string, len(a.providers))

	var g errgroup.Group
	for i, provider := range a.providers {
		sources[i] = provider.Name()
		g.Go(func() error {
			pctx, cancel := context.WithTimeout(ctx, a.timeout)
			defer cancel()

			type fetchResult struct {
				out FetchOutcome
				err error
			}
			ch := make(chan fetchResult, 1)
			fetchStart := time.Now()
			go func() {
				out, err := provider.Fetch(pctx, category, platform)
				ch <- fetchResult{out: out, err: err}
			}()

			select {
			case r := <-ch:
				metrics.RecordProviderFetch(provider.Name(), time.Since(fetchStart), len(r.out.Records), r.err)
				outcomes[i], errs[i] = r.out, r.err
			case <-pctx.Done():
				// Discard whatever the provider eventually produces.
				metrics.RecordProviderFetch(provider.Name(), time.Since(fetchStart), 0, pctx.Err())
				errs[i] = pctx.Err()
			}
			return nil
		})
	}
	// Closures never fail; per-provider errors live in errs.
	_ = g.Wait()

	result := AggregateResult{
		Sources:  sources,
		Category: category,
		Platform: platform,
	}

	var pool []HashtagRecord
	for i := range outcomes {
		if errs[i] != nil {
			logging.Ctx(ctx).Warn().
				Err(errs[i]).
				Str("provider", sources[i]).
				Str("category", category).
				Msg("trending provider failed")
			continue
		}
		if len(outcomes[i].Records) == 0 {
			continue
		}
		logging.Ctx(ctx).Debug().
			Int("count", len(outcomes[i].Records)).
			Str("provider", sources[i]).
			Str("source", outcomes[i].Source).
			Msg("fetched trending hashtags")
		pool = append(pool, outcomes[i].Records...)
	}

	if len(pool) == 0 {
		metrics.RecordAggregation(time.Since(start), 0)
		return result, ErrNoTrendingData
	}

	unique := dedupeByEngagement(pool)
	if maxCount > 0 && len(unique) > maxCount {
		unique = unique[:maxCount]
	}
	result.Records = unique

	metrics.RecordAggregation(time.Since(start), len(unique))
	return result, nil
}
