// TagForge - Trending Hashtag Aggregation and Recommendation Engine
// Copyright 2026 Alex M. (tagforge)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tagforge/tagforge

/*
Package trending implements the multi-source trending-hashtag pipeline: a set
of independently failable signal providers, a process-lifetime blocklist for
hosts that refuse automated requests, and an aggregator that merges provider
output into one ranked, deduplicated record list.

# Providers

Three provider kinds sit behind the same Provider interface, in fixed
priority order:

  - WebScrapeProvider scrapes public hashtag-ranking pages (top-hashtags.com,
    all-hashtag.com, hashtagsforlikes.co) and derives position-decay
    engagement scores, supplementing from the curated table when extraction
    is thin.
  - SimulatedAPIProvider stands in for credentialed hashtag-analytics APIs
    (hashtagify, ritetag) by deriving records from the curated table.
  - CuratedProvider serves the hand-maintained table directly and never
    fails; it is the guaranteed floor of the system.

Every provider consults the shared cache under its own
(provider, category, platform) key and converts transport failures into
empty successful outcomes. A host answering 403 is blocklisted for the
process lifetime and never contacted again.

# Aggregation

	agg := trending.NewAggregator(providers, 10*time.Second)
	result, err := agg.Fetch(ctx, "food", "instagram", 15)

Fetch dispatches all providers concurrently, waits for each to finish or
time out, pools the records in provider priority order, deduplicates
case-insensitively keeping the highest engagement score, sorts by score
descending, and truncates. The only error it returns is ErrNoTrendingData
when every provider came back empty.
*/
package trending
