// TagForge - Trending Hashtag Aggregation and Recommendation Engine
// Copyright 2026 Alex M. (tagforge)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tagforge/tagforge

/*
Package metrics provides Prometheus metrics collection and export for observability.

All metrics are registered on the default registry via promauto and exposed at
the /metrics endpoint in Prometheus text format:

	curl http://localhost:8490/metrics

# Available Metrics

API Metrics:
  - api_requests_total: Total API requests (counter)
    Labels: method, endpoint, status_code
  - api_request_duration_seconds: Request latency (histogram)
    Labels: method, endpoint
  - api_active_requests: Requests currently in flight (gauge)
  - api_rate_limit_hits_total: Rate limit rejections (counter)
    Labels: endpoint

Provider Metrics:
  - provider_fetches_total: Provider invocations (counter)
    Labels: provider, result (records, empty, error)
  - provider_fetch_duration_seconds: Provider fetch latency (histogram)
    Labels: provider
  - scrape_requests_total: Outbound scrape page fetches (counter)
    Labels: host, status (ok, denied, blocked, error)
  - blocked_scrape_hosts: Hosts currently on the blocklist (gauge)

Cache Metrics:
  - cache_hits_total / cache_misses_total: Lookup outcomes (counter)
    Labels: cache_type
  - cache_entries: Live entries after the last sweep (gauge)
    Labels: cache_type
  - cache_evictions_total: Entries reclaimed by sweeps (counter)
    Labels: cache_type

Pipeline Metrics:
  - aggregations_total: Trending aggregation calls (counter)
    Labels: result (ok, empty)
  - aggregation_duration_seconds: Aggregation latency (histogram)
  - hashtag_generations_total: Synthesis calls (counter)
    Labels: result (ok, error)
  - hashtag_generation_duration_seconds: Synthesis latency (histogram)
  - hashtags_returned: Final list sizes (histogram)
  - ai_fallback_parses_total: Regex fallback activations on malformed
    AI output (counter)

AI Client Metrics:
  - ai_requests_total: Upstream model calls (counter)
    Labels: result (success, failure, rejected)
  - ai_request_duration_seconds: Upstream call latency (histogram)
  - circuit_breaker_state: Breaker state, 0=closed 1=half-open 2=open (gauge)
    Labels: name
  - circuit_breaker_state_transitions_total: Breaker transitions (counter)
    Labels: name, from_state, to_state

Usage:

	start := time.Now()
	out, err := provider.Fetch(ctx, category, platform)
	metrics.RecordProviderFetch(provider.Name(), time.Since(start), len(out.Records), err)
*/
package metrics
