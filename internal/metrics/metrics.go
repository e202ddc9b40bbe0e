// TagForge - Trending Hashtag Aggregation and Recommendation Engine
// Copyright 2026 Alex M. (tagforge)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tagforge/tagforge

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// API Endpoint Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	APIRateLimitHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_rate_limit_hits_total",
			Help: "Total number of rate limit rejections",
		},
		[]string{"endpoint"},
	)

	// Trending Provider Metrics
	ProviderFetchesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "provider_fetches_total",
			Help: "Total number of trending provider invocations",
		},
		[]string{"provider", "result"}, // result: "records", "empty", "error"
	)

	ProviderFetchDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "provider_fetch_duration_seconds",
			Help:    "Duration of trending provider fetches in seconds",
			Buckets: []float64{0.001, 0.01, 0.05, 0.1, 0.5, 1, 2.5, 5, 10, 15},
		},
		[]string{"provider"},
	)

	ScrapeRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "scrape_requests_total",
			Help: "Total number of outbound scrape page fetches",
		},
		[]string{"host", "status"}, // status: "ok", "denied", "blocked", "error"
	)

	BlockedScrapeHosts = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "blocked_scrape_hosts",
			Help: "Current number of hosts on the scrape blocklist",
		},
	)

	// Cache Metrics
	CacheHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_hits_total",
			Help: "Total number of cache hits",
		},
		[]string{"cache_type"},
	)

	CacheMisses = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_misses_total",
			Help: "Total number of cache misses",
		},
		[]string{"cache_type"},
	)

	CacheEntries = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "cache_entries",
			Help: "Current number of cached entries",
		},
		[]string{"cache_type"},
	)

	CacheEvictions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_evictions_total",
			Help: "Total number of cache evictions (TTL expiry)",
		},
		[]string{"cache_type"},
	)

	// Aggregation Metrics
	AggregationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "aggregations_total",
			Help: "Total number of trending aggregation calls",
		},
		[]string{"result"}, // "ok", "empty"
	)

	AggregationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "aggregation_duration_seconds",
			Help:    "Duration of trending aggregation calls in seconds",
			Buckets: []float64{0.001, 0.01, 0.05, 0.1, 0.5, 1, 2.5, 5, 10, 15},
		},
	)

	// Hashtag Synthesis Metrics
	GenerationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "hashtag_generations_total",
			Help: "Total number of hashtag generation requests",
		},
		[]string{"result"}, // "ok", "error"
	)

	GenerationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "hashtag_generation_duration_seconds",
			Help:    "Duration of hashtag generation in seconds",
			Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1, 2.5, 5, 10, 30},
		},
	)

	HashtagsReturned = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "hashtags_returned",
			Help:    "Number of hashtags in final generation results",
			Buckets: []float64{1, 3, 5, 8, 10, 15, 20, 25, 30},
		},
	)

	AIFallbackParses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "ai_fallback_parses_total",
			Help: "Total number of regex fallback parses of malformed AI output",
		},
	)

	// AI Client Metrics
	AIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ai_requests_total",
			Help: "Total number of upstream AI model calls",
		},
		[]string{"result"}, // "success", "failure", "rejected"
	)

	AIRequestDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "ai_request_duration_seconds",
			Help:    "Duration of upstream AI model calls in seconds",
			Buckets: []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30, 60},
		},
	)

	// Circuit Breaker Metrics
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	CircuitBreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_state_transitions_total",
			Help: "Total number of circuit breaker state transitions",
		},
		[]string{"name", "from_state", "to_state"},
	)

	// System Metrics
	AppInfo = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "app_info",
			Help: "Application version and build information",
		},
		[]string{"version", "go_version"},
	)

	AppUptime = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "app_uptime_seconds",
			Help: "Application uptime in seconds",
		},
	)
)

// RecordAPIRequest records an API request metric.
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest tracks active API requests.
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordRateLimitHit records a rate limit rejection for an endpoint.
func RecordRateLimitHit(endpoint string) {
	APIRateLimitHits.WithLabelValues(endpoint).Inc()
}

// RecordProviderFetch records one trending provider invocation.
func RecordProviderFetch(provider string, duration time.Duration, records int, err error) {
	ProviderFetchDuration.WithLabelValues(provider).Observe(duration.Seconds())

	result := "records"
	switch {
	case err != nil:
		result = "error"
	case records == 0:
		result = "empty"
	}
	ProviderFetchesTotal.WithLabelValues(provider, result).Inc()
}

// RecordScrapeRequest records one outbound scrape page fetch.
// Status is one of "ok", "denied" (access refused), "blocked" (skipped via
// blocklist), or "error".
func RecordScrapeRequest(host, status string) {
	ScrapeRequestsTotal.WithLabelValues(host, status).Inc()
}

// SetBlockedScrapeHosts updates the blocklist size gauge.
func SetBlockedScrapeHosts(count int) {
	BlockedScrapeHosts.Set(float64(count))
}

// RecordCacheHit records a cache hit for the given cache type.
func RecordCacheHit(cacheType string) {
	CacheHits.WithLabelValues(cacheType).Inc()
}

// RecordCacheMiss records a cache miss for the given cache type.
func RecordCacheMiss(cacheType string) {
	CacheMisses.WithLabelValues(cacheType).Inc()
}

// RecordCacheSweep records the outcome of a janitor sweep.
func RecordCacheSweep(cacheType string, evicted, entries int64) {
	CacheEvictions.WithLabelValues(cacheType).Add(float64(evicted))
	CacheEntries.WithLabelValues(cacheType).Set(float64(entries))
}

// RecordAggregation records one trending aggregation call.
func RecordAggregation(duration time.Duration, records int) {
	AggregationDuration.Observe(duration.Seconds())

	result := "ok"
	if records == 0 {
		result = "empty"
	}
	AggregationsTotal.WithLabelValues(result).Inc()
}

// RecordGeneration records one hashtag generation request.
func RecordGeneration(duration time.Duration, hashtags int, err error) {
	GenerationDuration.Observe(duration.Seconds())

	if err != nil {
		GenerationsTotal.WithLabelValues("error").Inc()
		return
	}
	GenerationsTotal.WithLabelValues("ok").Inc()
	HashtagsReturned.Observe(float64(hashtags))
}

// RecordAIFallbackParse records a regex fallback parse of malformed AI output.
func RecordAIFallbackParse() {
	AIFallbackParses.Inc()
}

// RecordAIRequest records one upstream AI model call.
// Result is one of "success", "failure", or "rejected" (breaker open).
func RecordAIRequest(result string, duration time.Duration) {
	AIRequestsTotal.WithLabelValues(result).Inc()
	AIRequestDuration.Observe(duration.Seconds())
}

// RecordCircuitBreakerTransition records a breaker state change and updates
// the state gauge.
func RecordCircuitBreakerTransition(name, from, to string) {
	CircuitBreakerTransitions.WithLabelValues(name, from, to).Inc()
	CircuitBreakerState.WithLabelValues(name).Set(stateValue(to))
}

func stateValue(state string) float64 {
	switch state {
	case "closed":
		return 0
	case "half-open":
		return 1
	case "open":
		return 2
	default:
		return -1
	}
}

// SetAppInfo records version metadata on the app info gauge.
func SetAppInfo(version, goVersion string) {
	AppInfo.WithLabelValues(version, goVersion).Set(1)
}

// UpdateUptime sets the uptime gauge given the process start time.
func UpdateUptime(startedAt time.Time) {
	AppUptime.Set(time.Since(startedAt).Seconds())
}
