// TagForge - Trending Hashtag Aggregation and Recommendation Engine
// Copyright 2026 Alex M. (tagforge)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tagforge/tagforge

package api

import (
	"context"
	"net/http"
	"time"

	"github.com/tagforge/tagforge/internal/cache"
	"github.com/tagforge/tagforge/internal/categorize"
	"github.com/tagforge/tagforge/internal/hashtag"
	"github.com/tagforge/tagforge/internal/middleware"
	"github.com/tagforge/tagforge/internal/platform"
	"github.com/tagforge/tagforge/internal/trending"
)

// Generator produces the final hashtag set for a request.
// *hashtag.Engine satisfies it.
type Generator interface {
	Generate(ctx context.Context, req hashtag.Request) (hashtag.Result, error)
}

// TrendingFetcher aggregates trending records across the configured
// providers. *trending.Aggregator satisfies it.
type TrendingFetcher interface {
	Fetch(ctx context.Context, category, platform string, maxCount int) (trending.AggregateResult, error)
}

// ContentClassifier categorizes content when a request names no category.
// *categorize.Classifier satisfies it.
type ContentClassifier interface {
	Classify(ctx context.Context, imageRef string) (categorize.Classification, error)
}

// Handler processes HTTP requests for the TagForge API.
//
// The cache is the shared trending cache; the handler layers short-lived
// response memoization for the trending endpoint on top of it and surfaces
// its statistics through the health and performance endpoints.
type Handler struct {
	generator  Generator
	fetcher    TrendingFetcher
	classifier ContentClassifier
	cache      *cache.Cache
	perfMon    *middleware.PerformanceMonitor
	providers  []string
	aiEnabled  bool
	startTime  time.Time
}

// NewHandler creates the API handler.
//
// generator, fetcher, and classifier may be nil when the corresponding
// component is not configured; the affected endpoints respond 503.
// providers lists the configured trending provider names for the health
// endpoint, and aiEnabled reports whether an AI credential is present.
func NewHandler(generator Generator, fetcher TrendingFetcher, classifier ContentClassifier, c *cache.Cache, providers []string, aiEnabled bool) *Handler {
	return &Handler{
		generator:  generator,
		fetcher:    fetcher,
		classifier: classifier,
		cache:      c,
		perfMon:    middleware.NewPerformanceMonitor(1000), // keep last 1000 requests
		providers:  providers,
		aiEnabled:  aiEnabled,
		startTime:  time.Now(),
	}
}

// requireGenerator checks engine availability and returns true if available,
// false if an error response was already sent.
func (h *Handler) requireGenerator(w http.ResponseWriter) bool {
	if h.generator == nil {
		respondError(w, http.StatusServiceUnavailable, ErrCodeServiceError, ErrGeneratorUnavailable.Error(), nil)
		return false
	}
	return true
}

// requireFetcher checks aggregator availability and returns true if
// available, false if an error response was already sent.
func (h *Handler) requireFetcher(w http.ResponseWriter) bool {
	if h.fetcher == nil {
		respondError(w, http.StatusServiceUnavailable, ErrCodeServiceError, ErrTrendingUnavailable.Error(), nil)
		return false
	}
	return true
}

// PlatformsResponse is the payload of GET /api/v1/platforms.
type PlatformsResponse struct {
	Platforms []platform.Guidelines `json:"platforms"`
	Default   string                `json:"default"`
	Count     int                   `json:"count"`
}

// Platforms returns the per-platform hashtag guideline tables, including
// hard caps, optimal ranges, and posting-time hints.
//
// Method: GET
// Path: /api/v1/platforms
func (h *Handler) Platforms(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) {
		return
	}

	names := platform.Supported()
	tables := make([]platform.Guidelines, 0, len(names))
	for _, name := range names {
		tables = append(tables, platform.For(name))
	}

	respondJSON(w, http.StatusOK, &APIResponse{
		Status: "success",
		Data: PlatformsResponse{
			Platforms: tables,
			Default:   platform.Default,
			Count:     len(tables),
		},
		Metadata: Metadata{
			Timestamp: time.Now(),
		},
	})
}

// PerformanceResponse is the payload of GET /api/v1/performance.
type PerformanceResponse struct {
	Endpoints []middleware.EndpointStats `json:"endpoints"`
	Cache     CacheStats                 `json:"cache"`
}

// CacheStats is the JSON view of the shared cache counters.
type CacheStats struct {
	Hits      int64   `json:"hits"`
	Misses    int64   `json:"misses"`
	Evictions int64   `json:"evictions"`
	Entries   int64   `json:"entries"`
	HitRate   float64 `json:"hit_rate"`
}

// Performance returns per-endpoint latency aggregates from the sliding
// request window plus cache effectiveness counters.
//
// Method: GET
// Path: /api/v1/performance
func (h *Handler) Performance(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) {
		return
	}

	stats := h.perfMon.GetStats()
	if stats == nil {
		stats = []middleware.EndpointStats{}
	}

	respondJSON(w, http.StatusOK, &APIResponse{
		Status: "success",
		Data: PerformanceResponse{
			Endpoints: stats,
			Cache:     h.cacheStats(),
		},
		Metadata: Metadata{
			Timestamp: time.Now(),
		},
	})
}

// cacheStats snapshots the shared cache counters, tolerating a nil cache.
func (h *Handler) cacheStats() CacheStats {
	if h.cache == nil {
		return CacheStats{}
	}
	s := h.cache.GetStats()
	return CacheStats{
		Hits:      s.Hits,
		Misses:    s.Misses,
		Evictions: s.Evictions,
		Entries:   s.TotalKeys,
		HitRate:   h.cache.HitRate(),
	}
}
