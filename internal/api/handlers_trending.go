// TagForge - Trending Hashtag Aggregation and Recommendation Engine
// Copyright 2026 Alex M. (tagforge)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tagforge/tagforge

package api

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/tagforge/tagforge/internal/cache"
	"github.com/tagforge/tagforge/internal/categorize"
	"github.com/tagforge/tagforge/internal/metrics"
	"github.com/tagforge/tagforge/internal/platform"
	"github.com/tagforge/tagforge/internal/trending"
)

// defaultTrendingLimit is the record cap applied when the query names none.
const defaultTrendingLimit = 10

// trendingResponseTTL bounds the handler-level response memoization. Much
// shorter than the provider cache TTL; it only absorbs request bursts.
const trendingResponseTTL = 5 * time.Minute

// cacheTypeAPI labels cache metrics emitted by the response memoization.
const cacheTypeAPI = "api"

// TrendingResponse is the payload of GET /api/v1/hashtags/trending.
//
// Success mirrors the aggregation semantics: an empty pool is not an HTTP
// error, it is a successful call that found no signal, reported with
// Success false.
type TrendingResponse struct {
	Hashtags []trending.HashtagRecord `json:"hashtags"`
	Sources  []string                 `json:"sources"`
	Category string                   `json:"category"`
	Platform string                   `json:"platform"`
	Count    int                      `json:"count"`
	Success  bool                     `json:"success"`
	Error    string                   `json:"error,omitempty"`
}

// TrendingHashtags returns aggregated trending hashtags for a category and
// platform.
//
// Method: GET
// Path: /api/v1/hashtags/trending
//
// Query parameters:
//   - category: content category (default "lifestyle")
//   - platform: social platform (default "instagram")
//   - limit: maximum records (1-100, default 10)
//
// Response:
//   - 200: Records retrieved, or empty pool with success=false in the data
//   - 400: Validation failure
//   - 500: Aggregation failed outright
//   - 503: Aggregator not configured
func (h *Handler) TrendingHashtags(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) || !h.requireFetcher(w) {
		return
	}

	req := TrendingRequest{
		Category: r.URL.Query().Get("category"),
		Platform: r.URL.Query().Get("platform"),
		Limit:    getIntParam(r, "limit", defaultTrendingLimit),
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondValidationError(w, apiErr)
		return
	}

	category := req.Category
	if category == "" {
		category = categorize.DefaultCategory
	}
	plat := platform.For(req.Platform).Name

	key := trendingCacheKey(category, plat, req.Limit)
	if h.cache != nil {
		if entry, ok := h.cache.Get(key); ok {
			if resp, ok := entry.(TrendingResponse); ok {
				metrics.RecordCacheHit(cacheTypeAPI)
				respondJSON(w, http.StatusOK, &APIResponse{
					Status: "success",
					Data:   resp,
					Metadata: Metadata{
						Timestamp: time.Now(),
						Cached:    true,
					},
				})
				return
			}
		}
		metrics.RecordCacheMiss(cacheTypeAPI)
	}

	start := time.Now()
	result, err := h.fetcher.Fetch(r.Context(), category, plat, req.Limit)
	if err != nil {
		if errors.Is(err, trending.ErrNoTrendingData) {
			// Not cached: an all-providers-empty blip should not stick.
			respondJSON(w, http.StatusOK, &APIResponse{
				Status: "success",
				Data: TrendingResponse{
					Hashtags: []trending.HashtagRecord{},
					Sources:  result.Sources,
					Category: category,
					Platform: plat,
					Success:  false,
					Error:    err.Error(),
				},
				Metadata: Metadata{
					Timestamp:   time.Now(),
					QueryTimeMS: time.Since(start).Milliseconds(),
				},
			})
			return
		}
		respondError(w, http.StatusInternalServerError, ErrCodeAggregation, "Failed to aggregate trending hashtags", err)
		return
	}

	resp := TrendingResponse{
		Hashtags: result.Records,
		Sources:  result.Sources,
		Category: result.Category,
		Platform: result.Platform,
		Count:    len(result.Records),
		Success:  true,
	}
	if h.cache != nil {
		h.cache.SetWithTTL(key, resp, trendingResponseTTL)
	}

	respondJSON(w, http.StatusOK, &APIResponse{
		Status: "success",
		Data:   resp,
		Metadata: Metadata{
			Timestamp:   time.Now(),
			QueryTimeMS: time.Since(start).Milliseconds(),
		},
	})
}

// trendingCacheKey namespaces memoized responses away from provider records
// in the shared cache.
func trendingCacheKey(category, plat string, limit int) string {
	return cache.Key("api_trending", category, plat) + ":" + strconv.Itoa(limit)
}
