// TagForge - Trending Hashtag Aggregation and Recommendation Engine
// Copyright 2026 Alex M. (tagforge)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tagforge/tagforge

package api

import (
	"net/http"
	"time"
)

// serviceVersion is reported by the health endpoint.
const serviceVersion = "1.0.0"

// HealthStatus is the payload of GET /api/v1/health.
type HealthStatus struct {
	Status       string   `json:"status"`
	Version      string   `json:"version"`
	AIConfigured bool     `json:"ai_configured"`
	Providers    []string `json:"providers"`
	CacheEntries int64    `json:"cache_entries"`
	CacheHitRate float64  `json:"cache_hit_rate"`
	Uptime       float64  `json:"uptime_seconds"`
}

// Health reports component health: trending providers, AI availability,
// cache effectiveness, and uptime.
//
// The service is "healthy" when both the aggregator and the engine are
// wired with an AI credential, and "degraded" when generation cannot work
// but trending reads still can.
//
// Method: GET
// Path: /api/v1/health
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) {
		return
	}

	status := "healthy"
	if h.fetcher == nil || h.generator == nil || !h.aiEnabled {
		status = "degraded"
	}

	cacheStats := h.cacheStats()
	providers := h.providers
	if providers == nil {
		providers = []string{}
	}

	respondJSON(w, http.StatusOK, &APIResponse{
		Status: "success",
		Data: HealthStatus{
			Status:       status,
			Version:      serviceVersion,
			AIConfigured: h.aiEnabled,
			Providers:    providers,
			CacheEntries: cacheStats.Entries,
			CacheHitRate: cacheStats.HitRate,
			Uptime:       time.Since(h.startTime).Seconds(),
		},
		Metadata: Metadata{
			Timestamp: time.Now(),
		},
	})
}

// HealthLive handles liveness probe requests (Kubernetes-style).
// Returns 200 OK if the process is alive, regardless of dependencies.
//
// Method: GET
// Path: /api/v1/health/live
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) {
		return
	}

	respondJSON(w, http.StatusOK, &APIResponse{
		Status: "success",
		Data: map[string]interface{}{
			"alive":  true,
			"uptime": time.Since(h.startTime).Seconds(),
		},
		Metadata: Metadata{
			Timestamp: time.Now(),
		},
	})
}

// HealthReady handles readiness probe requests (Kubernetes-style).
// Returns 200 OK only when both the aggregator and the synthesis engine
// are wired; 503 otherwise.
//
// Method: GET
// Path: /api/v1/health/ready
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) {
		return
	}

	trendingReady := h.fetcher != nil
	generatorReady := h.generator != nil
	ready := trendingReady && generatorReady

	statusCode := http.StatusOK
	status := "ready"
	if !ready {
		statusCode = http.StatusServiceUnavailable
		status = "not_ready"
	}

	respondJSON(w, statusCode, &APIResponse{
		Status: status,
		Data: map[string]interface{}{
			"trending_ready":  trendingReady,
			"generator_ready": generatorReady,
			"ready_to_serve":  ready,
			"uptime":          time.Since(h.startTime).Seconds(),
		},
		Metadata: Metadata{
			Timestamp: time.Now(),
		},
	})
}
