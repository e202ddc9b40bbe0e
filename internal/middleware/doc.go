// TagForge - Trending Hashtag Aggregation and Recommendation Engine
// Copyright 2026 Alex M. (tagforge)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tagforge/tagforge

// Package middleware provides HTTP middleware for the TagForge API.
//
// The middlewares compose around http.HandlerFunc in the order the router
// applies them:
//
//   - RequestID: per-request UUID, propagated via X-Request-ID and context
//   - PrometheusMetrics: request counts, durations, and in-flight gauge
//   - Compression: gzip response bodies for clients that accept it
//   - PerformanceMonitor: sliding-window latency stats with slow-request logs
//
// RequestID should run first so every downstream log line and metric can be
// correlated to one request.
package middleware
