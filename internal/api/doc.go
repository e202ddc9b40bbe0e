// TagForge - Trending Hashtag Aggregation and Recommendation Engine
// Copyright 2026 Alex M. (tagforge)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tagforge/tagforge

// Package api provides the HTTP surface of TagForge: routing, middleware
// configuration, request validation, and handlers.
//
// # Endpoints
//
//   - POST /api/v1/hashtags/generate  AI-assisted hashtag generation
//   - GET  /api/v1/hashtags/trending  aggregated trending hashtags
//   - GET  /api/v1/platforms          per-platform guideline tables
//   - GET  /api/v1/performance        endpoint latency and cache statistics
//   - GET  /api/v1/health             component health (+ /live, /ready probes)
//   - GET  /metrics                   Prometheus metrics
//
// # Response Envelope
//
// Every JSON endpoint responds with the same envelope:
//
//	{
//	  "status":   "success" | "error",
//	  "data":     <payload or null>,
//	  "metadata": {"timestamp": "...", "query_time_ms": 12},
//	  "error":    {"code": "...", "message": "..."}   // errors only
//	}
//
// # Middleware
//
// Routing is built on Chi with go-chi/cors for CORS and go-chi/httprate
// for per-endpoint rate limiting. Generation is limited hardest (the AI
// call is the expensive path), trending reads are permissive because the
// providers cache, and health checks are effectively unthrottled so
// monitors can poll freely. Request IDs, Prometheus instrumentation, and
// response compression come from internal/middleware.
package api
