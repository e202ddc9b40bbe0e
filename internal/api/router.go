// TagForge - Trending Hashtag Aggregation and Recommendation Engine
// Copyright 2026 Alex M. (tagforge)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tagforge/tagforge

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tagforge/tagforge/internal/config"
	"github.com/tagforge/tagforge/internal/middleware"
)

// Router assembles the HTTP routes using the Chi router.
type Router struct {
	handler       *Handler
	chiMiddleware *ChiMiddleware
}

// NewRouter creates a router over the handler. A nil config keeps the
// middleware defaults.
func NewRouter(handler *Handler, cfg *config.APIConfig) *Router {
	mwCfg := DefaultChiMiddlewareConfig()
	if cfg != nil {
		if len(cfg.CORSOrigins) > 0 {
			mwCfg.CORSAllowedOrigins = cfg.CORSOrigins
		}
		mwCfg.RateLimitDisabled = cfg.RateLimitDisabled
	}

	return &Router{
		handler:       handler,
		chiMiddleware: NewChiMiddleware(mwCfg),
	}
}

// Setup configures all HTTP routes and returns the root handler.
func (router *Router) Setup() http.Handler {
	r := chi.NewRouter()

	// Global middleware, applied to all routes in order.
	r.Use(chiMiddleware(middleware.RequestID)) // X-Request-ID plus logging context
	r.Use(chimiddleware.RealIP)                // extract real IP from X-Forwarded-For
	r.Use(chimiddleware.Recoverer)             // recover from panics
	r.Use(router.chiMiddleware.CORS())         // CORS must be global to handle OPTIONS preflight

	// Health endpoints: permissive rate limiting so monitors can poll.
	r.Route("/api/v1/health", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimitHealth())
		r.Use(APISecurityHeaders())
		r.Get("/live", router.handler.HealthLive)
		r.Get("/ready", router.handler.HealthReady)
		r.Get("/", router.handler.Health)
	})

	// Hashtag endpoints, the core of the service. Generation is limited
	// hardest; trending reads are cache-backed and permissive.
	r.Route("/api/v1/hashtags", func(r chi.Router) {
		r.Use(APISecurityHeaders())
		r.Use(chiMiddleware(middleware.PrometheusMetrics))
		r.Use(chiMiddleware(middleware.Compression))
		r.Use(router.handler.perfMon.Middleware)

		r.With(router.chiMiddleware.RateLimitGenerate()).Post("/generate", router.handler.GenerateHashtags)
		r.With(router.chiMiddleware.RateLimitTrending()).Get("/trending", router.handler.TrendingHashtags)
	})

	// Lightweight read endpoints.
	r.Route("/api/v1", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimit())
		r.Use(APISecurityHeaders())
		r.Use(chiMiddleware(middleware.PrometheusMetrics))
		r.Use(chiMiddleware(middleware.Compression))

		r.Get("/platforms", router.handler.Platforms)
		r.Get("/performance", router.handler.Performance)
	})

	// Observability.
	r.Handle("/metrics", promhttp.Handler())

	return r
}
