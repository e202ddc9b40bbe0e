// TagForge - Trending Hashtag Aggregation and Recommendation Engine
// Copyright 2026 Alex M. (tagforge)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tagforge/tagforge

// Package main is the entry point for the TagForge server.
//
// TagForge aggregates trending hashtag data from multiple sources and
// recommends platform-sized hashtag sets for social media posts, optionally
// collaborating with the Anthropic API for content-aware suggestions.
//
// # Application Architecture
//
// The server implements a layered architecture with Suture v4 process
// supervision:
//
//	RootSupervisor ("tagforge")
//	├── MaintenanceSupervisor ("maintenance-layer")
//	│   └── Cache Janitor (periodic eviction sweeps)
//	└── APISupervisor ("api-layer")
//	    └── HTTP Server (REST API)
//
// Component initialization order:
//
//  1. Configuration: Koanf v2 with environment variables and config files
//  2. Logging: zerolog with JSON/console output modes
//  3. Cache: in-memory TTL store shared by providers and response memoization
//  4. Providers: web scrape plus structured trending APIs, per config toggles
//  5. AI client: Anthropic with circuit breaker (optional, needs API key)
//  6. Supervisor tree: Suture v4 process supervision
//  7. HTTP server: chi router with middleware stack
//
// # Configuration
//
// Configuration is loaded via Koanf v2 with layered sources (highest priority
// wins):
//   - Environment variables (see envTransformFunc in internal/config)
//   - Config file (config.yaml)
//   - Built-in defaults
//
// AI-assisted generation is optional. Without ANTHROPIC_API_KEY the trending
// endpoints still work and /api/v1/hashtags/generate returns 503.
//
// # Signal Handling
//
// The server handles graceful shutdown on SIGINT and SIGTERM:
//   - Stops accepting new connections
//   - Waits for in-flight requests to complete (10s timeout)
//   - Stops the cache janitor
//
// # Example Usage
//
// Trending aggregation only (no AI):
//
//	./tagforge
//
// With AI-assisted generation:
//
//	export ANTHROPIC_API_KEY=sk-ant-...
//	./tagforge
//
// Docker:
//
//	docker run -d \
//	  -e ANTHROPIC_API_KEY=sk-ant-... \
//	  -p 8490:8490 \
//	  ghcr.io/tagforge/tagforge
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/tagforge/tagforge/internal/ai"
	"github.com/tagforge/tagforge/internal/api"
	"github.com/tagforge/tagforge/internal/cache"
	"github.com/tagforge/tagforge/internal/categorize"
	"github.com/tagforge/tagforge/internal/config"
	"github.com/tagforge/tagforge/internal/hashtag"
	"github.com/tagforge/tagforge/internal/logging"
	"github.com/tagforge/tagforge/internal/metrics"
	"github.com/tagforge/tagforge/internal/supervisor"
	"github.com/tagforge/tagforge/internal/supervisor/services"
	"github.com/tagforge/tagforge/internal/trending"
)

// version is stamped at build time via -ldflags "-X main.version=...".
var version = "1.0.0"

func main() {
	// Load configuration first to get logging settings
	cfg, err := config.Load()
	if err != nil {
		// Use default logger for config errors (config not yet available)
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		Caller:    cfg.Logging.Caller,
		Timestamp: true,
	})

	logging.Info().Msg("Starting TagForge with supervisor tree")

	aiEnabled := cfg.AI.APIKey != ""
	logging.Info().
		Bool("ai_enabled", aiEnabled).
		Bool("scrape_enabled", cfg.Providers.ScrapeEnabled).
		Bool("hashtagify_enabled", cfg.Providers.HashtagifyEnabled).
		Bool("ritetag_enabled", cfg.Providers.RitetagEnabled).
		Str("environment", cfg.Server.Environment).
		Msg("Configuration loaded")
	logging.Debug().Interface("config", cfg.Sanitized()).Msg("Effective configuration")

	metrics.SetAppInfo(version, runtime.Version())

	// One shared TTL cache: providers memoize raw source results under their
	// own keys, the API layer memoizes whole trending responses.
	store := cache.New(cfg.Cache.TTL)
	blocklist := trending.NewBlocklist()

	providers := buildProviders(cfg, store, blocklist)
	providerNames := make([]string, 0, len(providers))
	for _, p := range providers {
		providerNames = append(providerNames, p.Name())
	}
	logging.Info().Strs("providers", providerNames).Msg("Trending providers initialized")

	aggregator := trending.NewAggregator(providers, cfg.Providers.FetchTimeout)

	// The AI collaborator is optional: without a key the trending surface
	// stays fully functional and /api/v1/hashtags/generate reports 503.
	var generator api.Generator
	var classifier api.ContentClassifier
	if aiEnabled {
		client := ai.NewBreakerClient(ai.NewAnthropicClient(&cfg.AI))
		generator = hashtag.NewEngine(aggregator, client)
		classifier = categorize.NewClassifier(client)
		logging.Info().Str("model", cfg.AI.Model).Msg("AI generation enabled")
	} else {
		logging.Warn().Msg("AI generation disabled (ANTHROPIC_API_KEY not set)")
	}

	handler := api.NewHandler(generator, aggregator, classifier, store, providerNames, aiEnabled)
	router := api.NewRouter(handler, &cfg.API)

	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router.Setup(),
		ReadTimeout:  cfg.Server.Timeout,
		WriteTimeout: cfg.Server.Timeout,
		IdleTimeout:  60 * time.Second,
	}

	// Create context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// sutureslog bridges supervisor events into zerolog via the slog adapter
	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.TreeConfig{
		FailureThreshold: 5,
		FailureBackoff:   15 * time.Second,
		ShutdownTimeout:  10 * time.Second,
	})
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create supervisor tree")
	}

	// Maintenance layer services
	if cfg.Cache.JanitorInterval > 0 {
		tree.AddMaintenanceService(services.NewCacheJanitorService(store, cfg.Cache.JanitorInterval))
		logging.Info().Dur("interval", cfg.Cache.JanitorInterval).Msg("Cache janitor added to supervisor tree")
	} else {
		logging.Info().Msg("Cache janitor disabled (CACHE_JANITOR_INTERVAL=0)")
	}

	// API layer services
	tree.AddAPIService(services.NewHTTPServerService(server, 10*time.Second))
	logging.Info().Str("addr", server.Addr).Msg("HTTP server service added")

	// Setup signal handling
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logging.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
		cancel()
	}()

	logging.Info().Msg("Starting supervisor tree...")
	errCh := tree.ServeBackground(ctx)

	// Wait for supervisor to finish (either from signal or error)
	select {
	case <-ctx.Done():
		logging.Info().Msg("Context canceled, waiting for supervisor to finish...")
	case err := <-errCh:
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor tree error")
		}
	}

	// Wait for the error channel to close (supervisor finished)
	for err := range errCh {
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor shutdown error")
		}
	}

	// Report any services that failed to stop within timeout
	unstopped, _ := tree.UnstoppedServiceReport()
	if len(unstopped) > 0 {
		logging.Warn().Int("count", len(unstopped)).Msg("Services failed to stop within timeout")
		for _, svc := range unstopped {
			logging.Warn().Str("service", svc.Name).Msg("Service failed to stop")
		}
	}

	logging.Info().Msg("Application stopped gracefully")
}

// buildProviders assembles the provider set from config toggles. The curated
// fallback provider is always present so aggregation never starts empty.
func buildProviders(cfg *config.Config, store *cache.Cache, blocklist *trending.Blocklist) []trending.Provider {
	var providers []trending.Provider

	if cfg.Providers.ScrapeEnabled {
		providers = append(providers, trending.NewWebScrapeProvider(store, blocklist, trending.WebScrapeConfig{
			UserAgent:         cfg.Providers.UserAgent,
			RequestsPerSecond: cfg.Providers.RequestsPerSecond,
		}))
	}
	if cfg.Providers.HashtagifyEnabled {
		providers = append(providers, trending.NewHashtagifyProvider(store))
	}
	if cfg.Providers.RitetagEnabled {
		providers = append(providers, trending.NewRitetagProvider(store))
	}

	providers = append(providers, trending.NewCuratedProvider())
	return providers
}
