// TagForge - Trending Hashtag Aggregation and Recommendation Engine
// Copyright 2026 Alex M. (tagforge)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tagforge/tagforge

// Package services provides suture.Service implementations for TagForge's
// long-running components.
//
// Each service wraps one component behind the suture.Service contract:
//
//   - HTTPServerService: the chi API server, with bounded graceful drain
//     on shutdown.
//   - CacheJanitorService: periodic eviction of expired cache entries plus
//     refresh of cache and uptime gauges.
//
// Services are added to the tree built by the parent supervisor package:
//
//	tree.AddAPIService(services.NewHTTPServerService(srv, cfg.Server.ShutdownTimeout))
//	tree.AddMaintenanceService(services.NewCacheJanitorService(store, cfg.Cache.SweepInterval))
//
// All services follow the same lifecycle rules:
//
//   - Serve blocks until the service stops or the context is canceled.
//   - Context cancellation is a normal stop, not a failure; services
//     return ctx.Err() so suture does not restart them.
//   - Any other returned error is a failure and triggers a supervised
//     restart with backoff.
package services
