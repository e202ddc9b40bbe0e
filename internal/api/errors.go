// TagForge - Trending Hashtag Aggregation and Recommendation Engine
// Copyright 2026 Alex M. (tagforge)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tagforge/tagforge

// errors.go - Common API error definitions
//
// This file contains sentinel errors for common API error conditions.
package api

import "errors"

// Common API errors
var (
	// ErrGeneratorUnavailable indicates the synthesis engine is not wired up.
	ErrGeneratorUnavailable = errors.New("hashtag generation is not available")

	// ErrTrendingUnavailable indicates the trending aggregator is not wired up.
	ErrTrendingUnavailable = errors.New("trending aggregation is not available")
)
