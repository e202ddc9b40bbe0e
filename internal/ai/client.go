// TagForge - Trending Hashtag Aggregation and Recommendation Engine
// Copyright 2026 Alex M. (tagforge)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tagforge/tagforge

// Package ai provides the AI collaborator client used for hashtag
// suggestions, image description, and content classification.
//
// The synthesis engine and categorizer depend only on the Client interface;
// the Anthropic implementation and its circuit-breaker wrapper are wired in
// at startup. Tests substitute fakes.
package ai

import (
	"context"
	"errors"
)

// ErrEmptyResponse is returned when the model produced no usable text block.
var ErrEmptyResponse = errors.New("empty model response")

// ErrRejected is returned when the circuit breaker refuses the call without
// contacting the upstream. Callers can map it to a retry-later response.
var ErrRejected = errors.New("ai request rejected by circuit breaker")

// Client is the AI collaborator. imageRef identifies the content under
// analysis (a URL or opaque reference) and is woven into the request;
// prompt carries the instructions.
type Client interface {
	// Analyze sends one prompt and returns the model's raw text reply.
	Analyze(ctx context.Context, imageRef, prompt string) (string, error)

	// AnalyzeJSON is Analyze with an assistant prefill of "{" so the model
	// continues a JSON object. The returned string includes the prefill and
	// is ready for a JSON decoder.
	AnalyzeJSON(ctx context.Context, imageRef, prompt string) (string, error)
}
