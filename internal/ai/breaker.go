// TagForge - Trending Hashtag Aggregation and Recommendation Engine
// Copyright 2026 Alex M. (tagforge)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tagforge/tagforge

package ai

import (
	"context"
	"errors"
	"fmt"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/tagforge/tagforge/internal/logging"
	"github.com/tagforge/tagforge/internal/metrics"
)

// BreakerClient wraps a Client with a circuit breaker. While the breaker is
// open, calls fail immediately with ErrRejected instead of hitting the
// upstream API.
//
// Breaker configuration:
//   - Max 3 concurrent requests in half-open state
//   - 1 minute measurement window in closed state
//   - 30 second timeout before attempting recovery
//   - Opens at a 60% failure rate over at least 5 requests
//
// The breaker uses real time for its interval and timeout calculations.
// Tests exercise the trip path with consecutive failures and mock the
// underlying client rather than the breaker.
type BreakerClient struct {
	inner Client
	cb    *gobreaker.CircuitBreaker[string]
	name  string
}

var _ Client = (*BreakerClient)(nil)

// NewBreakerClient wraps inner with circuit breaker protection.
func NewBreakerClient(inner Client) *BreakerClient {
	cbName := "anthropic-api"

	cb := gobreaker.NewCircuitBreaker[string](gobreaker.Settings{
		Name:        cbName,
		MaxRequests: 3,
		Interval:    time.Minute,
		Timeout:     30 * time.Second,

		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < 5 {
				return false
			}
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			shouldTrip := failureRatio >= 0.6
			if shouldTrip {
				logging.Warn().
					Uint32("failures", counts.TotalFailures).
					Float64("failure_rate", failureRatio*100).
					Msg("[CIRCUIT BREAKER] Opening circuit")
			}
			return shouldTrip
		},

		OnStateChange: func(name string, from, to gobreaker.State) {
			fromStr := stateToString(from)
			toStr := stateToString(to)
			logging.Info().
				Str("from", fromStr).
				Str("to", toStr).
				Msg("[CIRCUIT BREAKER] State transition")
			metrics.RecordCircuitBreakerTransition(name, fromStr, toStr)
		},
	})

	return &BreakerClient{inner: inner, cb: cb, name: cbName}
}

// Analyze implements Client.
func (b *BreakerClient) Analyze(ctx context.Context, imageRef, prompt string) (string, error) {
	return b.execute(func() (string, error) {
		return b.inner.Analyze(ctx, imageRef, prompt)
	})
}

// AnalyzeJSON implements Client.
func (b *BreakerClient) AnalyzeJSON(ctx context.Context, imageRef, prompt string) (string, error) {
	return b.execute(func() (string, error) {
		return b.inner.AnalyzeJSON(ctx, imageRef, prompt)
	})
}

func (b *BreakerClient) execute(fn func() (string, error)) (string, error) {
	start := time.Now()
	result, err := b.cb.Execute(fn)
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			metrics.RecordAIRequest("rejected", time.Since(start))
			logging.Warn().Err(err).Msg("[CIRCUIT BREAKER] Request rejected")
			return "", fmt.Errorf("%w: %v", ErrRejected, err)
		}
		metrics.RecordAIRequest("failure", time.Since(start))
		return "", err
	}

	metrics.RecordAIRequest("success", time.Since(start))
	return result, nil
}

func stateToString(state gobreaker.State) string {
	switch state {
	case gobreaker.StateClosed:
		return "closed"
	case gobreaker.StateHalfOpen:
		return "half-open"
	case gobreaker.StateOpen:
		return "open"
	default:
		return "unknown"
	}
}
