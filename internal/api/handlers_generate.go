// TagForge - Trending Hashtag Aggregation and Recommendation Engine
// Copyright 2026 Alex M. (tagforge)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tagforge/tagforge

package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/goccy/go-json"

	"github.com/tagforge/tagforge/internal/ai"
	"github.com/tagforge/tagforge/internal/logging"
)

// maxGenerateBodyBytes caps the generate request body. Image references are
// URLs or opaque IDs, never inline payloads, so 1 MiB is generous.
const maxGenerateBodyBytes = 1 << 20

// GenerateHashtags produces a platform-bounded hashtag set for a piece of
// content, merging AI suggestions with real trending data.
//
// Method: POST
// Path: /api/v1/hashtags/generate
//
// When the body names no category the content is classified first; a failed
// classification falls back to the default category rather than failing the
// request. An AI suggestion failure is the one hard failure: the response
// is 422 and its data object still carries the real trending records so
// clients can degrade. A circuit-breaker rejection maps to 503.
//
// Response:
//   - 200: Generation succeeded
//   - 400: Malformed body or validation failure
//   - 422: AI suggestion call failed
//   - 503: AI circuit breaker open, or engine not configured
func (h *Handler) GenerateHashtags(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost) || !h.requireGenerator(w) {
		return
	}

	var req GenerateRequest
	body := http.MaxBytesReader(w, r.Body, maxGenerateBodyBytes)
	if err := json.NewDecoder(body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, ErrCodeInvalidJSON, "Request body is not valid JSON", err)
		return
	}

	if apiErr := validateRequest(&req); apiErr != nil {
		respondValidationError(w, apiErr)
		return
	}

	start := time.Now()
	genReq := req.toEngineRequest()

	// No category named: classify the content first. Classification is
	// advisory; on failure the engine falls back to the default category.
	if genReq.Category == "" && h.classifier != nil {
		cls, err := h.classifier.Classify(r.Context(), genReq.ImageRef)
		if err != nil {
			logging.Ctx(r.Context()).Warn().Err(err).Msg("Categorization failed, using default category")
		} else {
			genReq.Category = cls.Primary
			if len(genReq.Secondary) == 0 {
				genReq.Secondary = cls.Secondary
			}
		}
	}

	result, err := h.generator.Generate(r.Context(), genReq)
	if err != nil {
		if errors.Is(err, ai.ErrRejected) {
			respondError(w, http.StatusServiceUnavailable, ErrCodeAIUnavailable, "AI suggestions are temporarily unavailable", err)
			return
		}

		// The failed result still carries the real trending records.
		respondJSON(w, http.StatusUnprocessableEntity, &APIResponse{
			Status: "error",
			Data:   result,
			Metadata: Metadata{
				Timestamp:   time.Now(),
				QueryTimeMS: time.Since(start).Milliseconds(),
			},
			Error: &APIError{
				Code:    ErrCodeAIGeneration,
				Message: "AI hashtag generation failed",
			},
		})
		return
	}

	respondJSON(w, http.StatusOK, &APIResponse{
		Status: "success",
		Data:   result,
		Metadata: Metadata{
			Timestamp:   time.Now(),
			QueryTimeMS: time.Since(start).Milliseconds(),
		},
	})
}
