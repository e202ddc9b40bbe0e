// TagForge - Trending Hashtag Aggregation and Recommendation Engine
// Copyright 2026 Alex M. (tagforge)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tagforge/tagforge

// Package validation provides struct validation using go-playground/validator v10.
//
// This package wraps the go-playground/validator library to provide a thread-safe
// singleton validator instance with custom validators and user-friendly error
// messages. It integrates with the API envelope's error format for consistent
// error responses.
//
// # Overview
//
// The package provides:
//   - Thread-safe singleton validator (initialized once, cached struct info)
//   - A custom "platform" validator backed by the supported-platform registry
//   - Error translation to human-readable messages
//   - APIError conversion matching the API envelope's error format
//
// # Quick Start
//
//	type GenerateRequest struct {
//	    ImageRef    string `json:"image_ref" validate:"required,max=2048"`
//	    Platform    string `json:"platform" validate:"omitempty,platform"`
//	    MaxHashtags int    `json:"max_hashtags" validate:"gte=0,lte=50"`
//	}
//
//	func handler(w http.ResponseWriter, r *http.Request) {
//	    var req GenerateRequest
//	    if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
//	        // handle decode error
//	    }
//
//	    if verr := validation.ValidateStruct(&req); verr != nil {
//	        apiErr := verr.ToAPIError()
//	        respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, nil)
//	        return
//	    }
//
//	    // proceed with valid request
//	}
//
// # Common Validation Tags
//
// String validations:
//   - required: Field must not be empty
//   - min=n: Minimum length n characters
//   - max=n: Maximum length n characters
//   - oneof=a b: Value must be one of the listed tokens
//   - url: Valid URL format
//
// Numeric validations:
//   - gte=n: Greater than or equal to n
//   - lte=n: Less than or equal to n
//   - gt=n: Greater than n
//   - lt=n: Less than n
//
// Custom validations:
//   - platform: Value must name a supported social platform (case-insensitive)
//
// # Error Handling
//
// ValidateStruct returns *RequestValidationError, which aggregates every
// failed field. Call ToAPIError for a response-ready code, message, and
// details map; single-field failures carry the field, tag, and offending
// value, multi-field failures carry a per-field breakdown.
package validation
