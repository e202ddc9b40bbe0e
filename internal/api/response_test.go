// TagForge - Trending Hashtag Aggregation and Recommendation Engine
// Copyright 2026 Alex M. (tagforge)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tagforge/tagforge

package api

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/goccy/go-json"
)

func TestRespondJSONWritesEnvelope(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	respondJSON(w, 200, &APIResponse{
		Status: "success",
		Data:   map[string]interface{}{"hello": "world"},
		Metadata: Metadata{
			Timestamp: time.Now(),
		},
	})

	if w.Code != 200 {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Expected Content-Type application/json, got %q", ct)
	}
	if cc := w.Header().Get("Cache-Control"); cc != "public, max-age=60" {
		t.Errorf("Expected Cache-Control public, max-age=60, got %q", cc)
	}
	if vary := w.Header().Get("Vary"); vary != "Accept-Encoding" {
		t.Errorf("Expected Vary Accept-Encoding, got %q", vary)
	}
	if etag := w.Header().Get("ETag"); etag == "" {
		t.Error("Expected ETag header to be set")
	}

	var response APIResponse
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if response.Status != "success" {
		t.Errorf("Expected status success, got %q", response.Status)
	}
	if response.Error != nil {
		t.Errorf("Expected no error, got %+v", response.Error)
	}
	if response.Metadata.Timestamp.IsZero() {
		t.Error("Expected metadata timestamp to be set")
	}

	data, ok := response.Data.(map[string]interface{})
	if !ok {
		t.Fatalf("Expected data to be an object, got %T", response.Data)
	}
	if data["hello"] != "world" {
		t.Errorf("Expected data.hello world, got %v", data["hello"])
	}
}

func TestRespondJSONETagMatchesBody(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	respondJSON(w, 200, &APIResponse{
		Status:   "success",
		Data:     []string{"#coffee", "#latte"},
		Metadata: Metadata{Timestamp: time.Unix(1700000000, 0).UTC()},
	})

	want := generateETag(w.Body.Bytes())
	if got := w.Header().Get("ETag"); got != want {
		t.Errorf("Expected ETag %q to match body hash %q", got, want)
	}
}

func TestGenerateETag(t *testing.T) {
	t.Parallel()

	t.Run("EmptyInput", func(t *testing.T) {
		t.Parallel()

		// FNV-1a offset basis, untouched by any input byte.
		if got := generateETag(nil); got != "811c9dc5" {
			t.Errorf("Expected 811c9dc5 for empty input, got %q", got)
		}
	})

	t.Run("Deterministic", func(t *testing.T) {
		t.Parallel()

		first := generateETag([]byte(`{"status":"success"}`))
		second := generateETag([]byte(`{"status":"success"}`))
		if first != second {
			t.Errorf("Expected identical ETags, got %q and %q", first, second)
		}
	})

	t.Run("DistinctInputs", func(t *testing.T) {
		t.Parallel()

		first := generateETag([]byte(`{"count":1}`))
		second := generateETag([]byte(`{"count":2}`))
		if first == second {
			t.Errorf("Expected distinct ETags for distinct inputs, both %q", first)
		}
	})
}

func TestRespondError(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	respondError(w, 500, ErrCodeAggregation, "Failed to aggregate trending hashtags", nil)

	if w.Code != 500 {
		t.Errorf("Expected status 500, got %d", w.Code)
	}

	var response APIResponse
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if response.Status != "error" {
		t.Errorf("Expected status error, got %q", response.Status)
	}
	if response.Data != nil {
		t.Errorf("Expected nil data, got %v", response.Data)
	}
	if response.Error == nil {
		t.Fatal("Expected error payload")
	}
	if response.Error.Code != ErrCodeAggregation {
		t.Errorf("Expected code %s, got %q", ErrCodeAggregation, response.Error.Code)
	}
	if response.Error.Message != "Failed to aggregate trending hashtags" {
		t.Errorf("Unexpected error message %q", response.Error.Message)
	}
}

func TestRespondErrorSanitizesLoggedError(t *testing.T) {
	t.Parallel()

	// The underlying error carries control characters. The handler must not
	// panic and must still produce a clean envelope.
	w := httptest.NewRecorder()
	respondError(w, 400, ErrCodeInvalidJSON, "Request body is not valid JSON",
		errInjection("bad\r\ninput"))

	if w.Code != 400 {
		t.Errorf("Expected status 400, got %d", w.Code)
	}

	var response APIResponse
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if response.Error == nil || response.Error.Code != ErrCodeInvalidJSON {
		t.Errorf("Expected %s error payload, got %+v", ErrCodeInvalidJSON, response.Error)
	}
}

// errInjection is a minimal error type for exercising log sanitization.
type errInjection string

func (e errInjection) Error() string { return string(e) }

func TestRespondValidationError(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	respondValidationError(w, &APIError{
		Code:    ErrCodeValidation,
		Message: "Request validation failed",
		Details: map[string]interface{}{
			"ImageRef": "ImageRef is required",
		},
	})

	if w.Code != 400 {
		t.Errorf("Expected status 400, got %d", w.Code)
	}

	var response APIResponse
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if response.Status != "error" {
		t.Errorf("Expected status error, got %q", response.Status)
	}
	if response.Error == nil {
		t.Fatal("Expected error payload")
	}
	if response.Error.Code != ErrCodeValidation {
		t.Errorf("Expected code %s, got %q", ErrCodeValidation, response.Error.Code)
	}
	if response.Error.Details["ImageRef"] != "ImageRef is required" {
		t.Errorf("Expected ImageRef detail to survive, got %v", response.Error.Details)
	}
}
