// TagForge - Trending Hashtag Aggregation and Recommendation Engine
// Copyright 2026 Alex M. (tagforge)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tagforge/tagforge

package api

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/goccy/go-json"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestAPISecurityHeaders(t *testing.T) {
	t.Parallel()

	handler := APISecurityHeaders()(okHandler())

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/api/v1/platforms", nil)
	handler.ServeHTTP(w, r)

	if got := w.Header().Get("X-Content-Type-Options"); got != "nosniff" {
		t.Errorf("Expected nosniff, got %q", got)
	}
	if got := w.Header().Get("X-Frame-Options"); got != "DENY" {
		t.Errorf("Expected DENY, got %q", got)
	}
	if got := w.Header().Get("Referrer-Policy"); got != "strict-origin-when-cross-origin" {
		t.Errorf("Expected strict-origin-when-cross-origin, got %q", got)
	}
	if got := w.Header().Get("Strict-Transport-Security"); got != "" {
		t.Errorf("Expected no HSTS on plain HTTP, got %q", got)
	}
}

func TestAPISecurityHeadersHSTSBehindProxy(t *testing.T) {
	t.Parallel()

	handler := APISecurityHeaders()(okHandler())

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/api/v1/platforms", nil)
	r.Header.Set("X-Forwarded-Proto", "https")
	handler.ServeHTTP(w, r)

	if got := w.Header().Get("Strict-Transport-Security"); got == "" {
		t.Error("Expected HSTS when X-Forwarded-Proto is https")
	}
}

func TestRateLimitPresets(t *testing.T) {
	t.Parallel()

	if RateLimitGenerate.Requests != 20 {
		t.Errorf("Expected 20 generate requests per window, got %d", RateLimitGenerate.Requests)
	}
	if RateLimitTrending.Requests != 120 {
		t.Errorf("Expected 120 trending requests per window, got %d", RateLimitTrending.Requests)
	}
	if RateLimitAPI.Requests != 100 {
		t.Errorf("Expected 100 API requests per window, got %d", RateLimitAPI.Requests)
	}
	if RateLimitHealth.Requests != 1000 {
		t.Errorf("Expected 1000 health requests per window, got %d", RateLimitHealth.Requests)
	}

	for _, preset := range []RateLimitConfig{RateLimitGenerate, RateLimitTrending, RateLimitAPI, RateLimitHealth} {
		if preset.Window != time.Minute {
			t.Errorf("Expected one-minute window, got %v", preset.Window)
		}
	}
}

func TestRateLimitCustomEnforcesLimit(t *testing.T) {
	t.Parallel()

	m := NewChiMiddleware(DefaultChiMiddlewareConfig())
	handler := m.RateLimitCustom(RateLimitConfig{Requests: 2, Window: time.Minute})(okHandler())

	var last *httptest.ResponseRecorder
	for i := 0; i < 3; i++ {
		last = httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/api/v1/hashtags/trending", nil)
		r.RemoteAddr = "203.0.113.7:51234"
		handler.ServeHTTP(last, r)

		if i < 2 && last.Code != 200 {
			t.Fatalf("Request %d: expected status 200, got %d", i+1, last.Code)
		}
	}

	if last.Code != http.StatusTooManyRequests {
		t.Fatalf("Expected status 429 after limit, got %d", last.Code)
	}

	var response APIResponse
	if err := json.Unmarshal(last.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if response.Status != "error" {
		t.Errorf("Expected status error, got %q", response.Status)
	}
	if response.Error == nil || response.Error.Code != ErrCodeRateLimited {
		t.Errorf("Expected %s error payload, got %+v", ErrCodeRateLimited, response.Error)
	}
}

func TestRateLimitKeyedByIP(t *testing.T) {
	t.Parallel()

	m := NewChiMiddleware(DefaultChiMiddlewareConfig())
	handler := m.RateLimitCustom(RateLimitConfig{Requests: 1, Window: time.Minute})(okHandler())

	first := httptest.NewRecorder()
	r1 := httptest.NewRequest(http.MethodGet, "/api/v1/platforms", nil)
	r1.RemoteAddr = "203.0.113.10:40000"
	handler.ServeHTTP(first, r1)

	// A different client IP gets its own bucket.
	second := httptest.NewRecorder()
	r2 := httptest.NewRequest(http.MethodGet, "/api/v1/platforms", nil)
	r2.RemoteAddr = "203.0.113.11:40000"
	handler.ServeHTTP(second, r2)

	if first.Code != 200 || second.Code != 200 {
		t.Errorf("Expected both IPs to pass, got %d and %d", first.Code, second.Code)
	}
}

func TestRateLimitDisabled(t *testing.T) {
	t.Parallel()

	config := DefaultChiMiddlewareConfig()
	config.RateLimitDisabled = true
	m := NewChiMiddleware(config)

	handler := m.RateLimitCustom(RateLimitConfig{Requests: 1, Window: time.Minute})(okHandler())

	for i := 0; i < 5; i++ {
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/api/v1/platforms", nil)
		r.RemoteAddr = "203.0.113.7:51234"
		handler.ServeHTTP(w, r)

		if w.Code != 200 {
			t.Fatalf("Request %d: expected status 200 with limiting disabled, got %d", i+1, w.Code)
		}
	}
}

func TestNewChiMiddlewareNilConfig(t *testing.T) {
	t.Parallel()

	m := NewChiMiddleware(nil)
	if m.config == nil {
		t.Fatal("Expected nil config to fall back to defaults")
	}
	if len(m.config.CORSAllowedOrigins) != 1 || m.config.CORSAllowedOrigins[0] != "*" {
		t.Errorf("Expected default origins [*], got %v", m.config.CORSAllowedOrigins)
	}
}

func TestCORSPreflight(t *testing.T) {
	t.Parallel()

	m := NewChiMiddleware(DefaultChiMiddlewareConfig())
	handler := m.CORS()(okHandler())

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodOptions, "/api/v1/hashtags/generate", nil)
	r.Header.Set("Origin", "https://studio.example.com")
	r.Header.Set("Access-Control-Request-Method", http.MethodPost)
	handler.ServeHTTP(w, r)

	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("Expected wildcard allow-origin, got %q", got)
	}
	if got := w.Header().Get("Access-Control-Allow-Methods"); got != http.MethodPost {
		t.Errorf("Expected POST allow-methods, got %q", got)
	}
}

func TestCORSRestrictedOrigin(t *testing.T) {
	t.Parallel()

	config := DefaultChiMiddlewareConfig()
	config.CORSAllowedOrigins = []string{"https://studio.example.com"}
	m := NewChiMiddleware(config)
	handler := m.CORS()(okHandler())

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/api/v1/platforms", nil)
	r.Header.Set("Origin", "https://evil.example.com")
	handler.ServeHTTP(w, r)

	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Errorf("Expected no allow-origin for foreign origin, got %q", got)
	}
}

func TestChiMiddlewareAdapter(t *testing.T) {
	t.Parallel()

	stamping := func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("X-Stamped", "yes")
			next(w, r)
		}
	}

	innerCalled := false
	handler := chiMiddleware(stamping)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		innerCalled = true
		w.WriteHeader(http.StatusOK)
	}))

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/test", nil)
	handler.ServeHTTP(w, r)

	if !innerCalled {
		t.Error("Expected adapted middleware to call the inner handler")
	}
	if got := w.Header().Get("X-Stamped"); got != "yes" {
		t.Errorf("Expected stamped header, got %q", got)
	}
}
