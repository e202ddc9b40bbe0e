// TagForge - Trending Hashtag Aggregation and Recommendation Engine
// Copyright 2026 Alex M. (tagforge)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tagforge/tagforge

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	io_prometheus_client "github.com/prometheus/client_model/go"

	"github.com/tagforge/tagforge/internal/metrics"
)

func counterValue(t *testing.T, c prometheus.Counter) float64 {
	t.Helper()
	var m io_prometheus_client.Metric
	if err := c.Write(&m); err != nil {
		t.Fatalf("failed to write counter metric: %v", err)
	}
	return m.GetCounter().GetValue()
}

func TestPrometheusMetricsRecordsStatus(t *testing.T) {
	handler := PrometheusMetrics(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	})

	counter := metrics.APIRequestsTotal.WithLabelValues(http.MethodGet, "/middleware-prom-test", "201")
	before := counterValue(t, counter)

	rec := httptest.NewRecorder()
	handler(rec, httptest.NewRequest(http.MethodGet, "/middleware-prom-test", nil))

	if got := counterValue(t, counter); got != before+1 {
		t.Errorf("counter = %f, want %f", got, before+1)
	}
	if rec.Code != http.StatusCreated {
		t.Errorf("status = %d, want 201", rec.Code)
	}
}

func TestPrometheusMetricsDefaultsToOK(t *testing.T) {
	handler := PrometheusMetrics(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ok")) // no explicit WriteHeader
	})

	counter := metrics.APIRequestsTotal.WithLabelValues(http.MethodGet, "/middleware-prom-default", "200")
	before := counterValue(t, counter)

	rec := httptest.NewRecorder()
	handler(rec, httptest.NewRequest(http.MethodGet, "/middleware-prom-default", nil))

	if got := counterValue(t, counter); got != before+1 {
		t.Errorf("counter = %f, want %f", got, before+1)
	}
}
