// What to Watch - Deterministic Movie Deck Recommendations
// Copyright 2026 GlenTheReb
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/GlenTheReb/what-to-watch

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestPrometheusMetrics_PassesThrough(t *testing.T) {
	called := false
	handler := func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusCreated)
	}

	wrapped := PrometheusMetrics(handler)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/deck", nil)
	rec := httptest.NewRecorder()

	wrapped(rec, req)

	if !called {
		t.Fatal("Expected wrapped handler to be called")
	}
	if rec.Code != http.StatusCreated {
		t.Errorf("Expected status %d, got %d", http.StatusCreated, rec.Code)
	}
}

func TestPrometheusMetrics_DefaultStatusOK(t *testing.T) {
	// A handler that writes a body without calling WriteHeader
	handler := func(w http.ResponseWriter, r *http.Request) {
		//nolint:errcheck // test handler
		w.Write([]byte("ok"))
	}

	wrapped := PrometheusMetrics(handler)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()

	wrapped(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("Expected implicit status %d, got %d", http.StatusOK, rec.Code)
	}
	if rec.Body.String() != "ok" {
		t.Errorf("Expected body to pass through, got %q", rec.Body.String())
	}
}

func TestMetricsResponseWriter_CapturesStatus(t *testing.T) {
	rec := httptest.NewRecorder()
	wrapper := &metricsResponseWriter{ResponseWriter: rec, statusCode: http.StatusOK}

	wrapper.WriteHeader(http.StatusBadGateway)

	if wrapper.statusCode != http.StatusBadGateway {
		t.Errorf("Expected captured status %d, got %d", http.StatusBadGateway, wrapper.statusCode)
	}
	if rec.Code != http.StatusBadGateway {
		t.Errorf("Expected underlying status %d, got %d", http.StatusBadGateway, rec.Code)
	}
}
