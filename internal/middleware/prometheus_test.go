// Stylist - Wardrobe Outfit Compatibility and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stylist

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/tomtom215/stylist/internal/metrics"
)

func TestPrometheusMetrics_RouteLabels(t *testing.T) {
	r := chi.NewRouter()
	r.Use(PrometheusMetrics)
	r.Get("/users/{userID}/things", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})
	r.Get("/silent", func(w http.ResponseWriter, r *http.Request) {})

	tests := []struct {
		path    string
		route   string
		status  string
		repeats int
	}{
		{"/users/a/things", "/users/{userID}/things", "418", 2},
		{"/silent", "/silent", "200", 1},
	}

	for _, tt := range tests {
		counter := metrics.APIRequestsTotal.WithLabelValues(http.MethodGet, tt.route, tt.status)
		before := testutil.ToFloat64(counter)

		for i := 0; i < tt.repeats; i++ {
			// Distinct path values must collapse onto the route pattern.
			path := tt.path
			if i > 0 {
				path = "/users/b/things"
			}
			r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
		}

		if got := testutil.ToFloat64(counter) - before; got != float64(tt.repeats) {
			t.Errorf("%s counter delta = %v, want %d", tt.route, got, tt.repeats)
		}
	}
}

func TestRoutePattern_Unmatched(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/nowhere", nil)
	if got := RoutePattern(req); got != unmatchedRoute {
		t.Errorf("RoutePattern() = %q, want %q", got, unmatchedRoute)
	}
}
