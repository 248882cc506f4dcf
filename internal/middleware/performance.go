// Stylist - Wardrobe Outfit Compatibility and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stylist

package middleware

import (
	"net/http"
	"slices"
	"sync"
	"time"

	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/tomtom215/stylist/internal/logging"
)

// RequestSample is one observed request.
type RequestSample struct {
	Route      string        `json:"route"`
	Method     string        `json:"method"`
	Duration   time.Duration `json:"duration_ns"`
	StatusCode int           `json:"status_code"`
	Timestamp  time.Time     `json:"timestamp"`
}

// EndpointStats contains aggregated latency for one method and route.
type EndpointStats struct {
	Endpoint     string  `json:"endpoint"`
	RequestCount int     `json:"request_count"`
	ErrorCount   int     `json:"error_count"`
	AvgMS        float64 `json:"avg_ms"`
	P50MS        int64   `json:"p50_ms"`
	P95MS        int64   `json:"p95_ms"`
	P99MS        int64   `json:"p99_ms"`
	MaxMS        int64   `json:"max_ms"`
}

// PerformanceMonitor keeps a sliding window of recent requests and logs slow
// ones. It complements the Prometheus histograms with exact percentiles over
// the window, served by the health API.
type PerformanceMonitor struct {
	mu            sync.RWMutex
	samples       []RequestSample
	next          int
	full          bool
	slowThreshold time.Duration
}

// NewPerformanceMonitor creates a monitor holding the last window samples.
// Requests slower than slowThreshold are logged; zero disables the log.
func NewPerformanceMonitor(window int, slowThreshold time.Duration) *PerformanceMonitor {
	if window <= 0 {
		window = 1000
	}
	return &PerformanceMonitor{
		samples:       make([]RequestSample, window),
		slowThreshold: slowThreshold,
	}
}

// Record adds a sample, overwriting the oldest once the window is full.
//
//nolint:gocritic // hugeParam: samples are small and copied into the ring
func (pm *PerformanceMonitor) Record(s RequestSample) {
	pm.mu.Lock()
	pm.samples[pm.next] = s
	pm.next = (pm.next + 1) % len(pm.samples)
	if pm.next == 0 {
		pm.full = true
	}
	pm.mu.Unlock()

	if pm.slowThreshold > 0 && s.Duration > pm.slowThreshold {
		logging.Warn().
			Str("method", s.Method).
			Str("route", s.Route).
			Int("status", s.StatusCode).
			Dur("duration", s.Duration).
			Dur("threshold", pm.slowThreshold).
			Msg("Slow request detected")
	}
}

// window returns the recorded samples, oldest first. Caller holds mu.
func (pm *PerformanceMonitor) window() []RequestSample {
	if !pm.full {
		return slices.Clone(pm.samples[:pm.next])
	}
	out := make([]RequestSample, 0, len(pm.samples))
	out = append(out, pm.samples[pm.next:]...)
	return append(out, pm.samples[:pm.next]...)
}

// Recent returns up to n samples, newest last.
func (pm *PerformanceMonitor) Recent(n int) []RequestSample {
	pm.mu.RLock()
	w := pm.window()
	pm.mu.RUnlock()

	if n < len(w) {
		w = w[len(w)-n:]
	}
	return w
}

// Stats aggregates the window per endpoint, busiest first.
func (pm *PerformanceMonitor) Stats() []EndpointStats {
	pm.mu.RLock()
	w := pm.window()
	pm.mu.RUnlock()

	type bucket struct {
		durations []int64
		errors    int
	}
	byEndpoint := make(map[string]*bucket)
	var order []string
	for _, s := range w {
		key := s.Method + " " + s.Route
		b, ok := byEndpoint[key]
		if !ok {
			b = &bucket{}
			byEndpoint[key] = b
			order = append(order, key)
		}
		b.durations = append(b.durations, s.Duration.Milliseconds())
		if s.StatusCode >= http.StatusInternalServerError {
			b.errors++
		}
	}

	stats := make([]EndpointStats, 0, len(order))
	for _, key := range order {
		b := byEndpoint[key]
		slices.Sort(b.durations)

		var sum int64
		for _, d := range b.durations {
			sum += d
		}
		stats = append(stats, EndpointStats{
			Endpoint:     key,
			RequestCount: len(b.durations),
			ErrorCount:   b.errors,
			AvgMS:        float64(sum) / float64(len(b.durations)),
			P50MS:        percentile(b.durations, 0.50),
			P95MS:        percentile(b.durations, 0.95),
			P99MS:        percentile(b.durations, 0.99),
			MaxMS:        b.durations[len(b.durations)-1],
		})
	}

	slices.SortStableFunc(stats, func(a, b EndpointStats) int {
		return b.RequestCount - a.RequestCount
	})
	return stats
}

// Middleware records every request that passes through it.
func (pm *PerformanceMonitor) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		pm.Record(RequestSample{
			Route:      RoutePattern(r),
			Method:     r.Method,
			Duration:   time.Since(start),
			StatusCode: statusOf(ww),
			Timestamp:  start,
		})
	})
}

// percentile returns the nearest-rank value of a sorted slice.
func percentile(sorted []int64, p float64) int64 {
	if len(sorted) == 0 {
		return 0
	}
	return sorted[int(float64(len(sorted)-1)*p)]
}
