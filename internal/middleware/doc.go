// Stylist - Wardrobe Outfit Compatibility and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stylist

/*
Package middleware provides HTTP middleware for the stylist API.

All middleware has the chi signature func(http.Handler) http.Handler and is
installed with r.Use in internal/api.

Key Components:

  - RequestID: X-Request-ID propagation into the logging context
  - PrometheusMetrics: request count, duration and in-flight gauge labelled
    by chi route pattern
  - PerformanceMonitor: sliding window of recent requests with exact
    percentiles and slow request logging

Middleware Stack:

	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(cors)
	r.Use(middleware.PrometheusMetrics)
	r.Use(perfMon.Middleware)

Route labels are read after the handler returns, when chi has finished
matching. Unmatched requests share the "unmatched" label.

Thread Safety:

RequestID and PrometheusMetrics are stateless. PerformanceMonitor guards its
ring buffer with a sync.RWMutex.
*/
package middleware
