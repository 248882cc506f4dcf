// Stylist - Wardrobe Outfit Compatibility and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stylist

package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tomtom215/stylist/internal/middleware"
)

// compressionLevel is the gzip level for JSON responses.
const compressionLevel = 5

// Router wires HTTP routes to handlers.
type Router struct {
	handler        *Handler
	chiMiddleware  *ChiMiddleware
	perfMon        *middleware.PerformanceMonitor
	requestTimeout time.Duration
}

// NewRouter creates a new router. perfMon may be nil; a zero requestTimeout
// disables the per-request deadline.
func NewRouter(handler *Handler, chiMW *ChiMiddleware, perfMon *middleware.PerformanceMonitor, requestTimeout time.Duration) *Router {
	if chiMW == nil {
		chiMW = NewChiMiddleware(nil)
	}
	return &Router{
		handler:        handler,
		chiMiddleware:  chiMW,
		perfMon:        perfMon,
		requestTimeout: requestTimeout,
	}
}

// Setup configures all HTTP routes.
func (router *Router) Setup() http.Handler {
	r := chi.NewRouter()

	// Applied to all routes in order
	r.Use(middleware.RequestID)
	r.Use(router.chiMiddleware.RealIP())
	r.Use(chimiddleware.Recoverer)
	r.Use(router.chiMiddleware.CORS()) // must be global to answer OPTIONS preflight
	r.Use(middleware.PrometheusMetrics)
	if router.perfMon != nil {
		r.Use(router.perfMon.Middleware)
	}
	if router.requestTimeout > 0 {
		r.Use(chimiddleware.Timeout(router.requestTimeout))
	}
	r.Use(chimiddleware.Compress(compressionLevel, "application/json"))

	r.Route("/api/v1/health", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimitHealth())
		r.Use(APISecurityHeaders())
		r.Get("/", router.handler.Health)
		r.Get("/live", router.handler.HealthLive)
		r.Get("/ready", router.handler.HealthReady)
		r.Get("/performance", router.handler.HealthPerformance)
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimit())
		r.Use(APISecurityHeaders())

		r.Post("/pairings/score", router.handler.ScorePairing)
		r.Post("/outfits/validate", router.handler.ValidateOutfit)
		r.Post("/skin-tone/analyze", router.handler.AnalyzeSkinTone)

		r.Route("/users/{userID}", func(r chi.Router) {
			r.Get("/recommendations", router.handler.GetRecommendations)
			r.Get("/garments", router.handler.ListGarments)
			r.Get("/garments/{garmentID}", router.handler.GetGarment)
			r.Get("/garments/{garmentID}/pairings", router.handler.GetPairings)

			r.Group(func(r chi.Router) {
				r.Use(router.chiMiddleware.RateLimitWrite())
				r.Put("/garments/{garmentID}", router.handler.PutGarment)
				r.Delete("/garments/{garmentID}", router.handler.DeleteGarment)
				r.Put("/profile", router.handler.PutProfile)
			})
		})
	})

	r.Handle("/metrics", promhttp.Handler())

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		WriteError(w, r, http.StatusNotFound, ErrCodeNotFound, "route not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		WriteError(w, r, http.StatusMethodNotAllowed, ErrCodeBadRequest, "method not allowed")
	})

	return r
}
