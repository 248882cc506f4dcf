// Stylist - Wardrobe Outfit Compatibility and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stylist

/*
Package api provides the HTTP REST API layer for Stylist.

Key Components:

  - Router: chi route configuration and middleware stack
  - Handler: request handlers, split by concern across handlers_*.go
  - ResponseWriter: the standard JSON envelope with request metadata
  - ChiMiddleware: go-chi/cors and go-chi/httprate presets

Endpoints:

Health (/api/v1/health, 1000 req/min):
  - GET /            status, database, ingestion backend, engine counters
  - GET /live        liveness check
  - GET /ready       readiness check, 503 while the database is unreachable
  - GET /performance per-route latency percentiles

Scoring (/api/v1):
  - POST /pairings/score     score two classified garments
  - POST /outfits/validate   score a complete outfit
  - POST /skin-tone/analyze  classify a skin sample

Wardrobe (/api/v1/users/{userID}):
  - GET    /recommendations      ranked outfits for an occasion
  - GET    /garments             list stored garments
  - GET    /garments/{garmentID} read one garment
  - GET    /garments/{garmentID}/pairings best partners of one garment
  - PUT    /garments/{garmentID} upsert raw classifier output (30 req/min)
  - DELETE /garments/{garmentID} delete and drop cached results (30 req/min)
  - PUT    /profile              upsert skin tone and style preferences (30 req/min)

Prometheus metrics are served at /metrics.

Response Format:

	{
	    "success": true,
	    "data": { ... },
	    "meta": {"request_id": "...", "timestamp": "...", "duration_ms": 4}
	}

Errors carry a code from errors.go. Backend errors are classified by
classifyError: deadlines answer 504, an open circuit breaker 503, missing
rows 404 and invalid payloads 400.

Usage Example:

	handler := api.NewHandler(api.Dependencies{
	    Engine: engine,
	    Writer: applier,
	    Store:  db,
	    Ingest: ingestService,
	})
	router := api.NewRouter(handler, api.NewChiMiddleware(api.ChiMiddlewareConfigFrom(cfg.Security)), perfMon, cfg.Server.Timeout)
	srv := &http.Server{Addr: ":8080", Handler: router.Setup()}

Thread Safety:

Handler and Router are safe for concurrent use once constructed.
*/
package api
