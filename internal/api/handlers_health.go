// Stylist - Wardrobe Outfit Compatibility and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stylist

package api

import (
	"context"
	"net/http"
	"time"

	"github.com/tomtom215/stylist/internal/metrics"
	"github.com/tomtom215/stylist/internal/middleware"
	"github.com/tomtom215/stylist/internal/recommend"
)

// healthCheckTimeout bounds the database ping of a health request.
const healthCheckTimeout = 2 * time.Second

// Health status values
const (
	StatusHealthy  = "healthy"
	StatusDegraded = "degraded"
)

// HealthStatus is the payload of GET /api/v1/health.
type HealthStatus struct {
	Status            string            `json:"status"`
	Version           string            `json:"version,omitempty"`
	DatabaseConnected bool              `json:"database_connected"`
	IngestBackend     string            `json:"ingest_backend,omitempty"`
	IngestRunning     bool              `json:"ingest_running"`
	Uptime            float64           `json:"uptime_seconds"`
	Engine            recommend.Metrics `json:"engine"`
}

func (h *Handler) databaseConnected(ctx context.Context) bool {
	if h.store == nil {
		return false
	}
	ctx, cancel := context.WithTimeout(ctx, healthCheckTimeout)
	defer cancel()
	return h.store.Ping(ctx) == nil
}

// Health reports database connectivity, ingestion state and engine counters.
// It answers 200 even when degraded; use HealthReady for gating traffic.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	uptime := time.Since(h.startTime)
	metrics.RecordUptime(uptime)

	status := HealthStatus{
		Status:            StatusHealthy,
		Version:           h.version,
		DatabaseConnected: h.databaseConnected(r.Context()),
		Uptime:            uptime.Seconds(),
	}
	if h.ingest != nil {
		status.IngestBackend = h.ingest.Backend()
		status.IngestRunning = status.IngestBackend != ""
	}
	if h.engine != nil {
		status.Engine = h.engine.GetMetrics()
	}
	if !status.DatabaseConnected || (h.ingest != nil && !status.IngestRunning) {
		status.Status = StatusDegraded
	}

	NewResponseWriter(w, r).Success(status)
}

// HealthLive handles liveness checks. It never touches dependencies.
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	NewResponseWriter(w, r).Success(map[string]any{
		"alive":          true,
		"uptime_seconds": time.Since(h.startTime).Seconds(),
	})
}

// HealthReady handles readiness checks: 503 until the database answers.
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	if !h.databaseConnected(r.Context()) {
		rw.Error(http.StatusServiceUnavailable, ErrCodeServiceUnavailable, "Database is not reachable")
		return
	}
	rw.Success(map[string]any{"ready": true})
}

// HealthPerformance returns per-endpoint latency over the recent window.
func (h *Handler) HealthPerformance(w http.ResponseWriter, r *http.Request) {
	stats := []middleware.EndpointStats{}
	if h.perfMon != nil {
		stats = h.perfMon.Stats()
	}
	NewResponseWriter(w, r).Success(map[string]any{"endpoints": stats})
}
