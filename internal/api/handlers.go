// Stylist - Wardrobe Outfit Compatibility and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stylist

package api

import (
	"context"
	"time"

	"github.com/tomtom215/stylist/internal/ingest"
	"github.com/tomtom215/stylist/internal/middleware"
	"github.com/tomtom215/stylist/internal/recommend"
	"github.com/tomtom215/stylist/internal/recommend/scoring"
	"github.com/tomtom215/stylist/internal/wardrobe"
)

// Recommender is the engine surface used by the handlers.
type Recommender interface {
	Recommend(ctx context.Context, req recommend.Request) (*recommend.Result, error)
	ScorePairing(a, b wardrobe.Garment, occasion wardrobe.Occasion, skin wardrobe.SkinToneProfile) scoring.CompatibilityScore
	ValidateOutfit(items []wardrobe.Garment, occasion wardrobe.Occasion, skin wardrobe.SkinToneProfile) scoring.OutfitValidation
	BestPairings(ctx context.Context, req recommend.PairingsRequest) (*recommend.PairingsResult, error)
	AnalyzeSkinTone(c wardrobe.RGB) recommend.SkinToneAnalysis
	InvalidateUser(userID string) int
	GetMetrics() recommend.Metrics
}

// WardrobeWriter applies garment and profile upserts. It is the same path
// the ingestion router uses.
type WardrobeWriter interface {
	ApplyGarment(ctx context.Context, raw wardrobe.RawGarment) (wardrobe.Garment, error)
	ApplyProfile(ctx context.Context, u ingest.ProfileUpdate) (wardrobe.UserProfile, error)
}

// WardrobeStore reads and deletes stored garments.
type WardrobeStore interface {
	FetchWardrobe(ctx context.Context, userID string) ([]wardrobe.Garment, error)
	GetGarment(ctx context.Context, userID, garmentID string) (wardrobe.Garment, error)
	DeleteGarment(ctx context.Context, userID, garmentID string) error
	Ping(ctx context.Context) error
}

// IngestStatus reports the ingestion transport. Backend is empty while the
// router is down.
type IngestStatus interface {
	Backend() string
}

// Handler contains dependencies for API handlers
//
// Handler methods are split across files:
//   - handlers_health.go: health, liveness and performance endpoints
//   - handlers_recommend.go: recommendations
//   - handlers_scoring.go: pairing score, outfit validation, skin tone analysis
//   - handlers_wardrobe.go: garment and profile writes
type Handler struct {
	engine    Recommender
	writer    WardrobeWriter
	store     WardrobeStore
	ingest    IngestStatus
	perfMon   *middleware.PerformanceMonitor
	version   string
	startTime time.Time
}

// Dependencies are the collaborators of a Handler. Ingest and PerfMon may be
// nil.
type Dependencies struct {
	Engine  Recommender
	Writer  WardrobeWriter
	Store   WardrobeStore
	Ingest  IngestStatus
	PerfMon *middleware.PerformanceMonitor
	Version string
}

// NewHandler creates a new API handler.
//
//nolint:gocritic // hugeParam: dependencies are read once at construction
func NewHandler(deps Dependencies) *Handler {
	return &Handler{
		engine:    deps.Engine,
		writer:    deps.Writer,
		store:     deps.Store,
		ingest:    deps.Ingest,
		perfMon:   deps.PerfMon,
		version:   deps.Version,
		startTime: time.Now(),
	}
}
