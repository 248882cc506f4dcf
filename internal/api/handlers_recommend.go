// Stylist - Wardrobe Outfit Compatibility and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stylist

package api

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/stylist/internal/logging"
	"github.com/tomtom215/stylist/internal/metrics"
	"github.com/tomtom215/stylist/internal/recommend"
	"github.com/tomtom215/stylist/internal/validation"
	"github.com/tomtom215/stylist/internal/wardrobe"
)

// recommendationQuery is the validated query of GET .../recommendations.
type recommendationQuery struct {
	UserID     string `json:"user_id" validate:"required,max=128"`
	Occasion   string `json:"occasion" validate:"omitempty,occasion"`
	Weather    string `json:"weather" validate:"omitempty,weather"`
	MaxResults *int   `json:"max_recommendations" validate:"omitempty,min=1,max=10"`
	ItemID     string `json:"item_id" validate:"omitempty,max=128"`
	SkinInput
}

// request converts a validated query into an engine request.
func (q *recommendationQuery) request(requestID string) recommend.Request {
	req := recommend.Request{
		RequestID:  requestID,
		UserID:     q.UserID,
		MaxResults: intOrZero(q.MaxResults),
		ItemID:     q.ItemID,
	}
	if q.Occasion != "" {
		req.Occasion = occasionOrDefault(q.Occasion)
	}
	if q.Weather != "" {
		req.Weather, _ = wardrobe.ParseWeather(q.Weather)
	}
	q.SkinInput.apply(&req)
	return req
}

// GetRecommendations handles GET /api/v1/users/{userID}/recommendations.
//
// An empty wardrobe answers 404 NO_WARDROBE_ITEMS with the unsuccessful
// result as error details.
func (h *Handler) GetRecommendations(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	start := time.Now()

	maxResults, err := intParam(r, "max_recommendations")
	if err != nil {
		rw.BadRequest(err.Error())
		return
	}

	query := r.URL.Query()
	q := recommendationQuery{
		UserID:     strings.TrimSpace(chi.URLParam(r, "userID")),
		Occasion:   query.Get("occasion"),
		Weather:    query.Get("weather"),
		MaxResults: maxResults,
		ItemID:     query.Get("item_id"),
		SkinInput: SkinInput{
			SkinTone: query.Get("skin_tone"),
			SkinHex:  query.Get("skin_hex"),
		},
	}
	if verr := validation.ValidateStruct(&q); verr != nil {
		rw.ValidationError(verr)
		return
	}

	ctx := logging.ContextWithUserID(r.Context(), q.UserID)
	req := q.request(logging.RequestIDFromContext(ctx))
	occasionLabel := string(occasionOrDefault(q.Occasion))

	res, err := h.engine.Recommend(ctx, req)
	if err != nil {
		outcome := metrics.OutcomeError
		if errors.Is(err, context.DeadlineExceeded) {
			outcome = metrics.OutcomeTimeout
		}
		metrics.RecordRecommendation(occasionLabel, outcome, time.Since(start), 0)
		rw.BackendError(err, "Failed to generate recommendations")
		return
	}

	if !res.Success {
		metrics.RecordRecommendation(occasionLabel, metrics.OutcomeEmptyWardrobe, time.Since(start), 0)
		rw.ErrorWithDetails(http.StatusNotFound, ErrCodeNoWardrobe, res.Error, res)
		return
	}

	outcome := metrics.OutcomeSuccess
	if res.Metadata.CacheHit {
		outcome = metrics.OutcomeCacheHit
	}
	metrics.RecordRecommendation(occasionLabel, outcome, time.Since(start), res.Metadata.CandidatesEvaluated)

	rw.Success(res)
}
