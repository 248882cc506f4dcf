// Stylist - Wardrobe Outfit Compatibility and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stylist

package api

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/stylist/internal/logging"
	"github.com/tomtom215/stylist/internal/recommend"
	"github.com/tomtom215/stylist/internal/validation"
)

// pairingsQuery is the validated query of GET .../garments/{garmentID}/pairings.
type pairingsQuery struct {
	UserID    string `json:"user_id" validate:"required,max=128"`
	GarmentID string `json:"garment_id" validate:"required,max=128"`
	Occasion  string `json:"occasion" validate:"omitempty,occasion"`
	Limit     *int   `json:"limit" validate:"omitempty,min=1,max=10"`
	SkinInput
}

// GetPairings handles GET /api/v1/users/{userID}/garments/{garmentID}/pairings.
// It lists the stored garments that go best with one wardrobe item.
func (h *Handler) GetPairings(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	limit, err := intParam(r, "limit")
	if err != nil {
		rw.BadRequest(err.Error())
		return
	}

	query := r.URL.Query()
	q := pairingsQuery{
		UserID:    strings.TrimSpace(chi.URLParam(r, "userID")),
		GarmentID: strings.TrimSpace(chi.URLParam(r, "garmentID")),
		Occasion:  query.Get("occasion"),
		Limit:     limit,
		SkinInput: SkinInput{
			SkinTone: query.Get("skin_tone"),
			SkinHex:  query.Get("skin_hex"),
		},
	}
	if verr := validation.ValidateStruct(&q); verr != nil {
		rw.ValidationError(verr)
		return
	}

	var skin recommend.Request
	q.SkinInput.apply(&skin)

	ctx := logging.ContextWithUserID(r.Context(), q.UserID)
	res, err := h.engine.BestPairings(ctx, recommend.PairingsRequest{
		UserID:     q.UserID,
		GarmentID:  q.GarmentID,
		Occasion:   occasionOrDefault(q.Occasion),
		SkinTone:   skin.SkinTone,
		SkinSample: skin.SkinSample,
		MaxResults: intOrZero(q.Limit),
	})
	if err != nil {
		rw.BackendError(err, "Failed to compute pairings")
		return
	}

	rw.Success(res)
}
