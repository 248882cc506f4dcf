// Stylist - Wardrobe Outfit Compatibility and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stylist

package api

import (
	"fmt"
	"net/http"

	"github.com/tomtom215/stylist/internal/metrics"
	"github.com/tomtom215/stylist/internal/recommend/scoring"
	"github.com/tomtom215/stylist/internal/validation"
	"github.com/tomtom215/stylist/internal/wardrobe"
)

// pairingRequest is the body of POST /api/v1/pairings/score.
type pairingRequest struct {
	ItemA    wardrobe.RawGarment `json:"item_a"`
	ItemB    wardrobe.RawGarment `json:"item_b"`
	Occasion string              `json:"occasion,omitempty" validate:"omitempty,occasion"`
	SkinInput
}

// PairingResponse is the scored pair.
type PairingResponse struct {
	ItemA string `json:"item_a"`
	ItemB string `json:"item_b"`
	scoring.CompatibilityScore
}

// outfitRequest is the body of POST /api/v1/outfits/validate. The item
// count is bounded since pair scoring is quadratic.
type outfitRequest struct {
	Items    []wardrobe.RawGarment `json:"items" validate:"min=2,max=8"`
	Occasion string                `json:"occasion,omitempty" validate:"omitempty,occasion"`
	SkinInput
}

// skinToneRequest is the body of POST /api/v1/skin-tone/analyze. Either Hex
// or RGB must be present.
type skinToneRequest struct {
	Hex string        `json:"hex,omitempty" validate:"omitempty,colorhex"`
	RGB *wardrobe.RGB `json:"rgb,omitempty"`
}

// transientGarment classifies request input that is never stored. Garments
// without an ID are named after their position so issues stay readable.
//
//nolint:gocritic // hugeParam: raw is copied once per request item
func transientGarment(raw wardrobe.RawGarment, fallbackID string) (wardrobe.Garment, error) {
	if raw.ID == "" {
		raw.ID = fallbackID
	}
	spec, err := wardrobe.Classify(raw)
	if err != nil {
		return wardrobe.Garment{}, err
	}
	return wardrobe.NewGarment(spec)
}

// ScorePairing handles POST /api/v1/pairings/score.
func (h *Handler) ScorePairing(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	var req pairingRequest
	if err := decodeJSON(r, &req); err != nil {
		rw.BadRequest(err.Error())
		return
	}
	if verr := validation.ValidateStruct(&req); verr != nil {
		rw.ValidationError(verr)
		return
	}

	a, err := transientGarment(req.ItemA, "item_a")
	if err != nil {
		rw.Error(http.StatusBadRequest, ErrCodeInvalidPayload, err.Error())
		return
	}
	b, err := transientGarment(req.ItemB, "item_b")
	if err != nil {
		rw.Error(http.StatusBadRequest, ErrCodeInvalidPayload, err.Error())
		return
	}

	score := h.engine.ScorePairing(a, b, occasionOrDefault(req.Occasion), req.SkinInput.Profile())
	metrics.RecordPairingScore(string(score.Level), score.Overall)

	rw.Success(PairingResponse{ItemA: a.ID(), ItemB: b.ID(), CompatibilityScore: score})
}

// ValidateOutfit handles POST /api/v1/outfits/validate.
func (h *Handler) ValidateOutfit(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	var req outfitRequest
	if err := decodeJSON(r, &req); err != nil {
		rw.BadRequest(err.Error())
		return
	}
	if verr := validation.ValidateStruct(&req); verr != nil {
		rw.ValidationError(verr)
		return
	}

	items := make([]wardrobe.Garment, 0, len(req.Items))
	for i := range req.Items {
		g, err := transientGarment(req.Items[i], fmt.Sprintf("item_%d", i+1))
		if err != nil {
			rw.Error(http.StatusBadRequest, ErrCodeInvalidPayload, err.Error())
			return
		}
		items = append(items, g)
	}

	rw.Success(h.engine.ValidateOutfit(items, occasionOrDefault(req.Occasion), req.SkinInput.Profile()))
}

// AnalyzeSkinTone handles POST /api/v1/skin-tone/analyze.
func (h *Handler) AnalyzeSkinTone(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	var req skinToneRequest
	if err := decodeJSON(r, &req); err != nil {
		rw.BadRequest(err.Error())
		return
	}
	if verr := validation.ValidateStruct(&req); verr != nil {
		rw.ValidationError(verr)
		return
	}

	var sample wardrobe.RGB
	switch {
	case req.RGB != nil:
		sample = *req.RGB
	case req.Hex != "":
		sample, _ = wardrobe.ParseHex(req.Hex)
	default:
		rw.BadRequest("hex or rgb is required")
		return
	}

	rw.Success(h.engine.AnalyzeSkinTone(sample))
}
