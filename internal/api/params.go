// Stylist - Wardrobe Outfit Compatibility and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stylist

package api

import (
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/goccy/go-json"

	"github.com/tomtom215/stylist/internal/recommend"
	"github.com/tomtom215/stylist/internal/wardrobe"
)

// maxBodyBytes bounds JSON request bodies.
const maxBodyBytes = 1 << 20

// intParam parses an optional integer query parameter. Absent is nil so
// that an explicit 0 still reaches validation.
func intParam(r *http.Request, name string) (*int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil, fmt.Errorf("%s must be an integer", name)
	}
	return &v, nil
}

// intOrZero dereferences an optional integer.
func intOrZero(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}

// decodeJSON reads a bounded JSON body into dst, rejecting unknown fields.
func decodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("invalid JSON body: %w", err)
	}
	return nil
}

// SkinInput is the optional wearer override accepted by the scoring
// endpoints and the recommendation query.
type SkinInput struct {
	SkinTone string `json:"skin_tone,omitempty" validate:"omitempty,undertone"`
	SkinHex  string `json:"skin_hex,omitempty" validate:"omitempty,colorhex"`
}

// apply copies the validated override into req.
func (s SkinInput) apply(req *recommend.Request) {
	if s.SkinTone != "" {
		req.SkinTone, _ = wardrobe.ParseUndertone(s.SkinTone)
	}
	if s.SkinHex != "" {
		if rgb, err := wardrobe.ParseHex(s.SkinHex); err == nil {
			req.SkinSample = &rgb
		}
	}
}

// Profile resolves the override the same way a recommendation request does
// for a user without a stored profile.
func (s SkinInput) Profile() wardrobe.SkinToneProfile {
	var req recommend.Request
	s.apply(&req)
	return recommend.ResolveSkinTone(req, nil)
}

// occasionOrDefault parses a validated occasion, defaulting to casual.
func occasionOrDefault(s string) wardrobe.Occasion {
	if o, err := wardrobe.ParseOccasion(s); err == nil {
		return o
	}
	return wardrobe.OccasionCasual
}
