// Stylist - Wardrobe Outfit Compatibility and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stylist

package ingest

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/goccy/go-json"

	"github.com/tomtom215/stylist/internal/wardrobe"
)

// ErrInvalidPayload marks input that can never be applied. Messages carrying
// it are acknowledged rather than retried.
var ErrInvalidPayload = errors.New("invalid payload")

// Store is the write side of the wardrobe store.
type Store interface {
	UpsertGarment(ctx context.Context, g wardrobe.Garment) error
	UpsertProfile(ctx context.Context, p wardrobe.UserProfile) error
}

// Invalidator drops cached recommendations for a user.
type Invalidator interface {
	InvalidateUser(userID string) int
}

// ProfileUpdate is the payload of the profile topic and the body of
// PUT /users/{userID}/profile.
type ProfileUpdate struct {
	UserID           string   `json:"user_id"`
	SkinTone         string   `json:"skin_tone,omitempty"`
	SkinSample       string   `json:"skin_sample,omitempty"`
	StylePreferences []string `json:"style_preferences,omitempty"`
}

// Applier validates input and writes it to the store.
type Applier struct {
	store       Store
	invalidator Invalidator
}

// NewApplier creates an Applier. invalidator may be nil when no result cache
// is configured.
func NewApplier(store Store, invalidator Invalidator) *Applier {
	return &Applier{store: store, invalidator: invalidator}
}

// ApplyGarment classifies raw, stores it and returns the stored garment.
//
//nolint:gocritic // hugeParam: raw is copied once per ingested garment
func (a *Applier) ApplyGarment(ctx context.Context, raw wardrobe.RawGarment) (wardrobe.Garment, error) {
	if strings.TrimSpace(raw.UserID) == "" {
		return wardrobe.Garment{}, fmt.Errorf("%w: user_id is required", ErrInvalidPayload)
	}

	spec, err := wardrobe.Classify(raw)
	if err != nil {
		return wardrobe.Garment{}, fmt.Errorf("%w: %w", ErrInvalidPayload, err)
	}
	g, err := wardrobe.NewGarment(spec)
	if err != nil {
		return wardrobe.Garment{}, fmt.Errorf("%w: %w", ErrInvalidPayload, err)
	}

	if err := a.store.UpsertGarment(ctx, g); err != nil {
		return wardrobe.Garment{}, fmt.Errorf("store garment %s: %w", g.ID(), err)
	}
	a.invalidate(g.UserID())
	return g, nil
}

// ApplyProfile validates u, stores it and returns the stored profile.
//
//nolint:gocritic // hugeParam: u is copied once per update
func (a *Applier) ApplyProfile(ctx context.Context, u ProfileUpdate) (wardrobe.UserProfile, error) {
	p, err := u.Profile()
	if err != nil {
		return wardrobe.UserProfile{}, err
	}
	if err := a.store.UpsertProfile(ctx, p); err != nil {
		return wardrobe.UserProfile{}, fmt.Errorf("store profile %s: %w", p.UserID, err)
	}
	a.invalidate(p.UserID)
	return p, nil
}

func (a *Applier) invalidate(userID string) {
	if a.invalidator != nil {
		a.invalidator.InvalidateUser(userID)
	}
}

// Profile converts the update into a validated wardrobe.UserProfile.
//
//nolint:gocritic // hugeParam: small value receiver matches ApplyProfile
func (u ProfileUpdate) Profile() (wardrobe.UserProfile, error) {
	p := wardrobe.UserProfile{UserID: strings.TrimSpace(u.UserID)}
	if p.UserID == "" {
		return p, fmt.Errorf("%w: user_id is required", ErrInvalidPayload)
	}

	if u.SkinTone != "" {
		tone, err := wardrobe.ParseUndertone(u.SkinTone)
		if err != nil {
			return p, fmt.Errorf("%w: %w", ErrInvalidPayload, err)
		}
		p.SkinTone = tone
	}
	if u.SkinSample != "" {
		rgb, err := wardrobe.ParseHex(u.SkinSample)
		if err != nil {
			return p, fmt.Errorf("%w: %w", ErrInvalidPayload, err)
		}
		p.SkinSample = &rgb
	}
	for _, s := range u.StylePreferences {
		style, err := wardrobe.ParseStyle(s)
		if err != nil {
			return p, fmt.Errorf("%w: %w", ErrInvalidPayload, err)
		}
		p.StylePreferences = append(p.StylePreferences, style)
	}
	return p, nil
}

// decodeGarment parses a garment topic payload.
func decodeGarment(payload []byte) (wardrobe.RawGarment, error) {
	var raw wardrobe.RawGarment
	if err := json.Unmarshal(payload, &raw); err != nil {
		return raw, fmt.Errorf("%w: %w", ErrInvalidPayload, err)
	}
	return raw, nil
}

// decodeProfile parses a profile topic payload.
func decodeProfile(payload []byte) (ProfileUpdate, error) {
	var u ProfileUpdate
	if err := json.Unmarshal(payload, &u); err != nil {
		return u, fmt.Errorf("%w: %w", ErrInvalidPayload, err)
	}
	return u, nil
}
