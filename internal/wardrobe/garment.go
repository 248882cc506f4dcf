// Stylist - Wardrobe Outfit Compatibility and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stylist

package wardrobe

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// Errors returned by the garment factory and parsers.
var (
	// ErrInvalidGarment is returned when a garment fails validation.
	ErrInvalidGarment = errors.New("invalid garment")

	// ErrUnknownValue is returned when a string does not name a known enum value.
	ErrUnknownValue = errors.New("unknown value")
)

// Formality bounds. 1 is very casual, 6 is black tie.
const (
	MinFormality     = 1
	MaxFormality     = 6
	DefaultFormality = 3
)

// GarmentSpec carries already-tagged garment attributes. It is the input to
// NewGarment and the persisted form of a Garment.
type GarmentSpec struct {
	ID              string        `json:"id"`
	UserID          string        `json:"user_id,omitempty"`
	Name            string        `json:"name,omitempty"`
	Category        Category      `json:"category"`
	Subcategory     string        `json:"subcategory,omitempty"`
	PrimaryColor    Color         `json:"primary_color"`
	SecondaryColors []ColorFamily `json:"secondary_colors,omitempty"`
	Pattern         Pattern       `json:"pattern"`
	Material        string        `json:"material,omitempty"`
	Styles          []Style       `json:"styles"`
	// Formality is derived when zero.
	Formality int        `json:"formality"`
	Occasions []Occasion `json:"occasions,omitempty"`
	Seasons   []Season   `json:"seasons,omitempty"`
	Fit       Fit        `json:"fit,omitempty"`
	ImageURL  string     `json:"image_url,omitempty"`
}

// Garment is a validated, immutable wardrobe item.
type Garment struct {
	id              string
	userID          string
	name            string
	category        Category
	subcategory     string
	primaryColor    Color
	secondaryColors []ColorFamily
	pattern         Pattern
	material        string
	styles          []Style
	formality       int
	occasions       []Occasion
	seasons         []Season
	fit             Fit
	imageURL        string
}

// NewGarment validates spec and returns an immutable Garment.
//
// Pattern defaults to solid and styles default to casual. Formality is
// derived from subcategory and style when spec.Formality is zero. Duplicate
// set entries are collapsed preserving first occurrence.
//
//nolint:gocritic // hugeParam: spec is copied once at construction
func NewGarment(spec GarmentSpec) (Garment, error) {
	id := strings.TrimSpace(spec.ID)
	if id == "" {
		return Garment{}, fmt.Errorf("%w: id is required", ErrInvalidGarment)
	}
	if !spec.Category.Valid() {
		return Garment{}, fmt.Errorf("%w: %s: category %q", ErrInvalidGarment, id, spec.Category)
	}
	if spec.PrimaryColor.IsZero() {
		return Garment{}, fmt.Errorf("%w: %s: primary color is required", ErrInvalidGarment, id)
	}
	if spec.PrimaryColor.Family != ColorUnknown && !spec.PrimaryColor.Family.Valid() {
		return Garment{}, fmt.Errorf("%w: %s: color family %q", ErrInvalidGarment, id, spec.PrimaryColor.Family)
	}
	primary := spec.PrimaryColor
	if primary.Hex != "" {
		rgb, err := ParseHex(primary.Hex)
		if err != nil {
			return Garment{}, fmt.Errorf("%w: %s: %w", ErrInvalidGarment, id, err)
		}
		primary.Hex = rgb.Hex()
		if primary.Family == ColorUnknown {
			primary.Family = NearestFamily(rgb)
		}
	}

	pattern := spec.Pattern
	if pattern == "" {
		pattern = PatternSolid
	}
	if !pattern.Valid() {
		return Garment{}, fmt.Errorf("%w: %s: pattern %q", ErrInvalidGarment, id, spec.Pattern)
	}
	if !spec.Fit.Valid() {
		return Garment{}, fmt.Errorf("%w: %s: fit %q", ErrInvalidGarment, id, spec.Fit)
	}

	styleSet, err := dedupe(spec.Styles, Style.Valid, "style")
	if err != nil {
		return Garment{}, fmt.Errorf("%w: %s: %w", ErrInvalidGarment, id, err)
	}
	if len(styleSet) == 0 {
		styleSet = []Style{StyleCasual}
	}
	secondary, err := dedupe(spec.SecondaryColors, ColorFamily.Valid, "color family")
	if err != nil {
		return Garment{}, fmt.Errorf("%w: %s: %w", ErrInvalidGarment, id, err)
	}
	occasionSet, err := dedupe(spec.Occasions, Occasion.Valid, "occasion")
	if err != nil {
		return Garment{}, fmt.Errorf("%w: %s: %w", ErrInvalidGarment, id, err)
	}
	seasonSet, err := dedupe(spec.Seasons, Season.Valid, "season")
	if err != nil {
		return Garment{}, fmt.Errorf("%w: %s: %w", ErrInvalidGarment, id, err)
	}

	formality := spec.Formality
	if formality == 0 {
		formality = DeriveFormality(spec.Category, spec.Subcategory, styleSet, nil)
	}
	if formality < MinFormality || formality > MaxFormality {
		return Garment{}, fmt.Errorf("%w: %s: formality %d out of range [%d,%d]",
			ErrInvalidGarment, id, formality, MinFormality, MaxFormality)
	}

	return Garment{
		id:              id,
		userID:          spec.UserID,
		name:            spec.Name,
		category:        spec.Category,
		subcategory:     strings.ToLower(strings.TrimSpace(spec.Subcategory)),
		primaryColor:    primary,
		secondaryColors: secondary,
		pattern:         pattern,
		material:        spec.Material,
		styles:          styleSet,
		formality:       formality,
		occasions:       occasionSet,
		seasons:         seasonSet,
		fit:             spec.Fit,
		imageURL:        spec.ImageURL,
	}, nil
}

func dedupe[T comparable](in []T, valid func(T) bool, kind string) ([]T, error) {
	if len(in) == 0 {
		return nil, nil
	}
	out := make([]T, 0, len(in))
	for _, v := range in {
		if !valid(v) {
			return nil, fmt.Errorf("%w: %s %v", ErrUnknownValue, kind, v)
		}
		if !slices.Contains(out, v) {
			out = append(out, v)
		}
	}
	return out, nil
}

func (g Garment) ID() string { return g.id }
func (g Garment) UserID() string { return g.userID }
func (g Garment) Name() string { return g.name }
func (g Garment) Category() Category { return g.category }
func (g Garment) Subcategory() string { return g.subcategory }
func (g Garment) PrimaryColor() Color { return g.primaryColor }
func (g Garment) Pattern() Pattern { return g.pattern }
func (g Garment) Material() string { return g.material }
func (g Garment) Formality() int { return g.formality }
func (g Garment) Fit() Fit { return g.fit }
func (g Garment) ImageURL() string { return g.imageURL }
func (g Garment) Styles() []Style { return slices.Clone(g.styles) }
func (g Garment) Occasions() []Occasion { return slices.Clone(g.occasions) }
func (g Garment) Seasons() []Season { return slices.Clone(g.seasons) }
func (g Garment) SecondaryColors() []ColorFamily {
	return slices.Clone(g.secondaryColors)
}

// PrimaryStyle returns the first style keyword.
func (g Garment) PrimaryStyle() Style {
	if len(g.styles) == 0 {
		return ""
	}
	return g.styles[0]
}

// HasStyle reports whether s is among the garment's style keywords.
func (g Garment) HasStyle(s Style) bool { return slices.Contains(g.styles, s) }

// IsZero reports whether g is the zero Garment.
func (g Garment) IsZero() bool { return g.id == "" }

// Spec returns the persisted form of g.
func (g Garment) Spec() GarmentSpec {
	return GarmentSpec{
		ID:              g.id,
		UserID:          g.userID,
		Name:            g.name,
		Category:        g.category,
		Subcategory:     g.subcategory,
		PrimaryColor:    g.primaryColor,
		SecondaryColors: g.SecondaryColors(),
		Pattern:         g.pattern,
		Material:        g.material,
		Styles:          g.Styles(),
		Formality:       g.formality,
		Occasions:       g.Occasions(),
		Seasons:         g.Seasons(),
		Fit:             g.fit,
		ImageURL:        g.imageURL,
	}
}
