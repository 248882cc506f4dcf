// Stylist - Wardrobe Outfit Compatibility and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stylist

package scoring

import (
	"cmp"
	"errors"
	"fmt"
	"math"
	"slices"

	"github.com/tomtom215/stylist/internal/wardrobe"
)

// Level is the categorical recommendation bucket of a score.
type Level string

const (
	LevelExcellent Level = "excellent"
	LevelGood      Level = "good"
	LevelFair      Level = "fair"
	LevelPoor      Level = "poor"
	LevelAvoid     Level = "avoid"
)

// rank orders levels from best (0) to worst.
func (l Level) rank() int {
	switch l {
	case LevelExcellent:
		return 0
	case LevelGood:
		return 1
	case LevelFair:
		return 2
	case LevelPoor:
		return 3
	default:
		return 4
	}
}

// Worse reports whether l is a strictly worse level than o.
func (l Level) Worse(o Level) bool { return l.rank() > o.rank() }

// ReasonSameCategory marks a pairing rejected because both garments fill the
// same outfit slot.
const ReasonSameCategory = "same-category"

// Breakdown holds the four weighted component scores of a pairing. Harmony
// is the skin-independent part of Color and is reported for explanation only.
type Breakdown struct {
	Formality float64 `json:"formality"`
	Color     float64 `json:"color_harmony"`
	Style     float64 `json:"style_coherence"`
	Pattern   float64 `json:"pattern_compatibility"`
	Harmony   float64 `json:"item_harmony"`
}

// CompatibilityScore is the result of scoring two garments.
type CompatibilityScore struct {
	Overall   float64   `json:"overall"`
	Breakdown Breakdown `json:"breakdown"`
	Level     Level     `json:"recommendation_level"`
	Reason    string    `json:"reason,omitempty"`
}

// Rejected reports whether the pairing was refused outright.
func (c CompatibilityScore) Rejected() bool { return c.Reason != "" }

// Weights are the component weights of the overall score.
type Weights struct {
	Formality float64 `koanf:"formality" json:"formality"`
	Color     float64 `koanf:"color" json:"color"`
	Style     float64 `koanf:"style" json:"style"`
	Pattern   float64 `koanf:"pattern" json:"pattern"`
}

// DefaultWeights returns 0.4 formality, 0.25 color, 0.2 style, 0.15 pattern.
func DefaultWeights() Weights {
	return Weights{Formality: 0.4, Color: 0.25, Style: 0.2, Pattern: 0.15}
}

// Validate checks that weights are non-negative and sum to 1.
func (w Weights) Validate() error {
	for name, v := range map[string]float64{"formality": w.Formality, "color": w.Color, "style": w.Style, "pattern": w.Pattern} {
		if v < 0 {
			return fmt.Errorf("weight %s must be non-negative, got %v", name, v)
		}
	}
	if sum := w.Formality + w.Color + w.Style + w.Pattern; math.Abs(sum-1) > 1e-6 {
		return fmt.Errorf("weights must sum to 1, got %.4f", sum)
	}
	return nil
}

// Thresholds are the lower bounds of the excellent, good and fair levels.
type Thresholds struct {
	Excellent float64 `koanf:"excellent" json:"excellent"`
	Good      float64 `koanf:"good" json:"good"`
	Fair      float64 `koanf:"fair" json:"fair"`
}

// DefaultThresholds returns 0.8 / 0.6 / 0.4.
func DefaultThresholds() Thresholds {
	return Thresholds{Excellent: 0.8, Good: 0.6, Fair: 0.4}
}

// Validate checks that thresholds are strictly decreasing inside [0,1].
func (t Thresholds) Validate() error {
	if t.Excellent > 1 || t.Fair < 0 || t.Excellent <= t.Good || t.Good <= t.Fair {
		return fmt.Errorf("thresholds must satisfy 1 >= excellent > good > fair >= 0, got %v/%v/%v", t.Excellent, t.Good, t.Fair)
	}
	return nil
}

// Level maps a score to its level.
func (t Thresholds) Level(score float64) Level {
	switch {
	case score >= t.Excellent:
		return LevelExcellent
	case score >= t.Good:
		return LevelGood
	case score >= t.Fair:
		return LevelFair
	default:
		return LevelPoor
	}
}

// ErrInvalidEngineConfig is returned by NewPairingEngine.
var ErrInvalidEngineConfig = errors.New("invalid pairing engine config")

// PairingEngine combines the component scorers into one compatibility score.
// It holds no mutable state.
type PairingEngine struct {
	colors     *ColorScorer
	weights    Weights
	thresholds Thresholds
}

// NewPairingEngine validates weights and thresholds. A nil palette uses
// DefaultPalette.
func NewPairingEngine(p *Palette, w Weights, t Thresholds) (*PairingEngine, error) {
	if err := w.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidEngineConfig, err)
	}
	if err := t.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidEngineConfig, err)
	}
	return &PairingEngine{colors: NewColorScorer(p), weights: w, thresholds: t}, nil
}

// DefaultPairingEngine uses the default palette, weights and thresholds.
func DefaultPairingEngine() *PairingEngine {
	return &PairingEngine{colors: NewColorScorer(nil), weights: DefaultWeights(), thresholds: DefaultThresholds()}
}

// Colors returns the engine's color scorer.
func (e *PairingEngine) Colors() *ColorScorer { return e.colors }

// Thresholds returns the engine's level thresholds.
func (e *PairingEngine) Thresholds() Thresholds { return e.thresholds }

// ScorePairing scores two garments for an occasion and wearer.
//
//nolint:gocritic // hugeParam: garments are immutable values
func (e *PairingEngine) ScorePairing(a, b wardrobe.Garment, occasion wardrobe.Occasion, skin wardrobe.SkinToneProfile) CompatibilityScore {
	if a.Category() == b.Category() && a.Category() != wardrobe.CategoryAccessory {
		return CompatibilityScore{Level: LevelAvoid, Reason: ReasonSameCategory}
	}

	bd := Breakdown{
		Formality: FormalityScore(a, b, occasion),
		Color:     e.colors.PairColorScore(a, b, skin),
		Style:     StyleScore(a.Styles(), b.Styles()),
		Pattern:   PatternScore(a.Pattern(), b.Pattern()),
		Harmony:   ItemHarmony(a, b),
	}
	overall := e.weights.Formality*bd.Formality +
		e.weights.Color*bd.Color +
		e.weights.Style*bd.Style +
		e.weights.Pattern*bd.Pattern
	overall = math.Max(0, math.Min(1, overall))

	return CompatibilityScore{
		Overall:   overall,
		Breakdown: bd,
		Level:     e.thresholds.Level(overall),
	}
}

// Outfit validation limits.
const (
	MinOutfitAverage = 0.5
	MinOutfitPair    = 0.4
)

// PairResult is the score of one garment pair inside an outfit.
type PairResult struct {
	A     string             `json:"item_a"`
	B     string             `json:"item_b"`
	Score CompatibilityScore `json:"score"`
}

// OutfitValidation is the result of checking a user-assembled outfit.
type OutfitValidation struct {
	Valid        bool         `json:"valid"`
	AverageScore float64      `json:"average_score"`
	Level        Level        `json:"recommendation_level"`
	Issues       []string     `json:"issues"`
	Pairs        []PairResult `json:"pairs"`
}

// ValidateOutfit scores every garment pair of an outfit. The outfit is valid
// when the average pair score is at least MinOutfitAverage and no single pair
// falls below MinOutfitPair.
func (e *PairingEngine) ValidateOutfit(items []wardrobe.Garment, occasion wardrobe.Occasion, skin wardrobe.SkinToneProfile) OutfitValidation {
	v := OutfitValidation{Issues: []string{}, Pairs: []PairResult{}}
	if len(items) < 2 {
		v.Level = LevelPoor
		v.Issues = append(v.Issues, "an outfit needs at least two items")
		return v
	}

	var sum float64
	for i := 0; i < len(items); i++ {
		for j := i + 1; j < len(items); j++ {
			s := e.ScorePairing(items[i], items[j], occasion, skin)
			v.Pairs = append(v.Pairs, PairResult{A: items[i].ID(), B: items[j].ID(), Score: s})
			sum += s.Overall

			switch {
			case s.Rejected():
				v.Issues = append(v.Issues, fmt.Sprintf("%s and %s are both %s", items[i].ID(), items[j].ID(), items[i].Category()))
			case s.Overall < MinOutfitPair:
				v.Issues = append(v.Issues, fmt.Sprintf("%s and %s clash (%.2f)", items[i].ID(), items[j].ID(), s.Overall))
			}
		}
	}

	v.AverageScore = sum / float64(len(v.Pairs))
	v.Level = e.thresholds.Level(v.AverageScore)
	if v.AverageScore < MinOutfitAverage {
		v.Issues = append(v.Issues, fmt.Sprintf("average compatibility %.2f is below %.2f", v.AverageScore, MinOutfitAverage))
	}
	v.Valid = len(v.Issues) == 0
	return v
}

// DefaultBestPairings is the partner count of BestPairings when n <= 0.
const DefaultBestPairings = 10

// partnerCategories lists the categories each category may be worn with.
var partnerCategories = map[wardrobe.Category][]wardrobe.Category{
	wardrobe.CategoryTop:       {wardrobe.CategoryBottom, wardrobe.CategoryOuterwear, wardrobe.CategoryShoes, wardrobe.CategoryAccessory},
	wardrobe.CategoryBottom:    {wardrobe.CategoryTop, wardrobe.CategoryOuterwear, wardrobe.CategoryShoes, wardrobe.CategoryAccessory},
	wardrobe.CategoryDress:     {wardrobe.CategoryOuterwear, wardrobe.CategoryShoes, wardrobe.CategoryAccessory},
	wardrobe.CategoryOuterwear: {wardrobe.CategoryTop, wardrobe.CategoryBottom, wardrobe.CategoryDress, wardrobe.CategoryShoes, wardrobe.CategoryAccessory},
	wardrobe.CategoryShoes:     {wardrobe.CategoryTop, wardrobe.CategoryBottom, wardrobe.CategoryDress, wardrobe.CategoryOuterwear, wardrobe.CategoryAccessory},
	wardrobe.CategoryAccessory: {wardrobe.CategoryTop, wardrobe.CategoryBottom, wardrobe.CategoryDress, wardrobe.CategoryOuterwear, wardrobe.CategoryShoes},
}

// CanPair reports whether a garment of category a is worn together with one
// of category b. Same-category pairs never qualify, accessories included.
func CanPair(a, b wardrobe.Category) bool {
	return slices.Contains(partnerCategories[a], b)
}

// Partner is one candidate garment scored against a target.
type Partner struct {
	Item  wardrobe.Garment
	Score CompatibilityScore
}

// BestPairings scores every candidate that can be worn with target and
// returns the n best, highest Overall first. Candidates sharing the target's
// ID or a non-partner category are skipped. Ties keep wardrobe order.
//
//nolint:gocritic // hugeParam: garments are immutable values
func (e *PairingEngine) BestPairings(target wardrobe.Garment, candidates []wardrobe.Garment, occasion wardrobe.Occasion, skin wardrobe.SkinToneProfile, n int) []Partner {
	if n <= 0 {
		n = DefaultBestPairings
	}

	out := make([]Partner, 0, len(candidates))
	for i := range candidates {
		c := candidates[i]
		if c.ID() == target.ID() || !CanPair(target.Category(), c.Category()) {
			continue
		}
		out = append(out, Partner{Item: c, Score: e.ScorePairing(target, c, occasion, skin)})
	}

	slices.SortStableFunc(out, func(a, b Partner) int {
		return cmp.Compare(b.Score.Overall, a.Score.Overall)
	})
	if len(out) > n {
		out = out[:n]
	}
	return out
}
