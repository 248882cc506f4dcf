// Stylist - Wardrobe Outfit Compatibility and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stylist

package scoring

import "github.com/tomtom215/stylist/internal/wardrobe"

// HarmonyType names the color relationship between two garments.
type HarmonyType string

const (
	HarmonyNeutral       HarmonyType = "neutral"
	HarmonyComplementary HarmonyType = "complementary"
	HarmonyAnalogous     HarmonyType = "analogous"
	HarmonyMonochromatic HarmonyType = "monochromatic"
	HarmonyContrast      HarmonyType = "contrast"
	HarmonyUnknown       HarmonyType = "unknown"
)

var harmonyScores = map[HarmonyType]float64{
	HarmonyNeutral:       0.9,
	HarmonyComplementary: 0.85,
	HarmonyAnalogous:     0.8,
	HarmonyMonochromatic: 0.75,
	HarmonyContrast:      0.4,
	HarmonyUnknown:       0.5,
}

// hueGroup is the base hue a chromatic color family belongs to.
type hueGroup uint8

const (
	hueNone hueGroup = iota
	hueRed
	hueBlue
	hueGreen
	hueYellow
	huePurple
	hueOrange
)

var familyHue = map[wardrobe.ColorFamily]hueGroup{
	wardrobe.ColorRed:       hueRed,
	wardrobe.ColorPink:      hueRed,
	wardrobe.ColorBurgundy:  hueRed,
	wardrobe.ColorCrimson:   hueRed,
	wardrobe.ColorBlue:      hueBlue,
	wardrobe.ColorNavy:      hueBlue,
	wardrobe.ColorTeal:      hueBlue,
	wardrobe.ColorTurquoise: hueBlue,
	wardrobe.ColorGreen:     hueGreen,
	wardrobe.ColorOlive:     hueGreen,
	wardrobe.ColorForest:    hueGreen,
	wardrobe.ColorMint:      hueGreen,
	wardrobe.ColorYellow:    hueYellow,
	wardrobe.ColorGold:      hueYellow,
	wardrobe.ColorCream:     hueYellow,
	wardrobe.ColorIvory:     hueYellow,
	wardrobe.ColorPurple:    huePurple,
	wardrobe.ColorLavender:  huePurple,
	wardrobe.ColorViolet:    huePurple,
	wardrobe.ColorPlum:      huePurple,
	wardrobe.ColorOrange:    hueOrange,
	wardrobe.ColorCoral:     hueOrange,
	wardrobe.ColorPeach:     hueOrange,
	wardrobe.ColorSalmon:    hueOrange,
}

type huePair [2]hueGroup

func orderedPair(a, b hueGroup) huePair {
	if a > b {
		a, b = b, a
	}
	return huePair{a, b}
}

var complementaryHues = map[huePair]struct{}{
	orderedPair(hueRed, hueGreen):     {},
	orderedPair(hueBlue, hueOrange):   {},
	orderedPair(hueYellow, huePurple): {},
}

var analogousHues = map[huePair]struct{}{
	orderedPair(hueBlue, hueGreen):   {},
	orderedPair(hueRed, hueOrange):   {},
	orderedPair(hueYellow, hueGreen): {},
	orderedPair(huePurple, hueBlue):  {},
}

// ColorScorer scores garment colors against a palette and against each other.
type ColorScorer struct {
	palette *Palette
}

// NewColorScorer returns a scorer over p. A nil palette uses DefaultPalette.
func NewColorScorer(p *Palette) *ColorScorer {
	if p == nil {
		p = DefaultPalette()
	}
	return &ColorScorer{palette: p}
}

// Palette returns the palette the scorer reads from.
func (s *ColorScorer) Palette() *Palette { return s.palette }

// GarmentColorScore returns the bucket score of the palette swatch nearest to
// the color. Colors with no RGB value (multicolor without a hex) score
// DefaultColorScore.
func (s *ColorScorer) GarmentColorScore(c wardrobe.Color, profile wardrobe.SkinToneProfile) float64 {
	rgb, ok := c.RGB()
	if !ok {
		return DefaultColorScore
	}
	return s.palette.Nearest(profile, rgb).Bucket.Score()
}

// ClassifyHarmony returns the relationship between two color families.
func ClassifyHarmony(a, b wardrobe.ColorFamily) HarmonyType {
	if a.IsNeutral() || b.IsNeutral() {
		return HarmonyNeutral
	}
	ha, hb := familyHue[a], familyHue[b]
	if ha == hueNone || hb == hueNone {
		return HarmonyUnknown
	}
	p := orderedPair(ha, hb)
	if _, ok := complementaryHues[p]; ok {
		return HarmonyComplementary
	}
	if _, ok := analogousHues[p]; ok {
		return HarmonyAnalogous
	}
	if ha == hb {
		return HarmonyMonochromatic
	}
	return HarmonyContrast
}

// ItemHarmony scores the color harmony of two garments, independent of skin tone.
func ItemHarmony(a, b wardrobe.Garment) float64 {
	return harmonyScores[ClassifyHarmony(a.PrimaryColor().Family, b.PrimaryColor().Family)]
}

// PairColorScore blends the wearer's palette fit of both garments with their
// mutual harmony.
func (s *ColorScorer) PairColorScore(a, b wardrobe.Garment, profile wardrobe.SkinToneProfile) float64 {
	skin := (s.GarmentColorScore(a.PrimaryColor(), profile) + s.GarmentColorScore(b.PrimaryColor(), profile)) / 2
	return 0.6*skin + 0.4*ItemHarmony(a, b)
}
