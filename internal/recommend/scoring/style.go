// Stylist - Wardrobe Outfit Compatibility and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stylist

package scoring

import "github.com/tomtom215/stylist/internal/wardrobe"

const (
	styleExactScore      = 1.0
	styleCompatibleScore = 0.9
	styleMismatchScore   = 0.3
	styleUnknownScore    = 0.5
)

// styleCompat lists, per base style, the styles it combines with.
var styleCompat = map[wardrobe.Style][]wardrobe.Style{
	wardrobe.StyleCasual:         {wardrobe.StyleCasual, wardrobe.StyleSmartCasual, wardrobe.StyleStreetwear},
	wardrobe.StyleFormal:         {wardrobe.StyleFormal, wardrobe.StyleBusinessCasual, wardrobe.StyleSmartCasual},
	wardrobe.StyleBusinessCasual: {wardrobe.StyleBusinessCasual, wardrobe.StyleSmartCasual, wardrobe.StyleFormal},
	wardrobe.StyleSmartCasual:    {wardrobe.StyleSmartCasual, wardrobe.StyleCasual, wardrobe.StyleBusinessCasual},
}

func compatible(base, other wardrobe.Style) bool {
	for _, s := range styleCompat[base] {
		if s == other {
			return true
		}
	}
	return false
}

// StyleScore scores the overlap of two style sets. A shared style scores
// 1.0, a compatible pair from either side 0.9, anything else 0.3. Either set
// being empty scores 0.5.
func StyleScore(a, b []wardrobe.Style) float64 {
	if len(a) == 0 || len(b) == 0 {
		return styleUnknownScore
	}
	for _, sa := range a {
		for _, sb := range b {
			if sa == sb {
				return styleExactScore
			}
		}
	}
	for _, sa := range a {
		for _, sb := range b {
			if compatible(sa, sb) || compatible(sb, sa) {
				return styleCompatibleScore
			}
		}
	}
	return styleMismatchScore
}
