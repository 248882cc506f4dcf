// Stylist - Wardrobe Outfit Compatibility and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stylist

package scoring

import "github.com/tomtom215/stylist/internal/wardrobe"

// smallScalePatterns can be mixed with each other when they differ.
var smallScalePatterns = map[wardrobe.Pattern]struct{}{
	wardrobe.PatternDots:        {},
	wardrobe.PatternSmallChecks: {},
	wardrobe.PatternPinstripe:   {},
}

// PatternScore scores whether two patterns can be worn together.
func PatternScore(a, b wardrobe.Pattern) float64 {
	switch {
	case a.IsSolid() && b.IsSolid():
		return 1.0
	case a.IsSolid() || b.IsSolid():
		return 0.8
	}
	_, smallA := smallScalePatterns[a]
	_, smallB := smallScalePatterns[b]
	if smallA && smallB && a != b {
		return 0.6
	}
	return 0.2
}
