// Stylist - Wardrobe Outfit Compatibility and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stylist

package scoring

import (
	"math"

	"github.com/tomtom215/stylist/internal/wardrobe"
)

const (
	// neutralChannelSpread is the max pairwise channel difference for a
	// neutral undertone.
	neutralChannelSpread = 10

	// strongRatio gates the yellowish/pinkish classification.
	strongRatio = 1.2

	lightDepthFloor  = 180
	mediumDepthFloor = 120

	// separationScale normalises colorSeparation into [0,1].
	separationScale = 150
)

// AnalyzeSkinTone classifies an RGB skin sample.
func AnalyzeSkinTone(c wardrobe.RGB) wardrobe.SkinToneProfile {
	r, g, b := float64(c.R), float64(c.G), float64(c.B)

	rg, gb, rb := math.Abs(r-g), math.Abs(g-b), math.Abs(r-b)
	separation := rg + gb + rb

	undertone := classifyUndertone(r, g, b, rg, gb, rb)

	var depth wardrobe.Depth
	switch avg := (r + g + b) / 3; {
	case avg > lightDepthFloor:
		depth = wardrobe.DepthLight
	case avg > mediumDepthFloor:
		depth = wardrobe.DepthMedium
	default:
		depth = wardrobe.DepthDeep
	}

	undertoneWeight := 0.9
	if undertone == wardrobe.UndertoneNeutral {
		undertoneWeight = 0.7
	}
	confidence := 0.6*math.Min(1, separation/separationScale) + 0.4*undertoneWeight

	sample := c
	return wardrobe.SkinToneProfile{
		Undertone:  undertone,
		Depth:      depth,
		Confidence: confidence,
		SourceRGB:  &sample,
	}
}

func classifyUndertone(r, g, b, rg, gb, rb float64) wardrobe.Undertone {
	if rg < neutralChannelSpread && gb < neutralChannelSpread && rb < neutralChannelSpread {
		return wardrobe.UndertoneNeutral
	}

	warmRatio := (r + g) / (b + 1)
	coolRatio := (r + b) / (g + 1)

	yellowish := r > b && g > b
	pinkish := r > g && b > g

	switch {
	case yellowish && warmRatio > strongRatio:
		return wardrobe.UndertoneWarm
	case pinkish && coolRatio > strongRatio:
		return wardrobe.UndertoneCool
	case warmRatio > coolRatio:
		return wardrobe.UndertoneWarm
	default:
		return wardrobe.UndertoneCool
	}
}
