// Stylist - Wardrobe Outfit Compatibility and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stylist

package recommend

import (
	"time"

	"github.com/tomtom215/stylist/internal/recommend/scoring"
	"github.com/tomtom215/stylist/internal/wardrobe"
)

// storedUndertoneConfidence is the confidence of a profile built from a
// stored undertone without an RGB sample.
const storedUndertoneConfidence = 0.8

// SeasonAt returns the northern-hemisphere season of t.
func SeasonAt(t time.Time) wardrobe.Season {
	switch t.Month() {
	case time.March, time.April, time.May:
		return wardrobe.SeasonSpring
	case time.June, time.July, time.August:
		return wardrobe.SeasonSummer
	case time.September, time.October, time.November:
		return wardrobe.SeasonAutumn
	default:
		return wardrobe.SeasonWinter
	}
}

// TimeOfDayAt buckets the hour of t.
func TimeOfDayAt(t time.Time) TimeOfDay {
	switch h := t.Hour(); {
	case h < 12:
		return TimeMorning
	case h < 17:
		return TimeAfternoon
	case h < 21:
		return TimeEvening
	default:
		return TimeNight
	}
}

// ResolveSkinTone picks the wearer profile. Request overrides win over the
// stored profile, and RGB samples win over bare undertones. Without any
// information the neutral profile is used.
//
//nolint:gocritic // hugeParam: req passed by value for immutability
func ResolveSkinTone(req Request, stored *wardrobe.UserProfile) wardrobe.SkinToneProfile {
	switch {
	case req.SkinSample != nil:
		return scoring.AnalyzeSkinTone(*req.SkinSample)
	case req.SkinTone.Valid():
		return undertoneProfile(req.SkinTone)
	case stored != nil && stored.SkinSample != nil:
		return scoring.AnalyzeSkinTone(*stored.SkinSample)
	case stored != nil && stored.SkinTone.Valid():
		return undertoneProfile(stored.SkinTone)
	default:
		return wardrobe.NeutralProfile()
	}
}

func undertoneProfile(u wardrobe.Undertone) wardrobe.SkinToneProfile {
	return wardrobe.SkinToneProfile{
		Undertone:  u,
		Depth:      wardrobe.DepthMedium,
		Confidence: storedUndertoneConfidence,
	}
}
