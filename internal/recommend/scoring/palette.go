// Stylist - Wardrobe Outfit Compatibility and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stylist

package scoring

import (
	"errors"
	"fmt"
	"math"

	"github.com/tomtom215/stylist/internal/wardrobe"
)

// Bucket is a palette suitability class.
type Bucket string

const (
	BucketExcellent Bucket = "excellent"
	BucketGood      Bucket = "good"
	BucketFair      Bucket = "fair"
	BucketAvoid     Bucket = "avoid"
)

// Score returns the fixed color score of the bucket.
func (b Bucket) Score() float64 {
	switch b {
	case BucketExcellent:
		return 0.95
	case BucketGood:
		return 0.8
	case BucketFair:
		return 0.6
	case BucketAvoid:
		return 0.2
	default:
		return DefaultColorScore
	}
}

// DefaultColorScore is returned when a garment color has no RGB value.
const DefaultColorScore = 0.5

// ErrInvalidPalette is returned by NewPalette when tables overlap or are missing.
var ErrInvalidPalette = errors.New("invalid palette")

// Swatch is a named palette color.
type Swatch struct {
	Name   string       `json:"name"`
	RGB    wardrobe.RGB `json:"rgb"`
	Bucket Bucket       `json:"bucket"`
}

// ToneKey selects one palette table.
type ToneKey struct {
	Undertone wardrobe.Undertone
	Depth     wardrobe.Depth
}

// Palette is an immutable set of per skin-tone color tables.
type Palette struct {
	tables map[ToneKey][]Swatch
}

// NewPalette validates and copies tables. Every (undertone, depth)
// combination must be present and a swatch name or RGB value may appear at
// most once per table, so the buckets partition the table.
func NewPalette(tables map[ToneKey][]Swatch) (*Palette, error) {
	p := &Palette{tables: make(map[ToneKey][]Swatch, len(tables))}
	for _, u := range []wardrobe.Undertone{wardrobe.UndertoneWarm, wardrobe.UndertoneCool, wardrobe.UndertoneNeutral} {
		for _, d := range []wardrobe.Depth{wardrobe.DepthLight, wardrobe.DepthMedium, wardrobe.DepthDeep} {
			key := ToneKey{Undertone: u, Depth: d}
			swatches, ok := tables[key]
			if !ok || len(swatches) == 0 {
				return nil, fmt.Errorf("%w: missing table %s/%s", ErrInvalidPalette, u, d)
			}
			names := make(map[string]struct{}, len(swatches))
			colors := make(map[wardrobe.RGB]struct{}, len(swatches))
			for _, s := range swatches {
				if s.Bucket.Score() == DefaultColorScore {
					return nil, fmt.Errorf("%w: %s/%s: swatch %q has bucket %q", ErrInvalidPalette, u, d, s.Name, s.Bucket)
				}
				if _, dup := names[s.Name]; dup {
					return nil, fmt.Errorf("%w: %s/%s: swatch %q listed twice", ErrInvalidPalette, u, d, s.Name)
				}
				if _, dup := colors[s.RGB]; dup {
					return nil, fmt.Errorf("%w: %s/%s: color %s listed twice", ErrInvalidPalette, u, d, s.RGB.Hex())
				}
				names[s.Name] = struct{}{}
				colors[s.RGB] = struct{}{}
			}
			p.tables[key] = append([]Swatch(nil), swatches...)
		}
	}
	return p, nil
}

// table returns the table for profile, falling back to neutral/medium for
// unknown keys.
func (p *Palette) table(profile wardrobe.SkinToneProfile) []Swatch {
	if t, ok := p.tables[ToneKey{Undertone: profile.Undertone, Depth: profile.Depth}]; ok {
		return t
	}
	if t, ok := p.tables[ToneKey{Undertone: profile.Undertone, Depth: wardrobe.DepthMedium}]; ok {
		return t
	}
	return p.tables[ToneKey{Undertone: wardrobe.UndertoneNeutral, Depth: wardrobe.DepthMedium}]
}

// Swatches returns a copy of the table used for profile.
func (p *Palette) Swatches(profile wardrobe.SkinToneProfile) []Swatch {
	return append([]Swatch(nil), p.table(profile)...)
}

// Nearest returns the swatch with the smallest RGB distance to c across every
// bucket of the profile's table. Ties keep the earlier swatch.
func (p *Palette) Nearest(profile wardrobe.SkinToneProfile, c wardrobe.RGB) Swatch {
	var best Swatch
	bestDist := math.Inf(1)
	for _, s := range p.table(profile) {
		if d := c.Distance(s.RGB); d < bestDist {
			best, bestDist = s, d
		}
	}
	return best
}

// Recommended returns up to n swatch names from bucket in table order.
// n <= 0 returns all of them.
func (p *Palette) Recommended(profile wardrobe.SkinToneProfile, bucket Bucket, n int) []string {
	var names []string
	for _, s := range p.table(profile) {
		if s.Bucket != bucket {
			continue
		}
		names = append(names, s.Name)
		if n > 0 && len(names) == n {
			break
		}
	}
	return names
}

func sw(name, hex string, bucket Bucket) Swatch {
	return Swatch{Name: name, RGB: wardrobe.MustHex(hex), Bucket: bucket}
}

func tone(u wardrobe.Undertone, d wardrobe.Depth) ToneKey {
	return ToneKey{Undertone: u, Depth: d}
}

var defaultPalette = mustPalette(map[ToneKey][]Swatch{
	tone(wardrobe.UndertoneWarm, wardrobe.DepthLight): {
		sw("coral", "#FF7F7F", BucketExcellent),
		sw("peach", "#FFCBA4", BucketExcellent),
		sw("warm-beige", "#F5E6D3", BucketExcellent),
		sw("golden-yellow", "#FFD700", BucketExcellent),
		sw("burnt-orange", "#CC5500", BucketGood),
		sw("rust", "#B7410E", BucketGood),
		sw("warm-brown", "#8B4513", BucketGood),
		sw("olive-green", "#808000", BucketFair),
		sw("mustard", "#FFDB58", BucketFair),
		sw("cool-blue", "#0066CC", BucketAvoid),
		sw("bright-pink", "#FF1493", BucketAvoid),
		sw("icy-gray", "#B8C6D6", BucketAvoid),
	},
	tone(wardrobe.UndertoneWarm, wardrobe.DepthMedium): {
		sw("terracotta", "#E2725B", BucketExcellent),
		sw("rich-gold", "#FFD700", BucketExcellent),
		sw("warm-burgundy", "#800020", BucketExcellent),
		sw("burnt-sienna", "#E97451", BucketExcellent),
		sw("olive", "#808000", BucketGood),
		sw("copper", "#B87333", BucketGood),
		sw("cream", "#FFFDD0", BucketGood),
		sw("forest-green", "#228B22", BucketFair),
		sw("plum", "#8E4585", BucketFair),
		sw("electric-blue", "#7DF9FF", BucketAvoid),
		sw("neon-green", "#39FF14", BucketAvoid),
		sw("stark-white", "#FFFFFF", BucketAvoid),
	},
	tone(wardrobe.UndertoneWarm, wardrobe.DepthDeep): {
		sw("rich-emerald", "#50C878", BucketExcellent),
		sw("deep-burgundy", "#800020", BucketExcellent),
		sw("golden-bronze", "#CD7F32", BucketExcellent),
		sw("burnt-orange", "#CC5500", BucketExcellent),
		sw("deep-teal", "#008080", BucketGood),
		sw("chocolate", "#7B3F00", BucketGood),
		sw("mustard", "#FFDB58", BucketGood),
		sw("navy", "#000080", BucketFair),
		sw("charcoal", "#36454F", BucketFair),
		sw("pastel-pink", "#FFB6C1", BucketAvoid),
		sw("baby-blue", "#89CFF0", BucketAvoid),
		sw("light-gray", "#D3D3D3", BucketAvoid),
	},
	tone(wardrobe.UndertoneCool, wardrobe.DepthLight): {
		sw("soft-pink", "#FFB6C1", BucketExcellent),
		sw("lavender", "#E6E6FA", BucketExcellent),
		sw("cool-gray", "#8C92AC", BucketExcellent),
		sw("icy-blue", "#B0E0E6", BucketExcellent),
		sw("emerald", "#50C878", BucketGood),
		sw("rose", "#FF007F", BucketGood),
		sw("slate-blue", "#6A5ACD", BucketGood),
		sw("mint-green", "#98FB98", BucketFair),
		sw("burgundy", "#800020", BucketFair),
		sw("orange", "#FFA500", BucketAvoid),
		sw("yellow", "#FFFF00", BucketAvoid),
		sw("warm-brown", "#8B4513", BucketAvoid),
	},
	tone(wardrobe.UndertoneCool, wardrobe.DepthMedium): {
		sw("royal-blue", "#4169E1", BucketExcellent),
		sw("deep-purple", "#663399", BucketExcellent),
		sw("cool-red", "#DC143C", BucketExcellent),
		sw("charcoal", "#36454F", BucketExcellent),
		sw("teal", "#008080", BucketGood),
		sw("plum", "#8E4585", BucketGood),
		sw("cool-beige", "#F5F5DC", BucketGood),
		sw("forest-green", "#228B22", BucketFair),
		sw("maroon", "#800000", BucketFair),
		sw("peach", "#FFCBA4", BucketAvoid),
		sw("golden-yellow", "#FFD700", BucketAvoid),
		sw("rust", "#B7410E", BucketAvoid),
	},
	tone(wardrobe.UndertoneCool, wardrobe.DepthDeep): {
		sw("electric-blue", "#7DF9FF", BucketExcellent),
		sw("deep-magenta", "#8B008B", BucketExcellent),
		sw("true-white", "#FFFFFF", BucketExcellent),
		sw("jet-black", "#000000", BucketExcellent),
		sw("deep-teal", "#004D4D", BucketGood),
		sw("cool-burgundy", "#722F37", BucketGood),
		sw("silver-gray", "#C0C0C0", BucketGood),
		sw("deep-green", "#006400", BucketFair),
		sw("deep-brown", "#654321", BucketFair),
		sw("orange", "#FFA500", BucketAvoid),
		sw("gold", "#FFD700", BucketAvoid),
		sw("warm-beige", "#F5E6D3", BucketAvoid),
	},
	tone(wardrobe.UndertoneNeutral, wardrobe.DepthLight): {
		sw("soft-white", "#FFFAF0", BucketExcellent),
		sw("taupe", "#483C32", BucketExcellent),
		sw("dusty-rose", "#DCAE96", BucketExcellent),
		sw("sage-green", "#9CAF88", BucketExcellent),
		sw("navy", "#000080", BucketGood),
		sw("camel", "#C19A6B", BucketGood),
		sw("soft-blue", "#6495ED", BucketGood),
		sw("bright-red", "#FF0000", BucketFair),
		sw("purple", "#800080", BucketFair),
		sw("neon-colors", "#39FF14", BucketAvoid),
		sw("muddy-brown", "#654321", BucketAvoid),
	},
	tone(wardrobe.UndertoneNeutral, wardrobe.DepthMedium): {
		sw("true-red", "#FF0000", BucketExcellent),
		sw("deep-navy", "#191970", BucketExcellent),
		sw("rich-brown", "#654321", BucketExcellent),
		sw("emerald-green", "#50C878", BucketExcellent),
		sw("burgundy", "#800020", BucketGood),
		sw("charcoal", "#36454F", BucketGood),
		sw("dusty-pink", "#D8BFD8", BucketGood),
		sw("bright-orange", "#FF8C00", BucketFair),
		sw("electric-purple", "#8A2BE2", BucketFair),
		sw("washed-out-pastels", "#F0F8FF", BucketAvoid),
		sw("muddy-greens", "#556B2F", BucketAvoid),
	},
	tone(wardrobe.UndertoneNeutral, wardrobe.DepthDeep): {
		sw("crisp-white", "#FFFFFF", BucketExcellent),
		sw("bright-red", "#FF0000", BucketExcellent),
		sw("royal-purple", "#7851A9", BucketExcellent),
		sw("deep-turquoise", "#008B8B", BucketExcellent),
		sw("gold", "#FFD700", BucketGood),
		sw("deep-forest", "#013220", BucketGood),
		sw("chocolate", "#7B3F00", BucketGood),
		sw("olive", "#808000", BucketFair),
		sw("burgundy", "#800020", BucketFair),
		sw("pale-pastels", "#E6E6FA", BucketAvoid),
		sw("light-gray", "#D3D3D3", BucketAvoid),
	},
})

func mustPalette(tables map[ToneKey][]Swatch) *Palette {
	p, err := NewPalette(tables)
	if err != nil {
		panic(err)
	}
	return p
}

// DefaultPalette returns the built-in palette. It is shared and immutable.
func DefaultPalette() *Palette {
	return defaultPalette
}
