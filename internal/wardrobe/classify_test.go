// Stylist - Wardrobe Outfit Compatibility and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stylist

package wardrobe

import (
	"errors"
	"slices"
	"testing"
)

func TestCategoryFromText(t *testing.T) {
	tests := []struct {
		in      string
		want    Category
		wantErr bool
	}{
		{"top", CategoryTop, false},
		{"Tops", CategoryTop, false},
		{"T-Shirt", CategoryTop, false},
		{"bottoms", CategoryBottom, false},
		{"Jeans", CategoryBottom, false},
		{"dress shoes", CategoryShoes, false},
		{"Sneakers", CategoryShoes, false},
		{"summer dress", CategoryDress, false},
		{"Accessories", CategoryAccessory, false},
		{"Leather Jacket", CategoryOuterwear, false},
		{"Bootcut Jeans", CategoryBottom, false},
		{"Baggy Jeans", CategoryBottom, false},
		{"Short Sleeve Top", CategoryTop, false},
		{"Shirt Dress", CategoryDress, false},
		{"Ankle Boots", CategoryShoes, false},
		{"Dresses", CategoryDress, false},
		{"Handbag", CategoryAccessory, false},
		{"Shorts", CategoryBottom, false},
		{"", "", true},
		{"spaceship", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := CategoryFromText(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("CategoryFromText(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("CategoryFromText(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestColorFamilyFromName(t *testing.T) {
	tests := []struct {
		in   string
		want ColorFamily
	}{
		{"navy", ColorNavy},
		{"Navy Blue", ColorNavy},
		{"light blue", ColorBlue},
		{"Grey", ColorGray},
		{"charcoal", ColorGray},
		{"Rose Gold", ColorGold},
		{"dusty rose", ColorPink},
		{"khaki", ColorTan},
		{"multicolor", ColorMulticolor},
		{"off-white", ColorWhite},
		{"", ColorUnknown},
		{"iridescent", ColorUnknown},
	}

	for _, tt := range tests {
		if got := ColorFamilyFromName(tt.in); got != tt.want {
			t.Errorf("ColorFamilyFromName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestPatternFromText(t *testing.T) {
	tests := []struct {
		in   string
		want Pattern
	}{
		{"", PatternSolid},
		{"Solid", PatternSolid},
		{"striped", PatternStripes},
		{"polka dots", PatternDots},
		{"small checks", PatternSmallChecks},
		{"small_checks", PatternSmallChecks},
		{"gingham", PatternSmallChecks},
		{"tartan", PatternPlaid},
		{"leopard", PatternAnimalPrint},
		{"paisley", PatternAbstract},
	}

	for _, tt := range tests {
		if got := PatternFromText(tt.in); got != tt.want {
			t.Errorf("PatternFromText(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestStyleFromTags(t *testing.T) {
	tests := []struct {
		name string
		tags []string
		want Style
	}{
		{"empty defaults to casual", nil, StyleCasual},
		{"professional", []string{"cotton", "Professional"}, StyleFormal},
		{"business", []string{"business"}, StyleBusinessCasual},
		{"smart casual with space", []string{"smart casual"}, StyleSmartCasual},
		{"minimalist", []string{"minimalist"}, StyleSmartCasual},
		{"sporty maps to casual", []string{"sporty"}, StyleCasual},
		{"first match wins", []string{"elegant", "casual"}, StyleFormal},
		{"streetwear", []string{"streetwear"}, StyleStreetwear},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StyleFromTags(tt.tags); got != tt.want {
				t.Errorf("StyleFromTags(%v) = %q, want %q", tt.tags, got, tt.want)
			}
		})
	}
}

func TestSeasonsFromTags(t *testing.T) {
	if got := SeasonsFromTags(nil); !slices.Equal(got, AllSeasons) {
		t.Errorf("SeasonsFromTags(nil) = %v, want all seasons", got)
	}
	if got := SeasonsFromTags([]string{"Summer", "fall", "autumn"}); !slices.Equal(got, []Season{SeasonSummer, SeasonAutumn}) {
		t.Errorf("SeasonsFromTags() = %v, want [summer autumn]", got)
	}
	if got := SeasonsFromTags([]string{"warm"}); !slices.Equal(got, []Season{SeasonWinter}) {
		t.Errorf("SeasonsFromTags(warm) = %v, want [winter]", got)
	}
	if got := SeasonsFromTags([]string{"summer", "all season"}); !slices.Equal(got, AllSeasons) {
		t.Errorf("SeasonsFromTags(all season) = %v, want all seasons", got)
	}
}

func TestDeriveFormality(t *testing.T) {
	tests := []struct {
		name        string
		category    Category
		subcategory string
		styles      []Style
		tags        []string
		want        int
	}{
		{"formal tag wins", CategoryBottom, "jeans", nil, []string{"elegant"}, 5},
		{"casual tag", CategoryBottom, "trousers", nil, []string{"comfortable"}, 2},
		{"formal tag beats casual tag", CategoryTop, "", nil, []string{"casual", "business"}, 5},
		{"suit jacket", CategoryOuterwear, "suit jacket", nil, nil, 6},
		{"sandals", CategoryShoes, "Sandals", nil, nil, 1},
		{"subcategory under wrong category", CategoryTop, "jeans", []Style{StyleSmartCasual}, nil, 4},
		{"style business casual", CategoryTop, "", []Style{StyleBusinessCasual}, nil, 5},
		{"style streetwear", CategoryTop, "", []Style{StyleStreetwear}, nil, 1},
		{"nothing known", CategoryAccessory, "", nil, nil, DefaultFormality},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DeriveFormality(tt.category, tt.subcategory, tt.styles, tt.tags)
			if got != tt.want {
				t.Errorf("DeriveFormality() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestClassify(t *testing.T) {
	raw := RawGarment{
		UserID:      "u1",
		Category:    "Pants",
		Subcategory: "Trousers",
		Color:       "Charcoal Grey",
		Hex:         "#36454f",
		Pattern:     "pinstripe",
		Tags:        []string{"professional", "winter"},
		Fit:         "Slim",
		Occasions:   []string{"work", "not-an-occasion"},
	}

	spec, err := Classify(raw)
	if err != nil {
		t.Fatalf("Classify() error = %v", err)
	}
	if spec.ID == "" {
		t.Error("expected generated ID")
	}
	if spec.Category != CategoryBottom {
		t.Errorf("Category = %q, want bottom", spec.Category)
	}
	if spec.PrimaryColor.Family != ColorGray || spec.PrimaryColor.Hex != "#36454F" {
		t.Errorf("PrimaryColor = %+v", spec.PrimaryColor)
	}
	if spec.Pattern != PatternPinstripe {
		t.Errorf("Pattern = %q, want pinstripe", spec.Pattern)
	}
	if !slices.Equal(spec.Styles, []Style{StyleFormal}) {
		t.Errorf("Styles = %v, want [formal]", spec.Styles)
	}
	if spec.Formality != 5 {
		t.Errorf("Formality = %d, want 5", spec.Formality)
	}
	if !slices.Equal(spec.Occasions, []Occasion{OccasionWork}) {
		t.Errorf("Occasions = %v, want [work]", spec.Occasions)
	}
	if spec.Fit != FitSlim {
		t.Errorf("Fit = %q, want slim", spec.Fit)
	}

	if _, err := NewGarment(spec); err != nil {
		t.Errorf("NewGarment(Classify()) error = %v", err)
	}
}

func TestClassify_Rejects(t *testing.T) {
	tests := []struct {
		name string
		raw  RawGarment
	}{
		{"unknown category", RawGarment{Category: "gizmo", Color: "red"}},
		{"unknown color", RawGarment{Category: "top", Color: "iridescent"}},
		{"bad hex", RawGarment{Category: "top", Color: "red", Hex: "#12"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Classify(tt.raw)
			if !errors.Is(err, ErrInvalidGarment) {
				t.Errorf("Classify() error = %v, want ErrInvalidGarment", err)
			}
		})
	}
}
