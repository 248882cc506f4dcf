// Stylist - Wardrobe Outfit Compatibility and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stylist

package wardrobe

import (
	"fmt"
	"slices"
	"strings"

	"github.com/google/uuid"
)

// RawGarment is free-text classifier output for a single garment.
type RawGarment struct {
	ID          string   `json:"id,omitempty"`
	UserID      string   `json:"user_id"`
	Name        string   `json:"name,omitempty"`
	Category    string   `json:"category"`
	Subcategory string   `json:"subcategory,omitempty"`
	Color       string   `json:"color,omitempty"`
	Hex         string   `json:"hex,omitempty"`
	Secondary   []string `json:"secondary_colors,omitempty"`
	Pattern     string   `json:"pattern,omitempty"`
	Material    string   `json:"material,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	Fit         string   `json:"fit,omitempty"`
	Occasions   []string `json:"occasions,omitempty"`
	Formality   int      `json:"formality,omitempty"`
	ImageURL    string   `json:"image_url,omitempty"`
}

// Classify maps classifier output onto the garment enums. The result is
// ready for NewGarment. A garment without an ID is assigned a random one.
//
//nolint:gocritic // hugeParam: raw is copied once per ingested garment
func Classify(raw RawGarment) (GarmentSpec, error) {
	category, err := CategoryFromText(raw.Category)
	if err != nil {
		return GarmentSpec{}, fmt.Errorf("%w: %w", ErrInvalidGarment, err)
	}

	color := Color{Family: ColorFamilyFromName(raw.Color)}
	if raw.Hex != "" {
		rgb, err := ParseHex(raw.Hex)
		if err != nil {
			return GarmentSpec{}, fmt.Errorf("%w: %w", ErrInvalidGarment, err)
		}
		color.Hex = rgb.Hex()
	}
	if color.IsZero() {
		return GarmentSpec{}, fmt.Errorf("%w: color %q not recognized", ErrInvalidGarment, raw.Color)
	}

	var secondary []ColorFamily
	for _, name := range raw.Secondary {
		if f := ColorFamilyFromName(name); f != ColorUnknown {
			secondary = append(secondary, f)
		}
	}

	var occasionSet []Occasion
	for _, o := range raw.Occasions {
		if parsed, err := ParseOccasion(o); err == nil {
			occasionSet = append(occasionSet, parsed)
		}
	}

	fit := Fit(strings.ToLower(strings.TrimSpace(raw.Fit)))
	if !fit.Valid() {
		fit = FitUnknown
	}

	style := StyleFromTags(raw.Tags)
	formality := raw.Formality
	if formality < MinFormality || formality > MaxFormality {
		formality = DeriveFormality(category, raw.Subcategory, []Style{style}, raw.Tags)
	}

	id := strings.TrimSpace(raw.ID)
	if id == "" {
		id = uuid.New().String()
	}

	return GarmentSpec{
		ID:              id,
		UserID:          raw.UserID,
		Name:            raw.Name,
		Category:        category,
		Subcategory:     normalizeTag(raw.Subcategory),
		PrimaryColor:    color,
		SecondaryColors: secondary,
		Pattern:         PatternFromText(raw.Pattern),
		Material:        raw.Material,
		Styles:          []Style{style},
		Formality:       formality,
		Occasions:       occasionSet,
		Seasons:         SeasonsFromTags(raw.Tags),
		Fit:             fit,
		ImageURL:        raw.ImageURL,
	}, nil
}

// categoryWords maps whole words to categories. Plurals are handled by
// categoryForWord.
var categoryWords = map[string]Category{
	"shoe": CategoryShoes, "footwear": CategoryShoes, "sneaker": CategoryShoes,
	"trainer": CategoryShoes, "boot": CategoryShoes, "heel": CategoryShoes,
	"pump": CategoryShoes, "sandal": CategoryShoes, "loafer": CategoryShoes,
	"flat": CategoryShoes, "oxford": CategoryShoes,

	"outerwear": CategoryOuterwear, "jacket": CategoryOuterwear, "coat": CategoryOuterwear,
	"blazer": CategoryOuterwear, "cardigan": CategoryOuterwear, "parka": CategoryOuterwear,

	"top": CategoryTop, "shirt": CategoryTop, "tshirt": CategoryTop, "tee": CategoryTop,
	"blouse": CategoryTop, "sweater": CategoryTop, "tank": CategoryTop,
	"hoodie": CategoryTop, "sweatshirt": CategoryTop, "polo": CategoryTop,
	"turtleneck": CategoryTop,

	"dress": CategoryDress, "gown": CategoryDress,

	"bottom": CategoryBottom, "pant": CategoryBottom, "pants": CategoryBottom,
	"trouser": CategoryBottom, "jean": CategoryBottom, "jeans": CategoryBottom,
	"skirt": CategoryBottom, "short": CategoryBottom, "shorts": CategoryBottom,
	"chino": CategoryBottom, "legging": CategoryBottom, "jogger": CategoryBottom,
	"sweatpants": CategoryBottom,

	"accessory": CategoryAccessory, "accessories": CategoryAccessory,
	"bag": CategoryAccessory, "handbag": CategoryAccessory, "belt": CategoryAccessory,
	"hat": CategoryAccessory, "cap": CategoryAccessory, "scarf": CategoryAccessory,
	"watch": CategoryAccessory, "jewelry": CategoryAccessory, "jewellery": CategoryAccessory,
	"necklace": CategoryAccessory, "bracelet": CategoryAccessory, "earring": CategoryAccessory,
	"sunglasses": CategoryAccessory,
}

// categoryForWord looks a word up as written, then without a plural suffix.
func categoryForWord(w string) (Category, bool) {
	for _, cand := range []string{w, strings.TrimSuffix(w, "s"), strings.TrimSuffix(w, "es")} {
		if c, ok := categoryWords[cand]; ok {
			return c, true
		}
	}
	return "", false
}

// CategoryFromText resolves a free-text category such as "Tops" or
// "Bootcut Jeans". Words are matched whole and the last known word wins, so
// the head noun decides: "Shirt Dress" is a dress, "Dress Shoes" are shoes.
func CategoryFromText(s string) (Category, error) {
	if c, err := ParseCategory(s); err == nil {
		return c, nil
	}
	lower := strings.ToLower(strings.TrimSpace(s))
	if lower == "" {
		return "", fmt.Errorf("%w: empty category", ErrUnknownValue)
	}

	words := strings.FieldsFunc(lower, func(r rune) bool { return r < 'a' || r > 'z' })
	// "t-shirt" splits into "t" and "shirt"; "shirt" alone is enough.
	for i := len(words) - 1; i >= 0; i-- {
		if c, ok := categoryForWord(words[i]); ok {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: category %q", ErrUnknownValue, s)
}

// colorKeywords is ordered so that specific names win over the generic
// family they contain ("navy blue" is navy, "rose gold" is gold).
var colorKeywords = []struct {
	keyword string
	family  ColorFamily
}{
	{"multi", ColorMulticolor},
	{"navy", ColorNavy},
	{"burgundy", ColorBurgundy},
	{"maroon", ColorBurgundy},
	{"wine", ColorBurgundy},
	{"crimson", ColorCrimson},
	{"turquoise", ColorTurquoise},
	{"teal", ColorTeal},
	{"olive", ColorOlive},
	{"forest", ColorForest},
	{"mint", ColorMint},
	{"lavender", ColorLavender},
	{"lilac", ColorLavender},
	{"violet", ColorViolet},
	{"plum", ColorPlum},
	{"coral", ColorCoral},
	{"peach", ColorPeach},
	{"salmon", ColorSalmon},
	{"ivory", ColorIvory},
	{"cream", ColorCream},
	{"beige", ColorBeige},
	{"khaki", ColorTan},
	{"camel", ColorTan},
	{"tan", ColorTan},
	{"gold", ColorGold},
	{"mustard", ColorYellow},
	{"charcoal", ColorGray},
	{"silver", ColorGray},
	{"grey", ColorGray},
	{"gray", ColorGray},
	{"black", ColorBlack},
	{"white", ColorWhite},
	{"chocolate", ColorBrown},
	{"brown", ColorBrown},
	{"pink", ColorPink},
	{"rose", ColorPink},
	{"red", ColorRed},
	{"denim", ColorBlue},
	{"blue", ColorBlue},
	{"green", ColorGreen},
	{"yellow", ColorYellow},
	{"purple", ColorPurple},
	{"orange", ColorOrange},
}

// ColorFamilyFromName maps a free-text color name onto a family. It returns
// ColorUnknown when nothing matches.
func ColorFamilyFromName(name string) ColorFamily {
	if f, err := ParseColorFamily(name); err == nil {
		return f
	}
	lower := strings.ToLower(name)
	for _, k := range colorKeywords {
		if strings.Contains(lower, k.keyword) {
			return k.family
		}
	}
	return ColorUnknown
}

var patternAliases = map[string]Pattern{
	"plain":       PatternSolid,
	"striped":     PatternStripes,
	"stripe":      PatternStripes,
	"pinstriped":  PatternPinstripe,
	"polka-dot":   PatternDots,
	"polka-dots":  PatternDots,
	"dotted":      PatternDots,
	"checked":     PatternSmallChecks,
	"checkered":   PatternSmallChecks,
	"gingham":     PatternSmallChecks,
	"small-check": PatternSmallChecks,
	"tartan":      PatternPlaid,
	"flannel":     PatternPlaid,
	"leopard":     PatternAnimalPrint,
	"zebra":       PatternAnimalPrint,
	"flowers":     PatternFloral,
	"print":       PatternGraphic,
}

// PatternFromText resolves a free-text pattern. Empty input is solid and
// unrecognized input is abstract.
func PatternFromText(s string) Pattern {
	norm := normalizeTag(s)
	if norm == "" {
		return PatternSolid
	}
	if p, err := ParsePattern(strings.ReplaceAll(norm, "-", "_")); err == nil {
		return p
	}
	if p, ok := patternAliases[norm]; ok {
		return p
	}
	return PatternAbstract
}

var tagStyles = map[string]Style{
	"professional":    StyleFormal,
	"formal":          StyleFormal,
	"elegant":         StyleFormal,
	"business":        StyleBusinessCasual,
	"business-casual": StyleBusinessCasual,
	"smart-casual":    StyleSmartCasual,
	"minimalist":      StyleSmartCasual,
	"casual":          StyleCasual,
	"athletic":        StyleCasual,
	"sporty":          StyleCasual,
	"streetwear":      StyleStreetwear,
}

// StyleFromTags returns the style of the first tag that names one, or casual.
func StyleFromTags(tags []string) Style {
	for _, tag := range tags {
		if s, ok := tagStyles[normalizeTag(tag)]; ok {
			return s
		}
	}
	return StyleCasual
}

var seasonTags = map[string]Season{
	"summer": SeasonSummer,
	"winter": SeasonWinter,
	"warm":   SeasonWinter,
	"spring": SeasonSpring,
	"fall":   SeasonAutumn,
	"autumn": SeasonAutumn,
}

// SeasonsFromTags returns the seasons named by tags in tag order, or every
// season when no tag names one.
func SeasonsFromTags(tags []string) []Season {
	var out []Season
	for _, tag := range tags {
		norm := normalizeTag(tag)
		if norm == "all-season" || norm == "all-seasons" {
			return slices.Clone(AllSeasons)
		}
		if s, ok := seasonTags[norm]; ok && !slices.Contains(out, s) {
			out = append(out, s)
		}
	}
	if len(out) == 0 {
		return slices.Clone(AllSeasons)
	}
	return out
}

var (
	formalTags = []string{"formal", "professional", "business", "elegant"}
	casualTags = []string{"casual", "athletic", "sporty", "comfortable"}
)

var subcategoryFormality = map[Category]map[string]int{
	CategoryShoes: {
		"dress-shoes": 5, "heels": 5, "boots": 3, "sneakers": 2, "sandals": 1,
	},
	CategoryBottom: {
		"trousers": 5, "chinos": 4, "jeans": 2, "shorts": 1, "joggers": 1,
	},
	CategoryTop: {
		"button-down": 4, "blouse": 4, "turtleneck": 4, "t-shirt": 2, "tank-top": 1,
	},
	CategoryOuterwear: {
		"blazer": 5, "suit-jacket": 6, "coat": 4, "jacket": 3, "cardigan": 3,
	},
	CategoryDress: {
		"formal-dress": 5, "cocktail-dress": 4, "casual-dress": 2, "summer-dress": 2,
	},
}

var styleFormality = map[Style]int{
	StyleFormal:         5,
	StyleBusinessCasual: 5,
	StyleSmartCasual:    4,
	StyleCasual:         2,
	StyleStreetwear:     1,
	StyleSporty:         1,
}

// DeriveFormality computes a 1–6 formality level. Tags win, then the
// category/subcategory table, then the primary style, then the default.
func DeriveFormality(category Category, subcategory string, styleSet []Style, tags []string) int {
	for _, tag := range tags {
		if slices.Contains(formalTags, normalizeTag(tag)) {
			return 5
		}
	}
	for _, tag := range tags {
		if slices.Contains(casualTags, normalizeTag(tag)) {
			return 2
		}
	}
	if level, ok := subcategoryFormality[category][normalizeTag(subcategory)]; ok {
		return level
	}
	if len(styleSet) > 0 {
		if level, ok := styleFormality[styleSet[0]]; ok {
			return level
		}
	}
	return DefaultFormality
}

func normalizeTag(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.NewReplacer("_", "-", " ", "-").Replace(s)
}
