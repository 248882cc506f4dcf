// Stylist - Wardrobe Outfit Compatibility and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stylist

package recommend

import (
	"slices"
	"testing"

	"github.com/goccy/go-json"

	"github.com/tomtom215/stylist/internal/wardrobe"
)

func TestOutfit_Contains(t *testing.T) {
	o := Outfit{Items: basicWardrobe(t)[:2]}

	if !o.Contains("shirt") || !o.Contains("jeans") {
		t.Error("Contains() missed an outfit item")
	}
	if o.Contains("trousers") || o.Contains("") {
		t.Error("Contains() matched an absent item")
	}
	if got := o.ItemIDs(); !slices.Equal(got, []string{"shirt", "jeans"}) {
		t.Errorf("ItemIDs() = %v", got)
	}
}

func TestResult_JSONShape(t *testing.T) {
	res := Result{
		Success:         false,
		Error:           NoWardrobeMessage,
		Recommendations: []Recommendation{},
	}

	data, err := json.Marshal(res)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}

	recs, ok := decoded["recommendations"].([]any)
	if !ok || len(recs) != 0 {
		t.Errorf("recommendations = %v, want empty array", decoded["recommendations"])
	}
	if decoded["error"] != NoWardrobeMessage {
		t.Errorf("error = %v", decoded["error"])
	}
	if _, ok := decoded["user_analysis"]; ok {
		t.Error("user_analysis present on empty result")
	}
}

func TestRequestContext_JSONNames(t *testing.T) {
	data, err := json.Marshal(RequestContext{
		Occasion:   wardrobe.OccasionWork,
		MaxResults: 3,
	})
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if decoded["max_recommendations"] != float64(3) || decoded["occasion"] != "work" {
		t.Errorf("decoded = %v", decoded)
	}
}
