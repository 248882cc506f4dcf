// Stylist - Wardrobe Outfit Compatibility and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stylist

package recommend

import (
	"context"
	"fmt"
	"testing"

	"github.com/tomtom215/stylist/internal/wardrobe"
)

func outfitsWithScores(t *testing.T, scores ...float64) []Outfit {
	t.Helper()
	out := make([]Outfit, len(scores))
	for i, s := range scores {
		top := simple(t, fmt.Sprintf("top-%d", i), wardrobe.CategoryTop, wardrobe.ColorBlue, wardrobe.StyleCasual)
		bottom := simple(t, fmt.Sprintf("bottom-%d", i), wardrobe.CategoryBottom, wardrobe.ColorNavy, wardrobe.StyleCasual)
		out[i] = Outfit{Items: []wardrobe.Garment{top, bottom}, Score: s, index: i}
	}
	return out
}

func TestRanker_SortsAndNumbers(t *testing.T) {
	candidates := outfitsWithScores(t, 0.5, 0.9, 0.7, 0.9, 0.4)
	ranked := NewRanker().Rank(context.Background(), candidates, 3, "")

	if len(ranked) != 3 {
		t.Fatalf("len = %d, want 3", len(ranked))
	}

	wantIdx := []int{1, 3, 2}
	for i, o := range ranked {
		if o.Index() != wantIdx[i] {
			t.Errorf("ranked[%d].Index() = %d, want %d", i, o.Index(), wantIdx[i])
		}
		if o.Rank != i+1 {
			t.Errorf("ranked[%d].Rank = %d, want %d", i, o.Rank, i+1)
		}
		if want := fmt.Sprintf("outfit_%d", i+1); o.ID != want {
			t.Errorf("ranked[%d].ID = %q, want %q", i, o.ID, want)
		}
		if i > 0 && o.Score > ranked[i-1].Score {
			t.Errorf("scores not non-increasing at %d", i)
		}
	}

	if candidates[0].Rank != 0 || candidates[0].Score != 0.5 {
		t.Error("Rank() modified its input")
	}
}

func TestRanker_TieBreakIsEnumerationOrder(t *testing.T) {
	candidates := outfitsWithScores(t, 0.8, 0.8, 0.8, 0.8)
	// Present them shuffled, as a parallel evaluation might.
	shuffled := []Outfit{candidates[2], candidates[0], candidates[3], candidates[1]}

	ranked := NewRanker().Rank(context.Background(), shuffled, 10, "")
	for i, o := range ranked {
		if o.Index() != i {
			t.Errorf("ranked[%d].Index() = %d, want %d", i, o.Index(), i)
		}
	}
}

func TestRanker_AnchorFilter(t *testing.T) {
	candidates := outfitsWithScores(t, 0.9, 0.8, 0.7)

	tests := []struct {
		name     string
		k        int
		anchor   string
		wantIdxs []int
	}{
		{"anchor inside top k", 5, "bottom-2", []int{2}},
		{"anchor below the cut is dropped", 1, "bottom-2", nil},
		{"anchor at the top", 2, "top-0", []int{0}},
		{"unknown anchor", 5, "missing", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ranked := NewRanker().Rank(context.Background(), candidates, tt.k, tt.anchor)
			if len(ranked) != len(tt.wantIdxs) {
				t.Fatalf("len = %d, want %d", len(ranked), len(tt.wantIdxs))
			}
			for i, o := range ranked {
				if o.Index() != tt.wantIdxs[i] || o.Rank != i+1 {
					t.Errorf("ranked[%d] = index %d rank %d, want index %d rank %d",
						i, o.Index(), o.Rank, tt.wantIdxs[i], i+1)
				}
			}
		})
	}
}

type reverseReranker struct{}

func (reverseReranker) Name() string { return "reverse" }

func (reverseReranker) Rerank(_ context.Context, outfits []Outfit, _ int) []Outfit {
	out := make([]Outfit, len(outfits))
	for i, o := range outfits {
		out[len(outfits)-1-i] = o
	}
	return out
}

func TestRanker_AppliesRerankersBeforeTruncation(t *testing.T) {
	candidates := outfitsWithScores(t, 0.9, 0.8, 0.7)
	ranked := NewRanker(reverseReranker{}).Rank(context.Background(), candidates, 2, "")

	if len(ranked) != 2 || ranked[0].Index() != 2 || ranked[1].Index() != 1 {
		t.Errorf("ranked = %v/%v", ranked[0].Index(), ranked[1].Index())
	}
	if ranked[0].Rank != 1 || ranked[1].Rank != 2 {
		t.Error("ranks not reassigned after reranking")
	}
}
