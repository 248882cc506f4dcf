// Stylist - Wardrobe Outfit Compatibility and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stylist

package recommend

import (
	"cmp"
	"context"
	"fmt"
	"slices"
)

// Ranker sorts, reranks, truncates and numbers candidate outfits.
type Ranker struct {
	rerankers []Reranker
}

// NewRanker creates a ranker applying rerankers in order.
func NewRanker(rerankers ...Reranker) *Ranker {
	return &Ranker{rerankers: rerankers}
}

// SortCandidates orders outfits by score descending. Equal scores keep
// enumeration order.
func SortCandidates(outfits []Outfit) {
	slices.SortStableFunc(outfits, func(a, b Outfit) int {
		if c := cmp.Compare(b.Score, a.Score); c != 0 {
			return c
		}
		return cmp.Compare(a.index, b.index)
	})
}

// Rank returns at most k ranked outfits. When anchorID is set, the top k
// are then narrowed to outfits containing that garment, so an anchor never
// pulls a lower-ranked outfit into the response. The input slice is not
// modified.
func (r *Ranker) Rank(ctx context.Context, candidates []Outfit, k int, anchorID string) []Outfit {
	ranked := slices.Clone(candidates)
	SortCandidates(ranked)

	for _, rr := range r.rerankers {
		ranked = rr.Rerank(ctx, ranked, k)
	}

	if k >= 0 && len(ranked) > k {
		ranked = ranked[:k]
	}

	if anchorID != "" {
		ranked = slices.DeleteFunc(ranked, func(o Outfit) bool { return !o.Contains(anchorID) })
	}
	Renumber(ranked)
	return ranked
}

// Renumber assigns rank i+1 and id outfit_{rank} in slice order.
func Renumber(outfits []Outfit) {
	for i := range outfits {
		outfits[i].Rank = i + 1
		outfits[i].ID = fmt.Sprintf("outfit_%d", i+1)
	}
}
