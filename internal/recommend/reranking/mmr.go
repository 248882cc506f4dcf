// Stylist - Wardrobe Outfit Compatibility and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stylist

package reranking

import (
	"context"

	"github.com/tomtom215/stylist/internal/recommend"
)

// maxRerankSize bounds the similarity matrix.
const maxRerankSize = 1000

// garmentWeight and colorWeight split outfit similarity between shared
// garments and shared color families.
const (
	garmentWeight = 0.7
	colorWeight   = 0.3
)

// MMR implements Maximal Marginal Relevance reranking over outfits.
// It iteratively picks the outfit maximizing
//
//	lambda * score(o) - (1-lambda) * max(sim(o, s)) for s in selected
//
// where sim mixes the Jaccard overlap of garment IDs with the Jaccard overlap
// of primary color families. Two outfits built around the same top are
// therefore penalized even when their shoes differ.
//
// Reference:
// Carbonell, J., & Goldstein, J. (1998). "The Use of MMR, Diversity-Based
// Reranking for Reordering Documents and Producing Summaries." SIGIR 1998.
type MMR struct {
	lambda float64
}

// NewMMR creates a new MMR reranker. Lambda is clamped to [0, 1].
func NewMMR(lambda float64) *MMR {
	if lambda < 0 {
		lambda = 0
	}
	if lambda > 1 {
		lambda = 1
	}
	return &MMR{lambda: lambda}
}

// Name returns the reranker identifier.
func (m *MMR) Name() string {
	return "mmr"
}

// Rerank selects up to k outfits. Input order breaks ties, so a
// score-sorted input stays deterministic.
//
//nolint:gocritic // rangeValCopy: Outfit passed by value in range, acceptable for clarity
func (m *MMR) Rerank(ctx context.Context, outfits []recommend.Outfit, k int) []recommend.Outfit {
	if len(outfits) == 0 || k <= 0 {
		return outfits
	}

	if k > maxRerankSize {
		k = maxRerankSize
	}
	if k > len(outfits) {
		k = len(outfits)
	}

	if m.lambda >= 1.0 {
		return outfits[:k]
	}

	pool := outfits
	if len(pool) > maxRerankSize {
		pool = pool[:maxRerankSize]
	}
	similarities := buildSimilarityMatrix(pool)

	selected := make([]recommend.Outfit, 0, k)
	taken := make([]bool, len(pool))
	var chosen []int

	for len(selected) < k {
		if ctx.Err() != nil {
			break
		}

		bestIdx := -1
		bestMMR := 0.0

		for i, o := range pool {
			if taken[i] {
				continue
			}

			maxSim := 0.0
			for _, j := range chosen {
				if sim := similarities[i][j]; sim > maxSim {
					maxSim = sim
				}
			}

			score := m.lambda*o.Score - (1-m.lambda)*maxSim
			if bestIdx < 0 || score > bestMMR {
				bestMMR = score
				bestIdx = i
			}
		}

		if bestIdx < 0 {
			break
		}

		selected = append(selected, pool[bestIdx])
		taken[bestIdx] = true
		chosen = append(chosen, bestIdx)
	}

	return selected
}

func buildSimilarityMatrix(outfits []recommend.Outfit) [][]float64 {
	n := len(outfits)
	garments := make([]map[string]struct{}, n)
	colors := make([]map[string]struct{}, n)
	for i := range outfits {
		garments[i] = make(map[string]struct{}, len(outfits[i].Items))
		colors[i] = make(map[string]struct{}, len(outfits[i].Items))
		for _, g := range outfits[i].Items {
			garments[i][g.ID()] = struct{}{}
			colors[i][string(g.PrimaryColor().Family)] = struct{}{}
		}
	}

	similarities := make([][]float64, n)
	for i := range similarities {
		similarities[i] = make([]float64, n)
	}

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			sim := garmentWeight*jaccard(garments[i], garments[j]) + colorWeight*jaccard(colors[i], colors[j])
			similarities[i][j] = sim
			similarities[j][i] = sim
		}
	}

	return similarities
}

// OutfitSimilarity returns the similarity MMR uses between two outfits.
func OutfitSimilarity(a, b *recommend.Outfit) float64 {
	m := buildSimilarityMatrix([]recommend.Outfit{*a, *b})
	return m[0][1]
}

func jaccard(a, b map[string]struct{}) float64 {
	intersection := 0
	for k := range a {
		if _, ok := b[k]; ok {
			intersection++
		}
	}

	union := len(a) + len(b) - intersection
	if union == 0 {
		return 0
	}
	return float64(intersection) / float64(union)
}

// Ensure MMR implements the interface.
var _ recommend.Reranker = (*MMR)(nil)
