// Stylist - Wardrobe Outfit Compatibility and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stylist

// Package reranking implements post-processing of ranked outfits.
//
// Rerankers run inside recommend.Ranker after the score sort and before
// truncation:
//
//	Generator -> sort by score -> Rerankers -> top k -> anchor filter -> numbering
//
// # Maximal Marginal Relevance
//
// A wardrobe with one excellent shirt tends to produce a top five that all
// contain that shirt. MMR trades a little score for variety:
//
//	MMR = argmax[lambda * score(o) - (1-lambda) * max_similarity(o, selected)]
//
// Outfit similarity is 0.7 times the Jaccard overlap of garment IDs plus 0.3
// times the Jaccard overlap of primary color families.
//
// Lambda guidelines:
//   - 1.0: pure score order, MMR is a no-op
//   - 0.7-0.9: mild variety (recommend.diversity.mmr_lambda defaults to 0.7)
//   - below 0.5: variety dominates and weak outfits can surface
//
// # Usage
//
//	if cfg.Diversity.Enabled {
//	    engine.RegisterReranker(reranking.NewMMR(cfg.Diversity.MMRLambda))
//	}
//
// # Determinism
//
// Ties between equal MMR values keep input order, so a deterministic input
// yields a deterministic output.
//
// # Performance
//
// Time is O(k * n) after an O(n^2) similarity matrix. Input beyond 1000
// outfits is ignored; the engine's MaxResults cap keeps k small.
//
// # Thread Safety
//
// MMR is stateless and safe for concurrent use.
package reranking
