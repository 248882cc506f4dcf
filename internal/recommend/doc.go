// Stylist - Wardrobe Outfit Compatibility and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stylist

// Package recommend assembles ranked outfit recommendations from a user's
// wardrobe.
//
// # Architecture
//
// A request flows through four stages:
//
//   - Fetch: wardrobe and profile are read once from the DataProvider. The
//     snapshot is never re-queried during the request.
//   - Generate: every top/bottom pair is scored by the scoring.PairingEngine.
//     Pairs at or below MinPairScore are pruned, the best shoe is attached and
//     averaged into the score, and the best accessory is attached when it
//     clears AccessoryThreshold.
//   - Rank: candidates are stable-sorted by score with the enumeration index
//     as tie-break, reranked, truncated, optionally narrowed to outfits
//     containing one garment, and numbered outfit_1..outfit_N.
//   - Format: styling analysis, tips and color coordination are added.
//
// # Determinism
//
// Pair scoring may run on several goroutines. Results are written into
// per-index slots so the candidate pool, and therefore the ranking, is the
// same as a sequential run.
//
// # Usage
//
//	engine, err := recommend.NewEngine(recommend.DefaultConfig(), logger)
//	engine.SetDataProvider(db)
//	engine.SetCache(cache.NewLRU[*recommend.Result](1000, 5*time.Minute))
//
//	res, err := engine.Recommend(ctx, recommend.Request{
//	    UserID:   userID,
//	    Occasion: wardrobe.OccasionWork,
//	})
//
// # Thread Safety
//
// The engine is safe for concurrent use. Scoring tables are immutable and the
// only shared mutable state is the injected ResultCache.
package recommend
