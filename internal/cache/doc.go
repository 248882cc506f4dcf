// Stylist - Wardrobe Outfit Compatibility and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stylist

/*
Package cache provides a thread-safe, generic in-memory LRU cache with
per-entry TTL.

The recommendation engine caches formatted results per request. The default
backend is LRU[*recommend.Result], which satisfies recommend.ResultCache
without this package importing the engine.

# Overview

  - O(1) Get, Set and eviction via a hashmap and a doubly-linked list
  - Per-entry TTL with lazy expiration on Get
  - DeletePrefix for per-user invalidation (O(n) scan)
  - CleanupExpired for periodic sweeps by the cache maintenance service
  - Hit and miss counters

# Usage Example

	results := cache.NewLRU[*recommend.Result](1000, 5*time.Minute)
	engine.SetCache(results)

	// After a wardrobe change:
	results.DeletePrefix("rec:user-42|")

# Expiration

An entry set with ttl <= 0 uses the cache's default TTL. Expired entries are
removed on access or by CleanupExpired; until then they count toward Len and
may be evicted by capacity pressure before their TTL.

# Thread Safety

All methods are safe for concurrent use. Get takes the write lock because it
reorders the list.
*/
package cache
