// Stylist - Wardrobe Outfit Compatibility and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stylist

// Package storage provides a durable result cache for the recommendation
// engine backed by BadgerDB.
//
// BadgerCache implements recommend.ResultCache. Results are stored as JSON
// under their cache key with a native badger TTL, so expired entries vanish
// without a sweep. Keys share the engine's "rec:{user}|" prefix, which lets
// DeletePrefix drop every entry of a user after a wardrobe change.
//
// # When to Use
//
// The in-memory cache.LRU is the default. BadgerCache is selected with
// cache.backend=badger and keeps results across restarts, which matters when
// wardrobes are large and requests are bursty after deploys.
//
// # Usage
//
//	db, err := storage.Open(storage.Options{Dir: "/data/cache"}, logger)
//	if err != nil {
//	    return err
//	}
//	defer db.Close()
//
//	engine.SetCache(storage.NewBadgerCache(db, logger))
//
// # Maintenance
//
// Badger reclaims value-log space only on request. CollectGarbage runs one
// round of value-log GC and is called periodically by the cache maintenance
// service in internal/supervisor/services.
//
// # Thread Safety
//
// All operations use badger transactions and are safe for concurrent use.
package storage
