// Stylist - Wardrobe Outfit Compatibility and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stylist

/*
Package database provides the DuckDB wardrobe store.

The store holds two tables:

  - garments: one row per (user_id, id). The validated GarmentSpec is kept
    as JSON in the spec column; category, primary_color and formality are
    copied out for filtering. A sequence column records insertion order, which
    FetchWardrobe returns and upserts preserve.
  - user_profiles: the stored skin tone, skin sample (hex) and style
    preferences of each user.

# Schema Evolution

Tables are created with CREATE TABLE IF NOT EXISTS, then versioned
migrations in migrations.go are applied once each and recorded in
schema_migrations. Each migration is a single statement.

# Circuit Breaker

BreakerProvider wraps any recommend.DataProvider with a sony/gobreaker
circuit breaker. After MaxFailures consecutive store errors requests fail
fast with gobreaker.ErrOpenState until the timeout elapses. Context
cancellation is not counted as a failure.

	db, err := database.New(&cfg.Database)
	if err != nil {
	    return err
	}
	engine.SetDataProvider(database.NewBreakerProvider(db, database.BreakerConfig{
	    MaxFailures: cfg.Database.BreakerMaxFailures,
	    Timeout:     cfg.Database.BreakerTimeout,
	}))

# In-Memory Mode

Path ":memory:" opens a private database on a single pooled connection;
tests use it.
*/
package database
