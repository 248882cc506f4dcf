// Stylist - Wardrobe Outfit Compatibility and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stylist

package storage

import (
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/dgraph-io/badger/v4/options"
	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/tomtom215/stylist/internal/metrics"
	"github.com/tomtom215/stylist/internal/recommend"
)

const (
	// DefaultGCRatio is the value-log discard ratio used by CollectGarbage.
	DefaultGCRatio = 0.5

	metricsName = "badger_results"
)

// ErrDirRequired is returned by Open for an on-disk store without a directory.
var ErrDirRequired = errors.New("badger directory is required unless in-memory")

// Options configures the badger store behind BadgerCache.
type Options struct {
	// Dir is the database directory. Ignored when InMemory is set.
	Dir string

	// InMemory keeps everything in RAM. Used by tests.
	InMemory bool

	// SyncWrites fsyncs every write. Off by default; a lost cache entry is
	// recomputed.
	SyncWrites bool

	// Compression enables Snappy block compression.
	Compression bool
}

// Open opens (or creates) the badger database described by opts.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func Open(opts Options, logger zerolog.Logger) (*badger.DB, error) {
	if !opts.InMemory && opts.Dir == "" {
		return nil, ErrDirRequired
	}

	bopts := badger.DefaultOptions(opts.Dir)
	if opts.InMemory {
		bopts = badger.DefaultOptions("").WithInMemory(true)
	}
	bopts.SyncWrites = opts.SyncWrites
	if opts.Compression {
		bopts.Compression = options.Snappy
	}
	bopts.Logger = &badgerLogger{logger: logger.With().Str("component", "badger").Logger()}

	db, err := badger.Open(bopts)
	if err != nil {
		return nil, fmt.Errorf("open BadgerDB: %w", err)
	}

	logger.Info().
		Str("dir", opts.Dir).
		Bool("in_memory", opts.InMemory).
		Bool("compression", opts.Compression).
		Msg("result cache store opened")
	return db, nil
}

// BadgerCache is a durable recommend.ResultCache.
type BadgerCache struct {
	db     *badger.DB
	logger zerolog.Logger

	hits   atomic.Int64
	misses atomic.Int64
}

// NewBadgerCache wraps an open badger database.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewBadgerCache(db *badger.DB, logger zerolog.Logger) *BadgerCache {
	return &BadgerCache{
		db:     db,
		logger: logger.With().Str("component", "result_cache").Logger(),
	}
}

// Get returns the cached result for key. Read and decode failures are logged
// and reported as a miss.
func (c *BadgerCache) Get(key string) (*recommend.Result, bool) {
	var res recommend.Result

	err := c.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &res)
		})
	})

	if errors.Is(err, badger.ErrKeyNotFound) {
		c.misses.Add(1)
		metrics.RecordCacheLookup(metricsName, false)
		return nil, false
	}
	if err != nil {
		c.misses.Add(1)
		metrics.RecordCacheLookup(metricsName, false)
		c.logger.Warn().Err(err).Str("key", key).Msg("cache read failed")
		return nil, false
	}

	c.hits.Add(1)
	metrics.RecordCacheLookup(metricsName, true)
	return &res, true
}

// Set stores r under key. A ttl <= 0 stores the entry without expiry.
func (c *BadgerCache) Set(key string, r *recommend.Result, ttl time.Duration) {
	data, err := json.Marshal(r)
	if err != nil {
		c.logger.Warn().Err(err).Str("key", key).Msg("cache encode failed")
		return
	}

	err = c.db.Update(func(txn *badger.Txn) error {
		e := badger.NewEntry([]byte(key), data)
		if ttl > 0 {
			e = e.WithTTL(ttl)
		}
		return txn.SetEntry(e)
	})
	if err != nil {
		c.logger.Warn().Err(err).Str("key", key).Msg("cache write failed")
	}
}

// DeletePrefix removes every key beginning with prefix and returns the
// number of keys removed.
func (c *BadgerCache) DeletePrefix(prefix string) int {
	var keys [][]byte

	err := c.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()

		p := []byte(prefix)
		for it.Seek(p); it.ValidForPrefix(p); it.Next() {
			keys = append(keys, it.Item().KeyCopy(nil))
		}
		return nil
	})
	if err != nil {
		c.logger.Warn().Err(err).Str("prefix", prefix).Msg("cache scan failed")
		return 0
	}

	deleted := 0
	for _, k := range keys {
		err := c.db.Update(func(txn *badger.Txn) error {
			return txn.Delete(k)
		})
		if err != nil {
			c.logger.Warn().Err(err).Str("key", string(k)).Msg("cache delete failed")
			continue
		}
		deleted++
	}
	metrics.RecordCacheEvictions(metricsName, "invalidated", deleted)
	return deleted
}

// Len returns the number of live entries.
func (c *BadgerCache) Len() int {
	n := 0
	//nolint:errcheck // View only fails on a closed DB; 0 is the right answer then
	c.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			n++
		}
		return nil
	})
	return n
}

// Stats returns hit and miss counts since creation.
func (c *BadgerCache) Stats() (hits, misses int64) {
	return c.hits.Load(), c.misses.Load()
}

// CollectGarbage runs value-log GC until badger reports nothing to rewrite.
// In-memory stores have no value log and return immediately. The entry
// gauge is refreshed on every call.
func (c *BadgerCache) CollectGarbage(ratio float64) error {
	metrics.SetCacheSize(metricsName, c.Len())

	if c.db.Opts().InMemory {
		return nil
	}
	if ratio <= 0 || ratio >= 1 {
		ratio = DefaultGCRatio
	}

	for {
		err := c.db.RunValueLogGC(ratio)
		if errors.Is(err, badger.ErrNoRewrite) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("run value log GC: %w", err)
		}
	}
}

// badgerLogger routes badger's logging through zerolog. Badger is chatty at
// info level, so info and debug are both logged at debug.
type badgerLogger struct {
	logger zerolog.Logger
}

func (l *badgerLogger) Errorf(format string, args ...interface{}) {
	l.logger.Error().Msgf(format, args...)
}

func (l *badgerLogger) Warningf(format string, args ...interface{}) {
	l.logger.Warn().Msgf(format, args...)
}

func (l *badgerLogger) Infof(format string, args ...interface{}) {
	l.logger.Debug().Msgf(format, args...)
}

func (l *badgerLogger) Debugf(format string, args ...interface{}) {
	l.logger.Debug().Msgf(format, args...)
}

// Ensure BadgerCache implements the interface.
var _ recommend.ResultCache = (*BadgerCache)(nil)
