// Stylist - Wardrobe Outfit Compatibility and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stylist

package storage

import (
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/stylist/internal/recommend"
	"github.com/tomtom215/stylist/internal/recommend/scoring"
)

func newTestCache(t *testing.T) *BadgerCache {
	t.Helper()

	db, err := Open(Options{InMemory: true}, zerolog.Nop())
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() { db.Close() })

	return NewBadgerCache(db, zerolog.Nop())
}

func sampleResult(requestID string) *recommend.Result {
	return &recommend.Result{
		Success: true,
		Recommendations: []recommend.Recommendation{{
			OutfitID:            "outfit_1",
			Rank:                1,
			ConfidenceScore:     0.95,
			RecommendationLevel: scoring.LevelExcellent,
			StylingTips:         []string{"Roll up sleeves or cuffs for a relaxed look"},
		}},
		Metadata: recommend.ResultMetadata{
			RequestID:           requestID,
			GeneratedAt:         time.Date(2026, 7, 14, 18, 30, 0, 0, time.UTC),
			AlgorithmVersion:    recommend.AlgorithmVersion,
			CandidatesEvaluated: 12,
		},
	}
}

func TestOpen_RequiresDir(t *testing.T) {
	_, err := Open(Options{}, zerolog.Nop())
	if !errors.Is(err, ErrDirRequired) {
		t.Errorf("Open() error = %v, want ErrDirRequired", err)
	}
}

func TestOpen_OnDisk(t *testing.T) {
	dir := t.TempDir()

	db, err := Open(Options{Dir: dir, Compression: true}, zerolog.Nop())
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	c := NewBadgerCache(db, zerolog.Nop())
	c.Set("rec:u1|casual", sampleResult("r1"), time.Minute)
	if err := db.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	db, err = Open(Options{Dir: dir, Compression: true}, zerolog.Nop())
	if err != nil {
		t.Fatalf("reopen error = %v", err)
	}
	defer db.Close()

	got, ok := NewBadgerCache(db, zerolog.Nop()).Get("rec:u1|casual")
	if !ok || got.Metadata.RequestID != "r1" {
		t.Errorf("entry lost across reopen: %v %+v", ok, got)
	}
}

func TestBadgerCache_SetGet(t *testing.T) {
	c := newTestCache(t)

	if _, ok := c.Get("rec:u1|casual"); ok {
		t.Fatal("Get() on empty cache reported a hit")
	}

	want := sampleResult("r1")
	c.Set("rec:u1|casual", want, time.Minute)

	got, ok := c.Get("rec:u1|casual")
	if !ok {
		t.Fatal("Get() missed a stored key")
	}
	if got == want {
		t.Error("Get() returned the stored pointer, want a decoded copy")
	}
	if !got.Success || len(got.Recommendations) != 1 {
		t.Fatalf("Result = %+v", got)
	}
	rec := got.Recommendations[0]
	if rec.OutfitID != "outfit_1" || rec.RecommendationLevel != scoring.LevelExcellent || rec.ConfidenceScore != 0.95 {
		t.Errorf("Recommendation = %+v", rec)
	}
	if !got.Metadata.GeneratedAt.Equal(want.Metadata.GeneratedAt) || got.Metadata.CandidatesEvaluated != 12 {
		t.Errorf("Metadata = %+v", got.Metadata)
	}

	hits, misses := c.Stats()
	if hits != 1 || misses != 1 {
		t.Errorf("Stats() = %d/%d, want 1/1", hits, misses)
	}
}

func TestBadgerCache_Overwrite(t *testing.T) {
	c := newTestCache(t)

	c.Set("k", sampleResult("first"), 0)
	c.Set("k", sampleResult("second"), 0)

	got, ok := c.Get("k")
	if !ok || got.Metadata.RequestID != "second" {
		t.Errorf("Get() = %+v, want second write", got)
	}
	if c.Len() != 1 {
		t.Errorf("Len() = %d, want 1", c.Len())
	}
}

func TestBadgerCache_DeletePrefix(t *testing.T) {
	c := newTestCache(t)

	keys := []string{
		"rec:u1|casual|mild",
		"rec:u1|formal|cold",
		"rec:u10|casual|mild",
		"rec:u2|casual|mild",
	}
	for _, k := range keys {
		c.Set(k, sampleResult(k), time.Minute)
	}

	if n := c.DeletePrefix("rec:u1|"); n != 2 {
		t.Errorf("DeletePrefix() = %d, want 2", n)
	}
	if _, ok := c.Get("rec:u1|casual|mild"); ok {
		t.Error("u1 entry survived DeletePrefix")
	}
	for _, k := range keys[2:] {
		if _, ok := c.Get(k); !ok {
			t.Errorf("%s removed by another user's prefix", k)
		}
	}

	if n := c.DeletePrefix("rec:nobody|"); n != 0 {
		t.Errorf("DeletePrefix() on absent prefix = %d", n)
	}
}

func TestBadgerCache_TTL(t *testing.T) {
	if testing.Short() {
		t.Skip("waits for badger's second-granularity expiry")
	}
	c := newTestCache(t)

	c.Set("short", sampleResult("short"), time.Second)
	c.Set("long", sampleResult("long"), time.Hour)

	time.Sleep(2100 * time.Millisecond)

	if _, ok := c.Get("short"); ok {
		t.Error("expired entry still readable")
	}
	if _, ok := c.Get("long"); !ok {
		t.Error("unexpired entry missing")
	}
}

func TestBadgerCache_CollectGarbage(t *testing.T) {
	c := newTestCache(t)
	if err := c.CollectGarbage(0.5); err != nil {
		t.Errorf("CollectGarbage() in-memory error = %v", err)
	}

	db, err := Open(Options{Dir: t.TempDir()}, zerolog.Nop())
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer db.Close()

	disk := NewBadgerCache(db, zerolog.Nop())
	disk.Set("k", sampleResult("k"), time.Minute)
	if err := disk.CollectGarbage(0); err != nil {
		t.Errorf("CollectGarbage() error = %v", err)
	}
}
