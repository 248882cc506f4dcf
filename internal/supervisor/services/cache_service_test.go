// Stylist - Wardrobe Outfit Compatibility and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stylist

package services

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/thejerf/suture/v4"
)

var _ suture.Service = (*CacheMaintenanceService)(nil)

// syncBuffer guards a bytes.Buffer shared with the service goroutine.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestNewCacheMaintenanceService_Defaults(t *testing.T) {
	svc := NewCacheMaintenanceService(MaintenanceFunc(func(context.Context) error { return nil }),
		CacheMaintenanceConfig{}, zerolog.Nop())
	if svc.config.Interval != 5*time.Minute || svc.config.Timeout != 5*time.Minute {
		t.Errorf("config = %+v", svc.config)
	}
	if svc.String() != "cache-maintenance" {
		t.Errorf("String() = %q", svc.String())
	}
}

func TestCacheMaintenanceService_Serve(t *testing.T) {
	var runs atomic.Int32
	task := MaintenanceFunc(func(ctx context.Context) error {
		if _, ok := ctx.Deadline(); !ok {
			t.Error("sweep context has no deadline")
		}
		if runs.Add(1) == 1 {
			return errors.New("value log busy")
		}
		return nil
	})

	var logs syncBuffer
	svc := NewCacheMaintenanceService(task, CacheMaintenanceConfig{Interval: 10 * time.Millisecond},
		zerolog.New(&logs))

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() { errCh <- svc.Serve(ctx) }()

	deadline := time.Now().Add(2 * time.Second)
	for runs.Load() < 3 {
		if time.Now().After(deadline) {
			t.Fatalf("task ran %d times, want at least 3", runs.Load())
		}
		time.Sleep(5 * time.Millisecond)
	}
	cancel()

	if err := <-errCh; !errors.Is(err, context.Canceled) {
		t.Errorf("Serve() error = %v, want context.Canceled", err)
	}
	if !strings.Contains(logs.String(), "value log busy") {
		t.Errorf("sweep failure not logged: %s", logs.String())
	}
}
