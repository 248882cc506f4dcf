// Stylist - Wardrobe Outfit Compatibility and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stylist

package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/tomtom215/stylist/internal/logging"
	"github.com/tomtom215/stylist/internal/metrics"
	"github.com/tomtom215/stylist/internal/recommend"
	"github.com/tomtom215/stylist/internal/wardrobe"
)

// BreakerConfig tunes the wardrobe store circuit breaker.
type BreakerConfig struct {
	// Name labels metrics and logs.
	Name string

	// MaxFailures is the number of consecutive failures that opens the circuit.
	MaxFailures uint32

	// Timeout is how long the circuit stays open before a half-open trial request.
	Timeout time.Duration
}

// DefaultBreakerConfig returns the breaker settings used for the wardrobe store.
func DefaultBreakerConfig() BreakerConfig {
	return BreakerConfig{
		Name:        "wardrobe-store",
		MaxFailures: 5,
		Timeout:     30 * time.Second,
	}
}

// BreakerProvider wraps a recommend.DataProvider with a circuit breaker so a
// failing store is shed quickly instead of holding every request until its
// deadline.
//
// Caller cancellation and deadline errors do not count as store failures.
type BreakerProvider struct {
	next recommend.DataProvider
	cb   *gobreaker.CircuitBreaker[interface{}]
	name string
}

// NewBreakerProvider wraps next.
func NewBreakerProvider(next recommend.DataProvider, cfg BreakerConfig) *BreakerProvider {
	if cfg.Name == "" {
		cfg.Name = DefaultBreakerConfig().Name
	}
	if cfg.MaxFailures == 0 {
		cfg.MaxFailures = DefaultBreakerConfig().MaxFailures
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultBreakerConfig().Timeout
	}

	metrics.CircuitBreakerState.WithLabelValues(cfg.Name).Set(0) // 0 = closed
	metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(cfg.Name).Set(0)

	maxFailures := cfg.MaxFailures
	cb := gobreaker.NewCircuitBreaker[interface{}](gobreaker.Settings{
		Name:        cfg.Name,
		MaxRequests: 3,           // Trial requests allowed while half-open
		Interval:    time.Minute, // Reset counts after 1 minute while closed
		Timeout:     cfg.Timeout,

		ReadyToTrip: func(counts gobreaker.Counts) bool {
			shouldTrip := counts.ConsecutiveFailures >= maxFailures
			if shouldTrip {
				logging.Warn().Str("breaker", cfg.Name).Uint32("consecutive_failures", counts.ConsecutiveFailures).Msg("[CIRCUIT BREAKER] Opening circuit")
			}
			return shouldTrip
		},

		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
		},

		OnStateChange: func(name string, from, to gobreaker.State) {
			fromStr := stateToString(from)
			toStr := stateToString(to)

			logging.Info().Str("breaker", name).Str("from", fromStr).Str("to", toStr).Msg("[CIRCUIT BREAKER] State transition")

			metrics.CircuitBreakerState.WithLabelValues(name).Set(stateToFloat(to))
			metrics.CircuitBreakerTransitions.WithLabelValues(name, fromStr, toStr).Inc()

			if to == gobreaker.StateClosed {
				metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(name).Set(0)
			}
		},
	})

	return &BreakerProvider{next: next, cb: cb, name: cfg.Name}
}

// execute runs fn through the breaker and records the outcome.
func (bp *BreakerProvider) execute(fn func() (interface{}, error)) (interface{}, error) {
	result, err := bp.cb.Execute(fn)

	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			metrics.CircuitBreakerRequests.WithLabelValues(bp.name, "rejected").Inc()
			logging.Warn().Str("breaker", bp.name).Err(err).Msg("[CIRCUIT BREAKER] Request rejected")
		} else {
			metrics.CircuitBreakerRequests.WithLabelValues(bp.name, "failure").Inc()
			counts := bp.cb.Counts()
			metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(bp.name).Set(float64(counts.ConsecutiveFailures))
		}
		return nil, err
	}

	metrics.CircuitBreakerRequests.WithLabelValues(bp.name, "success").Inc()
	metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(bp.name).Set(0)

	return result, nil
}

// castResult converts the untyped breaker result back to *T.
func castResult[T any](result interface{}, err error) (*T, error) {
	if err != nil {
		return nil, err
	}
	if result == nil {
		return nil, nil
	}
	typed, ok := result.(*T)
	if !ok {
		return nil, fmt.Errorf("circuit breaker: unexpected result type %T", result)
	}
	return typed, nil
}

// FetchWardrobe implements recommend.DataProvider.
func (bp *BreakerProvider) FetchWardrobe(ctx context.Context, userID string) ([]wardrobe.Garment, error) {
	garments, err := castResult[[]wardrobe.Garment](bp.execute(func() (interface{}, error) {
		g, err := bp.next.FetchWardrobe(ctx, userID)
		if err != nil {
			return nil, err
		}
		return &g, nil
	}))
	if err != nil || garments == nil {
		return nil, err
	}
	return *garments, nil
}

// FetchUserProfile implements recommend.DataProvider.
func (bp *BreakerProvider) FetchUserProfile(ctx context.Context, userID string) (*wardrobe.UserProfile, error) {
	return castResult[wardrobe.UserProfile](bp.execute(func() (interface{}, error) {
		p, err := bp.next.FetchUserProfile(ctx, userID)
		if err != nil || p == nil {
			return nil, err
		}
		return p, nil
	}))
}

// State returns the current breaker state name.
func (bp *BreakerProvider) State() string {
	return stateToString(bp.cb.State())
}

func stateToFloat(state gobreaker.State) float64 {
	switch state {
	case gobreaker.StateClosed:
		return 0
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return -1
	}
}

func stateToString(state gobreaker.State) string {
	switch state {
	case gobreaker.StateClosed:
		return "closed"
	case gobreaker.StateHalfOpen:
		return "half-open"
	case gobreaker.StateOpen:
		return "open"
	default:
		return "unknown"
	}
}

var (
	_ recommend.DataProvider = (*DB)(nil)
	_ recommend.DataProvider = (*BreakerProvider)(nil)
)
