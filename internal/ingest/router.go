// Stylist - Wardrobe Outfit Compatibility and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stylist

package ingest

import (
	"context"
	"fmt"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/message/router/middleware"

	"github.com/tomtom215/stylist/internal/config"
)

// Handler names registered on the router.
const (
	GarmentHandlerName = "garment-classified"
	ProfileHandlerName = "profile-updated"
)

// RouterConfig holds the Watermill router settings.
type RouterConfig struct {
	CloseTimeout         time.Duration
	RetryMaxRetries      int
	RetryInitialInterval time.Duration
	RetryMaxInterval     time.Duration
	RetryMultiplier      float64

	// PoisonQueueTopic receives messages that fail after every retry.
	// Empty disables the poison queue.
	PoisonQueueTopic string
}

// RouterConfigFrom maps the nats config section onto RouterConfig.
func RouterConfigFrom(cfg *config.NATSConfig) RouterConfig {
	rc := RouterConfig{
		CloseTimeout:         cfg.RouterCloseTimeout,
		RetryMaxRetries:      cfg.RouterRetryCount,
		RetryInitialInterval: cfg.RouterRetryInitialInterval,
		RetryMaxInterval:     10 * cfg.RouterRetryInitialInterval,
		RetryMultiplier:      2.0,
	}
	if cfg.RouterPoisonQueueEnabled {
		rc.PoisonQueueTopic = cfg.RouterPoisonQueueTopic
	}
	return rc
}

// Router wraps a Watermill router with the ingestion middleware stack.
type Router struct {
	router *message.Router
	logger watermill.LoggerAdapter
}

// NewRouter builds a router. Middleware runs outermost first:
//
//	PoisonQueue -> Retry -> Recoverer -> handler
//
// so a message is retried before it is moved to the poison topic, and a
// panicking handler is retried like any other failure.
func NewRouter(cfg RouterConfig, poisonPub message.Publisher, logger watermill.LoggerAdapter) (*Router, error) {
	if logger == nil {
		logger = watermill.NopLogger{}
	}

	wmRouter, err := message.NewRouter(message.RouterConfig{CloseTimeout: cfg.CloseTimeout}, logger)
	if err != nil {
		return nil, fmt.Errorf("create watermill router: %w", err)
	}

	if poisonPub != nil && cfg.PoisonQueueTopic != "" {
		poison, err := middleware.PoisonQueue(poisonPub, cfg.PoisonQueueTopic)
		if err != nil {
			return nil, fmt.Errorf("create poison queue middleware: %w", err)
		}
		wmRouter.AddMiddleware(poison)
	}

	retry := middleware.Retry{
		MaxRetries:      cfg.RetryMaxRetries,
		InitialInterval: cfg.RetryInitialInterval,
		MaxInterval:     cfg.RetryMaxInterval,
		Multiplier:      cfg.RetryMultiplier,
		Logger:          logger,
	}
	wmRouter.AddMiddleware(retry.Middleware, middleware.Recoverer)

	return &Router{router: wmRouter, logger: logger}, nil
}

// AddConsumer registers a handler that publishes nothing.
func (r *Router) AddConsumer(name, topic string, sub message.Subscriber, fn message.NoPublishHandlerFunc) {
	r.router.AddConsumerHandler(name, topic, sub, fn)
}

// Run blocks until ctx is cancelled or Close is called.
func (r *Router) Run(ctx context.Context) error {
	return r.router.Run(ctx)
}

// Running is closed once every handler is subscribed.
func (r *Router) Running() <-chan struct{} {
	return r.router.Running()
}

// IsRunning reports whether the router is processing messages.
func (r *Router) IsRunning() bool {
	return r.router.IsRunning()
}

// Close stops the router, waiting up to CloseTimeout for in-flight messages.
func (r *Router) Close() error {
	return r.router.Close()
}
