// Stylist - Wardrobe Outfit Compatibility and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stylist

package ingest

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"

	"github.com/tomtom215/stylist/internal/config"
	"github.com/tomtom215/stylist/internal/logging"
)

// ErrNotRunning is returned by Publish before the router is up.
var ErrNotRunning = errors.New("ingestion service is not running")

// Service runs the ingestion router. It implements suture.Service: Serve
// builds the transport, runs the router until ctx is cancelled and tears
// everything down, so a restart starts from a clean connection.
type Service struct {
	cfg      config.NATSConfig
	handlers *Handlers
	logger   watermill.LoggerAdapter
	events   *logging.EventLogger

	mu      sync.RWMutex
	pubsub  *PubSub
	running chan struct{}
}

// NewService creates the ingestion service.
func NewService(cfg *config.NATSConfig, applier *Applier) *Service {
	events := logging.NewEventLogger()
	return &Service{
		cfg:      *cfg,
		handlers: NewHandlers(applier, cfg.GarmentTopic, cfg.ProfileTopic, cfg.RouterThrottlePerSecond, events),
		logger:   watermill.NewSlogLogger(logging.NewSlogLoggerFor("watermill")),
		events:   events,
		running:  make(chan struct{}),
	}
}

// Serve implements suture.Service.
func (s *Service) Serve(ctx context.Context) error {
	var embedded *EmbeddedServer
	url := s.cfg.URL

	if s.cfg.Enabled && s.cfg.EmbeddedServer {
		var err error
		embedded, err = NewEmbeddedServer(&s.cfg)
		if err != nil {
			return fmt.Errorf("start embedded NATS: %w", err)
		}
		defer embedded.Shutdown()
		url = embedded.ClientURL()
	}

	ps, err := s.openPubSub(ctx, url)
	if err != nil {
		return err
	}
	defer func() {
		s.setPubSub(nil)
		if err := ps.Close(); err != nil {
			logging.Warn().Err(err).Msg("Failed to close ingestion transport")
		}
	}()

	router, err := NewRouter(RouterConfigFrom(&s.cfg), ps.Publisher, s.logger)
	if err != nil {
		return err
	}
	router.AddConsumer(GarmentHandlerName, s.cfg.GarmentTopic, ps.Subscriber, s.handlers.HandleGarment)
	router.AddConsumer(ProfileHandlerName, s.cfg.ProfileTopic, ps.Subscriber, s.handlers.HandleProfile)
	s.events.LogSubscriptionStarted(s.cfg.GarmentTopic, s.cfg.QueueGroup)
	s.events.LogSubscriptionStarted(s.cfg.ProfileTopic, s.cfg.QueueGroup)

	go func() {
		select {
		case <-router.Running():
			s.setPubSub(ps)
			s.events.LogRouterStarted(ps.Backend)
		case <-ctx.Done():
		}
	}()

	err = router.Run(ctx)
	s.events.LogRouterStopped()
	if ctx.Err() != nil {
		return ctx.Err()
	}
	return err
}

func (s *Service) openPubSub(ctx context.Context, url string) (*PubSub, error) {
	if !s.cfg.Enabled {
		return NewMemoryPubSub(s.logger), nil
	}
	return NewJetStreamPubSub(ctx, url, &s.cfg, s.logger)
}

func (s *Service) setPubSub(ps *PubSub) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pubsub = ps
	if ps != nil {
		select {
		case <-s.running:
		default:
			close(s.running)
		}
	} else {
		s.running = make(chan struct{})
	}
}

// Running returns a channel closed once the router is subscribed.
func (s *Service) Running() <-chan struct{} {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.running
}

// Backend returns the active transport name, or "" when stopped.
func (s *Service) Backend() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.pubsub == nil {
		return ""
	}
	return s.pubsub.Backend
}

// Publish sends payload to topic on the active transport.
func (s *Service) Publish(topic string, payload []byte) error {
	s.mu.RLock()
	ps := s.pubsub
	s.mu.RUnlock()
	if ps == nil {
		return ErrNotRunning
	}

	msg := message.NewMessage(watermill.NewUUID(), payload)
	msg.Metadata.Set(CorrelationIDHeader, logging.GenerateCorrelationID())
	return ps.Publisher.Publish(topic, msg)
}

// String implements fmt.Stringer for suture logging.
func (s *Service) String() string {
	return "ingest-router"
}
