// Stylist - Wardrobe Outfit Compatibility and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stylist

package ingest

import (
	"context"
	"errors"
	"time"

	"github.com/ThreeDotsLabs/watermill/message"
	"golang.org/x/time/rate"

	"github.com/tomtom215/stylist/internal/logging"
	"github.com/tomtom215/stylist/internal/metrics"
)

// CorrelationIDHeader is the message metadata key carrying a correlation ID.
// Messages without one get a generated ID.
const CorrelationIDHeader = "correlation_id"

// Handlers holds the Watermill handler functions for both topics.
type Handlers struct {
	applier      *Applier
	limiter      *rate.Limiter
	events       *logging.EventLogger
	garmentTopic string
	profileTopic string
}

// NewHandlers creates the topic handlers. perSecond <= 0 disables the rate
// limit.
func NewHandlers(applier *Applier, garmentTopic, profileTopic string, perSecond int, events *logging.EventLogger) *Handlers {
	if events == nil {
		events = logging.NewEventLogger()
	}
	h := &Handlers{
		applier:      applier,
		events:       events,
		garmentTopic: garmentTopic,
		profileTopic: profileTopic,
	}
	if perSecond > 0 {
		h.limiter = rate.NewLimiter(rate.Limit(perSecond), perSecond)
	}
	return h
}

// HandleGarment consumes one garment topic message.
func (h *Handlers) HandleGarment(msg *message.Message) error {
	return h.handle(msg, h.garmentTopic, func(ctx context.Context, payload []byte) (string, error) {
		raw, err := decodeGarment(payload)
		if err != nil {
			return "", err
		}
		g, err := h.applier.ApplyGarment(ctx, raw)
		if err != nil {
			return raw.UserID, err
		}
		return g.UserID(), nil
	})
}

// HandleProfile consumes one profile topic message.
func (h *Handlers) HandleProfile(msg *message.Message) error {
	return h.handle(msg, h.profileTopic, func(ctx context.Context, payload []byte) (string, error) {
		u, err := decodeProfile(payload)
		if err != nil {
			return "", err
		}
		p, err := h.applier.ApplyProfile(ctx, u)
		if err != nil {
			return u.UserID, err
		}
		return p.UserID, nil
	})
}

// handle wraps apply with rate limiting, logging and metrics. Invalid
// payloads return nil so the router acknowledges them.
func (h *Handlers) handle(msg *message.Message, topic string, apply func(context.Context, []byte) (string, error)) error {
	start := time.Now()

	correlationID := msg.Metadata.Get(CorrelationIDHeader)
	if correlationID == "" {
		correlationID = logging.GenerateCorrelationID()
	}
	ctx := logging.ContextWithCorrelationID(msg.Context(), correlationID)

	if h.limiter != nil {
		if err := h.limiter.Wait(ctx); err != nil {
			return err
		}
	}

	userID, err := apply(ctx, msg.Payload)
	switch {
	case err == nil:
		metrics.RecordIngestMessage(topic, metrics.IngestProcessed, time.Since(start))
		h.events.LogMessageProcessed(ctx, topic, msg.UUID, userID, time.Since(start))
		return nil
	case errors.Is(err, ErrInvalidPayload):
		metrics.RecordIngestMessage(topic, metrics.IngestInvalid, time.Since(start))
		h.events.LogMessageRejected(ctx, topic, msg.UUID, err)
		return nil
	default:
		metrics.RecordIngestMessage(topic, metrics.IngestFailed, time.Since(start))
		h.events.LogMessageFailed(ctx, topic, msg.UUID, err)
		return err
	}
}
