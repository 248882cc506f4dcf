// Stylist - Wardrobe Outfit Compatibility and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stylist

package logging

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

// EventLogger provides logging for the ingestion pipeline, with helpers for
// the message lifecycle of the garment and profile topics.
type EventLogger struct {
	logger zerolog.Logger
}

// NewEventLogger creates a logger tagged with component=ingest.
func NewEventLogger() *EventLogger {
	return &EventLogger{
		logger: With().Str("component", "ingest").Logger(),
	}
}

// NewEventLoggerWithLogger creates an EventLogger with a custom logger.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value (copy-on-write semantics)
func NewEventLoggerWithLogger(logger zerolog.Logger) *EventLogger {
	return &EventLogger{
		logger: logger.With().Str("component", "ingest").Logger(),
	}
}

// Info logs an info message with alternating key/value fields.
func (e *EventLogger) Info(msg string, fields ...interface{}) {
	addFieldPairs(e.logger.Info(), fields).Msg(msg)
}

// DebugContext logs a debug message with the correlation ID from ctx.
func (e *EventLogger) DebugContext(ctx context.Context, msg string, fields ...interface{}) {
	logger := e.loggerWithContext(ctx)
	addFieldPairs(logger.Debug(), fields).Msg(msg)
}

func (e *EventLogger) loggerWithContext(ctx context.Context) zerolog.Logger {
	logCtx := e.logger.With()

	if correlationID := CorrelationIDFromContext(ctx); correlationID != "" {
		logCtx = logCtx.Str("correlation_id", correlationID)
	}
	if requestID := RequestIDFromContext(ctx); requestID != "" {
		logCtx = logCtx.Str("request_id", requestID)
	}

	return logCtx.Logger()
}

// LogMessageProcessed logs a message that was applied to the store.
func (e *EventLogger) LogMessageProcessed(ctx context.Context, topic, messageID, userID string, d time.Duration) {
	e.DebugContext(ctx, "message processed",
		"topic", topic,
		"message_id", messageID,
		"user_id", userID,
		"duration_ms", d.Milliseconds(),
	)
}

// LogMessageRejected logs a payload that can never be applied. The message
// is acknowledged and dropped.
func (e *EventLogger) LogMessageRejected(ctx context.Context, topic, messageID string, err error) {
	logger := e.loggerWithContext(ctx)
	logger.Warn().
		Str("topic", topic).
		Str("message_id", messageID).
		Err(err).
		Msg("message rejected")
}

// LogMessageFailed logs a transient failure; the router retries the message
// and routes it to the poison queue once retries run out.
func (e *EventLogger) LogMessageFailed(ctx context.Context, topic, messageID string, err error) {
	logger := e.loggerWithContext(ctx)
	logger.Error().
		Str("topic", topic).
		Str("message_id", messageID).
		Err(err).
		Msg("message processing failed")
}

// LogSubscriptionStarted logs a handler subscription.
func (e *EventLogger) LogSubscriptionStarted(topic, queue string) {
	e.Info("subscription started", "topic", topic, "queue", queue)
}

// LogRouterStarted logs router startup.
func (e *EventLogger) LogRouterStarted(backend string) {
	e.Info("router started", "backend", backend)
}

// LogRouterStopped logs router shutdown.
func (e *EventLogger) LogRouterStopped() {
	e.Info("router stopped")
}

// addFieldPairs adds alternating key/value pairs to a zerolog event. Pairs
// with a non-string key are skipped.
func addFieldPairs(e *zerolog.Event, fields []interface{}) *zerolog.Event {
	for i := 0; i+1 < len(fields); i += 2 {
		key, ok := fields[i].(string)
		if !ok {
			continue
		}
		e = e.Interface(key, fields[i+1])
	}
	return e
}
