// Stylist - Wardrobe Outfit Compatibility and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stylist

// Package logging provides the zerolog-based structured logger used by every
// stylist package.
//
// # Quick Start
//
//	logging.Init(logging.Config{Level: "info", Format: "json", Timestamp: true})
//
//	logging.Info().Str("user_id", userID).Int("outfits", n).Msg("recommendations served")
//	logging.Ctx(r.Context()).Warn().Err(err).Msg("profile lookup failed")
//
// Configuration comes from the logging section of internal/config
// (LOG_LEVEL, LOG_FORMAT, LOG_CALLER).
//
// # Context
//
// Request, correlation and user IDs travel in context.Context. Ctx and CtxWith
// copy whichever are present onto the logger. The HTTP request ID middleware
// sets the request ID; the ingestion router sets a correlation ID per message.
//
// # Adapters
//
// SlogHandler lets slog consumers (sutureslog in the supervisor tree,
// watermill through watermill.NewSlogLogger) write through zerolog.
// EventLogger carries the message lifecycle helpers of the ingestion router.
//
// # Testing
//
//	var buf bytes.Buffer
//	logger := logging.NewTestLogger(&buf)
package logging
