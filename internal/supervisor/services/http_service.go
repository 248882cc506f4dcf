// Stylist - Wardrobe Outfit Compatibility and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stylist

package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

// HTTPServer is the lifecycle surface of *http.Server.
type HTTPServer interface {
	ListenAndServe() error
	Shutdown(ctx context.Context) error
	Close() error
}

// HTTPServerService runs the recommendation API under suture.
//
// On cancellation the server drains in-flight requests for up to
// shutdownTimeout. Connections still open after that are closed, so a slow
// client cannot hold the process past its stop deadline.
//
//	server := &http.Server{Addr: ":8080", Handler: router.Setup()}
//	tree.AddAPIService(services.NewHTTPServerService(server, 10*time.Second, logger))
type HTTPServerService struct {
	server          HTTPServer
	addr            string
	shutdownTimeout time.Duration
	logger          zerolog.Logger
}

// NewHTTPServerService wraps server. A non-positive shutdownTimeout defaults
// to 10 seconds.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewHTTPServerService(server HTTPServer, shutdownTimeout time.Duration, logger zerolog.Logger) *HTTPServerService {
	if shutdownTimeout <= 0 {
		shutdownTimeout = 10 * time.Second
	}
	var addr string
	if s, ok := server.(*http.Server); ok {
		addr = s.Addr
	}
	return &HTTPServerService{
		server:          server,
		addr:            addr,
		shutdownTimeout: shutdownTimeout,
		logger:          logger.With().Str("service", "http-server").Str("addr", addr).Logger(),
	}
}

// Serve implements suture.Service. It returns ctx.Err() after a clean drain
// and the listener error when the server stops on its own.
func (h *HTTPServerService) Serve(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- h.server.ListenAndServe()
	}()
	h.logger.Info().Msg("http server listening")

	select {
	case err := <-errCh:
		if err == nil || errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("http server failed: %w", err)
	case <-ctx.Done():
	}

	start := time.Now()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), h.shutdownTimeout)
	defer cancel()

	if err := h.server.Shutdown(shutdownCtx); err != nil {
		h.logger.Warn().
			Err(err).
			Dur("timeout", h.shutdownTimeout).
			Msg("drain incomplete, closing remaining connections")
		if cerr := h.server.Close(); cerr != nil {
			err = errors.Join(err, cerr)
		}
		<-errCh
		return fmt.Errorf("http server shutdown failed: %w", err)
	}

	<-errCh
	h.logger.Info().
		Dur("drain", time.Since(start)).
		Msg("http server stopped")
	return ctx.Err()
}

// String implements fmt.Stringer for suture's log messages.
func (h *HTTPServerService) String() string {
	if h.addr == "" {
		return "http-server"
	}
	return "http-server(" + h.addr + ")"
}
