// Stylist - Wardrobe Outfit Compatibility and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stylist

package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/sony/gobreaker/v2"

	"github.com/tomtom215/stylist/internal/database"
	"github.com/tomtom215/stylist/internal/ingest"
	"github.com/tomtom215/stylist/internal/recommend"
	"github.com/tomtom215/stylist/internal/wardrobe"
)

// Error codes for API responses
const (
	ErrCodeBadRequest         = "BAD_REQUEST"
	ErrCodeNotFound           = "NOT_FOUND"
	ErrCodeNoWardrobe         = "NO_WARDROBE_ITEMS"
	ErrCodeInvalidPayload     = "INVALID_PAYLOAD"
	ErrCodeTooManyRequests    = "TOO_MANY_REQUESTS"
	ErrCodeInternalError      = "INTERNAL_ERROR"
	ErrCodeServiceUnavailable = "SERVICE_UNAVAILABLE"
	ErrCodeTimeout            = "TIMEOUT"
)

// classifyError maps a backend error onto a status code and API error code.
func classifyError(err error) (int, string) {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout, ErrCodeTimeout
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		return http.StatusServiceUnavailable, ErrCodeServiceUnavailable
	case errors.Is(err, database.ErrNotFound), errors.Is(err, recommend.ErrGarmentNotFound):
		return http.StatusNotFound, ErrCodeNotFound
	case errors.Is(err, ingest.ErrInvalidPayload), errors.Is(err, wardrobe.ErrInvalidGarment):
		return http.StatusBadRequest, ErrCodeInvalidPayload
	default:
		return http.StatusInternalServerError, ErrCodeInternalError
	}
}
