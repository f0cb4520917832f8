// Reelmatch - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/tomtom215/reelmatch/internal/recommend"
)

// Error codes for API responses
const (
	ErrCodeBadRequest         = "BAD_REQUEST"
	ErrCodeInvalidJSON        = "INVALID_JSON"
	ErrCodeValidation         = "VALIDATION_ERROR"
	ErrCodeMovieNotFound      = "MOVIE_NOT_FOUND"
	ErrCodeNotFound           = "NOT_FOUND"
	ErrCodeMethodNotAllowed   = "METHOD_NOT_ALLOWED"
	ErrCodeTooManyRequests    = "TOO_MANY_REQUESTS"
	ErrCodeInternalError      = "INTERNAL_ERROR"
	ErrCodeServiceUnavailable = "SERVICE_UNAVAILABLE"
)

// Client-facing messages.
const (
	msgMovieNotFound = "Movie not found"
	msgNotReady      = "Recommendation index is not ready"
)

// classifyEngineError maps an engine error to a status, code and message.
func classifyEngineError(err error) (status int, code, message string) {
	switch {
	case errors.Is(err, recommend.ErrMovieNotFound):
		return http.StatusNotFound, ErrCodeMovieNotFound, msgMovieNotFound
	case errors.Is(err, recommend.ErrEmptyIndex):
		return http.StatusServiceUnavailable, ErrCodeServiceUnavailable, msgNotReady
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return http.StatusServiceUnavailable, ErrCodeServiceUnavailable, "Request cancelled before completion"
	default:
		return http.StatusInternalServerError, ErrCodeInternalError, "Internal server error"
	}
}
