// Reelmatch - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package api

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/goccy/go-json"

	"github.com/tomtom215/reelmatch/internal/logging"
)

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	// Detail is a human-readable message.
	Detail string `json:"detail" example:"Movie not found"`

	// Code is a machine-readable error code.
	Code string `json:"code" example:"MOVIE_NOT_FOUND"`

	// Details holds extra context such as the fields that failed validation.
	Details interface{} `json:"details,omitempty"`

	// RequestID is the X-Request-ID of the failed request.
	RequestID string `json:"request_id,omitempty"`
}

// sanitizeLogValue removes control characters from strings to prevent log injection attacks.
// Newlines, carriage returns and other control characters could otherwise
// forge log entries.
func sanitizeLogValue(s string) string {
	var result strings.Builder
	result.Grow(len(s))
	for _, r := range s {
		if r < 0x20 || r == 0x7F {
			fmt.Fprintf(&result, "\\x%02x", r)
		} else {
			result.WriteRune(r)
		}
	}
	return result.String()
}

// respondJSON sends a JSON response with proper headers
func respondJSON(w http.ResponseWriter, status int, body interface{}) {
	data, err := json.Marshal(body)
	if err != nil {
		logging.Error().Err(err).Msg("Failed to marshal JSON response")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	if _, err := w.Write(data); err != nil {
		logging.Error().Err(err).Msg("Failed to write JSON response")
	}
}

// respondError sends an ErrorResponse. A non-nil err is logged, sanitized,
// against the request's logger; it is never sent to the client.
func respondError(w http.ResponseWriter, r *http.Request, status int, code, detail string, err error) {
	respondErrorDetails(w, r, status, code, detail, nil, err)
}

func respondErrorDetails(w http.ResponseWriter, r *http.Request, status int, code, detail string, details interface{}, err error) {
	if err != nil {
		event := logging.Ctx(r.Context()).Warn()
		if status >= http.StatusInternalServerError {
			event = logging.Ctx(r.Context()).Error()
		}
		event.
			Str("code", code).
			Str("path", r.URL.Path).
			Str("error", sanitizeLogValue(err.Error())).
			Msg("API Error")
	}

	respondJSON(w, status, ErrorResponse{
		Detail:    detail,
		Code:      code,
		Details:   details,
		RequestID: logging.RequestIDFromContext(r.Context()),
	})
}
