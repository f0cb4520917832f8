// Reelmatch - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package api

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
)

// maxRequestBodyBytes bounds POST bodies. A title query is tiny.
const maxRequestBodyBytes = 16 << 10

// RecommendationRequest is the body of POST /recommendation.
//
// Movie is a pointer so that a missing field (400) is distinguishable from
// an empty string, which is a valid query that matches nothing (404).
type RecommendationRequest struct {
	Movie *string `json:"movie" validate:"required,max=512,nocontrol" example:"Avatar"`
}

// SuggestRequest holds the query parameters of GET /movies/suggest.
type SuggestRequest struct {
	Query string `json:"q" validate:"required,max=512,nocontrol"`
	Limit int    `json:"n" validate:"min=0,max=50"`
}

// errEmptyBody is returned for a POST without a body.
var errEmptyBody = errors.New("request body is empty")

// decodeJSONBody decodes a single JSON object from the request body. Unknown
// fields are ignored; trailing data is rejected.
func decodeJSONBody(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodyBytes)

	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return errEmptyBody
		}
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return fmt.Errorf("request body exceeds %d bytes", maxErr.Limit)
		}
		return fmt.Errorf("malformed JSON: %w", err)
	}
	if dec.More() {
		return errors.New("request body must contain a single JSON object")
	}
	return nil
}

// parseSuggestRequest reads q and n from the query string. A missing n is 0,
// which the engine replaces with its configured default.
func parseSuggestRequest(r *http.Request) (SuggestRequest, error) {
	q := r.URL.Query()
	req := SuggestRequest{Query: strings.TrimSpace(q.Get("q"))}

	if raw := q.Get("n"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return req, fmt.Errorf("n must be an integer, got %q", raw)
		}
		req.Limit = n
	}
	return req, nil
}
