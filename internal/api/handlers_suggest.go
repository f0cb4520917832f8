// Reelmatch - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package api

import (
	"net/http"

	"github.com/tomtom215/reelmatch/internal/recommend/titlematch"
	"github.com/tomtom215/reelmatch/internal/validation"
)

// SuggestResponse is the body of GET /movies/suggest.
type SuggestResponse struct {
	Query       string             `json:"query" example:"Avatr"`
	Cutoff      float64            `json:"cutoff" example:"0.6"`
	Suggestions []titlematch.Match `json:"suggestions"`
}

// Suggest returns titles close to a partial or misspelled query, best first.
// Unlike /recommendation an unmatched query is not an error; the list is
// simply empty.
//
// @Summary Suggest matching titles
// @Description Ranked close matches for the query, each with its similarity ratio and Levenshtein distance.
// @Tags Recommendations
// @Produce json
// @Param q query string true "Title query"
// @Param n query int false "Maximum suggestions (default: suggest_limit)" minimum(0) maximum(50)
// @Success 200 {object} SuggestResponse
// @Failure 400 {object} ErrorResponse "Missing or invalid parameters"
// @Failure 429 {object} ErrorResponse "Rate limit exceeded"
// @Failure 503 {object} ErrorResponse "Index not ready"
// @Router /movies/suggest [get]
func (h *Handler) Suggest(w http.ResponseWriter, r *http.Request) {
	req, err := parseSuggestRequest(r)
	if err != nil {
		respondError(w, r, http.StatusBadRequest, ErrCodeBadRequest, err.Error(), nil)
		return
	}

	if verr := validation.ValidateStruct(&req); verr != nil {
		respondErrorDetails(w, r, http.StatusBadRequest, ErrCodeValidation, verr.Detail(), verr.Fields, nil)
		return
	}

	if h.engine == nil {
		respondError(w, r, http.StatusServiceUnavailable, ErrCodeServiceUnavailable, msgNotReady, nil)
		return
	}

	suggestions := h.engine.Suggest(req.Query, req.Limit)
	if suggestions == nil {
		suggestions = []titlematch.Match{}
	}

	respondJSON(w, http.StatusOK, SuggestResponse{
		Query:       req.Query,
		Cutoff:      h.engine.Config().MatchCutoff,
		Suggestions: suggestions,
	})
}
