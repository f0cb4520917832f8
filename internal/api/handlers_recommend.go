// Reelmatch - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package api

import (
	"net/http"

	"github.com/tomtom215/reelmatch/internal/logging"
	"github.com/tomtom215/reelmatch/internal/recommend"
	"github.com/tomtom215/reelmatch/internal/validation"
)

// RootResponse is the body of GET /.
type RootResponse struct {
	Status string `json:"status" example:"API running"`
}

// RecommendationResponse is the body of a successful POST /recommendation.
type RecommendationResponse struct {
	// MatchedMovie is the dataset title the query resolved to.
	MatchedMovie string `json:"matched_movie" example:"Avatar"`

	// Recommendations are titles ordered by descending similarity.
	Recommendations []string `json:"recommendations"`

	// MatchScore is the title similarity of the resolution, 1 for an exact title.
	MatchScore float64 `json:"match_score" example:"1"`

	// Scores are the content similarities, aligned with Recommendations.
	Scores []float64 `json:"scores"`
}

func newRecommendationResponse(res *recommend.Result) RecommendationResponse {
	scores := make([]float64, len(res.Recommendations))
	for i, rec := range res.Recommendations {
		scores[i] = rec.Score
	}
	return RecommendationResponse{
		MatchedMovie:    res.MatchedTitle,
		Recommendations: res.Titles(),
		MatchScore:      res.MatchScore,
		Scores:          scores,
	}
}

// Root reports that the API is up.
//
// @Summary Service banner
// @Description Returns a fixed status body. Doubles as the simplest liveness check.
// @Tags Core
// @Produce json
// @Success 200 {object} RootResponse
// @Router / [get]
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, RootResponse{Status: "API running"})
}

// Recommendation resolves a (possibly misspelled) title and returns the most
// similar movies.
//
// @Summary Recommend similar movies
// @Description Resolves the query to the closest known title (difflib ratio >= cutoff) and ranks every other movie by cosine similarity of their TF-IDF feature vectors.
// @Tags Recommendations
// @Accept json
// @Produce json
// @Param request body RecommendationRequest true "Movie title to match"
// @Success 200 {object} RecommendationResponse
// @Failure 400 {object} ErrorResponse "Malformed body or validation failure"
// @Failure 404 {object} ErrorResponse "No title is close enough to the query"
// @Failure 429 {object} ErrorResponse "Rate limit exceeded"
// @Failure 503 {object} ErrorResponse "Index not ready"
// @Router /recommendation [post]
func (h *Handler) Recommendation(w http.ResponseWriter, r *http.Request) {
	var req RecommendationRequest
	if err := decodeJSONBody(w, r, &req); err != nil {
		respondError(w, r, http.StatusBadRequest, ErrCodeInvalidJSON, err.Error(), nil)
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

	res, err := h.engine.Recommend(r.Context(), *req.Movie)
	if err != nil {
		status, code, detail := classifyEngineError(err)
		if status == http.StatusNotFound {
			logging.Ctx(r.Context()).Info().
				Str("query", sanitizeLogValue(*req.Movie)).
				Msg("Movie not found")
			err = nil
		}
		respondError(w, r, status, code, detail, err)
		return
	}

	respondJSON(w, http.StatusOK, newRecommendationResponse(res))
}
