// Reelmatch - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package recommend

import (
	"errors"
	"time"

	"github.com/tomtom215/reelmatch/internal/cache"
)

var (
	// ErrMovieNotFound is returned when a query does not resolve to any
	// known title. It is a client-facing outcome, not a fault.
	ErrMovieNotFound = errors.New("movie not found")

	// ErrEmptyIndex is returned when an engine is created without an index.
	ErrEmptyIndex = errors.New("recommendation index is not built")
)

// Build stages reported in IndexStats and metrics.
const (
	StageCompose    = "compose"
	StageVectorize  = "vectorize"
	StageSimilarity = "similarity"
)

// Recommendation is one ranked movie.
type Recommendation struct {
	Title string `json:"title"`

	// Position is the movie's dataset position.
	Position int `json:"position"`

	// Score is the cosine similarity to the matched movie.
	Score float64 `json:"score"`
}

// Result is the answer to a recommendation query.
type Result struct {
	// Query is the text as supplied by the caller.
	Query string `json:"query"`

	// MatchedTitle is the known title the query resolved to.
	MatchedTitle string `json:"matched_title"`

	// MatchScore is the title similarity ratio of the resolution; 1 for an
	// exact title.
	MatchScore float64 `json:"match_score"`

	// Recommendations are ordered by descending score, ties in dataset order.
	Recommendations []Recommendation `json:"recommendations"`
}

// Titles returns the recommended titles in rank order.
func (r *Result) Titles() []string {
	titles := make([]string, len(r.Recommendations))
	for i, rec := range r.Recommendations {
		titles[i] = rec.Title
	}
	return titles
}

// IndexStats describes a built index.
type IndexStats struct {
	Movies          int                      `json:"movies"`
	VocabularyTerms int                      `json:"vocabulary_terms"`
	MatrixBytes     int64                    `json:"matrix_bytes"`
	ZeroVectors     int                      `json:"zero_vectors"`
	BuildDurations  map[string]time.Duration `json:"build_durations"`
	BuiltAt         time.Time                `json:"built_at"`
}

// EngineStats combines index and cache statistics.
type EngineStats struct {
	Index IndexStats  `json:"index"`
	Cache cache.Stats `json:"cache"`
	TopK  int         `json:"top_k"`
}
