// Reelmatch - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/reelmatch/internal/cache"
	"github.com/tomtom215/reelmatch/internal/dataset"
	"github.com/tomtom215/reelmatch/internal/middleware"
)

// IndexStatsResponse describes the in-memory index.
type IndexStatsResponse struct {
	Movies           int                `json:"movies" example:"4803"`
	VocabularyTerms  int                `json:"vocabulary_terms" example:"17000"`
	MatrixBytes      int64              `json:"matrix_bytes" example:"184550472"`
	ZeroVectors      int                `json:"zero_vectors"`
	BuildDurationsMS map[string]float64 `json:"build_durations_ms"`
	BuiltAt          time.Time          `json:"built_at"`
}

// StatsResponse is the body of GET /stats.
type StatsResponse struct {
	Version       string                     `json:"version"`
	UptimeSeconds float64                    `json:"uptime_seconds"`
	TopK          int                        `json:"top_k"`
	Index         IndexStatsResponse         `json:"index"`
	Dataset       dataset.Report             `json:"dataset"`
	Cache         cache.Stats                `json:"cache"`
	Endpoints     []middleware.EndpointStats `json:"endpoints"`
}

// Stats reports index size, build timings, dataset load outcome, resolution
// cache effectiveness and per-route latency.
//
// @Summary Service statistics
// @Description Index size (movies, vocabulary, matrix bytes), build durations per stage, dataset rows loaded and skipped, title cache hit rate and recent latency percentiles per route.
// @Tags Core
// @Produce json
// @Success 200 {object} StatsResponse
// @Failure 503 {object} ErrorResponse "Index not ready"
// @Router /stats [get]
func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	if h.engine == nil {
		respondError(w, r, http.StatusServiceUnavailable, ErrCodeServiceUnavailable, msgNotReady, nil)
		return
	}

	es := h.engine.Stats()
	durations := make(map[string]float64, len(es.Index.BuildDurations))
	for stage, d := range es.Index.BuildDurations {
		durations[stage] = float64(d.Microseconds()) / 1000
	}

	respondJSON(w, http.StatusOK, StatsResponse{
		Version:       h.version,
		UptimeSeconds: time.Since(h.startTime).Seconds(),
		TopK:          es.TopK,
		Index: IndexStatsResponse{
			Movies:           es.Index.Movies,
			VocabularyTerms:  es.Index.VocabularyTerms,
			MatrixBytes:      es.Index.MatrixBytes,
			ZeroVectors:      es.Index.ZeroVectors,
			BuildDurationsMS: durations,
			BuiltAt:          es.Index.BuiltAt,
		},
		Dataset:   h.report,
		Cache:     es.Cache,
		Endpoints: h.perfMon.GetStats(),
	})
}
