// Reelmatch - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package api

import (
	"net/http"
	"time"
)

// HealthResponse is the body of the probe endpoints.
type HealthResponse struct {
	Status        string  `json:"status" example:"ok"`
	UptimeSeconds float64 `json:"uptime_seconds"`
	Movies        int     `json:"movies,omitempty"`
}

// HealthLive handles liveness probe requests (Kubernetes-style)
// Returns 200 OK if the process is alive, regardless of dependencies
//
// @Summary Kubernetes liveness probe
// @Description Returns 200 while the process is serving HTTP.
// @Tags Health
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /health/live [get]
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, HealthResponse{
		Status:        "alive",
		UptimeSeconds: time.Since(h.startTime).Seconds(),
	})
}

// HealthReady handles readiness probe requests (Kubernetes-style)
// Returns 200 OK only if the service is ready to handle traffic
//
// @Summary Kubernetes readiness probe
// @Description Returns 200 once the recommendation index is built, 503 before that and while shutting down.
// @Tags Health
// @Produce json
// @Success 200 {object} HealthResponse
// @Failure 503 {object} ErrorResponse
// @Router /health/ready [get]
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	if !h.ready.Load() {
		respondError(w, r, http.StatusServiceUnavailable, ErrCodeServiceUnavailable, msgNotReady, nil)
		return
	}

	respondJSON(w, http.StatusOK, HealthResponse{
		Status:        "ready",
		UptimeSeconds: time.Since(h.startTime).Seconds(),
		Movies:        h.engine.Index().Len(),
	})
}
