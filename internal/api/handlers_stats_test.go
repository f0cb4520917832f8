// Reelmatch - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package api

import (
	"net/http"
	"testing"

	"github.com/tomtom215/reelmatch/internal/dataset"
	"github.com/tomtom215/reelmatch/internal/recommend"
)

func TestStats(t *testing.T) {
	t.Parallel()
	srv, _ := newTestServer(t, nil)

	// Prime the resolution cache: one miss, then one hit.
	doRequest(t, srv, http.MethodPost, "/recommendation", []byte(`{"movie":"Heat"}`))
	doRequest(t, srv, http.MethodPost, "/recommendation", []byte(`{"movie":"Heat"}`))

	rec := doRequest(t, srv, http.MethodGet, "/stats", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	resp := decodeBody[StatsResponse](t, rec)

	n := len(testMovies())
	if resp.Index.Movies != n {
		t.Errorf("movies = %d, want %d", resp.Index.Movies, n)
	}
	if resp.Index.MatrixBytes != int64(n*n*8) {
		t.Errorf("matrix_bytes = %d, want %d", resp.Index.MatrixBytes, n*n*8)
	}
	if resp.Index.VocabularyTerms == 0 {
		t.Error("vocabulary_terms = 0")
	}
	for _, stage := range []string{recommend.StageCompose, recommend.StageVectorize, recommend.StageSimilarity} {
		if _, ok := resp.Index.BuildDurationsMS[stage]; !ok {
			t.Errorf("missing build duration for %s", stage)
		}
	}
	if resp.Dataset.SkippedRows != 1 || resp.Dataset.Source != "test.csv" {
		t.Errorf("dataset = %+v", resp.Dataset)
	}
	if resp.Cache.Hits < 1 || resp.Cache.Misses < 1 {
		t.Errorf("cache = %+v, want at least one hit and one miss", resp.Cache)
	}
	if resp.TopK != 10 || resp.Version != "test" {
		t.Errorf("top_k/version = %d/%q", resp.TopK, resp.Version)
	}

	found := false
	for _, e := range resp.Endpoints {
		if e.Path == "POST /recommendation" && e.RequestCount == 2 {
			found = true
		}
	}
	if !found {
		t.Errorf("endpoints = %+v, want POST /recommendation with 2 requests", resp.Endpoints)
	}
}

func TestStats_NoEngine(t *testing.T) {
	t.Parallel()
	srv := NewRouter(NewHandler(nil, dataset.Report{}, nil, "test"), nil).SetupChi()

	if rec := doRequest(t, srv, http.MethodGet, "/stats", nil); rec.Code != http.StatusServiceUnavailable {
		t.Errorf("status = %d, want 503", rec.Code)
	}
}
