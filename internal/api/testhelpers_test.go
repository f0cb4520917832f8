// Reelmatch - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package api

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/tomtom215/reelmatch/internal/dataset"
	"github.com/tomtom215/reelmatch/internal/recommend"
)

func testMovies() []dataset.Movie {
	return []dataset.Movie{
		{Title: "Avatar", Genres: "Action Adventure Science Fiction", Keywords: "space colony alien planet", Tagline: "Enter the World of Pandora.", Cast: "Sam Worthington Zoe Saldana", Director: "James Cameron"},
		{Title: "Aliens", Genres: "Action Horror Science Fiction", Keywords: "space marine alien planet colony", Tagline: "This time it's war.", Cast: "Sigourney Weaver Michael Biehn", Director: "James Cameron"},
		{Title: "Titanic", Genres: "Drama Romance", Keywords: "shipwreck iceberg ocean liner", Tagline: "Nothing on Earth could come between them.", Cast: "Kate Winslet Leonardo DiCaprio", Director: "James Cameron"},
		{Title: "The Notebook", Genres: "Drama Romance", Keywords: "love letters summer romance", Tagline: "Behind every great love is a great story.", Cast: "Rachel McAdams Ryan Gosling", Director: "Nick Cassavetes"},
		{Title: "Heat", Genres: "Action Crime Thriller", Keywords: "bank robbery detective heist", Tagline: "A Los Angeles crime saga.", Cast: "Al Pacino Robert De Niro", Director: "Michael Mann"},
	}
}

func newTestEngine(t *testing.T) *recommend.Engine {
	t.Helper()
	idx, err := recommend.BuildIndex(context.Background(), testMovies(), recommend.IndexOptions{Workers: 2})
	if err != nil {
		t.Fatalf("BuildIndex: %v", err)
	}
	engine, err := recommend.NewEngine(idx, nil, zerolog.Nop())
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	return engine
}

func newTestHandler(t *testing.T) *Handler {
	t.Helper()
	report := dataset.Report{Source: "test.csv", Rows: 6, Loaded: 5, SkippedRows: 1}
	return NewHandler(newTestEngine(t), report, nil, "test")
}

// newTestServer returns the full router with rate limiting per the given config.
func newTestServer(t *testing.T, cfg *ChiMiddlewareConfig) (http.Handler, *Handler) {
	t.Helper()
	h := newTestHandler(t)
	return NewRouter(h, NewChiMiddleware(cfg)).SetupChi(), h
}

func doRequest(t *testing.T, srv http.Handler, method, target string, body []byte) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != nil {
		req = httptest.NewRequest(method, target, bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(rec.Body.Bytes(), &v); err != nil {
		t.Fatalf("decode %q: %v", rec.Body.String(), err)
	}
	return v
}
