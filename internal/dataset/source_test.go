// Reelmatch - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package dataset

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDetectKind(t *testing.T) {
	t.Parallel()

	tests := []struct {
		source string
		want   Kind
	}{
		{"movies.csv", KindCSV},
		{"data/movies.tsv", KindCSV},
		{"movies", KindCSV},
		{"postgres://u:p@localhost/movies", KindPostgres},
		{"postgresql://localhost/movies", KindPostgres},
		{"sqlite:///var/lib/movies", KindSQLite},
		{"movies.db", KindSQLite},
		{"movies.SQLITE3", KindSQLite},
		{"duckdb://movies.duckdb", KindDuckDB},
		{"movies.duckdb", KindDuckDB},
		{"movies.parquet", KindParquet},
		{"movies.json", KindJSON},
		{"movies.jsonl", KindJSON},
	}

	for _, tt := range tests {
		t.Run(tt.source, func(t *testing.T) {
			t.Parallel()
			if got := DetectKind(tt.source); got != tt.want {
				t.Errorf("DetectKind(%q) = %s, want %s", tt.source, got, tt.want)
			}
		})
	}
}

func TestOpen(t *testing.T) {
	t.Parallel()

	t.Run("empty source", func(t *testing.T) {
		t.Parallel()
		_, err := Open("  ", Options{})
		if !errors.Is(err, ErrUnsupportedSource) {
			t.Errorf("expected ErrUnsupportedSource, got %v", err)
		}
	})

	t.Run("csv", func(t *testing.T) {
		t.Parallel()
		src, err := Open("movies.csv", Options{})
		if err != nil {
			t.Fatal(err)
		}
		if _, ok := src.(*CSVSource); !ok {
			t.Errorf("expected *CSVSource, got %T", src)
		}
	})

	t.Run("postgres redacts password", func(t *testing.T) {
		t.Parallel()
		src, err := Open("postgres://reel:secret@db:5432/movies", Options{})
		if err != nil {
			t.Fatal(err)
		}
		if got := src.String(); got != "postgres://reel:xxxxx@db:5432/movies" {
			t.Errorf("String() = %q", got)
		}
	})

	t.Run("sqlite prefix stripped", func(t *testing.T) {
		t.Parallel()
		src, err := Open("sqlite://movies.data", Options{})
		if err != nil {
			t.Fatal(err)
		}
		if got := src.String(); got != "movies.data" {
			t.Errorf("String() = %q, want movies.data", got)
		}
	})
}

func TestLoad_CSV(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "movies.csv")
	if err := os.WriteFile(path, []byte(sampleCSV), 0o600); err != nil {
		t.Fatal(err)
	}

	movies, report, err := Load(context.Background(), path, Options{})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(movies) != report.Loaded || report.Loaded != 3 {
		t.Errorf("loaded %d movies, report %+v", len(movies), report)
	}
}

func TestLoad_Unreadable(t *testing.T) {
	t.Parallel()

	_, _, err := Load(context.Background(), filepath.Join(t.TempDir(), "nope.csv"), Options{})
	if !errors.Is(err, ErrDataLoad) {
		t.Errorf("expected ErrDataLoad, got %v", err)
	}
}

func TestQuoteIdent(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"cast":       `"cast"`,
		`we"ird`:     `"we""ird"`,
		"public.mov": `"public.mov"`,
	}
	for in, want := range tests {
		if got := quoteIdent(in); got != want {
			t.Errorf("quoteIdent(%q) = %s, want %s", in, got, want)
		}
	}
	if got := quoteTable("public.movies"); got != `"public"."movies"` {
		t.Errorf("quoteTable = %s", got)
	}
}

func TestOrderColumn(t *testing.T) {
	t.Parallel()

	cols := []string{"id", "title", "index"}

	if got, _ := orderColumn(cols, ""); got != "index" {
		t.Errorf("default order = %q, want index", got)
	}
	if got, _ := orderColumn([]string{"title", "id"}, ""); got != "id" {
		t.Errorf("fallback order = %q, want id", got)
	}
	if got, _ := orderColumn([]string{"title"}, ""); got != "" {
		t.Errorf("no order column expected, got %q", got)
	}
	if got, err := orderColumn(cols, "title"); err != nil || got != "title" {
		t.Errorf("explicit order = %q, %v", got, err)
	}
	if _, err := orderColumn(cols, "rank"); err == nil {
		t.Error("expected error for unknown order column")
	}
}
