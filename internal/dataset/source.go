// Reelmatch - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package dataset

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/tomtom215/reelmatch/internal/logging"
	"github.com/tomtom215/reelmatch/internal/metrics"
)

// Source produces movie records in a stable order.
// Implementations must return records in source order so that positions
// stay aligned with every structure derived from them.
type Source interface {
	Load(ctx context.Context) ([]Movie, Report, error)
	String() string
}

// Kind identifies a dataset backend.
type Kind string

const (
	KindCSV      Kind = "csv"
	KindSQLite   Kind = "sqlite"
	KindPostgres Kind = "postgres"
	KindDuckDB   Kind = "duckdb"
	KindParquet  Kind = "parquet"
	KindJSON     Kind = "json"
)

// DefaultTable is the table read from database sources when none is configured.
const DefaultTable = "movies"

// Options tune database-backed sources. CSV and file sources ignore them.
type Options struct {
	// Table is the relation holding movie rows. Default: movies
	Table string

	// OrderBy is the column that fixes row order. When empty, an "index" or
	// "id" column is used if present, otherwise the backend's natural order.
	OrderBy string
}

// DetectKind picks a backend from a source string.
//
//   - postgres:// or postgresql:// selects PostgreSQL
//   - sqlite:// or a .db/.sqlite/.sqlite3 file selects SQLite
//   - duckdb:// or a .duckdb file selects a DuckDB table
//   - .parquet selects DuckDB read_parquet
//   - .json/.jsonl/.ndjson selects DuckDB read_json_auto
//   - anything else is read as CSV
func DetectKind(source string) Kind {
	lower := strings.ToLower(source)
	switch {
	case strings.HasPrefix(lower, "postgres://"), strings.HasPrefix(lower, "postgresql://"):
		return KindPostgres
	case strings.HasPrefix(lower, "sqlite://"):
		return KindSQLite
	case strings.HasPrefix(lower, "duckdb://"):
		return KindDuckDB
	}

	switch filepath.Ext(lower) {
	case ".db", ".sqlite", ".sqlite3":
		return KindSQLite
	case ".duckdb":
		return KindDuckDB
	case ".parquet":
		return KindParquet
	case ".json", ".jsonl", ".ndjson":
		return KindJSON
	default:
		return KindCSV
	}
}

// Open returns the Source for a source string.
func Open(source string, opts Options) (Source, error) {
	if strings.TrimSpace(source) == "" {
		return nil, loadError(source, "open", fmt.Errorf("%w: empty source", ErrUnsupportedSource))
	}
	if opts.Table == "" {
		opts.Table = DefaultTable
	}

	switch DetectKind(source) {
	case KindPostgres:
		return NewPostgresSource(source, opts), nil
	case KindSQLite:
		return NewSQLiteSource(strings.TrimPrefix(source, "sqlite://"), opts), nil
	case KindDuckDB:
		return NewDuckDBTableSource(strings.TrimPrefix(source, "duckdb://"), opts), nil
	case KindParquet:
		return NewDuckDBFileSource(source, KindParquet), nil
	case KindJSON:
		return NewDuckDBFileSource(source, KindJSON), nil
	default:
		return NewCSVSource(source), nil
	}
}

// Load opens source and reads every record, logging and recording the outcome.
// Any failure is returned as a *DataLoadError.
func Load(ctx context.Context, source string, opts Options) ([]Movie, Report, error) {
	src, err := Open(source, opts)
	if err != nil {
		metrics.RecordDatasetLoad(string(DetectKind(source)), 0, err)
		return nil, Report{Source: source}, err
	}

	kind := string(DetectKind(source))
	start := time.Now()
	movies, report, err := src.Load(ctx)
	elapsed := time.Since(start)
	metrics.RecordDatasetLoad(kind, elapsed, err)
	if err != nil {
		return nil, report, err
	}

	logger := logging.WithComponent("dataset")
	if report.SkippedRows > 0 {
		logger.Warn().
			Str("source", src.String()).
			Int("skipped_rows", report.SkippedRows).
			Msg("Skipped dataset rows without a title")
	}
	logger.Info().
		Str("source", src.String()).
		Str("kind", kind).
		Int("movies", len(movies)).
		Dur("elapsed", elapsed).
		Msg("Dataset loaded")

	return movies, report, nil
}
