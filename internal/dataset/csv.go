// Reelmatch - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package dataset

import (
	"bufio"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

const utf8BOM = "\ufeff"

// CSVSource reads movies from a delimited text file with a header row.
type CSVSource struct {
	path string
}

// NewCSVSource returns a source for the CSV file at path.
func NewCSVSource(path string) *CSVSource {
	return &CSVSource{path: path}
}

func (s *CSVSource) String() string {
	return s.path
}

// Load implements Source.
func (s *CSVSource) Load(ctx context.Context) ([]Movie, Report, error) {
	report := Report{Source: s.path}

	f, err := os.Open(s.path)
	if err != nil {
		return nil, report, loadError(s.path, "open", err)
	}
	defer f.Close()

	movies, report, err := ReadCSV(ctx, f)
	report.Source = s.path
	if err != nil {
		var dle *DataLoadError
		if errors.As(err, &dle) {
			dle.Source = s.path
		}
		return nil, report, err
	}
	return movies, report, nil
}

// ReadCSV parses movies from r. The first record is the header; columns may
// appear in any order and extra columns are ignored. Quoted fields may span
// lines.
func ReadCSV(ctx context.Context, r io.Reader) ([]Movie, Report, error) {
	const source = "csv"
	var report Report

	reader := csv.NewReader(bufio.NewReader(r))
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.ReuseRecord = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, report, missingColumnsError(source, RequiredColumns)
	}
	if err != nil {
		return nil, report, loadError(source, "read header", err)
	}
	header = append([]string(nil), header...)
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], utf8BOM)
	}
	if missing := missingColumns(header); len(missing) > 0 {
		return nil, report, missingColumnsError(source, missing)
	}

	positions := make(map[string]int, len(RequiredColumns))
	for i, h := range header {
		name := strings.TrimSpace(h)
		if _, seen := positions[name]; !seen {
			positions[name] = i
		}
	}

	var movies []Movie
	cells := make(map[string]string, len(RequiredColumns))
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, report, loadError(source, "read row", err)
		}
		report.Rows++
		if report.Rows%1024 == 0 {
			if err := ctx.Err(); err != nil {
				return nil, report, loadError(source, "read row", err)
			}
		}

		for _, col := range RequiredColumns {
			idx := positions[col]
			if idx < len(record) {
				cells[col] = record[idx]
			} else {
				cells[col] = ""
			}
		}
		movie, ok := buildMovie(cells, normalizeCell)
		if !ok {
			report.SkippedRows++
			continue
		}
		movies = append(movies, movie)
	}

	report.Loaded = len(movies)
	if report.Loaded == 0 && report.Rows > 0 {
		return nil, report, loadError(source, "read rows", fmt.Errorf("no row has a title (%d rows read)", report.Rows))
	}
	return movies, report, nil
}
