// Reelmatch - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package dataset

import "strings"

// Column names every dataset source must provide.
const (
	ColumnTitle    = "title"
	ColumnGenres   = "genres"
	ColumnKeywords = "keywords"
	ColumnTagline  = "tagline"
	ColumnCast     = "cast"
	ColumnDirector = "director"
)

// RequiredColumns lists the columns a source must expose, in composite order
// after the title.
var RequiredColumns = []string{
	ColumnTitle,
	ColumnGenres,
	ColumnKeywords,
	ColumnTagline,
	ColumnCast,
	ColumnDirector,
}

// Movie is a single cleaned dataset record.
// Text fields are never nil; absent upstream values are stored as "".
type Movie struct {
	Title    string `json:"title" yaml:"title"`
	Genres   string `json:"genres" yaml:"genres"`
	Keywords string `json:"keywords" yaml:"keywords"`
	Tagline  string `json:"tagline" yaml:"tagline"`
	Cast     string `json:"cast" yaml:"cast"`
	Director string `json:"director" yaml:"director"`
}

// Report summarizes a completed load.
type Report struct {
	Source      string `json:"source"`
	Rows        int    `json:"rows"`
	Loaded      int    `json:"loaded"`
	SkippedRows int    `json:"skipped_rows"`
}

// missingValues are the cell spellings treated as absent, matching the
// default NA markers of common dataframe readers.
var missingValues = map[string]struct{}{
	"":         {},
	"#N/A":     {},
	"#N/A N/A": {},
	"#NA":      {},
	"-1.#IND":  {},
	"-1.#QNAN": {},
	"-NaN":     {},
	"-nan":     {},
	"1.#IND":   {},
	"1.#QNAN":  {},
	"<NA>":     {},
	"N/A":      {},
	"NA":       {},
	"NULL":     {},
	"NaN":      {},
	"None":     {},
	"n/a":      {},
	"nan":      {},
	"null":     {},
}

// normalizeCell maps NA markers to the empty string and returns everything
// else untouched. Only text input uses it; database sources keep literal
// strings such as "None".
func normalizeCell(v string) string {
	if _, ok := missingValues[v]; ok {
		return ""
	}
	return v
}

// keepCell is the normalizer for typed sources, where only NULL is absent
// and NULL has already been scanned as "".
func keepCell(v string) string { return v }

// buildMovie assembles a Movie from raw cell values keyed by column name,
// passing each through normalize. ok is false when the row has no usable
// title.
func buildMovie(cells map[string]string, normalize func(string) string) (Movie, bool) {
	m := Movie{
		Title:    normalize(cells[ColumnTitle]),
		Genres:   normalize(cells[ColumnGenres]),
		Keywords: normalize(cells[ColumnKeywords]),
		Tagline:  normalize(cells[ColumnTagline]),
		Cast:     normalize(cells[ColumnCast]),
		Director: normalize(cells[ColumnDirector]),
	}
	if strings.TrimSpace(m.Title) == "" {
		return Movie{}, false
	}
	return m, true
}

// missingColumns returns the required columns absent from header.
// Header names are compared after trimming surrounding whitespace.
func missingColumns(header []string) []string {
	present := make(map[string]struct{}, len(header))
	for _, h := range header {
		present[strings.TrimSpace(h)] = struct{}{}
	}

	var missing []string
	for _, col := range RequiredColumns {
		if _, ok := present[col]; !ok {
			missing = append(missing, col)
		}
	}
	return missing
}
