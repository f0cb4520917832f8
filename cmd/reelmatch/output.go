// Reelmatch - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package main

import (
	"fmt"
	"io"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// Output formats
const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

// writeOutput renders v in format. text is called for the text format.
func writeOutput(w io.Writer, format string, v any, text func(io.Writer)) error {
	switch format {
	case formatJSON:
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	default:
		text(w)
		return nil
	}
}

// ScoredTitle is one ranked title in command output.
type ScoredTitle struct {
	Title    string  `json:"title" yaml:"title"`
	Score    float64 `json:"score" yaml:"score"`
	Distance *int    `json:"distance,omitempty" yaml:"distance,omitempty"`
}

// RecommendOutput is the output of the recommend command.
type RecommendOutput struct {
	Query           string        `json:"query" yaml:"query"`
	MatchedMovie    string        `json:"matched_movie" yaml:"matched_movie"`
	MatchScore      float64       `json:"match_score" yaml:"match_score"`
	Recommendations []ScoredTitle `json:"recommendations" yaml:"recommendations"`
}

// MatchOutput is the output of the match command.
type MatchOutput struct {
	Query   string        `json:"query" yaml:"query"`
	Cutoff  float64       `json:"cutoff" yaml:"cutoff"`
	Matches []ScoredTitle `json:"matches" yaml:"matches"`
}

// StatsOutput is the output of the stats and check commands.
type StatsOutput struct {
	Status           string             `json:"status,omitempty" yaml:"status,omitempty"`
	Source           string             `json:"source" yaml:"source"`
	Rows             int                `json:"rows" yaml:"rows"`
	SkippedRows      int                `json:"skipped_rows" yaml:"skipped_rows"`
	Movies           int                `json:"movies" yaml:"movies"`
	VocabularyTerms  int                `json:"vocabulary_terms" yaml:"vocabulary_terms"`
	ZeroVectors      int                `json:"zero_vectors" yaml:"zero_vectors"`
	MatrixBytes      int64              `json:"matrix_bytes" yaml:"matrix_bytes"`
	BuildDurationsMS map[string]float64 `json:"build_durations_ms" yaml:"build_durations_ms"`
	ElapsedMS        float64            `json:"elapsed_ms" yaml:"elapsed_ms"`
}
