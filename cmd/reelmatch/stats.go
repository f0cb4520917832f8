// Reelmatch - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package main

import (
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/spf13/cobra"
)

func newStatsCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show dataset and index statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			l, err := opts.loadEngine(cmd, nil)
			if err != nil {
				return err
			}
			out := newStatsOutput(l, "")
			return writeOutput(cmd.OutOrStdout(), opts.output, out, func(w io.Writer) {
				writeStatsText(w, out)
			})
		},
	}
}

func newCheckCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Verify that the dataset loads and the index builds",
		Long: `Load the configured dataset and build the similarity index, then exit.
Exits 2 for configuration errors and 3 when the dataset cannot be loaded or
indexed, so it can gate deployments.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			l, err := opts.loadEngine(cmd, nil)
			if err != nil {
				return err
			}
			out := newStatsOutput(l, "ok")
			return writeOutput(cmd.OutOrStdout(), opts.output, out, func(w io.Writer) {
				fmt.Fprintf(w, "ok: %d movies from %s indexed in %s", out.Movies, out.Source, l.elapsed.Round(time.Millisecond))
				if out.SkippedRows > 0 {
					fmt.Fprintf(w, " (%d rows without a title skipped)", out.SkippedRows)
				}
				fmt.Fprintln(w)
			})
		},
	}
}

func newStatsOutput(l *loaded, status string) StatsOutput {
	idx := l.engine.Stats().Index
	out := StatsOutput{
		Status:           status,
		Source:           l.cfg.Dataset.Source,
		Rows:             l.report.Rows,
		SkippedRows:      l.report.SkippedRows,
		Movies:           idx.Movies,
		VocabularyTerms:  idx.VocabularyTerms,
		ZeroVectors:      idx.ZeroVectors,
		MatrixBytes:      idx.MatrixBytes,
		BuildDurationsMS: make(map[string]float64, len(idx.BuildDurations)),
		ElapsedMS:        float64(l.elapsed.Microseconds()) / 1000,
	}
	for stage, d := range idx.BuildDurations {
		out.BuildDurationsMS[stage] = float64(d.Microseconds()) / 1000
	}
	return out
}

func writeStatsText(w io.Writer, s StatsOutput) {
	fmt.Fprintf(w, "Source:            %s\n", s.Source)
	fmt.Fprintf(w, "Rows:              %d (%d skipped)\n", s.Rows, s.SkippedRows)
	fmt.Fprintf(w, "Movies:            %d\n", s.Movies)
	fmt.Fprintf(w, "Vocabulary terms:  %d\n", s.VocabularyTerms)
	fmt.Fprintf(w, "Zero vectors:      %d\n", s.ZeroVectors)
	fmt.Fprintf(w, "Matrix bytes:      %d\n", s.MatrixBytes)

	stages := make([]string, 0, len(s.BuildDurationsMS))
	for stage := range s.BuildDurationsMS {
		stages = append(stages, stage)
	}
	sort.Strings(stages)
	for _, stage := range stages {
		fmt.Fprintf(w, "Build %-12s %.3f ms\n", stage+":", s.BuildDurationsMS[stage])
	}
}
