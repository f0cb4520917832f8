// Reelmatch - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tomtom215/reelmatch/internal/recommend/titlematch"
)

func newMatchCmd(opts *globalOptions) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "match <query>",
		Short: "List known titles close to a query",
		Long: `List the known titles whose similarity to the query reaches the match
cutoff, best first. The first entry is the title recommend would use.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if limit < 0 {
				return fmt.Errorf("--limit must be non-negative, got %d", limit)
			}
			l, err := opts.loadEngine(cmd, nil)
			if err != nil {
				return err
			}

			query := strings.Join(args, " ")
			matches := l.engine.Suggest(query, limit)
			out := newMatchOutput(query, l.cfg.Recommend.MatchCutoff, matches)

			if err := writeOutput(cmd.OutOrStdout(), opts.output, out, func(w io.Writer) {
				if len(matches) == 0 {
					fmt.Fprintf(w, "No titles match %q\n", query)
					return
				}
				for i, m := range matches {
					fmt.Fprintf(w, "%3d. [%.4f] %s (distance %d)\n", i+1, m.Score, m.Title, m.Distance)
				}
			}); err != nil {
				return err
			}
			if len(matches) == 0 {
				return withExitCode(ExitNotFound, fmt.Errorf("no titles match %q", query))
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "Maximum matches (0 = suggest_limit)")
	return cmd
}

func newMatchOutput(query string, cutoff float64, matches []titlematch.Match) MatchOutput {
	out := MatchOutput{Query: query, Cutoff: cutoff, Matches: make([]ScoredTitle, len(matches))}
	for i, m := range matches {
		distance := m.Distance
		out.Matches[i] = ScoredTitle{Title: m.Title, Score: m.Score, Distance: &distance}
	}
	return out
}
