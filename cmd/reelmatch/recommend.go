// Reelmatch - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tomtom215/reelmatch/internal/config"
	"github.com/tomtom215/reelmatch/internal/recommend"
)

func newRecommendCmd(opts *globalOptions) *cobra.Command {
	var (
		topK   int
		cutoff float64
	)

	cmd := &cobra.Command{
		Use:   "recommend <title>",
		Short: "Recommend movies similar to a title",
		Long: `Resolve a free-text title to the closest known movie and list the most
similar movies by genres, keywords, tagline, cast and director.

Multiple arguments are joined with spaces, so quoting the title is optional.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := opts.loadEngine(cmd, func(rc *config.RecommendConfig) {
				if cmd.Flags().Changed("top-k") {
					rc.TopK = topK
				}
				if cmd.Flags().Changed("cutoff") {
					rc.MatchCutoff = cutoff
				}
			})
			if err != nil {
				return err
			}

			query := strings.Join(args, " ")
			res, err := l.engine.Recommend(cmd.Context(), query)
			if errors.Is(err, recommend.ErrMovieNotFound) {
				return withExitCode(ExitNotFound, fmt.Errorf("no movie matches %q", query))
			}
			if err != nil {
				return err
			}

			return writeOutput(cmd.OutOrStdout(), opts.output, newRecommendOutput(res), func(w io.Writer) {
				fmt.Fprintf(w, "Movies similar to %q (matched %q, %.2f):\n\n", query, res.MatchedTitle, res.MatchScore)
				for i, rec := range res.Recommendations {
					fmt.Fprintf(w, "%3d. [%.4f] %s\n", i+1, rec.Score, rec.Title)
				}
			})
		},
	}

	cmd.Flags().IntVarP(&topK, "top-k", "k", 10, "Number of recommendations")
	cmd.Flags().Float64Var(&cutoff, "cutoff", 0.6, "Minimum title similarity, 0-1")
	return cmd
}

func newRecommendOutput(res *recommend.Result) RecommendOutput {
	out := RecommendOutput{
		Query:           res.Query,
		MatchedMovie:    res.MatchedTitle,
		MatchScore:      res.MatchScore,
		Recommendations: make([]ScoredTitle, len(res.Recommendations)),
	}
	for i, rec := range res.Recommendations {
		out.Recommendations[i] = ScoredTitle{Title: rec.Title, Score: rec.Score}
	}
	return out
}
