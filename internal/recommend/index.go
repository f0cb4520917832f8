// Reelmatch - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package recommend

import (
	"context"
	"fmt"
	"maps"
	"time"

	"github.com/tomtom215/reelmatch/internal/dataset"
	"github.com/tomtom215/reelmatch/internal/logging"
	"github.com/tomtom215/reelmatch/internal/metrics"
	"github.com/tomtom215/reelmatch/internal/recommend/features"
	"github.com/tomtom215/reelmatch/internal/recommend/similarity"
	"github.com/tomtom215/reelmatch/internal/recommend/tfidf"
)

// IndexOptions tune BuildIndex.
type IndexOptions struct {
	// Workers bounds the goroutines building the similarity matrix.
	// Default: GOMAXPROCS
	Workers int

	// StopWords replaces the English stop-word list when non-nil.
	StopWords []string
}

// Index is the immutable model state shared by every request: the movies,
// their TF-IDF vectors and the similarity matrix, all in dataset order.
type Index struct {
	movies  []dataset.Movie
	titles  []string
	first   map[string]int
	vectors []tfidf.Vector
	vocab   *tfidf.Vocabulary
	matrix  *similarity.Matrix
	stats   IndexStats
}

// BuildIndex composes, vectorizes and compares every movie. It either
// returns a complete index or an error; nothing partial is published.
// An empty movie list yields an empty index.
func BuildIndex(ctx context.Context, movies []dataset.Movie, opts IndexOptions) (*Index, error) {
	logger := logging.WithComponent("index")
	durations := make(map[string]time.Duration, 3)

	stage := func(name string, fn func() error) error {
		start := time.Now()
		err := fn()
		durations[name] = time.Since(start)
		if err == nil {
			metrics.RecordIndexBuild(name, durations[name])
		}
		return err
	}

	var docs []string
	_ = stage(StageCompose, func() error {
		docs = features.ComposeAll(movies)
		return nil
	})

	var (
		vectors []tfidf.Vector
		vocab   *tfidf.Vocabulary
	)
	_ = stage(StageVectorize, func() error {
		var vopts []tfidf.Option
		if opts.StopWords != nil {
			vopts = append(vopts, tfidf.WithStopWords(opts.StopWords))
		}
		vectors, vocab = tfidf.New(vopts...).FitTransform(docs)
		return nil
	})

	var matrix *similarity.Matrix
	err := stage(StageSimilarity, func() error {
		var err error
		matrix, err = similarity.Build(ctx, vectors, similarity.Options{Workers: opts.Workers})
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("build similarity matrix: %w", err)
	}

	idx := &Index{
		movies:  movies,
		titles:  make([]string, len(movies)),
		first:   make(map[string]int, len(movies)),
		vectors: vectors,
		vocab:   vocab,
		matrix:  matrix,
	}
	zero := 0
	for i := range movies {
		idx.titles[i] = movies[i].Title
		if _, seen := idx.first[movies[i].Title]; !seen {
			idx.first[movies[i].Title] = i
		}
		if vectors[i] == nil {
			zero++
		}
	}
	idx.stats = IndexStats{
		Movies:          len(movies),
		VocabularyTerms: vocab.Len(),
		MatrixBytes:     matrix.Bytes(),
		ZeroVectors:     zero,
		BuildDurations:  durations,
		BuiltAt:         time.Now().UTC(),
	}
	metrics.SetIndexSize(idx.stats.Movies, idx.stats.VocabularyTerms, idx.stats.MatrixBytes)

	if dups := len(movies) - len(idx.first); dups > 0 {
		logger.Warn().Int("duplicates", dups).Msg("Dataset has duplicate titles; the first occurrence is used")
	}
	if len(movies) > 0 && vocab.Len() == 0 {
		logger.Warn().Msg("Vocabulary is empty; every similarity score is zero")
	}
	logger.Info().
		Int("movies", idx.stats.Movies).
		Int("vocabulary_terms", idx.stats.VocabularyTerms).
		Int("zero_vectors", zero).
		Int64("matrix_bytes", idx.stats.MatrixBytes).
		Dur("vectorize", durations[StageVectorize]).
		Dur("similarity", durations[StageSimilarity]).
		Msg("Recommendation index built")

	return idx, nil
}

// Len returns the number of movies.
func (idx *Index) Len() int {
	return len(idx.movies)
}

// Movie returns the movie at position i.
func (idx *Index) Movie(i int) dataset.Movie {
	return idx.movies[i]
}

// Titles returns the titles in dataset order. The slice is shared and must
// not be modified.
func (idx *Index) Titles() []string {
	return idx.titles
}

// Position returns the first dataset position holding title.
func (idx *Index) Position(title string) (int, bool) {
	i, ok := idx.first[title]
	return i, ok
}

// Similarity returns the score between positions i and j.
func (idx *Index) Similarity(i, j int) float64 {
	return idx.matrix.At(i, j)
}

// Vocabulary returns the fitted vocabulary.
func (idx *Index) Vocabulary() *tfidf.Vocabulary {
	return idx.vocab
}

// Stats returns the build statistics.
func (idx *Index) Stats() IndexStats {
	s := idx.stats
	s.BuildDurations = maps.Clone(idx.stats.BuildDurations)
	return s
}
