// Reelmatch - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

// Package similarity builds the dense pairwise cosine similarity matrix over
// a set of document vectors.
//
// The matrix holds n*n float64 scores, so memory and build time grow
// quadratically with the catalog. That is acceptable for catalogs of a few
// tens of thousands of titles and is the main scaling limit of the service.
package similarity

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/tomtom215/reelmatch/internal/recommend/tfidf"
)

// Matrix is a symmetric n x n matrix of cosine similarities in [0, 1].
// It is read-only after Build returns and safe for concurrent readers.
type Matrix struct {
	n    int
	data []float64
}

// Len returns the number of rows (and columns).
func (m *Matrix) Len() int {
	if m == nil {
		return 0
	}
	return m.n
}

// At returns the similarity between documents i and j.
func (m *Matrix) At(i, j int) float64 {
	return m.data[i*m.n+j]
}

// Row returns row i. The returned slice shares storage with the matrix and
// must not be modified.
func (m *Matrix) Row(i int) []float64 {
	return m.data[i*m.n : (i+1)*m.n : (i+1)*m.n]
}

// Bytes approximates the memory held by the scores.
func (m *Matrix) Bytes() int64 {
	if m == nil {
		return 0
	}
	return int64(len(m.data)) * 8
}

// Cosine returns the cosine similarity of a and b, or 0 when either has
// zero magnitude. The result is clamped to [0, 1].
func Cosine(a, b tfidf.Vector) float64 {
	return cosine(a, b, a.Norm(), b.Norm())
}

func cosine(a, b tfidf.Vector, normA, normB float64) float64 {
	if normA == 0 || normB == 0 {
		return 0
	}
	return clamp(tfidf.Dot(a, b) / (normA * normB))
}

func clamp(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}

// Options tune Build.
type Options struct {
	// Workers bounds the goroutines computing rows.
	// Default: GOMAXPROCS
	Workers int
}

// Build computes the similarity of every pair of vectors. Row and column i
// correspond to vectors[i]. Only the upper triangle is computed and then
// mirrored, so the result is symmetric by construction. The diagonal is 1
// for non-zero vectors and 0 for zero vectors.
//
// The only error returned is ctx's, when it is cancelled mid-build.
func Build(ctx context.Context, vectors []tfidf.Vector, opts Options) (*Matrix, error) {
	n := len(vectors)
	m := &Matrix{n: n, data: make([]float64, n*n)}
	if n == 0 {
		return m, nil
	}

	norms := make([]float64, n)
	for i, v := range vectors {
		norms[i] = v.Norm()
	}

	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > n {
		workers = n
	}

	g, gctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		g.Go(func() error {
			// Rows are striped across workers since row i costs n-i pairs.
			for i := w; i < n; i += workers {
				if err := gctx.Err(); err != nil {
					return err
				}
				m.fillRow(vectors, norms, i)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return m, nil
}

// fillRow writes cells (i, j) and (j, i) for every j >= i. No two rows
// write the same cell.
func (m *Matrix) fillRow(vectors []tfidf.Vector, norms []float64, i int) {
	if norms[i] > 0 {
		m.data[i*m.n+i] = 1
	}
	for j := i + 1; j < m.n; j++ {
		s := cosine(vectors[i], vectors[j], norms[i], norms[j])
		m.data[i*m.n+j] = s
		m.data[j*m.n+i] = s
	}
}
