// Reelmatch - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

// Package recommend implements content-based movie recommendations.
//
// # Architecture
//
// An Index is built once at startup from the loaded dataset:
//
//  1. features.Compose joins each movie's text fields into one document
//  2. tfidf.Vectorizer turns the documents into L2-normalized TF-IDF vectors
//  3. similarity.Build computes the dense cosine similarity matrix
//  4. titlematch.New prepares the fuzzy title resolver
//
// Position i refers to the same movie in the movie list, the vector list and
// row/column i of the matrix. Every lookup relies on that alignment.
//
// The Engine answers queries against an Index: it resolves the query to a
// known title, reads that title's matrix row, ranks the other movies by
// score (ties in dataset order) and returns the top K titles.
//
// # Usage
//
//	idx, err := recommend.BuildIndex(ctx, movies, recommend.IndexOptions{})
//	if err != nil {
//	    return err
//	}
//	engine, err := recommend.NewEngine(idx, recommend.DefaultConfig(), logger)
//	if err != nil {
//	    return err
//	}
//	res, err := engine.Recommend(ctx, "Avatr")
//	if errors.Is(err, recommend.ErrMovieNotFound) {
//	    // 404
//	}
//
// # Thread Safety
//
// An Index is immutable once built and is shared across request goroutines
// without locking. The Engine's only mutable state is its resolution cache,
// which has its own lock. Results never depend on cache state.
package recommend
