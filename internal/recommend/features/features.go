// Reelmatch - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

// Package features turns movie records into the text documents the
// vectorizer consumes.
package features

import (
	"strings"

	"github.com/tomtom215/reelmatch/internal/dataset"
)

// Separator joins the feature fields of a document.
const Separator = " "

// Compose joins genres, keywords, tagline, cast and director with single
// spaces, in that order. Fields are used verbatim, so an empty field still
// contributes its separator.
//
//nolint:gocritic // dataset.Movie is a small value type
func Compose(m dataset.Movie) string {
	var b strings.Builder
	b.Grow(len(m.Genres) + len(m.Keywords) + len(m.Tagline) + len(m.Cast) + len(m.Director) + 4)

	b.WriteString(m.Genres)
	b.WriteString(Separator)
	b.WriteString(m.Keywords)
	b.WriteString(Separator)
	b.WriteString(m.Tagline)
	b.WriteString(Separator)
	b.WriteString(m.Cast)
	b.WriteString(Separator)
	b.WriteString(m.Director)
	return b.String()
}

// ComposeAll composes every movie, preserving order.
func ComposeAll(movies []dataset.Movie) []string {
	docs := make([]string, len(movies))
	for i := range movies {
		docs[i] = Compose(movies[i])
	}
	return docs
}
