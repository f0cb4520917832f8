// Reelmatch - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

// Package titlematch resolves free-text queries to known movie titles using
// the Ratcliff/Obershelp sequence similarity ratio over characters.
//
// A candidate's score is 2*M/T, where M is the number of matched characters
// and T the total length of query and candidate. Candidates are screened
// with the cheap upper bounds (real quick ratio, then quick ratio) before the
// full ratio is computed. Matching is case-sensitive.
package titlematch

import (
	"errors"
	"fmt"
	"sort"

	"github.com/agnivade/levenshtein"
	"github.com/pmezard/go-difflib/difflib"
)

// DefaultCutoff is the minimum ratio, inclusive, a title needs to match.
const DefaultCutoff = 0.6

// ErrNoMatch is returned when no known title reaches the cutoff.
var ErrNoMatch = errors.New("no close title match")

// Match is a candidate title and how close it is to the query.
type Match struct {
	// Index is the first dataset position holding Title.
	Index int     `json:"index"`
	Title string  `json:"title"`
	Score float64 `json:"score"`

	// Distance is the Levenshtein edit distance to the query. It is only
	// filled in by Suggest and is informational.
	Distance int `json:"distance,omitempty"`
}

// Resolver matches queries against a fixed title list. It is immutable
// and safe for concurrent use.
type Resolver struct {
	titles []string
	chars  [][]string
	first  map[string]int
	cutoff float64
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithCutoff sets the minimum ratio in [0, 1]. Values outside the range
// are ignored.
func WithCutoff(cutoff float64) Option {
	return func(r *Resolver) {
		if cutoff >= 0 && cutoff <= 1 {
			r.cutoff = cutoff
		}
	}
}

// New builds a Resolver over titles, in dataset order. Duplicate titles
// resolve to their first position.
func New(titles []string, opts ...Option) *Resolver {
	r := &Resolver{
		titles: titles,
		chars:  make([][]string, len(titles)),
		first:  make(map[string]int, len(titles)),
		cutoff: DefaultCutoff,
	}
	for i, t := range titles {
		r.chars[i] = splitChars(t)
		if _, seen := r.first[t]; !seen {
			r.first[t] = i
		}
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Cutoff returns the configured minimum ratio.
func (r *Resolver) Cutoff() float64 {
	return r.cutoff
}

// Len returns the number of known titles.
func (r *Resolver) Len() int {
	return len(r.titles)
}

// Resolve returns the best-scoring title for query. Ties go to the title
// that appears first. An exact title always wins since no other title can
// score above 1.
func (r *Resolver) Resolve(query string) (Match, error) {
	if i, ok := r.first[query]; ok {
		return Match{Index: i, Title: query, Score: 1}, nil
	}

	best := Match{Index: -1}
	r.scan(query, func(m Match) {
		if m.Score > best.Score || best.Index < 0 {
			best = m
		}
	})
	if best.Index < 0 {
		return Match{}, fmt.Errorf("%w for %q", ErrNoMatch, query)
	}
	return best, nil
}

// Suggest returns up to n titles reaching the cutoff, best first, with
// ties in dataset order. Each title appears once.
func (r *Resolver) Suggest(query string, n int) []Match {
	if n <= 0 {
		return nil
	}

	var matches []Match
	r.scan(query, func(m Match) {
		matches = append(matches, m)
	})
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})
	if len(matches) > n {
		matches = matches[:n]
	}
	for i := range matches {
		matches[i].Distance = levenshtein.ComputeDistance(query, matches[i].Title)
	}
	return matches
}

// scan calls fn, in dataset order, for every distinct title whose ratio
// reaches the cutoff.
func (r *Resolver) scan(query string, fn func(Match)) {
	// The query is sequence b so its index is built once for all candidates.
	sm := difflib.NewMatcher(nil, splitChars(query))
	for i, chars := range r.chars {
		if r.first[r.titles[i]] != i {
			continue
		}
		sm.SetSeq1(chars)
		if sm.RealQuickRatio() < r.cutoff || sm.QuickRatio() < r.cutoff {
			continue
		}
		score := sm.Ratio()
		if score < r.cutoff {
			continue
		}
		fn(Match{Index: i, Title: r.titles[i], Score: score})
	}
}

// Ratio returns the similarity ratio of a and b in [0, 1].
func Ratio(a, b string) float64 {
	return difflib.NewMatcher(splitChars(a), splitChars(b)).Ratio()
}

func splitChars(s string) []string {
	chars := make([]string, 0, len(s))
	for _, c := range s {
		chars = append(chars, string(c))
	}
	return chars
}
