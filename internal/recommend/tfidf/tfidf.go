// Reelmatch - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

// Package tfidf converts text documents into sparse TF-IDF weight vectors
// over a vocabulary learned from the corpus itself.
//
// Weighting follows the conventional smoothed scheme:
//
//	tf(t, d)  = raw count of t in d
//	idf(t)    = ln((1 + n) / (1 + df(t))) + 1
//	w(t, d)   = tf(t, d) * idf(t), then each row is L2-normalized
//
// Tokens are lowercased maximal runs of two or more word characters
// (letters, digits, underscore). English stop words are dropped before the
// vocabulary is built.
package tfidf

import (
	"math"
	"regexp"
	"sort"
	"strings"
)

var tokenPattern = regexp.MustCompile(`[\p{L}\p{N}_]{2,}`)

// Entry is one non-zero component of a Vector.
type Entry struct {
	Term   int
	Weight float64
}

// Vector is a sparse vector sorted by ascending Term.
// A nil Vector is the zero vector.
type Vector []Entry

// Norm returns the Euclidean length of v.
func (v Vector) Norm() float64 {
	var sum float64
	for _, e := range v {
		sum += e.Weight * e.Weight
	}
	return math.Sqrt(sum)
}

// Dot returns the inner product of two sorted vectors using a merge-join.
func Dot(a, b Vector) float64 {
	var dot float64
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i].Term == b[j].Term:
			dot += a[i].Weight * b[j].Weight
			i++
			j++
		case a[i].Term < b[j].Term:
			i++
		default:
			j++
		}
	}
	return dot
}

// Vocabulary maps terms to vector positions. It is fixed once fit.
type Vocabulary struct {
	index map[string]int
	terms []string
	idf   []float64
}

// Len returns the number of distinct terms.
func (v *Vocabulary) Len() int {
	if v == nil {
		return 0
	}
	return len(v.terms)
}

// Term returns the term at position i.
func (v *Vocabulary) Term(i int) string {
	return v.terms[i]
}

// Lookup returns the position of term.
func (v *Vocabulary) Lookup(term string) (int, bool) {
	if v == nil {
		return 0, false
	}
	i, ok := v.index[term]
	return i, ok
}

// IDF returns the inverse document frequency of the term at position i.
func (v *Vocabulary) IDF(i int) float64 {
	return v.idf[i]
}

// Terms returns the vocabulary in position order. The slice is a copy.
func (v *Vocabulary) Terms() []string {
	if v == nil {
		return nil
	}
	return append([]string(nil), v.terms...)
}

// Vectorizer builds TF-IDF vectors. The zero value is not usable; call New.
type Vectorizer struct {
	stopWords map[string]struct{}
}

// Option configures a Vectorizer.
type Option func(*Vectorizer)

// WithStopWords replaces the stop-word list. Words are matched after lowercasing.
func WithStopWords(words []string) Option {
	return func(v *Vectorizer) {
		set := make(map[string]struct{}, len(words))
		for _, w := range words {
			set[strings.ToLower(w)] = struct{}{}
		}
		v.stopWords = set
	}
}

// WithoutStopWords keeps every token.
func WithoutStopWords() Option {
	return func(v *Vectorizer) {
		v.stopWords = nil
	}
}

// New returns a Vectorizer using the English stop-word list unless
// overridden by opts.
func New(opts ...Option) *Vectorizer {
	v := &Vectorizer{stopWords: englishStopWords}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Tokenize lowercases doc and returns its tokens with stop words removed.
func (v *Vectorizer) Tokenize(doc string) []string {
	raw := tokenPattern.FindAllString(strings.ToLower(doc), -1)
	tokens := raw[:0]
	for _, t := range raw {
		if _, stop := v.stopWords[t]; stop {
			continue
		}
		tokens = append(tokens, t)
	}
	return tokens
}

// FitTransform learns a vocabulary from docs and returns one vector per
// document, in input order. Documents with no surviving tokens yield a nil
// vector; an empty corpus yields an empty vocabulary.
func (v *Vectorizer) FitTransform(docs []string) ([]Vector, *Vocabulary) {
	counts := make([]map[string]int, len(docs))
	df := make(map[string]int)
	for i, doc := range docs {
		c := make(map[string]int)
		for _, tok := range v.Tokenize(doc) {
			c[tok]++
		}
		for term := range c {
			df[term]++
		}
		counts[i] = c
	}

	terms := make([]string, 0, len(df))
	for term := range df {
		terms = append(terms, term)
	}
	sort.Strings(terms)

	vocab := &Vocabulary{
		index: make(map[string]int, len(terms)),
		terms: terms,
		idf:   make([]float64, len(terms)),
	}
	n := float64(len(docs))
	for i, term := range terms {
		vocab.index[term] = i
		vocab.idf[i] = math.Log((1+n)/(1+float64(df[term]))) + 1
	}

	vectors := make([]Vector, len(docs))
	for i, c := range counts {
		vectors[i] = weigh(c, vocab)
	}
	return vectors, vocab
}

func weigh(counts map[string]int, vocab *Vocabulary) Vector {
	if len(counts) == 0 {
		return nil
	}

	vec := make(Vector, 0, len(counts))
	for term, count := range counts {
		idx := vocab.index[term]
		vec = append(vec, Entry{Term: idx, Weight: float64(count) * vocab.idf[idx]})
	}
	sort.Slice(vec, func(a, b int) bool { return vec[a].Term < vec[b].Term })

	norm := vec.Norm()
	if norm == 0 {
		return nil
	}
	for k := range vec {
		vec[k].Weight /= norm
	}
	return vec
}
