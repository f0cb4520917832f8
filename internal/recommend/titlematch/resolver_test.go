// Reelmatch - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package titlematch

import (
	"errors"
	"math"
	"testing"
)

var curated = []string{
	"Avatar",
	"Pirates of the Caribbean: At World's End",
	"Spectre",
	"The Dark Knight Rises",
	"Titanic",
}

func TestResolve(t *testing.T) {
	t.Parallel()

	r := New(curated)

	tests := []struct {
		name      string
		query     string
		wantTitle string
		wantIndex int
		wantErr   bool
	}{
		{name: "exact", query: "Spectre", wantTitle: "Spectre", wantIndex: 2},
		{name: "missing letter", query: "Avatr", wantTitle: "Avatar", wantIndex: 0},
		{name: "lowercase still close", query: "titanic", wantTitle: "Titanic", wantIndex: 4},
		{name: "partial title", query: "Dark Knight Rises", wantTitle: "The Dark Knight Rises", wantIndex: 3},
		{name: "unrelated text", query: "zzzz qqqq xxxx", wantErr: true},
		{name: "case sensitive", query: "AVATAR", wantErr: true},
		{name: "empty query", query: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			m, err := r.Resolve(tt.query)
			if tt.wantErr {
				if !errors.Is(err, ErrNoMatch) {
					t.Fatalf("Resolve(%q) error = %v, want ErrNoMatch (match %+v)", tt.query, err, m)
				}
				return
			}
			if err != nil {
				t.Fatalf("Resolve(%q): %v", tt.query, err)
			}
			if m.Title != tt.wantTitle || m.Index != tt.wantIndex {
				t.Errorf("Resolve(%q) = %+v, want %q at %d", tt.query, m, tt.wantTitle, tt.wantIndex)
			}
			if m.Score < r.Cutoff() || m.Score > 1 {
				t.Errorf("score %v outside [cutoff, 1]", m.Score)
			}
		})
	}
}

func TestResolve_Ties(t *testing.T) {
	t.Parallel()

	t.Run("first occurrence wins", func(t *testing.T) {
		t.Parallel()
		m, err := New([]string{"Cat", "Car"}).Resolve("Ca")
		if err != nil {
			t.Fatal(err)
		}
		if m.Title != "Cat" || m.Index != 0 {
			t.Errorf("got %+v, want Cat at 0", m)
		}
	})

	t.Run("duplicate titles resolve to first position", func(t *testing.T) {
		t.Parallel()
		r := New([]string{"Up", "Heat", "Heat"})
		for _, q := range []string{"Heat", "Heet"} {
			m, err := r.Resolve(q)
			if err != nil {
				t.Fatal(err)
			}
			if m.Index != 1 {
				t.Errorf("Resolve(%q) index = %d, want 1", q, m.Index)
			}
		}
	})
}

func TestResolve_Cutoff(t *testing.T) {
	t.Parallel()

	// "Avatr" vs "Avatar" scores 10/11.
	strict := New(curated, WithCutoff(0.95))
	if _, err := strict.Resolve("Avatr"); !errors.Is(err, ErrNoMatch) {
		t.Errorf("expected ErrNoMatch above the score, got %v", err)
	}

	loose := New(curated, WithCutoff(10.0/11.0))
	if m, err := loose.Resolve("Avatr"); err != nil || m.Title != "Avatar" {
		t.Errorf("cutoff should be inclusive, got %+v, %v", m, err)
	}

	if got := New(curated, WithCutoff(1.5)).Cutoff(); got != DefaultCutoff {
		t.Errorf("invalid cutoff should be ignored, got %v", got)
	}
}

func TestResolve_Empty(t *testing.T) {
	t.Parallel()

	if _, err := New(nil).Resolve("Avatar"); !errors.Is(err, ErrNoMatch) {
		t.Errorf("expected ErrNoMatch, got %v", err)
	}
}

func TestSuggest(t *testing.T) {
	t.Parallel()

	r := New([]string{"Spider-Man", "Spider-Man 2", "Spider-Man 3", "Spiderwick", "Up", "Spider-Man"})

	got := r.Suggest("Spider", 3)
	want := []Match{
		{Index: 0, Title: "Spider-Man", Score: 0.75, Distance: 4},
		{Index: 3, Title: "Spiderwick", Score: 0.75, Distance: 4},
		{Index: 1, Title: "Spider-Man 2", Score: 12.0 / 18.0, Distance: 6},
	}
	if len(got) != len(want) {
		t.Fatalf("Suggest returned %d matches: %+v", len(got), got)
	}
	for i := range want {
		if got[i].Index != want[i].Index || got[i].Title != want[i].Title ||
			got[i].Distance != want[i].Distance || math.Abs(got[i].Score-want[i].Score) > 1e-9 {
			t.Errorf("Suggest[%d] = %+v, want %+v", i, got[i], want[i])
		}
	}

	if got := r.Suggest("Spider", 0); got != nil {
		t.Errorf("n=0 should return nil, got %+v", got)
	}
	if got := r.Suggest("qqqqqqqq", 5); len(got) != 0 {
		t.Errorf("unrelated query should have no suggestions, got %+v", got)
	}
	if got := r.Suggest("Spider", 100); len(got) != 4 {
		t.Errorf("duplicates should be listed once, got %d suggestions", len(got))
	}
}

func TestRatio(t *testing.T) {
	t.Parallel()

	tests := []struct {
		a, b string
		want float64
	}{
		{"Avatar", "Avatar", 1},
		{"Avatr", "Avatar", 10.0 / 11.0},
		{"abcd", "bcde", 0.75},
		{"abc", "xyz", 0},
		{"", "", 1},
	}
	for _, tt := range tests {
		if got := Ratio(tt.a, tt.b); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("Ratio(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}
