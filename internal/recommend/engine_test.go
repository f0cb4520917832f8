// Reelmatch - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package recommend

import (
	"context"
	"errors"
	"reflect"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/reelmatch/internal/dataset"
)

func catalog() []dataset.Movie {
	return []dataset.Movie{
		{Title: "Avatar", Genres: "Action Adventure Fantasy Science Fiction", Keywords: "culture clash future space war space colony", Tagline: "Enter the World of Pandora.", Cast: "Sam Worthington Zoe Saldana Sigourney Weaver", Director: "James Cameron"},
		{Title: "Pirates of the Caribbean: At World's End", Genres: "Adventure Fantasy Action", Keywords: "ocean drug abuse exotic island east india trading company", Tagline: "At the end of the world, the adventure begins.", Cast: "Johnny Depp Orlando Bloom Keira Knightley", Director: "Gore Verbinski"},
		{Title: "Spectre", Genres: "Action Adventure Crime", Keywords: "spy based on novel secret agent sequel mi6", Tagline: "A Plan No One Escapes", Cast: "Daniel Craig Christoph Waltz Lea Seydoux", Director: "Sam Mendes"},
		{Title: "The Dark Knight Rises", Genres: "Action Crime Drama Thriller", Keywords: "dc comics crime fighter terrorist secret identity", Tagline: "The Legend Ends", Cast: "Christian Bale Michael Caine Gary Oldman", Director: "Christopher Nolan"},
		{Title: "John Carter", Genres: "Action Adventure Science Fiction", Keywords: "based on novel mars medallion space travel princess", Tagline: "Lost in our world, found in another.", Cast: "Taylor Kitsch Lynn Collins Samantha Morton", Director: "Andrew Stanton"},
		{Title: "Spider-Man 3", Genres: "Fantasy Action Adventure", Keywords: "dual identity amnesia sandstorm love of one's life", Tagline: "The battle within.", Cast: "Tobey Maguire Kirsten Dunst James Franco", Director: "Sam Raimi"},
		{Title: "Tangled", Genres: "Animation Family", Keywords: "hostage magic horse fairy tale musical", Tagline: "They're taking adventure to new lengths.", Cast: "Zachary Levi Mandy Moore Donna Murphy", Director: "Byron Howard"},
		{Title: "Avengers: Age of Ultron", Genres: "Action Adventure Science Fiction", Keywords: "marvel comic sequel superhero based on comic vision", Tagline: "A New Age Has Come.", Cast: "Robert Downey Jr. Chris Hemsworth Mark Ruffalo", Director: "Joss Whedon"},
		{Title: "Harry Potter and the Half-Blood Prince", Genres: "Adventure Fantasy Family", Keywords: "witch magic broom school of witchcraft wizardry", Tagline: "Dark Secrets Revealed", Cast: "Daniel Radcliffe Rupert Grint Emma Watson", Director: "David Yates"},
		{Title: "Batman v Superman: Dawn of Justice", Genres: "Action Adventure Fantasy", Keywords: "dc comics vigilante superhero based on comic", Tagline: "Justice or revenge", Cast: "Ben Affleck Henry Cavill Gal Gadot", Director: "Zack Snyder"},
		{Title: "Superman Returns", Genres: "Adventure Fantasy Action Science Fiction", Keywords: "saving the world dc comics invulnerability sequel superhero", Tagline: "", Cast: "Brandon Routh Kevin Spacey Kate Bosworth", Director: "Bryan Singer"},
		{Title: "Quantum of Solace", Genres: "Adventure Action Thriller Crime", Keywords: "killing undercover secret agent british secret service", Tagline: "For love, for hate, for justice, for revenge.", Cast: "Daniel Craig Olga Kurylenko Mathieu Amalric", Director: "Marc Forster"},
		{Title: "Titanic", Genres: "Drama Romance Thriller", Keywords: "shipwreck iceberg ship panic titanic ocean liner", Tagline: "Nothing on Earth could come between them.", Cast: "Kate Winslet Leonardo DiCaprio Frances Fisher", Director: "James Cameron"},
	}
}

func newTestEngine(t *testing.T, movies []dataset.Movie, cfg *Config) *Engine {
	t.Helper()
	idx, err := BuildIndex(context.Background(), movies, IndexOptions{})
	if err != nil {
		t.Fatalf("BuildIndex: %v", err)
	}
	engine, err := NewEngine(idx, cfg, zerolog.Nop())
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	return engine
}

func TestRecommend_IdenticalText(t *testing.T) {
	t.Parallel()

	movies := []dataset.Movie{
		{Title: "A", Genres: "Drama", Keywords: "courtroom", Director: "Sidney Lumet"},
		{Title: "B", Genres: "Drama", Keywords: "courtroom", Director: "Sidney Lumet"},
		{Title: "C", Genres: "Drama", Keywords: "courtroom", Director: "Sidney Lumet"},
	}
	engine := newTestEngine(t, movies, nil)

	for i := range movies {
		for j := range movies {
			if s := engine.Index().Similarity(i, j); s < 1-1e-9 {
				t.Errorf("similarity(%d, %d) = %v, want 1", i, j, s)
			}
		}
	}

	res, err := engine.Recommend(context.Background(), "A")
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}
	if res.MatchedTitle != "A" {
		t.Errorf("MatchedTitle = %q, want A", res.MatchedTitle)
	}
	if got := res.Titles(); !reflect.DeepEqual(got, []string{"B", "C"}) {
		t.Errorf("recommendations = %v, want [B C]", got)
	}
}

func TestRecommend_FuzzyTitle(t *testing.T) {
	t.Parallel()

	engine := newTestEngine(t, catalog(), nil)
	res, err := engine.Recommend(context.Background(), "Avatr")
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}
	if res.MatchedTitle != "Avatar" {
		t.Errorf("MatchedTitle = %q, want Avatar", res.MatchedTitle)
	}
	if res.MatchScore >= 1 || res.MatchScore < 0.6 {
		t.Errorf("MatchScore = %v, want fuzzy score", res.MatchScore)
	}
}

func TestRecommend_NotFound(t *testing.T) {
	t.Parallel()

	engine := newTestEngine(t, catalog(), nil)
	for _, q := range []string{"qwzx vbnm", "", "0000000000000000"} {
		res, err := engine.Recommend(context.Background(), q)
		if !errors.Is(err, ErrMovieNotFound) {
			t.Errorf("Recommend(%q) error = %v, want ErrMovieNotFound", q, err)
		}
		if res != nil {
			t.Errorf("Recommend(%q) returned a result on failure: %+v", q, res)
		}
	}
}

func TestRecommend_Properties(t *testing.T) {
	t.Parallel()

	movies := catalog()
	engine := newTestEngine(t, movies, nil)
	ctx := context.Background()

	for _, m := range movies {
		res, err := engine.Recommend(ctx, m.Title)
		if err != nil {
			t.Fatalf("Recommend(%q): %v", m.Title, err)
		}
		if res.MatchedTitle != m.Title {
			t.Errorf("exact title %q resolved to %q", m.Title, res.MatchedTitle)
		}
		if want := min(10, len(movies)-1); len(res.Recommendations) != want {
			t.Errorf("%q: got %d recommendations, want %d", m.Title, len(res.Recommendations), want)
		}

		for i, rec := range res.Recommendations {
			if rec.Title == res.MatchedTitle {
				t.Errorf("%q recommends itself", m.Title)
			}
			if rec.Score < 0 || rec.Score > 1 {
				t.Errorf("%q: score %v out of range", m.Title, rec.Score)
			}
			if i == 0 {
				continue
			}
			prev := res.Recommendations[i-1]
			if rec.Score > prev.Score {
				t.Errorf("%q: scores increase at rank %d", m.Title, i)
			}
			if rec.Score == prev.Score && rec.Position < prev.Position {
				t.Errorf("%q: tie at rank %d not in dataset order", m.Title, i)
			}
		}
	}
}

func TestRecommend_ContentNeighbours(t *testing.T) {
	t.Parallel()

	engine := newTestEngine(t, catalog(), nil)
	res, err := engine.Recommend(context.Background(), "Spectre")
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}
	if got := res.Recommendations[0].Title; got != "Quantum of Solace" {
		t.Errorf("top recommendation for Spectre = %q, want Quantum of Solace", got)
	}
}

func TestRecommend_TopK(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	cfg.TopK = 3
	engine := newTestEngine(t, catalog(), cfg)

	res, err := engine.Recommend(context.Background(), "Titanic")
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}
	if len(res.Recommendations) != 3 {
		t.Errorf("expected 3 recommendations, got %d", len(res.Recommendations))
	}
}

func TestRecommend_SmallCatalog(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		movies []dataset.Movie
		want   int
	}{
		{name: "single movie", movies: catalog()[:1], want: 0},
		{name: "two movies", movies: catalog()[:2], want: 1},
		{name: "eleven movies", movies: catalog()[:11], want: 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			engine := newTestEngine(t, tt.movies, nil)
			res, err := engine.Recommend(context.Background(), tt.movies[0].Title)
			if err != nil {
				t.Fatalf("Recommend: %v", err)
			}
			if len(res.Recommendations) != tt.want {
				t.Errorf("got %d recommendations, want %d", len(res.Recommendations), tt.want)
			}
		})
	}
}

func TestRecommend_DuplicateTitles(t *testing.T) {
	t.Parallel()

	movies := []dataset.Movie{
		{Title: "Heat", Genres: "Crime", Keywords: "heist", Director: "Michael Mann"},
		{Title: "Ronin", Genres: "Crime", Keywords: "heist", Director: "John Frankenheimer"},
		{Title: "Heat", Genres: "Romance", Keywords: "summer", Director: "Someone Else"},
		{Title: "Up", Genres: "Animation", Keywords: "balloon", Director: "Pete Docter"},
	}
	engine := newTestEngine(t, movies, nil)

	res, err := engine.Recommend(context.Background(), "Heat")
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}
	// First occurrence (a crime heist film) is used, so Ronin ranks first.
	if got := res.Titles(); !reflect.DeepEqual(got, []string{"Ronin", "Up"}) {
		t.Errorf("recommendations = %v, want [Ronin Up]", got)
	}
}

func TestRecommend_DegenerateVocabulary(t *testing.T) {
	t.Parallel()

	movies := []dataset.Movie{
		{Title: "First", Genres: "the"},
		{Title: "Second", Keywords: "and of"},
		{Title: "Third"},
	}
	engine := newTestEngine(t, movies, nil)

	if terms := engine.Index().Stats().VocabularyTerms; terms != 0 {
		t.Fatalf("expected empty vocabulary, got %d terms", terms)
	}

	res, err := engine.Recommend(context.Background(), "Second")
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}
	if got := res.Titles(); !reflect.DeepEqual(got, []string{"First", "Third"}) {
		t.Errorf("recommendations = %v, want [First Third]", got)
	}
	for _, rec := range res.Recommendations {
		if rec.Score != 0 {
			t.Errorf("score for %q = %v, want 0", rec.Title, rec.Score)
		}
	}
}

func TestRecommend_Idempotent(t *testing.T) {
	t.Parallel()

	engine := newTestEngine(t, catalog(), nil)
	ctx := context.Background()

	first, err := engine.Recommend(ctx, "Dark Knight")
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}
	second, err := engine.Recommend(ctx, "Dark Knight")
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("results differ:\n%+v\n%+v", first, second)
	}

	stats := engine.Stats()
	if stats.Cache.Hits != 1 || stats.Cache.Misses != 1 {
		t.Errorf("expected one cache hit and one miss, got %+v", stats.Cache)
	}
}

func TestRecommend_CacheDisabled(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	cfg.CacheSize = 0
	cached := newTestEngine(t, catalog(), nil)
	uncached := newTestEngine(t, catalog(), cfg)

	for _, q := range []string{"Avatr", "Spectre", "Supermn Returns"} {
		a, errA := cached.Recommend(context.Background(), q)
		b, errB := uncached.Recommend(context.Background(), q)
		if errA != nil || errB != nil {
			t.Fatalf("Recommend(%q): %v / %v", q, errA, errB)
		}
		if !reflect.DeepEqual(a, b) {
			t.Errorf("cache changed the result for %q", q)
		}
	}
	if s := uncached.Stats().Cache; s.Hits != 0 || s.Misses != 0 {
		t.Errorf("disabled cache should report no activity, got %+v", s)
	}
}

func TestRecommend_Concurrent(t *testing.T) {
	t.Parallel()

	engine := newTestEngine(t, catalog(), nil)
	want, err := engine.Recommend(context.Background(), "Avatar")
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}

	var wg sync.WaitGroup
	errs := make(chan error, 32)
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := engine.Recommend(context.Background(), "Avatar")
			if err != nil {
				errs <- err
				return
			}
			if !reflect.DeepEqual(got.Titles(), want.Titles()) {
				errs <- errors.New("concurrent result differs")
			}
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Error(err)
	}
}

func TestRecommend_CancelledContext(t *testing.T) {
	t.Parallel()

	engine := newTestEngine(t, catalog(), nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := engine.Recommend(ctx, "Avatar"); !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestSuggest(t *testing.T) {
	t.Parallel()

	engine := newTestEngine(t, catalog(), nil)

	got := engine.Suggest("Superman", 0)
	if len(got) == 0 || len(got) > engine.Config().SuggestLimit {
		t.Fatalf("Suggest returned %d matches", len(got))
	}
	if got[0].Title != "Superman Returns" {
		t.Errorf("best suggestion = %q, want Superman Returns", got[0].Title)
	}
	if n := len(engine.Suggest("Superman", 1)); n != 1 {
		t.Errorf("Suggest(n=1) returned %d", n)
	}
}

func TestNewEngine_Errors(t *testing.T) {
	t.Parallel()

	if _, err := NewEngine(nil, nil, zerolog.Nop()); !errors.Is(err, ErrEmptyIndex) {
		t.Errorf("expected ErrEmptyIndex, got %v", err)
	}

	idx, err := BuildIndex(context.Background(), catalog()[:2], IndexOptions{})
	if err != nil {
		t.Fatal(err)
	}
	cfg := DefaultConfig()
	cfg.TopK = 0
	if _, err := NewEngine(idx, cfg, zerolog.Nop()); err == nil {
		t.Error("expected error for invalid config")
	}
}

func TestPurgeExpiredCache(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	cfg.CacheTTL = time.Millisecond
	engine := newTestEngine(t, catalog(), cfg)

	for _, q := range []string{"Avatr", "Spectre"} {
		if _, err := engine.Recommend(context.Background(), q); err != nil {
			t.Fatalf("Recommend(%q): %v", q, err)
		}
	}
	time.Sleep(10 * time.Millisecond)

	if got := engine.PurgeExpiredCache(); got != 2 {
		t.Errorf("PurgeExpiredCache() = %d, want 2", got)
	}
	if size := engine.Stats().Cache.Size; size != 0 {
		t.Errorf("cache size after purge = %d", size)
	}

	cfg = DefaultConfig()
	cfg.CacheSize = 0
	if got := newTestEngine(t, catalog(), cfg).PurgeExpiredCache(); got != 0 {
		t.Errorf("disabled cache purged %d", got)
	}
}
