// MusicMatch - Content-Based Track Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/musicmatch

package explain

import (
	"reflect"
	"testing"

	"github.com/tomtom215/musicmatch/internal/catalog"
)

func track(artist string, popularity float64, genres ...string) *catalog.Track {
	if genres == nil {
		genres = []string{}
	}
	return &catalog.Track{Name: "t", Artist: artist, Popularity: popularity, Genres: genres}
}

func TestExplain(t *testing.T) {
	e := New(DefaultConfig())

	tests := []struct {
		name      string
		query     *catalog.Track
		candidate *catalog.Track
		want      string
	}{
		{
			name:      "same artist is exclusive",
			query:     track("Artist X", 10, "pop"),
			candidate: track("Artist X", 90, "pop"),
			want:      "Same artist: Artist X",
		},
		{
			name:      "shared genre",
			query:     track("A", 50, "pop", "rock"),
			candidate: track("B", 50, "rock"),
			want:      "Shares genre: rock",
		},
		{
			name:      "shared genres capped in query order",
			query:     track("A", 50, "jazz", "pop", "rock", "soul"),
			candidate: track("B", 50, "soul", "rock", "pop", "jazz"),
			want:      "Shares genre: jazz, pop",
		},
		{
			name:      "more popular",
			query:     track("A", 50),
			candidate: track("B", 75),
			want:      "More popular hit",
		},
		{
			name:      "hidden gem",
			query:     track("A", 50),
			candidate: track("B", 25),
			want:      "Hidden gem",
		},
		{
			name:      "delta must be strictly exceeded",
			query:     track("A", 50),
			candidate: track("B", 70),
			want:      FallbackReason,
		},
		{
			name:      "genre and popularity joined",
			query:     track("A", 80, "indie"),
			candidate: track("B", 10, "indie"),
			want:      "Shares genre: indie • Hidden gem",
		},
		{
			name:      "fallback",
			query:     track("A", 50, "pop"),
			candidate: track("B", 55, "metal"),
			want:      FallbackReason,
		},
		{
			name:      "empty genres never share",
			query:     track("A", 50),
			candidate: track("B", 50),
			want:      FallbackReason,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := e.Explain(tt.query, tt.candidate); got != tt.want {
				t.Errorf("Explain() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExplain_Config(t *testing.T) {
	e := New(Config{MaxSharedGenres: 3, PopularityDelta: 5})

	got := e.Explain(track("A", 50, "a", "b", "c", "d"), track("B", 56, "a", "b", "c", "d"))
	want := "Shares genre: a, b, c • More popular hit"
	if got != want {
		t.Errorf("Explain() = %q, want %q", got, want)
	}
}

// staticRule always matches with a fixed reason.
type staticRule struct {
	name      string
	exclusive bool
}

func (r staticRule) Name() string    { return r.name }
func (r staticRule) Exclusive() bool { return r.exclusive }
func (r staticRule) Reason(_, _ *catalog.Track) (string, bool) {
	return r.name, true
}

func TestNewWithRules_Order(t *testing.T) {
	e := NewWithRules(staticRule{name: "first"}, staticRule{name: "stop", exclusive: true}, staticRule{name: "never"})

	if got := e.Explain(track("A", 0), track("B", 0)); got != "stop" {
		t.Errorf("Explain() = %q, want %q", got, "stop")
	}
	if got := e.Rules(); !reflect.DeepEqual(got, []string{"first", "stop", "never"}) {
		t.Errorf("Rules() = %v", got)
	}
}

func TestNew_RuleOrder(t *testing.T) {
	want := []string{"same_artist", "shared_genre", "popularity"}
	if got := New(DefaultConfig()).Rules(); !reflect.DeepEqual(got, want) {
		t.Errorf("Rules() = %v, want %v", got, want)
	}
}
