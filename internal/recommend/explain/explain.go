// MusicMatch - Content-Based Track Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/musicmatch

package explain

import (
	"strings"

	"github.com/tomtom215/musicmatch/internal/catalog"
)

// Defaults for Config.
const (
	DefaultMaxSharedGenres = 2
	DefaultPopularityDelta = 20
)

// Separator joins reasons from multiple rules.
const Separator = " • "

// FallbackReason is used when no rule matches.
const FallbackReason = "Statistical match (Sound & Vibe)"

// Config tunes the built-in rules.
type Config struct {
	// MaxSharedGenres caps the genres listed by shared_genre.
	MaxSharedGenres int `koanf:"max_shared_genres" validate:"min=1"`

	// PopularityDelta is the popularity difference required by the popularity rule.
	PopularityDelta float64 `koanf:"popularity_delta" validate:"gte=0"`
}

// DefaultConfig returns the standard thresholds.
func DefaultConfig() Config {
	return Config{
		MaxSharedGenres: DefaultMaxSharedGenres,
		PopularityDelta: DefaultPopularityDelta,
	}
}

// Explainer renders reasons from an ordered rule list.
type Explainer struct {
	rules []Rule
}

// New returns an Explainer with the built-in rules in their standard order.
func New(cfg Config) *Explainer {
	return NewWithRules(
		SameArtist{},
		SharedGenre{Max: cfg.MaxSharedGenres},
		Popularity{Delta: cfg.PopularityDelta},
	)
}

// NewWithRules returns an Explainer evaluating rules in the given order.
func NewWithRules(rules ...Rule) *Explainer {
	return &Explainer{rules: append([]Rule(nil), rules...)}
}

// Rules returns the rule names in evaluation order.
func (e *Explainer) Rules() []string {
	names := make([]string, len(e.rules))
	for i, r := range e.rules {
		names[i] = r.Name()
	}
	return names
}

// Explain returns the reason text for recommending candidate to a listener
// of query. The result is never empty.
func (e *Explainer) Explain(query, candidate *catalog.Track) string {
	var reasons []string
	for _, r := range e.rules {
		text, ok := r.Reason(query, candidate)
		if !ok {
			continue
		}
		if r.Exclusive() {
			return text
		}
		reasons = append(reasons, text)
	}

	if len(reasons) == 0 {
		return FallbackReason
	}
	return strings.Join(reasons, Separator)
}
