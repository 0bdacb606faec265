// MusicMatch - Content-Based Track Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/musicmatch

package resolver

import (
	"errors"
	"fmt"
)

// Scorer names accepted by Config.Scorer.
const (
	ScorerWRatio      = "wratio"
	ScorerJaroWinkler = "jaro_winkler"
)

// DefaultThreshold is the minimum score a match must reach.
const DefaultThreshold = 60

// ErrUnknownScorer indicates an unsupported Config.Scorer value.
var ErrUnknownScorer = errors.New("unknown scorer")

// ScoreFunc scores two strings on a 0-100 scale.
type ScoreFunc func(a, b string) int

// Config controls query resolution.
type Config struct {
	// Threshold is the minimum accepted score (0-100).
	Threshold int `koanf:"threshold" validate:"min=0,max=100"`

	// Scorer selects the similarity function: wratio or jaro_winkler.
	Scorer string `koanf:"scorer" validate:"omitempty,oneof=wratio jaro_winkler"`
}

// DefaultConfig returns the fuzzywuzzy-compatible defaults.
func DefaultConfig() Config {
	return Config{
		Threshold: DefaultThreshold,
		Scorer:    ScorerWRatio,
	}
}

// Match is the outcome of resolving a query.
type Match struct {
	// Index is the catalog position of the best key. Only meaningful when Found.
	Index int `json:"index"`

	// Score is the best score seen, even when below the threshold.
	Score int `json:"score"`

	// Found reports whether Score reached the threshold.
	Found bool `json:"found"`
}

// Resolver finds the catalog key closest to a free-text query.
type Resolver struct {
	keys      []string
	score     ScoreFunc
	threshold int
}

// New creates a resolver over keys, which must be in catalog order.
// Keys are processed once here.
func New(keys []string, cfg Config) (*Resolver, error) {
	score, err := scorerFor(cfg.Scorer)
	if err != nil {
		return nil, err
	}
	if cfg.Threshold < 0 || cfg.Threshold > 100 {
		return nil, fmt.Errorf("threshold %d out of range [0, 100]", cfg.Threshold)
	}

	processed := make([]string, len(keys))
	for i, k := range keys {
		processed[i] = Process(k)
	}

	return &Resolver{
		keys:      processed,
		score:     score,
		threshold: cfg.Threshold,
	}, nil
}

func scorerFor(name string) (ScoreFunc, error) {
	switch name {
	case "", ScorerWRatio:
		return WeightedRatio, nil
	case ScorerJaroWinkler:
		return JaroWinkler, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownScorer, name)
	}
}

// Resolve scans every key and returns the best match. An empty query, or
// one that processes to nothing, is never found.
func (r *Resolver) Resolve(query string) Match {
	q := Process(query)
	if q == "" || len(r.keys) == 0 {
		return Match{}
	}

	best := Match{Index: -1}
	for i, key := range r.keys {
		s := r.score(q, key)
		if s > best.Score || best.Index < 0 {
			best.Index, best.Score = i, s
		}
		if s == 100 {
			break
		}
	}

	best.Found = best.Score >= r.threshold && best.Score > 0
	return best
}

// Len returns the number of searchable keys.
func (r *Resolver) Len() int {
	return len(r.keys)
}
