// MusicMatch - Content-Based Track Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/musicmatch

package recommend

import (
	"fmt"
	"time"

	"github.com/tomtom215/musicmatch/internal/cache"
	"github.com/tomtom215/musicmatch/internal/recommend/explain"
	"github.com/tomtom215/musicmatch/internal/recommend/resolver"
	"github.com/tomtom215/musicmatch/internal/validation"
)

// Default limits for the number of recommendations.
const (
	DefaultN = 5
	MaxN     = 50
)

// Config contains all configuration for the recommendation engine.
type Config struct {
	// Threshold is the minimum fuzzy score (0-100) for a query to resolve.
	// Default: 60.
	Threshold int `koanf:"threshold" validate:"min=0,max=100"`

	// Scorer selects the fuzzy metric: wratio or jaro_winkler.
	// Default: wratio.
	Scorer string `koanf:"scorer" validate:"omitempty,oneof=wratio jaro_winkler"`

	// DefaultN is used when a request asks for zero or fewer results.
	DefaultN int `koanf:"default_n" validate:"min=1"`

	// MaxN caps the number of results per request.
	MaxN int `koanf:"max_n" validate:"min=1"`

	// MaxSharedGenres limits how many genres one explanation lists.
	MaxSharedGenres int `koanf:"max_shared_genres" validate:"min=1"`

	// PopularityDelta is the popularity gap that labels a hit or a hidden gem.
	PopularityDelta float64 `koanf:"popularity_delta" validate:"gte=0"`

	// CacheEnabled turns on the result cache.
	CacheEnabled bool `koanf:"cache_enabled"`

	// CacheSize is the maximum number of cached results.
	CacheSize int `koanf:"cache_size" validate:"min=0"`

	// CacheTTL expires cached results. Zero keeps them until evicted.
	CacheTTL time.Duration `koanf:"cache_ttl" validate:"gte=0"`
}

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Threshold:       resolver.DefaultThreshold,
		Scorer:          resolver.ScorerWRatio,
		DefaultN:        DefaultN,
		MaxN:            MaxN,
		MaxSharedGenres: explain.DefaultMaxSharedGenres,
		PopularityDelta: explain.DefaultPopularityDelta,
		CacheEnabled:    true,
		CacheSize:       cache.DefaultCapacity,
		CacheTTL:        0,
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if verr := validation.ValidateStruct(c); verr != nil {
		return verr
	}
	if c.MaxN < c.DefaultN {
		return fmt.Errorf("max_n must be >= default_n, got %d < %d", c.MaxN, c.DefaultN)
	}
	return nil
}

// ResolverConfig returns the query resolver settings.
func (c *Config) ResolverConfig() resolver.Config {
	return resolver.Config{Threshold: c.Threshold, Scorer: c.Scorer}
}

// ExplainConfig returns the explanation settings.
func (c *Config) ExplainConfig() explain.Config {
	return explain.Config{MaxSharedGenres: c.MaxSharedGenres, PopularityDelta: c.PopularityDelta}
}

// limit maps a requested result count to the effective one.
func (c *Config) limit(n int) int {
	if n <= 0 {
		n = c.DefaultN
	}
	if n > c.MaxN {
		n = c.MaxN
	}
	return n
}
