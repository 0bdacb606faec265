// MusicMatch - Content-Based Track Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/musicmatch

package recommend

import (
	"fmt"
	"math"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/musicmatch/internal/cache"
	"github.com/tomtom215/musicmatch/internal/catalog"
	"github.com/tomtom215/musicmatch/internal/logging"
	"github.com/tomtom215/musicmatch/internal/metrics"
	"github.com/tomtom215/musicmatch/internal/recommend/algorithms"
	"github.com/tomtom215/musicmatch/internal/recommend/explain"
	"github.com/tomtom215/musicmatch/internal/recommend/resolver"
)

// Engine answers recommendation queries against one catalog snapshot.
// It is safe for concurrent use.
type Engine struct {
	cfg    Config
	logger zerolog.Logger

	catalog   *catalog.Catalog
	sim       *algorithms.SimilarityMatrix
	resolver  *resolver.Resolver
	explainer *explain.Explainer

	// nil when caching is disabled
	cache *cache.LRU[string, Result]

	buildDuration time.Duration

	requestCount  atomic.Int64
	notFoundCount atomic.Int64
	cacheHits     atomic.Int64
	cacheMisses   atomic.Int64
}

// New builds the catalog, the similarity model and the query resolver from
// ds. A schema error from catalog.Build is returned unchanged in the chain,
// and no engine is produced.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func New(ds catalog.Dataset, cfg Config, logger zerolog.Logger) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	start := time.Now()
	cat, err := catalog.Build(ds)
	if err != nil {
		return nil, fmt.Errorf("build catalog: %w", err)
	}

	sim := algorithms.NewSimilarityMatrix(algorithms.Normalize(cat.FeatureMatrix()))

	res, err := resolver.New(cat.SearchKeys(), cfg.ResolverConfig())
	if err != nil {
		return nil, fmt.Errorf("create resolver: %w", err)
	}

	e := &Engine{
		cfg:           cfg,
		logger:        logger.With().Str("component", "recommend").Logger(),
		catalog:       cat,
		sim:           sim,
		resolver:      res,
		explainer:     explain.New(cfg.ExplainConfig()),
		buildDuration: time.Since(start),
	}
	if cfg.CacheEnabled && cfg.CacheSize > 0 {
		e.cache = cache.NewLRU[string, Result](cfg.CacheSize, cfg.CacheTTL)
	}

	stats := cat.Stats()
	metrics.RecordCatalogBuild(stats.Tracks, len(stats.Features), stats.DroppedMissing, stats.DroppedDuplicate, e.buildDuration)

	e.logger.Info().
		Int("tracks", stats.Tracks).
		Int("rows_read", stats.RowsRead).
		Int("dropped_missing", stats.DroppedMissing).
		Int("dropped_duplicate", stats.DroppedDuplicate).
		Strs("features", stats.Features).
		Str("scorer", cfg.Scorer).
		Dur("duration", e.buildDuration).
		Msg("Recommendation engine built")

	return e, nil
}

// Recommend resolves query to a catalog track and returns up to n similar
// tracks. n <= 0 selects Config.DefaultN and values above Config.MaxN are
// capped. When the query matches nothing, Result.Query is nil.
func (e *Engine) Recommend(query string, n int) Result {
	start := time.Now()
	e.requestCount.Add(1)
	n = e.cfg.limit(n)

	key := resolver.Process(query) + "|" + strconv.Itoa(n)
	if e.cache != nil {
		if cached, ok := e.cache.Get(key); ok {
			e.cacheHits.Add(1)
			metrics.RecordRecommendCache(true)
			e.finish(query, &cached, start, true)
			return cached.clone()
		}
		e.cacheMisses.Add(1)
		metrics.RecordRecommendCache(false)
	}

	res := e.recommend(query, n)
	if e.cache != nil {
		e.cache.Add(key, res.clone())
	}
	e.finish(query, &res, start, false)
	return res
}

func (e *Engine) recommend(query string, n int) Result {
	match := e.resolver.Resolve(query)
	if !match.Found {
		return Result{MatchScore: match.Score, Items: []Recommendation{}}
	}

	q := e.catalog.At(match.Index)
	ranked := algorithms.TopN(e.sim, match.Index, n)
	items := make([]Recommendation, len(ranked))
	for i, r := range ranked {
		c := e.catalog.At(r.Index)
		items[i] = Recommendation{
			Name:   c.Name,
			Artist: c.Artist,
			Score:  math.Round(r.Score*1000) / 10,
			Reason: e.explainer.Explain(q, c),
		}
	}
	return Result{Query: q.Clone(), MatchScore: match.Score, Items: items}
}

// finish records metrics and the per-query debug line.
func (e *Engine) finish(query string, res *Result, start time.Time, cacheHit bool) {
	elapsed := time.Since(start)
	metrics.RecordRecommend(res.Found(), elapsed)
	if !res.Found() {
		e.notFoundCount.Add(1)
	}

	event := e.logger.Debug().
		Str("query", logging.SanitizeQuery(query)).
		Bool("found", res.Found()).
		Int("match_score", res.MatchScore).
		Int("returned", len(res.Items)).
		Bool("cache_hit", cacheHit).
		Dur("duration", elapsed)
	if res.Found() {
		event = event.Str("selected", res.Query.Name+" - "+res.Query.Artist)
	}
	event.Msg("Recommendation complete")
}

// PurgeExpired drops cached results older than Config.CacheTTL and returns
// how many were removed.
func (e *Engine) PurgeExpired() int {
	if e.cache == nil {
		return 0
	}
	return e.cache.CleanupExpired()
}

// Catalog returns the track collection the engine was built from.
func (e *Engine) Catalog() *catalog.Catalog {
	return e.catalog
}

// Similarity returns the pairwise similarity model.
func (e *Engine) Similarity() *algorithms.SimilarityMatrix {
	return e.sim
}

// Config returns the configuration the engine was built with.
func (e *Engine) Config() Config {
	return e.cfg
}

// Stats returns the build summary and request counters.
func (e *Engine) Stats() Stats {
	s := Stats{
		Catalog:         e.catalog.Stats(),
		BuildDurationMS: e.buildDuration.Milliseconds(),
		RequestCount:    e.requestCount.Load(),
		NotFoundCount:   e.notFoundCount.Load(),
		CacheHits:       e.cacheHits.Load(),
		CacheMisses:     e.cacheMisses.Load(),
	}
	if e.cache != nil {
		s.CacheSize = e.cache.Len()
	}
	return s
}
