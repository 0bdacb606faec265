// MusicMatch - Content-Based Track Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/musicmatch

// Package recommend implements a content-based track recommendation engine.
//
// # Architecture
//
// The engine is assembled once from a raw dataset and is read-only afterwards:
//
//   - catalog: validated, deduplicated tracks with parsed genre sets
//   - algorithms: min-max normalization, an eager cosine similarity matrix
//     and top-N ranking
//   - resolver: fuzzy matching of free text against "name artist" keys
//   - explain: ordered rules producing a short reason per recommendation
//
// # Usage
//
//	ds, err := dataset.Load(ctx, loader, logger)
//	engine, err := recommend.New(ds, recommend.DefaultConfig(), logger)
//
//	res := engine.Recommend("song one artist x", 5)
//	if !res.Found() {
//	    // the query matched no track closely enough
//	}
//
// A query that matches nothing is a normal outcome reported through
// Result.Query being nil, never an error.
//
// # Thread Safety
//
// Everything built by New is immutable, so Recommend may be called from any
// number of goroutines. The optional result cache is internally synchronized.
package recommend
