// MusicMatch - Content-Based Track Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/musicmatch

/*
Package cache provides a thread-safe, generic LRU cache with optional TTL.

The recommender uses it to memoize query results. Results are a pure
function of the immutable catalog and the normalized query, so entries never
need invalidation while a catalog snapshot is loaded; the TTL only bounds
memory held by stale, rarely repeated queries.

# Usage Example

	c := cache.NewLRU[string, Result](1024, 10*time.Minute)
	c.Add("song one|5", result)
	if r, ok := c.Get("song one|5"); ok {
	    // use r
	}

# Thread Safety

All methods are safe for concurrent use. Get takes the write lock because it
updates recency order.
*/
package cache
