// MusicMatch - Content-Based Track Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/musicmatch

package algorithms

import "sort"

// TopN ranks every position other than query by its score against query and
// returns the best n. Ordering is score descending, then position ascending.
// Fewer than n results are returned when the catalog is small; n <= 0 or an
// out-of-range query returns an empty slice.
func TopN(s Scorer, query, n int) []Scored {
	size := s.Len()
	if n <= 0 || query < 0 || query >= size {
		return []Scored{}
	}

	candidates := make([]Scored, 0, size-1)
	for j := 0; j < size; j++ {
		if j == query {
			continue
		}
		candidates = append(candidates, Scored{Index: j, Score: s.Score(query, j)})
	}

	sort.Slice(candidates, func(a, b int) bool {
		if candidates[a].Score != candidates[b].Score {
			return candidates[a].Score > candidates[b].Score
		}
		return candidates[a].Index < candidates[b].Index
	})

	if len(candidates) > n {
		candidates = candidates[:n]
	}
	return candidates
}
