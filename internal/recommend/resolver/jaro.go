// MusicMatch - Content-Based Track Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/musicmatch

package resolver

import (
	"github.com/hbollon/go-edlib"
)

// JaroWinkler scores processed inputs by Jaro-Winkler similarity on a
// 0-100 scale.
func JaroWinkler(a, b string) int {
	p1, p2 := Process(a), Process(b)
	if p1 == "" || p2 == "" {
		return 0
	}
	sim, err := edlib.StringsSimilarity(p1, p2, edlib.JaroWinkler)
	if err != nil {
		return 0
	}
	return round(100 * float64(sim))
}
