// MusicMatch - Content-Based Track Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/musicmatch

package resolver

import (
	"math"
	"sort"
	"strings"

	"github.com/xrash/smetrics"
)

// Weighted ratio scale factors.
const (
	unbaseScale         = 0.95
	partialScale        = 0.90
	longPartialScale    = 0.60
	partialLengthRatio  = 1.5
	longPartialRatioMin = 8
)

// round rounds half to even and converts to an integer score.
func round(v float64) int {
	return int(math.RoundToEven(v))
}

// levenshteinRatio is the normalized similarity (lensum-dist)/lensum where a
// substitution costs 2, so it equals the share of matching characters.
func levenshteinRatio(a, b string) float64 {
	lensum := len(a) + len(b)
	if lensum == 0 {
		return 1
	}
	dist := smetrics.WagnerFischer(a, b, 1, 1, 2)
	return float64(lensum-dist) / float64(lensum)
}

// Ratio returns the Levenshtein ratio of a and b on a 0-100 scale.
// The inputs are compared as given. An empty input scores 0.
func Ratio(a, b string) int {
	if a == "" || b == "" {
		return 0
	}
	return round(100 * levenshteinRatio(a, b))
}

// PartialRatio slides the shorter input across the longer one and returns
// the best Ratio of any equally long window.
func PartialRatio(a, b string) int {
	if a == "" || b == "" {
		return 0
	}

	shorter, longer := a, b
	if len(shorter) > len(longer) {
		shorter, longer = longer, shorter
	}

	best := 0.0
	for start := 0; start+len(shorter) <= len(longer); start++ {
		r := levenshteinRatio(shorter, longer[start:start+len(shorter)])
		if r > 0.995 {
			return 100
		}
		if r > best {
			best = r
		}
	}
	return round(100 * best)
}

// sortedTokens splits processed text into whitespace tokens and sorts them.
func sortedTokens(s string) string {
	tokens := strings.Fields(s)
	sort.Strings(tokens)
	return strings.Join(tokens, " ")
}

func tokenSort(a, b string, partial bool) int {
	a, b = sortedTokens(Process(a)), sortedTokens(Process(b))
	if partial {
		return PartialRatio(a, b)
	}
	return Ratio(a, b)
}

// TokenSortRatio compares processed inputs after sorting their tokens.
func TokenSortRatio(a, b string) int {
	return tokenSort(a, b, false)
}

// PartialTokenSortRatio is TokenSortRatio with PartialRatio comparison.
func PartialTokenSortRatio(a, b string) int {
	return tokenSort(a, b, true)
}

func tokenSet(a, b string, partial bool) int {
	p1, p2 := Process(a), Process(b)
	if p1 == "" || p2 == "" {
		return 0
	}

	set1, set2 := tokenSetOf(p1), tokenSetOf(p2)
	var common, only1, only2 []string
	for t := range set1 {
		if _, ok := set2[t]; ok {
			common = append(common, t)
		} else {
			only1 = append(only1, t)
		}
	}
	for t := range set2 {
		if _, ok := set1[t]; !ok {
			only2 = append(only2, t)
		}
	}
	sort.Strings(common)
	sort.Strings(only1)
	sort.Strings(only2)

	sect := strings.Join(common, " ")
	combined1 := strings.TrimSpace(sect + " " + strings.Join(only1, " "))
	combined2 := strings.TrimSpace(sect + " " + strings.Join(only2, " "))

	ratio := Ratio
	if partial {
		ratio = PartialRatio
	}
	return max(ratio(sect, combined1), ratio(sect, combined2), ratio(combined1, combined2))
}

func tokenSetOf(s string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, t := range strings.Fields(s) {
		set[t] = struct{}{}
	}
	return set
}

// TokenSetRatio compares the shared tokens of both inputs against each
// input's full token set, ignoring order and repetition.
func TokenSetRatio(a, b string) int {
	return tokenSet(a, b, false)
}

// PartialTokenSetRatio is TokenSetRatio with PartialRatio comparison.
func PartialTokenSetRatio(a, b string) int {
	return tokenSet(a, b, true)
}

// WeightedRatio combines the ratios above into one 0-100 score. Inputs are
// processed first. When the lengths differ by a factor of 1.5 or more the
// partial variants are considered, scaled down by 0.9 (0.6 beyond a factor
// of 8); otherwise the token variants are scaled by 0.95.
func WeightedRatio(a, b string) int {
	p1, p2 := Process(a), Process(b)
	if p1 == "" || p2 == "" {
		return 0
	}

	base := float64(Ratio(p1, p2))
	lenRatio := float64(max(len(p1), len(p2))) / float64(min(len(p1), len(p2)))

	if lenRatio < partialLengthRatio {
		tsor := float64(TokenSortRatio(p1, p2)) * unbaseScale
		tser := float64(TokenSetRatio(p1, p2)) * unbaseScale
		return round(max(base, tsor, tser))
	}

	scale := partialScale
	if lenRatio > longPartialRatioMin {
		scale = longPartialScale
	}
	partial := float64(PartialRatio(p1, p2)) * scale
	ptsor := float64(PartialTokenSortRatio(p1, p2)) * unbaseScale * scale
	ptser := float64(PartialTokenSetRatio(p1, p2)) * unbaseScale * scale
	return round(max(base, partial, ptsor, ptser))
}
