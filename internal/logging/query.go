// MusicMatch - Content-Based Track Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/musicmatch

package logging

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// MaxQueryLogLength caps the number of runes of a user query written to logs.
const MaxQueryLogLength = 128

// SanitizeQuery prepares free-text user input for a log field: control
// characters become spaces, surrounding whitespace is trimmed and the result
// is truncated to MaxQueryLogLength runes with a trailing ellipsis.
func SanitizeQuery(q string) string {
	q = strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return ' '
		}
		return r
	}, q)
	q = strings.TrimSpace(q)
	return truncateString(q, MaxQueryLogLength)
}

// truncateString shortens s to at most maxLen runes.
func truncateString(s string, maxLen int) string {
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	runes := []rune(s)
	return string(runes[:maxLen]) + "..."
}
