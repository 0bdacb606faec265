// MusicMatch - Content-Based Track Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/musicmatch

// Package resolver maps free-text song queries onto catalog positions.
//
// Every catalog track is searchable by the key "<name> <artist>". A query is
// compared against all keys in a single linear scan and the best-scoring key
// wins. Ties keep the earliest position. Scores below the configured
// threshold resolve to no match, which is a normal outcome rather than an
// error.
//
// # Scorers
//
//   - wratio: the weighted ratio popularized by fuzzywuzzy, combining plain,
//     token-sort, token-set and partial Levenshtein ratios (default)
//   - jaro_winkler: Jaro-Winkler similarity scaled to 0-100
//
// Both scorers operate on processed text: lowercased, diacritics folded,
// remaining non-ASCII removed and punctuation replaced by spaces.
//
// # Thread Safety
//
// A Resolver holds only immutable state and is safe for concurrent use.
package resolver
