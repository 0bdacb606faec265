// MusicMatch - Content-Based Track Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/musicmatch

package catalog

import (
	"strconv"
	"strings"

	"github.com/goccy/go-json"
)

// ParseGenres parses the raw artist_genres value into distinct tags.
//
// Accepted forms are a JSON array of strings and a Python-style list or tuple
// literal with single- or double-quoted items:
//
//	['pop', 'dance pop']
//	["k-pop"]
//	("rock",)
//
// Null markers, "[]", anything that is not a list and any malformed input
// all yield an empty slice. ParseGenres never fails.
func ParseGenres(raw string) []string {
	s := strings.TrimSpace(raw)
	if IsNull(s) || s == "[]" {
		return []string{}
	}

	if strings.HasPrefix(s, "[") {
		var tags []string
		if err := json.Unmarshal([]byte(s), &tags); err == nil {
			return distinct(tags)
		}
	}

	tags, ok := parseListLiteral(s)
	if !ok {
		return []string{}
	}
	return distinct(tags)
}

// distinct drops empty and repeated tags, keeping first occurrences.
func distinct(tags []string) []string {
	out := make([]string, 0, len(tags))
	seen := make(map[string]struct{}, len(tags))
	for _, t := range tags {
		if t == "" {
			continue
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}

// literalScanner walks a list literal one byte at a time.
type literalScanner struct {
	s   string
	pos int
}

// parseListLiteral parses a flat list or tuple literal. Non-string scalars
// (numbers, None, True, False) are accepted and skipped; nested containers
// are rejected.
func parseListLiteral(s string) ([]string, bool) {
	sc := &literalScanner{s: s}
	sc.skipSpace()

	var closer byte
	switch sc.next() {
	case '[':
		closer = ']'
	case '(':
		closer = ')'
	default:
		return nil, false
	}

	out := []string{}
	sc.skipSpace()
	if sc.peek() == closer {
		sc.pos++
		return out, sc.atEnd()
	}

	for {
		sc.skipSpace()
		v, isString, ok := sc.value(closer)
		if !ok {
			return nil, false
		}
		if isString {
			out = append(out, v)
		}

		sc.skipSpace()
		switch sc.next() {
		case ',':
			sc.skipSpace()
			if sc.peek() == closer {
				sc.pos++
				return out, sc.atEnd()
			}
		case closer:
			return out, sc.atEnd()
		default:
			return nil, false
		}
	}
}

func (sc *literalScanner) peek() byte {
	if sc.pos >= len(sc.s) {
		return 0
	}
	return sc.s[sc.pos]
}

func (sc *literalScanner) next() byte {
	b := sc.peek()
	if b != 0 {
		sc.pos++
	}
	return b
}

func (sc *literalScanner) skipSpace() {
	for sc.pos < len(sc.s) {
		switch sc.s[sc.pos] {
		case ' ', '\t', '\n', '\r':
			sc.pos++
		default:
			return
		}
	}
}

func (sc *literalScanner) atEnd() bool {
	sc.skipSpace()
	return sc.pos == len(sc.s)
}

// value reads one list item. It returns the decoded text and whether the
// item was a string.
func (sc *literalScanner) value(closer byte) (string, bool, bool) {
	switch sc.peek() {
	case '\'', '"':
		v, ok := sc.quoted()
		return v, true, ok
	case 0, '[', '(', '{':
		return "", false, false
	}

	start := sc.pos
	for sc.pos < len(sc.s) {
		b := sc.s[sc.pos]
		if b == ',' || b == closer || b == ' ' || b == '\t' || b == '\n' || b == '\r' {
			break
		}
		sc.pos++
	}

	token := sc.s[start:sc.pos]
	switch token {
	case "None", "True", "False":
		return "", false, true
	}
	if _, err := strconv.ParseFloat(token, 64); err == nil {
		return "", false, true
	}
	return "", false, false
}

// quoted decodes a quoted string with the common backslash escapes.
// Unknown escapes keep the backslash.
func (sc *literalScanner) quoted() (string, bool) {
	quote := sc.next()
	var b strings.Builder

	for sc.pos < len(sc.s) {
		c := sc.s[sc.pos]
		sc.pos++

		switch c {
		case quote:
			return b.String(), true
		case '\n':
			return "", false
		case '\\':
			if sc.pos >= len(sc.s) {
				return "", false
			}
			esc := sc.s[sc.pos]
			sc.pos++
			switch esc {
			case '\\', '\'', '"':
				b.WriteByte(esc)
			case 'n':
				b.WriteByte('\n')
			case 't':
				b.WriteByte('\t')
			case 'r':
				b.WriteByte('\r')
			case 'u':
				if sc.pos+4 > len(sc.s) {
					return "", false
				}
				code, err := strconv.ParseUint(sc.s[sc.pos:sc.pos+4], 16, 32)
				if err != nil {
					return "", false
				}
				b.WriteRune(rune(code))
				sc.pos += 4
			default:
				b.WriteByte('\\')
				b.WriteByte(esc)
			}
		default:
			b.WriteByte(c)
		}
	}
	return "", false
}
