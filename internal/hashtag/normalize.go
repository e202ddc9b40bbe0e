// TagForge - Trending Hashtag Aggregation and Recommendation Engine
// Copyright 2026 Alex M. (tagforge)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tagforge/tagforge

package hashtag

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	minTagRunes = 3
	maxTagRunes = 100
)

// NormalizeTag canonicalizes a single hashtag candidate: it trims whitespace,
// ensures exactly one leading #, drops every rune after the prefix that is
// not a letter or digit, and rejects tags shorter than 3 or longer than 100
// runes. The empty string signals rejection.
func NormalizeTag(raw string) string {
	tag := strings.TrimSpace(raw)
	if tag == "" {
		return ""
	}
	if !strings.HasPrefix(tag, "#") {
		tag = "#" + tag
	}

	var b strings.Builder
	b.Grow(len(tag))
	b.WriteByte('#')
	for _, r := range tag[1:] {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	tag = b.String()

	if n := utf8.RuneCountInString(tag); n < minTagRunes || n > maxTagRunes {
		return ""
	}
	return tag
}

// normalizeTags applies NormalizeTag to every candidate and drops rejects.
func normalizeTags(raw []string) []string {
	out := make([]string, 0, len(raw))
	for _, candidate := range raw {
		if tag := NormalizeTag(candidate); tag != "" {
			out = append(out, tag)
		}
	}
	return out
}

// dedupeTags removes case-insensitive duplicates, keeping the first-seen
// casing and order.
func dedupeTags(tags []string) []string {
	seen := make(map[string]struct{}, len(tags))
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		key := strings.ToLower(tag)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, tag)
	}
	return out
}

// head returns at most n leading elements without sharing capacity with the
// input slice.
func head(tags []string, n int) []string {
	if n > len(tags) {
		n = len(tags)
	}
	out := make([]string, n)
	copy(out, tags[:n])
	return out
}
