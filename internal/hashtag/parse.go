// TagForge - Trending Hashtag Aggregation and Recommendation Engine
// Copyright 2026 Alex M. (tagforge)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tagforge/tagforge

package hashtag

import (
	"regexp"
	"strings"

	json "github.com/goccy/go-json"

	"github.com/tagforge/tagforge/internal/logging"
	"github.com/tagforge/tagforge/internal/metrics"
)

// fallbackTagPattern recovers hashtags from free-form model output when the
// JSON contract is broken.
var fallbackTagPattern = regexp.MustCompile(`#[A-Za-z0-9_]+`)

// ParseSuggestions decodes the AI response into bucketed candidates. Model
// output wrapped in markdown fences is unwrapped first. When the payload is
// not valid JSON the raw text is scavenged for hashtag-shaped tokens and the
// hits are distributed across the buckets by position.
func ParseSuggestions(raw string) SuggestionBuckets {
	payload := stripFences(raw)

	var buckets SuggestionBuckets
	if err := json.Unmarshal([]byte(payload), &buckets); err == nil {
		return buckets
	}

	logging.Warn().
		Int("response_len", len(raw)).
		Msg("AI suggestion response is not valid JSON, falling back to pattern extraction")
	metrics.RecordAIFallbackParse()

	tags := dedupeTags(fallbackTagPattern.FindAllString(raw, -1))
	return SuggestionBuckets{
		Trending: cut(tags, 0, 3),
		Popular:  cut(tags, 3, 8),
		Niche:    cut(tags, 8, 12),
		Branded:  cut(tags, 12, 15),
	}
}

// stripFences removes a surrounding markdown code fence, if present.
func stripFences(raw string) string {
	s := strings.TrimSpace(raw)
	if strings.HasPrefix(s, "```json") {
		s = strings.TrimPrefix(s, "```json")
	} else {
		s = strings.TrimPrefix(s, "```")
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

// cut copies tags[lo:hi], tolerating bounds past the end of the slice. Copies
// keep the buckets from sharing backing storage with each other.
func cut(tags []string, lo, hi int) []string {
	if lo > len(tags) {
		lo = len(tags)
	}
	if hi > len(tags) {
		hi = len(tags)
	}
	out := make([]string, hi-lo)
	copy(out, tags[lo:hi])
	return out
}
