// TagForge - Trending Hashtag Aggregation and Recommendation Engine
// Copyright 2026 Alex M. (tagforge)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tagforge/tagforge

package categorize

import (
	"context"
	"fmt"
	"strings"

	json "github.com/goccy/go-json"

	"github.com/tagforge/tagforge/internal/ai"
	"github.com/tagforge/tagforge/internal/logging"
)

// Classification is the outcome of categorizing one piece of content.
type Classification struct {
	Primary     string   `json:"primary_category"`
	Secondary   []string `json:"secondary_categories"`
	Confidence  float64  `json:"confidence_score"`
	Description string   `json:"description"`
}

// Classifier categorizes content with the AI collaborator and degrades to
// keyword matching when the model's reply is not parseable.
type Classifier struct {
	client ai.Client
}

// NewClassifier creates a classifier over the AI client.
func NewClassifier(client ai.Client) *Classifier {
	return &Classifier{client: client}
}

// Classify categorizes the referenced content. The only error path is an
// AI call failure; a malformed reply degrades to keyword matching and an
// off-taxonomy primary degrades to "unknown" at halved confidence.
func (c *Classifier) Classify(ctx context.Context, imageRef string) (Classification, error) {
	raw, err := c.client.AnalyzeJSON(ctx, imageRef, classificationPrompt())
	if err != nil {
		return Classification{}, fmt.Errorf("classification analysis failed: %w", err)
	}

	cls := parseClassification(raw)
	logging.Ctx(ctx).Info().
		Str("category", cls.Primary).
		Float64("confidence", cls.Confidence).
		Msg("content categorized")
	return cls, nil
}

// classificationPrompt asks for a strict JSON classification against the
// taxonomy.
func classificationPrompt() string {
	var sb strings.Builder
	sb.WriteString("Analyze this content and categorize it for social media purposes.\n\n")
	sb.WriteString("Available categories: ")
	sb.WriteString(strings.Join(Categories(), ", "))
	sb.WriteString("\n\nProvide your response in the following JSON format:\n")
	sb.WriteString(`{
    "primary_category": "most_relevant_category",
    "secondary_categories": ["relevant_category_1", "relevant_category_2"],
    "confidence_score": 0.85,
    "description": "Brief description of the content and why you chose these categories"
}`)
	sb.WriteString("\n\nGUIDELINES:\n")
	sb.WriteString("- Choose the most accurate primary category from the list above\n")
	sb.WriteString("- Include 1-3 secondary categories that also apply\n")
	sb.WriteString("- Confidence score should be between 0.0 and 1.0\n")
	sb.WriteString("- If the content does not clearly fit any category, use the closest match and lower confidence\n")
	sb.WriteString("\nReturn only the JSON response, nothing else.")
	return sb.String()
}

// parseClassification decodes the model reply, validating every category
// against the taxonomy. A reply that is not JSON falls back to scanning the
// text for category keywords at a fixed 0.6 confidence.
func parseClassification(raw string) Classification {
	text := stripFences(raw)

	var decoded struct {
		PrimaryCategory     string   `json:"primary_category"`
		SecondaryCategories []string `json:"secondary_categories"`
		ConfidenceScore     float64  `json:"confidence_score"`
		Description         string   `json:"description"`
	}
	if err := json.Unmarshal([]byte(text), &decoded); err != nil {
		logging.Warn().Err(err).Msg("classification reply is not JSON, falling back to keyword match")
		return keywordFallback(text)
	}

	cls := Classification{
		Primary:     decoded.PrimaryCategory,
		Confidence:  decoded.ConfidenceScore,
		Description: decoded.Description,
	}
	if cls.Primary == "" {
		cls.Primary = CategoryUnknown
	}
	if !IsValid(cls.Primary) && cls.Primary != CategoryUnknown {
		cls.Primary = CategoryUnknown
		cls.Confidence *= 0.5
	}
	for _, sec := range decoded.SecondaryCategories {
		if IsValid(sec) && sec != cls.Primary {
			cls.Secondary = append(cls.Secondary, sec)
		}
	}
	return cls
}

// keywordFallback scans free text for the first taxonomy match.
func keywordFallback(text string) Classification {
	lower := strings.ToLower(text)
	for _, category := range categoryOrder {
		if strings.Contains(lower, category) {
			return Classification{Primary: category, Confidence: 0.6, Description: text}
		}
		for _, kw := range categoryKeywords[category] {
			if strings.Contains(lower, kw) {
				return Classification{Primary: category, Confidence: 0.6, Description: text}
			}
		}
	}
	return Classification{Primary: CategoryUnknown, Description: text}
}

// stripFences removes a surrounding markdown code fence when present.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```json") {
		s = strings.TrimPrefix(s, "```json")
	} else if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```")
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
