// TagForge - Trending Hashtag Aggregation and Recommendation Engine
// Copyright 2026 Alex M. (tagforge)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tagforge/tagforge

package hashtag

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/tagforge/tagforge/internal/categorize"
	"github.com/tagforge/tagforge/internal/platform"
	"github.com/tagforge/tagforge/internal/trending"
)

// descriptionPrompt asks the model for a compact content description that
// seeds the suggestion prompt.
const descriptionPrompt = "Describe this image focusing on key subjects, activities, style, and mood for hashtag generation."

// buildSuggestionPrompt assembles the AI-suggestion prompt from the request,
// the image description, and the real trending records fetched for the
// request's category.
func buildSuggestionPrompt(req Request, description string, realTrending []trending.HashtagRecord) string {
	guide := platform.For(req.Platform)

	trendingLine := "None available"
	if len(realTrending) > 0 {
		tags := make([]string, len(realTrending))
		for i, rec := range realTrending {
			tags[i] = rec.Hashtag
		}
		trendingLine = strings.Join(tags, ", ")
	}

	var b strings.Builder
	b.WriteString("Generate relevant hashtags for this social media image using AI analysis combined with real trending data.\n\n")

	fmt.Fprintf(&b, "IMAGE ANALYSIS: %s\n\n", description)
	fmt.Fprintf(&b, "REAL TRENDING HASHTAGS FOR THIS CATEGORY: %s\n\n", trendingLine)

	b.WriteString("REQUIREMENTS:\n")
	fmt.Fprintf(&b, "- Platform: %s\n", titleCase(guide.Name))
	fmt.Fprintf(&b, "- Number of hashtags: %d-%d (max %d)\n", guide.OptimalMin, guide.OptimalMax, req.MaxHashtags)
	b.WriteString("- Incorporate trending hashtags when relevant\n")
	b.WriteString("- Mix of popular, niche, and trending hashtags\n")
	if req.Category != "" {
		fmt.Fprintf(&b, "- Primary category: %s\n", req.Category)
		if kws := categorize.Keywords(req.Category); len(kws) > 0 {
			fmt.Fprintf(&b, "- Category themes: %s\n", strings.Join(kws, ", "))
		}
		if len(req.Secondary) > 0 {
			fmt.Fprintf(&b, "- Secondary categories: %s\n", strings.Join(req.Secondary, ", "))
		}
	}
	if req.BrandName != "" {
		fmt.Fprintf(&b, "- Brand: %s\n", req.BrandName)
	}

	b.WriteString("\nHASHTAG STRATEGY:\n")
	fmt.Fprintf(&b, "1. TRENDING: Use %d real trending hashtags from the list above when relevant\n", len(realTrending))
	b.WriteString("2. POPULAR: High-volume hashtags for broad reach\n")
	b.WriteString("3. NICHE: Specific, targeted hashtags for your content type\n")
	b.WriteString("4. BRANDED: Brand-specific hashtags (if applicable)\n")

	b.WriteString("\nGUIDELINES:\n")
	b.WriteString("- Prioritize real trending hashtags that match the image content\n")
	b.WriteString("- Base all hashtags on what's actually visible in the image\n")
	b.WriteString("- Include a mix of different popularity levels\n")
	b.WriteString("- Avoid banned or shadowbanned hashtags\n")
	b.WriteString("- Use proper hashtag format (# followed by text, no spaces)\n")
	b.WriteString("- Consider current trends and seasonality\n")
	b.WriteString("- Make hashtags specific and relevant, not generic\n")

	b.WriteString("\nReturn hashtags in this JSON format:\n")
	b.WriteString("{\n")
	b.WriteString("    \"trending_hashtags\": [\"trending hashtags that match the image\"],\n")
	b.WriteString("    \"popular_hashtags\": [\"#hashtag1\", \"#hashtag2\"],\n")
	b.WriteString("    \"niche_hashtags\": [\"#hashtag3\", \"#hashtag4\"],\n")
	b.WriteString("    \"branded_hashtags\": [\"#hashtag5\", \"#hashtag6\"]\n")
	b.WriteString("}\n")
	b.WriteString("\nReturn only the JSON response, nothing else.")

	return b.String()
}

// titleCase upper-cases the first rune only. strings.Title is deprecated and
// the platform names are plain ASCII identifiers.
func titleCase(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(s)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
