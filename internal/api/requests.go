// TagForge - Trending Hashtag Aggregation and Recommendation Engine
// Copyright 2026 Alex M. (tagforge)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tagforge/tagforge

// requests.go - HTTP request structs with go-playground/validator tags.
// These structs are validated before any backing call is made.
//
// The validation tags follow the go-playground/validator v10 syntax, plus
// the custom "platform" tag registered by internal/validation which accepts
// any supported social platform name.
package api

import (
	"github.com/tagforge/tagforge/internal/hashtag"
)

// GenerateRequest is the JSON body for POST /api/v1/hashtags/generate.
//
// The include flags are pointers so that an absent field keeps its default
// (trending and niche on, branded off) while an explicit false disables the
// bucket.
type GenerateRequest struct {
	ImageRef        string   `json:"image_ref" validate:"required,max=2048"`
	Category        string   `json:"category" validate:"omitempty,max=64"`
	Secondary       []string `json:"secondary_categories" validate:"omitempty,max=5,dive,max=64"`
	Platform        string   `json:"platform" validate:"omitempty,platform"`
	MaxHashtags     int      `json:"max_hashtags" validate:"gte=0,lte=50"`
	IncludeTrending *bool    `json:"include_trending"`
	IncludeNiche    *bool    `json:"include_niche"`
	IncludeBranded  *bool    `json:"include_branded"`
	BrandName       string   `json:"brand_name" validate:"omitempty,max=100"`
}

// toEngineRequest converts the validated body into an engine request,
// resolving the include-flag defaults.
func (req *GenerateRequest) toEngineRequest() hashtag.Request {
	return hashtag.Request{
		ImageRef:        req.ImageRef,
		Category:        req.Category,
		Secondary:       req.Secondary,
		Platform:        req.Platform,
		MaxHashtags:     req.MaxHashtags,
		IncludeTrending: boolOrDefault(req.IncludeTrending, true),
		IncludeNiche:    boolOrDefault(req.IncludeNiche, true),
		IncludeBranded:  boolOrDefault(req.IncludeBranded, false),
		BrandName:       req.BrandName,
	}
}

func boolOrDefault(v *bool, def bool) bool {
	if v == nil {
		return def
	}
	return *v
}

// TrendingRequest holds the validated query parameters for
// GET /api/v1/hashtags/trending.
type TrendingRequest struct {
	Category string `validate:"omitempty,max=64"`
	Platform string `validate:"omitempty,platform"`
	Limit    int    `validate:"min=1,max=100"`
}
