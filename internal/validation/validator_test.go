// TagForge - Trending Hashtag Aggregation and Recommendation Engine
// Copyright 2026 Alex M. (tagforge)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tagforge/tagforge

package validation

import (
	"strings"
	"testing"
)

type generateRequest struct {
	ImageRef    string `validate:"required,max=2048"`
	Platform    string `validate:"omitempty,platform"`
	MaxHashtags int    `validate:"gte=0,lte=50"`
	BrandName   string `validate:"omitempty,max=100"`
}

type trendingQuery struct {
	Category string `validate:"required,min=2,max=64"`
	Platform string `validate:"omitempty,platform"`
	Limit    int    `validate:"gte=0,lte=100"`
}

func TestValidateStructPasses(t *testing.T) {
	req := generateRequest{
		ImageRef:    "uploads/sunset.jpg",
		Platform:    "instagram",
		MaxHashtags: 15,
	}

	if err := ValidateStruct(&req); err != nil {
		t.Errorf("ValidateStruct returned %v, want nil", err)
	}
}

func TestValidateStructOmitsEmptyPlatform(t *testing.T) {
	req := generateRequest{ImageRef: "uploads/sunset.jpg"}

	if err := ValidateStruct(&req); err != nil {
		t.Errorf("empty platform should pass omitempty, got %v", err)
	}
}

func TestValidateStructRequiredField(t *testing.T) {
	err := ValidateStruct(&generateRequest{})
	if err == nil {
		t.Fatal("ValidateStruct returned nil, want required-field error")
	}

	errs := err.Errors()
	if len(errs) != 1 {
		t.Fatalf("Errors len = %d, want 1: %v", len(errs), err)
	}
	if errs[0].Field() != "ImageRef" || errs[0].Tag() != "required" {
		t.Errorf("error = field %q tag %q, want ImageRef/required", errs[0].Field(), errs[0].Tag())
	}
	if got := errs[0].Error(); got != "ImageRef is required" {
		t.Errorf("message = %q", got)
	}
}

func TestValidateStructPlatformTag(t *testing.T) {
	tests := []struct {
		name     string
		platform string
		wantErr  bool
	}{
		{name: "instagram", platform: "instagram", wantErr: false},
		{name: "facebook", platform: "facebook", wantErr: false},
		{name: "uppercase accepted", platform: "FACEBOOK", wantErr: false},
		{name: "unsupported network", platform: "twitter", wantErr: true},
		{name: "garbage", platform: "not-a-platform", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := generateRequest{ImageRef: "x.jpg", Platform: tt.platform}
			err := ValidateStruct(&req)

			if tt.wantErr && err == nil {
				t.Fatalf("platform %q passed, want error", tt.platform)
			}
			if !tt.wantErr && err != nil {
				t.Fatalf("platform %q rejected: %v", tt.platform, err)
			}
			if tt.wantErr {
				if got := err.Errors()[0].Error(); got != "Platform must be a supported platform" {
					t.Errorf("message = %q", got)
				}
			}
		})
	}
}

func TestValidateStructNumericRange(t *testing.T) {
	req := generateRequest{ImageRef: "x.jpg", MaxHashtags: 51}

	err := ValidateStruct(&req)
	if err == nil {
		t.Fatal("MaxHashtags=51 passed, want lte error")
	}
	if got := err.Errors()[0].Error(); got != "MaxHashtags must be less than or equal to 50" {
		t.Errorf("message = %q", got)
	}
}

func TestValidateStructStringLength(t *testing.T) {
	req := trendingQuery{Category: "f"}

	err := ValidateStruct(&req)
	if err == nil {
		t.Fatal("one-char category passed, want min error")
	}
	if got := err.Errors()[0].Error(); got != "Category must be at least 2 characters" {
		t.Errorf("message = %q", got)
	}

	req = trendingQuery{Category: strings.Repeat("a", 65)}
	err = ValidateStruct(&req)
	if err == nil {
		t.Fatal("65-char category passed, want max error")
	}
	if got := err.Errors()[0].Error(); got != "Category must be at most 64 characters" {
		t.Errorf("message = %q", got)
	}
}

func TestValidateStructMultipleErrors(t *testing.T) {
	req := generateRequest{Platform: "myspace", MaxHashtags: 99}

	err := ValidateStruct(&req)
	if err == nil {
		t.Fatal("ValidateStruct returned nil, want three errors")
	}

	if len(err.Errors()) != 3 {
		t.Fatalf("Errors len = %d, want 3: %v", len(err.Errors()), err)
	}
	if !strings.Contains(err.Error(), "; ") {
		t.Errorf("combined message not joined: %q", err.Error())
	}

	apiErr := err.ToAPIError()
	if apiErr.Code != "VALIDATION_ERROR" {
		t.Errorf("Code = %q", apiErr.Code)
	}
	fields, ok := apiErr.Details["fields"].([]map[string]interface{})
	if !ok {
		t.Fatalf("Details[fields] has type %T", apiErr.Details["fields"])
	}
	if len(fields) != 3 {
		t.Errorf("fields len = %d, want 3", len(fields))
	}
	if !strings.Contains(apiErr.Message, "ImageRef: ") {
		t.Errorf("multi-error message missing field prefix: %q", apiErr.Message)
	}
}

func TestToAPIErrorSingleError(t *testing.T) {
	err := ValidateStruct(&generateRequest{})
	if err == nil {
		t.Fatal("want validation error")
	}

	apiErr := err.ToAPIError()
	if apiErr.Code != "VALIDATION_ERROR" {
		t.Errorf("Code = %q", apiErr.Code)
	}
	if apiErr.Message != "ImageRef is required" {
		t.Errorf("Message = %q", apiErr.Message)
	}
	if apiErr.Details["field"] != "ImageRef" || apiErr.Details["tag"] != "required" {
		t.Errorf("Details = %v", apiErr.Details)
	}
}

func TestValidateStructNonStruct(t *testing.T) {
	err := ValidateStruct(42)
	if err == nil {
		t.Fatal("ValidateStruct(42) returned nil, want error")
	}
	if err.Errors()[0].Field() != "unknown" {
		t.Errorf("field = %q, want unknown", err.Errors()[0].Field())
	}
}

func TestGetValidatorSingleton(t *testing.T) {
	if GetValidator() != GetValidator() {
		t.Error("GetValidator returned distinct instances")
	}
}
