// TagForge - Trending Hashtag Aggregation and Recommendation Engine
// Copyright 2026 Alex M. (tagforge)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tagforge/tagforge

package ai

import (
	"context"
	"fmt"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/tagforge/tagforge/internal/config"
	"github.com/tagforge/tagforge/internal/logging"
)

// AnthropicClient implements Client against the Anthropic Messages API.
type AnthropicClient struct {
	client    *anthropic.Client
	model     string
	maxTokens int64
	timeout   time.Duration
}

var _ Client = (*AnthropicClient)(nil)

// NewAnthropicClient creates a Messages API client from configuration.
func NewAnthropicClient(cfg *config.AIConfig) *AnthropicClient {
	client := anthropic.NewClient(
		option.WithAPIKey(cfg.APIKey),
	)
	return &AnthropicClient{
		client:    &client,
		model:     cfg.Model,
		maxTokens: int64(cfg.MaxTokens),
		timeout:   cfg.Timeout,
	}
}

// Analyze implements Client.
func (c *AnthropicClient) Analyze(ctx context.Context, imageRef, prompt string) (string, error) {
	return c.send(ctx, imageRef, prompt, "")
}

// AnalyzeJSON implements Client. The assistant turn is prefilled with "{"
// so the model continues a JSON object; the prefill is prepended back onto
// the reply.
func (c *AnthropicClient) AnalyzeJSON(ctx context.Context, imageRef, prompt string) (string, error) {
	text, err := c.send(ctx, imageRef, prompt, "{")
	if err != nil {
		return "", err
	}
	return "{" + text, nil
}

func (c *AnthropicClient) send(ctx context.Context, imageRef, prompt, prefill string) (string, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	content := prompt
	if imageRef != "" {
		content = "Image reference: " + imageRef + "\n\n" + prompt
	}

	messages := []anthropic.MessageParam{
		anthropic.NewUserMessage(anthropic.NewTextBlock(content)),
	}
	if prefill != "" {
		messages = append(messages, anthropic.NewAssistantMessage(anthropic.NewTextBlock(prefill)))
	}

	start := time.Now()
	message, err := c.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(c.model),
		MaxTokens: c.maxTokens,
		Messages:  messages,
	})
	if err != nil {
		return "", fmt.Errorf("anthropic messages call failed: %w", err)
	}

	var responseText string
	for _, block := range message.Content {
		if block.Type == "text" {
			responseText = block.Text
			break
		}
	}
	if responseText == "" {
		return "", ErrEmptyResponse
	}

	logging.Ctx(ctx).Debug().
		Str("model", c.model).
		Dur("elapsed", time.Since(start)).
		Int("response_len", len(responseText)).
		Msg("anthropic analysis completed")

	return responseText, nil
}
