// Package llm builds chat models for OpenAI-compatible endpoints (OpenAI
// itself, or a local Ollama server exposing /v1).
package llm

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/cloudwego/eino-ext/components/model/openai"
	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
)

// Generator is the part of an eino chat model the pipeline uses.
type Generator interface {
	Generate(ctx context.Context, input []*schema.Message, opts ...model.Option) (*schema.Message, error)
}

// Config describes one chat model endpoint.
type Config struct {
	BaseURL string
	Model   string
	APIKey  string
	Timeout time.Duration
}

const localAPIKey = "ollama"

// NewChatModel creates an eino OpenAI chat model at temperature 0.
func NewChatModel(ctx context.Context, cfg Config) (Generator, error) {
	apiKey := cfg.APIKey
	if apiKey == "" {
		// Ollama ignores the key but the client refuses an empty one
		apiKey = localAPIKey
	}
	temperature := float32(0)

	chatModelConfig := &openai.ChatModelConfig{
		Model:       cfg.Model,
		APIKey:      apiKey,
		Temperature: &temperature,
		Timeout:     cfg.Timeout,
	}
	if cfg.BaseURL != "" {
		chatModelConfig.BaseURL = cfg.BaseURL
	}

	chatModel, err := openai.NewChatModel(ctx, chatModelConfig)
	if err != nil {
		return nil, fmt.Errorf("create chat model: %w", err)
	}
	return chatModel, nil
}

// Ask sends a system and user message and returns the trimmed reply.
func Ask(ctx context.Context, g Generator, system, user string) (string, error) {
	resp, err := g.Generate(ctx, []*schema.Message{
		schema.SystemMessage(system),
		schema.UserMessage(user),
	})
	if err != nil {
		return "", err
	}
	if resp == nil {
		return "", fmt.Errorf("empty response from model")
	}
	return strings.TrimSpace(resp.Content), nil
}
