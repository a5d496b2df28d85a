package summarizer

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

type generateFunc func(ctx context.Context, apiKey, model, prompt string) (string, error)

// Summarize sends the snippets to Gemini, rotating API keys on 429 / quota errors.
func (s *geminiSummarizer) Summarize(ctx context.Context, snippets []string) (string, error) {
	if len(s.apiKeys) == 0 {
		return "", fmt.Errorf("%w: no Gemini API keys configured", ErrSummarization)
	}

	prompt, err := buildPrompt(snippets)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrSummarization, err)
	}
	prompt = systemPrompt + "\n\n" + prompt

	var lastErr error
	for range len(s.apiKeys) {
		text, err := s.generate(ctx, s.apiKeys[s.currentKey], s.model, prompt)
		if err == nil {
			return cleanSummary(text), nil
		}
		if !isQuotaError(err) {
			return "", fmt.Errorf("%w: %w", ErrSummarization, err)
		}
		s.logger.Warn(ctx, "Key %d rate limited, rotating...", s.currentKey+1)
		s.rotateKey()
		lastErr = err
	}

	return "", fmt.Errorf("%w: all API keys exhausted: %w", ErrSummarization, lastErr)
}

func (s *geminiSummarizer) rotateKey() {
	s.currentKey = (s.currentKey + 1) % len(s.apiKeys)
}

func isQuotaError(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "429") || strings.Contains(msg, "quota") || strings.Contains(msg, "RESOURCE_EXHAUSTED")
}

// callGemini performs one GenerateContent call with apiKey.
func callGemini(ctx context.Context, apiKey, model, prompt string) (string, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return "", fmt.Errorf("create client: %w", err)
	}

	result, err := client.Models.GenerateContent(ctx, model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}

	if result != nil && len(result.Candidates) > 0 && result.Candidates[0].Content != nil {
		var text string
		for _, part := range result.Candidates[0].Content.Parts {
			if part.Text != "" {
				text += part.Text
			}
		}
		return text, nil
	}

	return "", fmt.Errorf("empty response from Gemini")
}
