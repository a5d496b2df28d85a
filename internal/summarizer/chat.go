package summarizer

import (
	"context"
	"fmt"

	"github.com/nguyentantai21042004/translatocr/internal/llm"
)

func (s *chatSummarizer) Summarize(ctx context.Context, snippets []string) (string, error) {
	prompt, err := buildPrompt(snippets)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrSummarization, err)
	}

	out, err := llm.Ask(ctx, s.model, systemPrompt, prompt)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrSummarization, err)
	}
	return cleanSummary(out), nil
}
