// Package corrector fixes spelling and grammar of translated snippets.
// It is optional; the pipeline only calls it when enabled.
package corrector

import (
	"context"
	"fmt"
	"strings"

	"github.com/nguyentantai21042004/translatocr/internal/language"
	"github.com/nguyentantai21042004/translatocr/internal/llm"
)

// Corrector returns text with spelling and grammar fixed.
type Corrector interface {
	Correct(ctx context.Context, text string, lang language.Language) (string, error)
}

const systemPrompt = `You proofread short %s text snippets. First fix spelling, then grammar.
Do not rephrase, translate or add anything. Reply with the corrected text only.`

type implCorrector struct {
	model llm.Generator
}

// New creates a Corrector backed by a chat model.
func New(model llm.Generator) Corrector {
	return &implCorrector{model: model}
}

func (c *implCorrector) Correct(ctx context.Context, text string, lang language.Language) (string, error) {
	if strings.TrimSpace(text) == "" {
		return text, nil
	}
	out, err := llm.Ask(ctx, c.model, fmt.Sprintf(systemPrompt, lang.Name()), text)
	if err != nil {
		return "", fmt.Errorf("correct %q: %w", text, err)
	}
	if out == "" {
		return text, nil
	}
	return out, nil
}
