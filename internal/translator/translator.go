package translator

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/cenkalti/backoff/v4"

	"github.com/nguyentantai21042004/translatocr/internal/language"
	"github.com/nguyentantai21042004/translatocr/internal/llm"
)

// ErrTranslation wraps every failed translation.
var ErrTranslation = errors.New("translation failed")

const systemPrompt = `You translate short text snippets extracted from images from %s to %s.
Snippets may be fragments of a larger sentence. Translate naturally and keep numbers,
names and punctuation. Reply with the translation only, without quotes or commentary.`

// Translate returns text in dst. Identical languages short-circuit.
func (t *implTranslator) Translate(ctx context.Context, text string, src, dst language.Language) (string, error) {
	if err := (language.Pair{Source: src, Target: dst}).Validate(); err != nil {
		return "", fmt.Errorf("%w: %w", ErrTranslation, err)
	}
	if src == dst || strings.TrimSpace(text) == "" {
		return text, nil
	}

	system := fmt.Sprintf(systemPrompt, src.Name(), dst.Name())
	attempt := 0

	translated, err := backoff.RetryWithData(func() (string, error) {
		attempt++
		out, err := llm.Ask(ctx, t.model, system, text)
		if err != nil {
			if ctx.Err() != nil {
				return "", backoff.Permanent(err)
			}
			t.logger.Warn(ctx, "Translate attempt %d for %q failed: %v", attempt, text, err)
			return "", err
		}
		return out, nil
	}, backoff.WithContext(backoff.WithMaxRetries(backoff.NewConstantBackOff(t.retryDelay), uint64(t.maxRetries)), ctx))
	if err != nil {
		return "", fmt.Errorf("%w: %q (%s): %w", ErrTranslation, text, language.Pair{Source: src, Target: dst}, err)
	}

	return cleanReply(translated), nil
}

// cleanReply strips quotes models like to wrap single-line answers in.
func cleanReply(s string) string {
	s = strings.TrimSpace(s)
	for _, q := range []string{`"`, "'", "“”", "«»"} {
		left, right := q, q
		if r := []rune(q); len(r) == 2 {
			left, right = string(r[0]), string(r[1])
		}
		if len(s) > len(left)+len(right) && strings.HasPrefix(s, left) && strings.HasSuffix(s, right) {
			return strings.TrimSpace(s[len(left) : len(s)-len(right)])
		}
	}
	return s
}
