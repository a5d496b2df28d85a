package summarizer

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrSummarization wraps every failed model call.
var ErrSummarization = errors.New("summarization failed")

const systemPrompt = `You help decipher text snippets extracted from a single image.
The image could be anything: speech bubbles of a comic, items of a restaurant menu,
a road sign, a page of scripture or documentation. The snippets were extracted
haphazardly, so several of them may belong to the same sentence or conversation.
Say what the source of the snippets most likely is and what they mean as a whole.
Answer directly, without preamble, in 2-3 sentences.`

const userPrompt = `Text Snippets: %s
Answer:`

// buildPrompt renders snippets as an indented JSON array inside the user prompt.
func buildPrompt(snippets []string) (string, error) {
	if snippets == nil {
		snippets = []string{}
	}
	data, err := json.MarshalIndent(snippets, "", "    ")
	if err != nil {
		return "", fmt.Errorf("encode snippets: %w", err)
	}
	return fmt.Sprintf(userPrompt, data), nil
}

// cleanSummary turns escaped newlines some models emit into real ones.
func cleanSummary(s string) string {
	return strings.TrimSpace(strings.ReplaceAll(s, `\n`, "\n"))
}
