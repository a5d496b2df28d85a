package summarizer

import "context"

// Summarizer guesses the source and meaning of an image's translated
// snippets in a few sentences of free-form prose.
type Summarizer interface {
	Summarize(ctx context.Context, snippets []string) (string, error)
}
