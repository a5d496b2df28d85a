package translator

import (
	"context"

	"github.com/nguyentantai21042004/translatocr/internal/language"
)

// Translator turns text in one language into another.
type Translator interface {
	Translate(ctx context.Context, text string, src, dst language.Language) (string, error)
}
