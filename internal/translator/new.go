// Package translator translates detected snippets with a chat model.
package translator

import (
	"time"

	"github.com/nguyentantai21042004/translatocr/internal/llm"
	"github.com/nguyentantai21042004/translatocr/internal/logger"
)

type implTranslator struct {
	model      llm.Generator
	maxRetries int
	retryDelay time.Duration
	logger     logger.Logger
}

// New creates a Translator backed by model. Transient failures are retried
// maxRetries times, retryDelay apart.
func New(model llm.Generator, maxRetries int, retryDelay time.Duration, log logger.Logger) Translator {
	return &implTranslator{
		model:      model,
		maxRetries: max(maxRetries, 0),
		retryDelay: retryDelay,
		logger:     log,
	}
}
