package summarizer

import (
	"context"
	"fmt"

	"github.com/nguyentantai21042004/translatocr/internal/config"
	"github.com/nguyentantai21042004/translatocr/internal/llm"
	"github.com/nguyentantai21042004/translatocr/internal/logger"
)

type geminiSummarizer struct {
	apiKeys    []string
	currentKey int
	logger     logger.Logger
	model      string
	generate   generateFunc
}

type chatSummarizer struct {
	model llm.Generator
}

// NewGemini creates a Summarizer that rotates through the supplied Gemini API keys.
func NewGemini(apiKeys []string, model string, log logger.Logger) Summarizer {
	if model == "" {
		model = "gemini-2.5-flash"
	}
	return &geminiSummarizer{
		apiKeys:  apiKeys,
		logger:   log,
		model:    model,
		generate: callGemini,
	}
}

// NewChat creates a Summarizer backed by an OpenAI-compatible chat model.
func NewChat(model llm.Generator) Summarizer {
	return &chatSummarizer{model: model}
}

// New picks the provider named in cfg.
func New(ctx context.Context, cfg *config.Config, log logger.Logger) (Summarizer, error) {
	switch cfg.Summarizer.Provider {
	case config.ProviderGemini:
		return NewGemini(cfg.GeminiAPIKeys, cfg.Summarizer.Model, log), nil
	case config.ProviderOpenAI, config.ProviderOllama:
		apiKey := ""
		if cfg.Summarizer.Provider == config.ProviderOpenAI {
			apiKey = cfg.OpenAIAPIKey
		}
		model, err := llm.NewChatModel(ctx, llm.Config{
			BaseURL: cfg.Summarizer.BaseURL,
			Model:   cfg.Summarizer.Model,
			APIKey:  apiKey,
		})
		if err != nil {
			return nil, err
		}
		return NewChat(model), nil
	default:
		return nil, fmt.Errorf("unknown summarizer provider %q", cfg.Summarizer.Provider)
	}
}
