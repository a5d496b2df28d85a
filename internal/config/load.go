package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	EnvOpenAIAPIKey  = "OPENAI_API_KEY"
	EnvGeminiAPIKeys = "GEMINI_API_KEYS"
)

// Load reads the yaml config at path, pulls secrets from the environment
// (and from a .env file next to the working directory when present) and
// validates the result.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	// Missing .env is fine; real environment variables win.
	_ = godotenv.Load()

	cfg.OpenAIAPIKey = os.Getenv(EnvOpenAIAPIKey)
	cfg.GeminiAPIKeys = splitKeys(os.Getenv(EnvGeminiAPIKeys))

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	if cfg.Summarizer.Provider == ProviderGemini && len(cfg.GeminiAPIKeys) == 0 {
		return nil, fmt.Errorf("validate config: %s is required for the gemini summarizer", EnvGeminiAPIKeys)
	}
	if cfg.Summarizer.Provider == ProviderOpenAI && cfg.OpenAIAPIKey == "" {
		return nil, fmt.Errorf("validate config: %s is required for the openai summarizer", EnvOpenAIAPIKey)
	}

	return &cfg, nil
}

func splitKeys(s string) []string {
	var keys []string
	for _, k := range strings.Split(s, ",") {
		if k = strings.TrimSpace(k); k != "" {
			keys = append(keys, k)
		}
	}
	return keys
}
