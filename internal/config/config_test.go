package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/nguyentantai21042004/translatocr/internal/language"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{
			name:    "empty config gets defaults",
			config:  Config{},
			wantErr: false,
		},
		{
			name: "valid job",
			config: Config{
				Jobs: []JobConfig{{File: "a.png", Source: "es", Target: "en"}},
			},
			wantErr: false,
		},
		{
			name: "unsupported language",
			config: Config{
				Jobs: []JobConfig{{File: "a.png", Source: "de", Target: "en"}},
			},
			wantErr: true,
		},
		{
			name: "missing job file",
			config: Config{
				Jobs: []JobConfig{{Source: "es", Target: "en"}},
			},
			wantErr: true,
		},
		{
			name:    "unknown detector engine",
			config:  Config{Detector: DetectorConfig{Engine: "easyocr"}},
			wantErr: true,
		},
		{
			name:    "unknown summarizer provider",
			config:  Config{Summarizer: SummarizerConfig{Provider: "claude"}},
			wantErr: true,
		},
		{
			name:    "negative font size",
			config:  Config{Render: RenderConfig{FontSize: -3}},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateUnsupportedLanguageIsTyped(t *testing.T) {
	cfg := Config{Jobs: []JobConfig{{File: "a.png", Source: "es", Target: "xx"}}}
	if err := cfg.Validate(); !errors.Is(err, language.ErrUnsupportedLanguage) {
		t.Errorf("Validate() error = %v, want ErrUnsupportedLanguage", err)
	}
}

func TestValidateDefaults(t *testing.T) {
	var cfg Config
	if err := cfg.Validate(); err != nil {
		t.Fatal(err)
	}

	if cfg.Paths.Input != "original_images" || cfg.Paths.Output != "translated_images" {
		t.Errorf("paths = %+v", cfg.Paths)
	}
	if cfg.Paths.ContextFile != "context.txt" {
		t.Errorf("ContextFile = %q", cfg.Paths.ContextFile)
	}
	if len(cfg.Jobs) != len(DefaultJobs()) {
		t.Errorf("Jobs = %d, want %d", len(cfg.Jobs), len(DefaultJobs()))
	}
	if cfg.Render.FontSize != 12 || cfg.Render.DynamicFontSize {
		t.Errorf("render = %+v", cfg.Render)
	}
	if !cfg.Detector.GPUEnabled() {
		t.Error("GPU should default to enabled")
	}
	if cfg.Summarizer.Provider != ProviderOllama || cfg.Summarizer.Model != "llama3.1" {
		t.Errorf("summarizer = %+v", cfg.Summarizer)
	}
	if cfg.Corrector.Enabled {
		t.Error("corrector should default to disabled")
	}
}

func TestLoad(t *testing.T) {
	t.Setenv(EnvGeminiAPIKeys, "k1, k2,,")
	path := filepath.Join(t.TempDir(), "config.yaml")

	content := `
paths:
  input: "in"
  output: "out"

jobs:
  - file: "menu.png"
    source: "fr"
    target: "en"

render:
  font: "fonts/DejaVuSansMono.ttf"
  dynamic_font_size: true

detector:
  engine: "tesseract-cli"
  use_gpu: false

translator:
  retry_delay: 500ms

summarizer:
  provider: "gemini"

logging:
  level: "debug"
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Paths.Input != "in" {
		t.Errorf("Input = %v, want %v", cfg.Paths.Input, "in")
	}
	if len(cfg.Jobs) != 1 || cfg.Jobs[0].File != "menu.png" {
		t.Errorf("Jobs = %+v", cfg.Jobs)
	}
	if !cfg.Render.DynamicFontSize {
		t.Error("DynamicFontSize should be true")
	}
	if cfg.Detector.GPUEnabled() {
		t.Error("GPU should be disabled")
	}
	if cfg.Translator.RetryDelay != 500*time.Millisecond {
		t.Errorf("RetryDelay = %v", cfg.Translator.RetryDelay)
	}
	if cfg.Summarizer.Model != "gemini-2.5-flash" {
		t.Errorf("Summarizer.Model = %v", cfg.Summarizer.Model)
	}
	if len(cfg.GeminiAPIKeys) != 2 {
		t.Errorf("GeminiAPIKeys = %v", cfg.GeminiAPIKeys)
	}
}

func TestLoadGeminiWithoutKeys(t *testing.T) {
	t.Setenv(EnvGeminiAPIKeys, "")
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("summarizer:\n  provider: gemini\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("Load() should fail without Gemini keys")
	}
}

func TestLoadInvalidFile(t *testing.T) {
	if _, err := Load("nonexistent.yaml"); err == nil {
		t.Error("Load() should return error for nonexistent file")
	}
}
