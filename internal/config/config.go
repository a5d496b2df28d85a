package config

import (
	"fmt"
	"time"

	"github.com/nguyentantai21042004/translatocr/internal/language"
)

type Config struct {
	Paths      PathsConfig      `yaml:"paths"`
	Jobs       []JobConfig      `yaml:"jobs"`
	Render     RenderConfig     `yaml:"render"`
	Detector   DetectorConfig   `yaml:"detector"`
	Translator TranslatorConfig `yaml:"translator"`
	Corrector  CorrectorConfig  `yaml:"corrector"`
	Summarizer SummarizerConfig `yaml:"summarizer"`
	Logging    LoggingConfig    `yaml:"logging"`

	// Secrets, filled from the environment by Load.
	OpenAIAPIKey  string   `yaml:"-"`
	GeminiAPIKeys []string `yaml:"-"`
}

type PathsConfig struct {
	Input       string `yaml:"input"`
	Output      string `yaml:"output"`
	ContextFile string `yaml:"context_file"`
	ContextDocx string `yaml:"context_docx"`
}

// JobConfig is one image of the batch with its language pair.
type JobConfig struct {
	File   string `yaml:"file"`
	Source string `yaml:"source"`
	Target string `yaml:"target"`
}

type RenderConfig struct {
	Font            string `yaml:"font"`
	FontSize        int    `yaml:"font_size"`
	DynamicFontSize bool   `yaml:"dynamic_font_size"`
	Background      string `yaml:"background"`
	Foreground      string `yaml:"foreground"`
}

type DetectorConfig struct {
	Engine     string `yaml:"engine"`
	BinaryPath string `yaml:"binary_path"`
	Level      string `yaml:"level"`
	UseGPU     *bool  `yaml:"use_gpu"`
}

type TranslatorConfig struct {
	BaseURL    string        `yaml:"base_url"`
	Model      string        `yaml:"model"`
	MaxRetries int           `yaml:"max_retries"`
	RetryDelay time.Duration `yaml:"retry_delay"`
}

type CorrectorConfig struct {
	Enabled bool   `yaml:"enabled"`
	BaseURL string `yaml:"base_url"`
	Model   string `yaml:"model"`
}

type SummarizerConfig struct {
	Provider string `yaml:"provider"`
	Model    string `yaml:"model"`
	BaseURL  string `yaml:"base_url"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

const (
	EngineTesseract    = "tesseract"
	EngineTesseractCLI = "tesseract-cli"

	ProviderOllama = "ollama"
	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"

	defaultOllamaURL = "http://localhost:11434/v1"
)

// DefaultJobs is the batch run when the config lists none.
func DefaultJobs() []JobConfig {
	return []JobConfig{
		{File: "english_meme.jpg", Source: "en", Target: "vi"},
		{File: "spanish_bible_1.png", Source: "es", Target: "en"},
		{File: "spanish_bible_2.png", Source: "es", Target: "en"},
		{File: "french_menu_1.png", Source: "fr", Target: "en"},
		{File: "french_menu_2.png", Source: "fr", Target: "en"},
		{File: "french_traffic_sign.webp", Source: "fr", Target: "en"},
	}
}

// GPUEnabled reports the detector acceleration toggle, on unless disabled.
func (d DetectorConfig) GPUEnabled() bool {
	return d.UseGPU == nil || *d.UseGPU
}

// Validate checks required values and fills defaults in place.
func (c *Config) Validate() error {
	if c.Paths.Input == "" {
		c.Paths.Input = "original_images"
	}
	if c.Paths.Output == "" {
		c.Paths.Output = "translated_images"
	}
	if c.Paths.ContextFile == "" {
		c.Paths.ContextFile = "context.txt"
	}
	if len(c.Jobs) == 0 {
		c.Jobs = DefaultJobs()
	}
	for i, job := range c.Jobs {
		if job.File == "" {
			return fmt.Errorf("jobs[%d].file is required", i)
		}
		if _, err := language.ParsePair(job.Source, job.Target); err != nil {
			return fmt.Errorf("jobs[%d] (%s): %w", i, job.File, err)
		}
	}

	if c.Render.Font == "" {
		c.Render.Font = "gomono"
	}
	if c.Render.FontSize == 0 {
		c.Render.FontSize = 12
	}
	if c.Render.FontSize < 1 {
		return fmt.Errorf("render.font_size must be >= 1")
	}
	if c.Render.Background == "" {
		c.Render.Background = "#ffffff"
	}
	if c.Render.Foreground == "" {
		c.Render.Foreground = "#000000"
	}

	switch c.Detector.Engine {
	case "":
		c.Detector.Engine = EngineTesseract
	case EngineTesseract, EngineTesseractCLI:
	default:
		return fmt.Errorf("detector.engine %q is not supported", c.Detector.Engine)
	}
	if c.Detector.BinaryPath == "" {
		c.Detector.BinaryPath = "tesseract"
	}
	if c.Detector.Level == "" {
		c.Detector.Level = "textline"
	}
	if c.Detector.Level != "textline" && c.Detector.Level != "word" {
		return fmt.Errorf("detector.level must be textline or word")
	}

	if c.Translator.BaseURL == "" {
		c.Translator.BaseURL = defaultOllamaURL
	}
	if c.Translator.Model == "" {
		c.Translator.Model = "llama3.1"
	}
	if c.Translator.MaxRetries < 0 {
		return fmt.Errorf("translator.max_retries must be >= 0")
	}
	if c.Translator.RetryDelay == 0 {
		c.Translator.RetryDelay = 2 * time.Second
	}

	if c.Corrector.BaseURL == "" {
		c.Corrector.BaseURL = c.Translator.BaseURL
	}
	if c.Corrector.Model == "" {
		c.Corrector.Model = c.Translator.Model
	}

	switch c.Summarizer.Provider {
	case "":
		c.Summarizer.Provider = ProviderOllama
	case ProviderOllama, ProviderOpenAI, ProviderGemini:
	default:
		return fmt.Errorf("summarizer.provider %q is not supported", c.Summarizer.Provider)
	}
	if c.Summarizer.Model == "" {
		if c.Summarizer.Provider == ProviderGemini {
			c.Summarizer.Model = "gemini-2.5-flash"
		} else {
			c.Summarizer.Model = "llama3.1"
		}
	}
	if c.Summarizer.BaseURL == "" && c.Summarizer.Provider == ProviderOllama {
		c.Summarizer.BaseURL = defaultOllamaURL
	}

	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}

	return nil
}
