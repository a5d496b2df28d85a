package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/google/uuid"

	"github.com/nguyentantai21042004/translatocr/internal/config"
	"github.com/nguyentantai21042004/translatocr/internal/corrector"
	"github.com/nguyentantai21042004/translatocr/internal/detector"
	"github.com/nguyentantai21042004/translatocr/internal/language"
	"github.com/nguyentantai21042004/translatocr/internal/llm"
	"github.com/nguyentantai21042004/translatocr/internal/logger"
	"github.com/nguyentantai21042004/translatocr/internal/overlay"
	"github.com/nguyentantai21042004/translatocr/internal/pipeline"
	"github.com/nguyentantai21042004/translatocr/internal/summarizer"
	"github.com/nguyentantai21042004/translatocr/internal/translator"
	"github.com/nguyentantai21042004/translatocr/pkg/executor"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to the yaml config")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Cancel in-flight collaborator calls on Ctrl+C
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	runID := uuid.NewString()
	log := logger.WithRunID(logger.New(cfg.Logging.Level), runID[:8])

	if err := run(ctx, cfg, runID, log); err != nil {
		log.Error(ctx, "%v", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, runID string, log logger.Logger) error {
	startTime := time.Now()
	log.Info(ctx, "========================================")
	log.Info(ctx, "Image translation batch")
	log.Info(ctx, "========================================")
	log.Info(ctx, "Input: %s", cfg.Paths.Input)
	log.Info(ctx, "Output: %s", cfg.Paths.Output)
	log.Info(ctx, "Detector: %s (%s level, GPU %v)", cfg.Detector.Engine, cfg.Detector.Level, cfg.Detector.GPUEnabled())
	log.Info(ctx, "Translator: %s at %s", cfg.Translator.Model, cfg.Translator.BaseURL)
	log.Info(ctx, "Summarizer: %s (%s)", cfg.Summarizer.Provider, cfg.Summarizer.Model)
	log.Info(ctx, "Jobs: %d", len(cfg.Jobs))

	// Fail fast on bad language codes before anything is built
	jobs, err := buildJobs(cfg.Jobs)
	if err != nil {
		return fmt.Errorf("invalid jobs: %w", err)
	}

	if err := ensureDirectories(cfg); err != nil {
		return fmt.Errorf("create directories: %w", err)
	}

	orch, err := buildOrchestrator(ctx, cfg, jobs[0].Pair, log)
	if err != nil {
		return err
	}
	defer orch.Close()

	orch.ProcessBatch(ctx, jobs)
	orch.UpdateAll(ctx)
	contexts := orch.ContextualizeAll(ctx)

	files := orch.Files()
	if err := summarizer.AppendContext(cfg.Paths.ContextFile, files, contexts); err != nil {
		log.Error(ctx, "Failed to write %s: %v", cfg.Paths.ContextFile, err)
	}
	if cfg.Paths.ContextDocx != "" {
		title := fmt.Sprintf("Image context report %s (%s)", time.Now().Format("2006-01-02 15:04"), runID)
		if err := summarizer.WriteContextDocx(title, files, contexts, cfg.Paths.ContextDocx); err != nil {
			log.Error(ctx, "Failed to write %s: %v", cfg.Paths.ContextDocx, err)
		}
	}

	report := orch.Report()
	log.Info(ctx, "========================================")
	log.Info(ctx, "Batch complete: %s", report)
	for _, s := range report.Skipped {
		log.Warn(ctx, "Skipped: %v", s)
	}
	for _, f := range report.Failures {
		log.Error(ctx, "Failed: %v", f)
	}
	log.Info(ctx, "Processing time: %s", time.Since(startTime))
	log.Info(ctx, "========================================")

	return nil
}

func buildJobs(cfgJobs []config.JobConfig) ([]pipeline.Job, error) {
	jobs := make([]pipeline.Job, 0, len(cfgJobs))
	for _, j := range cfgJobs {
		pair, err := language.ParsePair(j.Source, j.Target)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", j.File, err)
		}
		jobs = append(jobs, pipeline.Job{File: j.File, Pair: pair})
	}
	if len(jobs) == 0 {
		return nil, fmt.Errorf("no jobs configured")
	}
	return jobs, nil
}

func buildOrchestrator(ctx context.Context, cfg *config.Config, pair language.Pair, log logger.Logger) (pipeline.Orchestrator, error) {
	detectors, err := detector.NewFactory(cfg.Detector, executor.New(), log)
	if err != nil {
		return nil, err
	}

	translateModel, err := llm.NewChatModel(ctx, llm.Config{
		BaseURL: cfg.Translator.BaseURL,
		Model:   cfg.Translator.Model,
		APIKey:  cfg.OpenAIAPIKey,
	})
	if err != nil {
		return nil, fmt.Errorf("translator: %w", err)
	}

	var corr corrector.Corrector
	if cfg.Corrector.Enabled {
		correctModel, err := llm.NewChatModel(ctx, llm.Config{
			BaseURL: cfg.Corrector.BaseURL,
			Model:   cfg.Corrector.Model,
			APIKey:  cfg.OpenAIAPIKey,
		})
		if err != nil {
			return nil, fmt.Errorf("corrector: %w", err)
		}
		corr = corrector.New(correctModel)
	}

	sum, err := summarizer.New(ctx, cfg, log)
	if err != nil {
		return nil, fmt.Errorf("summarizer: %w", err)
	}

	background, err := overlay.ParseColor(cfg.Render.Background)
	if err != nil {
		return nil, err
	}
	foreground, err := overlay.ParseColor(cfg.Render.Foreground)
	if err != nil {
		return nil, err
	}
	renderer := overlay.New(overlay.Options{
		FontFamily:    cfg.Render.Font,
		FontSize:      cfg.Render.FontSize,
		DynamicSizing: cfg.Render.DynamicFontSize,
		Background:    background,
		Foreground:    foreground,
	}, log)

	return pipeline.New(pipeline.Options{
		InputDir:  cfg.Paths.Input,
		OutputDir: cfg.Paths.Output,
		Pair:      pair,
		Correct:   cfg.Corrector.Enabled,
	}, pipeline.Deps{
		Detectors:  detectors,
		Translator: translator.New(translateModel, cfg.Translator.MaxRetries, cfg.Translator.RetryDelay, log),
		Corrector:  corr,
		Summarizer: sum,
		Renderer:   renderer,
		Logger:     log,
	})
}

// ensureDirectories creates required directories if they don't exist
func ensureDirectories(cfg *config.Config) error {
	dirs := []string{
		cfg.Paths.Input,
		cfg.Paths.Output,
	}
	if dir := filepath.Dir(cfg.Paths.ContextFile); dir != "." {
		dirs = append(dirs, dir)
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}

	return nil
}
