package pipeline

import (
	"context"
	"errors"
	"fmt"

	"github.com/nguyentantai21042004/translatocr/internal/corrector"
	"github.com/nguyentantai21042004/translatocr/internal/detector"
	"github.com/nguyentantai21042004/translatocr/internal/language"
	"github.com/nguyentantai21042004/translatocr/internal/ledger"
	"github.com/nguyentantai21042004/translatocr/internal/logger"
	"github.com/nguyentantai21042004/translatocr/internal/models"
	"github.com/nguyentantai21042004/translatocr/internal/overlay"
	"github.com/nguyentantai21042004/translatocr/internal/summarizer"
	"github.com/nguyentantai21042004/translatocr/internal/translator"
)

// Options configures paths and the starting language pair.
type Options struct {
	InputDir  string
	OutputDir string
	Pair      language.Pair
	// Correct runs the corrector over each translation before recording it.
	Correct bool
}

// Deps are the collaborators, built once and reused for the whole run.
type Deps struct {
	Detectors  detector.Factory
	Translator translator.Translator
	Corrector  corrector.Corrector
	Summarizer summarizer.Summarizer
	Renderer   overlay.Renderer
	Logger     logger.Logger
}

type implOrchestrator struct {
	opts     Options
	deps     Deps
	detector detector.Detector
	ledger   *ledger.Ledger
	state    State
	report   Report
	logger   logger.Logger
}

// New validates the language pair, builds the first detector and returns
// an idle Orchestrator with an empty ledger.
func New(opts Options, deps Deps) (Orchestrator, error) {
	if deps.Detectors == nil || deps.Translator == nil || deps.Summarizer == nil || deps.Renderer == nil {
		return nil, errors.New("pipeline: detector factory, translator, summarizer and renderer are required")
	}
	if deps.Logger == nil {
		deps.Logger = logger.Nop()
	}
	if opts.Correct && deps.Corrector == nil {
		return nil, errors.New("pipeline: correction enabled without a corrector")
	}
	if opts.Pair == (language.Pair{}) {
		opts.Pair = language.Pair{Source: language.Spanish, Target: language.English}
	}
	if err := opts.Pair.Validate(); err != nil {
		return nil, err
	}

	det, err := deps.Detectors(opts.Pair)
	if err != nil {
		return nil, fmt.Errorf("create detector: %w", err)
	}

	return &implOrchestrator{
		opts:     opts,
		deps:     deps,
		detector: det,
		ledger:   ledger.New(),
		state:    StateIdle,
		logger:   deps.Logger,
	}, nil
}

func (o *implOrchestrator) SetLanguage(ctx context.Context, pair language.Pair) error {
	if err := pair.Validate(); err != nil {
		return err
	}
	if pair == o.opts.Pair {
		return nil
	}

	det, err := o.deps.Detectors(pair)
	if err != nil {
		return fmt.Errorf("create detector for %s: %w", pair, err)
	}
	if err := o.detector.Close(); err != nil {
		o.logger.Warn(ctx, "Failed to close detector for %s: %v", o.opts.Pair, err)
	}

	o.logger.Info(ctx, "Language set to %s (%s -> %s)", pair, pair.Source.Name(), pair.Target.Name())
	o.detector = det
	o.opts.Pair = pair
	return nil
}

func (o *implOrchestrator) Files() []string {
	return o.ledger.Files()
}

func (o *implOrchestrator) EntriesFor(file string) []models.TextRegion {
	return o.ledger.EntriesFor(file)
}

func (o *implOrchestrator) Language() language.Pair {
	return o.opts.Pair
}

func (o *implOrchestrator) State() State {
	return o.state
}

func (o *implOrchestrator) Report() Report {
	return o.report.clone()
}

func (o *implOrchestrator) Close() error {
	return o.detector.Close()
}

func (o *implOrchestrator) skip(file string, stage Stage, err error) {
	o.report.Skipped = append(o.report.Skipped, Failure{File: file, Stage: stage, Err: err})
}

func (o *implOrchestrator) fail(file string, stage Stage, err error) Failure {
	f := Failure{File: file, Stage: stage, Err: err}
	o.report.Failures = append(o.report.Failures, f)
	return f
}
