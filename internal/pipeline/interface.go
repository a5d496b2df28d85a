package pipeline

import (
	"context"

	"github.com/nguyentantai21042004/translatocr/internal/language"
	"github.com/nguyentantai21042004/translatocr/internal/models"
)

// Orchestrator runs detection, translation, rendering and summarization
// over a batch of images, one at a time.
type Orchestrator interface {
	// SetLanguage swaps the detector for one reading both languages of pair.
	// The ledger is kept.
	SetLanguage(ctx context.Context, pair language.Pair) error
	// Process detects and translates file from the input directory and
	// appends its regions to the ledger. A missing file is skipped.
	Process(ctx context.Context, file string) error
	// ProcessBatch runs SetLanguage and Process per job, in order, and
	// carries on past per-job failures.
	ProcessBatch(ctx context.Context, jobs []Job) []Failure
	// Render draws the ledger entries of file and writes the output image.
	Render(ctx context.Context, file string) (string, error)
	// UpdateAll renders every image in the ledger.
	UpdateAll(ctx context.Context) []Failure
	// ContextualizeAll summarizes every image in the ledger, one model call each.
	ContextualizeAll(ctx context.Context) map[string]string

	Files() []string
	EntriesFor(file string) []models.TextRegion
	Language() language.Pair
	State() State
	Report() Report
	Close() error
}

// Job is one image of a batch and the languages it is written in and
// translated to.
type Job struct {
	File string
	Pair language.Pair
}
