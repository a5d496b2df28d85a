package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/nguyentantai21042004/translatocr/internal/overlay"
)

// Render reads file from the input directory, draws its ledger entries and
// writes <base>_translated<ext> to the output directory.
func (o *implOrchestrator) Render(ctx context.Context, file string) (string, error) {
	o.state = StateRendering

	img, err := overlay.Decode(filepath.Join(o.opts.InputDir, file))
	if err != nil {
		return "", fmt.Errorf("%w: %w", overlay.ErrRender, err)
	}

	res, err := o.deps.Renderer.Render(ctx, img, o.ledger.EntriesFor(file))
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(o.opts.OutputDir, 0755); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}
	outputPath := filepath.Join(o.opts.OutputDir, overlay.TranslatedName(file))
	if err := overlay.Encode(outputPath, res.Image); err != nil {
		return "", fmt.Errorf("%w: %w", overlay.ErrRender, err)
	}

	o.state = StateRendered
	o.logger.Info(ctx, "Wrote %s (%d regions, %d skipped)", outputPath, len(res.Placements), res.Skipped)
	return outputPath, nil
}

// UpdateAll renders each ledger image independently; a failure is logged,
// recorded and the batch moves on.
func (o *implOrchestrator) UpdateAll(ctx context.Context) []Failure {
	files := o.ledger.Files()
	var failures []Failure

	for i, file := range files {
		o.logger.Info(ctx, "[%d/%d] Updating image: %s", i+1, len(files), file)
		if _, err := o.Render(ctx, file); err != nil {
			o.logger.Error(ctx, "Failed to render %s: %v", file, err)
			failures = append(failures, o.fail(file, StageRender, err))
			continue
		}
		o.report.Rendered++
	}

	o.state = StateRendered
	return failures
}
