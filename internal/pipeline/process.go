package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/nguyentantai21042004/translatocr/internal/models"
)

// Process detects text in file, translates every span and records the
// regions. Regions are committed only when the whole image succeeds, so a
// translation failure leaves the ledger as it was.
func (o *implOrchestrator) Process(ctx context.Context, file string) error {
	startTime := time.Now()
	imagePath := filepath.Join(o.opts.InputDir, file)

	info, err := os.Stat(imagePath)
	if err != nil || !info.Mode().IsRegular() {
		o.logger.Warn(ctx, "%s not found", file)
		o.skip(file, StageProcess, fmt.Errorf("%w: %s", ErrMissingInput, imagePath))
		return nil
	}

	o.state = StateExtracting
	o.logger.Info(ctx, "Extracting text from %s (%s)", file, o.opts.Pair)

	detections, err := o.detector.Detect(ctx, imagePath)
	if err != nil {
		err = fmt.Errorf("detect %s: %w", file, err)
		o.fail(file, StageProcess, err)
		return err
	}

	pair := o.opts.Pair
	regions := make([]models.TextRegion, 0, len(detections))
	for i, det := range detections {
		text := strings.TrimSpace(det.Text)
		if text == "" {
			o.logger.Warn(ctx, "No text found in span %d of %s", i, file)
			o.skip(file, StageProcess, fmt.Errorf("%w: span %d", ErrEmptyDetection, i))
			continue
		}

		translated, err := o.deps.Translator.Translate(ctx, text, pair.Source, pair.Target)
		if err != nil {
			err = fmt.Errorf("translate span %d of %s: %w", i, file, err)
			o.fail(file, StageProcess, err)
			return err
		}

		if o.opts.Correct {
			corrected, err := o.deps.Corrector.Correct(ctx, translated, pair.Target)
			if err != nil {
				o.logger.Warn(ctx, "Correction failed for %q, keeping translation: %v", translated, err)
			} else {
				translated = corrected
			}
		}

		if strings.TrimSpace(translated) == "" {
			o.logger.Warn(ctx, "Empty translation for %q in %s", text, file)
			o.skip(file, StageProcess, fmt.Errorf("%w: span %d", ErrEmptyTranslation, i))
			continue
		}

		o.logger.Debug(ctx, "[%d/%d] %q -> %q (%.2f)", i+1, len(detections), text, translated, det.Confidence)
		regions = append(regions, models.TextRegion{
			BoundingBox:    det.Box,
			OriginalText:   det.Text,
			TranslatedText: translated,
			Confidence:     det.Confidence,
		})
	}

	if len(regions) > 0 {
		o.ledger.Record(file, regions...)
	}
	o.report.Processed++
	o.report.Regions += len(regions)
	o.state = StateExtracted

	o.logger.Info(ctx, "Extracted %d regions from %s in %s", len(regions), file, time.Since(startTime))
	return nil
}

func (o *implOrchestrator) ProcessBatch(ctx context.Context, jobs []Job) []Failure {
	var failures []Failure
	for i, job := range jobs {
		o.logger.Info(ctx, "[%d/%d] Processing %s", i+1, len(jobs), job.File)

		if err := o.SetLanguage(ctx, job.Pair); err != nil {
			o.logger.Error(ctx, "Failed to set language for %s: %v", job.File, err)
			failures = append(failures, o.fail(job.File, StageProcess, err))
			continue
		}
		if err := o.Process(ctx, job.File); err != nil {
			o.logger.Error(ctx, "Failed to process %s: %v", job.File, err)
			failures = append(failures, Failure{File: job.File, Stage: StageProcess, Err: err})
		}
	}
	return failures
}
