package detector

import (
	"context"
	"fmt"
	"strings"

	"github.com/otiai10/gosseract/v2"

	"github.com/nguyentantai21042004/translatocr/internal/language"
	"github.com/nguyentantai21042004/translatocr/internal/logger"
	"github.com/nguyentantai21042004/translatocr/internal/models"
)

type implTesseract struct {
	client *gosseract.Client
	level  gosseract.PageIteratorLevel
	logger logger.Logger
}

// NewTesseract creates an in-process tesseract detector for pair.
func NewTesseract(pair language.Pair, level Level, useGPU bool, log logger.Logger) (Detector, error) {
	langs, err := tesseractLangs(pair)
	if err != nil {
		return nil, err
	}

	client := gosseract.NewClient()
	if err := client.SetLanguage(langs...); err != nil {
		client.Close()
		return nil, fmt.Errorf("set tesseract language %v: %w", langs, err)
	}

	if useGPU {
		// tesseract has no GPU path; the flag is kept for parity with other engines
		log.Debug(context.Background(), "GPU acceleration requested, tesseract runs on CPU")
	}

	ril := gosseract.RIL_TEXTLINE
	if level == LevelWord {
		ril = gosseract.RIL_WORD
	}

	return &implTesseract{
		client: client,
		level:  ril,
		logger: log,
	}, nil
}

// Detect returns the spans of imagePath in reading order.
func (t *implTesseract) Detect(ctx context.Context, imagePath string) ([]models.Detection, error) {
	if err := t.client.SetImage(imagePath); err != nil {
		return nil, fmt.Errorf("set image: %w", err)
	}

	boxes, err := t.client.GetBoundingBoxes(t.level)
	if err != nil {
		return nil, fmt.Errorf("tesseract OCR failed: %w", err)
	}

	detections := make([]models.Detection, 0, len(boxes))
	for _, b := range boxes {
		detections = append(detections, models.Detection{
			Box:        models.BoxFromRect(b.Box),
			Text:       strings.TrimSpace(b.Word),
			Confidence: normalizeConfidence(b.Confidence),
		})
	}

	t.logger.Debug(ctx, "tesseract found %d spans in %s", len(detections), imagePath)
	return detections, nil
}

func (t *implTesseract) Close() error {
	return t.client.Close()
}

// normalizeConfidence maps tesseract's 0-100 score into [0,1].
func normalizeConfidence(c float64) float64 {
	switch {
	case c <= 0:
		return 0
	case c >= 100:
		return 1
	default:
		return c / 100
	}
}
