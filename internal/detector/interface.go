package detector

import (
	"context"

	"github.com/nguyentantai21042004/translatocr/internal/language"
	"github.com/nguyentantai21042004/translatocr/internal/models"
)

// Detector finds text spans in an image file.
type Detector interface {
	Detect(ctx context.Context, imagePath string) ([]models.Detection, error)
	Close() error
}

// Factory builds a Detector able to read both alphabets of pair.
type Factory func(pair language.Pair) (Detector, error)
