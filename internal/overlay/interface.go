package overlay

import (
	"context"
	"image"

	"github.com/nguyentantai21042004/translatocr/internal/fontfit"
	"github.com/nguyentantai21042004/translatocr/internal/models"
)

// Renderer paints translated regions over an image.
type Renderer interface {
	Render(ctx context.Context, img image.Image, regions []models.TextRegion) (*Result, error)
}

// Placement records where one region's text was drawn.
type Placement struct {
	Index int
	Rect  image.Rectangle
	Size  int
	Text  fontfit.Bounds
	// X, Y is the top-left of the drawn ink.
	X int
	Y int
}

// Result is a freshly allocated output image plus the layout used.
type Result struct {
	Image      image.Image
	Placements []Placement
	Skipped    int
}
