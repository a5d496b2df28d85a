// Package models holds the data passed between detection, translation,
// rendering and summarization.
package models

import (
	"errors"
	"fmt"
	"image"
)

// ErrInvalidBoundingBox is returned when a box does not have exactly four corners.
var ErrInvalidBoundingBox = errors.New("bounding box must have exactly 4 points")

// Point is a pixel coordinate.
type Point struct {
	X int
	Y int
}

// BoundingBox is the four corners of a detected region, in detector order.
type BoundingBox [4]Point

// NewBoundingBox builds a box from detector output.
func NewBoundingBox(points []Point) (BoundingBox, error) {
	var b BoundingBox
	if len(points) != 4 {
		return b, fmt.Errorf("%w: got %d", ErrInvalidBoundingBox, len(points))
	}
	copy(b[:], points)
	return b, nil
}

// BoxFromRect returns the corners of r clockwise from the top-left.
func BoxFromRect(r image.Rectangle) BoundingBox {
	return BoundingBox{
		{X: r.Min.X, Y: r.Min.Y},
		{X: r.Max.X, Y: r.Min.Y},
		{X: r.Max.X, Y: r.Max.Y},
		{X: r.Min.X, Y: r.Max.Y},
	}
}

// Rect is the axis-aligned rectangle spanning all four corners. Detector
// corner order is not trusted, so the extremes are taken over every point.
func (b BoundingBox) Rect() image.Rectangle {
	r := image.Rectangle{Min: image.Pt(b[0].X, b[0].Y), Max: image.Pt(b[0].X, b[0].Y)}
	for _, p := range b[1:] {
		r.Min.X = min(r.Min.X, p.X)
		r.Min.Y = min(r.Min.Y, p.Y)
		r.Max.X = max(r.Max.X, p.X)
		r.Max.Y = max(r.Max.Y, p.Y)
	}
	return r
}

// Detection is one span returned by a detector, before translation.
type Detection struct {
	Box        BoundingBox
	Text       string
	Confidence float64
}

// TextRegion is one detected and translated snippet of an image.
type TextRegion struct {
	BoundingBox    BoundingBox
	OriginalText   string
	TranslatedText string
	Confidence     float64
}
