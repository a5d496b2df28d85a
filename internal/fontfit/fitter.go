// Package fontfit measures text and picks the largest font size that fits
// inside a rectangle.
package fontfit

import (
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
)

// Bounds is the ink box of a string drawn with its origin (dot) at 0,0.
// MinY is negative for glyphs rising above the baseline.
type Bounds struct {
	MinX   int
	MinY   int
	Width  int
	Height int
}

// Fitter measures text in one font. Faces are cached per size for the
// lifetime of the Fitter, which callers scope to a single render.
type Fitter struct {
	font  *truetype.Font
	faces map[int]font.Face
}

// New loads family and returns a Fitter for it.
func New(family string) (*Fitter, error) {
	f, err := Load(family)
	if err != nil {
		return nil, err
	}
	return NewFromFont(f), nil
}

// NewFromFont wraps an already parsed font.
func NewFromFont(f *truetype.Font) *Fitter {
	return &Fitter{font: f, faces: make(map[int]font.Face)}
}

// Face returns the face for size in pixels, clamped to at least 1.
func (f *Fitter) Face(size int) font.Face {
	size = max(size, 1)
	if face, ok := f.faces[size]; ok {
		return face
	}
	face := truetype.NewFace(f.font, &truetype.Options{Size: float64(size), DPI: 72})
	f.faces[size] = face
	return face
}

// Measure returns the ink bounds of text at size.
func (f *Fitter) Measure(text string, size int) Bounds {
	b, _ := font.BoundString(f.Face(size), text)
	minX, minY := b.Min.X.Floor(), b.Min.Y.Floor()
	maxX, maxY := b.Max.X.Ceil(), b.Max.Y.Ceil()
	return Bounds{
		MinX:   minX,
		MinY:   minY,
		Width:  maxX - minX,
		Height: maxY - minY,
	}
}

// Fit walks sizes down from startSize one point at a time and returns the
// first one whose rendering of text fits in boxWidth x boxHeight. It returns
// 1 when nothing fits; the caller accepts the overflow.
func (f *Fitter) Fit(text string, boxWidth, boxHeight, startSize int) int {
	if boxWidth <= 0 || boxHeight <= 0 {
		return 1
	}
	for size := max(startSize, 1); size > 1; size-- {
		m := f.Measure(text, size)
		if m.Width <= boxWidth && m.Height <= boxHeight {
			return size
		}
	}
	return 1
}

// FitBox fits text starting from the smaller side of the box.
func (f *Fitter) FitBox(text string, boxWidth, boxHeight int) int {
	return f.Fit(text, boxWidth, boxHeight, min(boxWidth, boxHeight))
}
