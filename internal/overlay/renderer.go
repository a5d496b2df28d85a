package overlay

import (
	"context"
	"errors"
	"fmt"
	"image"
	"strings"

	"github.com/fogleman/gg"

	"github.com/nguyentantai21042004/translatocr/internal/fontfit"
	"github.com/nguyentantai21042004/translatocr/internal/models"
)

var (
	// ErrRender wraps every failure that aborts rendering an image.
	ErrRender = errors.New("render failed")
	// ErrInvalidRect is returned for regions with a non-positive side.
	ErrInvalidRect = errors.New("invalid rectangle")
)

// Render erases each region with the background colour and draws its
// translated text centred in the region. img is not modified.
func (r *implRenderer) Render(ctx context.Context, img image.Image, regions []models.TextRegion) (*Result, error) {
	// The font is loaded once per call; faces are cached per size inside it.
	fitter, err := fontfit.New(r.opts.FontFamily)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRender, err)
	}

	dc := gg.NewContextForImage(img)
	result := &Result{}

	for i, region := range regions {
		text := region.TranslatedText
		if strings.TrimSpace(text) == "" {
			r.logger.Warn(ctx, "Region %d (%q) has no translated text, skipping", i, region.OriginalText)
			result.Skipped++
			continue
		}

		rect := region.BoundingBox.Rect()
		boxW, boxH := rect.Dx(), rect.Dy()
		if boxW <= 0 || boxH <= 0 {
			return nil, fmt.Errorf("%w: %w: region %d is %dx%d", ErrRender, ErrInvalidRect, i, boxW, boxH)
		}

		dc.SetColor(r.opts.Background)
		dc.DrawRectangle(float64(rect.Min.X), float64(rect.Min.Y), float64(boxW), float64(boxH))
		dc.Fill()

		size := r.opts.FontSize
		if r.opts.DynamicSizing {
			size = fitter.FitBox(text, boxW, boxH)
		}

		m := fitter.Measure(text, size)
		x := rect.Min.X + floorDiv(boxW-m.Width, 2)
		y := rect.Min.Y + floorDiv(boxH-m.Height, 2)

		dc.SetFontFace(fitter.Face(size))
		dc.SetColor(r.opts.Foreground)
		// DrawString takes the baseline origin, so shift by the ink offset.
		dc.DrawString(text, float64(x-m.MinX), float64(y-m.MinY))

		r.logger.Debug(ctx, "Region %d: %q at (%d,%d) size %d in %v", i, text, x, y, size, rect)
		result.Placements = append(result.Placements, Placement{
			Index: i,
			Rect:  rect,
			Size:  size,
			Text:  m,
			X:     x,
			Y:     y,
		})
	}

	result.Image = dc.Image()
	return result, nil
}

// floorDiv divides rounding toward negative infinity, so text wider than
// its box is still centred on it.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
