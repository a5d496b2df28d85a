package overlay

import (
	"image/color"

	"github.com/nguyentantai21042004/translatocr/internal/logger"
)

// Options controls fonts and colours for a Renderer.
type Options struct {
	FontFamily    string
	FontSize      int
	DynamicSizing bool
	Background    color.Color
	Foreground    color.Color
}

type implRenderer struct {
	opts   Options
	logger logger.Logger
}

// New creates a Renderer. Nil colours default to white fill and black text.
func New(opts Options, log logger.Logger) Renderer {
	if opts.Background == nil {
		opts.Background = color.White
	}
	if opts.Foreground == nil {
		opts.Foreground = color.Black
	}
	if opts.FontSize < 1 {
		opts.FontSize = 12
	}
	return &implRenderer{
		opts:   opts,
		logger: log,
	}
}
