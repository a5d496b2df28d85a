package fontfit

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
)

// ErrFontNotFound is returned when a font family resolves to nothing.
var ErrFontNotFound = errors.New("font not found")

var builtin = map[string][]byte{
	"goregular": goregular.TTF,
	"gomono":    gomono.TTF,
	"gobold":    gobold.TTF,
}

// Load resolves family to a parsed TrueType font. Family is either one of the
// built-in Go fonts (goregular, gomono, gobold) or a path to a .ttf file.
// There is no fallback: an unknown family is an error.
func Load(family string) (*truetype.Font, error) {
	data, ok := builtin[strings.ToLower(family)]
	if !ok {
		var err error
		data, err = os.ReadFile(family)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				return nil, fmt.Errorf("%w: %s", ErrFontNotFound, family)
			}
			return nil, fmt.Errorf("read font %s: %w", family, err)
		}
	}

	f, err := truetype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse font %s: %w", family, err)
	}
	return f, nil
}
