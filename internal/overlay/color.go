package overlay

import (
	"fmt"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// ParseColor parses a "#rrggbb" or "#rgb" hex string.
func ParseColor(hex string) (color.Color, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return nil, fmt.Errorf("parse colour %q: %w", hex, err)
	}
	return c.Clamped(), nil
}
