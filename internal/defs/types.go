// internal/defs/types.go
package defs

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// Shape defines how a target is drawn.
type Shape string

const (
	ShapeSprite Shape = "SPRITE"
	ShapeCircle Shape = "CIRCLE"
)

// VariantDefinition holds the static look-and-sound data of one game variant.
// Physics does not depend on it.
type VariantDefinition struct {
	ID         string  `json:"id"`
	Title      string  `json:"title"`
	Shape      Shape   `json:"shape"`
	Color      string  `json:"color"`       // "#rrggbb"
	Tint       string  `json:"tint"`        // цвет частиц пыли
	PopPitch   float64 `json:"pop_pitch"`   // Hz, начальная частота "плопа"
	PopMillis  int     `json:"pop_millis"`  // длительность звука
	Background string  `json:"background"`
}

// RGBA разбирает Color в color.RGBA.
func (v VariantDefinition) RGBA() (color.RGBA, error) {
	return ParseHexColor(v.Color)
}

// ParseHexColor разбирает строку вида "#rrggbb" или "#rrggbbaa".
func ParseHexColor(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 && len(hex) != 8 {
		return color.RGBA{}, fmt.Errorf("invalid color %q: want #rrggbb or #rrggbbaa", s)
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return color.RGBA{
		R: uint8(v >> 24),
		G: uint8(v >> 16),
		B: uint8(v >> 8),
		A: uint8(v),
	}, nil
}
