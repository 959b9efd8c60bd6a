// pkg/render/palette.go
package render

import (
	"fmt"

	"go-sphere-pop/internal/defs"
)

// NewPalette разбирает цвета варианта.
func NewPalette(v defs.VariantDefinition) (Palette, error) {
	var p Palette
	var err error
	if p.Background, err = defs.ParseHexColor(v.Background); err != nil {
		return p, fmt.Errorf("variant %s background: %w", v.ID, err)
	}
	if p.Target, err = defs.ParseHexColor(v.Color); err != nil {
		return p, fmt.Errorf("variant %s color: %w", v.ID, err)
	}
	if p.Dust, err = defs.ParseHexColor(v.Tint); err != nil {
		return p, fmt.Errorf("variant %s tint: %w", v.ID, err)
	}
	return p, nil
}
