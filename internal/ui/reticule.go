// internal/ui/reticule.go
package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Reticule — красный крест, который следует за указателем в любом режиме.
type Reticule struct {
	X, Y      float32
	Size      float32
	Thickness float32
	Color     color.RGBA
}

func NewReticule(size, thickness float32, c color.RGBA) *Reticule {
	return &Reticule{
		Size:      size,
		Thickness: thickness,
		Color:     c,
	}
}

// MoveTo ставит центр креста в позицию указателя.
func (r *Reticule) MoveTo(x, y int) {
	r.X, r.Y = float32(x), float32(y)
}

func (r *Reticule) Draw(screen *ebiten.Image) {
	half := r.Size / 2
	t := r.Thickness / 2
	// Горизонтальная и вертикальная полосы
	vector.DrawFilledRect(screen, r.X-half, r.Y-t, r.Size, r.Thickness, r.Color, false)
	vector.DrawFilledRect(screen, r.X-t, r.Y-half, r.Thickness, r.Size, r.Color, false)
}
