// pkg/render/renderer.go
package render

import (
	"go-sphere-pop/internal/assets"
	"go-sphere-pop/internal/defs"
	"go-sphere-pop/internal/entity"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Renderer рисует цели и пыль из ECS. Состояние игры он только читает.
type Renderer struct {
	shape   defs.Shape
	palette Palette
	sprites *assets.SpriteManager
}

func NewRenderer(shape defs.Shape, palette Palette, sprites *assets.SpriteManager) *Renderer {
	return &Renderer{
		shape:   shape,
		palette: palette,
		sprites: sprites,
	}
}

// Draw очищает экран фоном и рисует цели в порядке появления, затем пыль.
func (r *Renderer) Draw(screen *ebiten.Image, ecs *entity.ECS) {
	screen.Fill(r.palette.Background)
	for _, id := range ecs.Order {
		pos, ok := ecs.Positions[id]
		if !ok {
			continue
		}
		target := ecs.Targets[id]
		switch r.shape {
		case defs.ShapeSprite:
			r.drawSprite(screen, pos.X, pos.Y, target.Size)
		default:
			vector.DrawFilledCircle(screen, float32(pos.X), float32(pos.Y), float32(target.HalfHeight()), r.palette.Target, true)
			vector.StrokeCircle(screen, float32(pos.X), float32(pos.Y), float32(target.HalfHeight()), 2, DarkenColor(r.palette.Target), true)
		}
	}
	r.drawDust(screen, ecs)
}

// drawSprite центрирует спрайт в позиции цели (якорь 0.5, 0.5).
func (r *Renderer) drawSprite(screen *ebiten.Image, x, y, size float64) {
	img := r.sprites.Sphere(int(size), r.palette.Target)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(x-size/2, y-size/2)
	screen.DrawImage(img, op)
}

func (r *Renderer) drawDust(screen *ebiten.Image, ecs *entity.ECS) {
	for _, p := range ecs.Particles {
		if !p.Alive() {
			continue
		}
		size := float32(p.Size * p.Scale)
		c := FadeColor(r.palette.Dust, p.Alpha)
		vector.DrawFilledRect(screen, float32(p.X)-size/2, float32(p.Y)-size/2, size, size, c, false)
	}
}
