// internal/state/scene.go
package state

import (
	"fmt"

	"go-sphere-pop/internal/app"
	"go-sphere-pop/internal/assets"
	"go-sphere-pop/internal/config"
	"go-sphere-pop/internal/ui"
	"go-sphere-pop/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font/basicfont"
)

// Scene — всё общее для игры и паузы: логика, рендерер и элементы UI.
type Scene struct {
	Game     *app.Game
	Sprites  *assets.SpriteManager
	renderer *render.Renderer
	reticule *ui.Reticule
	panel    *ui.ScorePanel
	overlay  *ui.PauseOverlay
}

func NewScene(game *app.Game) (*Scene, error) {
	palette, err := render.NewPalette(game.Variant)
	if err != nil {
		return nil, fmt.Errorf("failed to build palette: %w", err)
	}
	sprites := assets.NewSpriteManager()
	face := basicfont.Face7x13
	return &Scene{
		Game:     game,
		Sprites:  sprites,
		renderer: render.NewRenderer(game.Variant.Shape, palette, sprites),
		reticule: ui.NewReticule(config.ReticuleSize, config.ReticuleThickness, config.ReticuleColor),
		panel:    ui.NewScorePanel(config.TextOffsetX, config.TextOffsetY, face, config.TextLightColor),
		overlay:  ui.NewPauseOverlay(face, config.OverlayColor, config.TextLightColor),
	}, nil
}

// trackPointer двигает прицел за курсором; на паузе тоже.
func (s *Scene) trackPointer() {
	s.reticule.MoveTo(ebiten.CursorPosition())
}

// drawWorld рисует цели, пыль, счёт и прицел.
func (s *Scene) drawWorld(screen *ebiten.Image) {
	s.renderer.Draw(screen, s.Game.ECS)
	s.panel.Draw(screen, s.Game.Stats().Lines())
	s.reticule.Draw(screen)
}
