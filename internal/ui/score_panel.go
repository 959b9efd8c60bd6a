// internal/ui/score_panel.go
package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

// ScorePanel рисует счёт, точность и DPS в левом верхнем углу.
type ScorePanel struct {
	X, Y     int
	fontFace font.Face
	color    color.Color
}

func NewScorePanel(x, y int, fontFace font.Face, c color.Color) *ScorePanel {
	return &ScorePanel{
		X:        x,
		Y:        y,
		fontFace: fontFace,
		color:    c,
	}
}

// Draw выводит многострочный текст; text.Draw сам переносит строки по '\n'.
func (p *ScorePanel) Draw(screen *ebiten.Image, lines string) {
	text.Draw(screen, lines, p.fontFace, p.X, p.Y, p.color)
}
