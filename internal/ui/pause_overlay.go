// internal/ui/pause_overlay.go
package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

const PauseText = "PAUSED\nPress esc to resume."

// PauseOverlay затемняет экран и пишет текст паузы по центру.
type PauseOverlay struct {
	fontFace  font.Face
	shade     color.RGBA
	textColor color.Color
}

func NewPauseOverlay(fontFace font.Face, shade color.RGBA, textColor color.Color) *PauseOverlay {
	return &PauseOverlay{
		fontFace:  fontFace,
		shade:     shade,
		textColor: textColor,
	}
}

func (o *PauseOverlay) Draw(screen *ebiten.Image) {
	bounds := screen.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	vector.DrawFilledRect(screen, 0, 0, float32(w), float32(h), o.shade, false)

	rect := text.BoundString(o.fontFace, PauseText)
	// BoundString отсчитывает от базовой линии первой строки, Min.Y отрицателен
	x := (w-rect.Dx())/2 - rect.Min.X
	y := (h-rect.Dy())/2 - rect.Min.Y
	text.Draw(screen, PauseText, o.fontFace, x, y, o.textColor)
}
