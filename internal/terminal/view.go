// internal/terminal/view.go
package terminal

import (
	"fmt"
	"image/color"
	"strings"

	"go-sphere-pop/internal/app"
	"go-sphere-pop/internal/config"
	"go-sphere-pop/internal/defs"
	"go-sphere-pop/internal/utils"

	"github.com/gdamore/tcell/v2"
)

const (
	targetRune = '█'
	dustRune   = '*'
	fadedRune  = '·'
)

// View рисует состояние игры символами. Спрайтов в терминале нет,
// поэтому любой вариант рисуется кругами своего цвета.
type View struct {
	screen     tcell.Screen
	background tcell.Style
	target     tcell.Style
	dust       color.RGBA
	reticule   tcell.Style
	text       tcell.Style
}

func NewView(screen tcell.Screen, variant defs.VariantDefinition) (*View, error) {
	bg, err := defs.ParseHexColor(variant.Background)
	if err != nil {
		return nil, fmt.Errorf("variant %s background: %w", variant.ID, err)
	}
	fg, err := variant.RGBA()
	if err != nil {
		return nil, fmt.Errorf("variant %s color: %w", variant.ID, err)
	}
	dust, err := defs.ParseHexColor(variant.Tint)
	if err != nil {
		return nil, fmt.Errorf("variant %s tint: %w", variant.ID, err)
	}
	base := tcell.StyleDefault.Background(rgb(bg))
	return &View{
		screen:     screen,
		background: base,
		target:     base.Foreground(rgb(fg)),
		dust:       dust,
		reticule:   base.Foreground(rgb(config.ReticuleColor)).Bold(true),
		text:       base.Foreground(rgb(config.TextLightColor)),
	}, nil
}

func rgb(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// Draw перерисовывает весь экран: цели, пыль, счёт, пауза, прицел.
func (v *View) Draw(game *app.Game, grid Grid, pointerCol, pointerRow int) {
	v.screen.SetStyle(v.background)
	v.screen.Clear()

	ecs := game.ECS
	for _, id := range ecs.Order {
		pos, ok := ecs.Positions[id]
		if !ok {
			continue
		}
		v.drawDisc(grid, pos.X, pos.Y, ecs.Targets[id].HalfHeight())
	}

	for _, p := range ecs.Particles {
		if !p.Alive() {
			continue
		}
		col, row := grid.CellAt(p.X, p.Y)
		r := dustRune
		if p.Alpha < 0.5 {
			r = fadedRune
		}
		faded := color.RGBA{
			R: uint8(float64(v.dust.R) * p.Alpha),
			G: uint8(float64(v.dust.G) * p.Alpha),
			B: uint8(float64(v.dust.B) * p.Alpha),
		}
		v.screen.SetContent(col, row, r, nil, v.background.Foreground(rgb(faded)))
	}

	v.drawLines(0, 0, game.Stats().Lines())
	if game.Paused() {
		lines := strings.Split(pauseText, "\n")
		width := 0
		for _, l := range lines {
			width = max(width, len(l))
		}
		v.drawLines((grid.Cols-width)/2, (grid.Rows-len(lines))/2, pauseText)
	}

	v.drawReticule(grid, pointerCol, pointerRow)
	v.screen.Show()
}

// drawDisc закрашивает клетки, центр которых лежит в круге радиуса r.
func (v *View) drawDisc(grid Grid, x, y, r float64) {
	minCol, minRow := grid.CellAt(x-r, y-r)
	maxCol, maxRow := grid.CellAt(x+r, y+r)
	for row := minRow; row <= maxRow; row++ {
		for col := minCol; col <= maxCol; col++ {
			cx, cy := grid.CellCenter(col, row)
			if utils.Distance(cx, cy, x, y) <= r {
				v.screen.SetContent(col, row, targetRune, nil, v.target)
			}
		}
	}
}

func (v *View) drawLines(col, row int, s string) {
	for i, line := range strings.Split(s, "\n") {
		for j, ch := range line {
			v.screen.SetContent(col+j, row+i, ch, nil, v.text)
		}
	}
}

// drawReticule рисует крест в масштабе клеток: 64 пикселя мира по каждой оси.
func (v *View) drawReticule(grid Grid, col, row int) {
	halfW := config.ReticuleSize / 2 / config.CellWidth
	halfH := config.ReticuleSize / 2 / config.CellHeight
	for dx := -halfW; dx <= halfW; dx++ {
		if grid.Contains(col+dx, row) {
			v.screen.SetContent(col+dx, row, '─', nil, v.reticule)
		}
	}
	for dy := -halfH; dy <= halfH; dy++ {
		if grid.Contains(col, row+dy) {
			v.screen.SetContent(col, row+dy, '│', nil, v.reticule)
		}
	}
	if grid.Contains(col, row) {
		v.screen.SetContent(col, row, '┼', nil, v.reticule)
	}
}
