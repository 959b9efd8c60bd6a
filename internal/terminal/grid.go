// internal/terminal/grid.go
package terminal

import (
	"math"

	"go-sphere-pop/internal/config"
	"go-sphere-pop/pkg/utils"
)

// Grid переводит клетки терминала в координаты мира и обратно.
// Клетка — config.CellWidth×config.CellHeight пикселей мира, так что физика
// совпадает с графическим фронтендом.
type Grid struct {
	Cols, Rows int
}

// Viewport возвращает размер мира, покрытого сеткой.
func (g Grid) Viewport() (float64, float64) {
	return float64(g.Cols * config.CellWidth), float64(g.Rows * config.CellHeight)
}

// CellCenter возвращает центр клетки в координатах мира.
func (g Grid) CellCenter(col, row int) (float64, float64) {
	return (float64(col) + 0.5) * config.CellWidth, (float64(row) + 0.5) * config.CellHeight
}

// CellAt возвращает клетку, содержащую точку мира, с обрезкой по краям сетки.
func (g Grid) CellAt(x, y float64) (int, int) {
	col := int(math.Floor(x / config.CellWidth))
	row := int(math.Floor(y / config.CellHeight))
	return utils.Clamp(col, 0, g.Cols-1), utils.Clamp(row, 0, g.Rows-1)
}

// Contains сообщает, лежит ли клетка внутри сетки.
func (g Grid) Contains(col, row int) bool {
	return col >= 0 && col < g.Cols && row >= 0 && row < g.Rows
}
