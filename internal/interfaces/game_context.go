// internal/interfaces/game_context.go
package interfaces

// Viewport даёт системам текущий размер области отрисовки.
// Размер может меняться вместе с окном, поэтому системы спрашивают его каждый тик.
type Viewport interface {
	ViewportSize() (width, height float64)
}
