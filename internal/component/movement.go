// component/movement.go
package component

// Position — компонент позиции (центр цели в координатах viewport)
type Position struct {
	X, Y float64
}

// Velocity — компонент скорости. Горизонтального движения нет, поэтому только Y.
type Velocity struct {
	Y float64
}
