// internal/component/visual.go
package component

// Particle — частица "пыли", которая разлетается из лопнувшей цели.
type Particle struct {
	X, Y       float64
	VX, VY     float64
	Size       float64 // Базовый размер в пикселях
	Scale      float64 // Текущий масштаб, уменьшается каждый тик
	ScaleSpeed float64
	Alpha      float64 // Прозрачность 0..1, частица удаляется при нуле
	AlphaSpeed float64
}

// Alive сообщает, видна ли ещё частица.
func (p *Particle) Alive() bool {
	return p.Alpha > 0 && p.Scale > 0
}
