// internal/system/dust.go
package system

import (
	"math"

	"go-sphere-pop/internal/component"
	"go-sphere-pop/internal/entity"
	"go-sphere-pop/internal/event"
)

const (
	dustMinSpeed      = 0.3
	dustMaxSpeed      = 3.0
	dustMinSize       = 4.0
	dustMaxSize       = 16.0
	dustMinScaleSpeed = 0.01
	dustMaxScaleSpeed = 0.05
	dustAlphaSpeed    = 0.02
)

// DustRandom — источник случайных чисел для частиц.
type DustRandom interface {
	Range(min, max float64) float64
}

// DustSystem создаёт облако частиц на месте сбитой цели и ведёт их до исчезновения.
// На игровое состояние не влияет.
type DustSystem struct {
	ecs   *entity.ECS
	rng   DustRandom
	count int
}

// NewDustSystem создает систему пыли. rng лучше брать отдельный от спавна,
// чтобы частицы не сдвигали последовательность позиций целей.
func NewDustSystem(ecs *entity.ECS, rng DustRandom, count int) *DustSystem {
	return &DustSystem{ecs: ecs, rng: rng, count: count}
}

// OnEvent обрабатывает события, на которые подписана система.
func (s *DustSystem) OnEvent(e event.Event) {
	if e.Type != event.TargetPopped {
		return
	}
	data, ok := e.Data.(event.TargetData)
	if !ok {
		return
	}
	s.Burst(data.X, data.Y)
}

// Burst добавляет count частиц в точке (x, y).
func (s *DustSystem) Burst(x, y float64) {
	for i := 0; i < s.count; i++ {
		angle := s.rng.Range(0, 2*math.Pi)
		speed := s.rng.Range(dustMinSpeed, dustMaxSpeed)
		s.ecs.Particles = append(s.ecs.Particles, &component.Particle{
			X:          x,
			Y:          y,
			VX:         math.Cos(angle) * speed,
			VY:         math.Sin(angle) * speed,
			Size:       s.rng.Range(dustMinSize, dustMaxSize),
			Scale:      1,
			ScaleSpeed: s.rng.Range(dustMinScaleSpeed, dustMaxScaleSpeed),
			Alpha:      1,
			AlphaSpeed: dustAlphaSpeed,
		})
	}
}

// Update двигает частицы на один тик и убирает погасшие.
func (s *DustSystem) Update() {
	alive := s.ecs.Particles[:0]
	for _, p := range s.ecs.Particles {
		p.X += p.VX
		p.Y += p.VY
		p.Scale -= p.ScaleSpeed
		p.Alpha -= p.AlphaSpeed
		if p.Alive() {
			alive = append(alive, p)
		}
	}
	// Обнуляем хвост, чтобы не держать ссылки на удалённые частицы
	for i := len(alive); i < len(s.ecs.Particles); i++ {
		s.ecs.Particles[i] = nil
	}
	s.ecs.Particles = alive
}
