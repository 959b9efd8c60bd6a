// internal/system/spawn.go
package system

import (
	"math"

	"go-sphere-pop/internal/entity"
	"go-sphere-pop/internal/event"
	"go-sphere-pop/internal/interfaces"
	"go-sphere-pop/internal/types"
)

// Random — источник случайных чисел в [0, 1). Реализуется utils.PRNGService.
type Random interface {
	Float64() float64
}

// SpawnSystem создаёт новую цель раз в delay тиков, пока живых целей меньше max.
type SpawnSystem struct {
	ecs             *entity.ECS
	viewport        interfaces.Viewport
	rng             Random
	eventDispatcher *event.Dispatcher
	delay           int
	max             int
	size            float64
}

func NewSpawnSystem(ecs *entity.ECS, viewport interfaces.Viewport, rng Random, eventDispatcher *event.Dispatcher, delay, max int, size float64) *SpawnSystem {
	return &SpawnSystem{
		ecs:             ecs,
		viewport:        viewport,
		rng:             rng,
		eventDispatcher: eventDispatcher,
		delay:           delay,
		max:             max,
		size:            size,
	}
}

// Update проверяет условие спавна для текущего тика (до его увеличения).
// Цели могут перекрываться, положение не проверяется.
func (s *SpawnSystem) Update() (types.EntityID, bool) {
	if s.ecs.LiveTargets() >= s.max || s.ecs.Tick%s.delay != 0 {
		return 0, false
	}
	width, height := s.viewport.ViewportSize()
	x := math.Floor(s.rng.Float64() * width)
	y := math.Floor(s.rng.Float64() * height)
	id := s.ecs.CreateTarget(x, y, s.size)

	s.eventDispatcher.Dispatch(event.Event{
		Type: event.TargetSpawned,
		Data: event.TargetData{ID: id, X: x, Y: y, Size: s.size},
	})
	return id, true
}
