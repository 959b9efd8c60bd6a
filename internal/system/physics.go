// internal/system/physics.go
package system

import (
	"math"

	"go-sphere-pop/internal/component"
	"go-sphere-pop/internal/entity"
	"go-sphere-pop/internal/interfaces"
)

// ApplyGravity продвигает одну цель ровно на один тик.
// floor — высота, на которой центр цели касается пола (высота viewport минус половина цели).
// Возвращает true, если в этом тике был отскок.
func ApplyGravity(pos *component.Position, vel *component.Velocity, floor, gravity, bounciness float64) bool {
	distanceToImpact := floor - pos.Y
	vel.Y += gravity
	if vel.Y > distanceToImpact {
		// Считаем, что цель дошла до пола; остаток пути уходит вверх после отскока.
		remaining := bounciness * (math.Abs(vel.Y) - distanceToImpact)
		pos.Y = floor - remaining
		vel.Y = -bounciness * vel.Y
		return true
	}
	pos.Y += vel.Y
	return false
}

// PhysicsSystem применяет гравитацию и отскок от пола ко всем живым целям.
type PhysicsSystem struct {
	ecs        *entity.ECS
	viewport   interfaces.Viewport
	gravity    float64
	bounciness float64
}

func NewPhysicsSystem(ecs *entity.ECS, viewport interfaces.Viewport, gravity, bounciness float64) *PhysicsSystem {
	return &PhysicsSystem{ecs: ecs, viewport: viewport, gravity: gravity, bounciness: bounciness}
}

func (s *PhysicsSystem) Update() {
	_, height := s.viewport.ViewportSize()
	for _, id := range s.ecs.Order {
		pos, hasPos := s.ecs.Positions[id]
		vel, hasVel := s.ecs.Velocities[id]
		target, isTarget := s.ecs.Targets[id]
		if !hasPos || !hasVel || !isTarget {
			continue
		}
		ApplyGravity(pos, vel, height-target.HalfHeight(), s.gravity, s.bounciness)
	}
}
