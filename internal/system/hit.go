// internal/system/hit.go
package system

import (
	"go-sphere-pop/internal/entity"
	"go-sphere-pop/internal/event"
	"go-sphere-pop/internal/types"
	"go-sphere-pop/internal/utils"
)

// HitSystem обрабатывает клики по целям.
type HitSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
	radius          float64
}

func NewHitSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher, radius float64) *HitSystem {
	return &HitSystem{ecs: ecs, eventDispatcher: eventDispatcher, radius: radius}
}

// HandleClick засчитывает клик и сбивает первую (в порядке появления) цель,
// центр которой ближе radius к точке клика. За один клик сбивается не больше одной цели.
// Режим паузы проверяет вызывающий.
func (s *HitSystem) HandleClick(x, y float64) (types.EntityID, bool) {
	s.ecs.Score.Clicks++

	for _, id := range s.ecs.Order {
		pos, ok := s.ecs.Positions[id]
		if !ok {
			continue
		}
		if utils.Distance(x, y, pos.X, pos.Y) < s.radius {
			target := event.TargetData{ID: id, X: pos.X, Y: pos.Y, Size: s.ecs.Targets[id].Size}
			s.ecs.RemoveTarget(id)
			s.ecs.Score.Points++

			s.eventDispatcher.Dispatch(event.Event{Type: event.TargetPopped, Data: target})
			s.eventDispatcher.Dispatch(event.Event{Type: event.TargetRemoved, Data: target})
			s.eventDispatcher.Dispatch(event.Event{
				Type: event.ClickRegistered,
				Data: event.ClickData{X: x, Y: y, Hit: true, TargetID: id},
			})
			return id, true
		}
	}

	s.eventDispatcher.Dispatch(event.Event{
		Type: event.ClickRegistered,
		Data: event.ClickData{X: x, Y: y},
	})
	return 0, false
}
