// internal/system/mode.go
package system

import (
	"go-sphere-pop/internal/component"
	"go-sphere-pop/internal/entity"
	"go-sphere-pop/internal/event"
)

// ModeSystem переключает игру между режимами игры и паузы.
type ModeSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
}

func NewModeSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher) *ModeSystem {
	return &ModeSystem{ecs: ecs, eventDispatcher: eventDispatcher}
}

// Toggle переключает режим и возвращает новый.
func (s *ModeSystem) Toggle() component.Mode {
	switch s.ecs.Mode {
	case component.PlayMode:
		s.ecs.Mode = component.PauseMode
	default:
		s.ecs.Mode = component.PlayMode
	}
	s.eventDispatcher.Dispatch(event.Event{Type: event.ModeChanged, Data: event.ModeData{Mode: s.ecs.Mode}})
	return s.ecs.Mode
}

func (s *ModeSystem) Current() component.Mode {
	return s.ecs.Mode
}
