// internal/event/types.go
package event

import (
	"go-sphere-pop/internal/component"
	"go-sphere-pop/internal/types"
)

const (
	TargetSpawned   EventType = "TargetSpawned"   // Цель появилась
	TargetRemoved   EventType = "TargetRemoved"   // Цель убрана со сцены
	TargetPopped    EventType = "TargetPopped"    // Цель сбита: пыль и звук
	ClickRegistered EventType = "ClickRegistered" // Клик в режиме игры, попадание или промах
	TickAdvanced    EventType = "TickAdvanced"
	ModeChanged     EventType = "ModeChanged"
)

// TargetData — данные для TargetSpawned, TargetRemoved и TargetPopped.
type TargetData struct {
	ID   types.EntityID
	X, Y float64
	Size float64
}

// ClickData — данные для ClickRegistered. TargetID равен нулю при промахе.
type ClickData struct {
	X, Y     float64
	Hit      bool
	TargetID types.EntityID
}

// ModeData — данные для ModeChanged.
type ModeData struct {
	Mode component.Mode
}

// TickData — данные для TickAdvanced.
type TickData struct {
	Tick int
}
