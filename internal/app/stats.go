// internal/app/stats.go
package app

import (
	"fmt"

	"go-sphere-pop/internal/component"
	"go-sphere-pop/internal/config"

	"github.com/google/uuid"
)

// Stats — снимок счётчиков сессии.
type Stats struct {
	SessionID uuid.UUID
	Mode      component.Mode
	Score     int
	Clicks    int
	Ticks     int
	Live      int
}

// Accuracy — доля попаданий. Без кликов равна нулю.
func (s Stats) Accuracy() float64 {
	if s.Clicks == 0 {
		return 0
	}
	return float64(s.Score) / float64(s.Clicks)
}

// DPS — сбитых целей в секунду при фиксированных TicksPerSecond.
func (s Stats) DPS() float64 {
	if s.Ticks == 0 {
		return 0
	}
	return float64(s.Score) * config.TicksPerSecond / float64(s.Ticks)
}

// Lines возвращает текст для табло счёта.
func (s Stats) Lines() string {
	return fmt.Sprintf("Score: %d\nAccuracy: %.2f\nDPS: %.2f", s.Score, s.Accuracy(), s.DPS())
}

func (s Stats) String() string {
	return fmt.Sprintf("session=%s score=%d clicks=%d ticks=%d accuracy=%.2f dps=%.2f",
		s.SessionID, s.Score, s.Clicks, s.Ticks, s.Accuracy(), s.DPS())
}
