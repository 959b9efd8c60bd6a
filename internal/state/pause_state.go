// internal/state/pause_state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Убеждаемся, что PauseState соответствует интерфейсу State
var _ State = (*PauseState)(nil)

// PauseState замораживает мир: ни тика, ни кликов. Прицел двигается.
type PauseState struct {
	sm            *StateMachine
	scene         *Scene
	previousState State
}

func NewPauseState(sm *StateMachine, scene *Scene, prevState State) *PauseState {
	return &PauseState{
		sm:            sm,
		scene:         scene,
		previousState: prevState,
	}
}

func (s *PauseState) Enter() {}

func (s *PauseState) Update() error {
	s.scene.trackPointer()
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		s.scene.Game.OnTogglePause()
		s.sm.SetState(s.previousState)
	}
	return nil
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	s.scene.renderer.Draw(screen, s.scene.Game.ECS)
	s.scene.panel.Draw(screen, s.scene.Game.Stats().Lines())
	s.scene.overlay.Draw(screen)
	s.scene.reticule.Draw(screen)
}

func (s *PauseState) Exit() {}
