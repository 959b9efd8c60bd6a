// internal/state/game_state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var _ State = (*GameState)(nil)

// GameState — режим игры: тик, клики, Esc уводит в паузу.
type GameState struct {
	sm      *StateMachine
	scene   *Scene
	touches []ebiten.TouchID
}

func NewGameState(sm *StateMachine, scene *Scene) *GameState {
	return &GameState{sm: sm, scene: scene}
}

func (g *GameState) Enter() {}

func (g *GameState) Update() error {
	g.scene.trackPointer()

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.scene.Game.OnTogglePause()
		g.sm.SetState(NewPauseState(g.sm, g.scene, g))
		return nil
	}

	g.scene.Game.OnTick()

	// Клик обрабатывается после тика, по позиции на момент нажатия
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		g.scene.Game.OnClick(float64(x), float64(y))
	}
	g.touches = inpututil.AppendJustPressedTouchIDs(g.touches[:0])
	for _, id := range g.touches {
		x, y := ebiten.TouchPosition(id)
		g.scene.reticule.MoveTo(x, y)
		g.scene.Game.OnClick(float64(x), float64(y))
	}
	return nil
}

func (g *GameState) Draw(screen *ebiten.Image) {
	g.scene.drawWorld(screen)
}

func (g *GameState) Exit() {}
