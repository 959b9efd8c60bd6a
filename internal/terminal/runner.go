// internal/terminal/runner.go
package terminal

import (
	"context"
	"time"

	"go-sphere-pop/internal/app"

	"github.com/gdamore/tcell/v2"
)

const (
	pauseText    = "PAUSED\nPress esc to resume."
	tickInterval = 16 * time.Millisecond
)

// Runner гоняет игру в терминале: события tcell приходят через канал,
// тики от таймера, всё исполняется в одной горутине Run.
type Runner struct {
	screen  tcell.Screen
	game    *app.Game
	view    *View
	grid    Grid
	col     int
	row     int
	buttons tcell.ButtonMask
}

// NewRunner готовит уже инициализированный экран: мышь, курсор, размер мира.
func NewRunner(screen tcell.Screen, game *app.Game) (*Runner, error) {
	view, err := NewView(screen, game.Variant)
	if err != nil {
		return nil, err
	}
	screen.EnableMouse()
	screen.HideCursor()
	r := &Runner{
		screen: screen,
		game:   game,
		view:   view,
	}
	r.resize()
	r.col, r.row = r.grid.Cols/2, r.grid.Rows/2
	return r, nil
}

func (r *Runner) resize() {
	cols, rows := r.screen.Size()
	r.grid = Grid{Cols: cols, Rows: rows}
	r.game.SetViewport(r.grid.Viewport())
}

// Run работает до выхода игрока или отмены ctx.
func (r *Runner) Run(ctx context.Context) error {
	ticker := time.NewTicker(tickInterval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := r.screen.PollEvent()
			if ev == nil {
				// экран закрыт
				close(eventChan)
				return
			}
			eventChan <- ev
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-eventChan:
			if !ok || !r.HandleEvent(ev) {
				return nil
			}
		case <-ticker.C:
			r.Step()
		}
	}
}

// Step — один тик игры и перерисовка.
func (r *Runner) Step() {
	r.game.OnTick()
	r.Draw()
}

func (r *Runner) Draw() {
	r.view.Draw(r.game, r.grid, r.col, r.row)
}

// HandleEvent обрабатывает событие tcell. false — игрок вышел.
func (r *Runner) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return r.handleKey(ev.Key(), ev.Rune())
	case *tcell.EventMouse:
		col, row := ev.Position()
		r.handleMouse(col, row, ev.Buttons())
	case *tcell.EventResize:
		r.resize()
		r.screen.Sync()
	}
	return true
}

func (r *Runner) handleKey(key tcell.Key, ch rune) bool {
	switch key {
	case tcell.KeyCtrlC:
		return false
	case tcell.KeyEscape:
		r.game.OnTogglePause()
		r.Draw()
	case tcell.KeyRune:
		if ch == 'q' {
			return false
		}
	}
	return true
}

// handleMouse двигает прицел и кликает по фронту нажатия левой кнопки.
// Удержание кнопки с движением мыши не даёт повторных кликов.
func (r *Runner) handleMouse(col, row int, buttons tcell.ButtonMask) {
	r.col, r.row = col, row
	pressed := buttons&tcell.Button1 != 0 && r.buttons&tcell.Button1 == 0
	r.buttons = buttons
	if pressed {
		r.game.OnClick(r.grid.CellCenter(col, row))
	}
}
