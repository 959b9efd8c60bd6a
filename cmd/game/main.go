// cmd/game/main.go
package main

import (
	"flag"
	"log"

	"go-sphere-pop/internal/app"
	"go-sphere-pop/internal/assets"
	"go-sphere-pop/internal/config"
	"go-sphere-pop/internal/event"
	"go-sphere-pop/internal/metrics"
	"go-sphere-pop/internal/state"

	"github.com/hajimehoshi/ebiten/v2"
)

type AppGame struct {
	stateMachine *state.StateMachine
	game         *app.Game
}

func (a *AppGame) Update() error {
	return a.stateMachine.Update()
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

// Layout отдаёт логический экран размером с окно: вьюпорт игры следует за окном.
func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	a.game.SetViewport(float64(outsideWidth), float64(outsideHeight))
	w, h := a.game.ViewportSize()
	return int(w), int(h)
}

func main() {
	flags := config.RegisterFlags(flag.CommandLine)
	flag.Parse()

	cfg, err := flags.Resolve()
	if err != nil {
		log.Fatal(err)
	}
	game, err := app.NewGame(cfg)
	if err != nil {
		log.Fatal(err)
	}

	collector := metrics.NewCollector()
	collector.Attach(game.EventDispatcher)
	metrics.Serve(flags.DebugAddr, collector)

	if cfg.Sound {
		bank := assets.NewSoundBank(assets.NewContext(), game.Variant)
		game.EventDispatcher.Subscribe(event.TargetPopped, bank)
	}

	scene, err := state.NewScene(game)
	if err != nil {
		log.Fatal(err)
	}
	defer scene.Sprites.Cleanup()

	sm := state.NewStateMachine()
	sm.SetState(state.NewGameState(sm, scene))

	ebiten.SetWindowSize(cfg.ViewportWidth, cfg.ViewportHeight)
	ebiten.SetWindowTitle(game.Variant.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(config.TicksPerSecond)
	ebiten.SetCursorMode(ebiten.CursorModeHidden)

	if err := ebiten.RunGame(&AppGame{stateMachine: sm, game: game}); err != nil {
		log.Fatal(err)
	}
	log.Printf("session finished: %s", game.Stats())
}
