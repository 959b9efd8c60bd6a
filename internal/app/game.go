// internal/app/game.go
package app

import (
	"fmt"
	"log"

	"go-sphere-pop/internal/component"
	"go-sphere-pop/internal/config"
	"go-sphere-pop/internal/defs"
	"go-sphere-pop/internal/entity"
	"go-sphere-pop/internal/event"
	"go-sphere-pop/internal/system"
	"go-sphere-pop/internal/types"
	"go-sphere-pop/internal/utils"

	"github.com/google/uuid"
)

// Game holds the whole state of one session and the systems that mutate it.
// All mutation happens from OnTick, OnClick and OnTogglePause, called from a single goroutine.
type Game struct {
	Config          config.Config
	Variant         defs.VariantDefinition
	SessionID       uuid.UUID
	ECS             *entity.ECS
	SpawnSystem     *system.SpawnSystem
	PhysicsSystem   *system.PhysicsSystem
	HitSystem       *system.HitSystem
	ModeSystem      *system.ModeSystem
	DustSystem      *system.DustSystem
	EventDispatcher *event.Dispatcher
	Rng             *utils.PRNGService

	viewportWidth  float64
	viewportHeight float64
}

// NewGame initializes a new game instance. The config is validated here;
// an invalid config never reaches the systems.
func NewGame(cfg config.Config) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}
	variant, _ := defs.Lookup(cfg.Variant)

	ecs := entity.NewECS()
	eventDispatcher := event.NewDispatcher()
	rng := utils.NewPRNGService(cfg.Seed)
	g := &Game{
		Config:          cfg,
		Variant:         variant,
		SessionID:       uuid.New(),
		ECS:             ecs,
		EventDispatcher: eventDispatcher,
		Rng:             rng,
		viewportWidth:   float64(cfg.ViewportWidth),
		viewportHeight:  float64(cfg.ViewportHeight),
	}
	g.SpawnSystem = system.NewSpawnSystem(ecs, g, rng, eventDispatcher, cfg.SpawnDelayTicks, cfg.MaxTargets, cfg.TargetSize)
	g.PhysicsSystem = system.NewPhysicsSystem(ecs, g, cfg.Gravity, cfg.Bounciness)
	g.HitSystem = system.NewHitSystem(ecs, eventDispatcher, cfg.HitRadius)
	g.ModeSystem = system.NewModeSystem(ecs, eventDispatcher)
	// Отдельный генератор для пыли: частицы не должны сдвигать позиции спавна
	g.DustSystem = system.NewDustSystem(ecs, utils.NewPRNGService(rng.Seed()+1), cfg.DustParticles)

	eventDispatcher.Subscribe(event.TargetPopped, g.DustSystem)

	log.Printf("session %s: variant=%s seed=%d", g.SessionID, cfg.Variant, rng.Seed())
	return g, nil
}

// ViewportSize implements interfaces.Viewport.
func (g *Game) ViewportSize() (float64, float64) {
	return g.viewportWidth, g.viewportHeight
}

// SetViewport updates the area used for spawn bounds and the floor height.
// Non-positive sizes (minimised window) are ignored.
func (g *Game) SetViewport(width, height float64) {
	if width <= 0 || height <= 0 {
		return
	}
	g.viewportWidth = width
	g.viewportHeight = height
}

// OnTick advances the simulation by one tick. In pause nothing changes.
func (g *Game) OnTick() {
	switch g.ECS.Mode {
	case component.PlayMode:
		g.SpawnSystem.Update()
		g.PhysicsSystem.Update()
		g.DustSystem.Update()
		g.ECS.Tick++
		g.EventDispatcher.Dispatch(event.Event{Type: event.TickAdvanced, Data: event.TickData{Tick: g.ECS.Tick}})
	case component.PauseMode:
		// На паузе двигается только прицел, его ведёт фронтенд
	}
}

// OnClick handles a pointer press at (x, y). Ignored in pause.
func (g *Game) OnClick(x, y float64) (types.EntityID, bool) {
	if g.ECS.Mode == component.PauseMode {
		return 0, false
	}
	return g.HitSystem.HandleClick(x, y)
}

// OnTogglePause switches between play and pause and returns the new mode.
func (g *Game) OnTogglePause() component.Mode {
	mode := g.ModeSystem.Toggle()
	log.Printf("session %s: mode -> %s", g.SessionID, mode)
	return mode
}

// Paused reports whether the game is in pause mode.
func (g *Game) Paused() bool {
	return g.ModeSystem.Current() == component.PauseMode
}

// Stats returns a snapshot of the counters for the score display.
func (g *Game) Stats() Stats {
	return Stats{
		SessionID: g.SessionID,
		Mode:      g.ECS.Mode,
		Score:     g.ECS.Score.Points,
		Clicks:    g.ECS.Score.Clicks,
		Ticks:     g.ECS.Tick,
		Live:      g.ECS.LiveTargets(),
	}
}
