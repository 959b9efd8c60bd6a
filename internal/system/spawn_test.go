package system

import (
	"testing"

	"go-sphere-pop/internal/entity"
	"go-sphere-pop/internal/event"
)

func newSpawnFixture(delay, max int) (*entity.ECS, *SpawnSystem, *recorder) {
	ecs := entity.NewECS()
	d := event.NewDispatcher()
	rec := &recorder{}
	d.Subscribe(event.TargetSpawned, rec)
	rng := &seqRandom{values: []float64{0.5, 0.25, 0.999, 0}}
	s := NewSpawnSystem(ecs, fixedViewport{w: 960, h: 512}, rng, d, delay, max, 64)
	return ecs, s, rec
}

func TestSpawnOnDelayBoundary(t *testing.T) {
	ecs, s, rec := newSpawnFixture(60, 10)

	for tick := 0; tick < 180; tick++ {
		ecs.Tick = tick
		_, spawned := s.Update()
		want := tick%60 == 0
		if spawned != want {
			t.Fatalf("tick %d: spawned = %v, want %v", tick, spawned, want)
		}
	}
	if ecs.LiveTargets() != 3 {
		t.Fatalf("live targets = %d, want 3", ecs.LiveTargets())
	}
	if len(rec.events) != 3 {
		t.Fatalf("TargetSpawned events = %d, want 3", len(rec.events))
	}
}

func TestSpawnPositionIsFlooredRandom(t *testing.T) {
	ecs, s, rec := newSpawnFixture(1, 10)

	id, ok := s.Update()
	if !ok {
		t.Fatal("expected spawn at tick 0")
	}
	pos := ecs.Positions[id]
	if pos.X != 480 || pos.Y != 128 {
		t.Fatalf("position = (%v, %v), want (480, 128)", pos.X, pos.Y)
	}
	if ecs.Velocities[id].Y != 0 {
		t.Fatalf("velocity = %v, want 0", ecs.Velocities[id].Y)
	}

	ecs.Tick = 1
	id, _ = s.Update()
	pos = ecs.Positions[id]
	if pos.X != 959 || pos.Y != 0 {
		t.Fatalf("second position = (%v, %v), want (959, 0)", pos.X, pos.Y)
	}

	data := rec.events[0].Data.(event.TargetData)
	if data.Size != 64 || data.X != 480 {
		t.Errorf("event data = %+v", data)
	}
}

func TestSpawnRespectsCap(t *testing.T) {
	ecs, s, _ := newSpawnFixture(1, 10)

	for tick := 0; tick < 50; tick++ {
		ecs.Tick = tick
		s.Update()
		if ecs.LiveTargets() > 10 {
			t.Fatalf("tick %d: live targets = %d, exceeds cap", tick, ecs.LiveTargets())
		}
	}
	if ecs.LiveTargets() != 10 {
		t.Fatalf("live targets = %d, want 10", ecs.LiveTargets())
	}

	// После освобождения места спавн возобновляется
	ecs.RemoveTarget(ecs.Order[0])
	ecs.Tick = 50
	if _, ok := s.Update(); !ok {
		t.Fatal("expected spawn after a slot was freed")
	}
}
