package system

import (
	"testing"

	"go-sphere-pop/internal/entity"
	"go-sphere-pop/internal/event"
)

func newHitFixture() (*entity.ECS, *HitSystem, *recorder) {
	ecs := entity.NewECS()
	d := event.NewDispatcher()
	rec := &recorder{}
	d.SubscribeAll(rec, event.TargetPopped, event.TargetRemoved, event.ClickRegistered)
	return ecs, NewHitSystem(ecs, d, 32), rec
}

func TestHandleClickRemovesFirstTargetWithinRadius(t *testing.T) {
	ecs, s, rec := newHitFixture()
	near := ecs.CreateTarget(110, 100, 64) // 10
	far := ecs.CreateTarget(140, 100, 64)  // 40
	edge := ecs.CreateTarget(100, 131, 64) // 31

	id, hit := s.HandleClick(100, 100)

	if !hit || id != near {
		t.Fatalf("HandleClick = (%d, %v), want (%d, true)", id, hit, near)
	}
	if ecs.Score.Points != 1 {
		t.Errorf("score = %d, want 1", ecs.Score.Points)
	}
	if ecs.Score.Clicks != 1 {
		t.Errorf("clicks = %d, want 1", ecs.Score.Clicks)
	}
	if ecs.LiveTargets() != 2 || ecs.Order[0] != far || ecs.Order[1] != edge {
		t.Errorf("remaining order = %v, want [%d %d]", ecs.Order, far, edge)
	}

	want := []event.EventType{event.TargetPopped, event.TargetRemoved, event.ClickRegistered}
	got := rec.types()
	if len(got) != len(want) {
		t.Fatalf("events = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("events = %v, want %v", got, want)
		}
	}
	popped := rec.events[0].Data.(event.TargetData)
	if popped.ID != near || popped.X != 110 || popped.Y != 100 {
		t.Errorf("popped data = %+v", popped)
	}
}

func TestHandleClickUsesScanOrderNotNearest(t *testing.T) {
	ecs, s, _ := newHitFixture()
	ecs.CreateTarget(140, 100, 64)         // 40, вне радиуса
	edge := ecs.CreateTarget(100, 131, 64) // 31
	ecs.CreateTarget(110, 100, 64)         // 10, ближе, но позже

	id, hit := s.HandleClick(100, 100)

	if !hit || id != edge {
		t.Fatalf("HandleClick = (%d, %v), want (%d, true)", id, hit, edge)
	}
	if ecs.LiveTargets() != 2 {
		t.Fatalf("live targets = %d, want 2: one target per click", ecs.LiveTargets())
	}
}

func TestHandleClickMissStillCounts(t *testing.T) {
	ecs, s, rec := newHitFixture()
	ecs.CreateTarget(140, 100, 64)

	id, hit := s.HandleClick(100, 100)

	if hit || id != 0 {
		t.Fatalf("HandleClick = (%d, %v), want miss", id, hit)
	}
	if ecs.Score.Clicks != 1 || ecs.Score.Points != 0 {
		t.Errorf("score = %+v, want 1 click and 0 points", *ecs.Score)
	}
	if ecs.LiveTargets() != 1 {
		t.Errorf("live targets = %d, want 1", ecs.LiveTargets())
	}
	if len(rec.events) != 1 || rec.events[0].Type != event.ClickRegistered {
		t.Fatalf("events = %v, want one ClickRegistered", rec.types())
	}
	if data := rec.events[0].Data.(event.ClickData); data.Hit {
		t.Error("ClickData.Hit = true on a miss")
	}
}

func TestHandleClickRadiusIsStrict(t *testing.T) {
	ecs, s, _ := newHitFixture()
	ecs.CreateTarget(132, 100, 64) // ровно 32

	if _, hit := s.HandleClick(100, 100); hit {
		t.Fatal("target at exactly the hit radius must not be hit")
	}
}

func TestHandleClickOnEmptyField(t *testing.T) {
	ecs, s, _ := newHitFixture()
	for i := 0; i < 3; i++ {
		s.HandleClick(float64(i), 0)
	}
	if ecs.Score.Clicks != 3 || ecs.Score.Points != 0 {
		t.Errorf("score = %+v, want 3 clicks and 0 points", *ecs.Score)
	}
}
