package event

import "testing"

type recorder struct {
	got []Event
}

func (r *recorder) OnEvent(e Event) {
	r.got = append(r.got, e)
}

func TestDispatchReachesOnlySubscribedType(t *testing.T) {
	d := NewDispatcher()
	popped := &recorder{}
	spawned := &recorder{}
	d.Subscribe(TargetPopped, popped)
	d.Subscribe(TargetSpawned, spawned)

	d.Dispatch(Event{Type: TargetPopped, Data: TargetData{ID: 7, X: 1, Y: 2}})

	if len(popped.got) != 1 {
		t.Fatalf("popped listener got %d events, want 1", len(popped.got))
	}
	if len(spawned.got) != 0 {
		t.Fatalf("spawned listener got %d events, want 0", len(spawned.got))
	}
	data, ok := popped.got[0].Data.(TargetData)
	if !ok {
		t.Fatalf("data type = %T, want TargetData", popped.got[0].Data)
	}
	if data.ID != 7 {
		t.Errorf("data.ID = %d, want 7", data.ID)
	}
}

func TestDispatchPreservesSubscriptionOrder(t *testing.T) {
	d := NewDispatcher()
	var order []int
	first := &orderListener{n: 1, out: &order}
	second := &orderListener{n: 2, out: &order}
	d.Subscribe(TickAdvanced, first)
	d.Subscribe(TickAdvanced, second)

	d.Dispatch(Event{Type: TickAdvanced})

	if len(order) != 2 || order[0] != 1 || order[1] != 2 {
		t.Fatalf("call order = %v, want [1 2]", order)
	}
}

type orderListener struct {
	n   int
	out *[]int
}

func (l *orderListener) OnEvent(Event) {
	*l.out = append(*l.out, l.n)
}

func TestUnsubscribe(t *testing.T) {
	d := NewDispatcher()
	r := &recorder{}
	d.SubscribeAll(r, TargetSpawned, TargetRemoved)
	d.Unsubscribe(TargetSpawned, r)

	d.Dispatch(Event{Type: TargetSpawned})
	d.Dispatch(Event{Type: TargetRemoved})

	if len(r.got) != 1 {
		t.Fatalf("got %d events, want 1", len(r.got))
	}
	if r.got[0].Type != TargetRemoved {
		t.Errorf("event type = %s, want %s", r.got[0].Type, TargetRemoved)
	}
}

func TestDispatchWithoutListeners(t *testing.T) {
	d := NewDispatcher()
	d.Dispatch(Event{Type: ModeChanged, Data: nil})
}

type selfRemover struct {
	d     *Dispatcher
	calls int
}

func (s *selfRemover) OnEvent(e Event) {
	s.calls++
	s.d.Unsubscribe(e.Type, s)
}

func TestUnsubscribeDuringDispatch(t *testing.T) {
	d := NewDispatcher()
	once := &selfRemover{d: d}
	after := &recorder{}
	d.Subscribe(TargetPopped, once)
	d.Subscribe(TargetPopped, after)

	d.Dispatch(Event{Type: TargetPopped})
	d.Dispatch(Event{Type: TargetPopped})

	if once.calls != 1 {
		t.Fatalf("self-removing listener called %d times, want 1", once.calls)
	}
	if len(after.got) != 2 {
		t.Fatalf("second listener got %d events, want 2", len(after.got))
	}
}
