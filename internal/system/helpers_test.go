package system

import (
	"go-sphere-pop/internal/event"
)

type fixedViewport struct {
	w, h float64
}

func (v fixedViewport) ViewportSize() (float64, float64) {
	return v.w, v.h
}

// seqRandom отдаёт значения по кругу.
type seqRandom struct {
	values []float64
	i      int
}

func (r *seqRandom) Float64() float64 {
	v := r.values[r.i%len(r.values)]
	r.i++
	return v
}

func (r *seqRandom) Range(min, max float64) float64 {
	return min + (max-min)*r.Float64()
}

type recorder struct {
	events []event.Event
}

func (r *recorder) OnEvent(e event.Event) {
	r.events = append(r.events, e)
}

func (r *recorder) types() []event.EventType {
	out := make([]event.EventType, len(r.events))
	for i, e := range r.events {
		out[i] = e.Type
	}
	return out
}

func almostEqual(a, b float64) bool {
	const eps = 1e-9
	d := a - b
	return d < eps && d > -eps
}
