// Package metrics exports session counters to prometheus.
package metrics

import (
	"go-sphere-pop/internal/component"
	"go-sphere-pop/internal/event"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "spherepop"

// Collector counts game events. It is an event.Listener and never writes back into game state.
type Collector struct {
	Registry    *prometheus.Registry
	Spawned     prometheus.Counter
	Popped      prometheus.Counter
	Clicks      *prometheus.CounterVec
	Ticks       prometheus.Counter
	LiveTargets prometheus.Gauge
	Paused      prometheus.Gauge
}

// NewCollector creates the collectors and registers them in a private registry.
func NewCollector() *Collector {
	c := &Collector{
		Registry: prometheus.NewRegistry(),
		Spawned: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "targets_spawned_total",
			Help:      "Targets created by the spawner.",
		}),
		Popped: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "targets_popped_total",
			Help:      "Targets removed by a click.",
		}),
		Clicks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "clicks_total",
			Help:      "Clicks in play mode by result.",
		}, []string{"result"}),
		Ticks: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ticks_total",
			Help:      "Simulation ticks advanced in play mode.",
		}),
		LiveTargets: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "live_targets",
			Help:      "Targets currently on screen.",
		}),
		Paused: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "paused",
			Help:      "1 while the game is paused.",
		}),
	}
	c.Registry.MustRegister(c.Spawned, c.Popped, c.Clicks, c.Ticks, c.LiveTargets, c.Paused)
	return c
}

// Attach subscribes the collector to every event it counts.
func (c *Collector) Attach(d *event.Dispatcher) {
	d.SubscribeAll(c,
		event.TargetSpawned,
		event.TargetRemoved,
		event.TargetPopped,
		event.ClickRegistered,
		event.TickAdvanced,
		event.ModeChanged,
	)
}

func (c *Collector) OnEvent(e event.Event) {
	switch e.Type {
	case event.TargetSpawned:
		c.Spawned.Inc()
		c.LiveTargets.Inc()
	case event.TargetRemoved:
		c.LiveTargets.Dec()
	case event.TargetPopped:
		c.Popped.Inc()
	case event.ClickRegistered:
		if data, ok := e.Data.(event.ClickData); ok && data.Hit {
			c.Clicks.WithLabelValues("hit").Inc()
		} else {
			c.Clicks.WithLabelValues("miss").Inc()
		}
	case event.TickAdvanced:
		c.Ticks.Inc()
	case event.ModeChanged:
		if data, ok := e.Data.(event.ModeData); ok && data.Mode == component.PauseMode {
			c.Paused.Set(1)
		} else {
			c.Paused.Set(0)
		}
	}
}
