// Package sound synthesises the game's sound effects with beep.
package sound

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// SampleRate is shared by both frontends.
const SampleRate = beep.SampleRate(44100)

// PopGenerator generates a short "plop": a sine whose pitch falls by an octave
// under an exponential decay envelope. It is a finite streamer.
type PopGenerator struct {
	sr      beep.SampleRate
	pitch   float64
	pos     int
	samples int
	phase   float64
}

// NewPopGenerator creates a pop of the given start pitch (Hz) and duration.
func NewPopGenerator(sr beep.SampleRate, pitch float64, duration time.Duration) *PopGenerator {
	return &PopGenerator{
		sr:      sr,
		pitch:   pitch,
		samples: sr.N(duration),
	}
}

func (g *PopGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	if g.pos >= g.samples {
		return 0, false
	}
	for i := range samples {
		if g.pos >= g.samples {
			return i, true
		}
		progress := float64(g.pos) / float64(g.samples)

		// Частота падает от pitch до pitch/2
		freq := g.pitch * math.Pow(0.5, progress)
		g.phase += 2 * math.Pi * freq / float64(g.sr)

		// Короткая атака, чтобы не щёлкало, затем экспоненциальное затухание
		attack := math.Min(progress/0.05, 1.0)
		envelope := attack * math.Exp(-6*progress)
		sample := 0.5 * envelope * math.Sin(g.phase)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *PopGenerator) Err() error {
	return nil
}

// Len returns the total number of samples in the pop.
func (g *PopGenerator) Len() int {
	return g.samples
}
