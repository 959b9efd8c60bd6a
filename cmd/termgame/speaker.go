// cmd/termgame/speaker.go
package main

import (
	"log"
	"time"

	"go-sphere-pop/internal/defs"
	"go-sphere-pop/internal/event"
	"go-sphere-pop/internal/sound"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

// popSpeaker проигрывает "плоп" через beep; микшер speaker живёт в своей горутине.
type popSpeaker struct {
	pitch  float64
	millis int
	mixer  *beep.Mixer
}

func newPopSpeaker(variant defs.VariantDefinition) (*popSpeaker, error) {
	if err := speaker.Init(sound.SampleRate, sound.SampleRate.N(time.Second/10)); err != nil {
		return nil, err
	}
	s := &popSpeaker{
		pitch:  variant.PopPitch,
		millis: variant.PopMillis,
		mixer:  &beep.Mixer{},
	}
	speaker.Play(s.mixer)
	log.Printf("audio: speaker at %d Hz", sound.SampleRate)
	return s, nil
}

func (s *popSpeaker) OnEvent(e event.Event) {
	if e.Type != event.TargetPopped {
		return
	}
	speaker.Lock()
	s.mixer.Add(sound.Pop(s.pitch, s.millis))
	speaker.Unlock()
}

func (s *popSpeaker) Close() {
	speaker.Clear()
	speaker.Close()
}
