package assets

import (
	"go-sphere-pop/internal/defs"
	"go-sphere-pop/internal/event"
	"go-sphere-pop/internal/sound"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

const popVolume = 0.6

// SoundBank проигрывает звуки эффектов через аудиоконтекст ebiten.
// PCM готовится один раз, каждый "плоп" — отдельный плеер.
type SoundBank struct {
	context *audio.Context
	pop     []byte
}

// NewSoundBank создаёт банк звуков для варианта. Контекст в процессе может быть только один.
func NewSoundBank(context *audio.Context, variant defs.VariantDefinition) *SoundBank {
	return &SoundBank{
		context: context,
		pop:     sound.PopPCM(variant.PopPitch, variant.PopMillis),
	}
}

// NewContext создаёт аудиоконтекст с частотой, в которой синтезируются звуки.
func NewContext() *audio.Context {
	return audio.NewContext(int(sound.SampleRate))
}

func (b *SoundBank) OnEvent(e event.Event) {
	if e.Type == event.TargetPopped {
		b.PlayPop()
	}
}

// PlayPop запускает звук и сразу возвращается.
func (b *SoundBank) PlayPop() {
	player := b.context.NewPlayerFromBytes(b.pop)
	player.SetVolume(popVolume)
	player.Play()
}
