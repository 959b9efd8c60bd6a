// internal/sound/pcm.go
package sound

import (
	"encoding/binary"
	"math"
	"time"

	"github.com/gopxl/beep"
)

const bufferSize = 512

// RenderPCM drains a streamer into signed 16-bit little-endian stereo PCM,
// the layout ebiten's audio context plays.
func RenderPCM(s beep.Streamer) []byte {
	var out []byte
	buf := make([][2]float64, bufferSize)
	for {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			out = binary.LittleEndian.AppendUint16(out, uint16(toInt16(buf[i][0])))
			out = binary.LittleEndian.AppendUint16(out, uint16(toInt16(buf[i][1])))
		}
		if !ok {
			return out
		}
	}
}

func toInt16(v float64) int16 {
	v = math.Max(-1, math.Min(1, v))
	return int16(v * math.MaxInt16)
}

// PopPCM renders a pop sound for the given pitch and length in milliseconds.
func PopPCM(pitch float64, millis int) []byte {
	return RenderPCM(NewPopGenerator(SampleRate, pitch, time.Duration(millis)*time.Millisecond))
}

// Pop returns a fresh pop streamer, suitable for a beep mixer or speaker.
func Pop(pitch float64, millis int) beep.Streamer {
	return NewPopGenerator(SampleRate, pitch, time.Duration(millis)*time.Millisecond)
}
