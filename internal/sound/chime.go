// Package sound plays short click feedback through the system speaker.
package sound

import (
	"log"
	"math"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"

	"github.com/iburimskiy/hero-field/internal/config"
)

const sampleRate = beep.SampleRate(44100)

// Chime is a click sound. A Chime whose speaker failed to open, or a nil
// Chime, plays nothing.
type Chime struct {
	ready bool
}

// NewChime opens the speaker. Failure is logged and leaves the chime silent.
func NewChime() *Chime {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/20)); err != nil {
		log.Printf("sound: speaker unavailable: %v", err)
		return &Chime{}
	}
	return &Chime{ready: true}
}

// Play starts the blip and returns at once.
func (c *Chime) Play() {
	if c == nil || !c.ready {
		return
	}
	n := sampleRate.N(config.ChimeLength)
	speaker.Play(beep.Take(n, Tone(sampleRate, config.ChimeFrequency, config.ChimeVolume, n)))
}

// Tone is a sine at freq Hz that fades linearly to silence over length
// samples, then stays silent.
func Tone(sr beep.SampleRate, freq, volume float64, length int) beep.Streamer {
	pos := 0
	step := 2 * math.Pi * freq / float64(sr)
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		for i := range samples {
			env := 0.0
			if pos < length {
				env = 1 - float64(pos)/float64(length)
			}
			v := math.Sin(step*float64(pos)) * volume * env
			samples[i][0], samples[i][1] = v, v
			pos++
		}
		return len(samples), true
	})
}
