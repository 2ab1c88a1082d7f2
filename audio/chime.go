package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// Chime is a finite streamer producing an exponentially decaying sine
// ping. It drains after its duration and then reports done.
type Chime struct {
	sr      beep.SampleRate
	freq    float64
	pos     int
	samples int
}

// NewChime creates a ping at freq lasting d
func NewChime(sr beep.SampleRate, freq float64, d time.Duration) *Chime {
	return &Chime{
		sr:      sr,
		freq:    freq,
		samples: sr.N(d),
	}
}

func (c *Chime) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if c.pos >= c.samples {
			return i, i > 0
		}
		t := float64(c.pos) / float64(c.sr)
		progress := float64(c.pos) / float64(c.samples)

		amplitude := 0.25 * math.Exp(-5*progress)
		sample := amplitude * math.Sin(2*math.Pi*c.freq*t)

		samples[i][0] = sample
		samples[i][1] = sample
		c.pos++
	}
	return len(samples), true
}

func (c *Chime) Err() error {
	return nil
}
