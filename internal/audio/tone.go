package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

type wave int

const (
	waveSine wave = iota
	waveSquare
)

// peak keeps cues well below clipping when they overlap in the mixer.
const peak = 0.3

// tone is a fixed-length oscillator with a linear fade-out.
type tone struct {
	freq     float64
	phase    float64
	position int
	duration int
	wave     wave
	rate     beep.SampleRate
}

func newTone(freq float64, d time.Duration, w wave, rate beep.SampleRate) *tone {
	return &tone{freq: freq, duration: rate.N(d), wave: w, rate: rate}
}

func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if t.position >= t.duration {
			return i, i > 0
		}

		var val float64
		switch t.wave {
		case waveSquare:
			val = 1
			if t.phase >= 0.5 {
				val = -1
			}
		default:
			val = math.Sin(2 * math.Pi * t.phase)
		}
		fade := 1 - float64(t.position)/float64(t.duration)
		val *= peak * fade

		samples[i][0] = val
		samples[i][1] = val

		t.phase += t.freq / float64(t.rate)
		t.phase -= math.Floor(t.phase)
		t.position++
	}
	return len(samples), true
}

func (t *tone) Err() error { return nil }
