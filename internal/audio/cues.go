package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Cues plays short synthesized sounds for game events. Until Initialize
// succeeds every method is a no-op, so a machine without an audio device
// still runs the game.
type Cues struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

// New returns silent cues; call Initialize to open the speaker.
func New() *Cues {
	return &Cues{mixer: &beep.Mixer{}}
}

// Initialize opens the speaker and starts the mixer.
func (c *Cues) Initialize() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return err
	}
	speaker.Play(c.mixer)
	c.initialized = true
	return nil
}

// Close stops playback and releases the speaker.
func (c *Cues) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized {
		return
	}
	speaker.Lock()
	c.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	c.initialized = false
}

// Eat plays a short rising blip.
func (c *Cues) Eat() {
	c.play(beep.Seq(
		newTone(660, 40*time.Millisecond, waveSine, sampleRate),
		newTone(990, 60*time.Millisecond, waveSine, sampleRate),
	))
}

// Crash plays a falling buzz.
func (c *Cues) Crash() {
	c.play(beep.Seq(
		newTone(220, 120*time.Millisecond, waveSquare, sampleRate),
		newTone(110, 240*time.Millisecond, waveSquare, sampleRate),
	))
}

func (c *Cues) play(s beep.Streamer) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized {
		return
	}
	speaker.Lock()
	c.mixer.Add(s)
	speaker.Unlock()
}
