package audio

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(44100)
	blipLength = 50 * time.Millisecond

	pauseFreq  = 660.0
	resumeFreq = 880.0
)

// Cue plays short sine blips for pause/resume feedback. Initialization is
// optional: when the speaker is unavailable the cue stays silent and every
// method is a no-op, so the simulation runs without sound.
type Cue struct {
	ready bool
}

// NewCue initializes the speaker. The returned error is informational; the
// Cue is usable (as a silent no-op) either way.
func NewCue() (*Cue, error) {
	err := speaker.Init(sampleRate, sampleRate.N(time.Second/10))
	return &Cue{ready: err == nil}, err
}

// Pause plays the low pause blip
func (c *Cue) Pause() {
	c.blip(pauseFreq)
}

// Resume plays the high resume blip
func (c *Cue) Resume() {
	c.blip(resumeFreq)
}

func (c *Cue) blip(freq float64) {
	if !c.ready {
		return
	}
	sine, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		return
	}
	speaker.Play(beep.Take(sampleRate.N(blipLength), sine))
}

// Close shuts the speaker down
func (c *Cue) Close() {
	if c.ready {
		speaker.Close()
	}
}
