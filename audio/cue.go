package audio

import (
	"math"
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/tile-track/parameter"
)

// Cue plays short tones when the viewer regenerates.
// Every method is safe to call when the speaker never came up.
type Cue struct {
	mu          sync.Mutex
	cfg         *AudioConfig
	sampleRate  beep.SampleRate
	initialized bool
}

// NewCue creates a cue player; nil cfg selects DefaultAudioConfig
func NewCue(cfg *AudioConfig) *Cue {
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}
	sr := cfg.SampleRate
	if sr <= 0 {
		sr = parameter.AudioSampleRate
	}
	return &Cue{cfg: cfg, sampleRate: beep.SampleRate(sr)}
}

// Initialize opens the speaker. A disabled config leaves the cue silent and returns nil.
func (c *Cue) Initialize() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.initialized || !c.cfg.Enabled {
		return nil
	}
	if err := speaker.Init(c.sampleRate, c.sampleRate.N(parameter.AudioBufferDuration)); err != nil {
		return err
	}
	c.initialized = true
	return nil
}

// Active reports whether tones reach the speaker
func (c *Cue) Active() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.initialized
}

// PlaySuccess plays the regeneration tone
func (c *Cue) PlaySuccess() { c.play(parameter.CueFrequency) }

// PlayFailure plays the low tone for an ungenerable request
func (c *Cue) PlayFailure() { c.play(parameter.CueFailFrequency) }

func (c *Cue) play(freq float64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized {
		return
	}
	s, err := c.tone(freq)
	if err != nil {
		return
	}
	speaker.Play(s)
}

// tone builds a fixed-length sine at freq scaled by the master volume
func (c *Cue) tone(freq float64) (beep.Streamer, error) {
	sine, err := generators.SineTone(c.sampleRate, freq)
	if err != nil {
		return nil, err
	}
	s := beep.Take(c.sampleRate.N(parameter.CueDuration), sine)

	vol := clampVolume(c.cfg.MasterVolume)
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}, nil
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}, nil
}

// Cleanup stops playback and releases the speaker
func (c *Cue) Cleanup() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	c.initialized = false
}
