package parameter

import "time"

// Regeneration cue
const (
	AudioSampleRate = 44100

	// AudioBufferDuration is the speaker buffer length
	AudioBufferDuration = 100 * time.Millisecond

	// CueDuration is the length of the regenerate tone
	CueDuration = 50 * time.Millisecond

	// CueFrequency is the pitch of a successful regeneration
	CueFrequency = 880.0

	// CueFailFrequency is the pitch played when generation fails
	CueFailFrequency = 220.0
)
