package parameter

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate = 48000

	// AudioBufferDuration determines speaker latency
	AudioBufferDuration = 100 * time.Millisecond
)

// Explosion Sound
const (
	ExplosionSoundDuration = 600 * time.Millisecond

	// ExplosionDecayRate is the exponential envelope rate per second
	ExplosionDecayRate = 6.0

	// ExplosionRumbleHz is the low sine mixed under the noise burst
	ExplosionRumbleHz = 55.0

	// DefaultVolume is the beep effects.Volume exponent (base 2), 0 = unity gain
	DefaultVolume = -0.5
)
