package audio

import (
	"fmt"
	"log"
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/river-raid/parameter"
)

const sampleRate = beep.SampleRate(parameter.AudioSampleRate)

// SoundManager plays synthesised effects through a single speaker mixer
// Play calls before Initialize, or after a failed Initialize, are silently dropped
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64 // Exponent for base 2 gain; 0 is unity
	muted       bool
	initialized bool
	seed        uint64
}

// NewSoundManager creates a manager; volume is a base-2 exponent (0 unity, -1 half)
func NewSoundManager(volume float64) *SoundManager {
	return &SoundManager{
		mixer:  &beep.Mixer{},
		volume: volume,
		seed:   1,
	}
}

// Initialize opens the audio device and starts the mixer
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(parameter.AudioBufferDuration)); err != nil {
		return fmt.Errorf("audio init: %w", err)
	}
	speaker.Play(sm.mixer)
	sm.initialized = true
	log.Printf("audio: initialized at %d Hz", sampleRate)
	return nil
}

// Cleanup stops every sound and releases the device
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	sm.initialized = false
}

// PlayExplosion mixes in one explosion; overlapping explosions stack
func (sm *SoundManager) PlayExplosion() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.muted {
		return
	}
	s := sm.explosionStreamer()
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}

// explosionStreamer returns a bounded, volume-adjusted explosion; each call varies the noise
func (sm *SoundManager) explosionStreamer() beep.Streamer {
	sm.seed++
	return &effects.Volume{
		Streamer: beep.Take(sampleRate.N(parameter.ExplosionSoundDuration), NewExplosionGenerator(sampleRate, sm.seed)),
		Base:     2,
		Volume:   sm.volume,
	}
}

// ToggleMute flips the mute state and returns the new value
func (sm *SoundManager) ToggleMute() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.muted = !sm.muted
	return sm.muted
}

func (sm *SoundManager) IsMuted() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.muted
}

func (sm *SoundManager) IsRunning() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}

// Service lifecycle

func (sm *SoundManager) Name() string { return "audio" }
func (sm *SoundManager) Start() error { return sm.Initialize() }

func (sm *SoundManager) Stop() error {
	sm.Cleanup()
	return nil
}
