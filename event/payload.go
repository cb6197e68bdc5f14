package event

import (
	"time"

	"github.com/lixenwraith/river-raid/vmath"
)

// PlayerRespawnPayload carries the hit episode that scheduled the respawn
type PlayerRespawnPayload struct {
	Episode uint64
}

// EnemyReactivatePayload identifies the pool slot and the deactivation it answers
type EnemyReactivatePayload struct {
	Slot       int
	Generation uint32
}

// ExplosionPayload is the world position of a hit
type ExplosionPayload struct {
	Pos vmath.Vec3F
}

// SoundType selects a synthesized effect
type SoundType int

const (
	SoundExplosion SoundType = iota
)

// SoundRequestPayload contains the sound to play
type SoundRequestPayload struct {
	Sound SoundType
}

// MessagePayload is a transient UI message
type MessagePayload struct {
	Text     string
	Duration time.Duration
}
