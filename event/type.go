package event

// EventType represents the type of game event
type EventType int

const (
	// EventNone is the zero value and is never dispatched
	EventNone EventType = iota

	// === Deferred Event ===

	// EventPlayerRespawn returns the player to the spawn point after a hit
	// Trigger: CollisionSystem on a confirmed hit with lives remaining
	// Consumer: CollisionSystem | Payload: *PlayerRespawnPayload
	EventPlayerRespawn

	// EventEnemyReactivate returns a deactivated enemy to play
	// Trigger: CollisionSystem when an enemy is destroyed or rammed
	// Consumer: CollisionSystem | Payload: *EnemyReactivatePayload
	EventEnemyReactivate

	// === Immediate Event ===

	// EventExplosion marks a hit position
	// Trigger: CollisionSystem
	// Consumer: ExplosionSystem | Payload: *ExplosionPayload
	EventExplosion

	// EventSoundRequest requests audio playback
	// Trigger: ExplosionSystem
	// Consumer: AudioSystem | Payload: *SoundRequestPayload
	EventSoundRequest

	// EventMessage shows a transient UI message
	// Trigger: PlayerSystem, CameraSystem, ScoreSystem
	// Consumer: NotifySystem | Payload: *MessagePayload
	EventMessage

	// EventGameOver signals the terminal transition, emitted once per session
	// Trigger: CollisionSystem when the last life is lost
	// Consumer: ScoreSystem | Payload: nil
	EventGameOver
)

// GameEvent is a queued mutation or notification
// Epoch binds the event to the session run that produced it; Due is the tick it becomes deliverable
type GameEvent struct {
	Type    EventType
	Payload any
	Epoch   uint64
	Due     int64
}
