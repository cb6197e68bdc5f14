package parameter

import "time"

// Game Loop & Engine Timing
const (
	// FrameUpdateInterval is the host frame interval (~60 FPS), one simulation tick per frame
	FrameUpdateInterval = 16 * time.Millisecond

	// EventLoopIterations bounds immediate event dispatch rounds per tick
	// Handlers may push follow-up events; anything left is carried to the next tick
	EventLoopIterations = 16
)

// Event Queue Limits
const (
	// EventQueueSize is the fixed capacity of the pending event buffer
	EventQueueSize = 256
)

// Entity Pool Capacities
const (
	EnemyPoolSize      = 5
	SceneryPoolSize    = 15
	ProjectilePoolSize = 32
	ExplosionPoolSize  = 16
)
