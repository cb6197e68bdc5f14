package parameter

// River Geometry (world units)
// Scroll axis is +Z toward the player; -Z is the far edge
const (
	RiverWidth     = 10.0
	RiverLength    = 50.0
	RiverBankWidth = 5.0

	// TrailingMargin is the distance past riverLength/2 at which entities are recycled
	TrailingMargin = 5.0

	// SpawnJitter is the maximum extra distance beyond the far edge for respawned entities
	SpawnJitter = 10.0

	// SceneryBankJitter is the maximum distance from the water line for bank scenery
	SceneryBankJitter = 3.0

	// SceneryHeight is the Y placement of bank scenery
	SceneryHeight = 0.3

	// EnemyHeight is the Y placement of enemies, partially submerged
	EnemyHeight = 0.05
)

// Scroll Speed (world units per tick)
const (
	BaseScrollSpeed   = 0.2
	AccelerationSpeed = 0.2
)
