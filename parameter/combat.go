package parameter

import "time"

// Collision Tuning
// Box factors scale visual extents about the centre before intersection tests
const (
	// PlayerBoxFactor shrinks the player's irregular silhouette
	PlayerBoxFactor = 0.6

	// EnemyBoxFactor shrinks enemy hulls
	EnemyBoxFactor = 0.8

	// ProjectileBoxFactor enlarges projectiles so near misses count
	ProjectileBoxFactor = 1.2

	// PlayerEnemyDistance is the planar (XZ) centre distance that counts as a ram
	PlayerEnemyDistance = 0.5

	// BoundaryMargin is the distance inside the bank at which the player crashes
	BoundaryMargin = 0.8
)

// Hit Recovery
const (
	// RespawnDelay is the time between a player hit and the respawn at the spawn point
	RespawnDelay = 1 * time.Second

	// ReactivateDelay is the cooldown before a destroyed enemy re-enters the river
	ReactivateDelay = 2 * time.Second
)

// Scoring & Lives
const (
	ScorePerKill = 100
	MaxLives     = 3
)
