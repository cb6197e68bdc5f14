package parameter

// Player Spawn
const (
	PlayerSpawnX = 0.0
	PlayerSpawnY = 0.2
	PlayerSpawnZ = 5.0
)

// Player Movement
const (
	// PlayerLateralSpeed is the X displacement per tick while a move key is held
	PlayerLateralSpeed = 0.1

	// PlayerTiltAngle is the bank angle target in radians while moving
	PlayerTiltAngle = 0.3

	// PlayerTiltEase is the fraction of remaining tilt applied per tick
	PlayerTiltEase = 0.1
)

// Player Scale
// Scale 0.1 renders the plane at its reference size
const (
	PlayerInitialScale    = 0.1
	PlayerMinScale        = 0.01
	PlayerMaxScale        = 0.2
	PlayerScaleUpFactor   = 1.2
	PlayerScaleDownFactor = 0.8

	// PlayerBoundaryScaleFactor converts scale to boundary margin: boundary = width/2 - scale*factor
	PlayerBoundaryScaleFactor = 1.5
)

// Player reference visual extents at PlayerInitialScale
const (
	PlayerSizeX = 0.6
	PlayerSizeY = 0.15
	PlayerSizeZ = 0.5
)
