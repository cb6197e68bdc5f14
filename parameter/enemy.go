package parameter

// Enemy warship visual extents, hull perpendicular to the scroll axis
const (
	EnemySizeX = 2.0
	EnemySizeY = 0.3
	EnemySizeZ = 0.8
)

// Projectile
const (
	ProjectileSizeX = 0.1
	ProjectileSizeY = 0.1
	ProjectileSizeZ = 0.3

	// ProjectileSpeed is the -Z displacement per tick
	ProjectileSpeed = 0.5

	// ProjectileMuzzleOffset is the -Z offset from the player at spawn
	ProjectileMuzzleOffset = 1.0

	// ProjectileKillMargin is the distance past -riverLength/2 at which projectiles expire
	ProjectileKillMargin = 5.0
)

// Scenery visual extents per variant (tree, house, building)
const (
	TreeSize     = 0.8
	HouseSize    = 0.8
	BuildingSize = 1.5
)

// Explosion marker
const (
	// ExplosionLifetimeTicks is the marker duration (~1s at 60 FPS)
	ExplosionLifetimeTicks = 60
)
