package parameter

import "time"

// RiverTuning is the shared read-only river geometry
type RiverTuning struct {
	Width          float64 `yaml:"width"`
	Length         float64 `yaml:"length"`
	BankWidth      float64 `yaml:"bank_width"`
	TrailingMargin float64 `yaml:"trailing_margin"`
	SpawnJitter    float64 `yaml:"spawn_jitter"`
}

// HalfLength returns the distance from the river centre to either edge along the scroll axis
func (r RiverTuning) HalfLength() float64 { return r.Length / 2 }

// HalfWidth returns the distance from the river centre line to either bank
func (r RiverTuning) HalfWidth() float64 { return r.Width / 2 }

// SpeedTuning holds per-tick displacements
type SpeedTuning struct {
	Base         float64 `yaml:"base"`
	Acceleration float64 `yaml:"acceleration"`
	Lateral      float64 `yaml:"lateral"`
	Projectile   float64 `yaml:"projectile"`
}

// CollisionTuning holds box factors and distance thresholds
type CollisionTuning struct {
	PlayerBoxFactor     float64 `yaml:"player_box_factor"`
	EnemyBoxFactor      float64 `yaml:"enemy_box_factor"`
	ProjectileBoxFactor float64 `yaml:"projectile_box_factor"`
	PlayerEnemyDistance float64 `yaml:"player_enemy_distance"`
	BoundaryMargin      float64 `yaml:"boundary_margin"`
}

// PoolTuning holds fixed entity pool capacities
type PoolTuning struct {
	Enemies     int `yaml:"enemies"`
	Scenery     int `yaml:"scenery"`
	Projectiles int `yaml:"projectiles"`
	Explosions  int `yaml:"explosions"`
}

// Tuning is the complete gameplay parameter set of a session
// Defaults come from the package constants; config files override individual fields
type Tuning struct {
	River     RiverTuning     `yaml:"river"`
	Speed     SpeedTuning     `yaml:"speed"`
	Collision CollisionTuning `yaml:"collision"`
	Pools     PoolTuning      `yaml:"pools"`

	MaxLives        int           `yaml:"max_lives"`
	ScorePerKill    int           `yaml:"score_per_kill"`
	RespawnDelay    time.Duration `yaml:"respawn_delay"`
	ReactivateDelay time.Duration `yaml:"reactivate_delay"`
	TickInterval    time.Duration `yaml:"tick_interval"`
}

// DefaultTuning returns the reference gameplay parameters
func DefaultTuning() Tuning {
	return Tuning{
		River: RiverTuning{
			Width:          RiverWidth,
			Length:         RiverLength,
			BankWidth:      RiverBankWidth,
			TrailingMargin: TrailingMargin,
			SpawnJitter:    SpawnJitter,
		},
		Speed: SpeedTuning{
			Base:         BaseScrollSpeed,
			Acceleration: AccelerationSpeed,
			Lateral:      PlayerLateralSpeed,
			Projectile:   ProjectileSpeed,
		},
		Collision: CollisionTuning{
			PlayerBoxFactor:     PlayerBoxFactor,
			EnemyBoxFactor:      EnemyBoxFactor,
			ProjectileBoxFactor: ProjectileBoxFactor,
			PlayerEnemyDistance: PlayerEnemyDistance,
			BoundaryMargin:      BoundaryMargin,
		},
		Pools: PoolTuning{
			Enemies:     EnemyPoolSize,
			Scenery:     SceneryPoolSize,
			Projectiles: ProjectilePoolSize,
			Explosions:  ExplosionPoolSize,
		},
		MaxLives:        MaxLives,
		ScorePerKill:    ScorePerKill,
		RespawnDelay:    RespawnDelay,
		ReactivateDelay: ReactivateDelay,
		TickInterval:    FrameUpdateInterval,
	}
}

// TicksFor converts a delay to a whole number of ticks, rounding up
// Non-positive delays resolve to the next tick
func (t Tuning) TicksFor(d time.Duration) int64 {
	if t.TickInterval <= 0 || d <= 0 {
		return 1
	}
	n := int64((d + t.TickInterval - 1) / t.TickInterval)
	if n < 1 {
		n = 1
	}
	return n
}
