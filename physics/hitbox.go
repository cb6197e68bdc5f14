package physics

import (
	"github.com/lixenwraith/river-raid/component"
	"github.com/lixenwraith/river-raid/parameter"
	"github.com/lixenwraith/river-raid/vmath"
)

// PlayerHitBox is the player's visual box shrunk by the configured factor
func PlayerHitBox(p *component.PlayerComponent, c parameter.CollisionTuning) vmath.Box3 {
	return p.Box().Scaled(c.PlayerBoxFactor)
}

// EnemyHitBox is the enemy's visual box shrunk so grazing shots miss
func EnemyHitBox(e *component.EnemyComponent, c parameter.CollisionTuning) vmath.Box3 {
	return e.Box().Scaled(c.EnemyBoxFactor)
}

// ProjectileHitBox is the projectile's visual box enlarged so thin shots still connect
func ProjectileHitBox(p *component.ProjectileComponent, c parameter.CollisionTuning) vmath.Box3 {
	return p.Box().Scaled(c.ProjectileBoxFactor)
}

// OutOfRiver reports whether x lies beyond the navigable channel
func OutOfRiver(x float64, river parameter.RiverTuning, c parameter.CollisionTuning) bool {
	limit := river.HalfWidth() - c.BoundaryMargin
	return x > limit || x < -limit
}
