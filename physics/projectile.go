package physics

import (
	"github.com/lixenwraith/river-raid/component"
	"github.com/lixenwraith/river-raid/parameter"
	"github.com/lixenwraith/river-raid/vmath"
)

// KillDistance is the Z beyond which a projectile leaves play
func KillDistance(river parameter.RiverTuning) float64 {
	return -river.HalfLength() - parameter.ProjectileKillMargin
}

// MuzzlePosition returns the projectile origin for a player position
func MuzzlePosition(player vmath.Vec3F) vmath.Vec3F {
	return vmath.V3FAdd(player, vmath.Vec3F{Z: -parameter.ProjectileMuzzleOffset})
}

// AdvanceProjectile moves p forward and deactivates it past its kill distance
// Returns false once the projectile is out of play
func AdvanceProjectile(p *component.ProjectileComponent) bool {
	if !p.Active {
		return false
	}
	p.Pos.Z -= p.Speed
	if p.Pos.Z < p.KillZ {
		p.Deactivate()
		return false
	}
	return true
}
