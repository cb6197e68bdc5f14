package component

import (
	"github.com/lixenwraith/river-raid/parameter"
	"github.com/lixenwraith/river-raid/vmath"
)

// ProjectileComponent is a player shot travelling toward -Z
type ProjectileComponent struct {
	Body

	Speed float64 // -Z displacement per tick
	KillZ float64 // Deactivated once Z drops below this
}

// NewProjectile returns an inactive projectile slot
func NewProjectile() ProjectileComponent {
	return ProjectileComponent{
		Body: Body{
			Kind: KindProjectile,
			Size: vmath.Vec3F{X: parameter.ProjectileSizeX, Y: parameter.ProjectileSizeY, Z: parameter.ProjectileSizeZ},
		},
	}
}

// Launch activates the slot at origin
func (p *ProjectileComponent) Launch(origin vmath.Vec3F, speed, killZ float64) {
	p.Pos = origin
	p.Speed = speed
	p.KillZ = killZ
	p.Active = true
	p.Visible = true
}

// Deactivate returns the slot to the pool
func (p *ProjectileComponent) Deactivate() {
	p.Active = false
	p.Visible = false
}
