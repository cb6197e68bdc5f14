package component

import (
	"github.com/lixenwraith/river-raid/vmath"
)

// Kind tags the entity variant; movement and respawn rules dispatch on it
type Kind uint8

const (
	KindPlayer Kind = iota
	KindEnemy
	KindProjectile
	KindScenery
)

func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindEnemy:
		return "enemy"
	case KindProjectile:
		return "projectile"
	case KindScenery:
		return "scenery"
	default:
		return "unknown"
	}
}

// Side selects the river bank for scenery
type Side uint8

const (
	SideNone Side = iota
	SideLeft
	SideRight
)

// Body is the state shared by every pooled entity
type Body struct {
	Kind    Kind
	Side    Side
	Pos     vmath.Vec3F
	Size    vmath.Vec3F // Visual full extents
	Active  bool
	Visible bool
}

// Box returns the visual bounding box in world space
func (b *Body) Box() vmath.Box3 {
	return vmath.BoxFromCenterSize(b.Pos, b.Size)
}

// HalfWidth returns half of the lateral extent
func (b *Body) HalfWidth() float64 {
	return b.Size.X / 2
}

// Collidable reports whether the body may take part in collision checks
func (b *Body) Collidable() bool {
	return b.Active && b.Visible
}
