package component

import (
	"github.com/lixenwraith/river-raid/vmath"
)

// ExplosionComponent is a short-lived hit marker
type ExplosionComponent struct {
	Pos      vmath.Vec3F
	Age      int
	Lifetime int
	Active   bool
}

// Progress returns the elapsed fraction of the lifetime in [0, 1]
func (e *ExplosionComponent) Progress() float64 {
	if e.Lifetime <= 0 {
		return 1
	}
	p := float64(e.Age) / float64(e.Lifetime)
	if p > 1 {
		return 1
	}
	return p
}
