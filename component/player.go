package component

import (
	"github.com/lixenwraith/river-raid/parameter"
	"github.com/lixenwraith/river-raid/vmath"
)

// PlayerComponent is the plane controlled by the player
type PlayerComponent struct {
	Body

	Boundary   float64 // Max |X| reachable by lateral movement
	Scale      float64
	Tilt       float64 // Current bank angle, radians
	TargetTilt float64

	// Colliding debounces hit handling until the respawn clears it
	Colliding bool
	// Episode increments on every confirmed hit; deferred respawns carry it
	Episode uint64
}

// NewPlayer returns a player at the spawn point for a river of the given width
func NewPlayer(riverWidth float64) PlayerComponent {
	p := PlayerComponent{
		Body: Body{
			Kind:    KindPlayer,
			Active:  true,
			Visible: true,
		},
		Scale: parameter.PlayerInitialScale,
	}
	p.Pos = SpawnPoint()
	p.Size = PlayerSize(p.Scale)
	p.Boundary = PlayerBoundary(riverWidth, p.Scale)
	return p
}

// SpawnPoint is where the player starts and respawns
func SpawnPoint() vmath.Vec3F {
	return vmath.Vec3F{X: parameter.PlayerSpawnX, Y: parameter.PlayerSpawnY, Z: parameter.PlayerSpawnZ}
}

// PlayerBoundary derives the lateral movement limit from river width and model scale
func PlayerBoundary(riverWidth, scale float64) float64 {
	return riverWidth/2 - scale*parameter.PlayerBoundaryScaleFactor
}

// PlayerSize returns the visual extents for a model scale
func PlayerSize(scale float64) vmath.Vec3F {
	f := scale / parameter.PlayerInitialScale
	return vmath.Vec3F{
		X: parameter.PlayerSizeX * f,
		Y: parameter.PlayerSizeY * f,
		Z: parameter.PlayerSizeZ * f,
	}
}

// SetScale applies a new model scale, clamped, and recomputes size and boundary
func (p *PlayerComponent) SetScale(scale, riverWidth float64) {
	p.Scale = vmath.Clamp(scale, parameter.PlayerMinScale, parameter.PlayerMaxScale)
	p.Size = PlayerSize(p.Scale)
	p.Boundary = PlayerBoundary(riverWidth, p.Scale)
	p.Pos.X = vmath.Clamp(p.Pos.X, -p.Boundary, p.Boundary)
}

// MoveLateral shifts the player by dx, clamped to the boundary, and sets the bank target
func (p *PlayerComponent) MoveLateral(dx float64) {
	p.Pos.X = vmath.Clamp(p.Pos.X+dx, -p.Boundary, p.Boundary)
	switch {
	case dx < 0:
		p.TargetTilt = -parameter.PlayerTiltAngle
	case dx > 0:
		p.TargetTilt = parameter.PlayerTiltAngle
	}
}

// EaseTilt moves the bank angle toward its target and recentres the target
// A movement in the same tick sets the target again before the next ease
func (p *PlayerComponent) EaseTilt() {
	p.Tilt = vmath.Lerp(p.Tilt, p.TargetTilt, parameter.PlayerTiltEase)
	p.TargetTilt = 0
}

// Respawn returns the player to the spawn point, visible, with the debounce cleared
func (p *PlayerComponent) Respawn() {
	p.Pos = SpawnPoint()
	p.Pos.X = vmath.Clamp(p.Pos.X, -p.Boundary, p.Boundary)
	p.Visible = true
	p.Colliding = false
	p.Tilt = 0
	p.TargetTilt = 0
}
