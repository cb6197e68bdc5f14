package render

import (
	"math"

	"github.com/lixenwraith/river-raid/engine"
	"github.com/lixenwraith/river-raid/parameter"
	"github.com/lixenwraith/river-raid/vmath"
)

// Viewport is the screen rectangle the playfield occupies
type Viewport struct {
	X, Y, W, H int
}

func (v Viewport) contains(col, row int) bool {
	return col >= v.X && col < v.X+v.W && row >= v.Y && row < v.Y+v.H
}

// projection maps world space onto viewport cells
type projection interface {
	// project returns the cell of a world point
	project(p vmath.Vec3F) (col, row int, ok bool)
	// ground returns the world X of the water plane seen through a cell
	ground(col, row int) (x float64, ok bool)
}

// newProjection builds the projection for a camera mode around the player
func newProjection(mode engine.CameraMode, vp Viewport, river parameter.RiverTuning, player vmath.Vec3F) projection {
	switch mode {
	case engine.CameraFollow:
		span := river.HalfWidth() + river.BankWidth/2
		return planar{
			vp:   vp,
			minX: player.X - span,
			maxX: player.X + span,
			minZ: player.Z - parameter.FollowViewAhead,
			maxZ: player.Z + parameter.FollowViewBehind,
		}
	case engine.CameraCockpit:
		return cockpit{
			vp:      vp,
			eye:     vmath.Vec3F{X: player.X, Y: player.Y + parameter.CockpitEyeHeight, Z: player.Z},
			focal:   float64(vp.W) / 2,
			centre:  vp.X + vp.W/2,
			horizon: vp.Y + int(float64(vp.H)*parameter.CockpitHorizonRatio),
		}
	default:
		span := river.HalfWidth() + river.BankWidth
		return planar{
			vp:   vp,
			minX: -span,
			maxX: span,
			minZ: -river.HalfLength(),
			maxZ: river.HalfLength(),
		}
	}
}

// planar is an orthographic view looking down the Y axis, far edge at the top
type planar struct {
	vp         Viewport
	minX, maxX float64
	minZ, maxZ float64
}

func (p planar) project(w vmath.Vec3F) (int, int, bool) {
	if w.X < p.minX || w.X > p.maxX || w.Z < p.minZ || w.Z > p.maxZ {
		return 0, 0, false
	}
	col := p.vp.X + int((w.X-p.minX)/(p.maxX-p.minX)*float64(p.vp.W))
	row := p.vp.Y + int((w.Z-p.minZ)/(p.maxZ-p.minZ)*float64(p.vp.H))
	// Upper edges map onto the last cell
	col = min(col, p.vp.X+p.vp.W-1)
	row = min(row, p.vp.Y+p.vp.H-1)
	return col, row, true
}

func (p planar) ground(col, row int) (float64, bool) {
	if !p.vp.contains(col, row) {
		return 0, false
	}
	t := (float64(col-p.vp.X) + 0.5) / float64(p.vp.W)
	return p.minX + t*(p.maxX-p.minX), true
}

// cockpit is a pinhole perspective from just above the player looking toward -Z
type cockpit struct {
	vp      Viewport
	eye     vmath.Vec3F
	focal   float64 // Cells per world unit at unit depth
	centre  int
	horizon int
}

func (c cockpit) project(w vmath.Vec3F) (int, int, bool) {
	depth := c.eye.Z - w.Z
	if depth < parameter.CockpitNearPlane {
		return 0, 0, false
	}
	col := c.centre + int(math.Round((w.X-c.eye.X)/depth*c.focal))
	row := c.horizon + int(math.Round((c.eye.Y-w.Y)/depth*c.focal/parameter.CellAspect))
	return col, row, c.vp.contains(col, row)
}

func (c cockpit) ground(col, row int) (float64, bool) {
	if !c.vp.contains(col, row) || row <= c.horizon {
		return 0, false
	}
	depth := c.eye.Y * c.focal / parameter.CellAspect / float64(row-c.horizon)
	return c.eye.X + float64(col-c.centre)*depth/c.focal, true
}
