package physics

import (
	"github.com/lixenwraith/river-raid/component"
	"github.com/lixenwraith/river-raid/parameter"
	"github.com/lixenwraith/river-raid/vmath"
)

// Advance scrolls body toward the player by delta along +Z
// A body past the trailing edge is respawned in place ahead of the player; returns true when recycled
func Advance(body *component.Body, delta float64, river parameter.RiverTuning, rng *vmath.FastRand) bool {
	body.Pos.Z += delta
	if body.Pos.Z > river.HalfLength()+river.TrailingMargin {
		Respawn(body, river, rng)
		return true
	}
	return false
}

// Respawn resets body to a fresh position upstream of the visible river
// Dispatch is by kind; players and projectiles are not recycled and are left untouched
func Respawn(body *component.Body, river parameter.RiverTuning, rng *vmath.FastRand) {
	switch body.Kind {
	case component.KindEnemy:
		body.Pos.X = EnemyLateral(body, river, rng)
		body.Pos.Y = parameter.EnemyHeight
	case component.KindScenery:
		body.Pos.X = SceneryLateral(body.Side, river, rng)
		body.Pos.Y = parameter.SceneryHeight
	default:
		return
	}
	body.Pos.Z = -river.HalfLength() - rng.Range(0, river.SpawnJitter)
	body.Active = true
	body.Visible = true
}

// Scatter places a recyclable body anywhere along the river, used to populate a fresh session
func Scatter(body *component.Body, river parameter.RiverTuning, rng *vmath.FastRand) {
	Respawn(body, river, rng)
	if body.Kind == component.KindScenery {
		body.Pos.Z = rng.Range(-river.HalfLength(), river.HalfLength())
	}
}

// EnemyLateral picks an X keeping the whole hull inside the river
func EnemyLateral(body *component.Body, river parameter.RiverTuning, rng *vmath.FastRand) float64 {
	maxLateral := river.HalfWidth() - body.HalfWidth()
	if maxLateral <= 0 {
		return 0
	}
	return rng.Range(-maxLateral, maxLateral)
}

// SceneryLateral picks an X on the requested bank
func SceneryLateral(side component.Side, river parameter.RiverTuning, rng *vmath.FastRand) float64 {
	offset := river.HalfWidth() + rng.Range(0, parameter.SceneryBankJitter)
	if side == component.SideLeft {
		return -offset
	}
	return offset
}
