package component

import (
	"github.com/lixenwraith/river-raid/parameter"
	"github.com/lixenwraith/river-raid/vmath"
)

// EnemyState is the pooled enemy lifecycle
type EnemyState uint8

const (
	EnemyMoving EnemyState = iota
	EnemyDeactivated // Pending respawn after cooldown
)

// EnemyComponent is a warship drifting down the river
type EnemyComponent struct {
	Body

	State EnemyState
	// Generation increments on every deactivation; a reactivation carrying an older value is stale
	Generation uint32
}

// NewEnemy returns an inactive enemy slot; the pool respawns it before play
func NewEnemy() EnemyComponent {
	return EnemyComponent{
		Body: Body{
			Kind: KindEnemy,
			Size: vmath.Vec3F{X: parameter.EnemySizeX, Y: parameter.EnemySizeY, Z: parameter.EnemySizeZ},
		},
	}
}

// Deactivate removes the enemy from play until reactivated
func (e *EnemyComponent) Deactivate() {
	e.Active = false
	e.Visible = false
	e.State = EnemyDeactivated
	e.Generation++
}

// MarkMoving records that a respawn put the enemy back in play
func (e *EnemyComponent) MarkMoving() {
	e.State = EnemyMoving
}
