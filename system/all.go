package system

import (
	"github.com/lixenwraith/river-raid/engine"
)

// All returns the factories of every game system; the world orders them by priority
func All() []engine.SystemFactory {
	return []engine.SystemFactory{
		NewSpeedSystem,
		NewPlayerSystem,
		NewScrollSystem,
		NewWeaponSystem,
		NewProjectileSystem,
		NewExplosionSystem,
		NewCollisionSystem,
		NewCameraSystem,
		NewScoreSystem,
		NewAudioSystem,
		NewNotifySystem,
	}
}
