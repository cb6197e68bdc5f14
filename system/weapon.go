package system

import (
	"sync/atomic"

	"github.com/lixenwraith/river-raid/engine"
	"github.com/lixenwraith/river-raid/input"
	"github.com/lixenwraith/river-raid/parameter"
	"github.com/lixenwraith/river-raid/physics"
	"github.com/lixenwraith/river-raid/status"
)

// WeaponSystem launches one projectile per fire press from the pool
type WeaponSystem struct {
	world *engine.World

	statShots *atomic.Int64
}

func NewWeaponSystem(world *engine.World) engine.System {
	s := &WeaponSystem{
		world:     world,
		statShots: world.Resources.Status.Ints.Get(status.MetricShots),
	}
	s.Init()
	return s
}

func (s *WeaponSystem) Init() {
	s.statShots.Store(0)
}

func (s *WeaponSystem) Name() string { return "weapon" }

func (s *WeaponSystem) Priority() int { return parameter.PriorityWeapon }

func (s *WeaponSystem) Update() {
	w := s.world
	res := w.Resources
	// The press is spent even when no shot leaves
	if !res.Input.Edge(input.ActionFire) {
		return
	}
	if !w.Player.Active || !w.Player.Visible {
		return
	}
	proj, ok := w.FreeProjectile()
	if !ok {
		return
	}
	proj.Launch(physics.MuzzlePosition(w.Player.Pos), res.Tuning.Speed.Projectile, physics.KillDistance(res.Tuning.River))
	s.statShots.Add(1)
}
