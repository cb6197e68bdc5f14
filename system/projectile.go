package system

import (
	"github.com/lixenwraith/river-raid/engine"
	"github.com/lixenwraith/river-raid/parameter"
	"github.com/lixenwraith/river-raid/physics"
)

// ProjectileSystem advances shots and returns expired ones to the pool
type ProjectileSystem struct {
	world *engine.World
}

func NewProjectileSystem(world *engine.World) engine.System {
	s := &ProjectileSystem{world: world}
	s.Init()
	return s
}

func (s *ProjectileSystem) Init() {}

func (s *ProjectileSystem) Name() string { return "projectile" }

func (s *ProjectileSystem) Priority() int { return parameter.PriorityProjectile }

func (s *ProjectileSystem) Update() {
	for i := range s.world.Projectiles {
		physics.AdvanceProjectile(&s.world.Projectiles[i])
	}
}
