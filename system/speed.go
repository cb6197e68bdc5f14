package system

import (
	"github.com/lixenwraith/river-raid/engine"
	"github.com/lixenwraith/river-raid/input"
	"github.com/lixenwraith/river-raid/parameter"
)

// SpeedSystem sets the river scroll speed for the tick from the accelerate control
type SpeedSystem struct {
	world *engine.World
}

func NewSpeedSystem(world *engine.World) engine.System {
	s := &SpeedSystem{world: world}
	s.Init()
	return s
}

func (s *SpeedSystem) Init() {
	s.world.Resources.Scroll.Speed = s.world.Resources.Tuning.Speed.Base
}

func (s *SpeedSystem) Name() string { return "speed" }

func (s *SpeedSystem) Priority() int { return parameter.PrioritySpeed }

func (s *SpeedSystem) Update() {
	res := s.world.Resources
	speed := res.Tuning.Speed.Base
	if res.Input.Held(input.ActionAccelerate) {
		speed += res.Tuning.Speed.Acceleration
	}
	res.Scroll.Speed = speed
}
