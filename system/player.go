package system

import (
	"fmt"

	"github.com/lixenwraith/river-raid/engine"
	"github.com/lixenwraith/river-raid/event"
	"github.com/lixenwraith/river-raid/input"
	"github.com/lixenwraith/river-raid/parameter"
)

// PlayerSystem applies scale changes and lateral steering to the player
// An exploded player (not visible) does not respond until respawned
type PlayerSystem struct {
	world *engine.World
}

func NewPlayerSystem(world *engine.World) engine.System {
	s := &PlayerSystem{world: world}
	s.Init()
	return s
}

func (s *PlayerSystem) Init() {}

func (s *PlayerSystem) Name() string { return "player" }

func (s *PlayerSystem) Priority() int { return parameter.PriorityPlayer }

func (s *PlayerSystem) Update() {
	res := s.world.Resources
	p := &s.world.Player
	if !p.Active || !p.Visible {
		return
	}
	in := res.Input
	width := res.Tuning.River.Width

	if in.Edge(input.ActionScaleUp) {
		s.rescale(p.Scale*parameter.PlayerScaleUpFactor, width)
	}
	if in.Edge(input.ActionScaleDown) {
		s.rescale(p.Scale*parameter.PlayerScaleDownFactor, width)
	}

	lateral := res.Tuning.Speed.Lateral
	if in.Held(input.ActionMoveLeft) {
		p.MoveLateral(-lateral)
	}
	if in.Held(input.ActionMoveRight) {
		p.MoveLateral(lateral)
	}
	p.EaseTilt()
}

func (s *PlayerSystem) rescale(scale, width float64) {
	p := &s.world.Player
	before := p.Scale
	p.SetScale(scale, width)
	if p.Scale == before {
		return
	}
	s.world.PushEvent(event.EventMessage, &event.MessagePayload{
		Text:     fmt.Sprintf("Scale: %.3f", p.Scale),
		Duration: parameter.MessageDuration,
	})
}
