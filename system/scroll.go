package system

import (
	"github.com/lixenwraith/river-raid/engine"
	"github.com/lixenwraith/river-raid/parameter"
	"github.com/lixenwraith/river-raid/physics"
)

// ScrollSystem moves scenery and active enemies downstream, recycling what passes the player
type ScrollSystem struct {
	world *engine.World
}

func NewScrollSystem(world *engine.World) engine.System {
	s := &ScrollSystem{world: world}
	s.Init()
	return s
}

func (s *ScrollSystem) Init() {}

func (s *ScrollSystem) Name() string { return "scroll" }

func (s *ScrollSystem) Priority() int { return parameter.PriorityScroll }

func (s *ScrollSystem) Update() {
	w := s.world
	res := w.Resources
	speed := res.Scroll.Speed
	river := res.Tuning.River

	for i := range w.Scenery {
		physics.Advance(&w.Scenery[i].Body, speed, river, res.RNG)
	}

	// Deactivated enemies wait for their reactivation event
	for i := range w.Enemies {
		e := &w.Enemies[i]
		if !e.Active {
			continue
		}
		if physics.Advance(&e.Body, speed, river, res.RNG) {
			e.MarkMoving()
		}
	}
}
