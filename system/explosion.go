package system

import (
	"github.com/lixenwraith/river-raid/engine"
	"github.com/lixenwraith/river-raid/event"
	"github.com/lixenwraith/river-raid/parameter"
)

// ExplosionSystem places hit markers and ages them out
// Markers are cosmetic; they never collide or score
type ExplosionSystem struct {
	world *engine.World
}

func NewExplosionSystem(world *engine.World) engine.System {
	s := &ExplosionSystem{world: world}
	s.Init()
	return s
}

func (s *ExplosionSystem) Init() {}

func (s *ExplosionSystem) Name() string { return "explosion" }

func (s *ExplosionSystem) Priority() int { return parameter.PriorityExplosion }

func (s *ExplosionSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventExplosion,
	}
}

func (s *ExplosionSystem) HandleEvent(ev event.GameEvent) {
	p, ok := ev.Payload.(*event.ExplosionPayload)
	if !ok {
		return
	}
	s.world.SpawnExplosion(p.Pos, parameter.ExplosionLifetimeTicks)
	s.world.PushEvent(event.EventSoundRequest, &event.SoundRequestPayload{Sound: event.SoundExplosion})
}

func (s *ExplosionSystem) Update() {
	for i := range s.world.Explosions {
		e := &s.world.Explosions[i]
		if !e.Active {
			continue
		}
		e.Age++
		if e.Age >= e.Lifetime {
			e.Active = false
		}
	}
}
