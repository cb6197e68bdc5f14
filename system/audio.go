package system

import (
	"github.com/lixenwraith/river-raid/engine"
	"github.com/lixenwraith/river-raid/event"
	"github.com/lixenwraith/river-raid/parameter"
)

// AudioSystem forwards sound requests to the audio collaborator
type AudioSystem struct {
	world *engine.World
}

func NewAudioSystem(world *engine.World) engine.System {
	s := &AudioSystem{world: world}
	s.Init()
	return s
}

func (s *AudioSystem) Init() {}

func (s *AudioSystem) Name() string { return "audio" }

func (s *AudioSystem) Priority() int { return parameter.PriorityAudio }

func (s *AudioSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventSoundRequest,
	}
}

func (s *AudioSystem) HandleEvent(ev event.GameEvent) {
	p, ok := ev.Payload.(*event.SoundRequestPayload)
	if !ok {
		return
	}
	switch p.Sound {
	case event.SoundExplosion:
		s.world.Resources.Audio.PlayExplosion()
	}
}

func (s *AudioSystem) Update() {}
