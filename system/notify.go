package system

import (
	"github.com/lixenwraith/river-raid/engine"
	"github.com/lixenwraith/river-raid/event"
	"github.com/lixenwraith/river-raid/parameter"
)

// NotifySystem delivers transient messages to the UI
type NotifySystem struct {
	world *engine.World
}

func NewNotifySystem(world *engine.World) engine.System {
	s := &NotifySystem{world: world}
	s.Init()
	return s
}

func (s *NotifySystem) Init() {}

func (s *NotifySystem) Name() string { return "notify" }

func (s *NotifySystem) Priority() int { return parameter.PriorityNotify }

func (s *NotifySystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventMessage,
	}
}

func (s *NotifySystem) HandleEvent(ev event.GameEvent) {
	if p, ok := ev.Payload.(*event.MessagePayload); ok {
		s.world.Resources.UI.Message(p.Text, p.Duration)
	}
}

func (s *NotifySystem) Update() {}
