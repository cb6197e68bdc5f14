package system

import (
	"github.com/lixenwraith/river-raid/engine"
	"github.com/lixenwraith/river-raid/event"
	"github.com/lixenwraith/river-raid/input"
	"github.com/lixenwraith/river-raid/parameter"
)

// CameraSystem cycles the camera mode on each toggle press
type CameraSystem struct {
	world *engine.World
}

func NewCameraSystem(world *engine.World) engine.System {
	s := &CameraSystem{world: world}
	s.Init()
	return s
}

func (s *CameraSystem) Init() {}

func (s *CameraSystem) Name() string { return "camera" }

func (s *CameraSystem) Priority() int { return parameter.PriorityCamera }

func (s *CameraSystem) Update() {
	res := s.world.Resources
	if !res.Input.Edge(input.ActionToggleCamera) {
		return
	}
	res.Game.Camera = res.Game.Camera.Next()
	s.world.PushEvent(event.EventMessage, &event.MessagePayload{
		Text:     "Camera: " + res.Game.Camera.String(),
		Duration: parameter.MessageDuration,
	})
}
