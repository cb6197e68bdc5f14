package engine

import (
	"github.com/lixenwraith/river-raid/event"
)

// System is one stage of the per-tick pipeline
// Systems run in ascending Priority order; Init is called on every session reset
type System interface {
	Init()
	Name() string
	Priority() int // Lower values run first
	Update()
}

// EventHandler receives routed events
// Systems implementing it are registered with the session router automatically
type EventHandler interface {
	HandleEvent(ev event.GameEvent)
	EventTypes() []event.EventType
}

// SystemFactory builds a system bound to a world
type SystemFactory func(w *World) System
