package engine

import (
	"github.com/lixenwraith/river-raid/event"
)

// EventRouter dispatches events to registered handlers
// Handlers for one type run in registration order; all handlers see an event before the next one
type EventRouter struct {
	handlers map[event.EventType][]EventHandler
}

func NewEventRouter() *EventRouter {
	return &EventRouter{
		handlers: make(map[event.EventType][]EventHandler),
	}
}

// Register adds a handler for each of its declared event types
func (r *EventRouter) Register(handler EventHandler) {
	for _, t := range handler.EventTypes() {
		r.handlers[t] = append(r.handlers[t], handler)
	}
}

// Dispatch routes events in order; returns the number delivered to at least one handler
func (r *EventRouter) Dispatch(events []event.GameEvent) int {
	delivered := 0
	for _, ev := range events {
		handlers := r.handlers[ev.Type]
		if len(handlers) > 0 {
			delivered++
		}
		for _, h := range handlers {
			h.HandleEvent(ev)
		}
	}
	return delivered
}
