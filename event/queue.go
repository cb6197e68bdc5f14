package event

import (
	"github.com/lixenwraith/river-raid/parameter"
)

// Queue holds pending game events in FIFO order, each tagged with an epoch and a due tick
// Single-threaded: owned by the session and touched only from the game loop
//
// Overflow: Push refuses new events when the queue holds EventQueueSize entries
type Queue struct {
	pending []GameEvent
	out     []GameEvent // Reused drain buffer
	dropped uint64
}

func NewQueue() *Queue {
	return &Queue{
		pending: make([]GameEvent, 0, parameter.EventQueueSize),
		out:     make([]GameEvent, 0, parameter.EventQueueSize),
	}
}

// Push appends an event; returns false if the queue is full
func (q *Queue) Push(ev GameEvent) bool {
	if len(q.pending) >= parameter.EventQueueSize {
		q.dropped++
		return false
	}
	q.pending = append(q.pending, ev)
	return true
}

// Drain removes and returns every event due at or before tick, in push order
// Events from an epoch other than the current one are discarded; events not yet due stay queued
// The returned slice is valid until the next Drain
func (q *Queue) Drain(tick int64, epoch uint64) []GameEvent {
	q.out = q.out[:0]
	kept := q.pending[:0]
	for _, ev := range q.pending {
		switch {
		case ev.Epoch != epoch:
			q.dropped++
		case ev.Due <= tick:
			q.out = append(q.out, ev)
		default:
			kept = append(kept, ev)
		}
	}
	// Zero the tail so payloads can be collected
	for i := len(kept); i < len(q.pending); i++ {
		q.pending[i] = GameEvent{}
	}
	q.pending = kept
	return q.out
}

// Clear discards every pending event
func (q *Queue) Clear() {
	for i := range q.pending {
		q.pending[i] = GameEvent{}
	}
	q.pending = q.pending[:0]
}

// Len returns the pending event count
func (q *Queue) Len() int {
	return len(q.pending)
}

// Count returns how many pending events have the given type
func (q *Queue) Count(et EventType) int {
	n := 0
	for _, ev := range q.pending {
		if ev.Type == et {
			n++
		}
	}
	return n
}

// Dropped returns the number of events lost to overflow or epoch mismatch
func (q *Queue) Dropped() uint64 {
	return q.dropped
}
