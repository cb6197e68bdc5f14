package engine

import (
	"github.com/lixenwraith/river-raid/event"
	"github.com/lixenwraith/river-raid/input"
	"github.com/lixenwraith/river-raid/parameter"
	"github.com/lixenwraith/river-raid/status"
	"github.com/lixenwraith/river-raid/vmath"
)

// Resource holds the singletons systems read and write each tick
type Resource struct {
	Time   *TimeResource
	Tuning *parameter.Tuning
	Game   *SessionState
	Scroll *ScrollResource
	Input  *input.Snapshot
	Events *event.Queue
	RNG    *vmath.FastRand

	// Telemetry
	Status *status.Registry

	// Collaborators
	Store HighScoreStore
	Audio AudioPlayer
	UI    UI
}

// TimeResource counts simulation ticks; it does not advance while paused
type TimeResource struct {
	Tick int64
}

// ScrollResource is the river speed for the current tick
type ScrollResource struct {
	Speed float64
}
