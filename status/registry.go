package status

import "sync/atomic"

// Metric names published by the game session
const (
	MetricSession    = "session.id"
	MetricPhase      = "session.phase"
	MetricCamera     = "session.camera"
	MetricEpoch      = "session.epoch"
	MetricTicks      = "loop.ticks"
	MetricSpeed      = "loop.speed"
	MetricEventsDrop = "loop.events_dropped"
	MetricScore      = "game.score"
	MetricHighScore  = "game.high_score"
	MetricLives      = "game.lives"
	MetricKills      = "game.kills"
	MetricHits       = "game.hits"
	MetricShots      = "game.shots"
	MetricAudio      = "audio.enabled"
)

// Registry is the metrics facade shared by the session and the status endpoint
type Registry struct {
	Bools   *MetricMap[atomic.Bool]
	Ints    *MetricMap[atomic.Int64]
	Floats  *MetricMap[AtomicFloat]
	Strings *MetricMap[AtomicString]
}

func NewRegistry() *Registry {
	return &Registry{
		Bools:   NewMetricMap[atomic.Bool](),
		Ints:    NewMetricMap[atomic.Int64](),
		Floats:  NewMetricMap[AtomicFloat](),
		Strings: NewMetricMap[AtomicString](),
	}
}

// TotalCount returns the number of metrics across all types
func (r *Registry) TotalCount() int {
	return r.Bools.Count() + r.Ints.Count() + r.Floats.Count() + r.Strings.Count()
}

// Snapshot copies every metric value into a plain map
func (r *Registry) Snapshot() map[string]any {
	out := make(map[string]any, r.TotalCount())
	r.Bools.Range(func(k string, v *atomic.Bool) { out[k] = v.Load() })
	r.Ints.Range(func(k string, v *atomic.Int64) { out[k] = v.Load() })
	r.Floats.Range(func(k string, v *AtomicFloat) { out[k] = v.Get() })
	r.Strings.Range(func(k string, v *AtomicString) { out[k] = v.Load() })
	return out
}

// Value returns the current value of a named metric of any type
func (r *Registry) Value(name string) (any, bool) {
	if v, ok := r.Bools.Lookup(name); ok {
		return v.Load(), true
	}
	if v, ok := r.Ints.Lookup(name); ok {
		return v.Load(), true
	}
	if v, ok := r.Floats.Lookup(name); ok {
		return v.Get(), true
	}
	if v, ok := r.Strings.Lookup(name); ok {
		return v.Load(), true
	}
	return nil, false
}
