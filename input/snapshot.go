package input

// Snapshot is the held state of every action for the current tick
// Edge detection latches a press until release so one physical press yields one edge
type Snapshot struct {
	held    [ActionCount]bool
	latched [ActionCount]bool
}

func NewSnapshot() *Snapshot {
	return &Snapshot{}
}

// Set records the held state of a; releasing clears its latch
func (s *Snapshot) Set(a Action, held bool) {
	if a >= ActionCount {
		return
	}
	s.held[a] = held
	if !held {
		s.latched[a] = false
	}
}

func (s *Snapshot) Press(a Action) { s.Set(a, true) }

func (s *Snapshot) Release(a Action) { s.Set(a, false) }

// Held reports whether a is currently down
func (s *Snapshot) Held(a Action) bool {
	if a >= ActionCount {
		return false
	}
	return s.held[a]
}

// Edge returns true exactly once per press of a, on the first query while held
func (s *Snapshot) Edge(a Action) bool {
	if a >= ActionCount || !s.held[a] || s.latched[a] {
		return false
	}
	s.latched[a] = true
	return true
}

// Reset releases every action
func (s *Snapshot) Reset() {
	s.held = [ActionCount]bool{}
	s.latched = [ActionCount]bool{}
}
