package engine

// Phase is the session lifecycle state; exactly one holds at a time
type Phase uint8

const (
	PhaseRunning Phase = iota
	PhasePaused
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhaseRunning:
		return "running"
	case PhasePaused:
		return "paused"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// CameraMode selects the render projection
type CameraMode uint8

const (
	CameraTopDown CameraMode = iota
	CameraFollow
	CameraCockpit
	cameraModeCount
)

// Next cycles TopDown, Follow, Cockpit
func (c CameraMode) Next() CameraMode {
	return (c + 1) % cameraModeCount
}

func (c CameraMode) String() string {
	switch c {
	case CameraTopDown:
		return "top-down"
	case CameraFollow:
		return "follow"
	case CameraCockpit:
		return "cockpit"
	default:
		return "unknown"
	}
}

// SessionState is the score, lives and lifecycle of one play session
type SessionState struct {
	ID        string
	Score     int
	HighScore int
	Lives     int
	MaxLives  int
	Phase     Phase
	Camera    CameraMode

	// Epoch increments on restart; deferred events from an older epoch are discarded
	Epoch uint64

	// RecordAnnounced is set once the new-record message fired this session
	RecordAnnounced bool
}

// reset starts a fresh run, keeping the id and the high score
func (s *SessionState) reset(maxLives int) {
	s.Score = 0
	s.Lives = maxLives
	s.MaxLives = maxLives
	s.Phase = PhaseRunning
	s.Camera = CameraTopDown
	s.RecordAnnounced = false
}

// AddScore credits points; negative amounts are ignored so the score never decreases
func (s *SessionState) AddScore(points int) {
	if points > 0 {
		s.Score += points
	}
}

// LoseLife removes one life and enters GameOver at zero
// Returns true when this call ended the game
func (s *SessionState) LoseLife() bool {
	if s.Phase == PhaseGameOver || s.Lives <= 0 {
		return false
	}
	s.Lives--
	if s.Lives == 0 {
		s.Phase = PhaseGameOver
		return true
	}
	return false
}

// RaiseHighScore lifts the high score to the current score
// Returns true when the high score changed
func (s *SessionState) RaiseHighScore() bool {
	if s.Score > s.HighScore {
		s.HighScore = s.Score
		return true
	}
	return false
}

func (s *SessionState) Running() bool {
	return s.Phase == PhaseRunning
}
