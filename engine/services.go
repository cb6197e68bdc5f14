package engine

import (
	"time"

	"github.com/lixenwraith/river-raid/status"
)

// HighScoreStore persists the best score across sessions
type HighScoreStore interface {
	LoadHighScore() (int, error)
	SaveHighScore(score int) error
}

// AudioPlayer plays game sound effects; implementations must not block
type AudioPlayer interface {
	PlayExplosion()
}

// UI receives display notifications from the session
type UI interface {
	ScoreChanged(score, high int)
	LivesChanged(lives, max int)
	GameOver(score, high int)
	Message(text string, d time.Duration)
	PauseChanged(paused bool)
}

// Services are the session's external collaborators; nil members become no-ops
type Services struct {
	Store  HighScoreStore
	Audio  AudioPlayer
	UI     UI
	Status *status.Registry
}

func (s Services) withDefaults() Services {
	if s.Store == nil {
		s.Store = NopStore{}
	}
	if s.Audio == nil {
		s.Audio = NopAudio{}
	}
	if s.UI == nil {
		s.UI = NopUI{}
	}
	if s.Status == nil {
		s.Status = status.NewRegistry()
	}
	return s
}

// NopStore starts every session with a zero high score and saves nothing
type NopStore struct{}

func (NopStore) LoadHighScore() (int, error) { return 0, nil }
func (NopStore) SaveHighScore(int) error     { return nil }

type NopAudio struct{}

func (NopAudio) PlayExplosion() {}

type NopUI struct{}

func (NopUI) ScoreChanged(int, int)         {}
func (NopUI) LivesChanged(int, int)         {}
func (NopUI) GameOver(int, int)             {}
func (NopUI) Message(string, time.Duration) {}
func (NopUI) PauseChanged(bool)             {}
