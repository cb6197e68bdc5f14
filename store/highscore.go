package store

import (
	"fmt"
	"time"
)

// HighScoreKey is the key the best score is kept under
const HighScoreKey = "river_raid_high_score"

// HighScore adapts a KV to the session's high-score persistence
// Saves never lower the stored value
type HighScore struct {
	kv      KV
	session string
	now     func() time.Time
}

// NewHighScore tags saved records with the session id
func NewHighScore(kv KV, session string) *HighScore {
	return &HighScore{kv: kv, session: session, now: time.Now}
}

func (h *HighScore) LoadHighScore() (int, error) {
	e, ok, err := h.kv.Get(HighScoreKey)
	if err != nil {
		return 0, fmt.Errorf("load high score: %w", err)
	}
	if !ok || e.Value < 0 {
		return 0, nil
	}
	return e.Value, nil
}

func (h *HighScore) SaveHighScore(score int) error {
	current, err := h.LoadHighScore()
	if err != nil {
		return err
	}
	if score <= current {
		return nil
	}
	e := Entry{Value: score, Session: h.session, UpdatedAt: h.now().UTC()}
	if err := h.kv.Put(HighScoreKey, e); err != nil {
		return fmt.Errorf("save high score: %w", err)
	}
	return nil
}

// SetSession changes the id recorded with later saves
func (h *HighScore) SetSession(id string) {
	h.session = id
}
