package system

import (
	"fmt"
	"log"

	"github.com/lixenwraith/river-raid/engine"
	"github.com/lixenwraith/river-raid/event"
	"github.com/lixenwraith/river-raid/parameter"
)

const recordMessage = "NEW RECORD!"

// ScoreSystem pushes score and lives to the UI and keeps the high score persisted
type ScoreSystem struct {
	world *engine.World

	lastScore int
	lastLives int
}

func NewScoreSystem(world *engine.World) engine.System {
	s := &ScoreSystem{world: world}
	s.Init()
	return s
}

func (s *ScoreSystem) Init() {
	st := s.world.Resources.Game
	s.lastScore = st.Score
	s.lastLives = st.Lives
}

func (s *ScoreSystem) Name() string { return "score" }

func (s *ScoreSystem) Priority() int { return parameter.PriorityScore }

func (s *ScoreSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventGameOver,
	}
}

func (s *ScoreSystem) HandleEvent(ev event.GameEvent) {
	if ev.Type != event.EventGameOver {
		return
	}
	res := s.world.Resources
	st := res.Game
	s.checkHighScore()
	res.UI.GameOver(st.Score, st.HighScore)
}

func (s *ScoreSystem) Update() {
	res := s.world.Resources
	st := res.Game

	if st.Score != s.lastScore {
		s.lastScore = st.Score
		s.checkHighScore()
		res.UI.ScoreChanged(st.Score, st.HighScore)
	}
	if st.Lives != s.lastLives {
		s.lastLives = st.Lives
		res.UI.LivesChanged(st.Lives, st.MaxLives)
	}
}

// checkHighScore raises, saves and announces a new best score
// The announcement fires once per session run
func (s *ScoreSystem) checkHighScore() {
	res := s.world.Resources
	st := res.Game
	if !st.RaiseHighScore() {
		return
	}
	if err := res.Store.SaveHighScore(st.HighScore); err != nil {
		log.Printf("[%s] score: %v", st.ID, fmt.Errorf("save high score %d: %w", st.HighScore, err))
	}
	if st.RecordAnnounced {
		return
	}
	st.RecordAnnounced = true
	s.world.PushEvent(event.EventMessage, &event.MessagePayload{
		Text:     recordMessage,
		Duration: parameter.RecordMessageDuration,
	})
}
