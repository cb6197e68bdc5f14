package system

import (
	"testing"
	"time"

	"github.com/lixenwraith/river-raid/component"
	"github.com/lixenwraith/river-raid/engine"
	"github.com/lixenwraith/river-raid/parameter"
	"github.com/lixenwraith/river-raid/vmath"
)

type fakeUI struct {
	scores    [][2]int
	lives     [][2]int
	gameOvers [][2]int
	messages  []string
	pauses    []bool
}

func (f *fakeUI) ScoreChanged(score, high int) { f.scores = append(f.scores, [2]int{score, high}) }
func (f *fakeUI) LivesChanged(lives, max int)  { f.lives = append(f.lives, [2]int{lives, max}) }
func (f *fakeUI) GameOver(score, high int)     { f.gameOvers = append(f.gameOvers, [2]int{score, high}) }
func (f *fakeUI) Message(text string, _ time.Duration) {
	f.messages = append(f.messages, text)
}
func (f *fakeUI) PauseChanged(p bool) { f.pauses = append(f.pauses, p) }

func (f *fakeUI) countMessages(text string) int {
	n := 0
	for _, m := range f.messages {
		if m == text {
			n++
		}
	}
	return n
}

type fakeAudio struct{ explosions int }

func (f *fakeAudio) PlayExplosion() { f.explosions++ }

type fakeStore struct {
	high  int
	saves []int
}

func (f *fakeStore) LoadHighScore() (int, error) { return f.high, nil }
func (f *fakeStore) SaveHighScore(score int) error {
	f.high = score
	f.saves = append(f.saves, score)
	return nil
}

type harness struct {
	t      *testing.T
	s      *engine.Session
	w      *engine.World
	tuning parameter.Tuning
	ui     *fakeUI
	audio  *fakeAudio
	store  *fakeStore
}

// newHarness builds a session with every system and no enemies in play
func newHarness(t *testing.T) *harness {
	t.Helper()
	h := &harness{
		t:      t,
		tuning: parameter.DefaultTuning(),
		ui:     &fakeUI{},
		audio:  &fakeAudio{},
		store:  &fakeStore{},
	}
	h.s = engine.NewSession(h.tuning, engine.Services{UI: h.ui, Audio: h.audio, Store: h.store}, 12345, All()...)
	h.w = h.s.World()
	h.clearEnemies()
	return h
}

// clearEnemies takes every enemy out of play without scheduling reactivation
func (h *harness) clearEnemies() {
	for i := range h.w.Enemies {
		e := &h.w.Enemies[i]
		e.Active = false
		e.Visible = false
		e.State = component.EnemyMoving
	}
}

func (h *harness) placeEnemy(i int, pos vmath.Vec3F) {
	e := &h.w.Enemies[i]
	e.Pos = pos
	e.Active = true
	e.Visible = true
	e.State = component.EnemyMoving
}

func (h *harness) ticks(n int) {
	for i := 0; i < n; i++ {
		h.s.Tick()
	}
}

func (h *harness) respawnTicks() int {
	return int(h.tuning.TicksFor(h.tuning.RespawnDelay))
}

func (h *harness) reactivateTicks() int {
	return int(h.tuning.TicksFor(h.tuning.ReactivateDelay))
}

func (h *harness) activeProjectiles() int {
	n := 0
	for _, p := range h.w.Projectiles {
		if p.Active {
			n++
		}
	}
	return n
}

func (h *harness) activeExplosions() int {
	n := 0
	for _, e := range h.w.Explosions {
		if e.Active {
			n++
		}
	}
	return n
}

// ramPlayer puts enemy i on the player and runs the tick that resolves the hit
func (h *harness) ramPlayer(i int) {
	h.placeEnemy(i, h.w.Player.Pos)
	h.s.Tick()
}
