package engine

import (
	"errors"
	"testing"
	"time"

	"github.com/lixenwraith/river-raid/event"
	"github.com/lixenwraith/river-raid/input"
	"github.com/lixenwraith/river-raid/parameter"
	"github.com/lixenwraith/river-raid/status"
)

// recordingSystem logs updates and handled events into a shared trace
type recordingSystem struct {
	name     string
	priority int
	types    []event.EventType
	trace    *[]string
	inits    int
	handled  []event.GameEvent
}

func (r *recordingSystem) Init()                         { r.inits++ }
func (r *recordingSystem) Name() string                  { return r.name }
func (r *recordingSystem) Priority() int                 { return r.priority }
func (r *recordingSystem) Update()                       { *r.trace = append(*r.trace, r.name) }
func (r *recordingSystem) EventTypes() []event.EventType { return r.types }
func (r *recordingSystem) HandleEvent(ev event.GameEvent) {
	r.handled = append(r.handled, ev)
	*r.trace = append(*r.trace, r.name+":"+ev.Type.String())
}

type fakeUI struct {
	NopUI
	pauses []bool
	scores [][2]int
	lives  [][2]int
}

func (f *fakeUI) PauseChanged(p bool)          { f.pauses = append(f.pauses, p) }
func (f *fakeUI) ScoreChanged(score, high int) { f.scores = append(f.scores, [2]int{score, high}) }
func (f *fakeUI) LivesChanged(lives, max int)  { f.lives = append(f.lives, [2]int{lives, max}) }

type failingStore struct{}

func (failingStore) LoadHighScore() (int, error) { return 0, errors.New("disk gone") }
func (failingStore) SaveHighScore(int) error     { return errors.New("disk gone") }

type fixedStore struct{ high int }

func (f fixedStore) LoadHighScore() (int, error) { return f.high, nil }
func (f fixedStore) SaveHighScore(int) error     { return nil }

func newTestSession(t *testing.T, ui UI, systems ...*recordingSystem) *Session {
	t.Helper()
	factories := make([]SystemFactory, 0, len(systems))
	for _, sys := range systems {
		sys := sys
		factories = append(factories, func(*World) System { return sys })
	}
	return NewSession(parameter.DefaultTuning(), Services{UI: ui}, 1, factories...)
}

func TestNewSessionDefaults(t *testing.T) {
	s := NewSession(parameter.DefaultTuning(), Services{}, 1)
	if s.Phase() != PhaseRunning {
		t.Errorf("Phase = %v, want running", s.Phase())
	}
	if s.Lives() != parameter.MaxLives || s.Score() != 0 {
		t.Errorf("lives %d score %d", s.Lives(), s.Score())
	}
	if s.ID() == "" {
		t.Error("session id not assigned")
	}
	if !s.World().Initialized {
		t.Error("world not initialized")
	}
	if len(s.Enemies()) != parameter.EnemyPoolSize || len(s.Scenery()) != parameter.SceneryPoolSize {
		t.Errorf("pools = %d enemies, %d scenery", len(s.Enemies()), len(s.Scenery()))
	}
	for i, e := range s.Enemies() {
		if !e.Active || !e.Visible {
			t.Errorf("enemy %d not in play after reset", i)
		}
	}
}

func TestSystemsRunInPriorityOrder(t *testing.T) {
	var trace []string
	late := &recordingSystem{name: "late", priority: 80, trace: &trace}
	early := &recordingSystem{name: "early", priority: 10, trace: &trace}
	mid := &recordingSystem{name: "mid", priority: 40, trace: &trace}
	s := newTestSession(t, nil, late, early, mid)

	s.Tick()
	want := []string{"early", "mid", "late"}
	if len(trace) != len(want) {
		t.Fatalf("trace = %v", trace)
	}
	for i := range want {
		if trace[i] != want[i] {
			t.Errorf("trace[%d] = %s, want %s", i, trace[i], want[i])
		}
	}
	if early.inits != 1 {
		t.Errorf("Init called %d times, want 1", early.inits)
	}
}

func TestDeferredEventDeliveredAtStartOfDueTick(t *testing.T) {
	var trace []string
	h := &recordingSystem{name: "h", priority: 10, trace: &trace,
		types: []event.EventType{event.EventPlayerRespawn}}
	s := newTestSession(t, nil, h)

	s.Tick() // tick 1
	s.World().ScheduleEvent(event.EventPlayerRespawn, nil, 3)
	trace = trace[:0]

	s.Tick() // 2
	s.Tick() // 3
	if len(h.handled) != 0 {
		t.Fatalf("delivered early at tick %d", s.CurrentTick())
	}
	trace = trace[:0]
	s.Tick() // 4
	if len(h.handled) != 1 {
		t.Fatalf("handled = %d, want 1 at due tick", len(h.handled))
	}
	if trace[0] != "h:PlayerRespawn" || trace[1] != "h" {
		t.Errorf("deferred event should dispatch before systems: %v", trace)
	}
}

// emitterSystem raises an immediate event from its update
type emitterSystem struct {
	recordingSystem
	world *World
}

func (e *emitterSystem) Update() {
	e.recordingSystem.Update()
	e.world.PushEvent(event.EventExplosion, nil)
}

func TestImmediateEventsDispatchAfterSystems(t *testing.T) {
	var trace []string
	h := &recordingSystem{name: "h", priority: 10, trace: &trace,
		types: []event.EventType{event.EventExplosion}}
	var emitter *emitterSystem
	factories := []SystemFactory{
		func(*World) System { return h },
		func(w *World) System {
			emitter = &emitterSystem{recordingSystem: recordingSystem{name: "emit", priority: 50, trace: &trace}, world: w}
			return emitter
		},
	}
	s := NewSession(parameter.DefaultTuning(), Services{}, 1, factories...)

	s.Tick()
	want := []string{"h", "emit", "h:Explosion"}
	if len(trace) != len(want) {
		t.Fatalf("trace = %v, want %v", trace, want)
	}
	for i := range want {
		if trace[i] != want[i] {
			t.Errorf("trace[%d] = %s, want %s", i, trace[i], want[i])
		}
	}
	if s.PendingEvents() != 0 {
		t.Errorf("pending = %d after dispatch", s.PendingEvents())
	}
}

func TestRestartDiscardsStaleEvents(t *testing.T) {
	var trace []string
	h := &recordingSystem{name: "h", priority: 10, trace: &trace,
		types: []event.EventType{event.EventEnemyReactivate}}
	s := newTestSession(t, nil, h)

	s.World().ScheduleEvent(event.EventEnemyReactivate, nil, 2)
	s.Restart()
	if s.Epoch() != 1 {
		t.Errorf("Epoch = %d, want 1", s.Epoch())
	}
	if s.PendingEvents() != 0 {
		t.Errorf("pending = %d after restart", s.PendingEvents())
	}

	// An event stamped with the old epoch slipping in after restart is dropped
	s.World().Resources.Events.Push(event.GameEvent{Type: event.EventEnemyReactivate, Epoch: 0, Due: 1})
	for i := 0; i < 5; i++ {
		s.Tick()
	}
	if len(h.handled) != 0 {
		t.Errorf("stale event delivered: %+v", h.handled)
	}
	if h.inits != 2 {
		t.Errorf("Init calls = %d, want 2", h.inits)
	}
}

func TestPauseFreezesSimulation(t *testing.T) {
	var trace []string
	sys := &recordingSystem{name: "s", priority: 10, trace: &trace}
	ui := &fakeUI{}
	s := newTestSession(t, ui, sys)
	s.Tick()

	s.Input().Press(input.ActionTogglePause)
	s.Tick()
	if s.Phase() != PhasePaused {
		t.Fatalf("Phase = %v, want paused", s.Phase())
	}
	tick := s.CurrentTick()
	updates := len(trace)
	for i := 0; i < 10; i++ {
		s.Tick()
	}
	if s.CurrentTick() != tick || len(trace) != updates {
		t.Errorf("simulation advanced while paused: tick %d -> %d", tick, s.CurrentTick())
	}

	s.Input().Release(input.ActionTogglePause)
	s.Tick()
	s.Input().Press(input.ActionTogglePause)
	s.Tick()
	if s.Phase() != PhaseRunning {
		t.Errorf("Phase = %v, want running after second toggle", s.Phase())
	}
	if len(ui.pauses) != 2 || !ui.pauses[0] || ui.pauses[1] {
		t.Errorf("PauseChanged calls = %v", ui.pauses)
	}
}

func TestPauseRefusedWhenGameOver(t *testing.T) {
	ui := &fakeUI{}
	s := newTestSession(t, ui)
	s.World().Resources.Game.Phase = PhaseGameOver
	s.Input().Press(input.ActionTogglePause)
	s.Tick()
	if s.Phase() != PhaseGameOver || len(ui.pauses) != 0 {
		t.Errorf("Phase = %v, pauses = %v", s.Phase(), ui.pauses)
	}
}

func TestHighScoreLoadedAndStoreErrorsTolerated(t *testing.T) {
	s := NewSession(parameter.DefaultTuning(), Services{Store: fixedStore{high: 700}}, 1)
	if s.HighScore() != 700 {
		t.Errorf("HighScore = %d, want 700", s.HighScore())
	}
	s = NewSession(parameter.DefaultTuning(), Services{Store: failingStore{}}, 1)
	if s.HighScore() != 0 || s.Phase() != PhaseRunning {
		t.Errorf("failing store: high %d phase %v", s.HighScore(), s.Phase())
	}
}

func TestResetNotifiesUI(t *testing.T) {
	ui := &fakeUI{}
	s := NewSession(parameter.DefaultTuning(), Services{UI: ui, Store: fixedStore{high: 50}}, 1)
	if len(ui.scores) != 1 || ui.scores[0] != [2]int{0, 50} {
		t.Errorf("ScoreChanged = %v", ui.scores)
	}
	if len(ui.lives) != 1 || ui.lives[0] != [2]int{parameter.MaxLives, parameter.MaxLives} {
		t.Errorf("LivesChanged = %v", ui.lives)
	}
	s.Restart()
	if len(ui.scores) != 2 {
		t.Errorf("restart did not refresh UI")
	}
}

func TestMetricsPublished(t *testing.T) {
	reg := status.NewRegistry()
	s := NewSession(parameter.DefaultTuning(), Services{Status: reg}, 1)
	s.Tick()
	s.Tick()
	if got := reg.Ints.Get(status.MetricTicks).Load(); got != 2 {
		t.Errorf("ticks metric = %d", got)
	}
	if got := reg.Strings.Get(status.MetricPhase).Load(); got != "running" {
		t.Errorf("phase metric = %q", got)
	}
	if got := reg.Strings.Get(status.MetricSession).Load(); got != s.ID() {
		t.Errorf("session metric = %q, want %q", got, s.ID())
	}
}

func TestSessionStateLoseLife(t *testing.T) {
	st := SessionState{}
	st.reset(2)
	if st.LoseLife() {
		t.Fatal("first life loss ended the game")
	}
	if !st.LoseLife() || st.Phase != PhaseGameOver {
		t.Fatal("last life loss should enter GameOver")
	}
	if st.LoseLife() || st.Lives != 0 {
		t.Errorf("life lost after GameOver: %d", st.Lives)
	}
}

func TestSessionStateScoreMonotone(t *testing.T) {
	st := SessionState{HighScore: 150}
	st.AddScore(100)
	st.AddScore(-50)
	if st.Score != 100 {
		t.Errorf("Score = %d, want 100", st.Score)
	}
	if st.RaiseHighScore() {
		t.Error("high score raised below previous best")
	}
	st.AddScore(100)
	if !st.RaiseHighScore() || st.HighScore != 200 {
		t.Errorf("HighScore = %d, want 200", st.HighScore)
	}
}

func TestCameraCycle(t *testing.T) {
	c := CameraTopDown
	seen := []CameraMode{c}
	for i := 0; i < 3; i++ {
		c = c.Next()
		seen = append(seen, c)
	}
	want := []CameraMode{CameraTopDown, CameraFollow, CameraCockpit, CameraTopDown}
	for i := range want {
		if seen[i] != want[i] {
			t.Errorf("cycle[%d] = %v, want %v", i, seen[i], want[i])
		}
	}
}

func TestSpawnExplosionReusesOldest(t *testing.T) {
	s := NewSession(parameter.DefaultTuning(), Services{}, 1)
	w := s.World()
	for i := range w.Explosions {
		w.SpawnExplosion(w.Player.Pos, 10)
		w.Explosions[i].Age = i
	}
	w.Explosions[3].Age = 100
	w.SpawnExplosion(w.Player.Pos, 10)
	if w.Explosions[3].Age != 0 {
		t.Errorf("oldest slot not reused")
	}
}

func TestMockTimeProvider(t *testing.T) {
	start := time.Unix(100, 0)
	m := NewMockTimeProvider(start)
	if got := m.Advance(time.Second); !got.Equal(start.Add(time.Second)) {
		t.Errorf("Advance = %v", got)
	}
	m.SetTime(start)
	if !m.Now().Equal(start) {
		t.Errorf("Now after SetTime = %v", m.Now())
	}
}
