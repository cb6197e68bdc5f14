package engine

import (
	"fmt"
	"log"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/lixenwraith/river-raid/component"
	"github.com/lixenwraith/river-raid/event"
	"github.com/lixenwraith/river-raid/input"
	"github.com/lixenwraith/river-raid/parameter"
	"github.com/lixenwraith/river-raid/status"
	"github.com/lixenwraith/river-raid/vmath"
)

// Session is one game: world, systems, event routing and collaborators
// It is not safe for concurrent use; the host loop owns it
type Session struct {
	tuning   parameter.Tuning
	services Services
	res      *Resource
	world    *World
	router   *EventRouter

	metrics sessionMetrics
}

type sessionMetrics struct {
	ticks, epoch, score, high, lives, dropped *atomic.Int64
	speed                                     *status.AtomicFloat
	id, phase, camera                         *status.AtomicString
}

// NewSession builds a running session
// Systems are created from factories in order and sorted by priority; those that handle events are routed
func NewSession(tuning parameter.Tuning, services Services, seed uint64, factories ...SystemFactory) *Session {
	services = services.withDefaults()
	s := &Session{
		tuning:   tuning,
		services: services,
		router:   NewEventRouter(),
	}
	s.res = &Resource{
		Time:   &TimeResource{},
		Tuning: &s.tuning,
		Game:   &SessionState{ID: uuid.NewString()},
		Scroll: &ScrollResource{},
		Input:  input.NewSnapshot(),
		Events: event.NewQueue(),
		RNG:    vmath.NewFastRand(seed),
		Status: services.Status,
		Store:  services.Store,
		Audio:  services.Audio,
		UI:     services.UI,
	}
	s.world = NewWorld(s.res)
	s.bindMetrics()

	for _, factory := range factories {
		sys := factory(s.world)
		s.world.AddSystem(sys)
		if h, ok := sys.(EventHandler); ok {
			s.router.Register(h)
		}
	}

	high, err := services.Store.LoadHighScore()
	if err != nil {
		s.logf("%v", fmt.Errorf("load high score: %w", err))
	}
	if high > 0 {
		s.res.Game.HighScore = high
	}

	s.reset()
	s.logf("started: seed=%d systems=%d high=%d", seed, len(s.world.systems), s.res.Game.HighScore)
	return s
}

func (s *Session) bindMetrics() {
	reg := s.res.Status
	s.metrics = sessionMetrics{
		ticks:   reg.Ints.Get(status.MetricTicks),
		epoch:   reg.Ints.Get(status.MetricEpoch),
		score:   reg.Ints.Get(status.MetricScore),
		high:    reg.Ints.Get(status.MetricHighScore),
		lives:   reg.Ints.Get(status.MetricLives),
		dropped: reg.Ints.Get(status.MetricEventsDrop),
		speed:   reg.Floats.Get(status.MetricSpeed),
		id:      reg.Strings.Get(status.MetricSession),
		phase:   reg.Strings.Get(status.MetricPhase),
		camera:  reg.Strings.Get(status.MetricCamera),
	}
	s.metrics.id.Store(s.res.Game.ID)
}

// reset reinitialises everything except the epoch, the id and the high score
func (s *Session) reset() {
	res := s.res
	res.Events.Clear()
	res.Time.Tick = 0
	res.Scroll.Speed = s.tuning.Speed.Base
	res.Input.Reset()
	res.Game.reset(s.tuning.MaxLives)
	s.world.Reset()
	for _, sys := range s.world.systems {
		sys.Init()
	}

	res.UI.ScoreChanged(res.Game.Score, res.Game.HighScore)
	res.UI.LivesChanged(res.Game.Lives, res.Game.MaxLives)
	s.publish()
}

// Restart begins a new run in place; events queued by the previous run are discarded
func (s *Session) Restart() {
	wasPaused := s.res.Game.Phase == PhasePaused
	s.res.Game.Epoch++
	s.reset()
	if wasPaused {
		s.res.UI.PauseChanged(false)
	}
	s.logf("restart: epoch=%d", s.res.Game.Epoch)
}

// Tick advances the simulation by one step
// The pause toggle is always honoured; nothing else moves unless the phase is Running
func (s *Session) Tick() {
	res := s.res
	if res.Input.Edge(input.ActionTogglePause) {
		s.TogglePause()
	}
	if res.Game.Phase != PhaseRunning {
		s.publish()
		return
	}

	res.Time.Tick++
	s.router.Dispatch(res.Events.Drain(res.Time.Tick, res.Game.Epoch))
	s.world.Update()
	s.dispatchImmediate()
	s.publish()
}

// dispatchImmediate delivers events raised during this tick, including ones raised by handlers
// Bounded so a handler loop cannot stall the frame; leftovers are delivered next tick
func (s *Session) dispatchImmediate() {
	res := s.res
	for i := 0; i < parameter.EventLoopIterations; i++ {
		events := res.Events.Drain(res.Time.Tick, res.Game.Epoch)
		if len(events) == 0 {
			return
		}
		s.router.Dispatch(events)
	}
}

// TogglePause switches between Running and Paused; refused once the game is over
func (s *Session) TogglePause() {
	st := s.res.Game
	switch st.Phase {
	case PhaseRunning:
		st.Phase = PhasePaused
	case PhasePaused:
		st.Phase = PhaseRunning
	default:
		return
	}
	s.res.UI.PauseChanged(st.Phase == PhasePaused)
	s.logf("phase: %s", st.Phase)
}

func (s *Session) publish() {
	res := s.res
	s.metrics.ticks.Store(res.Time.Tick)
	s.metrics.epoch.Store(int64(res.Game.Epoch))
	s.metrics.score.Store(int64(res.Game.Score))
	s.metrics.high.Store(int64(res.Game.HighScore))
	s.metrics.lives.Store(int64(res.Game.Lives))
	s.metrics.dropped.Store(int64(res.Events.Dropped()))
	s.metrics.speed.Set(res.Scroll.Speed)
	s.metrics.phase.Store(res.Game.Phase.String())
	s.metrics.camera.Store(res.Game.Camera.String())
}

func (s *Session) logf(format string, args ...any) {
	log.Printf("[%s] session: "+format, append([]any{s.res.Game.ID}, args...)...)
}

// --- Read accessors for the host and renderer ---

func (s *Session) World() *World                { return s.world }
func (s *Session) Input() *input.Snapshot       { return s.res.Input }
func (s *Session) Tuning() parameter.Tuning     { return s.tuning }
func (s *Session) River() parameter.RiverTuning { return s.tuning.River }
func (s *Session) State() SessionState          { return *s.res.Game }
func (s *Session) ID() string                   { return s.res.Game.ID }
func (s *Session) Phase() Phase                 { return s.res.Game.Phase }
func (s *Session) Camera() CameraMode           { return s.res.Game.Camera }
func (s *Session) Score() int                   { return s.res.Game.Score }
func (s *Session) HighScore() int               { return s.res.Game.HighScore }
func (s *Session) Lives() int                   { return s.res.Game.Lives }
func (s *Session) Epoch() uint64                { return s.res.Game.Epoch }
func (s *Session) CurrentTick() int64           { return s.res.Time.Tick }
func (s *Session) Speed() float64               { return s.res.Scroll.Speed }
func (s *Session) PendingEvents() int           { return s.res.Events.Len() }

func (s *Session) Player() component.PlayerComponent { return s.world.Player }

func (s *Session) Enemies() []component.EnemyComponent { return s.world.Enemies }

func (s *Session) Projectiles() []component.ProjectileComponent { return s.world.Projectiles }

func (s *Session) Scenery() []component.SceneryComponent { return s.world.Scenery }

func (s *Session) Explosions() []component.ExplosionComponent { return s.world.Explosions }
