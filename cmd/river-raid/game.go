package main

import (
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/river-raid/audio"
	"github.com/lixenwraith/river-raid/config"
	"github.com/lixenwraith/river-raid/engine"
	"github.com/lixenwraith/river-raid/input"
	"github.com/lixenwraith/river-raid/render"
	"github.com/lixenwraith/river-raid/service"
	"github.com/lixenwraith/river-raid/status"
	"github.com/lixenwraith/river-raid/store"
	"github.com/lixenwraith/river-raid/system"
)

// game is the host side of a session: screen, key tracking, collaborators and the frame step
// Everything here runs on the main loop goroutine
type game struct {
	screen   tcell.Screen
	clock    engine.Clock
	session  *engine.Session
	tracker  *input.KeyTracker
	renderer *render.Renderer
	hud      *render.HUD
	registry *status.Registry
	scores   *store.HighScore
	services *service.Hub
	endpoint *status.Endpoint // nil when no status address is configured
}

func newGame(screen tcell.Screen, cfg config.Config, keymap *input.Keymap, clock engine.Clock, seed uint64) *game {
	g := &game{
		screen:   screen,
		clock:    clock,
		registry: status.NewRegistry(),
		hud:      render.NewHUD(clock),
	}

	g.services = service.NewHub()
	var sound *audio.SoundManager
	if cfg.Audio.Enabled {
		sound = audio.NewSoundManager(cfg.Audio.Volume)
		g.services.Register(sound)
	}
	if cfg.Status.Addr != "" {
		g.endpoint = status.NewEndpoint(cfg.Status.Addr, g.registry)
		g.services.Register(g.endpoint)
	}
	// Failed services are logged by the hub; the game runs without them
	_ = g.services.StartAll()

	var player engine.AudioPlayer
	if sound != nil && g.services.Running(sound.Name()) {
		player = sound
	}
	g.registry.Bools.Get(status.MetricAudio).Store(player != nil)

	g.scores = store.NewHighScore(store.NewFileStore(cfg.Store.Path), "")
	g.session = engine.NewSession(cfg.Game, engine.Services{
		Store:  g.scores,
		Audio:  player,
		UI:     g.hud,
		Status: g.registry,
	}, seed, system.All()...)
	g.scores.SetSession(g.session.ID())

	g.tracker = input.NewKeyTracker(keymap)
	g.tracker.HoldWindow = cfg.Input.HoldWindow
	g.tracker.RepeatWindow = cfg.Input.RepeatWindow

	g.renderer = render.NewRenderer(screen, g.hud)
	g.renderer.SetDebug(cfg.Log.Debug)
	return g
}

// handleEvent applies one terminal event; returns false when the player quits
func (g *game) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		a, ok := g.tracker.HandleKey(ev, g.clock.Now())
		if ok && a == input.ActionQuit {
			return false
		}
	case *tcell.EventResize:
		g.screen.Sync()
	}
	return true
}

// step runs one frame: held keys into the snapshot, host actions, one tick, one draw
func (g *game) step() {
	snap := g.session.Input()
	g.tracker.Apply(snap, g.clock.Now())

	if snap.Edge(input.ActionRestart) {
		g.session.Restart()
		// The snapshot was reset; drop holds so the same press does not restart twice
		g.tracker.Reset()
	}

	g.session.Tick()
	g.renderer.Draw(g.session)
}

// loop runs frames at the tick interval until quit or the event source closes
func (g *game) loop(events <-chan tcell.Event, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case ev, ok := <-events:
			if !ok || !g.handleEvent(ev) {
				return
			}
		case <-ticker.C:
			g.step()
		}
	}
}

func (g *game) close() {
	if err := g.services.StopAll(); err != nil {
		log.Printf("[%s] %v", g.session.ID(), err)
	}
	log.Printf("[%s] exit: score=%d high=%d", g.session.ID(), g.session.Score(), g.session.HighScore())
}
