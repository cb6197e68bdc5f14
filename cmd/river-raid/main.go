package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/river-raid/config"
	"github.com/lixenwraith/river-raid/core"
	"github.com/lixenwraith/river-raid/engine"
	"github.com/lixenwraith/river-raid/input"
)

// eventBufferSize bounds terminal events queued between ticks
const eventBufferSize = 256

var (
	configFlag = flag.String("config", "", "Path to YAML config file")
	debugFlag  = flag.Bool("debug", false, "Write a debug log and show hit boxes")
	seedFlag   = flag.Uint64("seed", 0, "RNG seed; 0 seeds from the clock")
	statusFlag = flag.String("status-addr", "", "Serve metrics over HTTP on this address, e.g. 127.0.0.1:8089")
	muteFlag   = flag.Bool("mute", false, "Start without sound")
)

func main() {
	os.Exit(runMain())
}

func runMain() int {
	// Panic Recovery: Ensure terminal is reset even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	flag.Parse()

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "river-raid: %v\n", err)
		return 1
	}

	logFile := setupLogging(cfg.Log.Debug, cfg.Log.Dir)
	if logFile != nil {
		defer logFile.Close()
	}

	seed := *seedFlag
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	if err := run(cfg, seed); err != nil {
		log.Printf("fatal: %v", err)
		fmt.Fprintf(os.Stderr, "river-raid: %v\n", err)
		return 1
	}
	return 0
}

// loadConfig reads the config file and applies command-line overrides
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(*configFlag)
	if err != nil {
		return cfg, err
	}
	if *debugFlag {
		cfg.Log.Debug = true
	}
	if *statusFlag != "" {
		cfg.Status.Addr = *statusFlag
	}
	if *muteFlag {
		cfg.Audio.Enabled = false
	}
	return cfg, nil
}

func run(cfg config.Config, seed uint64) error {
	keymap, err := input.LoadKeymap(cfg.Input.Keymap)
	if err != nil {
		return fmt.Errorf("keymap: %w", err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	core.SetCrashScreen(screen)
	defer func() {
		core.SetCrashScreen(nil)
		screen.Fini()
	}()
	screen.HideCursor()

	g := newGame(screen, cfg, keymap, engine.NewTimeProvider(), seed)
	defer g.close()

	done := make(chan struct{})
	defer close(done)
	events := pollEvents(screen, done)

	g.loop(events, cfg.Game.TickInterval)
	return nil
}

// eventSource is the part of tcell.Screen the poller reads
type eventSource interface {
	PollEvent() tcell.Event
}

// pollEvents forwards src events on its own goroutine until src returns nil or done closes
// The returned channel is closed when the poller exits
func pollEvents(src eventSource, done <-chan struct{}) <-chan tcell.Event {
	events := make(chan tcell.Event, eventBufferSize)
	core.Go(func() {
		defer close(events)
		for {
			ev := src.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	})
	return events
}
