package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/river-raid/input"
	"github.com/lixenwraith/river-raid/parameter"
)

// ErrInvalid marks a configuration that loaded but cannot be used
var ErrInvalid = errors.New("invalid config")

// Config is the complete runtime configuration
// Zero-valued fields in a file keep their defaults
type Config struct {
	Game   parameter.Tuning `yaml:"game"`
	Input  InputConfig      `yaml:"input"`
	Audio  AudioConfig      `yaml:"audio"`
	Store  StoreConfig      `yaml:"store"`
	Log    LogConfig        `yaml:"log"`
	Status StatusConfig     `yaml:"status"`
}

type InputConfig struct {
	// Keymap overrides bindings per action name, e.g. fire: [space, f]
	Keymap       map[string][]string `yaml:"keymap"`
	HoldWindow   time.Duration       `yaml:"hold_window"`
	RepeatWindow time.Duration       `yaml:"repeat_window"`
}

type AudioConfig struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"` // Base-2 exponent, 0 is unity gain
}

type StoreConfig struct {
	Path string `yaml:"path"`
}

type LogConfig struct {
	Debug bool   `yaml:"debug"`
	Dir   string `yaml:"dir"`
}

type StatusConfig struct {
	Addr string `yaml:"addr"` // Empty disables the endpoint
}

// Default returns the built-in configuration
func Default() Config {
	return Config{
		Game: parameter.DefaultTuning(),
		Input: InputConfig{
			HoldWindow:   parameter.KeyHoldWindow,
			RepeatWindow: parameter.KeyRepeatWindow,
		},
		Audio: AudioConfig{
			Enabled: true,
			Volume:  parameter.DefaultVolume,
		},
		Store: StoreConfig{
			Path: "river-raid-scores.yaml",
		},
		Log: LogConfig{
			Dir: "logs",
		},
	}
}

// Load reads path over the defaults and validates the result
// An empty path returns the validated defaults
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, cfg.Validate()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := Parse(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

// Parse overlays YAML data onto cfg; unknown fields are rejected
func Parse(data []byte, cfg *Config) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("parse config: %w", err)
	}
	return nil
}

// Validate checks every value the game depends on
func (c Config) Validate() error {
	g := c.Game
	var problems []string
	check := func(ok bool, msg string) {
		if !ok {
			problems = append(problems, msg)
		}
	}

	check(g.River.Width > 0, "game.river.width must be positive")
	check(g.River.Length > 0, "game.river.length must be positive")
	check(g.River.BankWidth >= 0, "game.river.bank_width must not be negative")
	check(g.River.TrailingMargin >= 0, "game.river.trailing_margin must not be negative")
	check(g.River.SpawnJitter >= 0, "game.river.spawn_jitter must not be negative")
	check(g.Speed.Base > 0, "game.speed.base must be positive")
	check(g.Speed.Acceleration >= 0, "game.speed.acceleration must not be negative")
	check(g.Speed.Lateral > 0, "game.speed.lateral must be positive")
	check(g.Speed.Projectile > 0, "game.speed.projectile must be positive")
	check(g.Collision.PlayerBoxFactor > 0, "game.collision.player_box_factor must be positive")
	check(g.Collision.EnemyBoxFactor > 0, "game.collision.enemy_box_factor must be positive")
	check(g.Collision.ProjectileBoxFactor > 0, "game.collision.projectile_box_factor must be positive")
	check(g.Collision.PlayerEnemyDistance > 0, "game.collision.player_enemy_distance must be positive")
	check(g.Collision.BoundaryMargin >= 0 && g.Collision.BoundaryMargin < g.River.Width/2,
		"game.collision.boundary_margin must lie within half the river width")
	check(g.Pools.Enemies > 0, "game.pools.enemies must be positive")
	check(g.Pools.Scenery >= 0, "game.pools.scenery must not be negative")
	check(g.Pools.Projectiles > 0, "game.pools.projectiles must be positive")
	check(g.Pools.Explosions >= 0, "game.pools.explosions must not be negative")
	check(g.MaxLives > 0, "game.max_lives must be positive")
	check(g.ScorePerKill > 0, "game.score_per_kill must be positive")
	check(g.RespawnDelay > 0, "game.respawn_delay must be positive")
	check(g.ReactivateDelay > 0, "game.reactivate_delay must be positive")
	check(g.TickInterval > 0, "game.tick_interval must be positive")
	check(c.Input.HoldWindow > 0, "input.hold_window must be positive")
	check(c.Input.RepeatWindow > 0, "input.repeat_window must be positive")
	check(c.Store.Path != "", "store.path must be set")

	if _, err := input.LoadKeymap(c.Input.Keymap); err != nil {
		problems = append(problems, err.Error())
	}

	if len(problems) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(problems, "; "))
}
