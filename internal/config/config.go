package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/cespare/xxhash/v2"
	"gopkg.in/yaml.v3"
)

// Config is the YAML configuration of the game and the SSH server.
type Config struct {
	Game   GameConfig   `yaml:"game"`
	Log    LogConfig    `yaml:"log"`
	Server ServerConfig `yaml:"server"`
}

type GameConfig struct {
	MaxFloor          int           `yaml:"max_floor"`
	RoomWidth         float64       `yaml:"room_width"`
	RoomHeight        float64       `yaml:"room_height"`
	TickRate          int           `yaml:"tick_rate"`
	TransitionSeconds float64       `yaml:"transition_seconds"`
	Seed              string        `yaml:"seed,omitempty"` // empty: a new dungeon every run
	InputHold         time.Duration `yaml:"input_hold"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // text or json
	File   string `yaml:"file,omitempty"`
}

type ServerConfig struct {
	Addr    string `yaml:"addr"`
	HostKey string `yaml:"host_key"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Game: GameConfig{
			MaxFloor:          3,
			RoomWidth:         800,
			RoomHeight:        600,
			TickRate:          60,
			TransitionSeconds: 0.3,
			InputHold:         250 * time.Millisecond,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
		Server: ServerConfig{
			Addr:    ":2222",
			HostKey: "roomcrawl_host_key",
		},
	}
}

// Load reads the YAML file at path on top of the defaults. An empty path or
// a missing file yields the defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}
	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()

	cfg, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML from r on top of the defaults and validates the result.
func Parse(r io.Reader) (*Config, error) {
	cfg := Default()
	if err := yaml.NewDecoder(r).Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate reports every invalid field at once.
func (c *Config) Validate() error {
	var errs []error
	g := c.Game
	if g.MaxFloor < 1 {
		errs = append(errs, fmt.Errorf("game.max_floor must be at least 1, got %d", g.MaxFloor))
	}
	// Rooms need space for the 40-unit walls and the 50-unit spawn margin.
	if g.RoomWidth < 200 || g.RoomHeight < 200 {
		errs = append(errs, fmt.Errorf("game room must be at least 200x200, got %gx%g", g.RoomWidth, g.RoomHeight))
	}
	if g.TickRate < 1 || g.TickRate > 240 {
		errs = append(errs, fmt.Errorf("game.tick_rate must be in 1..240, got %d", g.TickRate))
	}
	if g.TransitionSeconds <= 0 {
		errs = append(errs, fmt.Errorf("game.transition_seconds must be positive, got %g", g.TransitionSeconds))
	}
	if g.InputHold <= 0 {
		errs = append(errs, fmt.Errorf("game.input_hold must be positive, got %s", g.InputHold))
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		errs = append(errs, fmt.Errorf("log.format must be text or json, got %q", c.Log.Format))
	}
	if c.Server.Addr == "" {
		errs = append(errs, errors.New("server.addr is required"))
	}
	return errors.Join(errs...)
}

// SeedFrom derives a dungeon seed from a seed phrase.
func SeedFrom(phrase string) int64 {
	return int64(xxhash.Sum64String(phrase))
}

// NextSeed returns the seed for a new run: the configured phrase's seed when
// one is set, otherwise a time-based one.
func (g GameConfig) NextSeed() int64 {
	if g.Seed != "" {
		return SeedFrom(g.Seed)
	}
	return time.Now().UnixNano()
}

// TickInterval is the wall-clock time between simulation ticks.
func (g GameConfig) TickInterval() time.Duration {
	return time.Second / time.Duration(g.TickRate)
}
