package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 3, cfg.Game.MaxFloor)
	assert.Equal(t, 800.0, cfg.Game.RoomWidth)
	assert.Equal(t, 600.0, cfg.Game.RoomHeight)
	assert.Equal(t, time.Second/60, cfg.Game.TickInterval())
}

func TestParseOverridesDefaults(t *testing.T) {
	cfg, err := Parse(strings.NewReader(`
game:
  max_floor: 5
  seed: crypt
  input_hold: 150ms
log:
  level: debug
  format: json
`))
	require.NoError(t, err)

	assert.Equal(t, 5, cfg.Game.MaxFloor)
	assert.Equal(t, "crypt", cfg.Game.Seed)
	assert.Equal(t, 150*time.Millisecond, cfg.Game.InputHold)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, 60, cfg.Game.TickRate, "unset fields keep their defaults")
	assert.Equal(t, ":2222", cfg.Server.Addr)
}

func TestParseEmptyDocument(t *testing.T) {
	cfg, err := Parse(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestParseRejectsBadYAML(t *testing.T) {
	_, err := Parse(strings.NewReader("game: [unclosed"))
	assert.Error(t, err)
}

func TestValidateReportsEveryProblem(t *testing.T) {
	cfg := Default()
	cfg.Game.MaxFloor = 0
	cfg.Game.TickRate = 0
	cfg.Log.Format = "xml"

	err := cfg.Validate()
	require.Error(t, err)
	msg := err.Error()
	assert.Contains(t, msg, "max_floor")
	assert.Contains(t, msg, "tick_rate")
	assert.Contains(t, msg, "log.format")
}

func TestLoad(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	cfg, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	path := filepath.Join(t.TempDir(), "roomcrawl.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server:\n  addr: \":2323\"\n"), 0o600))
	cfg, err = Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":2323", cfg.Server.Addr)

	require.NoError(t, os.WriteFile(path, []byte("game:\n  max_floor: -1\n"), 0o600))
	_, err = Load(path)
	assert.ErrorContains(t, err, "max_floor")
}

func TestSeeds(t *testing.T) {
	assert.Equal(t, SeedFrom("crypt"), SeedFrom("crypt"))
	assert.NotEqual(t, SeedFrom("crypt"), SeedFrom("tomb"))

	g := Default().Game
	g.Seed = "crypt"
	assert.Equal(t, SeedFrom("crypt"), g.NextSeed())
}
