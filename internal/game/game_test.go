package game

import (
	"context"
	"testing"
	"time"

	"roomcrawl/internal/config"
	"roomcrawl/internal/event"
	"roomcrawl/internal/geom"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var enterKey = tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone)

func newTestGame(t *testing.T, maxFloor int) *Game {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	screen.SetSize(80, 24)

	g := New(screen, Settings{
		Session:  Options{MaxFloor: maxFloor},
		NextSeed: func() int64 { return 7 },
	})
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	g.now = func() time.Time { return base }
	return g
}

func playerPos(t *testing.T, g *Game) geom.Vec2 {
	t.Helper()
	id, ok := g.Session().Player()
	require.True(t, ok)
	pos, _ := g.Session().World().Position(id)
	return pos
}

func TestGameStartsAtMenu(t *testing.T) {
	g := newTestGame(t, 3)
	assert.Equal(t, StateMenu, g.Flow().State())
	assert.Nil(t, g.Session())

	// Gameplay keys do nothing on the menu.
	assert.False(t, g.handleEvent(runeKey('d')))
	assert.Equal(t, StateMenu, g.Flow().State())

	assert.False(t, g.handleEvent(enterKey))
	assert.Equal(t, StatePlaying, g.Flow().State())
	require.NotNil(t, g.Session())
	assert.Equal(t, 1, g.Session().Run().Floor)
	assert.Equal(t, geom.V(400, 300), playerPos(t, g))
}

func TestGameHeldKeyMovesPlayer(t *testing.T) {
	g := newTestGame(t, 3)
	g.handleEvent(enterKey)

	g.handleEvent(runeKey('d'))
	g.tick(0.1, g.now())
	assert.InDelta(t, 412, playerPos(t, g).X, 1e-9)

	// After the hold window the key counts as released.
	g.tick(0.1, g.now().Add(time.Second))
	assert.InDelta(t, 412, playerPos(t, g).X, 1e-9)
}

func TestGamePauseFreezesSimulation(t *testing.T) {
	g := newTestGame(t, 3)
	g.handleEvent(enterKey)

	g.handleEvent(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone))
	assert.Equal(t, StatePaused, g.Flow().State())

	g.handleEvent(runeKey('d'))
	g.tick(0.1, g.now())
	assert.Equal(t, geom.V(400, 300), playerPos(t, g))

	g.handleEvent(enterKey)
	assert.Equal(t, StatePlaying, g.Flow().State())
}

func TestGameDeathAndRestart(t *testing.T) {
	g := newTestGame(t, 3)
	g.handleEvent(enterKey)
	first := g.Session()

	first.Bus().Publish(event.PlayerDied{})
	assert.Equal(t, StateGameOver, g.Flow().State())
	assert.Equal(t, OutcomeDefeat, first.Outcome())
	assert.Contains(t, g.messages, "You died.")

	g.handleEvent(runeKey('r'))
	assert.Equal(t, StatePlaying, g.Flow().State())
	assert.NotSame(t, first, g.Session())
	assert.Equal(t, OutcomeNone, g.Session().Outcome())
	assert.NotEqual(t, first.Run().ID, g.Session().Run().ID)
}

func TestGameVictoryAfterLastFloor(t *testing.T) {
	g := newTestGame(t, 2)
	g.handleEvent(enterKey)
	s := g.Session()

	s.Bus().Publish(event.FloorCompleted{FloorNumber: 1})
	assert.Equal(t, StatePlaying, g.Flow().State())
	assert.Equal(t, 2, s.Run().Floor)
	assert.Contains(t, g.messages, "You descend to floor 2.")

	s.Bus().Publish(event.FloorCompleted{FloorNumber: 2})
	assert.Equal(t, StateVictory, g.Flow().State())

	g.handleEvent(enterKey)
	assert.Equal(t, StateMenu, g.Flow().State())
}

func TestGameQuitKeys(t *testing.T) {
	g := newTestGame(t, 3)
	assert.True(t, g.handleEvent(runeKey('q')))
	assert.True(t, g.handleEvent(tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModNone)))
}

func TestGameRunUntilQuit(t *testing.T) {
	g := newTestGame(t, 3)
	screen := g.screen.(tcell.SimulationScreen)

	done := make(chan error, 1)
	go func() { done <- g.Run(context.Background()) }()

	screen.InjectKey(tcell.KeyEnter, 0, tcell.ModNone)
	screen.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after quit")
	}
	assert.Equal(t, StatePlaying, g.Flow().State())
}

func TestGameRunStopsOnCancel(t *testing.T) {
	g := newTestGame(t, 3)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- g.Run(ctx) }()
	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestSettingsFromConfig(t *testing.T) {
	cfg := config.Default().Game
	cfg.Seed = "crypt"

	s := SettingsFrom(cfg, nil)
	assert.Equal(t, 3, s.Session.MaxFloor)
	assert.Equal(t, geom.V(800, 600), s.Session.RoomSize)
	assert.Equal(t, 60, s.TickRate)
	assert.Equal(t, 250*time.Millisecond, s.InputHold)
	assert.Equal(t, config.SeedFrom("crypt"), s.NextSeed())
}
