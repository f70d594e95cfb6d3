package game

import (
	"context"
	"fmt"
	"io"
	"time"

	"roomcrawl/internal/config"
	"roomcrawl/internal/event"
	"roomcrawl/internal/geom"
	"roomcrawl/internal/render"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"
)

const (
	// maxStep caps a single simulation step so a stalled terminal does not
	// tunnel entities through walls.
	maxStep     = 0.1
	maxMessages = 50
)

// Settings configures a Game. Session.Seed is ignored: every run asks
// NextSeed for its own.
type Settings struct {
	Session   Options
	TickRate  int
	InputHold time.Duration
	NextSeed  func() int64
}

// SettingsFrom builds Settings from the game section of the configuration.
func SettingsFrom(cfg config.GameConfig, log logrus.FieldLogger) Settings {
	return Settings{
		Session: Options{
			MaxFloor:          cfg.MaxFloor,
			RoomSize:          geom.V(cfg.RoomWidth, cfg.RoomHeight),
			TransitionSeconds: cfg.TransitionSeconds,
			Log:               log,
		},
		TickRate:  cfg.TickRate,
		InputHold: cfg.InputHold,
		NextSeed:  cfg.NextSeed,
	}
}

// Game is the top-level orchestrator: it owns the screen, drives the flow
// state machine and runs one Session at a time.
type Game struct {
	screen   tcell.Screen
	renderer *render.Renderer
	flow     *Flow
	session  *Session
	input    *HoldTracker
	settings Settings
	log      logrus.FieldLogger
	messages []string
	now      func() time.Time
}

// New creates a Game on an initialised screen. It starts at the menu.
func New(screen tcell.Screen, settings Settings) *Game {
	if settings.Session.RoomSize.IsZero() {
		settings.Session.RoomSize = DefaultRoomSize
	}
	if settings.Session.MaxFloor <= 0 {
		settings.Session.MaxFloor = DefaultMaxFloor
	}
	if settings.TickRate <= 0 {
		settings.TickRate = 60
	}
	if settings.InputHold <= 0 {
		settings.InputHold = 250 * time.Millisecond
	}
	if settings.NextSeed == nil {
		settings.NextSeed = func() int64 { return time.Now().UnixNano() }
	}
	if settings.Session.Log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		settings.Session.Log = l
	}

	g := &Game{
		screen:   screen,
		renderer: render.NewRenderer(screen, settings.Session.RoomSize),
		input:    NewHoldTracker(settings.InputHold),
		settings: settings,
		log:      settings.Session.Log,
		now:      time.Now,
	}
	g.flow = NewFlow(g.onTransition)
	return g
}

// Flow exposes the flow state machine.
func (g *Game) Flow() *Flow { return g.flow }

// Session returns the current run, or nil before the first one starts.
func (g *Game) Session() *Session { return g.session }

// Run polls input and ticks the simulation until the player quits, the
// screen closes or ctx is cancelled. It finalises the screen on return.
func (g *Game) Run(ctx context.Context) error {
	defer g.screen.Fini()

	events := make(chan tcell.Event, 16)
	quit := make(chan struct{})
	defer close(quit)
	go func() {
		for {
			ev := g.screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			select {
			case events <- ev:
			case <-quit:
				return
			}
		}
	}()

	ticker := time.NewTicker(time.Second / time.Duration(g.settings.TickRate))
	defer ticker.Stop()

	last := g.now()
	g.draw()
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if g.handleEvent(ev) {
				return nil
			}
			g.draw()
		case <-ticker.C:
			now := g.now()
			dt := min(now.Sub(last).Seconds(), maxStep)
			last = now
			g.tick(dt, now)
			g.draw()
		}
	}
}

// tick advances the running session, if any, by dt seconds.
func (g *Game) tick(dt float64, now time.Time) {
	if !g.flow.Is(StatePlaying) || g.session == nil {
		return
	}
	g.session.Update(dt, g.input.Input(now))
}

// handleEvent applies one terminal event. It returns true when the player
// asked to quit.
func (g *Game) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		g.screen.Sync()
		g.renderer.Resize()
	case *tcell.EventKey:
		return g.handleKey(ev)
	}
	return false
}

func (g *Game) handleKey(ev *tcell.EventKey) bool {
	cmd := keyToCommand(ev)
	if cmd == CommandQuit {
		return true
	}

	switch g.flow.State() {
	case StateMenu:
		if cmd == CommandConfirm {
			g.fire(TransitionStart)
		}
	case StatePlaying:
		if cmd == CommandPause {
			g.fire(TransitionPause)
			return false
		}
		if s, ok := keyToSignal(ev); ok {
			g.input.Press(s, g.now())
		}
	case StatePaused:
		switch cmd {
		case CommandConfirm, CommandPause:
			g.fire(TransitionResume)
		case CommandRestart:
			g.fire(TransitionRestart)
		}
	case StateGameOver, StateVictory:
		switch cmd {
		case CommandRestart:
			g.fire(TransitionRestart)
		case CommandConfirm:
			g.fire(TransitionMenu)
		}
	}
	return false
}

func (g *Game) fire(t Transition) {
	if err := g.flow.Fire(context.Background(), t); err != nil {
		g.log.WithError(err).WithField("transition", t).Warn("flow transition rejected")
	}
}

// onTransition runs after every flow change.
func (g *Game) onTransition(t Transition, from, to State) {
	g.log.WithFields(logrus.Fields{"transition": t, "from": from, "to": to}).Debug("flow")
	g.input.Reset()
	if to == StatePlaying && (t == TransitionStart || t == TransitionRestart) {
		g.startRun()
	}
}

// startRun replaces the session with a fresh one and subscribes the flow
// and message log to its events.
func (g *Game) startRun() {
	opts := g.settings.Session
	opts.Seed = g.settings.NextSeed()
	g.messages = nil

	s := NewSession(opts)
	bus := s.Bus()
	event.On(bus, func(event.PlayerDied) {
		g.addMessage("You died.")
		g.fire(TransitionDie)
	})
	event.On(bus, func(ev event.FloorCompleted) {
		if s.Outcome() == OutcomeVictory {
			g.fire(TransitionWin)
			return
		}
		g.addMessage(fmt.Sprintf("You descend to floor %d.", s.Run().Floor))
	})
	event.On(bus, func(event.RoomCleared) {
		g.addMessage("Room cleared. The doors open.")
	})
	event.On(bus, func(event.PickupCollected) {
		g.addMessage("You feel better.")
	})
	event.On(bus, func(event.PlayerDamaged) {
		g.addMessage("You are hit!")
	})
	g.session = s
	g.addMessage(fmt.Sprintf("Floor 1 of %d. Clear the rooms and find the stairs.", s.MaxFloor()))
}

func (g *Game) addMessage(msg string) {
	g.messages = append(g.messages, msg)
	if len(g.messages) > maxMessages {
		g.messages = g.messages[len(g.messages)-maxMessages:]
	}
}

func (g *Game) stats() render.Stats {
	if g.session == nil {
		return render.Stats{MaxFloor: g.settings.Session.MaxFloor}
	}
	run := g.session.Run()
	return render.Stats{
		Health:    run.PlayerHealth,
		MaxHealth: run.MaxHealth,
		Floor:     run.Floor,
		MaxFloor:  g.session.MaxFloor(),
		Kills:     run.EnemiesKilled,
		Rooms:     run.RoomsVisited,
		Pickups:   run.PickupsCollected,
		RunID:     run.ID,
	}
}

func (g *Game) frame() render.Frame {
	return render.Frame{
		World:    g.session.World(),
		Floor:    g.session.Floor(),
		Stats:    g.stats(),
		Visited:  g.session.Run().Visited,
		Fade:     g.session.Fade(),
		Messages: g.messages,
	}
}

func (g *Game) draw() {
	switch g.flow.State() {
	case StateMenu:
		g.renderer.DrawScreen(render.ScreenMenu, g.stats())
	case StatePlaying:
		g.renderer.DrawFrame(g.frame())
	case StatePaused:
		g.renderer.DrawFrame(g.frame())
		g.renderer.DrawScreen(render.ScreenPaused, g.stats())
	case StateGameOver:
		g.renderer.DrawScreen(render.ScreenGameOver, g.stats())
	case StateVictory:
		g.renderer.DrawScreen(render.ScreenVictory, g.stats())
	}
}
