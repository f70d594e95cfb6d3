package game

import (
	"io"
	"math/rand"

	"roomcrawl/internal/component"
	"roomcrawl/internal/dungeon"
	"roomcrawl/internal/ecs"
	"roomcrawl/internal/event"
	"roomcrawl/internal/factory"
	"roomcrawl/internal/geom"
	"roomcrawl/internal/system"

	"github.com/sirupsen/logrus"
)

// Defaults used when Options leaves a field zero.
const (
	DefaultMaxFloor   = 3
	DefaultTransition = 0.3
	// DropChance is the percentage of kills that leave a health pickup.
	DropChance = 30
)

// DefaultRoomSize is the play area of every room in world units.
var DefaultRoomSize = geom.V(800, 600)

// Outcome is how a session ended.
type Outcome uint8

const (
	OutcomeNone Outcome = iota
	OutcomeDefeat
	OutcomeVictory
)

func (o Outcome) String() string {
	switch o {
	case OutcomeDefeat:
		return "defeat"
	case OutcomeVictory:
		return "victory"
	}
	return "none"
}

// Options configures a Session.
type Options struct {
	MaxFloor          int
	RoomSize          geom.Vec2
	TransitionSeconds float64
	Seed              int64
	Log               logrus.FieldLogger
}

// Session is one run of the game: the world of the current room, the floor
// layout, the run counters and the event bus wiring them together. It is
// driven by Update and is not safe for concurrent use.
type Session struct {
	opts  Options
	log   logrus.FieldLogger
	rng   *rand.Rand
	world *ecs.World
	bus   *event.Bus
	floor *dungeon.Floor
	run   *RunState

	player  ecs.EntityID
	outcome Outcome

	fading    bool
	fadeTimer float64
	fadeDoor  dungeon.Direction
}

// NewSession generates floor 1 and puts the player in its start room.
func NewSession(opts Options) *Session {
	if opts.MaxFloor <= 0 {
		opts.MaxFloor = DefaultMaxFloor
	}
	if opts.RoomSize.IsZero() {
		opts.RoomSize = DefaultRoomSize
	}
	if opts.TransitionSeconds <= 0 {
		opts.TransitionSeconds = DefaultTransition
	}
	if opts.Log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		opts.Log = l
	}

	s := &Session{
		opts:  opts,
		rng:   rand.New(rand.NewSource(opts.Seed)),
		world: ecs.NewWorld(),
		bus:   event.New(),
		run:   NewRunState(opts.Seed),
	}
	s.log = opts.Log.WithFields(logrus.Fields{
		"run_id": s.run.ID,
		"seed":   opts.Seed,
	})
	s.subscribe()
	s.loadFloor()
	s.log.Info("run started")
	return s
}

func (s *Session) World() *ecs.World     { return s.world }
func (s *Session) Bus() *event.Bus       { return s.bus }
func (s *Session) Floor() *dungeon.Floor { return s.floor }
func (s *Session) Run() *RunState        { return s.run }
func (s *Session) Outcome() Outcome      { return s.outcome }
func (s *Session) MaxFloor() int         { return s.opts.MaxFloor }

// Player returns the player entity of the current room.
func (s *Session) Player() (ecs.EntityID, bool) {
	if !s.world.Active(s.player) {
		return ecs.NilEntity, false
	}
	return s.player, true
}

// Fading reports whether a room transition is in progress.
func (s *Session) Fading() bool { return s.fading }

// Fade is the opacity of the transition overlay, from 0 (none) to 1.
func (s *Session) Fade() float64 {
	if !s.fading {
		return 0
	}
	f := 1 - s.fadeTimer/s.opts.TransitionSeconds
	return max(0, min(1, f))
}

func (s *Session) subscribe() {
	event.On(s.bus, func(ev event.EnemyDied) {
		s.run.EnemiesKilled++
		s.log.WithFields(logrus.Fields{"entity": ev.EntityID, "kills": s.run.EnemiesKilled}).Debug("enemy died")
		if s.rng.Intn(100) < DropChance {
			factory.NewHealthPickup(s.world, geom.V(ev.X, ev.Y))
		}
	})
	event.On(s.bus, func(ev event.PickupCollected) {
		s.run.PickupsCollected++
		s.syncHealth()
	})
	event.On(s.bus, func(ev event.PlayerDamaged) {
		s.syncHealth()
		s.log.WithField("health", s.run.PlayerHealth).Debug("player damaged")
	})
	event.On(s.bus, func(event.PlayerDied) {
		s.syncHealth()
		s.outcome = OutcomeDefeat
		s.log.WithFields(logrus.Fields{
			"floor": s.run.Floor,
			"kills": s.run.EnemiesKilled,
			"rooms": s.run.RoomsVisited,
		}).Info("player died")
	})
	event.On(s.bus, func(ev event.RoomCleared) {
		s.log.WithField("room", ev.RoomID).Debug("room cleared")
	})
	event.On(s.bus, func(ev event.FloorCompleted) {
		if ev.FloorNumber >= s.opts.MaxFloor {
			s.outcome = OutcomeVictory
			s.log.WithField("kills", s.run.EnemiesKilled).Info("run won")
			return
		}
		s.run.AdvanceFloor()
		s.loadFloor()
	})
}

// Update advances the session by dt seconds. While a room transition fades
// only the fade timer runs. A finished session ignores updates.
func (s *Session) Update(dt float64, in system.Input) {
	if s.outcome != OutcomeNone {
		return
	}
	if s.fading {
		s.fadeTimer -= dt
		if s.fadeTimer <= 0 {
			s.fading = false
			if s.floor.Traverse(s.fadeDoor) {
				s.enterRoom()
			}
		}
		return
	}

	var playerPos geom.Vec2
	if id, ok := s.Player(); ok {
		playerPos, _ = s.world.Position(id)
	}

	system.UpdatePlayerControl(s.world, dt, in)
	system.UpdateAI(s.world, dt, playerPos, s.rng)
	system.UpdatePhysics(s.world, dt)
	system.ResolveCollisions(s.world, s.bus)
	system.CollectPickups(s.world, s.bus)
	system.TickHealth(s.world, dt)
	s.world.Cleanup()

	s.floor.CurrentRoom().Update(s.world, s.bus)
	if s.outcome != OutcomeNone {
		return
	}
	s.checkExits()
	s.syncHealth()
}

// checkExits starts a door transition or completes the floor.
func (s *Session) checkExits() {
	id, ok := s.Player()
	if !ok {
		return
	}
	pos, _ := s.world.Position(id)
	room := s.floor.CurrentRoom()

	if door, ok := room.DoorAt(pos, geom.V(32, 32)); ok {
		s.fading = true
		s.fadeTimer = s.opts.TransitionSeconds
		s.fadeDoor = door.Direction
		return
	}
	if room.ExitAt(pos) {
		s.bus.Publish(event.FloorCompleted{FloorNumber: s.run.Floor})
	}
}

func (s *Session) loadFloor() {
	s.floor = dungeon.Generate(dungeon.Config{
		Number:   s.run.Floor,
		RoomSize: s.opts.RoomSize,
		Rand:     s.rng,
	})
	s.log.WithFields(logrus.Fields{
		"floor":     s.run.Floor,
		"rooms":     len(s.floor.Rooms()),
		"reachable": s.floor.Reachable(),
		"exit":      s.floor.ExitRoomID(),
	}).Info("floor generated")
	s.enterRoom()
}

// enterRoom rebuilds the world for the floor's current room.
func (s *Session) enterRoom() {
	room := s.floor.CurrentRoom()
	s.world.Clear()

	s.player = factory.NewPlayer(s.world, s.floor.PlayerSpawn(), room.Bounds())
	if hp, ok := ecs.GetAs[component.Health](s.world, s.player); ok {
		hp.Current = s.run.PlayerHealth
		hp.Max = s.run.MaxHealth
		s.world.Add(s.player, hp)
	}

	spawned := 0
	if room.Type() == dungeon.RoomCombat && !room.Cleared() {
		spawned = s.spawnEnemies(room)
	}
	s.run.VisitRoom(room.ID())

	s.log.WithFields(logrus.Fields{
		"floor":   s.run.Floor,
		"room":    room.ID(),
		"type":    room.Type(),
		"enemies": spawned,
	}).Debug("room entered")
	s.bus.Publish(event.RoomEntered{RoomID: room.ID()})
}

// spawnEnemies places a floor-scaled number of enemies at least 50 units
// inside the walls.
func (s *Session) spawnEnemies(room *dungeon.Room) int {
	n := rollEnemyCount(s.run.Floor, s.rng)
	area := room.Bounds().Inset(dungeon.SpawnInset)
	for range n {
		pos := geom.V(
			area.X+s.rng.Float64()*area.W,
			area.Y+s.rng.Float64()*area.H,
		)
		factory.NewEnemy(s.world, rollEnemyKind(s.rng), pos, room.Bounds())
	}
	return n
}

// syncHealth copies the player's health into the run counters.
func (s *Session) syncHealth() {
	if hp, ok := ecs.GetAs[component.Health](s.world, s.player); ok {
		s.run.PlayerHealth = hp.Current
	}
}
