package dungeon

import (
	"math/rand"

	"roomcrawl/internal/geom"

	"github.com/zyedidia/generic/mapset"
)

// BaseRooms is the room budget of floor 0; floor N gets BaseRooms+N.
const BaseRooms = 4

// Config drives generation of one floor.
type Config struct {
	Number   int
	RoomSize geom.Vec2
	Rand     *rand.Rand
}

// Floor is a connected grid of rooms plus the cursor of the room the player
// is in. Room ids are assigned in placement order; the start room is id 0
// at grid (0,0).
type Floor struct {
	number    int
	roomSize  geom.Vec2
	rooms     []*Room
	positions []GridPos
	grid      map[GridPos]int
	exitID    int

	current  int
	previous int
	entry    Direction
}

// Generate lays out a floor by random frontier expansion from the origin.
// The room farthest from the start (Manhattan, lowest id on ties) becomes
// the exit.
func Generate(cfg Config) *Floor {
	f := &Floor{
		number:   cfg.Number,
		roomSize: cfg.RoomSize,
		grid:     make(map[GridPos]int),
		exitID:   NoRoom,
		previous: NoRoom,
		entry:    South,
	}

	start := GridPos{}
	f.place(RoomStart, start)

	var frontier []GridPos
	queued := mapset.New[GridPos]()
	enqueue := func(p GridPos) {
		for _, d := range Directions {
			n := p.Step(d)
			if _, placed := f.grid[n]; placed || queued.Has(n) {
				continue
			}
			queued.Put(n)
			frontier = append(frontier, n)
		}
	}
	enqueue(start)

	budget := BaseRooms + cfg.Number
	for len(f.rooms) < budget && len(frontier) > 0 {
		i := cfg.Rand.Intn(len(frontier))
		pos := frontier[i]
		frontier = append(frontier[:i], frontier[i+1:]...)
		queued.Remove(pos)

		if _, placed := f.grid[pos]; placed {
			continue
		}
		f.place(RoomCombat, pos)
		f.connect(pos)
		enqueue(pos)
	}

	if far := f.farthestFrom(start); far != 0 {
		f.rooms[far] = NewRoom(far, RoomExit, f.roomSize)
		f.connect(f.positions[far])
		f.exitID = far
	}
	return f
}

func (f *Floor) place(typ RoomType, pos GridPos) {
	id := len(f.rooms)
	f.rooms = append(f.rooms, NewRoom(id, typ, f.roomSize))
	f.positions = append(f.positions, pos)
	f.grid[pos] = id
}

// connect links the room at pos both ways with every placed neighbour.
func (f *Floor) connect(pos GridPos) {
	room := f.rooms[f.grid[pos]]
	for _, d := range Directions {
		nid, ok := f.grid[pos.Step(d)]
		if !ok {
			continue
		}
		room.ConnectDoor(d, nid)
		f.rooms[nid].ConnectDoor(d.Opposite(), room.ID())
	}
}

func (f *Floor) farthestFrom(start GridPos) int {
	best, bestDist := 0, 0
	for id, pos := range f.positions {
		if d := pos.Manhattan(start); d > bestDist {
			best, bestDist = id, d
		}
	}
	return best
}

func (f *Floor) Number() int               { return f.number }
func (f *Floor) RoomSize() geom.Vec2       { return f.roomSize }
func (f *Floor) Rooms() []*Room            { return f.rooms }
func (f *Floor) Positions() []GridPos      { return f.positions }
func (f *Floor) ExitRoomID() int           { return f.exitID }
func (f *Floor) CurrentRoomID() int        { return f.current }
func (f *Floor) PreviousRoomID() int       { return f.previous }
func (f *Floor) EntryDirection() Direction { return f.entry }
func (f *Floor) CurrentRoom() *Room        { return f.rooms[f.current] }

// Room looks a room up by id.
func (f *Floor) Room(id int) (*Room, bool) {
	if id < 0 || id >= len(f.rooms) {
		return nil, false
	}
	return f.rooms[id], true
}

// RoomAt returns the room placed on grid cell p.
func (f *Floor) RoomAt(p GridPos) (*Room, bool) {
	id, ok := f.grid[p]
	if !ok {
		return nil, false
	}
	return f.rooms[id], true
}

// Position returns the grid cell of room id.
func (f *Floor) Position(id int) (GridPos, bool) {
	if id < 0 || id >= len(f.positions) {
		return GridPos{}, false
	}
	return f.positions[id], true
}

// TransitionTo moves the cursor to target, recording entry as the wall the
// player comes in through. Unknown targets leave the floor unchanged.
func (f *Floor) TransitionTo(target int, entry Direction) bool {
	if _, ok := f.Room(target); !ok {
		return false
	}
	f.previous = f.current
	f.current = target
	f.entry = entry
	return true
}

// Traverse walks through the current room's door on wall d. The door must be
// open and connected.
func (f *Floor) Traverse(d Direction) bool {
	door := f.CurrentRoom().Door(d)
	if !door.Connected() || door.Locked {
		return false
	}
	return f.TransitionTo(door.Target, d.Opposite())
}

// PlayerSpawn is the centre of the start room, or the spot just inside the
// wall the player entered through.
func (f *Floor) PlayerSpawn() geom.Vec2 {
	if f.current == 0 {
		return f.roomSize.Scale(0.5)
	}
	return f.CurrentRoom().SpawnFrom(f.entry)
}

// Reachable counts rooms reachable from the start through connected doors.
func (f *Floor) Reachable() int {
	seen := mapset.New[int]()
	queue := []int{0}
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		if seen.Has(id) {
			continue
		}
		seen.Put(id)
		for _, d := range f.rooms[id].Doors() {
			if d.Connected() && !seen.Has(d.Target) {
				queue = append(queue, d.Target)
			}
		}
	}
	return seen.Size()
}
