package dungeon

import (
	"roomcrawl/internal/component"
	"roomcrawl/internal/ecs"
	"roomcrawl/internal/event"
	"roomcrawl/internal/geom"
)

// RoomType decides how a room is cleared.
type RoomType uint8

const (
	RoomStart RoomType = iota
	RoomCombat
	RoomExit
)

func (t RoomType) String() string {
	switch t {
	case RoomStart:
		return "start"
	case RoomCombat:
		return "combat"
	case RoomExit:
		return "exit"
	}
	return "unknown"
}

// NoRoom marks a door without a connection.
const NoRoom = -1

// Room layout constants, in world units.
const (
	WallInset   = 40.0
	DoorWidth   = 60.0
	DoorDepth   = 60.0
	SpawnInset  = 50.0
	ExitPadSize = 60.0
)

// Door is a trigger rectangle on one wall. Target is NoRoom until connected.
type Door struct {
	Direction Direction
	Target    int
	Locked    bool
	Bounds    geom.Rect
}

// Connected reports whether the door leads somewhere.
func (d Door) Connected() bool { return d.Target != NoRoom }

// Room is one screen of a floor. Doors start locked and open when the room
// is cleared.
type Room struct {
	id      int
	typ     RoomType
	size    geom.Vec2
	bounds  geom.Rect
	doors   [4]Door
	cleared bool
}

// NewRoom builds a room of the given size with four unconnected, locked doors.
func NewRoom(id int, typ RoomType, size geom.Vec2) *Room {
	r := &Room{
		id:     id,
		typ:    typ,
		size:   size,
		bounds: geom.R(0, 0, size.X, size.Y).Inset(WallInset),
	}
	cx := size.X/2 - DoorWidth/2
	cy := size.Y/2 - DoorWidth/2
	// Each trigger spans the wall and reaches 20 units into the walkable area.
	rects := [4]geom.Rect{
		North: geom.R(cx, 0, DoorWidth, DoorDepth),
		South: geom.R(cx, size.Y-DoorDepth, DoorWidth, DoorDepth),
		East:  geom.R(size.X-DoorDepth, cy, DoorDepth, DoorWidth),
		West:  geom.R(0, cy, DoorDepth, DoorWidth),
	}
	for _, d := range Directions {
		r.doors[d] = Door{Direction: d, Target: NoRoom, Locked: true, Bounds: rects[d]}
	}
	return r
}

func (r *Room) ID() int           { return r.id }
func (r *Room) Type() RoomType    { return r.typ }
func (r *Room) Size() geom.Vec2   { return r.size }
func (r *Room) Bounds() geom.Rect { return r.bounds }
func (r *Room) Cleared() bool     { return r.cleared }

// Door returns the door on wall d.
func (r *Room) Door(d Direction) *Door { return &r.doors[d] }

// Doors returns a copy of all four doors in N, S, E, W order.
func (r *Room) Doors() [4]Door { return r.doors }

// ConnectDoor points the door on wall d at room target.
func (r *Room) ConnectDoor(d Direction, target int) bool {
	if d > West || target < 0 {
		return false
	}
	r.doors[d].Target = target
	return true
}

// Update advances the clear state. Combat rooms clear once no enemy is left;
// start and exit rooms clear on their first update. RoomCleared is published
// exactly once per room.
func (r *Room) Update(w *ecs.World, bus *event.Bus) {
	if r.cleared {
		return
	}
	if r.typ == RoomCombat && w.CountWith(component.CEnemyTag) > 0 {
		return
	}
	r.cleared = true
	r.unlockDoors()
	bus.Publish(event.RoomCleared{RoomID: r.id})
}

func (r *Room) unlockDoors() {
	for i := range r.doors {
		if r.doors[i].Connected() {
			r.doors[i].Locked = false
		}
	}
}

// DoorAt returns the first open, connected door overlapping a box of
// playerSize centred on playerPos.
func (r *Room) DoorAt(playerPos, playerSize geom.Vec2) (Door, bool) {
	box := geom.Centered(playerPos, playerSize)
	for _, d := range r.doors {
		if d.Connected() && !d.Locked && box.Intersects(d.Bounds) {
			return d, true
		}
	}
	return Door{}, false
}

// ExitPad is the stairs rectangle in the middle of the room.
func (r *Room) ExitPad() geom.Rect {
	return geom.Centered(r.size.Scale(0.5), geom.V(ExitPadSize, ExitPadSize))
}

// ExitAt reports whether a player at pos stands on the exit pad of a cleared
// exit room.
func (r *Room) ExitAt(pos geom.Vec2) bool {
	if r.typ != RoomExit || !r.cleared {
		return false
	}
	return r.ExitPad().Intersects(geom.Centered(pos, geom.V(32, 32)))
}

// SpawnFrom returns where a player entering through wall d appears: 50 units
// in from that wall, centred on the other axis, clear of the door trigger.
func (r *Room) SpawnFrom(d Direction) geom.Vec2 {
	b := r.bounds
	switch d {
	case North:
		return geom.V(r.size.X/2, b.Y+SpawnInset)
	case South:
		return geom.V(r.size.X/2, b.Bottom()-SpawnInset)
	case East:
		return geom.V(b.Right()-SpawnInset, r.size.Y/2)
	case West:
		return geom.V(b.X+SpawnInset, r.size.Y/2)
	}
	return r.size.Scale(0.5)
}
