package dungeon

// Direction names a wall of a room.
type Direction uint8

const (
	North Direction = iota
	South
	East
	West
)

// Directions lists every direction in door order.
var Directions = [4]Direction{North, South, East, West}

// Opposite returns the facing wall: North<->South, East<->West.
func (d Direction) Opposite() Direction {
	switch d {
	case North:
		return South
	case South:
		return North
	case East:
		return West
	default:
		return East
	}
}

func (d Direction) String() string {
	switch d {
	case North:
		return "north"
	case South:
		return "south"
	case East:
		return "east"
	case West:
		return "west"
	}
	return "unknown"
}

// GridPos is a room's cell on the floor layout. North is -Y.
type GridPos struct {
	X, Y int
}

// Step returns the neighbouring cell in direction d.
func (p GridPos) Step(d Direction) GridPos {
	switch d {
	case North:
		return GridPos{p.X, p.Y - 1}
	case South:
		return GridPos{p.X, p.Y + 1}
	case East:
		return GridPos{p.X + 1, p.Y}
	default:
		return GridPos{p.X - 1, p.Y}
	}
}

// Manhattan returns |dx|+|dy| between p and q.
func (p GridPos) Manhattan(q GridPos) int {
	return abs(p.X-q.X) + abs(p.Y-q.Y)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
