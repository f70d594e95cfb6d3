package game

import (
	"github.com/google/uuid"
	"github.com/zyedidia/generic/mapset"
)

// Starting values for a fresh run.
const (
	StartHealth = 3
	StartFloor  = 1
)

// RunState is the progress carried across rooms and floors of one run.
// RoomsVisited counts first visits and keeps accumulating across floors;
// the visited set itself is per floor.
type RunState struct {
	ID               string
	Seed             int64
	PlayerHealth     int
	MaxHealth        int
	Floor            int
	RoomsVisited     int
	EnemiesKilled    int
	PickupsCollected int

	visited mapset.Set[int]
}

// NewRunState starts a run identified by a fresh UUID.
func NewRunState(seed int64) *RunState {
	r := &RunState{Seed: seed}
	r.Reset()
	return r
}

// Reset restores every counter to the start of a run and assigns a new ID.
func (r *RunState) Reset() {
	r.ID = uuid.NewString()
	r.PlayerHealth = StartHealth
	r.MaxHealth = StartHealth
	r.Floor = StartFloor
	r.RoomsVisited = 0
	r.EnemiesKilled = 0
	r.PickupsCollected = 0
	r.visited = mapset.New[int]()
}

// VisitRoom marks a room of the current floor as visited. It reports whether
// this was the first visit.
func (r *RunState) VisitRoom(id int) bool {
	if r.visited.Has(id) {
		return false
	}
	r.visited.Put(id)
	r.RoomsVisited++
	return true
}

// Visited reports whether room id of the current floor has been entered.
func (r *RunState) Visited(id int) bool { return r.visited.Has(id) }

// VisitedOnFloor is the number of distinct rooms entered on this floor.
func (r *RunState) VisitedOnFloor() int { return r.visited.Size() }

// AdvanceFloor moves to the next floor and forgets which rooms were visited.
func (r *RunState) AdvanceFloor() {
	r.Floor++
	r.visited = mapset.New[int]()
}
