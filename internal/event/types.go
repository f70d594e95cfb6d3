package event

import "roomcrawl/internal/ecs"

// Kind identifies an event payload type. Handlers subscribe per Kind.
type Kind uint8

const (
	KindEnemyDied Kind = iota
	KindPlayerDamaged
	KindPlayerDied
	KindRoomCleared
	KindPickupCollected
	KindRoomEntered
	KindFloorCompleted
)

var kindNames = [...]string{
	KindEnemyDied:       "enemy_died",
	KindPlayerDamaged:   "player_damaged",
	KindPlayerDied:      "player_died",
	KindRoomCleared:     "room_cleared",
	KindPickupCollected: "pickup_collected",
	KindRoomEntered:     "room_entered",
	KindFloorCompleted:  "floor_completed",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// Event is implemented by every payload published on a Bus.
type Event interface {
	Kind() Kind
}

// EnemyDied is published when an enemy's health reaches zero.
type EnemyDied struct {
	EntityID ecs.EntityID
	X, Y     float64
}

// PlayerDamaged is published when the player survives a hit.
type PlayerDamaged struct {
	Amount   int
	SourceID ecs.EntityID
}

// PlayerDied is published when the player's health reaches zero.
type PlayerDied struct{}

type RoomCleared struct {
	RoomID int
}

// PickupCollected carries the pickup kind as its integer value.
type PickupCollected struct {
	PickupID ecs.EntityID
	Effect   int
	Value    int
}

type RoomEntered struct {
	RoomID int
}

// FloorCompleted is published when the player steps on a cleared exit pad.
type FloorCompleted struct {
	FloorNumber int
}

func (EnemyDied) Kind() Kind       { return KindEnemyDied }
func (PlayerDamaged) Kind() Kind   { return KindPlayerDamaged }
func (PlayerDied) Kind() Kind      { return KindPlayerDied }
func (RoomCleared) Kind() Kind     { return KindRoomCleared }
func (PickupCollected) Kind() Kind { return KindPickupCollected }
func (RoomEntered) Kind() Kind     { return KindRoomEntered }
func (FloorCompleted) Kind() Kind  { return KindFloorCompleted }
