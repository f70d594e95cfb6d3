package component

import (
	"roomcrawl/internal/ecs"
	"roomcrawl/internal/geom"
)

const CPhysics ecs.ComponentType = 2

// Physics drives position integration for an entity.
type Physics struct {
	Velocity    geom.Vec2
	Friction    float64 // velocity decay per second; 0 disables
	Speed       float64
	RoomBounds  geom.Rect
	ClampToRoom bool
}

// NewPhysics returns a Physics component clamped to its room.
func NewPhysics(speed float64) Physics {
	return Physics{Speed: speed, ClampToRoom: true}
}

func (Physics) Type() ecs.ComponentType { return CPhysics }
