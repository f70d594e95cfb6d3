package system

import (
	"roomcrawl/internal/component"
	"roomcrawl/internal/ecs"
)

// ClampHalfExtent is the half-size kept inside room bounds when clamping.
const ClampHalfExtent = 16.0

// UpdatePhysics integrates velocity into position for every entity with a
// Physics component, applies friction, and clamps to the room when asked.
// Bouncing off walls is not handled here.
func UpdatePhysics(w *ecs.World, dt float64) {
	for _, id := range w.Query(component.CPhysics) {
		ph := w.Get(id, component.CPhysics).(component.Physics)
		pos, _ := w.Position(id)

		pos = pos.Add(ph.Velocity.Scale(dt))

		if ph.Friction > 0 {
			// A large dt must not flip the velocity; stop instead.
			ph.Velocity = ph.Velocity.Scale(max(0, 1-ph.Friction*dt))
			w.Add(id, ph)
		}

		if ph.ClampToRoom {
			pos = ph.RoomBounds.ClampInside(pos, ClampHalfExtent)
		}
		w.SetPosition(id, pos)
	}
}
