package system

import (
	"roomcrawl/internal/component"
	"roomcrawl/internal/ecs"
)

// TickHealth counts down invincibility windows.
func TickHealth(w *ecs.World, dt float64) {
	for _, id := range w.Query(component.CHealth) {
		hp := w.Get(id, component.CHealth).(component.Health)
		if hp.InvincibilityTimer <= 0 {
			continue
		}
		hp.Tick(dt)
		w.Add(id, hp)
	}
}
