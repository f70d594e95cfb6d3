package system

import (
	"roomcrawl/internal/component"
	"roomcrawl/internal/ecs"
	"roomcrawl/internal/event"
	"roomcrawl/internal/geom"
)

// recorder collects every event published on a bus.
type recorder struct {
	events []event.Event
}

func newRecorder(bus *event.Bus) *recorder {
	r := &recorder{}
	for k := event.KindEnemyDied; k <= event.KindFloorCompleted; k++ {
		bus.Subscribe(k, func(ev event.Event) { r.events = append(r.events, ev) })
	}
	return r
}

func (r *recorder) count(kind event.Kind) int {
	n := 0
	for _, ev := range r.events {
		if ev.Kind() == kind {
			n++
		}
	}
	return n
}

func spawnAt(w *ecs.World, x, y float64) ecs.EntityID {
	id := w.CreateEntity()
	w.SetPosition(id, geom.V(x, y))
	return id
}

// spawnPlayer creates a minimal player: control, physics, hurtbox, health, hitbox.
func spawnPlayer(w *ecs.World, x, y float64, hp int) ecs.EntityID {
	id := spawnAt(w, x, y)
	ph := component.NewPhysics(120)
	ph.ClampToRoom = false
	w.Add(id, ph)
	w.Add(id, component.NewPlayerControl())
	w.Add(id, component.NewHurtbox(geom.V(32, 32)))
	w.Add(id, component.NewHealth(hp, 0.5))
	w.Add(id, component.NewHitbox(geom.V(40, 20), 1, component.FactionPlayer))
	return id
}

func spawnEnemy(w *ecs.World, x, y float64, hp int) ecs.EntityID {
	id := spawnAt(w, x, y)
	w.Add(id, component.NewHurtbox(geom.V(28, 28)))
	w.Add(id, component.NewHealth(hp, 0))
	w.Add(id, component.EnemyTag{})
	return id
}

func health(w *ecs.World, id ecs.EntityID) component.Health {
	return w.Get(id, component.CHealth).(component.Health)
}

func position(w *ecs.World, id ecs.EntityID) geom.Vec2 {
	p, _ := w.Position(id)
	return p
}
