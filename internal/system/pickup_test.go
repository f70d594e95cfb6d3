package system

import (
	"testing"

	"roomcrawl/internal/component"
	"roomcrawl/internal/ecs"
	"roomcrawl/internal/event"
	"roomcrawl/internal/geom"
)

func spawnPickup(w *ecs.World, x, y float64, kind component.PickupKind, value int) ecs.EntityID {
	id := spawnAt(w, x, y)
	w.Add(id, component.Pickup{Kind: kind, Value: value})
	w.Add(id, component.NewHurtbox(geom.V(16, 16)))
	w.Add(id, component.PickupTag{})
	return id
}

func TestHealthPickupHeals(t *testing.T) {
	w := ecs.NewWorld()
	bus := event.New()
	rec := newRecorder(bus)
	player := spawnPlayer(w, 100, 100, 3)
	hp := health(w, player)
	hp.Current = 1
	w.Add(player, hp)
	pickup := spawnPickup(w, 100, 100, component.PickupHealth, 1)

	CollectPickups(w, bus)

	if got := health(w, player).Current; got != 2 {
		t.Fatalf("player HP = %d; want 2", got)
	}
	if !w.Get(pickup, component.CPickup).(component.Pickup).Collected {
		t.Fatal("pickup not marked collected")
	}
	if w.Active(pickup) {
		t.Fatal("collected pickup still active")
	}
	if rec.count(event.KindPickupCollected) != 1 {
		t.Fatal("expected one PickupCollected event")
	}
	ev := rec.events[0].(event.PickupCollected)
	if ev.PickupID != pickup || ev.Value != 1 || ev.Effect != int(component.PickupHealth) {
		t.Fatalf("PickupCollected = %+v", ev)
	}
}

func TestHealthPickupCapsAtMax(t *testing.T) {
	w := ecs.NewWorld()
	bus := event.New()
	player := spawnPlayer(w, 100, 100, 3)
	pickup := spawnPickup(w, 110, 105, component.PickupHealth, 1)

	CollectPickups(w, bus)

	if got := health(w, player).Current; got != 3 {
		t.Fatalf("player HP = %d; want capped 3", got)
	}
	if w.Active(pickup) {
		t.Fatal("pickup should be consumed even at full health")
	}
}

func TestPickupOutOfReach(t *testing.T) {
	w := ecs.NewWorld()
	bus := event.New()
	rec := newRecorder(bus)
	spawnPlayer(w, 100, 100, 3)
	pickup := spawnPickup(w, 200, 100, component.PickupHealth, 1)

	CollectPickups(w, bus)

	if !w.Active(pickup) || len(rec.events) != 0 {
		t.Fatal("distant pickup was collected")
	}
}

func TestUnimplementedPickupKindsStillCollect(t *testing.T) {
	w := ecs.NewWorld()
	bus := event.New()
	rec := newRecorder(bus)
	player := spawnPlayer(w, 100, 100, 3)
	spawnPickup(w, 100, 100, component.PickupSpeedBoost, 2)

	CollectPickups(w, bus)

	if rec.count(event.KindPickupCollected) != 1 {
		t.Fatal("speed pickup should still be collected")
	}
	ph := w.Get(player, component.CPhysics).(component.Physics)
	if ph.Speed != 120 {
		t.Fatalf("speed pickup changed speed to %f", ph.Speed)
	}
}

func TestPickupsWithoutPlayer(t *testing.T) {
	w := ecs.NewWorld()
	bus := event.New()
	pickup := spawnPickup(w, 100, 100, component.PickupHealth, 1)

	CollectPickups(w, bus)

	if !w.Active(pickup) {
		t.Fatal("pickup collected with no player in the world")
	}
}
