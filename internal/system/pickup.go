package system

import (
	"roomcrawl/internal/component"
	"roomcrawl/internal/ecs"
	"roomcrawl/internal/event"
)

// CollectPickups lets the player pick up every overlapping, uncollected
// pickup. Nothing happens when there is no player or it has no hurtbox.
func CollectPickups(w *ecs.World, bus *event.Bus) {
	player, ok := w.First(component.CPlayerControl)
	if !ok {
		return
	}
	playerBox, ok := ecs.GetAs[component.Hurtbox](w, player)
	if !ok {
		return
	}
	playerPos, _ := w.Position(player)
	playerBounds := playerBox.Bounds(playerPos)

	for _, id := range w.Query(component.CPickup, component.CHurtbox) {
		p := w.Get(id, component.CPickup).(component.Pickup)
		if p.Collected {
			continue
		}
		pos, _ := w.Position(id)
		if !playerBounds.Intersects(w.Get(id, component.CHurtbox).(component.Hurtbox).Bounds(pos)) {
			continue
		}

		p.Collected = true
		w.Add(id, p)
		w.Destroy(id)
		applyPickup(w, player, p)

		bus.Publish(event.PickupCollected{PickupID: id, Effect: int(p.Kind), Value: p.Value})
	}
}

// applyPickup applies a pickup's effect to the player.
// SpeedBoost and DamageUp exist in the data model but do nothing yet.
func applyPickup(w *ecs.World, player ecs.EntityID, p component.Pickup) {
	switch p.Kind {
	case component.PickupHealth:
		if hp, ok := ecs.GetAs[component.Health](w, player); ok {
			hp.Heal(p.Value)
			w.Add(player, hp)
		}
	}
}
