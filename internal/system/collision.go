package system

import (
	"roomcrawl/internal/component"
	"roomcrawl/internal/ecs"
	"roomcrawl/internal/event"
)

const (
	// ContactDamage is dealt to the player when an enemy body touches it.
	ContactDamage = 1
	// KnockbackDistance is how far the player is pushed away from an enemy
	// on contact.
	KnockbackDistance = 20.0
)

// ResolveCollisions runs the hitbox→hurtbox damage pass followed by the
// enemy contact pass. Both run every tick.
func ResolveCollisions(w *ecs.World, bus *event.Bus) {
	resolveHits(w, bus)
	resolveContact(w, bus)
}

func resolveHits(w *ecs.World, bus *event.Bus) {
	var attackers []ecs.EntityID
	for _, id := range w.Query(component.CHitbox) {
		if w.Get(id, component.CHitbox).(component.Hitbox).Active {
			attackers = append(attackers, id)
		}
	}
	targets := w.Query(component.CHurtbox, component.CHealth)

	for _, attacker := range attackers {
		hitbox := w.Get(attacker, component.CHitbox).(component.Hitbox)
		attackerPos, _ := w.Position(attacker)
		hitBounds := hitbox.Bounds(attackerPos)

		for _, target := range targets {
			if target == attacker {
				continue
			}
			hp := w.Get(target, component.CHealth).(component.Health)
			if !hp.Alive() || hp.Invincible() {
				continue
			}
			if own, ok := ecs.GetAs[component.Hitbox](w, target); ok && own.Faction == hitbox.Faction {
				continue
			}
			hurtbox := w.Get(target, component.CHurtbox).(component.Hurtbox)
			targetPos, _ := w.Position(target)
			if !hitBounds.Intersects(hurtbox.Bounds(targetPos)) {
				continue
			}

			hp.TakeDamage(hitbox.Damage)
			w.Add(target, hp)
			reportDamage(w, bus, target, attacker, hitbox.Damage, hp)
		}
	}
}

func resolveContact(w *ecs.World, bus *event.Bus) {
	players := w.Query(component.CPlayerControl, component.CHurtbox, component.CHealth)
	if len(players) == 0 {
		return
	}
	for _, enemy := range w.Query(component.CEnemyTag, component.CHurtbox) {
		enemyPos, _ := w.Position(enemy)
		enemyBounds := w.Get(enemy, component.CHurtbox).(component.Hurtbox).Bounds(enemyPos)

		for _, player := range players {
			hp := w.Get(player, component.CHealth).(component.Health)
			if !hp.Alive() || hp.Invincible() {
				continue
			}
			playerPos, _ := w.Position(player)
			playerBounds := w.Get(player, component.CHurtbox).(component.Hurtbox).Bounds(playerPos)
			if !enemyBounds.Intersects(playerBounds) {
				continue
			}

			hp.TakeDamage(ContactDamage)
			w.Add(player, hp)
			if dir, ok := playerPos.Sub(enemyPos).Normalize(); ok {
				w.SetPosition(player, playerPos.Add(dir.Scale(KnockbackDistance)))
			}
			reportDamage(w, bus, player, enemy, ContactDamage, hp)
		}
	}
}

// reportDamage publishes the events for a landed hit and soft-deletes dead
// enemies.
func reportDamage(w *ecs.World, bus *event.Bus, target, source ecs.EntityID, amount int, hp component.Health) {
	isPlayer := w.Has(target, component.CPlayerControl)
	if hp.Alive() {
		if isPlayer {
			bus.Publish(event.PlayerDamaged{Amount: amount, SourceID: source})
		}
		return
	}
	switch {
	case w.Has(target, component.CEnemyTag):
		pos, _ := w.Position(target)
		w.Destroy(target)
		bus.Publish(event.EnemyDied{EntityID: target, X: pos.X, Y: pos.Y})
	case isPlayer:
		bus.Publish(event.PlayerDied{})
	}
}
