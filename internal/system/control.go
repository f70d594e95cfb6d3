package system

import (
	"roomcrawl/internal/component"
	"roomcrawl/internal/ecs"
	"roomcrawl/internal/geom"
)

// Input is the set of held signals for one tick. Each field is already
// OR-ed across its key bindings by the caller.
type Input struct {
	Up, Down, Left, Right bool
	Attack                bool
}

// Direction returns the raw (unnormalized) movement vector.
func (in Input) Direction() geom.Vec2 {
	var d geom.Vec2
	if in.Up {
		d.Y--
	}
	if in.Down {
		d.Y++
	}
	if in.Left {
		d.X--
	}
	if in.Right {
		d.X++
	}
	return d
}

// UpdatePlayerControl turns input into velocity, facing and attacks for
// every player-controlled entity.
func UpdatePlayerControl(w *ecs.World, dt float64, in Input) {
	for _, id := range w.Query(component.CPlayerControl, component.CPhysics) {
		ctl := w.Get(id, component.CPlayerControl).(component.PlayerControl)
		ph := w.Get(id, component.CPhysics).(component.Physics)
		hb, hasHitbox := ecs.GetAs[component.Hitbox](w, id)

		if dir, ok := in.Direction().Normalize(); ok {
			ph.Velocity = dir.Scale(ph.Speed)
			ctl.Facing = dir
			hb.Facing = dir
		} else {
			// No drift: the player stops dead without input.
			ph.Velocity = geom.Vec2{}
		}

		ctl.CooldownTimer -= dt
		if in.Attack && ctl.CooldownTimer <= 0 {
			ctl.Attacking = true
			ctl.AttackTimer = ctl.AttackDuration
			ctl.CooldownTimer = ctl.AttackCooldown
			hb.Active = true
		}

		if ctl.Attacking {
			ctl.AttackTimer -= dt
			if ctl.AttackTimer <= 0 {
				ctl.Attacking = false
				hb.Active = false
			}
		}

		w.Add(id, ctl)
		w.Add(id, ph)
		if hasHitbox {
			w.Add(id, hb)
		}
	}
}
