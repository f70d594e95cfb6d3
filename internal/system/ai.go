package system

import (
	"math"
	"math/rand"

	"roomcrawl/internal/component"
	"roomcrawl/internal/ecs"
	"roomcrawl/internal/geom"
)

// UpdateAI steers every AI-controlled entity toward playerPos or lets it
// wander. Chasing starts inside DetectionRadius and stops beyond LoseRadius;
// between the two radii the previous state is kept.
func UpdateAI(w *ecs.World, dt float64, playerPos geom.Vec2, rng *rand.Rand) {
	for _, id := range w.Query(component.CAI, component.CPhysics) {
		ai := w.Get(id, component.CAI).(component.AI)
		ph := w.Get(id, component.CPhysics).(component.Physics)
		pos, _ := w.Position(id)

		dist := geom.Dist(pos, playerPos)
		if dist < ai.DetectionRadius {
			ai.Chasing = true
		} else if dist > ai.LoseRadius {
			ai.Chasing = false
		}

		if ai.Chasing {
			chase(&ph, ai, pos, playerPos)
		} else {
			wander(&ph, &ai, dt, rng)
		}

		w.Add(id, ai)
		w.Add(id, ph)
	}
}

// chase points the velocity straight at the player. When the entity sits
// exactly on the player the previous velocity is kept.
func chase(ph *component.Physics, ai component.AI, pos, target geom.Vec2) {
	dir, ok := target.Sub(pos).Normalize()
	if !ok {
		return
	}
	ph.Velocity = dir.Scale(ai.ChaseSpeed)
}

func wander(ph *component.Physics, ai *component.AI, dt float64, rng *rand.Rand) {
	ai.WanderTimer -= dt
	if ai.WanderTimer > 0 {
		return
	}
	interval := ai.DirectionChangeInterval
	if ai.Behavior == component.BehaviorErratic {
		interval = component.ErraticInterval
	}
	angle := rng.Float64() * 2 * math.Pi
	ph.Velocity = geom.FromAngle(angle, ai.WanderSpeed)
	ai.WanderTimer = interval + rng.Float64()*interval
}
