package system

import (
	"math"
	"math/rand"
	"testing"

	"roomcrawl/internal/component"
	"roomcrawl/internal/ecs"
	"roomcrawl/internal/geom"
)

func spawnAI(w *ecs.World, x, y float64, ai component.AI) ecs.EntityID {
	id := spawnAt(w, x, y)
	w.Add(id, ai)
	w.Add(id, component.NewPhysics(0))
	return id
}

func aiOf(w *ecs.World, id ecs.EntityID) component.AI {
	return w.Get(id, component.CAI).(component.AI)
}

func velocityOf(w *ecs.World, id ecs.EntityID) geom.Vec2 {
	return w.Get(id, component.CPhysics).(component.Physics).Velocity
}

func TestAIChasesInsideDetectionRadius(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	w := ecs.NewWorld()
	id := spawnAI(w, 0, 0, component.NewAI(component.BehaviorWander))

	UpdateAI(w, 1.0/60, geom.V(100, 0), rng)

	if !aiOf(w, id).Chasing {
		t.Fatal("expected chasing at distance 100 < 150")
	}
	if v := velocityOf(w, id); v != geom.V(80, 0) {
		t.Fatalf("chase velocity = %+v; want (80,0)", v)
	}
}

func TestAIHysteresisKeepsState(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	w := ecs.NewWorld()
	id := spawnAI(w, 0, 0, component.NewAI(component.BehaviorWander))

	// Dead zone (150..200) while wandering: stays wandering.
	UpdateAI(w, 1.0/60, geom.V(175, 0), rng)
	if aiOf(w, id).Chasing {
		t.Fatal("must not start chasing inside the dead zone")
	}

	// Detect, then step back into the dead zone: keeps chasing.
	UpdateAI(w, 1.0/60, geom.V(100, 0), rng)
	UpdateAI(w, 1.0/60, geom.V(175, 0), rng)
	if !aiOf(w, id).Chasing {
		t.Fatal("must keep chasing inside the dead zone")
	}

	// Beyond the lose radius: gives up.
	UpdateAI(w, 1.0/60, geom.V(250, 0), rng)
	if aiOf(w, id).Chasing {
		t.Fatal("must stop chasing beyond the lose radius")
	}
}

func TestAIChaseOnTopOfPlayerKeepsVelocity(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	w := ecs.NewWorld()
	id := spawnAI(w, 50, 50, component.NewAI(component.BehaviorChase))
	ph := w.Get(id, component.CPhysics).(component.Physics)
	ph.Velocity = geom.V(3, 4)
	w.Add(id, ph)

	UpdateAI(w, 1.0/60, geom.V(50, 50), rng)

	if v := velocityOf(w, id); v != geom.V(3, 4) {
		t.Fatalf("velocity = %+v; want unchanged (3,4)", v)
	}
}

func TestAIWanderPicksNewHeading(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	for i := 0; i < 50; i++ {
		w := ecs.NewWorld()
		id := spawnAI(w, 0, 0, component.NewAI(component.BehaviorWander))

		UpdateAI(w, 1.0/60, geom.V(1000, 1000), rng)

		speed := velocityOf(w, id).Len()
		if math.Abs(speed-40) > 1e-9 {
			t.Fatalf("iteration %d: wander speed %f; want 40", i, speed)
		}
		timer := aiOf(w, id).WanderTimer
		if timer < 1 || timer >= 2 {
			t.Fatalf("iteration %d: wander timer %f outside [1,2)", i, timer)
		}
	}
}

func TestAIWanderWaitsForTimer(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	w := ecs.NewWorld()
	ai := component.NewAI(component.BehaviorWander)
	ai.WanderTimer = 1
	id := spawnAI(w, 0, 0, ai)

	UpdateAI(w, 0.1, geom.V(1000, 1000), rng)

	if v := velocityOf(w, id); v != (geom.Vec2{}) {
		t.Fatalf("velocity changed to %+v before the timer expired", v)
	}
	if got := aiOf(w, id).WanderTimer; math.Abs(got-0.9) > 1e-9 {
		t.Fatalf("timer = %f; want 0.9", got)
	}
}

func TestAIErraticUsesShortInterval(t *testing.T) {
	rng := rand.New(rand.NewSource(6))
	for i := 0; i < 50; i++ {
		w := ecs.NewWorld()
		ai := component.NewAI(component.BehaviorErratic)
		ai.DirectionChangeInterval = 5 // ignored for erratic movers
		id := spawnAI(w, 0, 0, ai)

		UpdateAI(w, 1.0/60, geom.V(1000, 1000), rng)

		timer := aiOf(w, id).WanderTimer
		if timer < component.ErraticInterval || timer >= 2*component.ErraticInterval {
			t.Fatalf("iteration %d: erratic timer %f outside [0.3,0.6)", i, timer)
		}
	}
}
