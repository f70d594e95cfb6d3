package component

import (
	"roomcrawl/internal/ecs"
	"roomcrawl/internal/geom"
)

const CPlayerControl ecs.ComponentType = 7

// PlayerControl marks the player-driven entity and tracks its attack timers.
type PlayerControl struct {
	AttackDuration float64
	AttackCooldown float64
	AttackTimer    float64
	CooldownTimer  float64
	Attacking      bool
	Facing         geom.Vec2
}

// NewPlayerControl returns the default 0.15s swing with a 0.3s cooldown.
func NewPlayerControl() PlayerControl {
	return PlayerControl{AttackDuration: 0.15, AttackCooldown: 0.3, Facing: geom.V(1, 0)}
}

func (PlayerControl) Type() ecs.ComponentType { return CPlayerControl }
