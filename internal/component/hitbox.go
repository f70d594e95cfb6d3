package component

import (
	"roomcrawl/internal/ecs"
	"roomcrawl/internal/geom"
)

const CHitbox ecs.ComponentType = 5

// AttackReach is the gap between an entity's centre and the near edge of
// its attack rectangle along the facing direction.
const AttackReach = 16.0

// Faction prevents hitboxes from damaging their own side.
type Faction uint8

const (
	FactionPlayer Faction = iota
	FactionEnemy
	FactionNeutral
)

func (f Faction) String() string {
	switch f {
	case FactionPlayer:
		return "player"
	case FactionEnemy:
		return "enemy"
	default:
		return "neutral"
	}
}

// Hitbox is the area where an entity deals damage while Active.
type Hitbox struct {
	Size    geom.Vec2
	Offset  geom.Vec2
	Facing  geom.Vec2
	Damage  int
	Faction Faction
	Active  bool
}

// NewHitbox returns an inactive hitbox facing right.
func NewHitbox(size geom.Vec2, damage int, faction Faction) Hitbox {
	return Hitbox{Size: size, Damage: damage, Faction: faction, Facing: geom.V(1, 0)}
}

// Center returns where the attack rectangle is centred for an entity at pos.
func (h Hitbox) Center(pos geom.Vec2) geom.Vec2 {
	return pos.Add(h.Facing.Scale(h.Size.X/2 + AttackReach))
}

// Bounds returns the attack rectangle for an entity at pos.
func (h Hitbox) Bounds(pos geom.Vec2) geom.Rect {
	return geom.Centered(h.Center(pos), h.Size).Translate(h.Offset)
}

func (Hitbox) Type() ecs.ComponentType { return CHitbox }
