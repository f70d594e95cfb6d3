package component

import (
	"roomcrawl/internal/ecs"
	"roomcrawl/internal/geom"
)

const CHurtbox ecs.ComponentType = 4

// Hurtbox is the area where an entity can be hit, centred on its position.
type Hurtbox struct {
	Size   geom.Vec2
	Offset geom.Vec2
}

// NewHurtbox returns a centred hurtbox of the given size.
func NewHurtbox(size geom.Vec2) Hurtbox { return Hurtbox{Size: size} }

// Bounds returns the hurtbox rectangle for an entity at pos.
func (h Hurtbox) Bounds(pos geom.Vec2) geom.Rect {
	return geom.Centered(pos, h.Size).Translate(h.Offset)
}

func (Hurtbox) Type() ecs.ComponentType { return CHurtbox }
