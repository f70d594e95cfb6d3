package component

import (
	"roomcrawl/internal/ecs"
	"roomcrawl/internal/geom"

	"github.com/gdamore/tcell/v2"
)

const CSprite ecs.ComponentType = 1

// Sprite is the presentation attribute bag of an entity. The simulation
// never reads it; the renderer does.
type Sprite struct {
	Size    geom.Vec2
	Origin  geom.Vec2 // offset from the entity position to the top-left corner
	Color   tcell.Color
	Glyph   string
	Texture string
	Order   int // higher draws later
}

// NewSprite returns a sprite of the given size with its origin centred.
func NewSprite(size geom.Vec2, color tcell.Color) Sprite {
	return Sprite{Size: size, Color: color, Origin: size.Scale(0.5)}
}

func (Sprite) Type() ecs.ComponentType { return CSprite }
