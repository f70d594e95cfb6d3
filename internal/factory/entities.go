package factory

import (
	"roomcrawl/internal/component"
	"roomcrawl/internal/ecs"
	"roomcrawl/internal/geom"

	"github.com/gdamore/tcell/v2"
)

// EnemyKind selects an enemy prefab.
type EnemyKind uint8

const (
	Slime EnemyKind = iota
	Bat
)

func (k EnemyKind) String() string {
	if k == Bat {
		return "bat"
	}
	return "slime"
}

// Player stats.
const (
	PlayerSpeed     = 120.0
	PlayerMaxHealth = 3
)

var (
	playerSize  = geom.V(32, 32)
	attackSize  = geom.V(40, 20)
	pickupSize  = geom.V(16, 16)
	slimeColor  = tcell.NewRGBColor(180, 50, 50)
	batColor    = tcell.NewRGBColor(100, 50, 150)
	playerColor = tcell.ColorGreen
)

// NewPlayer creates the player entity at pos, confined to bounds.
func NewPlayer(w *ecs.World, pos geom.Vec2, bounds geom.Rect) ecs.EntityID {
	id := w.CreateEntity()
	w.SetPosition(id, pos)

	sprite := component.NewSprite(playerSize, playerColor)
	sprite.Glyph = "@"
	sprite.Order = 10
	w.Add(id, sprite)

	ph := component.NewPhysics(PlayerSpeed)
	ph.RoomBounds = bounds
	w.Add(id, ph)
	w.Add(id, component.NewHealth(PlayerMaxHealth, component.DefaultInvincibility))
	w.Add(id, component.NewHurtbox(playerSize))
	w.Add(id, component.NewHitbox(attackSize, 1, component.FactionPlayer))
	w.Add(id, component.NewPlayerControl())
	return id
}

// enemyHurtbox is shared by every enemy kind; only the sprite differs.
var enemyHurtbox = geom.V(28, 28)

// NewEnemy creates a Slime or Bat at pos, confined to bounds.
func NewEnemy(w *ecs.World, kind EnemyKind, pos geom.Vec2, bounds geom.Rect) ecs.EntityID {
	id := w.CreateEntity()
	w.SetPosition(id, pos)

	var (
		sprite component.Sprite
		ai     component.AI
	)
	switch kind {
	case Bat:
		sprite = component.NewSprite(geom.V(24, 24), batColor)
		sprite.Glyph = "b"
		ai = component.NewAI(component.BehaviorErratic)
		ai.WanderSpeed, ai.ChaseSpeed = 60, 100
		ai.DetectionRadius, ai.LoseRadius = 120, 180
		ai.DirectionChangeInterval = component.ErraticInterval
	default:
		sprite = component.NewSprite(enemyHurtbox, slimeColor)
		sprite.Glyph = "s"
		ai = component.NewAI(component.BehaviorWander)
	}
	sprite.Order = 5
	w.Add(id, sprite)

	ph := component.NewPhysics(ai.ChaseSpeed)
	ph.RoomBounds = bounds
	w.Add(id, ph)
	w.Add(id, ai)
	w.Add(id, component.NewHealth(1, 0))
	w.Add(id, component.NewHurtbox(enemyHurtbox))
	w.Add(id, component.EnemyTag{})
	return id
}

// NewHealthPickup drops a one-point heal at pos.
func NewHealthPickup(w *ecs.World, pos geom.Vec2) ecs.EntityID {
	id := w.CreateEntity()
	w.SetPosition(id, pos)

	sprite := component.NewSprite(pickupSize, tcell.ColorRed)
	sprite.Glyph = "+"
	sprite.Order = 2
	w.Add(id, sprite)
	w.Add(id, component.Pickup{Kind: component.PickupHealth, Value: 1})
	w.Add(id, component.NewHurtbox(pickupSize))
	w.Add(id, component.PickupTag{})
	return id
}
