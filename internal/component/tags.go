package component

import "roomcrawl/internal/ecs"

const (
	CEnemyTag  ecs.ComponentType = 9
	CPickupTag ecs.ComponentType = 10
)

// EnemyTag marks hostile entities; rooms count them to decide when they clear.
type EnemyTag struct{}

func (EnemyTag) Type() ecs.ComponentType { return CEnemyTag }

// PickupTag marks collectible entities.
type PickupTag struct{}

func (PickupTag) Type() ecs.ComponentType { return CPickupTag }
