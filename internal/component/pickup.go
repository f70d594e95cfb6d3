package component

import "roomcrawl/internal/ecs"

const CPickup ecs.ComponentType = 8

// PickupKind is the effect a pickup applies when collected.
type PickupKind uint8

const (
	PickupHealth PickupKind = iota
	PickupSpeedBoost
	PickupDamageUp
)

func (k PickupKind) String() string {
	switch k {
	case PickupHealth:
		return "health"
	case PickupSpeedBoost:
		return "speed"
	case PickupDamageUp:
		return "damage"
	}
	return "unknown"
}

type Pickup struct {
	Kind      PickupKind
	Value     int
	Collected bool
}

func (Pickup) Type() ecs.ComponentType { return CPickup }
