package component

import "roomcrawl/internal/ecs"

const CAI ecs.ComponentType = 6

// AIBehavior describes how an enemy moves when it is not chasing.
type AIBehavior uint8

const (
	BehaviorWander  AIBehavior = iota // random heading every DirectionChangeInterval
	BehaviorChase                     // wanders like BehaviorWander until it spots the player
	BehaviorErratic                   // re-rolls its heading on a short fixed interval
)

// ErraticInterval is the wander interval used by BehaviorErratic regardless
// of DirectionChangeInterval.
const ErraticInterval = 0.3

// AI holds the chase/wander state of an enemy. DetectionRadius is smaller
// than LoseRadius; between the two the current state is kept.
type AI struct {
	Behavior                AIBehavior
	DetectionRadius         float64
	LoseRadius              float64
	WanderSpeed             float64
	ChaseSpeed              float64
	WanderTimer             float64
	DirectionChangeInterval float64
	Chasing                 bool
}

// NewAI returns an AI with the default radii and timings.
func NewAI(behavior AIBehavior) AI {
	return AI{
		Behavior:                behavior,
		DetectionRadius:         150,
		LoseRadius:              200,
		WanderSpeed:             40,
		ChaseSpeed:              80,
		DirectionChangeInterval: 1,
	}
}

func (AI) Type() ecs.ComponentType { return CAI }
