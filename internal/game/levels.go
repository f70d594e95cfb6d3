package game

import (
	"math/rand"

	"roomcrawl/internal/factory"
)

// enemyRange is the inclusive number of enemies a combat room on the given
// floor spawns with. Every two floors add one.
func enemyRange(floor int) (lo, hi int) {
	return 2 + floor/2, 4 + floor/2
}

// rollEnemyCount picks how many enemies a fresh combat room gets.
func rollEnemyCount(floor int, rng *rand.Rand) int {
	lo, hi := enemyRange(floor)
	return lo + rng.Intn(hi-lo+1)
}

// rollEnemyKind picks a bat one time in three, a slime otherwise.
func rollEnemyKind(rng *rand.Rand) factory.EnemyKind {
	if rng.Intn(3) == 0 {
		return factory.Bat
	}
	return factory.Slime
}
