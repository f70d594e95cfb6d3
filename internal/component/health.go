package component

import "roomcrawl/internal/ecs"

const CHealth ecs.ComponentType = 3

// DefaultInvincibility is the i-frame window granted by a hit, in seconds.
const DefaultInvincibility = 0.5

type Health struct {
	Current, Max          int
	InvincibilityTimer    float64
	InvincibilityDuration float64
}

// NewHealth returns full health with the given i-frame duration.
func NewHealth(hp int, invincibility float64) Health {
	return Health{Current: hp, Max: hp, InvincibilityDuration: invincibility}
}

func (h Health) Alive() bool      { return h.Current > 0 }
func (h Health) Invincible() bool { return h.InvincibilityTimer > 0 }

// TakeDamage subtracts amount and starts the invincibility window.
// It does nothing while the entity is invincible and reports whether the
// damage landed.
func (h *Health) TakeDamage(amount int) bool {
	if h.Invincible() {
		return false
	}
	h.Current -= amount
	h.InvincibilityTimer = h.InvincibilityDuration
	return true
}

// Heal adds amount, capped at Max.
func (h *Health) Heal(amount int) {
	h.Current = min(h.Current+amount, h.Max)
}

// Tick counts the invincibility timer down. Only its sign is observed, so it
// may end slightly below zero.
func (h *Health) Tick(dt float64) {
	if h.InvincibilityTimer > 0 {
		h.InvincibilityTimer -= dt
	}
}

func (Health) Type() ecs.ComponentType { return CHealth }
