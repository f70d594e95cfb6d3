package ecs

// EntityID uniquely identifies an entity in the world.
// IDs are handed out sequentially and never reused, so an ID held across a
// Cleanup resolves to "not found" instead of to a different entity.
type EntityID uint64

// NilEntity is the zero value; no valid entity has this ID.
const NilEntity EntityID = 0

// ComponentType is a small integer key used to store/retrieve components.
type ComponentType uint8

// Component is implemented by every data struct stored in the world.
type Component interface {
	Type() ComponentType
}

// GetAs returns the component of kind T attached to id.
// ok is false when the entity is unknown or has no component of that kind.
func GetAs[T Component](w *World, id EntityID) (T, bool) {
	var zero T
	c := w.Get(id, zero.Type())
	if c == nil {
		return zero, false
	}
	v, ok := c.(T)
	return v, ok
}
