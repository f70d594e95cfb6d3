package ecs

import "roomcrawl/internal/geom"

type entity struct {
	pos    geom.Vec2
	active bool
}

// World is the central entity registry and component store.
//
// Entities are kept in creation order; Query and Each visit them in that
// order. Destroy only marks an entity inactive: it stays readable by ID until
// the next Cleanup, which is the only call that physically removes storage.
// The World is not safe for concurrent use.
type World struct {
	nextID     EntityID
	order      []EntityID
	entities   map[EntityID]*entity
	components map[ComponentType]map[EntityID]Component
}

// NewWorld creates an empty World.
func NewWorld() *World {
	return &World{
		nextID:     1,
		entities:   make(map[EntityID]*entity),
		components: make(map[ComponentType]map[EntityID]Component),
	}
}

// CreateEntity mints a new active entity at the origin with no components.
func (w *World) CreateEntity() EntityID {
	id := w.nextID
	w.nextID++
	w.entities[id] = &entity{active: true}
	w.order = append(w.order, id)
	return id
}

// Destroy soft-deletes the entity. Its components stay readable until Cleanup.
func (w *World) Destroy(id EntityID) {
	if e := w.entities[id]; e != nil {
		e.active = false
	}
}

// Exists reports whether id is still stored (active or awaiting cleanup).
func (w *World) Exists(id EntityID) bool {
	return w.entities[id] != nil
}

// Active reports whether the entity exists and has not been destroyed.
func (w *World) Active(id EntityID) bool {
	e := w.entities[id]
	return e != nil && e.active
}

// Cleanup removes every destroyed entity together with its components and
// returns how many were removed. Must not be called while iterating.
func (w *World) Cleanup() int {
	kept := w.order[:0]
	removed := 0
	for _, id := range w.order {
		if w.entities[id].active {
			kept = append(kept, id)
			continue
		}
		delete(w.entities, id)
		for _, store := range w.components {
			delete(store, id)
		}
		removed++
	}
	w.order = kept
	return removed
}

// Clear drops every entity. IDs keep counting from where they were.
func (w *World) Clear() {
	w.order = nil
	w.entities = make(map[EntityID]*entity)
	w.components = make(map[ComponentType]map[EntityID]Component)
}

// Position returns the entity's position.
func (w *World) Position(id EntityID) (geom.Vec2, bool) {
	e := w.entities[id]
	if e == nil {
		return geom.Vec2{}, false
	}
	return e.pos, true
}

// SetPosition moves the entity. Returns false for unknown IDs.
func (w *World) SetPosition(id EntityID, p geom.Vec2) bool {
	e := w.entities[id]
	if e == nil {
		return false
	}
	e.pos = p
	return true
}

// Add attaches a component to an entity, replacing any component of the
// same kind. Unknown IDs are ignored.
func (w *World) Add(id EntityID, c Component) {
	if w.entities[id] == nil {
		return
	}
	t := c.Type()
	if w.components[t] == nil {
		w.components[t] = make(map[EntityID]Component)
	}
	w.components[t][id] = c
}

// Get returns the component of the given type for entity id, or nil.
func (w *World) Get(id EntityID, t ComponentType) Component {
	store := w.components[t]
	if store == nil {
		return nil
	}
	return store[id]
}

// Remove detaches a component from an entity.
func (w *World) Remove(id EntityID, t ComponentType) {
	if store := w.components[t]; store != nil {
		delete(store, id)
	}
}

// Has reports whether entity id has a component of the given type.
func (w *World) Has(id EntityID, t ComponentType) bool {
	return w.Get(id, t) != nil
}

// hasAll reports whether id is active and carries every listed type.
func (w *World) hasAll(id EntityID, types []ComponentType) bool {
	if !w.entities[id].active {
		return false
	}
	for _, t := range types {
		if !w.Has(id, t) {
			return false
		}
	}
	return true
}

// Query returns all active entities that have every listed component type,
// in creation order. With no types it returns every active entity.
func (w *World) Query(types ...ComponentType) []EntityID {
	for _, t := range types {
		// An empty store means nothing can match.
		if len(w.components[t]) == 0 {
			return nil
		}
	}
	var result []EntityID
	for _, id := range w.order {
		if w.hasAll(id, types) {
			result = append(result, id)
		}
	}
	return result
}

// Each calls fn for every active entity having all listed types.
// Entities created by fn are not visited during the same call.
func (w *World) Each(fn func(id EntityID), types ...ComponentType) {
	for _, id := range w.Query(types...) {
		fn(id)
	}
}

// First returns the first active entity having all listed types.
func (w *World) First(types ...ComponentType) (EntityID, bool) {
	for _, id := range w.order {
		if w.hasAll(id, types) {
			return id, true
		}
	}
	return NilEntity, false
}

// Count returns the number of stored entities, including destroyed ones
// that have not been cleaned up yet.
func (w *World) Count() int { return len(w.order) }

// CountWith returns the number of active entities having all listed types.
func (w *World) CountWith(types ...ComponentType) int {
	n := 0
	for _, id := range w.order {
		if w.hasAll(id, types) {
			n++
		}
	}
	return n
}
