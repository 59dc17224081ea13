package ecs

import "github.com/milk9111/trackrunner/ecs/component"

// World owns entities and their components. Components are stored per kind in
// sparse sets; systems are run by a Scheduler.
type World struct {
	entities entityStore
	stores   map[component.ComponentID]*SparseSet
	events   EventQueue
}

// NewWorld creates an empty ECS world.
func NewWorld() *World {
	return &World{stores: make(map[component.ComponentID]*SparseSet)}
}

// CreateEntity allocates a new entity.
func (w *World) CreateEntity() Entity {
	if w == nil {
		return 0
	}
	return w.entities.create()
}

// DestroyEntity kills an entity and drops all of its components.
func (w *World) DestroyEntity(e Entity) bool {
	if w == nil || !w.entities.destroy(e) {
		return false
	}
	for _, store := range w.stores {
		store.removeSlot(e.id())
	}
	return true
}

// IsAlive reports whether an entity handle is valid.
func (w *World) IsAlive(e Entity) bool {
	if w == nil {
		return false
	}
	return w.entities.isAlive(e)
}

// Entities returns every live entity.
func (w *World) Entities() []Entity {
	if w == nil {
		return nil
	}
	return w.entities.all()
}

func (w *World) AddComponent(e Entity, kind component.Kind, value any) error {
	if w == nil || !w.IsAlive(e) {
		return component.ErrEntityNotAlive
	}
	if kind == nil || kind.ID() == 0 {
		return component.ErrInvalidComponentKind
	}
	if value == nil {
		return component.ErrNilComponent
	}
	store := w.stores[kind.ID()]
	if store == nil {
		store = newSparseSet()
		w.stores[kind.ID()] = store
	}
	store.Set(e, value)
	return nil
}

func (w *World) RemoveComponent(e Entity, kind component.Kind) bool {
	if w == nil || kind == nil {
		return false
	}
	return w.stores[kind.ID()].Remove(e)
}

func (w *World) HasComponent(e Entity, kind component.Kind) bool {
	if w == nil || kind == nil || !w.IsAlive(e) {
		return false
	}
	return w.stores[kind.ID()].Has(e)
}

func (w *World) GetComponent(e Entity, kind component.Kind) (any, bool) {
	if !w.HasComponent(e, kind) {
		return nil, false
	}
	return w.stores[kind.ID()].Get(e), true
}

// Query returns the live entities holding every given kind, iterating the
// smallest store.
func (w *World) Query(kinds ...component.Kind) []Entity {
	if w == nil || len(kinds) == 0 {
		return nil
	}
	var smallest *SparseSet
	for _, k := range kinds {
		if k == nil {
			return nil
		}
		store := w.stores[k.ID()]
		if store == nil || store.Len() == 0 {
			return nil
		}
		if smallest == nil || store.Len() < smallest.Len() {
			smallest = store
		}
	}

	out := make([]Entity, 0, smallest.Len())
	for _, e := range smallest.Entities() {
		if !w.IsAlive(e) {
			continue
		}
		match := true
		for _, k := range kinds {
			if !w.stores[k.ID()].Has(e) {
				match = false
				break
			}
		}
		if match {
			out = append(out, e)
		}
	}
	return out
}

// First returns the first entity matching the query.
func (w *World) First(kinds ...component.Kind) (Entity, bool) {
	ents := w.Query(kinds...)
	if len(ents) == 0 {
		return 0, false
	}
	return ents[0], true
}

// Events returns the world event queue.
func (w *World) Events() *EventQueue {
	if w == nil {
		return nil
	}
	return &w.events
}
