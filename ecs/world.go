package ecs

import "github.com/milk9111/sokoban/ecs/component"

// World is the simulation context handed to every system: it owns all
// entities, one typed arena per component kind, and the shared resources
// (gameplay state, input queue, time, events).
type World struct {
	entities entityStore
	stores   []componentStore

	events   EventQueue
	gameplay Gameplay
	input    InputQueue
	time     Time
}

// NewWorld creates an empty ECS world.
func NewWorld() *World {
	return &World{}
}

// CreateEntity allocates a new entity.
func CreateEntity(w *World) Entity {
	return w.entities.create()
}

// DestroyEntity removes every component of e and invalidates the handle.
func DestroyEntity(w *World, e Entity) bool {
	if w == nil || !w.entities.isAlive(e) {
		return false
	}
	for _, s := range w.stores {
		if s != nil {
			s.remove(e)
		}
	}
	return w.entities.destroy(e)
}

// IsAlive reports whether an entity handle is valid.
func IsAlive(w *World, e Entity) bool {
	if w == nil {
		return false
	}
	return w.entities.isAlive(e)
}

// Entities returns every live entity in ascending id order.
func Entities(w *World) []Entity {
	if w == nil {
		return nil
	}
	out := make([]Entity, 0, w.entities.count)
	w.entities.each(func(e Entity) { out = append(out, e) })
	return out
}

// Count returns the number of live entities.
func Count(w *World) int {
	if w == nil {
		return 0
	}
	return w.entities.count
}

// Clear destroys every entity and empties all component arenas. Resources
// are left untouched; see Reset.
func Clear(w *World) {
	if w == nil {
		return
	}
	w.entities.each(func(e Entity) { w.entities.destroy(e) })
	for _, s := range w.stores {
		if s != nil {
			s.reset()
		}
	}
}

// Reset prepares the world for a freshly loaded level: every entity without
// a Persistent component is destroyed, pending input is dropped and gameplay
// restarts at level.
func Reset(w *World, level int) {
	if w == nil {
		return
	}
	for _, e := range Entities(w) {
		if !Has(w, e, component.PersistentComponent.Kind()) {
			DestroyEntity(w, e)
		}
	}
	w.input.Clear()
	w.gameplay = Gameplay{State: GameplayPlaying, Level: level}
}

// Events returns the world event queue.
func (w *World) Events() *EventQueue {
	if w == nil {
		return nil
	}
	return &w.events
}

// Gameplay returns the gameplay resource.
func (w *World) Gameplay() *Gameplay {
	if w == nil {
		return nil
	}
	return &w.gameplay
}

// Input returns the pending input queue.
func (w *World) Input() *InputQueue {
	if w == nil {
		return nil
	}
	return &w.input
}

// Time returns the frame time resource.
func (w *World) Time() *Time {
	if w == nil {
		return nil
	}
	return &w.time
}

func storeFor[T any](w *World, kind component.ComponentKind[T], create bool) *SparseSet[T] {
	id := int(kind.ID())
	if id >= len(w.stores) {
		if !create {
			return nil
		}
		grown := make([]componentStore, id+1)
		copy(grown, w.stores)
		w.stores = grown
	}
	if w.stores[id] == nil {
		if !create {
			return nil
		}
		w.stores[id] = &SparseSet[T]{}
	}
	s, _ := w.stores[id].(*SparseSet[T])
	return s
}
