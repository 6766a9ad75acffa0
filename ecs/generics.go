package ecs

import (
	"fmt"

	"github.com/milk9111/sokoban/ecs/component"
)

// Add attaches value to e, replacing any existing component of that kind.
func Add[T any](w *World, e Entity, kind component.ComponentKind[T], value *T) error {
	if !kind.Valid() {
		return component.ErrInvalidComponentKind
	}
	if value == nil {
		return fmt.Errorf("add %s to %s: %w", kind.Name(), e, component.ErrNilComponent)
	}
	if !IsAlive(w, e) {
		return fmt.Errorf("add %s to %s: %w", kind.Name(), e, component.ErrEntityNotAlive)
	}
	storeFor(w, kind, true).Set(e, value)
	return nil
}

func Remove[T any](w *World, e Entity, kind component.ComponentKind[T]) bool {
	if w == nil || !kind.Valid() {
		return false
	}
	return storeFor(w, kind, false).Remove(e)
}

func Has[T any](w *World, e Entity, kind component.ComponentKind[T]) bool {
	if w == nil || !kind.Valid() {
		return false
	}
	return storeFor(w, kind, false).Has(e)
}

func Get[T any](w *World, e Entity, kind component.ComponentKind[T]) (*T, bool) {
	if w == nil || !kind.Valid() {
		return nil, false
	}
	v := storeFor(w, kind, false).Get(e)
	return v, v != nil
}

// Len returns how many entities carry a component of kind.
func Len[T any](w *World, kind component.ComponentKind[T]) int {
	if w == nil || !kind.Valid() {
		return 0
	}
	return storeFor(w, kind, false).Len()
}

// First returns the first entity, in arena order, that carries kind.
func First[T any](w *World, kind component.ComponentKind[T]) (Entity, bool) {
	if w == nil || !kind.Valid() {
		return 0, false
	}
	ents := storeFor(w, kind, false).Entities()
	if len(ents) == 0 {
		return 0, false
	}
	return ents[0], true
}

// ForEach visits every entity carrying kind in arena order. fn must not add
// or remove components of kind.
func ForEach[T any](w *World, kind component.ComponentKind[T], fn func(Entity, *T)) {
	if w == nil || !kind.Valid() || fn == nil {
		return
	}
	s := storeFor(w, kind, false)
	ents, vals := s.Entities(), s.Values()
	for i := range ents {
		fn(ents[i], vals[i])
	}
}

// ForEach2 visits entities carrying both kinds, in the arena order of a.
func ForEach2[A, B any](w *World, ka component.ComponentKind[A], kb component.ComponentKind[B], fn func(Entity, *A, *B)) {
	if w == nil || !ka.Valid() || !kb.Valid() || fn == nil {
		return
	}
	sa := storeFor(w, ka, false)
	sb := storeFor(w, kb, false)
	if sa == nil || sb == nil {
		return
	}
	ents, vals := sa.Entities(), sa.Values()
	for i := range ents {
		if b := sb.Get(ents[i]); b != nil {
			fn(ents[i], vals[i], b)
		}
	}
}

// ForEach3 visits entities carrying all three kinds, in the arena order of a.
func ForEach3[A, B, C any](w *World, ka component.ComponentKind[A], kb component.ComponentKind[B], kc component.ComponentKind[C], fn func(Entity, *A, *B, *C)) {
	if w == nil || !ka.Valid() || !kb.Valid() || !kc.Valid() || fn == nil {
		return
	}
	sa := storeFor(w, ka, false)
	sb := storeFor(w, kb, false)
	sc := storeFor(w, kc, false)
	if sa == nil || sb == nil || sc == nil {
		return
	}
	ents, vals := sa.Entities(), sa.Values()
	for i := range ents {
		b := sb.Get(ents[i])
		if b == nil {
			continue
		}
		if c := sc.Get(ents[i]); c != nil {
			fn(ents[i], vals[i], b, c)
		}
	}
}
