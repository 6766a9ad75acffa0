package system

import (
	"github.com/milk9111/sokoban/ecs"
	"github.com/milk9111/sokoban/ecs/component"
)

// MovementSystem applies at most one queued direction per tick. The player
// pushes the unbroken line of movables in front of it; the move fails when
// the line runs into an immovable or off the floor.
type MovementSystem struct{}

func NewMovementSystem() *MovementSystem {
	return &MovementSystem{}
}

func (m *MovementSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	input := w.Input()
	if w.Gameplay().State == ecs.GameplayWon {
		input.Clear()
		return
	}
	dir, ok := input.Pop()
	if !ok {
		return
	}

	player, ok := ecs.First(w, component.PlayerTagComponent.Kind())
	if !ok {
		return
	}
	start, ok := ecs.Get(w, player, component.PositionComponent.Kind())
	if !ok {
		return
	}

	floors := make(map[cell]struct{})
	ecs.ForEach2(w, component.FloorTagComponent.Kind(), component.PositionComponent.Kind(), func(_ ecs.Entity, _ *component.FloorTag, pos *component.Position) {
		floors[cell{pos.X, pos.Y}] = struct{}{}
	})
	blocked := make(map[cell]struct{})
	ecs.ForEach2(w, component.ImmovableComponent.Kind(), component.PositionComponent.Kind(), func(_ ecs.Entity, _ *component.Immovable, pos *component.Position) {
		blocked[cell{pos.X, pos.Y}] = struct{}{}
	})
	movables := make(map[cell]ecs.Entity)
	ecs.ForEach2(w, component.MovableComponent.Kind(), component.PositionComponent.Kind(), func(e ecs.Entity, _ *component.Movable, pos *component.Position) {
		movables[cell{pos.X, pos.Y}] = e
	})

	dx, dy := dir.Delta()
	chain := []ecs.Entity{player}
	next := cell{start.X + dx, start.Y + dy}
	for {
		if _, ok := floors[next]; !ok {
			w.Events().Push(ecs.PlayerHitObstacle{})
			return
		}
		if _, ok := blocked[next]; ok {
			w.Events().Push(ecs.PlayerHitObstacle{})
			return
		}
		e, ok := movables[next]
		if !ok {
			break
		}
		chain = append(chain, e)
		next = cell{next.x + dx, next.y + dy}
	}

	spots := make(map[cell]component.Colour)
	ecs.ForEach2(w, component.BoxSpotComponent.Kind(), component.PositionComponent.Kind(), func(_ ecs.Entity, s *component.BoxSpot, pos *component.Position) {
		spots[cell{pos.X, pos.Y}] = s.Colour
	})

	events := w.Events()
	for _, e := range chain {
		pos, ok := ecs.Get(w, e, component.PositionComponent.Kind())
		if !ok {
			continue
		}
		pos.X += dx
		pos.Y += dy
		events.Push(ecs.EntityMoved{Entity: e})

		box, ok := ecs.Get(w, e, component.BoxComponent.Kind())
		if !ok {
			continue
		}
		if colour, onSpot := spots[cell{pos.X, pos.Y}]; onSpot {
			events.Push(ecs.BoxPlacedOnSpot{IsCorrectSpot: colour == box.Colour})
		}
	}
	w.Gameplay().MovesCount++
}
