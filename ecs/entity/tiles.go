package entity

import (
	"fmt"

	"github.com/milk9111/sokoban/ecs"
	"github.com/milk9111/sokoban/ecs/component"
	"golang.org/x/image/colornames"
)

// Draw layers. Spots sit between the floor and whatever stands on them.
const (
	FloorZ   = 0
	BoxSpotZ = 1
	ObjectZ  = 2
)

func NewFloor(w *ecs.World, x, y int) (ecs.Entity, error) {
	floor := ecs.CreateEntity(w)
	if err := ecs.Add(w, floor, component.FloorTagComponent.Kind(), &component.FloorTag{}); err != nil {
		return 0, fmt.Errorf("floor: add tag: %w", err)
	}
	if err := ecs.Add(w, floor, component.PositionComponent.Kind(), &component.Position{X: x, Y: y, Z: FloorZ}); err != nil {
		return 0, fmt.Errorf("floor: add position: %w", err)
	}
	if err := ecs.Add(w, floor, component.RenderableComponent.Kind(), &component.Renderable{
		Kind:     component.RenderableStatic,
		Paths:    []string{"images/floor.png"},
		Fallback: colornames.Lightgray,
	}); err != nil {
		return 0, fmt.Errorf("floor: add renderable: %w", err)
	}
	return floor, nil
}

func NewWall(w *ecs.World, x, y int) (ecs.Entity, error) {
	wall := ecs.CreateEntity(w)
	if err := ecs.Add(w, wall, component.WallTagComponent.Kind(), &component.WallTag{}); err != nil {
		return 0, fmt.Errorf("wall: add tag: %w", err)
	}
	if err := ecs.Add(w, wall, component.ImmovableComponent.Kind(), &component.Immovable{}); err != nil {
		return 0, fmt.Errorf("wall: add immovable: %w", err)
	}
	if err := ecs.Add(w, wall, component.PositionComponent.Kind(), &component.Position{X: x, Y: y, Z: ObjectZ}); err != nil {
		return 0, fmt.Errorf("wall: add position: %w", err)
	}
	if err := ecs.Add(w, wall, component.RenderableComponent.Kind(), &component.Renderable{
		Kind:     component.RenderableStatic,
		Paths:    []string{"images/wall.png"},
		Fallback: colornames.Dimgray,
	}); err != nil {
		return 0, fmt.Errorf("wall: add renderable: %w", err)
	}
	return wall, nil
}

func NewBoxSpot(w *ecs.World, x, y int, colour component.Colour) (ecs.Entity, error) {
	spot := ecs.CreateEntity(w)
	if err := ecs.Add(w, spot, component.BoxSpotComponent.Kind(), &component.BoxSpot{Colour: colour}); err != nil {
		return 0, fmt.Errorf("box spot: add spot: %w", err)
	}
	if err := ecs.Add(w, spot, component.PositionComponent.Kind(), &component.Position{X: x, Y: y, Z: BoxSpotZ}); err != nil {
		return 0, fmt.Errorf("box spot: add position: %w", err)
	}
	if err := ecs.Add(w, spot, component.RenderableComponent.Kind(), &component.Renderable{
		Kind:     component.RenderableStatic,
		Paths:    []string{fmt.Sprintf("images/box_spot_%s.png", colour)},
		Fallback: spotFallback(colour),
	}); err != nil {
		return 0, fmt.Errorf("box spot: add renderable: %w", err)
	}
	return spot, nil
}
