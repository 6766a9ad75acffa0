package entity

import (
	"fmt"

	"github.com/milk9111/sokoban/ecs"
	"github.com/milk9111/sokoban/ecs/component"
	"golang.org/x/image/colornames"
)

func NewPlayer(w *ecs.World, x, y int) (ecs.Entity, error) {
	player := ecs.CreateEntity(w)
	if err := ecs.Add(w, player, component.PlayerTagComponent.Kind(), &component.PlayerTag{}); err != nil {
		return 0, fmt.Errorf("player: add tag: %w", err)
	}
	if err := ecs.Add(w, player, component.MovableComponent.Kind(), &component.Movable{}); err != nil {
		return 0, fmt.Errorf("player: add movable: %w", err)
	}
	if err := ecs.Add(w, player, component.PositionComponent.Kind(), &component.Position{X: x, Y: y, Z: ObjectZ}); err != nil {
		return 0, fmt.Errorf("player: add position: %w", err)
	}
	if err := ecs.Add(w, player, component.RenderableComponent.Kind(), &component.Renderable{
		Kind: component.RenderableAnimated,
		Paths: []string{
			"images/player_1.png",
			"images/player_2.png",
			"images/player_3.png",
		},
		Fallback: colornames.Black,
	}); err != nil {
		return 0, fmt.Errorf("player: add renderable: %w", err)
	}
	return player, nil
}
