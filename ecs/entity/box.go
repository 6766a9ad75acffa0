package entity

import (
	"fmt"
	"image/color"

	"github.com/milk9111/sokoban/ecs"
	"github.com/milk9111/sokoban/ecs/component"
	"golang.org/x/image/colornames"
)

func NewBox(w *ecs.World, x, y int, colour component.Colour) (ecs.Entity, error) {
	box := ecs.CreateEntity(w)
	if err := ecs.Add(w, box, component.BoxComponent.Kind(), &component.Box{Colour: colour}); err != nil {
		return 0, fmt.Errorf("box: add box: %w", err)
	}
	if err := ecs.Add(w, box, component.MovableComponent.Kind(), &component.Movable{}); err != nil {
		return 0, fmt.Errorf("box: add movable: %w", err)
	}
	if err := ecs.Add(w, box, component.PositionComponent.Kind(), &component.Position{X: x, Y: y, Z: ObjectZ}); err != nil {
		return 0, fmt.Errorf("box: add position: %w", err)
	}
	if err := ecs.Add(w, box, component.RenderableComponent.Kind(), &component.Renderable{
		Kind: component.RenderableAnimated,
		Paths: []string{
			fmt.Sprintf("images/box_%s_1.png", colour),
			fmt.Sprintf("images/box_%s_2.png", colour),
		},
		Fallback: boxFallback(colour),
	}); err != nil {
		return 0, fmt.Errorf("box: add renderable: %w", err)
	}
	return box, nil
}

func boxFallback(colour component.Colour) color.Color {
	switch colour {
	case component.ColourRed:
		return colornames.Firebrick
	case component.ColourBlue:
		return colornames.Royalblue
	case component.ColourGreen:
		return colornames.Forestgreen
	case component.ColourYellow:
		return colornames.Goldenrod
	}
	return colornames.Saddlebrown
}

func spotFallback(colour component.Colour) color.Color {
	switch colour {
	case component.ColourRed:
		return colornames.Lightcoral
	case component.ColourBlue:
		return colornames.Lightblue
	case component.ColourGreen:
		return colornames.Lightgreen
	case component.ColourYellow:
		return colornames.Khaki
	}
	return colornames.Tan
}
