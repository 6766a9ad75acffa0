package system

import (
	"go.uber.org/zap"

	"github.com/milk9111/sokoban/ecs"
	"github.com/milk9111/sokoban/ecs/component"
)

// GameplaySystem decides whether the level is won. It runs once per tick
// after movement has been resolved.
type GameplaySystem struct {
	logger *zap.Logger
}

func NewGameplaySystem(logger *zap.Logger) *GameplaySystem {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &GameplaySystem{logger: logger}
}

type cell struct {
	x, y int
}

type spot struct {
	at     cell
	colour component.Colour
}

func (g *GameplaySystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	gameplay := w.Gameplay()
	// Won is terminal until the level is reloaded.
	if gameplay.State == ecs.GameplayWon {
		return
	}

	boxes := make(map[cell]component.Colour)
	ecs.ForEach2(w, component.BoxComponent.Kind(), component.PositionComponent.Kind(), func(_ ecs.Entity, box *component.Box, pos *component.Position) {
		boxes[cell{pos.X, pos.Y}] = box.Colour
	})

	var spots []spot
	ecs.ForEach2(w, component.BoxSpotComponent.Kind(), component.PositionComponent.Kind(), func(_ ecs.Entity, s *component.BoxSpot, pos *component.Position) {
		spots = append(spots, spot{at: cell{pos.X, pos.Y}, colour: s.Colour})
	})

	if !allSpotsSatisfied(boxes, spots) {
		gameplay.State = ecs.GameplayPlaying
		return
	}

	gameplay.State = ecs.GameplayWon
	w.Events().Push(ecs.PlayerWon{})
	g.logger.Info("level won",
		zap.Int("level", gameplay.Level),
		zap.Int("moves", gameplay.MovesCount),
	)
}

// allSpotsSatisfied stops at the first spot without a box of its colour.
func allSpotsSatisfied(boxes map[cell]component.Colour, spots []spot) bool {
	for _, s := range spots {
		colour, ok := boxes[s.at]
		if !ok || colour != s.colour {
			return false
		}
	}
	return true
}
