package system

import (
	"testing"

	"github.com/milk9111/sokoban/ecs"
	"github.com/milk9111/sokoban/ecs/component"
	"github.com/milk9111/sokoban/ecs/entity"
	"github.com/stretchr/testify/require"
)

func loadWorld(t *testing.T, text string) *ecs.World {
	t.Helper()
	w := ecs.NewWorld()
	_, err := entity.LoadLevel(w, text)
	require.NoError(t, err)
	return w
}

func positionOf(t *testing.T, w *ecs.World, e ecs.Entity) *component.Position {
	t.Helper()
	pos, ok := ecs.Get(w, e, component.PositionComponent.Kind())
	require.True(t, ok)
	return pos
}

func playerOf(t *testing.T, w *ecs.World) ecs.Entity {
	t.Helper()
	player, ok := ecs.First(w, component.PlayerTagComponent.Kind())
	require.True(t, ok)
	return player
}

func boxAt(t *testing.T, w *ecs.World, x, y int) ecs.Entity {
	t.Helper()
	var found ecs.Entity
	ecs.ForEach2(w, component.BoxComponent.Kind(), component.PositionComponent.Kind(), func(e ecs.Entity, _ *component.Box, pos *component.Position) {
		if pos.X == x && pos.Y == y {
			found = e
		}
	})
	require.True(t, found.Valid(), "no box at (%d, %d)", x, y)
	return found
}

// eventsAfter runs one tick of systems and returns the events it produced.
func eventsAfter(w *ecs.World, systems ...ecs.System) []ecs.Event {
	for _, s := range systems {
		s.Update(w)
	}
	return w.Events().Drain()
}

func countKind(events []ecs.Event, kind ecs.EventKind) int {
	n := 0
	for _, evt := range events {
		if evt.Kind() == kind {
			n++
		}
	}
	return n
}
