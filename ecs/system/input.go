package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/sokoban/ecs"
)

// InputSystem translates this tick's key presses into queued directions.
// R requests a restart of the current level.
type InputSystem struct {
	keys []ebiten.Key
}

func NewInputSystem() *InputSystem {
	return &InputSystem{}
}

func (i *InputSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	i.keys = inpututil.AppendJustPressedKeys(i.keys[:0])
	TranslateKeys(w, i.keys)
}

// TranslateKeys queues the directions for keys in order.
func TranslateKeys(w *ecs.World, keys []ebiten.Key) {
	for _, key := range keys {
		if key == ebiten.KeyR {
			RequestRestart(w)
			continue
		}
		if dir, ok := DirectionForKey(key); ok {
			w.Input().Push(dir)
		}
	}
}

func DirectionForKey(key ebiten.Key) (ecs.Direction, bool) {
	switch key {
	case ebiten.KeyArrowUp, ebiten.KeyW:
		return ecs.DirectionUp, true
	case ebiten.KeyArrowDown, ebiten.KeyS:
		return ecs.DirectionDown, true
	case ebiten.KeyArrowLeft, ebiten.KeyA:
		return ecs.DirectionLeft, true
	case ebiten.KeyArrowRight, ebiten.KeyD:
		return ecs.DirectionRight, true
	}
	return 0, false
}
