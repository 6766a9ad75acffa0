package system

import (
	"time"

	"github.com/milk9111/sokoban/ecs"
)

// TimeSystem advances the world clock by a fixed step per tick.
type TimeSystem struct {
	step time.Duration
}

// NewTimeSystem returns a clock for a loop running tps ticks per second.
func NewTimeSystem(tps int) *TimeSystem {
	if tps <= 0 {
		tps = 60
	}
	return &TimeSystem{step: time.Second / time.Duration(tps)}
}

func (t *TimeSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	w.Time().Advance(t.step)
}
