package ecs

import "time"

type GameplayState int

const (
	GameplayPlaying GameplayState = iota
	GameplayWon
)

func (s GameplayState) String() string {
	switch s {
	case GameplayWon:
		return "Won"
	default:
		return "Playing"
	}
}

// Gameplay is the per-level progress resource.
type Gameplay struct {
	State      GameplayState
	MovesCount int
	Level      int
}

// Direction is a logical move requested by the input collaborator.
type Direction int

const (
	DirectionUp Direction = iota
	DirectionDown
	DirectionLeft
	DirectionRight
)

// Delta returns the grid offset of one step in d. Rows grow downwards.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case DirectionUp:
		return 0, -1
	case DirectionDown:
		return 0, 1
	case DirectionLeft:
		return -1, 0
	case DirectionRight:
		return 1, 0
	}
	return 0, 0
}

func (d Direction) String() string {
	switch d {
	case DirectionUp:
		return "up"
	case DirectionDown:
		return "down"
	case DirectionLeft:
		return "left"
	case DirectionRight:
		return "right"
	}
	return "unknown"
}

// InputQueue holds key presses translated to directions, oldest first.
type InputQueue struct {
	pressed []Direction
}

func (q *InputQueue) Push(d Direction) {
	q.pressed = append(q.pressed, d)
}

// Pop removes and returns the oldest direction.
func (q *InputQueue) Pop() (Direction, bool) {
	if len(q.pressed) == 0 {
		return 0, false
	}
	d := q.pressed[0]
	q.pressed = q.pressed[1:]
	return d, true
}

func (q *InputQueue) Len() int {
	return len(q.pressed)
}

func (q *InputQueue) Clear() {
	q.pressed = nil
}

// Time accumulates simulated time since the process started.
type Time struct {
	Elapsed time.Duration
}

func (t *Time) Advance(d time.Duration) {
	if d > 0 {
		t.Elapsed += d
	}
}
