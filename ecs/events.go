package ecs

// EventKind identifies a domain event variant.
type EventKind string

const (
	EventLevelStart        EventKind = "level_start"
	EventPlayerHitObstacle EventKind = "player_hit_obstacle"
	EventPlayerWon         EventKind = "player_won"
	EventEntityMoved       EventKind = "entity_moved"
	EventBoxPlacedOnSpot   EventKind = "box_placed_on_spot"
)

// Event is a tagged variant; switch on the concrete type or on Kind.
type Event interface {
	Kind() EventKind
}

// LevelStart is emitted after a level has been loaded into the world.
type LevelStart struct {
	Level int
}

// PlayerHitObstacle is emitted when a move is blocked by a wall, the edge of
// the level, or a box that cannot be pushed.
type PlayerHitObstacle struct{}

// PlayerWon is emitted once when every box spot holds a box of its colour.
type PlayerWon struct{}

// EntityMoved is emitted for every entity shifted by a move.
type EntityMoved struct {
	Entity Entity
}

// BoxPlacedOnSpot is emitted when a pushed box lands on a box spot.
type BoxPlacedOnSpot struct {
	IsCorrectSpot bool
}

func (LevelStart) Kind() EventKind        { return EventLevelStart }
func (PlayerHitObstacle) Kind() EventKind { return EventPlayerHitObstacle }
func (PlayerWon) Kind() EventKind         { return EventPlayerWon }
func (EntityMoved) Kind() EventKind       { return EventEntityMoved }
func (BoxPlacedOnSpot) Kind() EventKind   { return EventBoxPlacedOnSpot }

// EventQueue is a FIFO buffer of the events produced during one tick. The
// scheduler flushes it after the last system runs, so consumers scheduled
// later in the same tick see everything appended before them.
type EventQueue struct {
	items []Event
}

// Push appends an event.
func (q *EventQueue) Push(evt Event) {
	if q == nil || evt == nil {
		return
	}
	q.items = append(q.items, evt)
}

// Events returns the pending events in insertion order without consuming
// them. Callers must not modify the returned slice.
func (q *EventQueue) Events() []Event {
	if q == nil {
		return nil
	}
	return q.items
}

// Len returns the number of pending events.
func (q *EventQueue) Len() int {
	if q == nil {
		return 0
	}
	return len(q.items)
}

// Drain returns all events and clears the queue.
func (q *EventQueue) Drain() []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

func (q *EventQueue) flush() {
	if q == nil {
		return
	}
	q.items = nil
}
