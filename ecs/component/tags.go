package component

type PlayerTag struct{}

var PlayerTagComponent = NewComponent[PlayerTag]()

type WallTag struct{}

var WallTagComponent = NewComponent[WallTag]()

type FloorTag struct{}

var FloorTagComponent = NewComponent[FloorTag]()

// Movable entities are shifted by a push.
type Movable struct{}

var MovableComponent = NewComponent[Movable]()

// Immovable entities block a push.
type Immovable struct{}

var ImmovableComponent = NewComponent[Immovable]()
