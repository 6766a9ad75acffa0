package component

// Position is a grid cell plus a depth layer. X is the column and Y the row
// of the level text; Z orders drawing, lower first.
type Position struct {
	X int
	Y int
	Z int
}

var PositionComponent = NewComponent[Position]()
