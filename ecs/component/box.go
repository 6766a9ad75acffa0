package component

type Box struct {
	Colour Colour
}

var BoxComponent = NewComponent[Box]()

// BoxSpot is a target cell satisfied by a Box of the same Colour.
type BoxSpot struct {
	Colour Colour
}

var BoxSpotComponent = NewComponent[BoxSpot]()
