package component

import "fmt"

// Colour pairs boxes with the spots they satisfy.
type Colour int

const (
	ColourDefault Colour = iota
	ColourRed
	ColourBlue
	ColourGreen
	ColourYellow
)

var colourNames = [...]string{
	ColourDefault: "default",
	ColourRed:     "red",
	ColourBlue:    "blue",
	ColourGreen:   "green",
	ColourYellow:  "yellow",
}

func (c Colour) String() string {
	if c < 0 || int(c) >= len(colourNames) {
		return fmt.Sprintf("colour(%d)", int(c))
	}
	return colourNames[c]
}

// ColourFromCode maps the one-letter level-file prefix to a colour.
func ColourFromCode(code byte) (Colour, bool) {
	switch code {
	case 'R':
		return ColourRed, true
	case 'B':
		return ColourBlue, true
	case 'G':
		return ColourGreen, true
	case 'Y':
		return ColourYellow, true
	}
	return ColourDefault, false
}
