package entity

import (
	"errors"
	"fmt"
	"strings"

	"github.com/milk9111/sokoban/ecs"
	"github.com/milk9111/sokoban/ecs/component"
)

var (
	ErrMissingPlayer   = errors.New("level: no player")
	ErrMultiplePlayers = errors.New("level: more than one player")
	ErrNoBoxSpots      = errors.New("level: no box spots")
	ErrDuplicateBox    = errors.New("level: more than one box in a cell")
)

// ParseError reports a token the level grammar does not recognise. Row and
// Column are zero-based.
type ParseError struct {
	Token  string
	Row    int
	Column int
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("level: unrecognized token %q at row %d, column %d", e.Token, e.Row, e.Column)
}

type TileKind int

const (
	TileFloor TileKind = iota
	TileWall
	TilePlayer
	TileBox
	TileBoxSpot
)

// Tile is one non-void cell. X is the column and Y the row of the token.
type Tile struct {
	X      int
	Y      int
	Kind   TileKind
	Colour component.Colour
}

// Level is a parsed level description. Void cells are omitted from Tiles.
type Level struct {
	Width  int
	Height int
	Tiles  []Tile
}

// ParseLevel converts level text into tiles. Rows are separated by line
// breaks and tokens by whitespace. The first unrecognised token aborts the
// parse with a *ParseError.
func ParseLevel(text string) (*Level, error) {
	rows := strings.Split(strings.TrimSpace(text), "\n")
	lvl := &Level{Height: len(rows)}
	for y, row := range rows {
		tokens := strings.Fields(row)
		if len(tokens) > lvl.Width {
			lvl.Width = len(tokens)
		}
		for x, token := range tokens {
			tile, void, err := parseToken(token)
			if err != nil {
				return nil, &ParseError{Token: token, Row: y, Column: x}
			}
			if void {
				continue
			}
			tile.X, tile.Y = x, y
			lvl.Tiles = append(lvl.Tiles, tile)
		}
	}
	return lvl, nil
}

var errUnknownToken = errors.New("unknown token")

func parseToken(token string) (tile Tile, void bool, err error) {
	switch token {
	case ".":
		return Tile{Kind: TileFloor}, false, nil
	case "W":
		return Tile{Kind: TileWall}, false, nil
	case "P":
		return Tile{Kind: TilePlayer}, false, nil
	case "N":
		return Tile{}, true, nil
	case "B":
		return Tile{Kind: TileBox}, false, nil
	case "S":
		return Tile{Kind: TileBoxSpot}, false, nil
	}
	if len(token) != 2 {
		return Tile{}, false, errUnknownToken
	}
	colour, ok := component.ColourFromCode(token[0])
	if !ok {
		return Tile{}, false, errUnknownToken
	}
	switch token[1] {
	case 'B':
		return Tile{Kind: TileBox, Colour: colour}, false, nil
	case 'S':
		return Tile{Kind: TileBoxSpot, Colour: colour}, false, nil
	}
	return Tile{}, false, errUnknownToken
}

// Validate checks the entity invariants a playable level needs.
func (l *Level) Validate() error {
	players, spots := 0, 0
	boxes := make(map[[2]int]struct{})
	for _, t := range l.Tiles {
		switch t.Kind {
		case TilePlayer:
			players++
		case TileBoxSpot:
			spots++
		case TileBox:
			cell := [2]int{t.X, t.Y}
			if _, dup := boxes[cell]; dup {
				return fmt.Errorf("%w: (%d, %d)", ErrDuplicateBox, t.X, t.Y)
			}
			boxes[cell] = struct{}{}
		}
	}
	switch {
	case players == 0:
		return ErrMissingPlayer
	case players > 1:
		return fmt.Errorf("%w: found %d", ErrMultiplePlayers, players)
	case spots == 0:
		return ErrNoBoxSpots
	}
	return nil
}

// Spawn creates the entities for every tile. Each cell gets a floor, plus
// the entity its token names.
func Spawn(w *ecs.World, lvl *Level) error {
	if w == nil {
		return fmt.Errorf("spawn level: world is nil")
	}
	for _, t := range lvl.Tiles {
		if _, err := NewFloor(w, t.X, t.Y); err != nil {
			return err
		}
		var err error
		switch t.Kind {
		case TileWall:
			_, err = NewWall(w, t.X, t.Y)
		case TilePlayer:
			_, err = NewPlayer(w, t.X, t.Y)
		case TileBox:
			_, err = NewBox(w, t.X, t.Y, t.Colour)
		case TileBoxSpot:
			_, err = NewBoxSpot(w, t.X, t.Y, t.Colour)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// LoadLevel parses and validates text, then spawns it into w. Nothing is
// created unless the whole level is valid.
func LoadLevel(w *ecs.World, text string) (*Level, error) {
	lvl, err := ParseLevel(text)
	if err != nil {
		return nil, err
	}
	if err := lvl.Validate(); err != nil {
		return nil, err
	}
	if err := Spawn(w, lvl); err != nil {
		return nil, err
	}
	return lvl, nil
}
