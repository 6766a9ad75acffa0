package entity

import (
	"errors"
	"testing"

	"github.com/milk9111/sokoban/ecs"
	"github.com/milk9111/sokoban/ecs/component"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const scenarioLevel = `
W W W W
W P B W
W . S W
W W W W
`

type snapshot struct {
	Pos    component.Position
	Floor  bool
	Wall   bool
	Player bool
	Box    *component.Box
	Spot   *component.BoxSpot
}

func snapshotWorld(w *ecs.World) []snapshot {
	var out []snapshot
	for _, e := range ecs.Entities(w) {
		pos, _ := ecs.Get(w, e, component.PositionComponent.Kind())
		s := snapshot{
			Pos:    *pos,
			Floor:  ecs.Has(w, e, component.FloorTagComponent.Kind()),
			Wall:   ecs.Has(w, e, component.WallTagComponent.Kind()),
			Player: ecs.Has(w, e, component.PlayerTagComponent.Kind()),
		}
		if b, ok := ecs.Get(w, e, component.BoxComponent.Kind()); ok {
			s.Box = b
		}
		if sp, ok := ecs.Get(w, e, component.BoxSpotComponent.Kind()); ok {
			s.Spot = sp
		}
		out = append(out, s)
	}
	return out
}

func TestLoadLevelScenario(t *testing.T) {
	w := ecs.NewWorld()
	lvl, err := LoadLevel(w, scenarioLevel)
	require.NoError(t, err)

	assert.Equal(t, 4, lvl.Width)
	assert.Equal(t, 4, lvl.Height)
	assert.Equal(t, 16, ecs.Len(w, component.FloorTagComponent.Kind()))
	assert.Equal(t, 12, ecs.Len(w, component.WallTagComponent.Kind()))
	assert.Equal(t, 1, ecs.Len(w, component.PlayerTagComponent.Kind()))
	assert.Equal(t, 1, ecs.Len(w, component.BoxComponent.Kind()))
	assert.Equal(t, 1, ecs.Len(w, component.BoxSpotComponent.Kind()))

	player, ok := ecs.First(w, component.PlayerTagComponent.Kind())
	require.True(t, ok)
	pos, _ := ecs.Get(w, player, component.PositionComponent.Kind())
	assert.Equal(t, component.Position{X: 1, Y: 1, Z: ObjectZ}, *pos, "column maps to x, row maps to y")

	box, _ := ecs.First(w, component.BoxComponent.Kind())
	boxComp, _ := ecs.Get(w, box, component.BoxComponent.Kind())
	boxPos, _ := ecs.Get(w, box, component.PositionComponent.Kind())
	assert.Equal(t, component.ColourDefault, boxComp.Colour)
	assert.Equal(t, 2, boxPos.X)
	assert.Equal(t, 1, boxPos.Y)

	spot, _ := ecs.First(w, component.BoxSpotComponent.Kind())
	spotPos, _ := ecs.Get(w, spot, component.PositionComponent.Kind())
	assert.Equal(t, component.Position{X: 2, Y: 2, Z: BoxSpotZ}, *spotPos)
}

func TestLoadLevelIsDeterministic(t *testing.T) {
	levels := []string{
		scenarioLevel,
		"N W W W\nW P RB W\nW BS RS W\nW BB . W\nW W W N",
	}
	for _, text := range levels {
		a, b := ecs.NewWorld(), ecs.NewWorld()
		_, err := LoadLevel(a, text)
		require.NoError(t, err)
		_, err = LoadLevel(b, text)
		require.NoError(t, err)
		assert.Equal(t, snapshotWorld(a), snapshotWorld(b))
	}
}

func TestParseLevelTokens(t *testing.T) {
	lvl, err := ParseLevel("N . W\nRB BS GS\nYB B S\nP BB RS")
	require.NoError(t, err)

	assert.Equal(t, 3, lvl.Width)
	assert.Equal(t, 4, lvl.Height)
	assert.Equal(t, []Tile{
		{X: 1, Y: 0, Kind: TileFloor},
		{X: 2, Y: 0, Kind: TileWall},
		{X: 0, Y: 1, Kind: TileBox, Colour: component.ColourRed},
		{X: 1, Y: 1, Kind: TileBoxSpot, Colour: component.ColourBlue},
		{X: 2, Y: 1, Kind: TileBoxSpot, Colour: component.ColourGreen},
		{X: 0, Y: 2, Kind: TileBox, Colour: component.ColourYellow},
		{X: 1, Y: 2, Kind: TileBox},
		{X: 2, Y: 2, Kind: TileBoxSpot},
		{X: 0, Y: 3, Kind: TilePlayer},
		{X: 1, Y: 3, Kind: TileBox, Colour: component.ColourBlue},
		{X: 2, Y: 3, Kind: TileBoxSpot, Colour: component.ColourRed},
	}, lvl.Tiles)
}

func TestVoidCellsHaveNoFloor(t *testing.T) {
	w := ecs.NewWorld()
	_, err := LoadLevel(w, "N W W W\nW P B W\nW . S W\nW W W W")
	require.NoError(t, err)
	assert.Equal(t, 15, ecs.Len(w, component.FloorTagComponent.Kind()))
}

func TestParseLevelRejectsUnknownToken(t *testing.T) {
	cases := []struct {
		name   string
		text   string
		token  string
		row    int
		column int
	}{
		{"x_in_middle", "W W W\nW X W\nW W W", "X", 1, 1},
		{"bad_colour", "P XB S", "XB", 0, 1},
		{"bad_suffix", "P RX S", "RX", 0, 1},
		{"too_long", "P S\n. RBS", "RBS", 1, 1},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := ecs.NewWorld()
			_, err := LoadLevel(w, c.text)
			require.Error(t, err)

			var perr *ParseError
			require.True(t, errors.As(err, &perr))
			assert.Equal(t, c.token, perr.Token)
			assert.Equal(t, c.row, perr.Row)
			assert.Equal(t, c.column, perr.Column)
			assert.Contains(t, err.Error(), c.token)
			assert.Equal(t, 0, ecs.Count(w), "no entities are created for a bad level")
		})
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name string
		text string
		want error
	}{
		{"missing_player", "W . B S W", ErrMissingPlayer},
		{"two_players", "P P B S", ErrMultiplePlayers},
		{"no_spots", "P . B", ErrNoBoxSpots},
		{"valid", "P B S", nil},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := ecs.NewWorld()
			_, err := LoadLevel(w, c.text)
			if c.want == nil {
				require.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, c.want)
			assert.Equal(t, 0, ecs.Count(w))
		})
	}
}

func TestValidateBuiltLevelRejectsStackedBoxes(t *testing.T) {
	lvl := &Level{
		Width:  3,
		Height: 1,
		Tiles: []Tile{
			{X: 0, Y: 0, Kind: TilePlayer},
			{X: 1, Y: 0, Kind: TileBox, Colour: component.ColourRed},
			{X: 1, Y: 0, Kind: TileBox, Colour: component.ColourBlue},
			{X: 2, Y: 0, Kind: TileBoxSpot},
		},
	}
	err := lvl.Validate()
	assert.ErrorIs(t, err, ErrDuplicateBox)
	assert.EqualError(t, err, "level: more than one box in a cell: (1, 0)")
}

func TestLevelToleratesCarriageReturns(t *testing.T) {
	lvl, err := ParseLevel("W W W\r\nW P W\r\nW S W\r\n")
	require.NoError(t, err)
	assert.Equal(t, 3, lvl.Height)
	assert.Equal(t, 3, lvl.Width)
}

func TestNewSoundBankIsPersistent(t *testing.T) {
	w := ecs.NewWorld()
	ent, err := NewSoundBank(w, []Sound{{Name: "win", Cue: nil}})
	require.NoError(t, err)

	bank, ok := ecs.Get(w, ent, component.AudioComponent.Kind())
	require.True(t, ok)
	assert.Empty(t, bank.Names, "sounds without a cue are skipped")
	assert.True(t, ecs.Has(w, ent, component.PersistentComponent.Kind()))
}
