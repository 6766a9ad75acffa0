package render

import (
	"testing"
	"time"

	"github.com/milk9111/sokoban/ecs"
	"github.com/milk9111/sokoban/ecs/component"
	"github.com/milk9111/sokoban/ecs/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const scenarioLevel = `
W W W W
W P B W
W . S W
W W W W
`

func TestFrameIndex(t *testing.T) {
	tests := []struct {
		elapsed time.Duration
		want    int
	}{
		{0, 0},
		{250 * time.Millisecond, 1},
		{500 * time.Millisecond, 2},
		{750 * time.Millisecond, 3},
		{999 * time.Millisecond, 3},
		{1000 * time.Millisecond, 0},
		{2260 * time.Millisecond, 1},
	}
	for _, tt := range tests {
		t.Run(tt.elapsed.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, FrameIndex(component.RenderableAnimated, tt.elapsed))
			assert.Equal(t, 0, FrameIndex(component.RenderableStatic, tt.elapsed))
		})
	}
}

func TestImageKeyWrapsFrames(t *testing.T) {
	r := &component.Renderable{
		Kind:  component.RenderableAnimated,
		Paths: []string{"a.png", "b.png"},
	}
	assert.Equal(t, "a.png", ImageKey(r, 0))
	assert.Equal(t, "b.png", ImageKey(r, 250*time.Millisecond))
	assert.Equal(t, "a.png", ImageKey(r, 500*time.Millisecond))
	assert.Equal(t, "b.png", ImageKey(r, 750*time.Millisecond))
}

func TestBatchScenario(t *testing.T) {
	w := ecs.NewWorld()
	_, err := entity.LoadLevel(w, scenarioLevel)
	require.NoError(t, err)

	groups := Batch(w, 0, 32)

	type summary struct {
		z     int
		image string
		count int
	}
	got := make([]summary, 0, len(groups))
	for _, g := range groups {
		got = append(got, summary{g.Z, g.Image, len(g.Transforms)})
	}
	assert.Equal(t, []summary{
		{entity.FloorZ, "images/floor.png", 16},
		{entity.BoxSpotZ, "images/box_spot_default.png", 1},
		{entity.ObjectZ, "images/box_default_1.png", 1},
		{entity.ObjectZ, "images/player_1.png", 1},
		{entity.ObjectZ, "images/wall.png", 12},
	}, got)

	renderables := ecs.Len(w, component.RenderableComponent.Kind())
	assert.Equal(t, renderables, TransformCount(groups))

	for _, g := range groups {
		if g.Image != "images/player_1.png" {
			continue
		}
		assert.Equal(t, []Transform{{X: 32, Y: 32}}, g.Transforms)
	}
}

func TestBatchAnimatesOnlyAnimated(t *testing.T) {
	w := ecs.NewWorld()
	_, err := entity.LoadLevel(w, scenarioLevel)
	require.NoError(t, err)

	images := map[string]bool{}
	for _, g := range Batch(w, 500*time.Millisecond, 32) {
		images[g.Image] = true
	}
	assert.True(t, images["images/player_3.png"])
	assert.True(t, images["images/box_default_1.png"])
	assert.True(t, images["images/floor.png"])
	assert.True(t, images["images/wall.png"])
}

func TestBatchIsDeterministic(t *testing.T) {
	a := ecs.NewWorld()
	b := ecs.NewWorld()
	_, err := entity.LoadLevel(a, "W W W W W\nW P RB BS W\nW BB . RS W\nW W W W W")
	require.NoError(t, err)
	_, err = entity.LoadLevel(b, "W W W W W\nW P RB BS W\nW BB . RS W\nW W W W W")
	require.NoError(t, err)

	elapsed := 1300 * time.Millisecond
	assert.Equal(t, Batch(a, elapsed, 16), Batch(b, elapsed, 16))

	groups := Batch(a, elapsed, 16)
	for i := 1; i < len(groups); i++ {
		prev, cur := groups[i-1], groups[i]
		ordered := prev.Z < cur.Z || (prev.Z == cur.Z && prev.Image < cur.Image)
		assert.True(t, ordered, "group %d (%d, %s) out of order", i, cur.Z, cur.Image)
	}
}

func TestBatchEmptyWorld(t *testing.T) {
	assert.Empty(t, Batch(ecs.NewWorld(), 0, 32))
}
