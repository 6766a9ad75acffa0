package render

import (
	"image/color"
	"sort"
	"time"

	"github.com/milk9111/sokoban/ecs"
	"github.com/milk9111/sokoban/ecs/component"
)

const (
	animationCycle = time.Second
	frameDuration  = 250 * time.Millisecond
)

// Transform is the screen-space top-left corner of one tile.
type Transform struct {
	X float64
	Y float64
}

// DrawGroup is every tile drawn with one image on one layer; it maps to a
// single batched draw call.
type DrawGroup struct {
	Z          int
	Image      string
	Fallback   color.Color
	Transforms []Transform
}

// FrameIndex selects the frame of a renderable at elapsed time. Animated
// renderables cycle through four frames a second.
func FrameIndex(kind component.RenderableKind, elapsed time.Duration) int {
	if kind != component.RenderableAnimated || elapsed < 0 {
		return 0
	}
	return int((elapsed % animationCycle) / frameDuration)
}

// ImageKey resolves the image path of r at elapsed time.
func ImageKey(r *component.Renderable, elapsed time.Duration) string {
	return r.Path(FrameIndex(r.Kind, elapsed))
}

type groupKey struct {
	z     int
	image string
}

// Batch groups the renderable entities of w by layer and then by image.
// Groups are ordered by ascending Z, then by image key, so the output is
// deterministic. Within a group transforms follow arena order.
func Batch(w *ecs.World, elapsed time.Duration, tileSize float64) []DrawGroup {
	index := make(map[groupKey]int)
	var groups []DrawGroup

	ecs.ForEach2(w, component.PositionComponent.Kind(), component.RenderableComponent.Kind(), func(_ ecs.Entity, pos *component.Position, r *component.Renderable) {
		key := groupKey{z: pos.Z, image: ImageKey(r, elapsed)}
		i, ok := index[key]
		if !ok {
			i = len(groups)
			index[key] = i
			groups = append(groups, DrawGroup{Z: key.z, Image: key.image, Fallback: r.Fallback})
		}
		groups[i].Transforms = append(groups[i].Transforms, Transform{
			X: float64(pos.X) * tileSize,
			Y: float64(pos.Y) * tileSize,
		})
	})

	sort.Slice(groups, func(i, j int) bool {
		if groups[i].Z != groups[j].Z {
			return groups[i].Z < groups[j].Z
		}
		return groups[i].Image < groups[j].Image
	})
	return groups
}

// TransformCount returns the number of tiles across all groups.
func TransformCount(groups []DrawGroup) int {
	n := 0
	for _, g := range groups {
		n += len(g.Transforms)
	}
	return n
}
