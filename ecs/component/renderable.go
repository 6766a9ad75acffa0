package component

import "image/color"

type RenderableKind int

const (
	RenderableStatic RenderableKind = iota
	RenderableAnimated
)

// Renderable names the image frames drawn at an entity's Position. Fallback
// is drawn as a solid tile when an image cannot be loaded.
type Renderable struct {
	Kind     RenderableKind
	Paths    []string
	Fallback color.Color
}

// Path returns the frame at index, wrapping around the available frames.
func (r Renderable) Path(index int) string {
	if len(r.Paths) == 0 {
		return ""
	}
	if index < 0 {
		index = 0
	}
	return r.Paths[index%len(r.Paths)]
}

var RenderableComponent = NewComponent[Renderable]()
