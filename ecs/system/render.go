package system

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/sokoban/ecs"
	"github.com/milk9111/sokoban/ecs/render"
	"golang.org/x/image/font/basicfont"
)

const statusLineHeight = 20

var (
	backgroundColor = color.NRGBA{R: 0xf2, G: 0xf2, B: 0xf2, A: 0xff}
	statusColor     = color.Black
)

// ImageSource resolves an image key, substituting a solid fallback tile.
type ImageSource interface {
	Image(key string, fallback color.Color) *ebiten.Image
}

// RenderSystem draws the batched level followed by the status overlay.
type RenderSystem struct {
	images   ImageSource
	tileSize float64
	face     ebtext.Face
}

func NewRenderSystem(images ImageSource, tileSize float64) *RenderSystem {
	return &RenderSystem{
		images:   images,
		tileSize: tileSize,
		face:     ebtext.NewGoXFace(basicfont.Face7x13),
	}
}

// StatusLines are the fixed UI lines drawn beside the level.
func StatusLines(gameplay *ecs.Gameplay, fps float64) []string {
	return []string{
		fmt.Sprintf("Level: %02d", gameplay.Level),
		fmt.Sprintf("State: %s", gameplay.State),
		fmt.Sprintf("Moves: %d", gameplay.MovesCount),
		fmt.Sprintf("FPS: %.0f", fps),
	}
}

func (r *RenderSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if r == nil || w == nil || screen == nil {
		return
	}
	screen.Fill(backgroundColor)

	groups := render.Batch(w, w.Time().Elapsed, r.tileSize)
	maxX := 0.0
	for _, group := range groups {
		img := r.images.Image(group.Image, group.Fallback)
		if img == nil {
			continue
		}
		bounds := img.Bounds()
		sx := r.tileSize / float64(bounds.Dx())
		sy := r.tileSize / float64(bounds.Dy())
		// Consecutive draws of one image are merged into a single draw call.
		for _, t := range group.Transforms {
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Scale(sx, sy)
			op.GeoM.Translate(t.X, t.Y)
			screen.DrawImage(img, op)
			if t.X > maxX {
				maxX = t.X
			}
		}
	}

	x := maxX + 2*r.tileSize
	for i, line := range StatusLines(w.Gameplay(), ebiten.ActualFPS()) {
		op := &ebtext.DrawOptions{}
		op.GeoM.Translate(x, r.tileSize+float64(i*statusLineHeight))
		op.ColorScale.ScaleWithColor(statusColor)
		ebtext.Draw(screen, line, r.face, op)
	}
}
