package render

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// Registry caches images by key. Keys that failed to load are remembered so
// the loader is not retried every frame.
type Registry struct {
	images  map[string]*ebiten.Image
	missing map[string]struct{}
}

func NewRegistry() *Registry {
	return &Registry{
		images:  make(map[string]*ebiten.Image),
		missing: make(map[string]struct{}),
	}
}

// RegisterImage stores an image by key.
func (r *Registry) RegisterImage(key string, img *ebiten.Image) {
	if r == nil || key == "" || img == nil {
		return
	}
	r.images[key] = img
	delete(r.missing, key)
}

// GetImage returns a cached image by key.
func (r *Registry) GetImage(key string) *ebiten.Image {
	if r == nil || key == "" {
		return nil
	}
	return r.images[key]
}

func (r *Registry) markMissing(key string) {
	r.missing[key] = struct{}{}
}

func (r *Registry) isMissing(key string) bool {
	_, ok := r.missing[key]
	return ok
}

// solidTile returns a tile-sized image filled with c, cached per colour.
func (r *Registry) solidTile(c color.Color, size int) *ebiten.Image {
	cr, cg, cb, ca := c.RGBA()
	key := fmt.Sprintf("solid:%02x%02x%02x%02x:%d", cr>>8, cg>>8, cb>>8, ca>>8, size)
	if img := r.images[key]; img != nil {
		return img
	}
	img := ebiten.NewImage(size, size)
	img.Fill(c)
	r.images[key] = img
	return img
}
