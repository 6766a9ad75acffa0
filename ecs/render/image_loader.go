package render

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	_ "image/png"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

// ImageLoader resolves image keys against a resources directory, falling
// back to a solid tile when a file is missing or undecodable.
type ImageLoader struct {
	dir      string
	tileSize int
	registry *Registry
	logger   *zap.Logger
}

func NewImageLoader(dir string, tileSize int, logger *zap.Logger) *ImageLoader {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ImageLoader{
		dir:      dir,
		tileSize: tileSize,
		registry: NewRegistry(),
		logger:   logger,
	}
}

// Image returns the image for key, or a tile filled with fallback.
func (l *ImageLoader) Image(key string, fallback color.Color) *ebiten.Image {
	if img := l.registry.GetImage(key); img != nil {
		return img
	}
	if !l.registry.isMissing(key) {
		img, err := l.load(key)
		if err == nil {
			l.registry.RegisterImage(key, img)
			return img
		}
		l.registry.markMissing(key)
		l.logger.Warn("image unavailable, drawing placeholder", zap.String("key", key), zap.Error(err))
	}
	if fallback == nil {
		fallback = color.White
	}
	return l.registry.solidTile(fallback, l.tileSize)
}

func (l *ImageLoader) load(key string) (*ebiten.Image, error) {
	if key == "" {
		return nil, fmt.Errorf("empty image key")
	}
	tried := []string{filepath.Join(l.dir, filepath.FromSlash(key)), key}
	for _, p := range tried {
		b, err := os.ReadFile(p)
		if err != nil {
			continue
		}
		im, _, err := image.Decode(bytes.NewReader(b))
		if err != nil {
			return nil, fmt.Errorf("decode image %s: %w", p, err)
		}
		return ebiten.NewImageFromImage(im), nil
	}
	return nil, fmt.Errorf("failed to load image %s", key)
}
