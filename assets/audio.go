package assets

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

const sampleRate = 44100

var (
	audioContext     *audio.Context
	audioContextOnce sync.Once
)

// AudioContext returns the process-wide audio context. Ebiten allows only
// one per process.
func AudioContext() *audio.Context {
	audioContextOnce.Do(func() {
		audioContext = audio.NewContext(sampleRate)
	})
	return audioContext
}

// Loader reads asset files relative to a resources directory.
type Loader struct {
	dir string
}

func NewLoader(dir string) *Loader {
	return &Loader{dir: dir}
}

// Path resolves an assets-relative path against the resources directory.
func (l *Loader) Path(path string) string {
	clean := cleanAssetPath(path)
	if l == nil || l.dir == "" {
		return filepath.FromSlash(clean)
	}
	return filepath.Join(l.dir, filepath.FromSlash(clean))
}

// LoadFile loads an asset by resources-relative path.
func (l *Loader) LoadFile(path string) ([]byte, error) {
	return os.ReadFile(l.Path(path))
}

// LoadAudioPlayer loads an audio asset and creates an audio player.
func (l *Loader) LoadAudioPlayer(path string) (*audio.Player, error) {
	b, err := l.LoadFile(path)
	if err != nil {
		return nil, err
	}

	ctx := AudioContext()
	reader := bytes.NewReader(b)

	if strings.HasSuffix(strings.ToLower(path), ".wav") {
		stream, err := wav.DecodeWithSampleRate(ctx.SampleRate(), reader)
		if err != nil {
			return nil, fmt.Errorf("decode wav %q: %w", path, err)
		}
		return ctx.NewPlayer(stream)
	}

	// Fallback for already-decoded PCM assets in Ebiten's native format.
	return ctx.NewPlayerFromBytes(b), nil
}

func cleanAssetPath(path string) string {
	if path == "" {
		return ""
	}
	s := filepath.ToSlash(path)
	if strings.HasPrefix(s, "resources/") {
		return strings.TrimPrefix(s, "resources/")
	}
	return strings.TrimPrefix(s, "/")
}
