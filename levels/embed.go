package levels

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

//go:embed level_*
var LevelsFS embed.FS

// Name returns the file name of the level with the given index.
func Name(index int) string {
	return fmt.Sprintf("level_%02d", index)
}

// Source loads level text, preferring files in Dir over the embedded set so
// levels can be edited without rebuilding.
type Source struct {
	Dir string
}

func NewSource(dir string) *Source {
	return &Source{Dir: dir}
}

// Load returns the text of the level with the given index.
func (s *Source) Load(index int) (string, error) {
	if index < 0 {
		return "", fmt.Errorf("levels: invalid index %d", index)
	}
	name := Name(index)
	if s != nil && s.Dir != "" {
		data, err := os.ReadFile(filepath.Join(s.Dir, name))
		if err == nil {
			return string(data), nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("levels: read %s: %w", name, err)
		}
	}
	data, err := fs.ReadFile(LevelsFS, name)
	if err != nil {
		return "", fmt.Errorf("levels: read %s: %w", name, err)
	}
	return string(data), nil
}

// Exists reports whether a level with the given index can be loaded.
func (s *Source) Exists(index int) bool {
	if index < 0 {
		return false
	}
	name := Name(index)
	if s != nil && s.Dir != "" {
		if _, err := os.Stat(filepath.Join(s.Dir, name)); err == nil {
			return true
		}
	}
	_, err := fs.Stat(LevelsFS, name)
	return err == nil
}

// Next returns the index after current, wrapping to 0 past the last level.
func (s *Source) Next(current int) int {
	if s.Exists(current + 1) {
		return current + 1
	}
	return 0
}

// Path returns the on-disk path watched for the level, or "" when levels
// are only embedded.
func (s *Source) Path(index int) string {
	if s == nil || s.Dir == "" {
		return ""
	}
	return filepath.Join(s.Dir, Name(index))
}
