package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Window       WindowConfig  `yaml:"window"`
	TileSize     int           `yaml:"tile_size"`
	TPS          int           `yaml:"tps"`
	FirstLevel   int           `yaml:"first_level"`
	LevelsDir    string        `yaml:"levels_dir"`
	ResourcesDir string        `yaml:"resources_dir"`
	LogLevel     string        `yaml:"log_level"`
	Debug        bool          `yaml:"debug"`
	HotReload    bool          `yaml:"hot_reload"`
	Sounds       []SoundConfig `yaml:"sounds"`
}

type WindowConfig struct {
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
}

// SoundConfig binds a cue name to an audio file under ResourcesDir.
type SoundConfig struct {
	Name   string  `yaml:"name"`
	File   string  `yaml:"file"`
	Volume float64 `yaml:"volume"`
}

func Default() Config {
	return Config{
		Window: WindowConfig{
			Title:  "Sokoban",
			Width:  640,
			Height: 480,
		},
		TileSize:     32,
		TPS:          60,
		FirstLevel:   0,
		LevelsDir:    "levels",
		ResourcesDir: "resources",
		LogLevel:     "info",
		Sounds: []SoundConfig{
			{Name: "box_correct", File: "sounds/correct.wav", Volume: 1},
			{Name: "box_incorrect", File: "sounds/incorrect.wav", Volume: 1},
			{Name: "win", File: "sounds/win.wav", Volume: 1},
			{Name: "wall", File: "sounds/wall.wav", Volume: 0.5},
		},
	}
}

// Load reads a YAML config over the defaults. An empty path returns the
// defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: load %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: unmarshal %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	var errs []error
	if c.TileSize <= 0 {
		errs = append(errs, fmt.Errorf("tile_size must be positive, got %d", c.TileSize))
	}
	if c.TPS <= 0 {
		errs = append(errs, fmt.Errorf("tps must be positive, got %d", c.TPS))
	}
	if c.FirstLevel < 0 {
		errs = append(errs, fmt.Errorf("first_level must not be negative, got %d", c.FirstLevel))
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height))
	}
	for i, s := range c.Sounds {
		if s.Name == "" || s.File == "" {
			errs = append(errs, fmt.Errorf("sounds[%d]: name and file are required", i))
		}
	}
	return errors.Join(errs...)
}
