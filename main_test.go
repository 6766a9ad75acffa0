package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/milk9111/sokoban/config"
	"github.com/milk9111/sokoban/ecs"
)

func TestParseFlags(t *testing.T) {
	opts, err := parseFlags([]string{"-config", "game.yaml", "-level", "2", "-debug", "-hot"})
	require.NoError(t, err)
	assert.Equal(t, options{configPath: "game.yaml", level: 2, debug: true, hotReload: true}, opts)

	opts, err = parseFlags(nil)
	require.NoError(t, err)
	assert.Equal(t, -1, opts.level)

	_, err = parseFlags([]string{"-level", "two"})
	assert.Error(t, err)
}

func TestLoadConfigAppliesOverrides(t *testing.T) {
	cfg, err := loadConfig(options{level: -1})
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)

	cfg, err = loadConfig(options{level: 1, debug: true, hotReload: true})
	require.NoError(t, err)
	assert.Equal(t, 1, cfg.FirstLevel)
	assert.True(t, cfg.Debug)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.True(t, cfg.HotReload)
}

func TestRunReturnsStartupErrors(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.yaml")
	err := run([]string{"-config", missing})
	assert.ErrorIs(t, err, os.ErrNotExist)

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("log_level: loud\n"), 0o644))
	assert.ErrorContains(t, run([]string{"-config", bad}), "logging")

	assert.Error(t, run([]string{"-unknown"}))
}

func TestMenuState(t *testing.T) {
	won := &ecs.Gameplay{State: ecs.GameplayWon, MovesCount: 9}

	title, resume := menuState(true, won)
	assert.Equal(t, "Paused", title)
	assert.True(t, resume)

	title, resume = menuState(false, won)
	assert.Equal(t, "Level complete in 9 moves", title)
	assert.False(t, resume, "nothing to resume on a won level")
}
