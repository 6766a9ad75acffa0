package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"github.com/milk9111/sokoban/config"
	"github.com/milk9111/sokoban/logging"
)

type options struct {
	configPath string
	level      int
	debug      bool
	hotReload  bool
}

func parseFlags(args []string) (options, error) {
	var opts options
	fs := flag.NewFlagSet("sokoban", flag.ContinueOnError)
	fs.StringVar(&opts.configPath, "config", "", "path to a YAML config file")
	fs.IntVar(&opts.level, "level", -1, "index of the first level (overrides config)")
	fs.BoolVar(&opts.debug, "debug", false, "enable debug logging")
	fs.BoolVar(&opts.hotReload, "hot", false, "reload the current level when its file changes")
	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	return opts, nil
}

// loadConfig reads the config file and applies command-line overrides.
func loadConfig(opts options) (config.Config, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return config.Config{}, err
	}
	if opts.level >= 0 {
		cfg.FirstLevel = opts.level
	}
	if opts.debug {
		cfg.Debug = true
		cfg.LogLevel = "debug"
	}
	if opts.hotReload {
		cfg.HotReload = true
	}
	return cfg, nil
}

// run returns instead of exiting so the logger is flushed and the watcher
// closed on every path.
func run(args []string) error {
	opts, err := parseFlags(args)
	if err != nil {
		return err
	}
	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}

	logger, err := logging.New(cfg.LogLevel, cfg.Debug)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetTPS(cfg.TPS)

	game, err := NewGame(cfg, logger)
	if err != nil {
		logger.Error("start game", zap.Error(err))
		return fmt.Errorf("start game: %w", err)
	}
	defer func() { _ = game.Close() }()

	if err := ebiten.RunGame(game); err != nil {
		logger.Error("game stopped", zap.Error(err))
		return fmt.Errorf("run game: %w", err)
	}
	return nil
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		log.Fatal(err)
	}
}
