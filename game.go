package main

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"go.uber.org/zap"

	"github.com/milk9111/sokoban/assets"
	"github.com/milk9111/sokoban/config"
	"github.com/milk9111/sokoban/ecs"
	"github.com/milk9111/sokoban/ecs/entity"
	"github.com/milk9111/sokoban/ecs/render"
	"github.com/milk9111/sokoban/ecs/system"
	"github.com/milk9111/sokoban/levels"
)

type Game struct {
	cfg    config.Config
	logger *zap.Logger

	world     *ecs.World
	scheduler *ecs.Scheduler
	levelSys  *system.LevelSystem
	renderSys *system.RenderSystem
	source    *levels.Source
	watcher   *levels.Watcher
	menu      *Menu
	paused    bool
}

// NewGame wires the world and loads the first level. A level that cannot be
// loaded is a startup error.
func NewGame(cfg config.Config, logger *zap.Logger) (*Game, error) {
	source := levels.NewSource(cfg.LevelsDir)
	world := ecs.NewWorld()
	levelSys := system.NewLevelSystem(source, cfg.FirstLevel, logger)

	g := &Game{
		cfg:      cfg,
		logger:   logger,
		world:    world,
		levelSys: levelSys,
		source:   source,
		renderSys: system.NewRenderSystem(
			render.NewImageLoader(cfg.ResourcesDir, cfg.TileSize, logger),
			float64(cfg.TileSize),
		),
	}
	g.scheduler = ecs.NewScheduler(
		system.NewInputSystem(),
		levelSys,
		system.NewMovementSystem(),
		system.NewGameplaySystem(logger),
		system.NewAudioSystem(logger),
		system.NewTimeSystem(cfg.TPS),
	)
	g.menu = NewMenu(g, cfg.Window.Width, cfg.Window.Height)

	if err := g.loadSounds(); err != nil {
		return nil, err
	}

	levelSys.Update(world)
	if err := levelSys.Err(); err != nil {
		return nil, err
	}

	if cfg.HotReload {
		watcher, err := levels.NewWatcher(cfg.LevelsDir)
		if err != nil {
			logger.Warn("level hot reload disabled", zap.String("dir", cfg.LevelsDir), zap.Error(err))
		} else {
			g.watcher = watcher
		}
	}
	return g, nil
}

func (g *Game) loadSounds() error {
	loader := assets.NewLoader(g.cfg.ResourcesDir)
	sounds := make([]entity.Sound, 0, len(g.cfg.Sounds))
	for _, s := range g.cfg.Sounds {
		player, err := loader.LoadAudioPlayer(s.File)
		if err != nil {
			g.logger.Warn("sound unavailable", zap.String("name", s.Name), zap.String("file", loader.Path(s.File)), zap.Error(err))
			continue
		}
		sounds = append(sounds, entity.Sound{Name: s.Name, Cue: player, Volume: s.Volume})
	}
	if _, err := entity.NewSoundBank(g.world, sounds); err != nil {
		return fmt.Errorf("game: %w", err)
	}
	return nil
}

func (g *Game) Update() error {
	g.pollWatcher()

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.paused = !g.paused
	}
	if g.menuVisible() {
		title, resume := menuState(g.paused, g.world.Gameplay())
		g.menu.SetTitle(title)
		g.menu.SetResumeVisible(resume)
		g.menu.ui.Update()
	}
	if !g.paused {
		g.scheduler.Update(g.world)
	}
	return g.levelSys.Err()
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.renderSys.Draw(g.world, screen)

	if !g.menuVisible() {
		return
	}
	title, resume := menuState(g.paused, g.world.Gameplay())
	g.menu.SetTitle(title)
	g.menu.SetResumeVisible(resume)
	g.menu.ui.Draw(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.Window.Width, g.cfg.Window.Height
}

// Close stops the level watcher, if any.
func (g *Game) Close() error {
	if g.watcher == nil {
		return nil
	}
	return g.watcher.Close()
}

// menuState returns the overlay title and whether Resume applies. Pausing
// takes precedence over a won level.
func menuState(paused bool, gameplay *ecs.Gameplay) (string, bool) {
	if paused {
		return "Paused", true
	}
	return fmt.Sprintf("Level complete in %d moves", gameplay.MovesCount), false
}

func (g *Game) menuVisible() bool {
	return g.paused || g.world.Gameplay().State == ecs.GameplayWon
}

func (g *Game) resume() {
	g.paused = false
}

func (g *Game) restart() {
	system.RequestRestart(g.world)
	g.paused = false
}

func (g *Game) nextLevel() {
	system.RequestLevel(g.world, g.source.Next(g.levelSys.Current()))
	g.paused = false
}

// pollWatcher restarts the current level when its file changes on disk.
func (g *Game) pollWatcher() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case name, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			if name != levels.Name(g.levelSys.Current()) {
				continue
			}
			g.logger.Info("level file changed, reloading", zap.String("file", name))
			system.RequestReload(g.world)
		case err, ok := <-g.watcher.Errors:
			if ok {
				g.logger.Warn("level watcher", zap.Error(err))
			}
		default:
			return
		}
	}
}
