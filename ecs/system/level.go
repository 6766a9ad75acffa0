package system

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/milk9111/sokoban/ecs"
	"github.com/milk9111/sokoban/ecs/component"
	"github.com/milk9111/sokoban/ecs/entity"
)

// LevelSource returns the text of the level with the given index.
type LevelSource interface {
	Load(index int) (string, error)
}

// LevelSystem owns level (re)loading. It loads the initial level on its
// first update and afterwards consumes LevelChangeRequest entities. A load
// failure is fatal: it is kept in Err and no further loads are attempted.
// Failed reloads are the exception; they are logged and the current level
// keeps running.
type LevelSystem struct {
	source       LevelSource
	logger       *zap.Logger
	initialLevel int
	current      int
	initialized  bool
	err          error
}

func NewLevelSystem(source LevelSource, initialLevel int, logger *zap.Logger) *LevelSystem {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LevelSystem{
		source:       source,
		logger:       logger,
		initialLevel: initialLevel,
		current:      initialLevel,
	}
}

// RequestLevel asks the level system to load level on its next update.
func RequestLevel(w *ecs.World, level int) {
	if w == nil {
		return
	}
	ent := ecs.CreateEntity(w)
	_ = ecs.Add(w, ent, component.LevelChangeRequestComponent.Kind(), &component.LevelChangeRequest{Level: level})
}

// RequestRestart asks the level system to reload the current level.
func RequestRestart(w *ecs.World) {
	if w == nil {
		return
	}
	ent := ecs.CreateEntity(w)
	_ = ecs.Add(w, ent, component.LevelChangeRequestComponent.Kind(), &component.LevelChangeRequest{Restart: true})
}

// RequestReload asks the level system to re-read the current level, keeping
// it when the new text does not load.
func RequestReload(w *ecs.World) {
	if w == nil {
		return
	}
	ent := ecs.CreateEntity(w)
	_ = ecs.Add(w, ent, component.LevelChangeRequestComponent.Kind(), &component.LevelChangeRequest{Reload: true})
}

func (l *LevelSystem) Update(w *ecs.World) {
	if l == nil || w == nil || l.err != nil {
		return
	}

	if !l.initialized {
		l.initialized = true
		l.err = l.load(w, l.initialLevel)
		return
	}

	req, ok := l.consumeLatestRequest(w)
	if !ok {
		return
	}
	if req.Reload {
		if err := l.load(w, l.current); err != nil {
			l.logger.Warn("level reload failed, keeping current level", zap.Int("level", l.current), zap.Error(err))
		}
		return
	}
	target := req.Level
	if req.Restart {
		target = l.current
	}
	l.err = l.load(w, target)
}

// Err returns the fatal load error, if any.
func (l *LevelSystem) Err() error {
	if l == nil {
		return nil
	}
	return l.err
}

// Current returns the index of the loaded level.
func (l *LevelSystem) Current() int {
	if l == nil {
		return 0
	}
	return l.current
}

func (l *LevelSystem) consumeLatestRequest(w *ecs.World) (component.LevelChangeRequest, bool) {
	var latest component.LevelChangeRequest
	found := false
	requestEntities := make([]ecs.Entity, 0)

	ecs.ForEach(w, component.LevelChangeRequestComponent.Kind(), func(ent ecs.Entity, req *component.LevelChangeRequest) {
		requestEntities = append(requestEntities, ent)
		latest = *req
		found = true
	})
	for _, ent := range requestEntities {
		l.logger.Debug("level change request", zap.Object("entity", ent))
		ecs.DestroyEntity(w, ent)
	}
	return latest, found
}

// load validates the new level before touching the world, so a bad level
// file leaves the previous entities in place.
func (l *LevelSystem) load(w *ecs.World, index int) error {
	if l.source == nil {
		return fmt.Errorf("load level %02d: no level source", index)
	}
	text, err := l.source.Load(index)
	if err != nil {
		return fmt.Errorf("load level %02d: %w", index, err)
	}
	lvl, err := entity.ParseLevel(text)
	if err != nil {
		return fmt.Errorf("load level %02d: %w", index, err)
	}
	if err := lvl.Validate(); err != nil {
		return fmt.Errorf("load level %02d: %w", index, err)
	}

	ecs.Reset(w, index)
	if err := entity.Spawn(w, lvl); err != nil {
		return fmt.Errorf("load level %02d: %w", index, err)
	}
	l.current = index
	w.Events().Push(ecs.LevelStart{Level: index})
	l.logger.Info("level loaded",
		zap.Int("level", index),
		zap.Int("width", lvl.Width),
		zap.Int("height", lvl.Height),
		zap.Int("entities", ecs.Count(w)),
	)
	return nil
}
