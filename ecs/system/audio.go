package system

import (
	"go.uber.org/zap"

	"github.com/milk9111/sokoban/ecs"
	"github.com/milk9111/sokoban/ecs/component"
)

// Sound cue names looked up in the sound bank.
const (
	SoundBoxCorrect   = "box_correct"
	SoundBoxIncorrect = "box_incorrect"
	SoundWin          = "win"
	SoundWall         = "wall"
)

// AudioSystem turns this tick's events into sound cues.
type AudioSystem struct {
	logger *zap.Logger
}

func NewAudioSystem(logger *zap.Logger) *AudioSystem {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AudioSystem{logger: logger}
}

// CueForEvent returns the sound played for evt, if any.
func CueForEvent(evt ecs.Event) (string, bool) {
	switch e := evt.(type) {
	case ecs.BoxPlacedOnSpot:
		if e.IsCorrectSpot {
			return SoundBoxCorrect, true
		}
		return SoundBoxIncorrect, true
	case ecs.PlayerWon:
		return SoundWin, true
	case ecs.PlayerHitObstacle:
		return SoundWall, true
	}
	return "", false
}

func (a *AudioSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	ecs.ForEach(w, component.AudioComponent.Kind(), func(_ ecs.Entity, audioComp *component.Audio) {
		for _, evt := range w.Events().Events() {
			name, ok := CueForEvent(evt)
			if !ok {
				continue
			}
			idx := audioComp.Index(name)
			if idx < 0 || idx >= len(audioComp.Play) {
				continue
			}
			audioComp.Play[idx] = true
		}

		count := len(audioComp.Play)
		if len(audioComp.Players) < count {
			count = len(audioComp.Players)
		}

		for i := 0; i < count; i++ {
			if !audioComp.Play[i] {
				continue
			}

			// A cue still playing is left alone rather than cut off.
			player := audioComp.Players[i]
			if player != nil && !player.IsPlaying() {
				if i < len(audioComp.Volume) {
					player.SetVolume(audioComp.Volume[i])
				}
				if err := player.Rewind(); err != nil {
					a.logger.Warn("rewind sound", zap.String("name", audioComp.Names[i]), zap.Error(err))
				}
				player.Play()
			}

			audioComp.Play[i] = false
		}
	})
}
