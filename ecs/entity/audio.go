package entity

import (
	"fmt"

	"github.com/milk9111/sokoban/ecs"
	"github.com/milk9111/sokoban/ecs/component"
)

// Sound is a loaded cue registered in the sound bank under Name.
type Sound struct {
	Name   string
	Cue    component.Cue
	Volume float64
}

// NewSoundBank creates the persistent entity holding every sound cue.
func NewSoundBank(w *ecs.World, sounds []Sound) (ecs.Entity, error) {
	if w == nil {
		return 0, fmt.Errorf("sound bank: world is nil")
	}

	n := len(sounds)
	bank := &component.Audio{
		Names:   make([]string, 0, n),
		Players: make([]component.Cue, 0, n),
		Volume:  make([]float64, 0, n),
		Play:    make([]bool, 0, n),
	}
	for _, s := range sounds {
		if s.Cue == nil {
			continue
		}
		volume := s.Volume
		if volume <= 0 {
			volume = 1
		}
		bank.Names = append(bank.Names, s.Name)
		bank.Players = append(bank.Players, s.Cue)
		bank.Volume = append(bank.Volume, volume)
		bank.Play = append(bank.Play, false)
	}

	ent := ecs.CreateEntity(w)
	if err := ecs.Add(w, ent, component.AudioComponent.Kind(), bank); err != nil {
		return 0, fmt.Errorf("sound bank: add audio: %w", err)
	}
	if err := ecs.Add(w, ent, component.PersistentComponent.Kind(), &component.Persistent{ID: "sound_bank"}); err != nil {
		return 0, fmt.Errorf("sound bank: add persistent: %w", err)
	}
	return ent, nil
}
