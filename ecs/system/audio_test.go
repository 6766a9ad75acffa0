package system

import (
	"errors"
	"testing"

	"github.com/milk9111/sokoban/ecs"
	"github.com/milk9111/sokoban/ecs/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCue struct {
	plays     int
	rewinds   int
	volume    float64
	playing   bool
	rewindErr error
}

func (c *fakeCue) Rewind() error {
	c.rewinds++
	return c.rewindErr
}

func (c *fakeCue) Play()                    { c.plays++ }
func (c *fakeCue) IsPlaying() bool          { return c.playing }
func (c *fakeCue) SetVolume(volume float64) { c.volume = volume }

func TestCueForEvent(t *testing.T) {
	tests := []struct {
		evt  ecs.Event
		name string
		ok   bool
	}{
		{ecs.BoxPlacedOnSpot{IsCorrectSpot: true}, SoundBoxCorrect, true},
		{ecs.BoxPlacedOnSpot{IsCorrectSpot: false}, SoundBoxIncorrect, true},
		{ecs.PlayerWon{}, SoundWin, true},
		{ecs.PlayerHitObstacle{}, SoundWall, true},
		{ecs.EntityMoved{}, "", false},
		{ecs.LevelStart{Level: 2}, "", false},
	}
	for _, tt := range tests {
		t.Run(string(tt.evt.Kind()), func(t *testing.T) {
			name, ok := CueForEvent(tt.evt)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.name, name)
		})
	}
}

func TestAudioSystemPlaysCuesForEvents(t *testing.T) {
	w := ecs.NewWorld()
	win := &fakeCue{}
	wall := &fakeCue{rewindErr: errors.New("closed")}
	correct := &fakeCue{}
	_, err := entity.NewSoundBank(w, []entity.Sound{
		{Name: SoundWin, Cue: win, Volume: 0.8},
		{Name: SoundWall, Cue: wall},
		{Name: SoundBoxCorrect, Cue: correct},
	})
	require.NoError(t, err)

	a := NewAudioSystem(nil)
	w.Events().Push(ecs.PlayerWon{})
	w.Events().Push(ecs.PlayerHitObstacle{})
	w.Events().Push(ecs.PlayerHitObstacle{})
	a.Update(w)

	assert.Equal(t, 1, win.plays)
	assert.Equal(t, 0.8, win.volume)
	assert.Equal(t, 1, wall.plays, "one cue per tick even when the event repeats")
	assert.Equal(t, 1.0, wall.volume)
	assert.Zero(t, correct.plays)

	w.Events().Drain()
	a.Update(w)
	assert.Equal(t, 1, win.plays, "flags reset after playback")
}

func TestAudioSystemWithoutBank(t *testing.T) {
	w := ecs.NewWorld()
	w.Events().Push(ecs.PlayerWon{})
	assert.NotPanics(t, func() { NewAudioSystem(nil).Update(w) })
}

func TestAudioSystemLeavesPlayingCueAlone(t *testing.T) {
	w := ecs.NewWorld()
	wall := &fakeCue{playing: true}
	_, err := entity.NewSoundBank(w, []entity.Sound{{Name: SoundWall, Cue: wall}})
	require.NoError(t, err)

	a := NewAudioSystem(nil)
	w.Events().Push(ecs.PlayerHitObstacle{})
	a.Update(w)
	assert.Zero(t, wall.plays)
	assert.Zero(t, wall.rewinds)

	wall.playing = false
	w.Events().Drain()
	a.Update(w)
	assert.Zero(t, wall.plays, "the skipped request is dropped")

	w.Events().Push(ecs.PlayerHitObstacle{})
	a.Update(w)
	assert.Equal(t, 1, wall.plays)
}
