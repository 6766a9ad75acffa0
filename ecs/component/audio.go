package component

// Cue is a playable sound. *audio.Player from ebiten satisfies it.
type Cue interface {
	Rewind() error
	Play()
	IsPlaying() bool
	SetVolume(volume float64)
}

// Audio is a bank of named cues. Systems request playback by setting the
// matching Play flag; the audio system consumes the flags every tick.
type Audio struct {
	Names   []string
	Players []Cue
	Volume  []float64
	Play    []bool
}

// Index returns the slot of the cue called name, or -1.
func (a *Audio) Index(name string) int {
	if a == nil {
		return -1
	}
	for i, n := range a.Names {
		if n == name {
			return i
		}
	}
	return -1
}

var AudioComponent = NewComponent[Audio]()
