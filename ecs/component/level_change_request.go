package component

// LevelChangeRequest is a one-shot request emitted by input or UI code to
// ask the level system to load a level. Restart reloads the current level
// and ignores Level. Reload is a restart triggered by an edited level file:
// if the new text fails to load, the current level stays in play.
//
// The request lives on its own entity and is destroyed when consumed.
type LevelChangeRequest struct {
	Level   int
	Restart bool
	Reload  bool
}

var LevelChangeRequestComponent = NewComponent[LevelChangeRequest]()
