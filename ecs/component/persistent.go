package component

// Persistent marks an entity that survives level reloads, such as the sound
// bank. ID names the singleton for logging.
type Persistent struct {
	ID string
}

var PersistentComponent = NewComponent[Persistent]()
