package puppetk

// State of a single session, resolutions are cached per State.
type State struct {
	ID int64
	// Interactive is set when a person is watching the session, e.g. to flash
	// elements as they are used.
	Interactive bool
}

// NewState with a process unique ID
func NewState(interactive bool) *State {
	return &State{ID: GetSessionID(), Interactive: interactive}
}
