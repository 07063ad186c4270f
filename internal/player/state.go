package player

import "errors"

// ErrNotLoaded guards playback before a decoded buffer exists.
var ErrNotLoaded = errors.New("audio not loaded")

// State is the playback lifecycle.
type State int

const (
	StateIdle State = iota
	StateLoading
	StateReady
	StatePlaying
	StateStopping
)

// String returns the name of the state.
func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateReady:
		return "ready"
	case StatePlaying:
		return "playing"
	case StateStopping:
		return "stopping"
	default:
		return "idle"
	}
}
