package state

// PlaybackState represents the current state of ghost playback
type PlaybackState int

const (
	StateLoading PlaybackState = iota
	StatePlaying
	StatePaused
	StateFinished
)

// String returns the string representation of the playback state
func (s PlaybackState) String() string {
	switch s {
	case StateLoading:
		return "Loading"
	case StatePlaying:
		return "Playing"
	case StatePaused:
		return "Paused"
	case StateFinished:
		return "Finished"
	default:
		return "Unknown"
	}
}
