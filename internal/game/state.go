// Package game runs a snake session: the Running/Paused/Lost state machine
// shared by every front-end, and the fixed-tick loop that drives it over a
// Terminal.
package game

// State is the session phase.
type State int

const (
	StateRunning State = iota
	StatePaused
	StateLost
)

func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StatePaused:
		return "paused"
	case StateLost:
		return "lost"
	default:
		return "unknown"
	}
}

// Signal tells the caller what to do after a step.
type Signal int

const (
	SignalNone Signal = iota // keep going
	SignalQuit               // leave the loop and restore the terminal
)
