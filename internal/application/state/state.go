package state

// GameState represents the current state of the host session
type GameState int

const (
	StatePlaying GameState = iota
	StatePaused
	StateGameOver
	StateTraceEnded
)

// String returns the string representation of the game state
func (s GameState) String() string {
	switch s {
	case StatePlaying:
		return "Playing"
	case StatePaused:
		return "Paused"
	case StateGameOver:
		return "GameOver"
	case StateTraceEnded:
		return "TraceEnded"
	default:
		return "Unknown"
	}
}

// Steps reports whether the simulation advances in this state
func (s GameState) Steps() bool {
	return s == StatePlaying
}

// Event is something that moves the session between states
type Event int

const (
	EventPause Event = iota
	EventPlayerDied
	EventInputEnded
	EventRestart
)

// Next returns the state after ev. Events that do not apply are ignored.
func (s GameState) Next(ev Event) GameState {
	switch ev {
	case EventPause:
		// toggles
		switch s {
		case StatePlaying:
			return StatePaused
		case StatePaused:
			return StatePlaying
		}
	case EventPlayerDied:
		if s == StatePlaying {
			return StateGameOver
		}
	case EventInputEnded:
		if s == StatePlaying {
			return StateTraceEnded
		}
	case EventRestart:
		return StatePlaying
	}
	return s
}
