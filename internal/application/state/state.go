// Package state defines the coarse game flow states.
package state

// GameState is the top-level flow state of a play session.
type GameState int

const (
	Menu GameState = iota
	Starting
	Playing
	Paused
	GameOver
	Victory
)

// String returns the string representation of the state.
func (s GameState) String() string {
	switch s {
	case Menu:
		return "Menu"
	case Starting:
		return "Starting"
	case Playing:
		return "Playing"
	case Paused:
		return "Paused"
	case GameOver:
		return "GameOver"
	case Victory:
		return "Victory"
	default:
		return "Unknown"
	}
}
