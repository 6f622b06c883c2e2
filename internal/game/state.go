// Package game ties the world, entities and views into a playable session.
package game

// State represents the current game state.
type State int

const (
	// StateExplore is the normal state while walking the dungeon.
	StateExplore State = iota
	// StateDeepest means the player stands on the deepest configured floor.
	StateDeepest
	// StateQuit ends the terminal loop.
	StateQuit
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateExplore:
		return "explore"
	case StateDeepest:
		return "deepest"
	case StateQuit:
		return "quit"
	default:
		return "unknown"
	}
}
