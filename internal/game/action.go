package game

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/crawlview/internal/world"
)

// ActionKind is one thing the player can do in a turn.
type ActionKind int

const (
	ActWait ActionKind = iota
	ActMove            // Step in an absolute direction and face it
	ActForward         // Step along the facing
	ActBack            // Step away from the facing, keeping it
	ActTurnLeft
	ActTurnRight
	ActDescend
	ActAscend
	ActTravel // One step toward the down stairs
	ActQuit
)

var actionNames = [...]string{
	ActWait:      "wait",
	ActMove:      "move",
	ActForward:   "forward",
	ActBack:      "back",
	ActTurnLeft:  "turn_left",
	ActTurnRight: "turn_right",
	ActDescend:   "descend",
	ActAscend:    "ascend",
	ActTravel:    "travel",
	ActQuit:      "quit",
}

// String returns the action name used in traces.
func (k ActionKind) String() string {
	if k < 0 || int(k) >= len(actionNames) {
		return "unknown"
	}
	return actionNames[k]
}

// Action is a player command. Dir is used by ActMove only.
type Action struct {
	Kind ActionKind
	Dir  world.Direction
}

// Move returns an absolute move action.
func Move(d world.Direction) Action {
	return Action{Kind: ActMove, Dir: d}
}

// ActionForRune maps the letter keys: w/s step along the facing, a/d turn,
// hjkl move absolutely, < and > take stairs, t travels and . waits.
func ActionForRune(r rune) (Action, bool) {
	switch r {
	case 'w', 'W':
		return Action{Kind: ActForward}, true
	case 's', 'S':
		return Action{Kind: ActBack}, true
	case 'a', 'A':
		return Action{Kind: ActTurnLeft}, true
	case 'd', 'D':
		return Action{Kind: ActTurnRight}, true
	case 'k':
		return Move(world.North), true
	case 'j':
		return Move(world.South), true
	case 'h':
		return Move(world.West), true
	case 'l':
		return Move(world.East), true
	case '>':
		return Action{Kind: ActDescend}, true
	case '<':
		return Action{Kind: ActAscend}, true
	case 't', 'T':
		return Action{Kind: ActTravel}, true
	case '.':
		return Action{Kind: ActWait}, true
	case 'q', 'Q':
		return Action{Kind: ActQuit}, true
	}
	return Action{}, false
}

// ActionForKey maps a terminal key event. Arrow keys move absolutely.
func ActionForKey(ev *tcell.EventKey) (Action, bool) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return Action{Kind: ActQuit}, true
	case tcell.KeyUp:
		return Move(world.North), true
	case tcell.KeyDown:
		return Move(world.South), true
	case tcell.KeyLeft:
		return Move(world.West), true
	case tcell.KeyRight:
		return Move(world.East), true
	case tcell.KeyRune:
		return ActionForRune(ev.Rune())
	}
	return Action{}, false
}

// ParseActions converts a string of action letters, skipping unknown ones.
func ParseActions(s string) []Action {
	var out []Action
	for _, r := range s {
		if a, ok := ActionForRune(r); ok {
			out = append(out, a)
		}
	}
	return out
}
