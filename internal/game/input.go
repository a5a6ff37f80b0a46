package game

import "github.com/gdamore/tcell/v2"

// Action represents one demo keypress.
type Action uint8

const (
	ActionNone Action = iota
	ActionMoveN
	ActionMoveS
	ActionMoveE
	ActionMoveW
	ActionMoveNE
	ActionMoveNW
	ActionMoveSE
	ActionMoveSW
	ActionCycleMode
	ActionCycleMetric
	ActionCycleMap
	ActionRadiusUp
	ActionRadiusDown
	ActionLooseness // looseness digit; value carried separately
	ActionToggleEmitter
	ActionForgetMap
	ActionQuit
)

// keyToAction maps a tcell key event to a demo action. The second return
// carries the looseness value for digit keys.
func keyToAction(ev *tcell.EventKey) (Action, int) {
	switch ev.Key() {
	case tcell.KeyUp:
		return ActionMoveN, 0
	case tcell.KeyDown:
		return ActionMoveS, 0
	case tcell.KeyRight:
		return ActionMoveE, 0
	case tcell.KeyLeft:
		return ActionMoveW, 0
	case tcell.KeyTab:
		return ActionCycleMode, 0
	case tcell.KeyEscape:
		return ActionQuit, 0
	}

	switch r := ev.Rune(); r {
	case 'k', 'K':
		return ActionMoveN, 0
	case 'j', 'J':
		return ActionMoveS, 0
	case 'l', 'L':
		return ActionMoveE, 0
	case 'h', 'H':
		return ActionMoveW, 0
	case 'y', 'Y':
		return ActionMoveNW, 0
	case 'u', 'U':
		return ActionMoveNE, 0
	case 'b', 'B':
		return ActionMoveSW, 0
	case 'n', 'N':
		return ActionMoveSE, 0
	case 'm':
		return ActionCycleMode, 0
	case 'c', 'C':
		return ActionCycleMetric, 0
	case 'M':
		return ActionCycleMap, 0
	case '+', '=':
		return ActionRadiusUp, 0
	case '-', '_':
		return ActionRadiusDown, 0
	case '1', '2', '3', '4', '5', '6':
		return ActionLooseness, int(r - '0')
	case 'e', 'E':
		return ActionToggleEmitter, 0
	case 'x', 'X':
		return ActionForgetMap, 0
	case 'q', 'Q':
		return ActionQuit, 0
	}
	return ActionNone, 0
}

// actionToDelta converts a movement action to (dx, dy).
func actionToDelta(a Action) (int, int) {
	switch a {
	case ActionMoveN:
		return 0, -1
	case ActionMoveS:
		return 0, 1
	case ActionMoveE:
		return 1, 0
	case ActionMoveW:
		return -1, 0
	case ActionMoveNE:
		return 1, -1
	case ActionMoveNW:
		return -1, -1
	case ActionMoveSE:
		return 1, 1
	case ActionMoveSW:
		return -1, 1
	}
	return 0, 0
}
