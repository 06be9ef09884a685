package game

import "github.com/gdamore/tcell/v2"

// Action represents a player-requested game action.
type Action uint8

const (
	ActionNone Action = iota
	ActionToggleHunt
	ActionMonsterMenu
	ActionMoreTargets
	ActionFewerTargets
	ActionTrain
	ActionSpeed
	ActionPause
	ActionBuyHealth
	ActionBuyMana
	ActionSellLoot
	ActionDeposit
	ActionQuit
)

// keyToAction maps a tcell key event to a game action.
func keyToAction(ev *tcell.EventKey) Action {
	// Named keys.
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return ActionQuit
	case tcell.KeyEnter:
		return ActionMonsterMenu
	}

	// Rune keys.
	switch ev.Rune() {
	case 'h', 'H':
		return ActionToggleHunt
	case 'm', 'M':
		return ActionMonsterMenu
	case '+', '=':
		return ActionMoreTargets
	case '-', '_':
		return ActionFewerTargets
	case 't', 'T':
		return ActionTrain
	case 's', 'S':
		return ActionSpeed
	case 'p', 'P', ' ':
		return ActionPause
	case 'b':
		return ActionBuyHealth
	case 'B':
		return ActionBuyMana
	case 'x', 'X':
		return ActionSellLoot
	case 'd', 'D':
		return ActionDeposit
	case 'q', 'Q':
		return ActionQuit
	}
	return ActionNone
}

// menuMove returns the cursor delta of a menu navigation key.
func menuMove(ev *tcell.EventKey) int {
	switch ev.Key() {
	case tcell.KeyUp:
		return -1
	case tcell.KeyDown:
		return 1
	}
	switch ev.Rune() {
	case 'k', 'K':
		return -1
	case 'j', 'J':
		return 1
	}
	return 0
}
