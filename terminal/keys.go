// Package terminal is a tcell frontend for the game session. Terminals report
// key presses and auto-repeats but never releases, so held movement keys are
// emulated with a short hold window refreshed by each repeat.
package terminal

import (
	"github.com/gdamore/tcell/v2"

	"archipelago/world"
)

// HoldTicks is how many ticks a movement key stays held after its last press
// or repeat
const HoldTicks = 12

type heldDir int

const (
	dirLeft heldDir = iota
	dirRight
	dirUp
	dirDown
	numDirs
)

var oppositeDir = [numDirs]heldDir{dirRight, dirLeft, dirDown, dirUp}

// KeyState accumulates key events between ticks
type KeyState struct {
	hold [numDirs]int

	action      bool
	toggleMap   bool
	regenerate  bool
	togglePause bool
}

// HandleKey records one key event and reports whether it asks to quit
func (k *KeyState) HandleKey(key tcell.Key, r rune) bool {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyLeft:
		k.press(dirLeft)
	case tcell.KeyRight:
		k.press(dirRight)
	case tcell.KeyUp:
		k.press(dirUp)
	case tcell.KeyDown:
		k.press(dirDown)
	case tcell.KeyEnter:
		k.action = true
	case tcell.KeyRune:
		k.handleRune(r)
	}
	return false
}

func (k *KeyState) handleRune(r rune) {
	switch r {
	case 'a', 'A', '4':
		k.press(dirLeft)
	case 'd', 'D', '6':
		k.press(dirRight)
	case 'w', 'W', '8':
		k.press(dirUp)
	case 's', 'S', '2':
		k.press(dirDown)
	case 'f', 'F':
		k.action = true
	case 'q', 'Q':
		k.toggleMap = true
	case 'n', 'N':
		k.regenerate = true
	case ' ':
		k.togglePause = true
	}
}

// press holds a direction and releases its opposite
func (k *KeyState) press(d heldDir) {
	k.hold[d] = HoldTicks
	k.hold[oppositeDir[d]] = 0
}

// Intent returns the input for the next tick, consuming presses and aging holds
func (k *KeyState) Intent() world.Intent {
	in := world.Intent{
		Left:        k.hold[dirLeft] > 0,
		Right:       k.hold[dirRight] > 0,
		Up:          k.hold[dirUp] > 0,
		Down:        k.hold[dirDown] > 0,
		Action:      k.action,
		ToggleMap:   k.toggleMap,
		Regenerate:  k.regenerate,
		TogglePause: k.togglePause,
	}

	for d := range k.hold {
		if k.hold[d] > 0 {
			k.hold[d]--
		}
	}
	k.action, k.toggleMap, k.regenerate, k.togglePause = false, false, false, false
	return in
}

// Release drops every held direction
func (k *KeyState) Release() {
	k.hold = [numDirs]int{}
}
