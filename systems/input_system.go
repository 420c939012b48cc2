package systems

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"archipelago/world"
)

// KeyBindings maps each input to the keys that trigger it. Direction keys are
// read as held; the others fire once per press.
type KeyBindings struct {
	Left, Right, Up, Down []ebiten.Key

	Action      []ebiten.Key
	ToggleMap   []ebiten.Key
	Regenerate  []ebiten.Key
	TogglePause []ebiten.Key
	Quit        []ebiten.Key
}

// DefaultKeyBindings returns WASD, arrows and keypad movement, Ctrl to throw,
// Q for the map, N for a new level, Space to pause and Escape to quit
func DefaultKeyBindings() KeyBindings {
	return KeyBindings{
		Left:        []ebiten.Key{ebiten.KeyA, ebiten.KeyArrowLeft, ebiten.KeyNumpad4},
		Right:       []ebiten.Key{ebiten.KeyD, ebiten.KeyArrowRight, ebiten.KeyNumpad6},
		Up:          []ebiten.Key{ebiten.KeyW, ebiten.KeyArrowUp, ebiten.KeyNumpad8},
		Down:        []ebiten.Key{ebiten.KeyS, ebiten.KeyArrowDown, ebiten.KeyNumpad2},
		Action:      []ebiten.Key{ebiten.KeyControlLeft, ebiten.KeyControlRight},
		ToggleMap:   []ebiten.Key{ebiten.KeyQ},
		Regenerate:  []ebiten.Key{ebiten.KeyN},
		TogglePause: []ebiten.Key{ebiten.KeySpace},
		Quit:        []ebiten.Key{ebiten.KeyEscape},
	}
}

// InputSystem turns ebiten keyboard state into per-tick intents
type InputSystem struct {
	Bindings KeyBindings
}

// NewInputSystem creates an input system with the default bindings
func NewInputSystem() *InputSystem {
	return &InputSystem{Bindings: DefaultKeyBindings()}
}

// Poll reads the keyboard for this tick. quit reports a quit key press.
func (s *InputSystem) Poll() (in world.Intent, quit bool) {
	return s.Bindings.Intent(ebiten.IsKeyPressed, inpututil.IsKeyJustPressed)
}

// Intent builds an intent from key state queries
func (kb KeyBindings) Intent(held, pressed func(ebiten.Key) bool) (world.Intent, bool) {
	in := world.Intent{
		Left:        anyKey(kb.Left, held),
		Right:       anyKey(kb.Right, held),
		Up:          anyKey(kb.Up, held),
		Down:        anyKey(kb.Down, held),
		Action:      anyKey(kb.Action, pressed),
		ToggleMap:   anyKey(kb.ToggleMap, pressed),
		Regenerate:  anyKey(kb.Regenerate, pressed),
		TogglePause: anyKey(kb.TogglePause, pressed),
	}
	return in, anyKey(kb.Quit, pressed)
}

func anyKey(keys []ebiten.Key, state func(ebiten.Key) bool) bool {
	for _, k := range keys {
		if state(k) {
			return true
		}
	}
	return false
}
