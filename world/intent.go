package world

import "archipelago/config"

// Intent is the input state for one tick. Direction flags are held keys; the
// rest are presses.
type Intent struct {
	Left, Right, Up, Down bool

	Action      bool // Throw a projectile
	ToggleMap   bool // Switch between map view and play view
	Regenerate  bool // Replace the level with a new one
	TogglePause bool
}

// Moving reports whether any direction is held
func (in Intent) Moving() bool {
	return in.Left || in.Right || in.Up || in.Down
}

// direction is one entry of the input direction table
type direction struct {
	DX, DZ float64
	Facing float64 // radians, 0 = +x, quarter turn = +z (down the screen)
}

const diagonal = 0.707

// inputDirections maps (sign(right-left), sign(down-up)) to a unit vector and facing
var inputDirections = map[[2]int]direction{
	{0, 0}:   {0, 0, config.Tau / 4},
	{1, 0}:   {1, 0, 0},
	{1, 1}:   {diagonal, diagonal, config.Tau / 8},
	{0, 1}:   {0, 1, 2 * config.Tau / 8},
	{-1, 1}:  {-diagonal, diagonal, 3 * config.Tau / 8},
	{-1, 0}:  {-1, 0, 4 * config.Tau / 8},
	{-1, -1}: {-diagonal, -diagonal, 5 * config.Tau / 8},
	{0, -1}:  {0, -1, 6 * config.Tau / 8},
	{1, -1}:  {diagonal, -diagonal, 7 * config.Tau / 8},
}

// directionFor looks up the direction table for the held keys
func directionFor(in Intent) direction {
	return inputDirections[[2]int{axis(in.Left, in.Right), axis(in.Up, in.Down)}]
}

func axis(negative, positive bool) int {
	v := 0
	if positive {
		v++
	}
	if negative {
		v--
	}
	return v
}
