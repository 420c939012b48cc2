package config

import "math"

// Level dimensions
const (
	LevelWidthTiles  = 40 * 8
	LevelHeightTiles = 30 * 8

	LevelWidth  = LevelWidthTiles * TileWidth
	LevelHeight = LevelHeightTiles * TileHeight

	// Tiles kept free around the level edge when placing islands
	IslandBorder = 1
)

// Physics and behavior tuning
const (
	Gravity = -0.2

	WalkingSpeed  = 3.0
	ThrowSpeed    = 6.0
	CreatureSpeed = 2.0

	// Initial height and upward velocity of a thrown projectile
	ProjectileLaunchHeight = 24.0
	ProjectileLaunchVY     = 1.0

	CreatureHealth = 2

	// Per-tick probability that a creature reconsiders its heading
	CreatureDecideChance = 0.01
	// Probability that a reconsidering creature stops instead of walking
	CreatureStopChance = 0.4
)

// Tau is a full turn in radians
const Tau = 2 * math.Pi

// DefaultFacing is the facing angle used before any directional input (pointing down the screen)
const DefaultFacing = Tau / 4
