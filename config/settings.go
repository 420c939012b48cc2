package config

import (
	"errors"
	"fmt"
	"time"
)

// Frontend names accepted by Settings.Frontend
const (
	FrontendWindow   = "window"
	FrontendTerminal = "terminal"
)

// Minimum level size the generator's margins can work with
const (
	MinLevelWidthTiles  = 80
	MinLevelHeightTiles = 80
)

// ErrUnknownFrontend is returned by Validate for an unsupported frontend name
var ErrUnknownFrontend = errors.New("unknown frontend")

// Settings holds the runtime options of a game session
type Settings struct {
	Seed        int64  // Seed for level generation and creature AI
	Frontend    string // "window" or "terminal"
	Debug       bool   // Write diagnostics to the log file
	WidthTiles  int    // Level width in tiles
	HeightTiles int    // Level height in tiles
	Mute        bool   // Disable sound cues
}

// DefaultSettings returns settings for a standard-size level seeded from the clock
func DefaultSettings() Settings {
	return Settings{
		Seed:        time.Now().UnixNano(),
		Frontend:    FrontendWindow,
		WidthTiles:  LevelWidthTiles,
		HeightTiles: LevelHeightTiles,
	}
}

// Validate checks that the settings describe a playable session
func (s Settings) Validate() error {
	if s.Frontend != FrontendWindow && s.Frontend != FrontendTerminal {
		return fmt.Errorf("%w: %q", ErrUnknownFrontend, s.Frontend)
	}
	if s.WidthTiles < MinLevelWidthTiles || s.HeightTiles < MinLevelHeightTiles {
		return fmt.Errorf("level size %dx%d is below the minimum %dx%d",
			s.WidthTiles, s.HeightTiles, MinLevelWidthTiles, MinLevelHeightTiles)
	}
	return nil
}
