package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"archipelago/config"
	"archipelago/ecs"
	"archipelago/systems"
	"archipelago/terminal"
)

func main() {
	settings, err := parseSettings(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	if logFile := setupLogging(settings.Debug); logFile != nil {
		defer logFile.Close()
	}
	log.Printf("Starting with seed %d, %s frontend, level %dx%d",
		settings.Seed, settings.Frontend, settings.WidthTiles, settings.HeightTiles)

	var runErr error
	switch settings.Frontend {
	case config.FrontendTerminal:
		runErr = runTerminal(settings)
	default:
		runErr = runWindow(settings)
	}
	if runErr != nil {
		log.SetOutput(os.Stderr)
		log.Fatal(runErr)
	}
}

// parseSettings reads command-line flags over the default settings
func parseSettings(args []string) (config.Settings, error) {
	settings := config.DefaultSettings()

	fs := flag.NewFlagSet("archipelago", flag.ContinueOnError)
	fs.Int64Var(&settings.Seed, "seed", settings.Seed, "Seed for level generation (default: current time)")
	fs.StringVar(&settings.Frontend, "frontend", settings.Frontend, "Frontend: window or terminal")
	fs.BoolVar(&settings.Debug, "debug", settings.Debug, "Write diagnostics to logs/archipelago.log")
	fs.IntVar(&settings.WidthTiles, "width", settings.WidthTiles, "Level width in tiles")
	fs.IntVar(&settings.HeightTiles, "height", settings.HeightTiles, "Level height in tiles")
	fs.BoolVar(&settings.Mute, "mute", settings.Mute, "Disable sound cues")

	if err := fs.Parse(args); err != nil {
		return settings, err
	}
	if err := settings.Validate(); err != nil {
		return settings, fmt.Errorf("invalid settings: %w", err)
	}
	return settings, nil
}

// runTerminal plays the game in the terminal
func runTerminal(settings config.Settings) error {
	events := ecs.NewEventManager()

	messages := systems.NewMessageLog()
	messages.Subscribe(events)

	sound, err := terminal.NewSound(settings.Mute)
	if err != nil {
		// Non-fatal, game can run without sound
		log.Printf("Audio initialization failed: %v", err)
	}
	sound.Subscribe(events)

	screen, err := terminal.OpenScreen()
	if err != nil {
		sound.Close()
		return err
	}

	session := systems.NewSession(settings, events)
	messages.Add("WASD/arrows move, Enter/F throws, Q map, N new level, Space pause, Esc quits.")

	frontend := terminal.New(screen, session, messages, sound)
	defer frontend.Close()
	frontend.Draw()
	frontend.Run()
	return nil
}
