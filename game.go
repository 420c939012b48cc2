package main

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"

	"archipelago/config"
	"archipelago/ecs"
	"archipelago/systems"
)

// Game implements ebiten.Game interface.
type Game struct {
	session      *systems.Session
	inputSystem  *systems.InputSystem
	renderSystem *systems.RenderSystem
	audioSystem  *systems.AudioSystem
	messages     *systems.MessageLog
}

// NewGame creates a new game instance
func NewGame(settings config.Settings) (*Game, error) {
	events := ecs.NewEventManager()

	messages := systems.NewMessageLog()
	messages.Subscribe(events)

	width, height := config.GetScreenDimensions()
	renderSystem, err := systems.NewRenderSystem(systems.NewCameraSystem(width, height), messages)
	if err != nil {
		return nil, fmt.Errorf("failed to create render system: %w", err)
	}
	renderSystem.Debug = settings.Debug

	audioSystem := systems.NewAudioSystem(settings.Mute)
	audioSystem.Subscribe(events)

	game := &Game{
		session:      systems.NewSession(settings, events),
		inputSystem:  systems.NewInputSystem(),
		renderSystem: renderSystem,
		audioSystem:  audioSystem,
		messages:     messages,
	}

	// Add instruction message
	messages.Add("WASD/arrows move, Ctrl throws, Q map, N new level, Space pause.")

	return game, nil
}

// Update advances the session by one tick.
func (g *Game) Update() error {
	in, quit := g.inputSystem.Poll()
	if quit {
		return ebiten.Termination
	}
	g.session.AdvanceTick(in)
	return nil
}

// Draw draws the game screen. The screen is kept between frames, so nothing
// is redrawn until the session changes.
func (g *Game) Draw(screen *ebiten.Image) {
	if !g.session.NeedsRedraw() && !g.renderSystem.Debug {
		return
	}
	g.renderSystem.Draw(screen, g.session)
	g.session.MarkDrawn()
}

// Layout implements ebiten.Game's Layout.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.GetScreenDimensions()
}

// Close releases audio players
func (g *Game) Close() {
	g.audioSystem.Close()
}

// runWindow plays the game in an ebiten window
func runWindow(settings config.Settings) error {
	game, err := NewGame(settings)
	if err != nil {
		return err
	}
	defer game.Close()

	windowWidth, windowHeight := config.GetWindowSize()
	ebiten.SetWindowSize(windowWidth, windowHeight)
	ebiten.SetWindowTitle("Archipelago")
	ebiten.SetTPS(60)
	ebiten.SetScreenClearedEveryFrame(false)

	if err := ebiten.RunGame(game); err != nil {
		return fmt.Errorf("game loop failed: %w", err)
	}
	return nil
}
