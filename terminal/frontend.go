package terminal

import (
	"fmt"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	"archipelago/systems"
)

// TickInterval is the simulation step of the terminal frontend (~60 TPS)
const TickInterval = 16 * time.Millisecond

// Frontend runs a session in a terminal
type Frontend struct {
	screen   tcell.Screen
	session  *systems.Session
	renderer *Renderer
	sound    *Sound
	keys     KeyState
}

// New creates a frontend on the given screen, which must already be initialized.
// sound may be nil.
func New(screen tcell.Screen, session *systems.Session, messages *systems.MessageLog, sound *Sound) *Frontend {
	return &Frontend{
		screen:   screen,
		session:  session,
		renderer: NewRenderer(messages),
		sound:    sound,
	}
}

// OpenScreen creates and initializes the terminal screen
func OpenScreen() (tcell.Screen, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("failed to create terminal screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize terminal screen: %w", err)
	}
	screen.HideCursor()
	screen.Clear()
	return screen, nil
}

// Run advances the session every tick until a quit key is pressed
func (f *Frontend) Run() {
	ticker := time.NewTicker(TickInterval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := f.screen.PollEvent()
			if ev == nil {
				// Screen finalized
				close(eventChan)
				return
			}
			eventChan <- ev
		}
	}()

	for {
		select {
		case ev, ok := <-eventChan:
			if !ok || !f.handleEvent(ev) {
				return
			}

		case <-ticker.C:
			f.Step()
		}
	}
}

// Step advances the session by one tick and redraws if needed
func (f *Frontend) Step() {
	f.session.AdvanceTick(f.keys.Intent())
	if f.session.NeedsRedraw() {
		f.Draw()
	}
}

// Draw composes the current session view and shows it
func (f *Frontend) Draw() {
	cols, rows := f.screen.Size()
	f.renderer.Compose(f.session, cols, rows).Flush(f.screen)
	f.session.MarkDrawn()
}

// handleEvent processes one terminal event; false means quit
func (f *Frontend) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if f.keys.HandleKey(ev.Key(), ev.Rune()) {
			return false
		}
	case *tcell.EventResize:
		f.keys.Release()
		f.screen.Sync()
		f.Draw()
	}
	return true
}

// Close restores the terminal and releases the speaker
func (f *Frontend) Close() {
	if f.sound != nil {
		f.sound.Close()
	}
	f.screen.Fini()
	log.Printf("Terminal frontend closed after %d ticks", f.session.Ticks())
}
