package terminal

import (
	"fmt"
	"log"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"archipelago/ecs"
	"archipelago/systems"
)

const sampleRate = beep.SampleRate(44100)

// Sound plays the game's cues through the system speaker
type Sound struct {
	initialized bool
	muted       bool
}

// NewSound initializes the speaker. A failure leaves the game silent; it is
// returned for logging only.
func NewSound(muted bool) (*Sound, error) {
	s := &Sound{muted: muted}
	if muted {
		return s, nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return s, fmt.Errorf("failed to initialize speaker: %w", err)
	}
	s.initialized = true
	return s, nil
}

// Subscribe plays the matching cue for every game event that has one
func (s *Sound) Subscribe(events *ecs.EventManager) {
	events.SubscribeAll(func(e ecs.Event) {
		if cue, ok := systems.CueForEvent(e); ok {
			s.Play(cue)
		}
	})
}

// Play starts a cue without waiting for it to finish
func (s *Sound) Play(cue systems.Cue) {
	if !s.initialized || s.muted {
		return
	}
	tone, exists := systems.CueTones[cue]
	if !exists {
		return
	}

	sine, err := generators.SineTone(sampleRate, tone.Frequency)
	if err != nil {
		log.Printf("Sound cue %d: %v", cue, err)
		return
	}
	speaker.Play(beep.Take(sampleRate.N(tone.Duration), sine))
}

// Close releases the speaker
func (s *Sound) Close() {
	if s.initialized {
		speaker.Close()
		s.initialized = false
	}
}
