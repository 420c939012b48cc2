package systems

import (
	"github.com/hajimehoshi/ebiten/v2/audio"

	"archipelago/ecs"
)

// AudioSystem plays synthesized sound cues in the window frontend
type AudioSystem struct {
	audioContext *audio.Context
	cues         map[Cue][]byte
	playing      []*audio.Player
	volume       float64
	sampleRate   int
	muted        bool
}

// NewAudioSystem creates a new audio system. Only one may exist per process.
func NewAudioSystem(muted bool) *AudioSystem {
	sampleRate := 44100
	s := &AudioSystem{
		audioContext: audio.NewContext(sampleRate),
		cues:         make(map[Cue][]byte, len(CueTones)),
		volume:       0.3,
		sampleRate:   sampleRate,
		muted:        muted,
	}
	for cue, tone := range CueTones {
		s.cues[cue] = SynthesizeTone(sampleRate, tone, 1.0)
	}
	return s
}

// Subscribe plays the matching cue for every game event that has one
func (s *AudioSystem) Subscribe(events *ecs.EventManager) {
	events.SubscribeAll(func(e ecs.Event) {
		if cue, ok := CueForEvent(e); ok {
			s.Play(cue)
		}
	})
}

// Play starts a cue without waiting for it to finish
func (s *AudioSystem) Play(cue Cue) {
	if s.muted {
		return
	}
	pcm, exists := s.cues[cue]
	if !exists {
		return
	}

	// Drop finished players
	active := s.playing[:0]
	for _, p := range s.playing {
		if p.IsPlaying() {
			active = append(active, p)
		} else {
			p.Close()
		}
	}
	s.playing = active

	player := s.audioContext.NewPlayerFromBytes(pcm)
	player.SetVolume(s.volume)
	player.Play()
	s.playing = append(s.playing, player)
}

// SetMuted turns all cues off or back on
func (s *AudioSystem) SetMuted(muted bool) {
	s.muted = muted
}

// SetVolume sets the cue volume (0.0 to 1.0)
func (s *AudioSystem) SetVolume(volume float64) {
	s.volume = volume
}

// GetVolume returns the current volume setting
func (s *AudioSystem) GetVolume() float64 {
	return s.volume
}

func (s *AudioSystem) Close() {
	for _, p := range s.playing {
		p.Close()
	}
	s.playing = nil
}
