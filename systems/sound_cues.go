package systems

import (
	"encoding/binary"
	"math"
	"time"

	"archipelago/ecs"
	"archipelago/world"
)

// Cue identifies a short sound effect
type Cue int

const (
	CueThrow Cue = iota
	CueHit
	CueKill
	CueFall
	CueGoal
)

// Tone is a plain sine beep
type Tone struct {
	Frequency float64
	Duration  time.Duration
}

// CueTones lists the tone each cue plays
var CueTones = map[Cue]Tone{
	CueThrow: {Frequency: 660, Duration: 60 * time.Millisecond},
	CueHit:   {Frequency: 330, Duration: 80 * time.Millisecond},
	CueKill:  {Frequency: 180, Duration: 200 * time.Millisecond},
	CueFall:  {Frequency: 110, Duration: 400 * time.Millisecond},
	CueGoal:  {Frequency: 880, Duration: 300 * time.Millisecond},
}

// CueForEvent returns the cue a game event should sound, if any
func CueForEvent(e ecs.Event) (Cue, bool) {
	switch e.Type() {
	case world.EventProjectileThrow:
		return CueThrow, true
	case world.EventEntityHit:
		ev := e.(world.EntityHitEvent)
		// Kills get their own cue from the following CreatureKilledEvent
		if ev.Health <= 0 && ev.TargetKind == world.KindCreature {
			return 0, false
		}
		return CueHit, true
	case world.EventCreatureKilled:
		return CueKill, true
	case world.EventPlayerFell:
		return CueFall, true
	case world.EventGoalReached:
		return CueGoal, true
	}
	return 0, false
}

// SynthesizeTone renders a tone as 16-bit little-endian stereo PCM with a
// linear fade-out
func SynthesizeTone(sampleRate int, tone Tone, volume float64) []byte {
	samples := int(float64(sampleRate) * tone.Duration.Seconds())
	buf := make([]byte, samples*4)
	for i := 0; i < samples; i++ {
		fade := 1 - float64(i)/float64(samples)
		v := math.Sin(2*math.Pi*tone.Frequency*float64(i)/float64(sampleRate)) * volume * fade
		sample := uint16(int16(v * math.MaxInt16))
		binary.LittleEndian.PutUint16(buf[i*4:], sample)
		binary.LittleEndian.PutUint16(buf[i*4+2:], sample)
	}
	return buf
}
