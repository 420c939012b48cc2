package systems

import (
	"archipelago/config"
	"archipelago/ecs"
	"archipelago/generation"
	"archipelago/world"
)

// Session owns the current level and player and advances them one tick at a
// time. Frontends feed it an Intent per tick and read back what to draw.
type Session struct {
	generator *generation.IslandGenerator
	events    *ecs.EventManager

	level  *world.Level
	player *world.Player
	layout *generation.Layout

	showMap bool
	paused  bool
	dirty   bool
	ticks   uint64
}

// NewSession creates a session and generates its first level. Handlers
// subscribed to events before the call see the first LevelGeneratedEvent.
func NewSession(settings config.Settings, events *ecs.EventManager) *Session {
	generator := generation.NewIslandGenerator(settings.Seed)
	generator.SetSize(settings.WidthTiles, settings.HeightTiles)

	s := &Session{
		generator: generator,
		events:    events,
	}
	s.Regenerate()
	return s
}

// Regenerate replaces the level and player with freshly generated ones
func (s *Session) Regenerate() {
	layout := s.generator.Generate()
	level := layout.Level
	level.SetEvents(s.events)

	player := world.NewPlayer(level.NextID(), level.StartX, level.StartZ)
	level.AttachPlayer(player)

	s.level, s.player, s.layout = level, player, layout
	s.dirty = true

	s.events.Emit(world.LevelGeneratedEvent{
		Seed:      level.Seed,
		Islands:   len(layout.Islands),
		Creatures: layout.Creatures,
	})
}

// AdvanceTick applies one tick of input. Pause and map view freeze the
// simulation; toggles and regeneration still take effect.
func (s *Session) AdvanceTick(in world.Intent) {
	if in.TogglePause {
		s.paused = !s.paused
		s.dirty = true
	}
	if s.paused {
		return
	}

	if in.ToggleMap {
		s.showMap = !s.showMap
		s.dirty = true
	}
	if in.Regenerate {
		s.Regenerate()
	}
	if s.showMap {
		return
	}

	s.dirty = true
	s.ticks++

	s.player.SetIntent(in)
	s.player.Update(s.level)
	s.level.UpdateEntities()
	s.level.Compact()
}

// Level returns the current level
func (s *Session) Level() *world.Level {
	return s.level
}

// Player returns the current player
func (s *Session) Player() *world.Player {
	return s.player
}

// Layout returns the generation result behind the current level
func (s *Session) Layout() *generation.Layout {
	return s.layout
}

// Events returns the event manager entity updates report to
func (s *Session) Events() *ecs.EventManager {
	return s.events
}

// Ticks returns the number of simulated ticks since the session started
func (s *Session) Ticks() uint64 {
	return s.ticks
}

// IsMapView reports whether the whole-level map is shown instead of the play view
func (s *Session) IsMapView() bool {
	return s.showMap
}

// IsPaused reports whether the simulation is paused
func (s *Session) IsPaused() bool {
	return s.paused
}

// NeedsRedraw reports whether anything changed since the last MarkDrawn
func (s *Session) NeedsRedraw() bool {
	return s.dirty
}

// MarkDrawn clears the redraw flag
func (s *Session) MarkDrawn() {
	s.dirty = false
}
