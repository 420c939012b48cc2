package world

import (
	"math/rand"

	"archipelago/components"
	"archipelago/config"
	"archipelago/ecs"
	"archipelago/geom"
)

// Level is one generated map with its inhabitants
type Level struct {
	Grid *components.Grid

	// Player start position in world coordinates
	StartX, StartZ float64

	Goal *Goal

	// Seed of the random source driving creature AI
	Seed int64

	entities []Entity
	player   *Player
	rng      *rand.Rand
	ids      *ecs.IDGenerator
	events   *ecs.EventManager
}

// NewLevel creates an empty level over grid. Creature AI draws from a random
// source seeded with seed.
func NewLevel(grid *components.Grid, seed int64) *Level {
	return &Level{
		Grid: grid,
		Seed: seed,
		rng:  rand.New(rand.NewSource(seed)),
		ids:  ecs.NewIDGenerator(),
	}
}

// NextID returns a fresh entity ID for this level
func (l *Level) NextID() ecs.EntityID {
	return l.ids.Next()
}

// Rand returns the level's random source
func (l *Level) Rand() *rand.Rand {
	return l.rng
}

// SetRand replaces the level's random source
func (l *Level) SetRand(rng *rand.Rand) {
	l.rng = rng
}

// SetEvents sets the event manager entity updates report to
func (l *Level) SetEvents(events *ecs.EventManager) {
	l.events = events
}

// Emit forwards an event to the level's event manager, if any
func (l *Level) Emit(event ecs.Event) {
	l.events.Emit(event)
}

// AttachPlayer makes p the player that collision and culling queries refer to
func (l *Level) AttachPlayer(p *Player) {
	l.player = p
}

// Player returns the attached player, or nil
func (l *Level) Player() *Player {
	return l.player
}

// Spawn appends an entity to the level's collection
func (l *Level) Spawn(e Entity) {
	l.entities = append(l.entities, e)
}

// Entities returns the live entity collection in update order. Callers must not modify it.
func (l *Level) Entities() []Entity {
	return l.entities
}

// CountKind returns the number of live entities of the given kind
func (l *Level) CountKind(kind Kind) int {
	n := 0
	for _, e := range l.entities {
		if e.Kind() == kind {
			n++
		}
	}
	return n
}

// TileAtWorld returns the tile under world position (x, z)
func (l *Level) TileAtWorld(x, z float64) components.Tile {
	return l.Grid.TileAtWorld(x, z)
}

// Collide returns the first entity in collection order whose cylinder
// intersects e's, or nil. Projectiles never collide with each other.
func (l *Level) Collide(e Entity) Entity {
	self := e.Body().Cylinder()
	for _, s := range l.entities {
		if s == e || s.Kind() == KindProjectile {
			continue
		}
		if geom.CylindersIntersect(self, s.Body().Cylinder()) {
			return s
		}
	}
	return nil
}

// UpdateEntities runs one update on every entity in the collection. Entities
// appended during the pass are updated in the same pass.
func (l *Level) UpdateEntities() {
	for i := 0; i < len(l.entities); i++ {
		l.entities[i].Update(l)
	}
}

// Compact removes every entity marked for removal, keeping survivors in order,
// and returns how many were removed
func (l *Level) Compact() int {
	kept := l.entities[:0]
	for _, e := range l.entities {
		if !e.Body().Remove {
			kept = append(kept, e)
		}
	}
	removed := len(l.entities) - len(kept)
	clear(l.entities[len(kept):])
	l.entities = kept
	return removed
}

// cullDepth is the y-z value below which a falling object is out of sight
func (l *Level) cullDepth() float64 {
	if l.player == nil {
		return -config.ViewportHeight / 2
	}
	return l.player.body.Y - l.player.body.Z - config.ViewportHeight/2
}
