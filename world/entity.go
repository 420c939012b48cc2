// Package world holds the simulated actors and the level they live in.
//
// Every actor shares a Body (position, bounding cylinder, health and removal
// flag) and implements Entity, which the simulation step dispatches through.
// Removal is two-phase: updates only set Body.Remove, and Level.Compact
// deletes marked entities once every update of the tick has run.
package world

import (
	"image/color"
	"math"
	"sort"

	"archipelago/config"
	"archipelago/ecs"
	"archipelago/geom"
)

// Kind identifies the entity variant
type Kind int

const (
	KindPlayer Kind = iota
	KindProjectile
	KindGoal
	KindCreature
)

// String returns the display name of the kind
func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "Player"
	case KindProjectile:
		return "Projectile"
	case KindGoal:
		return "Goal"
	case KindCreature:
		return "Creature"
	}
	return "Entity"
}

// Entity colors (rendering hints)
var (
	ColorPlayer     = color.RGBA{255, 0, 0, 255}
	ColorProjectile = color.RGBA{255, 64, 64, 255}
	ColorGoal       = color.RGBA{255, 165, 0, 255}
	ColorCreature   = color.RGBA{255, 0, 255, 255}
)

// Body is the state shared by every entity
type Body struct {
	ID ecs.EntityID

	// Ground-plane position plus height above ground (negative while falling into space)
	X, Y, Z float64

	Width  float64
	Height float64
	Radius float64

	Color color.RGBA

	Health       int
	Invulnerable bool // Damage never marks the entity for removal
	Remove       bool // Deleted by the next Level.Compact
}

func newBody(id ecs.EntityID, x, z float64, c color.RGBA) Body {
	return Body{
		ID:           id,
		X:            x,
		Z:            z,
		Width:        config.TileWidth,
		Height:       config.TileHeight * 2,
		Radius:       config.TileWidth / 2,
		Color:        c,
		Invulnerable: true,
	}
}

// Damage subtracts health and marks vulnerable entities with no health left for removal
func (b *Body) Damage(amount int) {
	b.Health -= amount
	b.Remove = !b.Invulnerable && b.Health <= 0
}

// Cylinder returns the body's collision volume
func (b *Body) Cylinder() geom.Cylinder {
	return geom.Cylinder{X: b.X, Y: b.Y, Z: b.Z, Radius: b.Radius, Height: b.Height}
}

// Entity is the capability every simulated actor provides
type Entity interface {
	Body() *Body
	Kind() Kind
	// Update advances the entity by one tick
	Update(level *Level)
	DrawInfo() DrawInfo
}

// DrawInfo is the read-only view of an entity handed to renderers
type DrawInfo struct {
	ID      ecs.EntityID
	Kind    Kind
	X, Y, Z float64
	Width   float64
	Height  float64
	Color   color.RGBA
}

func drawInfoOf(kind Kind, b *Body) DrawInfo {
	return DrawInfo{
		ID:     b.ID,
		Kind:   kind,
		X:      b.X,
		Y:      b.Y,
		Z:      b.Z,
		Width:  b.Width,
		Height: b.Height,
		Color:  b.Color,
	}
}

// SortByDepth orders draw infos back to front (ascending z), keeping the
// relative order of entities at equal depth
func SortByDepth(infos []DrawInfo) {
	sort.SliceStable(infos, func(i, j int) bool {
		return infos[i].Z < infos[j].Z
	})
}

// velocity splits a speed along a heading (radians) into x and z components
func velocity(speed, heading float64) (float64, float64) {
	return speed * math.Cos(heading), speed * math.Sin(heading)
}
