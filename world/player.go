package world

import (
	"archipelago/components"
	"archipelago/config"
	"archipelago/ecs"
	"archipelago/geom"
)

// Player is the controlled character
type Player struct {
	body Body

	VY float64
	// Facing angle of the last directional input; thrown projectiles use it
	Facing float64

	intent      Intent
	fell        bool
	reachedGoal bool
}

// NewPlayer creates a grounded player at (x, z)
func NewPlayer(id ecs.EntityID, x, z float64) *Player {
	return &Player{
		body:   newBody(id, x, z, ColorPlayer),
		Facing: config.DefaultFacing,
	}
}

// Body implements Entity
func (p *Player) Body() *Body { return &p.body }

// Kind implements Entity
func (p *Player) Kind() Kind { return KindPlayer }

// DrawInfo implements Entity
func (p *Player) DrawInfo() DrawInfo { return drawInfoOf(KindPlayer, &p.body) }

// SetIntent stores the input the next Update acts on
func (p *Player) SetIntent(in Intent) {
	p.intent = in
}

// Airborne reports whether the player is off the ground
func (p *Player) Airborne() bool {
	return p.body.Y != 0
}

// Fell reports whether the player has fallen out of sight
func (p *Player) Fell() bool {
	return p.fell
}

// ReachedGoal reports whether the player has stood at the goal
func (p *Player) ReachedGoal() bool {
	return p.reachedGoal
}

// Update applies gravity while airborne; otherwise walks and throws according
// to the stored intent. The intent is consumed.
func (p *Player) Update(level *Level) {
	in := p.intent
	p.intent = Intent{}
	b := &p.body

	if b.Y != 0 {
		p.fall(level)
		return
	}

	if level.TileAtWorld(b.X, b.Z) == components.TileSpace {
		// Walked off an edge
		b.Y = -1
		return
	}

	p.checkGoal(level)

	if in.Moving() {
		dir := directionFor(in)
		p.Facing = dir.Facing
		b.X = geom.Clamp(b.X+dir.DX*config.WalkingSpeed, 0, level.Grid.WorldWidth())
		b.Z = geom.Clamp(b.Z+dir.DZ*config.WalkingSpeed, 0, level.Grid.WorldHeight())
	}

	if in.Action {
		projectile := NewProjectile(level.NextID(), b.X, b.Z, p.Facing)
		level.Spawn(projectile)
		level.Emit(ProjectileThrownEvent{
			ProjectileID: projectile.body.ID,
			X:            b.X,
			Z:            b.Z,
			Direction:    p.Facing,
		})
	}
}

// fall integrates one airborne tick. A descent that would cross the ground
// lands exactly at y = 0.
func (p *Player) fall(level *Level) {
	b := &p.body
	p.VY += config.Gravity
	if b.Y > 0 && b.Y+p.VY <= 0 {
		b.Y = 0
		p.VY = 0
		return
	}
	b.Y += p.VY

	if !p.fell && b.Y < -config.ViewportHeight/2 {
		p.fell = true
		level.Emit(PlayerFellEvent{X: b.X, Z: b.Z})
	}
}

func (p *Player) checkGoal(level *Level) {
	if p.reachedGoal || level.Goal == nil {
		return
	}
	if geom.CylindersIntersect(p.body.Cylinder(), level.Goal.body.Cylinder()) {
		p.reachedGoal = true
		level.Emit(GoalReachedEvent{X: level.Goal.body.X, Z: level.Goal.body.Z})
	}
}
