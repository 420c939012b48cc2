package world

import (
	"archipelago/components"
	"archipelago/config"
	"archipelago/ecs"
)

// Projectile is a thrown object following a ballistic arc
type Projectile struct {
	body Body

	VX, VY, VZ float64
}

// NewProjectile creates a projectile at (x, z) thrown toward direction (radians)
func NewProjectile(id ecs.EntityID, x, z, direction float64) *Projectile {
	b := newBody(id, x, z, ColorProjectile)
	b.Y = config.ProjectileLaunchHeight
	b.Width = config.TileWidth / 2
	b.Height = config.TileWidth / 2
	b.Radius = b.Width / 2
	vx, vz := velocity(config.ThrowSpeed, direction)
	return &Projectile{
		body: b,
		VX:   vx,
		VY:   config.ProjectileLaunchVY,
		VZ:   vz,
	}
}

// Body implements Entity
func (p *Projectile) Body() *Body { return &p.body }

// Kind implements Entity
func (p *Projectile) Kind() Kind { return KindProjectile }

// DrawInfo implements Entity
func (p *Projectile) DrawInfo() DrawInfo { return drawInfoOf(KindProjectile, &p.body) }

// Update moves the projectile one tick along its arc and resolves what it hits
func (p *Projectile) Update(level *Level) {
	b := &p.body
	oldY := b.Y

	p.VY += config.Gravity
	b.X += p.VX
	b.Y += p.VY
	b.Z += p.VZ

	if oldY > 0 {
		if target := level.Collide(p); target != nil {
			b.Remove = true
			p.strike(level, target)
		} else if b.Y <= 0 && level.TileAtWorld(b.X, b.Z) != components.TileSpace {
			// Hit the ground
			b.Remove = true
		}
	} else if b.Y < 0 && b.Y-b.Z <= level.cullDepth() {
		// Fell deep into space
		b.Remove = true
	}
}

func (p *Projectile) strike(level *Level, target Entity) {
	tb := target.Body()
	tb.Damage(1)
	level.Emit(EntityHitEvent{
		ProjectileID: p.body.ID,
		TargetID:     tb.ID,
		TargetKind:   target.Kind(),
		Health:       tb.Health,
	})
	if tb.Remove && target.Kind() == KindCreature {
		level.Emit(CreatureKilledEvent{CreatureID: tb.ID, X: tb.X, Z: tb.Z})
	}
}
