package world

import (
	"math/rand"

	"archipelago/components"
	"archipelago/config"
	"archipelago/ecs"
)

// Creature is a hostile inhabitant that wanders at random
type Creature struct {
	body Body

	VX, VZ float64
}

// NewCreature creates a standing creature at (x, z)
func NewCreature(id ecs.EntityID, x, z float64) *Creature {
	b := newBody(id, x, z, ColorCreature)
	b.Health = config.CreatureHealth
	b.Invulnerable = false
	return &Creature{body: b}
}

// Body implements Entity
func (c *Creature) Body() *Body { return &c.body }

// Kind implements Entity
func (c *Creature) Kind() Kind { return KindCreature }

// DrawInfo implements Entity
func (c *Creature) DrawInfo() DrawInfo { return drawInfoOf(KindCreature, &c.body) }

// Update occasionally picks a new heading, then steps along it unless the
// step would leave grass, in which case it picks a new heading instead.
func (c *Creature) Update(level *Level) {
	rng := level.Rand()
	if rng.Float64() > 1-config.CreatureDecideChance {
		c.decide(rng)
	}

	newX := c.body.X + c.VX
	newZ := c.body.Z + c.VZ
	if level.TileAtWorld(newX, newZ) != components.TileGrass {
		c.decide(rng)
		return
	}
	c.body.X = newX
	c.body.Z = newZ
}

// decide either starts walking in a random direction or stops
func (c *Creature) decide(rng *rand.Rand) {
	if rng.Float64() > config.CreatureStopChance {
		heading := rng.Float64() * config.Tau
		c.VX, c.VZ = velocity(config.CreatureSpeed, heading)
		return
	}
	c.VX, c.VZ = 0, 0
}
