package generation

import (
	"archipelago/components"
	"archipelago/config"
	"archipelago/world"
)

// Creature placement attempts per level
const (
	MinCreatureAttempts = 15
	MaxCreatureAttempts = 30
)

// populate drops creatures at random world positions. Positions that are not
// over grass are skipped, not retried. Returns attempts made and creatures placed.
func (g *IslandGenerator) populate(level *world.Level) (int, int) {
	maxX := int(level.Grid.WorldWidth()) - config.TileWidth
	maxZ := int(level.Grid.WorldHeight()) - config.TileHeight

	attempts := g.between(MinCreatureAttempts, MaxCreatureAttempts)
	placed := 0
	for i := 0; i < attempts; i++ {
		x := float64(g.between(0, maxX))
		z := float64(g.between(0, maxZ))
		if level.TileAtWorld(x, z) != components.TileGrass {
			continue
		}
		level.Spawn(world.NewCreature(level.NextID(), x, z))
		placed++
	}
	return attempts, placed
}
