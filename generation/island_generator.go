package generation

import (
	"log"
	"math/rand"

	"archipelago/components"
	"archipelago/config"
	"archipelago/geom"
	"archipelago/world"
)

const (
	// MaxGoalAttempts bounds the search for a goal tile far enough from the start
	MaxGoalAttempts = 10000
	// MaxBridgeAttempts bounds the search for a bridge target per island
	MaxBridgeAttempts = 10000

	// goal island sides never shrink below this, so the goal tile always fits inside
	minGoalIslandSide = 8
)

// Layout is the result of one generation run. The islands are kept for
// inspection; the level itself only stores tiles.
type Layout struct {
	Level *world.Level

	// Connected islands in creation order; the goal island is last
	Islands []geom.RectXZ
	// Decorative islands, not guaranteed to be reachable
	Decorations []geom.RectXZ

	StartTile  components.TilePos
	GoalTile   components.TilePos
	GoalIsland geom.RectXZ

	CreatureAttempts int
	Creatures        int
}

// IslandGenerator builds archipelago levels: grass islands floating in space,
// joined by bridges so the goal can always be reached on foot from the start.
type IslandGenerator struct {
	rng *rand.Rand

	width  int
	height int
}

// NewIslandGenerator creates a generator for levels of the default size
func NewIslandGenerator(seed int64) *IslandGenerator {
	return &IslandGenerator{
		rng:    rand.New(rand.NewSource(seed)),
		width:  config.LevelWidthTiles,
		height: config.LevelHeightTiles,
	}
}

// SetSeed allows setting a specific seed for reproducible levels
func (g *IslandGenerator) SetSeed(seed int64) {
	g.rng = rand.New(rand.NewSource(seed))
}

// SetSize changes the level size in tiles for subsequent Generate calls
func (g *IslandGenerator) SetSize(width, height int) {
	g.width = width
	g.height = height
}

// Size returns the level size in tiles
func (g *IslandGenerator) Size() (int, int) {
	return g.width, g.height
}

// Generate produces a new level from the generator's random stream
func (g *IslandGenerator) Generate() *Layout {
	grid := components.NewGrid(g.width, g.height)

	islands := g.seedIslands()

	// Start somewhere on a random island, away from its lower edge
	start := islands[g.rng.Intn(len(islands))]
	startX := g.between(start.X1+2, start.X2-2)
	startZ := g.between(start.Z1+2, start.Z2-6)

	goalX, goalZ := g.placeGoal(startX, startZ)
	goalIsland := g.goalIsland(goalX, goalZ)
	islands = append(islands, goalIsland)

	g.carveBridges(grid, islands)
	for _, island := range islands {
		grid.FillRect(island.X1, island.Z1, island.X2, island.Z2, components.TileGrass)
	}

	decorations := g.scatterDecorations(grid)

	level := world.NewLevel(grid, g.rng.Int63())
	level.StartX = float64(startX * config.TileWidth)
	level.StartZ = float64(startZ * config.TileHeight)
	level.Goal = world.NewGoal(level.NextID(), float64(goalX*config.TileWidth), float64(goalZ*config.TileHeight))

	attempts, placed := g.populate(level)

	log.Printf("Generated level %dx%d: %d islands, %d decorations, %d creatures out of %d attempts",
		g.width, g.height, len(islands), len(decorations), placed, attempts)

	return &Layout{
		Level:            level,
		Islands:          islands,
		Decorations:      decorations,
		StartTile:        components.TilePos{X: startX, Z: startZ},
		GoalTile:         components.TilePos{X: goalX, Z: goalZ},
		GoalIsland:       goalIsland,
		CreatureAttempts: attempts,
		Creatures:        placed,
	}
}

// Unreachable returns the connected islands that cannot be walked to from the start tile
func (l *Layout) Unreachable() []geom.RectXZ {
	reach := l.Level.Grid.Reachable(l.StartTile.X, l.StartTile.Z)
	var cut []geom.RectXZ
	for _, island := range l.Islands {
		if !reach.Has(components.TilePos{X: island.X1, Z: island.Z1}) {
			cut = append(cut, island)
		}
	}
	return cut
}

// between returns a uniform integer in [lo, hi], or lo when the range is empty
func (g *IslandGenerator) between(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + g.rng.Intn(hi-lo+1)
}

// makeIsland places a w x h island at a random origin inside the border
func (g *IslandGenerator) makeIsland(w, h int) geom.RectXZ {
	x := g.between(config.IslandBorder, g.width-config.IslandBorder-w-1)
	z := g.between(config.IslandBorder, g.height-config.IslandBorder-h-1)
	return geom.NewRectXZ(x, z, w, h)
}

// seedIslands creates the large and medium islands
func (g *IslandGenerator) seedIslands() []geom.RectXZ {
	var islands []geom.RectXZ

	large := g.between(5, 10)
	for i := 0; i < large; i++ {
		w := g.between(g.width/5, g.width/3)
		h := g.between(g.height/5, g.height/3)
		islands = append(islands, g.makeIsland(w, h))
	}

	medium := g.between(1, 50)
	for i := 0; i < medium; i++ {
		w := g.between(g.width/10, g.width/5)
		h := g.between(g.height/10, g.height/5)
		islands = append(islands, g.makeIsland(w, h))
	}

	return islands
}

// placeGoal picks a goal tile outside a circle of radius width/3 around the start
func (g *IslandGenerator) placeGoal(startX, startZ int) (int, int) {
	radius := float64(g.width / 3)
	bestX, bestZ, bestDist := startX, startZ, -1

	for attempt := 0; attempt < MaxGoalAttempts; attempt++ {
		x := g.between(3, g.width-4)
		z := g.between(3, g.height-8)
		if !geom.CircleContainsPoint(float64(x), float64(z), radius, float64(startX), float64(startZ)) {
			return x, z
		}
		dx, dz := x-startX, z-startZ
		if d := dx*dx + dz*dz; d > bestDist {
			bestX, bestZ, bestDist = x, z, d
		}
	}

	log.Printf("No goal tile outside radius %.0f after %d attempts, using (%d, %d)",
		radius, MaxGoalAttempts, bestX, bestZ)
	return bestX, bestZ
}

// goalIsland creates a small island around the goal tile
func (g *IslandGenerator) goalIsland(goalX, goalZ int) geom.RectXZ {
	w := max(g.between(g.width/20, g.width/10), minGoalIslandSide)
	h := max(g.between(g.height/20, g.height/10), minGoalIslandSide)
	x := g.between(max(1, goalX-w+2), min(g.width-1-w-1, goalX-2))
	z := g.between(max(1, goalZ-h+6), min(g.height-1-h-1, goalZ-2))
	return geom.NewRectXZ(x, z, w, h)
}

// carveBridges joins every island that does not already touch an earlier one
// to an earlier island with an L-shaped grass path
func (g *IslandGenerator) carveBridges(grid *components.Grid, islands []geom.RectXZ) {
	for n := 1; n < len(islands); n++ {
		island := islands[n]
		placed := islands[:n]
		if touchesAny(island, placed) {
			continue
		}

		x := g.between(island.X1, island.X2)
		z := g.between(island.Z1, island.Z2)
		targetX, targetZ := g.bridgeTarget(placed)

		grid.FillRect(x, z, targetX, z, components.TileGrass)
		grid.FillRect(targetX, z, targetX, targetZ, components.TileGrass)
	}
}

// bridgeTarget samples points until one shares a row or column with an
// earlier island, then snaps it into that island
func (g *IslandGenerator) bridgeTarget(placed []geom.RectXZ) (int, int) {
	for attempt := 0; attempt < MaxBridgeAttempts; attempt++ {
		x := g.between(config.IslandBorder, g.width-config.IslandBorder)
		z := g.between(config.IslandBorder, g.height-config.IslandBorder)
		for _, other := range placed {
			if other.SpansZ(z) {
				return g.between(other.X1, other.X2), z
			}
			if other.SpansX(x) {
				return x, g.between(other.Z1, other.Z2)
			}
		}
	}

	other := placed[g.rng.Intn(len(placed))]
	log.Printf("No bridge target after %d attempts, snapping into %s", MaxBridgeAttempts, other)
	return g.between(other.X1, other.X2), g.between(other.Z1, other.Z2)
}

func touchesAny(island geom.RectXZ, others []geom.RectXZ) bool {
	for _, other := range others {
		if island.IntersectsOrTouches(other) {
			return true
		}
	}
	return false
}

// scatterDecorations paints small islands that may or may not be connected
func (g *IslandGenerator) scatterDecorations(grid *components.Grid) []geom.RectXZ {
	count := g.between(0, 100)
	decorations := make([]geom.RectXZ, 0, count)
	for i := 0; i < count; i++ {
		w := g.between(3, 5)
		h := g.between(3, 5)
		island := g.makeIsland(w, h)
		grid.FillRect(island.X1, island.Z1, island.X2, island.Z2, components.TileGrass)
		decorations = append(decorations, island)
	}
	return decorations
}
