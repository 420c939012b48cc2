package generation

import (
	"math"
	"testing"

	"archipelago/components"
	"archipelago/config"
	"archipelago/geom"
	"archipelago/world"
)

func generate(t *testing.T, seed int64) *Layout {
	t.Helper()
	layout := NewIslandGenerator(seed).Generate()
	if layout == nil || layout.Level == nil {
		t.Fatalf("seed %d: expected a layout with a level", seed)
	}
	return layout
}

func TestGenerateIsDeterministic(t *testing.T) {
	a := generate(t, 1234)
	b := generate(t, 1234)

	if a.StartTile != b.StartTile {
		t.Fatalf("expected same start tile, got %v and %v", a.StartTile, b.StartTile)
	}
	if a.GoalTile != b.GoalTile {
		t.Fatalf("expected same goal tile, got %v and %v", a.GoalTile, b.GoalTile)
	}
	if a.Creatures != b.Creatures {
		t.Fatalf("expected same creature count, got %d and %d", a.Creatures, b.Creatures)
	}
	if a.Level.Seed != b.Level.Seed {
		t.Fatalf("expected same level seed, got %d and %d", a.Level.Seed, b.Level.Seed)
	}
	for i := range a.Level.Grid.Tiles {
		if a.Level.Grid.Tiles[i] != b.Level.Grid.Tiles[i] {
			t.Fatalf("grids differ at index %d", i)
		}
	}
}

func TestSetSeedRestartsStream(t *testing.T) {
	g := NewIslandGenerator(99)
	first := g.Generate()
	g.Generate()
	g.SetSeed(99)
	again := g.Generate()

	if first.StartTile != again.StartTile || first.GoalTile != again.GoalTile {
		t.Fatalf("expected reseeded generator to repeat the first level, got start %v/%v goal %v/%v",
			first.StartTile, again.StartTile, first.GoalTile, again.GoalTile)
	}
}

func TestGenerateDefaultSize(t *testing.T) {
	layout := generate(t, 7)
	grid := layout.Level.Grid
	if grid.Width != config.LevelWidthTiles || grid.Height != config.LevelHeightTiles {
		t.Fatalf("expected %dx%d grid, got %dx%d",
			config.LevelWidthTiles, config.LevelHeightTiles, grid.Width, grid.Height)
	}
}

func TestGoalReachableFromStart(t *testing.T) {
	for seed := int64(1); seed <= 25; seed++ {
		layout := generate(t, seed)
		grid := layout.Level.Grid

		reach := grid.Reachable(layout.StartTile.X, layout.StartTile.Z)
		if !reach.Has(layout.GoalTile) {
			t.Fatalf("seed %d: goal tile %v not reachable from start %v", seed, layout.GoalTile, layout.StartTile)
		}
		if cut := layout.Unreachable(); len(cut) != 0 {
			t.Fatalf("seed %d: expected every island reachable, got %d cut off: %v", seed, len(cut), cut)
		}
	}
}

func TestIslandsArePaintedGrass(t *testing.T) {
	for seed := int64(1); seed <= 10; seed++ {
		layout := generate(t, seed)
		grid := layout.Level.Grid
		all := append(append([]geom.RectXZ{}, layout.Islands...), layout.Decorations...)
		for _, island := range all {
			for z := island.Z1; z <= island.Z2; z++ {
				for x := island.X1; x <= island.X2; x++ {
					if grid.TileAt(x, z) != components.TileGrass {
						t.Fatalf("seed %d: expected grass at (%d, %d) inside %s, got %s",
							seed, x, z, island, grid.TileAt(x, z))
					}
				}
			}
		}
	}
}

func TestLevelEdgesStaySpace(t *testing.T) {
	for seed := int64(1); seed <= 10; seed++ {
		grid := generate(t, seed).Level.Grid
		for x := 0; x < grid.Width; x++ {
			if grid.TileAt(x, 0) != components.TileSpace || grid.TileAt(x, grid.Height-1) != components.TileSpace {
				t.Fatalf("seed %d: expected space along top and bottom edges at column %d", seed, x)
			}
		}
		for z := 0; z < grid.Height; z++ {
			if grid.TileAt(0, z) != components.TileSpace || grid.TileAt(grid.Width-1, z) != components.TileSpace {
				t.Fatalf("seed %d: expected space along left and right edges at row %d", seed, z)
			}
		}
	}
}

func TestStartAndGoalPlacement(t *testing.T) {
	for seed := int64(1); seed <= 25; seed++ {
		layout := generate(t, seed)
		level := layout.Level
		start, goal := layout.StartTile, layout.GoalTile

		if level.Grid.TileAt(start.X, start.Z) != components.TileGrass {
			t.Fatalf("seed %d: expected start tile %v on grass", seed, start)
		}
		if level.StartX != float64(start.X*config.TileWidth) || level.StartZ != float64(start.Z*config.TileHeight) {
			t.Fatalf("seed %d: expected start position at tile %v, got (%v, %v)", seed, start, level.StartX, level.StartZ)
		}

		radius := float64(config.LevelWidthTiles / 3)
		if d := math.Hypot(float64(goal.X-start.X), float64(goal.Z-start.Z)); d < radius {
			t.Fatalf("seed %d: expected goal at least %v tiles from start, got %v", seed, radius, d)
		}

		gi := layout.GoalIsland
		if goal.X < gi.X1 || goal.X > gi.X2 || goal.Z < gi.Z1 || goal.Z > gi.Z2 {
			t.Fatalf("seed %d: expected goal tile %v inside goal island %s", seed, goal, gi)
		}
		if layout.Islands[len(layout.Islands)-1] != gi {
			t.Fatalf("seed %d: expected goal island to be the last connected island", seed)
		}

		if level.Goal == nil {
			t.Fatalf("seed %d: expected a goal entity", seed)
		}
		gb := level.Goal.Body()
		if gb.X != float64(goal.X*config.TileWidth) || gb.Z != float64(goal.Z*config.TileHeight) {
			t.Fatalf("seed %d: expected goal entity at tile %v, got (%v, %v)", seed, goal, gb.X, gb.Z)
		}
	}
}

func TestCreaturesPlacedOnGrass(t *testing.T) {
	for seed := int64(1); seed <= 25; seed++ {
		layout := generate(t, seed)
		level := layout.Level

		if layout.CreatureAttempts < MinCreatureAttempts || layout.CreatureAttempts > MaxCreatureAttempts {
			t.Fatalf("seed %d: expected %d-%d attempts, got %d",
				seed, MinCreatureAttempts, MaxCreatureAttempts, layout.CreatureAttempts)
		}
		if layout.Creatures > layout.CreatureAttempts {
			t.Fatalf("seed %d: placed %d creatures from only %d attempts", seed, layout.Creatures, layout.CreatureAttempts)
		}
		if got := level.CountKind(world.KindCreature); got != layout.Creatures {
			t.Fatalf("seed %d: expected %d creatures in level, got %d", seed, layout.Creatures, got)
		}

		for _, e := range level.Entities() {
			if e.Kind() != world.KindCreature {
				continue
			}
			b := e.Body()
			if level.TileAtWorld(b.X, b.Z) != components.TileGrass {
				t.Fatalf("seed %d: creature %d placed over %s", seed, b.ID, level.TileAtWorld(b.X, b.Z))
			}
			if b.Health != config.CreatureHealth {
				t.Fatalf("seed %d: expected creature health %d, got %d", seed, config.CreatureHealth, b.Health)
			}
		}
	}
}

func TestIslandCounts(t *testing.T) {
	for seed := int64(1); seed <= 25; seed++ {
		layout := generate(t, seed)
		// 5-10 large, 1-50 medium, plus the goal island
		if n := len(layout.Islands); n < 7 || n > 61 {
			t.Fatalf("seed %d: expected 7-61 connected islands, got %d", seed, n)
		}
		if n := len(layout.Decorations); n > 100 {
			t.Fatalf("seed %d: expected at most 100 decorations, got %d", seed, n)
		}
	}
}

func TestSmallLevelsStayConnected(t *testing.T) {
	g := NewIslandGenerator(5)
	g.SetSize(config.MinLevelWidthTiles, config.MinLevelHeightTiles)

	for i := 0; i < 25; i++ {
		layout := g.Generate()
		if w, h := g.Size(); layout.Level.Grid.Width != w || layout.Level.Grid.Height != h {
			t.Fatalf("expected %dx%d grid, got %dx%d", w, h, layout.Level.Grid.Width, layout.Level.Grid.Height)
		}
		if !layout.Level.Grid.Reachable(layout.StartTile.X, layout.StartTile.Z).Has(layout.GoalTile) {
			t.Fatalf("level %d: goal %v not reachable from start %v", i, layout.GoalTile, layout.StartTile)
		}
	}
}

func TestBetween(t *testing.T) {
	g := NewIslandGenerator(1)

	if got := g.between(5, 5); got != 5 {
		t.Fatalf("expected 5, got %d", got)
	}
	if got := g.between(5, 3); got != 5 {
		t.Fatalf("expected empty range to yield its low end, got %d", got)
	}

	seen := map[int]bool{}
	for i := 0; i < 1000; i++ {
		v := g.between(2, 4)
		if v < 2 || v > 4 {
			t.Fatalf("expected value in [2, 4], got %d", v)
		}
		seen[v] = true
	}
	if len(seen) != 3 {
		t.Fatalf("expected both ends of the range to be drawn, saw %v", seen)
	}
}

func TestPlaceGoalFallsBackToFarthestCandidate(t *testing.T) {
	// Every candidate lies within the exclusion circle: x in [3, 8], z = 3,
	// radius 4 around (6, 3)
	g := NewIslandGenerator(1)
	g.SetSize(12, 11)

	x, z := g.placeGoal(6, 3)
	if x != 3 || z != 3 {
		t.Fatalf("expected fallback to farthest candidate (3, 3), got (%d, %d)", x, z)
	}
}

func TestBridgeTargetSnapsIntoPlacedIsland(t *testing.T) {
	g := NewIslandGenerator(3)
	placed := []geom.RectXZ{geom.NewRectXZ(10, 10, 20, 20)}

	for i := 0; i < 100; i++ {
		x, z := g.bridgeTarget(placed)
		island := placed[0]
		if x < island.X1 || x > island.X2 || z < island.Z1 || z > island.Z2 {
			t.Fatalf("expected bridge target inside %s, got (%d, %d)", island, x, z)
		}
	}
}

func TestCarveBridgesSkipsTouchingIslands(t *testing.T) {
	g := NewIslandGenerator(3)
	grid := components.NewGrid(40, 40)
	islands := []geom.RectXZ{
		geom.NewRectXZ(2, 2, 5, 5),
		geom.NewRectXZ(7, 2, 5, 5), // shares column 7 with the first
	}

	g.carveBridges(grid, islands)
	if n := grid.Count(components.TileGrass); n != 0 {
		t.Fatalf("expected no bridge for touching islands, got %d grass tiles", n)
	}

	islands = append(islands, geom.NewRectXZ(25, 25, 5, 5))
	g.carveBridges(grid, islands)
	for _, island := range islands {
		grid.FillRect(island.X1, island.Z1, island.X2, island.Z2, components.TileGrass)
	}
	if !grid.Reachable(27, 27).Has(components.TilePos{X: 3, Z: 3}) {
		t.Fatalf("expected the detached island to be bridged to the others")
	}
}
