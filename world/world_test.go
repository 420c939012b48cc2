package world

import (
	"math"
	"math/rand"
	"testing"

	"archipelago/components"
	"archipelago/config"
	"archipelago/ecs"
)

// zeroSource makes every Float64 draw return 0: creatures never reconsider on
// their own and always stop when forced to.
type zeroSource struct{}

func (zeroSource) Int63() int64 { return 0 }
func (zeroSource) Seed(int64)   {}

func newTestLevel(width, height int, fill components.Tile) *Level {
	grid := components.NewGrid(width, height)
	grid.FillRect(0, 0, width-1, height-1, fill)
	level := NewLevel(grid, 1)
	level.SetRand(rand.New(zeroSource{}))
	return level
}

func recordEvents(level *Level) *[]ecs.Event {
	var events []ecs.Event
	em := ecs.NewEventManager()
	em.SubscribeAll(func(e ecs.Event) { events = append(events, e) })
	level.SetEvents(em)
	return &events
}

func countEvents(events []ecs.Event, eventType ecs.EventType) int {
	n := 0
	for _, e := range events {
		if e.Type() == eventType {
			n++
		}
	}
	return n
}

func TestPlayerIdleOnGrassStaysPut(t *testing.T) {
	level := newTestLevel(16, 16, components.TileGrass)
	p := NewPlayer(level.NextID(), 40, 50)
	level.AttachPlayer(p)

	for i := 0; i < 10; i++ {
		p.SetIntent(Intent{})
		p.Update(level)
	}

	b := p.Body()
	if b.X != 40 || b.Y != 0 || b.Z != 50 {
		t.Fatalf("expected player at (40, 0, 50), got (%v, %v, %v)", b.X, b.Y, b.Z)
	}
	if len(level.Entities()) != 0 {
		t.Fatalf("expected no spawned entities, got %d", len(level.Entities()))
	}
}

func TestPlayerAirborneFallsUntilLanding(t *testing.T) {
	level := newTestLevel(16, 16, components.TileGrass)
	p := NewPlayer(level.NextID(), 40, 40)
	p.Body().Y = 5

	for tick := 0; tick < 100; tick++ {
		prevVY := p.VY
		p.Update(level)
		if p.Body().Y < 0 {
			t.Fatalf("tick %d: y went negative: %v", tick, p.Body().Y)
		}
		if !p.Airborne() {
			if p.VY != 0 {
				t.Fatalf("expected vertical velocity reset on landing, got %v", p.VY)
			}
			return
		}
		if math.Abs(p.VY-(prevVY+config.Gravity)) > 1e-9 {
			t.Fatalf("tick %d: expected vy %v, got %v", tick, prevVY+config.Gravity, p.VY)
		}
	}
	t.Fatalf("player never landed")
}

func TestPlayerWalksAndFacesInputDirection(t *testing.T) {
	tests := []struct {
		name   string
		in     Intent
		dx, dz float64
		facing float64
	}{
		{"right", Intent{Right: true}, 3, 0, 0},
		{"down", Intent{Down: true}, 0, 3, config.Tau / 4},
		{"left", Intent{Left: true}, -3, 0, config.Tau / 2},
		{"up", Intent{Up: true}, 0, -3, 3 * config.Tau / 4},
		{"down-right", Intent{Down: true, Right: true}, 0.707 * 3, 0.707 * 3, config.Tau / 8},
		{"opposites cancel", Intent{Left: true, Right: true}, 0, 0, config.Tau / 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			level := newTestLevel(16, 16, components.TileGrass)
			p := NewPlayer(level.NextID(), 100, 100)
			p.SetIntent(tt.in)
			p.Update(level)

			b := p.Body()
			if math.Abs(b.X-(100+tt.dx)) > 1e-9 || math.Abs(b.Z-(100+tt.dz)) > 1e-9 {
				t.Fatalf("expected (%v, %v), got (%v, %v)", 100+tt.dx, 100+tt.dz, b.X, b.Z)
			}
			if math.Abs(p.Facing-tt.facing) > 1e-9 {
				t.Fatalf("expected facing %v, got %v", tt.facing, p.Facing)
			}
		})
	}
}

func TestPlayerClampsToLevelBounds(t *testing.T) {
	level := newTestLevel(4, 4, components.TileGrass)
	p := NewPlayer(level.NextID(), level.Grid.WorldWidth()-1, 1)
	p.SetIntent(Intent{Right: true, Up: true})
	p.Update(level)

	b := p.Body()
	if b.X != level.Grid.WorldWidth() || b.Z != 0 {
		t.Fatalf("expected clamp to (%v, 0), got (%v, %v)", level.Grid.WorldWidth(), b.X, b.Z)
	}
}

func TestPlayerFallsOffEdgeIntoSpace(t *testing.T) {
	level := newTestLevel(8, 8, components.TileSpace)
	events := recordEvents(level)
	p := NewPlayer(level.NextID(), 50, 50)
	level.AttachPlayer(p)

	p.SetIntent(Intent{Right: true, Action: true})
	p.Update(level)
	if p.Body().Y != -1 {
		t.Fatalf("expected y=-1 after stepping on space, got %v", p.Body().Y)
	}
	if p.Body().X != 50 {
		t.Fatalf("expected no walking on the tick the fall starts")
	}

	for i := 0; i < 200; i++ {
		p.SetIntent(Intent{Action: true})
		p.Update(level)
	}
	if !p.Fell() {
		t.Fatalf("expected player to have fallen out of sight, y=%v", p.Body().Y)
	}
	if got := countEvents(*events, EventPlayerFell); got != 1 {
		t.Fatalf("expected 1 fell event, got %d", got)
	}
	if len(level.Entities()) != 0 {
		t.Fatalf("expected no throws while airborne, got %d entities", len(level.Entities()))
	}
}

func TestPlayerActionSpawnsProjectile(t *testing.T) {
	level := newTestLevel(16, 16, components.TileGrass)
	events := recordEvents(level)
	p := NewPlayer(level.NextID(), 80, 80)

	p.SetIntent(Intent{Left: true, Action: true})
	p.Update(level)

	if got := level.CountKind(KindProjectile); got != 1 {
		t.Fatalf("expected 1 projectile, got %d", got)
	}
	proj := level.Entities()[0].(*Projectile)
	if proj.VX >= 0 {
		t.Fatalf("expected projectile thrown left, got vx=%v", proj.VX)
	}
	if proj.Body().X != 77 || proj.Body().Z != 80 {
		t.Fatalf("expected projectile at player position (77, 80), got (%v, %v)", proj.Body().X, proj.Body().Z)
	}
	if got := countEvents(*events, EventProjectileThrow); got != 1 {
		t.Fatalf("expected 1 throw event, got %d", got)
	}

	// The action is consumed by the update
	p.Update(level)
	if got := level.CountKind(KindProjectile); got != 1 {
		t.Fatalf("expected action to be consumed, got %d projectiles", got)
	}
}

func TestProjectileFacingZeroMovesAlongX(t *testing.T) {
	p := NewProjectile(1, 0, 0, 0)
	if p.VX <= 0 {
		t.Fatalf("expected positive vx, got %v", p.VX)
	}
	if p.VZ != 0 {
		t.Fatalf("expected zero vz, got %v", p.VZ)
	}
	if p.VY <= 0 {
		t.Fatalf("expected upward launch, got vy=%v", p.VY)
	}
}

func TestProjectileDamagesCreature(t *testing.T) {
	level := newTestLevel(32, 32, components.TileGrass)
	events := recordEvents(level)
	creature := NewCreature(level.NextID(), 100, 100)
	level.Spawn(creature)

	first := NewProjectile(level.NextID(), 100, 100, 0)
	level.Spawn(first)
	level.UpdateEntities()
	level.Compact()

	if !first.Body().Remove {
		t.Fatalf("expected projectile removed after hit")
	}
	if creature.Body().Health != 1 || creature.Body().Remove {
		t.Fatalf("expected creature alive with 1 health, got health=%d remove=%v",
			creature.Body().Health, creature.Body().Remove)
	}
	if got := level.CountKind(KindCreature); got != 1 {
		t.Fatalf("expected creature to survive the removal pass")
	}

	second := NewProjectile(level.NextID(), creature.Body().X, creature.Body().Z, 0)
	level.Spawn(second)
	level.UpdateEntities()
	removed := level.Compact()

	if !creature.Body().Remove {
		t.Fatalf("expected creature marked for removal after second hit")
	}
	if removed != 2 || len(level.Entities()) != 0 {
		t.Fatalf("expected projectile and creature removed, removed=%d left=%d", removed, len(level.Entities()))
	}
	if got := countEvents(*events, EventEntityHit); got != 2 {
		t.Fatalf("expected 2 hit events, got %d", got)
	}
	if got := countEvents(*events, EventCreatureKilled); got != 1 {
		t.Fatalf("expected 1 kill event, got %d", got)
	}
}

func TestProjectileLandsOnGrass(t *testing.T) {
	level := newTestLevel(64, 64, components.TileGrass)
	p := NewProjectile(level.NextID(), 200, 200, 0)
	level.Spawn(p)

	for tick := 0; tick < 100 && !p.Body().Remove; tick++ {
		level.UpdateEntities()
	}
	if !p.Body().Remove {
		t.Fatalf("expected projectile to hit the ground")
	}
	if p.Body().Y > 0 {
		t.Fatalf("expected projectile at or below ground, y=%v", p.Body().Y)
	}
}

func TestProjectileOverSpaceIsCulledWhenDeep(t *testing.T) {
	level := newTestLevel(64, 64, components.TileSpace)
	level.AttachPlayer(NewPlayer(level.NextID(), 100, 100))
	p := NewProjectile(level.NextID(), 100, 100, config.Tau/4)
	level.Spawn(p)

	crossed := false
	for tick := 0; tick < 1000 && !p.Body().Remove; tick++ {
		level.UpdateEntities()
		if p.Body().Y <= 0 && !crossed {
			crossed = true
			if p.Body().Remove {
				t.Fatalf("expected projectile to keep falling through space")
			}
		}
	}
	if !p.Body().Remove {
		t.Fatalf("expected projectile culled after falling deep")
	}
	b := p.Body()
	if b.Y-b.Z > level.cullDepth() {
		t.Fatalf("expected removal below cull depth %v, got %v", level.cullDepth(), b.Y-b.Z)
	}
}

func TestProjectilesDoNotCollideWithEachOther(t *testing.T) {
	level := newTestLevel(16, 16, components.TileGrass)
	a := NewProjectile(level.NextID(), 50, 50, 0)
	b := NewProjectile(level.NextID(), 50, 50, 0)
	level.Spawn(a)
	level.Spawn(b)

	if hit := level.Collide(a); hit != nil {
		t.Fatalf("expected no projectile-vs-projectile hit, got %v", hit.Kind())
	}
}

func TestCollideReturnsFirstInCollectionOrder(t *testing.T) {
	level := newTestLevel(16, 16, components.TileGrass)
	first := NewCreature(level.NextID(), 50, 50)
	second := NewCreature(level.NextID(), 52, 50)
	level.Spawn(first)
	level.Spawn(second)

	probe := NewProjectile(level.NextID(), 51, 50, 0)
	if hit := level.Collide(probe); hit != first {
		t.Fatalf("expected first creature, got %v", hit)
	}
	if hit := level.Collide(first); hit != second {
		t.Fatalf("expected creature to skip itself")
	}
}

func TestCreatureBlockedByNonGrassStaysPut(t *testing.T) {
	level := newTestLevel(8, 8, components.TileSpace)
	level.Grid.SetTile(1, 1, components.TileGrass)
	c := NewCreature(level.NextID(), 31, 20)
	c.VX = config.CreatureSpeed
	level.Spawn(c)

	c.Update(level)
	if c.Body().X != 31 || c.Body().Z != 20 {
		t.Fatalf("expected creature at (31, 20), got (%v, %v)", c.Body().X, c.Body().Z)
	}
	if c.VX != 0 || c.VZ != 0 {
		t.Fatalf("expected creature to reconsider and stop, got v=(%v, %v)", c.VX, c.VZ)
	}
}

func TestCreatureNeverLeavesSpaceTile(t *testing.T) {
	level := newTestLevel(8, 8, components.TileSpace)
	level.SetRand(rand.New(rand.NewSource(42)))
	c := NewCreature(level.NextID(), 60, 60)
	c.VX, c.VZ = 1, 1

	for i := 0; i < 500; i++ {
		c.Update(level)
		if c.Body().X != 60 || c.Body().Z != 60 {
			t.Fatalf("tick %d: creature moved to (%v, %v)", i, c.Body().X, c.Body().Z)
		}
	}
}

func TestCreatureWalksOnGrass(t *testing.T) {
	level := newTestLevel(16, 16, components.TileGrass)
	c := NewCreature(level.NextID(), 100, 100)
	c.VX = config.CreatureSpeed

	c.Update(level)
	if c.Body().X != 100+config.CreatureSpeed {
		t.Fatalf("expected creature to step to %v, got %v", 100+config.CreatureSpeed, c.Body().X)
	}
}

func TestDamageRemovesOnlyVulnerableEntities(t *testing.T) {
	c := NewCreature(1, 0, 0)
	c.Body().Damage(1)
	if c.Body().Health != 1 || c.Body().Remove {
		t.Fatalf("expected creature alive with 1 health after one hit")
	}
	c.Body().Damage(1)
	if !c.Body().Remove {
		t.Fatalf("expected creature marked for removal after two hits")
	}

	g := NewGoal(2, 0, 0)
	g.Body().Damage(5)
	if g.Body().Remove {
		t.Fatalf("expected invulnerable goal to stay")
	}
}

func TestCompactKeepsSurvivorOrder(t *testing.T) {
	level := newTestLevel(4, 4, components.TileGrass)
	var all []*Creature
	for i := 0; i < 6; i++ {
		c := NewCreature(level.NextID(), float64(i), 0)
		all = append(all, c)
		level.Spawn(c)
	}
	all[0].Body().Remove = true
	all[3].Body().Remove = true
	all[5].Body().Remove = true

	if removed := level.Compact(); removed != 3 {
		t.Fatalf("expected 3 removed, got %d", removed)
	}
	want := []*Creature{all[1], all[2], all[4]}
	got := level.Entities()
	if len(got) != len(want) {
		t.Fatalf("expected %d survivors, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != Entity(want[i]) {
			t.Fatalf("survivor %d out of order", i)
		}
	}
}

func TestPlayerReachingGoalEmitsOnce(t *testing.T) {
	level := newTestLevel(16, 16, components.TileGrass)
	events := recordEvents(level)
	level.Goal = NewGoal(level.NextID(), 100, 100)
	p := NewPlayer(level.NextID(), 110, 100)

	p.Update(level)
	p.Update(level)
	if !p.ReachedGoal() {
		t.Fatalf("expected goal reached")
	}
	if got := countEvents(*events, EventGoalReached); got != 1 {
		t.Fatalf("expected 1 goal event, got %d", got)
	}
}

func TestGoalNeverMoves(t *testing.T) {
	level := newTestLevel(4, 4, components.TileSpace)
	g := NewGoal(level.NextID(), 10, 20)
	g.Update(level)
	if g.Body().X != 10 || g.Body().Y != 0 || g.Body().Z != 20 {
		t.Fatalf("expected goal to stay at (10, 0, 20)")
	}
}

func TestSortByDepthIsStable(t *testing.T) {
	infos := []DrawInfo{
		{ID: 1, Z: 30},
		{ID: 2, Z: 10},
		{ID: 3, Z: 30},
		{ID: 4, Z: 20},
	}
	SortByDepth(infos)
	want := []ecs.EntityID{2, 4, 1, 3}
	for i, id := range want {
		if infos[i].ID != id {
			t.Fatalf("position %d: expected ID %d, got %d", i, id, infos[i].ID)
		}
	}
}
