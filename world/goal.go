package world

import "archipelago/ecs"

// Goal marks the spot the player is trying to reach. It never moves and cannot be destroyed.
type Goal struct {
	body Body
}

// NewGoal creates the goal marker at (x, z)
func NewGoal(id ecs.EntityID, x, z float64) *Goal {
	return &Goal{body: newBody(id, x, z, ColorGoal)}
}

// Body implements Entity
func (g *Goal) Body() *Body { return &g.body }

// Kind implements Entity
func (g *Goal) Kind() Kind { return KindGoal }

// DrawInfo implements Entity
func (g *Goal) DrawInfo() DrawInfo { return drawInfoOf(KindGoal, &g.body) }

// Update implements Entity; the goal is static
func (g *Goal) Update(*Level) {}
