package world

import "archipelago/ecs"

// Event type constants
const (
	EventLevelGenerated  ecs.EventType = "level_generated"
	EventProjectileThrow ecs.EventType = "projectile_throw"
	EventEntityHit       ecs.EventType = "entity_hit"
	EventCreatureKilled  ecs.EventType = "creature_killed"
	EventPlayerFell      ecs.EventType = "player_fell"
	EventGoalReached     ecs.EventType = "goal_reached"
)

// LevelGeneratedEvent is emitted when a new level replaces the current one
type LevelGeneratedEvent struct {
	Seed      int64 // Seed of the level's random source
	Islands   int   // Connected islands, including the goal island
	Creatures int
}

// Type returns the event type
func (e LevelGeneratedEvent) Type() ecs.EventType {
	return EventLevelGenerated
}

// ProjectileThrownEvent is emitted when the player throws a projectile
type ProjectileThrownEvent struct {
	ProjectileID ecs.EntityID
	X, Z         float64
	Direction    float64 // Facing angle in radians
}

// Type returns the event type
func (e ProjectileThrownEvent) Type() ecs.EventType {
	return EventProjectileThrow
}

// EntityHitEvent is emitted when a projectile strikes an entity
type EntityHitEvent struct {
	ProjectileID ecs.EntityID
	TargetID     ecs.EntityID
	TargetKind   Kind
	Health       int // Target health after the hit
}

// Type returns the event type
func (e EntityHitEvent) Type() ecs.EventType {
	return EventEntityHit
}

// CreatureKilledEvent is emitted when a hit leaves a creature with no health
type CreatureKilledEvent struct {
	CreatureID ecs.EntityID
	X, Z       float64
}

// Type returns the event type
func (e CreatureKilledEvent) Type() ecs.EventType {
	return EventCreatureKilled
}

// PlayerFellEvent is emitted once when the player has fallen out of sight
type PlayerFellEvent struct {
	X, Z float64
}

// Type returns the event type
func (e PlayerFellEvent) Type() ecs.EventType {
	return EventPlayerFell
}

// GoalReachedEvent is emitted the first time the player stands at the goal
type GoalReachedEvent struct {
	X, Z float64
}

// Type returns the event type
func (e GoalReachedEvent) Type() ecs.EventType {
	return EventGoalReached
}
