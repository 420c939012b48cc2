package ecs

// EntityID is a unique identifier for an entity
type EntityID uint64

// IDGenerator hands out entity IDs. Each level owns one so that a seeded
// level always numbers its entities the same way.
type IDGenerator struct {
	next EntityID
}

// NewIDGenerator creates a generator whose first ID is 1
func NewIDGenerator() *IDGenerator {
	return &IDGenerator{}
}

// Next returns a new unique entity ID
func (g *IDGenerator) Next() EntityID {
	g.next++
	return g.next
}
