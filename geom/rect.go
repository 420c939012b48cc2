// Package geom holds the small amount of geometry the level generator and the
// entity simulation share: rectangles on the ground plane (x, z) and the
// vertical-cylinder hit test used between entities.
package geom

import "fmt"

// RectXZ is an axis-aligned rectangle on the ground plane, in tile coordinates
type RectXZ struct {
	X1, Z1 int
	X2, Z2 int
}

// NewRectXZ creates a rectangle from its origin and size
func NewRectXZ(x, z, w, h int) RectXZ {
	return RectXZ{X1: x, Z1: z, X2: x + w, Z2: z + h}
}

// String implements fmt.Stringer
func (r RectXZ) String() string {
	return fmt.Sprintf("RectXZ(x1:%d, z1:%d, x2:%d, z2:%d)", r.X1, r.Z1, r.X2, r.Z2)
}

// Width returns the extent along x
func (r RectXZ) Width() int {
	return r.X2 - r.X1
}

// Height returns the extent along z
func (r RectXZ) Height() int {
	return r.Z2 - r.Z1
}

// Contains reports whether (x, z) lies inside the half-open rectangle
func (r RectXZ) Contains(x, z int) bool {
	return r.X1 <= x && x < r.X2 && r.Z1 <= z && z < r.Z2
}

// Intersects reports whether the open interiors overlap. Shared edges do not count.
func (r RectXZ) Intersects(other RectXZ) bool {
	return r.X1 < other.X2 && r.X2 > other.X1 && r.Z1 < other.Z2 && r.Z2 > other.Z1
}

// IntersectsOrTouches is the closed-interval variant of Intersects: shared edges
// and corners count.
func (r RectXZ) IntersectsOrTouches(other RectXZ) bool {
	return r.X1 <= other.X2 && r.X2 >= other.X1 && r.Z1 <= other.Z2 && r.Z2 >= other.Z1
}

// SpansX reports whether column x falls within [X1, X2)
func (r RectXZ) SpansX(x int) bool {
	return r.X1 <= x && x < r.X2
}

// SpansZ reports whether row z falls within [Z1, Z2)
func (r RectXZ) SpansZ(z int) bool {
	return r.Z1 <= z && z < r.Z2
}
