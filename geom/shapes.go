package geom

// Clamp limits value to the range [min, max].
func Clamp(value, min, max float64) float64 {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

// ClampInt limits value to the range [min, max].
func ClampInt(value, min, max int) int {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

// FloorDiv divides rounding toward negative infinity
func FloorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

// CircleContainsPoint reports whether the circle centered at (cx, cz) with radius r
// strictly contains (px, pz). Points on the boundary are outside.
func CircleContainsPoint(cx, cz, r, px, pz float64) bool {
	dx := cx - px
	dz := cz - pz
	return dx*dx+dz*dz < r*r
}

// Cylinder is an upright cylinder. (X, Y, Z) is the bottom center and Y grows upward.
type Cylinder struct {
	X, Y, Z float64
	Radius  float64
	Height  float64
}

// CylindersIntersect reports whether two cylinders overlap both on the ground
// plane and along their vertical spans [Y, Y+Height).
func CylindersIntersect(a, b Cylinder) bool {
	return CircleContainsPoint(a.X, a.Z, a.Radius+b.Radius, b.X, b.Z) &&
		a.Y < b.Y+b.Height && a.Y+a.Height > b.Y
}
