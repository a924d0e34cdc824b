package vectors

import "math"

// Vec3 is a simple 3D vector with float64 components.
// The colour code uses it as a float view of an RGB triple.
type Vec3 struct {
	X, Y, Z float64
}

// Dot returns the dot product v · o.
func (v Vec3) Dot(o Vec3) float64 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

// Max returns the largest component.
func (v Vec3) Max() float64 {
	return math.Max(v.X, math.Max(v.Y, v.Z))
}
