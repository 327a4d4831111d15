// Package geom provides fixed-point vector and affine matrix types for
// the 3D pipeline.
package geom

import "github.com/wrenbyte/starlance/pkg/fix"

// Vec3 is a 3-component fixed-point vector. It serves as an
// object-space position, a direction, or a projected screen-space
// point, where Z holds the perspective weight rather than a depth.
type Vec3 struct {
	X, Y, Z fix.T
}

// Add returns v + other.
func (v Vec3) Add(other Vec3) Vec3 {
	return Vec3{v.X + other.X, v.Y + other.Y, v.Z + other.Z}
}

// Sub returns v - other.
func (v Vec3) Sub(other Vec3) Vec3 {
	return Vec3{v.X - other.X, v.Y - other.Y, v.Z - other.Z}
}

// Scale returns v * s.
func (v Vec3) Scale(s fix.T) Vec3 {
	return Vec3{v.X.Mul(s), v.Y.Mul(s), v.Z.Mul(s)}
}

// Dot returns the dot product.
func (v Vec3) Dot(other Vec3) fix.T {
	return v.X.Mul(other.X) + v.Y.Mul(other.Y) + v.Z.Mul(other.Z)
}

// Length returns the magnitude.
func (v Vec3) Length() fix.T {
	return v.Dot(v).Sqrt()
}

// Normalize returns a unit-length vector. The input is pre-scaled down
// so the squared length stays inside the Q16.16 range for vectors up to
// a few hundred units long.
func (v Vec3) Normalize() Vec3 {
	s := v.Scale(fix.From(0.1))
	l := s.Length()
	if l <= 0 {
		return Vec3{}
	}
	return s.Scale(fix.One.Div(l))
}
