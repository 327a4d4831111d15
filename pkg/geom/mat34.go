package geom

import "github.com/wrenbyte/starlance/pkg/fix"

// Mat34 is a 3x4 affine transform in row-major order: a 3x3 linear part
// plus a translation column, no projective row.
//
//	[m0 m1 m2  | m3 ]
//	[m4 m5 m6  | m7 ]
//	[m8 m9 m10 | m11]
//
// The linear part is only ever composed from rotations, which is what
// makes TransposeRot a valid inverse.
type Mat34 [12]fix.T

// Identity returns the identity transform.
func Identity() Mat34 {
	return Mat34{
		fix.One, 0, 0, 0,
		0, fix.One, 0, 0,
		0, 0, fix.One, 0,
	}
}

// Translation returns a pure translation.
func Translation(x, y, z fix.T) Mat34 {
	return Mat34{
		fix.One, 0, 0, x,
		0, fix.One, 0, y,
		0, 0, fix.One, z,
	}
}

// RotX returns a rotation around the X axis. The angle is in turns,
// matching the screen-space convention where sine runs clockwise.
func RotX(a fix.T) Mat34 {
	c, s := fix.Cos(a), fix.Sin(a)
	return Mat34{
		fix.One, 0, 0, 0,
		0, c, -s, 0,
		0, s, c, 0,
	}
}

// RotY returns a rotation around the Y axis, angle in turns.
func RotY(a fix.T) Mat34 {
	c, s := fix.Cos(a), fix.Sin(a)
	return Mat34{
		c, 0, -s, 0,
		0, fix.One, 0, 0,
		s, 0, c, 0,
	}
}

// RotZ returns a rotation around the Z axis, angle in turns.
func RotZ(a fix.T) Mat34 {
	c, s := fix.Cos(a), fix.Sin(a)
	return Mat34{
		c, -s, 0, 0,
		s, c, 0, 0,
		0, 0, fix.One, 0,
	}
}

// Mul composes two transforms: the result applies other first, then m.
func (m Mat34) Mul(other Mat34) Mat34 {
	var r Mat34
	for row := 0; row < 3; row++ {
		a, b, c, t := m[row*4], m[row*4+1], m[row*4+2], m[row*4+3]
		r[row*4] = a.Mul(other[0]) + b.Mul(other[4]) + c.Mul(other[8])
		r[row*4+1] = a.Mul(other[1]) + b.Mul(other[5]) + c.Mul(other[9])
		r[row*4+2] = a.Mul(other[2]) + b.Mul(other[6]) + c.Mul(other[10])
		r[row*4+3] = a.Mul(other[3]) + b.Mul(other[7]) + c.Mul(other[11]) + t
	}
	return r
}

// ApplyDir transforms a direction, ignoring translation.
func (m Mat34) ApplyDir(v Vec3) Vec3 {
	return Vec3{
		X: v.X.Mul(m[0]) + v.Y.Mul(m[1]) + v.Z.Mul(m[2]),
		Y: v.X.Mul(m[4]) + v.Y.Mul(m[5]) + v.Z.Mul(m[6]),
		Z: v.X.Mul(m[8]) + v.Y.Mul(m[9]) + v.Z.Mul(m[10]),
	}
}

// ApplyPoint transforms a point: rotate, then translate.
func (m Mat34) ApplyPoint(v Vec3) Vec3 {
	r := m.ApplyDir(v)
	r.X += m[3]
	r.Y += m[7]
	r.Z += m[11]
	return r
}

// TransposeRot transposes the 3x3 linear part, leaving the translation
// column in place. For a pure rotation this inverts the linear part.
func (m Mat34) TransposeRot() Mat34 {
	return Mat34{
		m[0], m[4], m[8], m[3],
		m[1], m[5], m[9], m[7],
		m[2], m[6], m[10], m[11],
	}
}
