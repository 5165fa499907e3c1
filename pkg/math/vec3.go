// Package math provides the vector and matrix types used by the camera and renderer.
package math

import "math"

// Vec3 is a 3D vector.
type Vec3 struct {
	X, Y, Z float32
}

// Add returns v + other.
func (v Vec3) Add(other Vec3) Vec3 {
	return Vec3{v.X + other.X, v.Y + other.Y, v.Z + other.Z}
}

// Sub returns v - other.
func (v Vec3) Sub(other Vec3) Vec3 {
	return Vec3{v.X - other.X, v.Y - other.Y, v.Z - other.Z}
}

// Scale returns v * scalar.
func (v Vec3) Scale(s float32) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

// Negate returns -v.
func (v Vec3) Negate() Vec3 {
	return Vec3{-v.X, -v.Y, -v.Z}
}

// Dot returns the dot product.
func (v Vec3) Dot(other Vec3) float32 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

// Cross returns the cross product.
func (v Vec3) Cross(other Vec3) Vec3 {
	return Vec3{
		v.Y*other.Z - v.Z*other.Y,
		v.Z*other.X - v.X*other.Z,
		v.X*other.Y - v.Y*other.X,
	}
}

// Length returns the magnitude.
func (v Vec3) Length() float32 {
	return float32(math.Sqrt(float64(v.X*v.X + v.Y*v.Y + v.Z*v.Z)))
}

// Normalize returns a unit vector. The zero vector is returned unchanged.
func (v Vec3) Normalize() Vec3 {
	l := v.Length()
	if l == 0 {
		return v
	}
	il := 1 / l
	return Vec3{v.X * il, v.Y * il, v.Z * il}
}

// Distance returns the distance to another point.
func (v Vec3) Distance(other Vec3) float32 {
	return v.Sub(other).Length()
}

// Angle returns the unsigned angle between v and other in radians.
func (v Vec3) Angle(other Vec3) float32 {
	cross := v.Cross(other)
	return float32(math.Atan2(float64(cross.Length()), float64(v.Dot(other))))
}

// Transform applies m to v as a point (implicit w = 1, no perspective divide).
func (v Vec3) Transform(m Mat4) Vec3 {
	return Vec3{
		X: m[0]*v.X + m[4]*v.Y + m[8]*v.Z + m[12],
		Y: m[1]*v.X + m[5]*v.Y + m[9]*v.Z + m[13],
		Z: m[2]*v.X + m[6]*v.Y + m[10]*v.Z + m[14],
	}
}

// RotateByAxisAngle rotates v around axis by angle radians using the
// Euler-Rodrigues formula. A zero axis is treated as unit length.
func (v Vec3) RotateByAxisAngle(axis Vec3, angle float32) Vec3 {
	length := axis.Length()
	if length == 0 {
		length = 1
	}
	axis = axis.Scale(1 / length)

	half := float64(angle) / 2
	a := float32(math.Sin(half))
	w := Vec3{axis.X * a, axis.Y * a, axis.Z * a}
	a = float32(math.Cos(half))

	wv := w.Cross(v)
	wwv := w.Cross(wv)

	wv = wv.Scale(2 * a)
	wwv = wwv.Scale(2)

	return v.Add(wv).Add(wwv)
}
