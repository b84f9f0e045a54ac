package types

import (
	"github.com/chewxy/math32"

	"golang.org/x/image/math/f32"
)

type Vec3 f32.Vec3

// Comparison threshold for IsEquivalent and the near-tangent
// intersection tests.
const Epsilon float32 = 1e-5

// Enable while developing to catch zero-length Normalize inputs at
// the call site instead of propagating Inf/NaN through the frame.
var debugChecks = false

// Define a 3 component vector.
func XYZ(x, y, z float32) Vec3 {
	return Vec3{x, y, z}
}

// Add a vector.
func (v Vec3) Add(v2 Vec3) Vec3 {
	return Vec3{v[0] + v2[0], v[1] + v2[1], v[2] + v2[2]}
}

// Subtract a vector.
func (v Vec3) Sub(v2 Vec3) Vec3 {
	return Vec3{v[0] - v2[0], v[1] - v2[1], v[2] - v2[2]}
}

// Multiply a 3 component vector with a scalar.
func (v Vec3) Mul(s float32) Vec3 {
	return Vec3{v[0] * s, v[1] * s, v[2] * s}
}

// Multiply two vectors component-wise.
func (v Vec3) MulVec(v2 Vec3) Vec3 {
	return Vec3{v[0] * v2[0], v[1] * v2[1], v[2] * v2[2]}
}

// Add a scalar to every component.
func (v Vec3) AddS(s float32) Vec3 {
	return Vec3{v[0] + s, v[1] + s, v[2] + s}
}

// Calculate dot product of 2 vectors.
func (v Vec3) Dot(v2 Vec3) float32 {
	return v[0]*v2[0] + v[1]*v2[1] + v[2]*v2[2]
}

// Calculate cross product of 2 vectors.
func (v Vec3) Cross(v2 Vec3) Vec3 {
	return Vec3{v[1]*v2[2] - v[2]*v2[1], v[2]*v2[0] - v[0]*v2[2], v[0]*v2[1] - v[1]*v2[0]}
}

// Get 3 component vector length.
func (v Vec3) Len() float32 {
	return math32.Sqrt(v.Dot(v))
}

// Normalize 3 component vector. The caller must guarantee a non-zero
// length; a zero vector divides by zero and propagates Inf/NaN unless
// debugChecks is enabled.
func (v Vec3) Normalize() Vec3 {
	length := v.Len()
	if debugChecks && length < Epsilon {
		panic("types: Normalize called with a zero-length vector")
	}
	return v.Mul(1.0 / length)
}

// Get the euclidean distance between the tips of two vectors.
func (v Vec3) Distance(v2 Vec3) float32 {
	return v2.Sub(v).Len()
}

// Check whether two vectors are separated by less than maxDelta.
func (v Vec3) IsEquivalent(v2 Vec3, maxDelta float32) bool {
	return v2.Sub(v).Len() < maxDelta
}

// Linearly interpolate between two vectors.
func Lerp(v0, v1 Vec3, t float32) Vec3 {
	return v0.Add(v1.Sub(v0).Mul(t))
}

// Clamp a scalar to [0, 1].
func Saturate(in float32) float32 {
	if in < 0.0 {
		return 0.0
	}
	if in > 1.0 {
		return 1.0
	}
	return in
}
