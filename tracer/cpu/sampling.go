package cpu

import (
	"github.com/chewxy/math32"

	"github.com/mattrusch/SoftPT/types"
)

// TangentFrame builds an orthonormal right-handed basis around a unit
// surface normal. The tangent is seeded with a fixed reference axis and
// re-derived through two cross products, so it ends up orthogonal to
// the normal even though the seed is not.
func TangentFrame(normal types.Vec3) (tangent, bitangent types.Vec3) {
	right := types.XYZ(-1.0, 0.0, 0.0)
	up := types.XYZ(0.0, 1.0, 0.0)

	// Fall back to the up axis when the normal is close enough to the
	// reference axis to produce a degenerate cross product.
	tangent = right
	if normal.IsEquivalent(right, types.Epsilon) {
		tangent = up
	}

	bitangent = normal.Cross(tangent).Normalize()
	tangent = bitangent.Cross(normal).Normalize()
	return tangent, bitangent
}

// SampleHemisphere maps two independent uniform draws in [0,1) to a
// world-space direction over the hemisphere around normal. Directions
// are distributed uniformly by solid angle: u0 is used directly as the
// cosine of the polar angle and u1 as the azimuthal fraction.
func SampleHemisphere(normal types.Vec3, u0, u1 float32) types.Vec3 {
	// Direction in the local frame whose pole is (0, 1, 0).
	sqrtFactor := math32.Sqrt(1.0 - u0*u0)
	local := types.XYZ(
		sqrtFactor*math32.Cos(2.0*math32.Pi*u1),
		u0,
		sqrtFactor*math32.Sin(2.0*math32.Pi*u1),
	)

	// Rotate into the tangent frame around the normal: the local y
	// axis maps onto the normal.
	tangent, bitangent := TangentFrame(normal)
	return types.XYZ(
		local.Dot(types.XYZ(tangent[0], normal[0], bitangent[0])),
		local.Dot(types.XYZ(tangent[1], normal[1], bitangent[1])),
		local.Dot(types.XYZ(tangent[2], normal[2], bitangent[2])),
	)
}
