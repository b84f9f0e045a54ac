package types

// A ray computed over parametric distance t as origin + direction*t.
// Direction is not required to be unit length; the intersection
// quadratic normalizes through its a coefficient.
type Ray struct {
	Origin    Vec3
	Direction Vec3
}
