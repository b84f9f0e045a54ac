package cpu

import (
	"github.com/chewxy/math32"

	"github.com/mattrusch/SoftPT/scene"
	"github.com/mattrusch/SoftPT/types"
)

// Intersect solves the ray/sphere quadratic and returns up to two hit
// points ordered nearest first. The second root is only reported when
// the discriminant clears the comparison epsilon; a near-tangent double
// root collapses to a single hit, which keeps grazing rays numerically
// stable at the price of a tiny geometric bias.
func Intersect(ray types.Ray, sphere scene.Sphere) (hits [2]types.Vec3, count int) {
	originToCenter := ray.Origin.Sub(sphere.Center)
	a := ray.Direction.Dot(ray.Direction)
	b := 2.0 * ray.Direction.Dot(originToCenter)
	c := originToCenter.Dot(originToCenter) - sphere.Radius*sphere.Radius
	discriminant := b*b - 4.0*a*c

	if discriminant < 0.0 {
		return hits, 0
	}

	sqrtDisc := math32.Sqrt(discriminant)

	t0 := (-b + sqrtDisc) / (2.0 * a)
	if t0 >= 0.0 {
		hits[count] = ray.Origin.Add(ray.Direction.Mul(t0))
		count++
	}

	if discriminant > types.Epsilon {
		t1 := (-b - sqrtDisc) / (2.0 * a)
		if t1 >= 0.0 {
			hits[count] = ray.Origin.Add(ray.Direction.Mul(t1))
			count++

			// Order by distance; smallest positive root is closest.
			if t0 >= 0.0 && t1 < t0 {
				hits[0], hits[1] = hits[1], hits[0]
			}
		}
	}

	return hits, count
}
