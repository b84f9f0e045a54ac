package cpu

import (
	"math/rand"

	"github.com/chewxy/math32"

	"github.com/mattrusch/SoftPT/scene"
	"github.com/mattrusch/SoftPT/tracer"
	"github.com/mattrusch/SoftPT/types"
)

// Flip on to validate the hemisphere sampler post-condition while
// developing; it is unreachable under correct inputs so release builds
// keep it compiled out.
const debugChecks = false

// Monte-carlo path integrator. Radiance is estimated with emission plus
// a single uniform-hemisphere bounce per hit; direct and indirect light
// are both discovered by the bounce chain eventually striking an
// emissive sphere. Each integrator owns its random generator, so one
// instance must not be shared between goroutines.
type pathIntegrator struct {
	sc  *scene.Scene
	cfg tracer.Config
	rng *rand.Rand
}

func newPathIntegrator(sc *scene.Scene, cfg tracer.Config, rng *rand.Rand) *pathIntegrator {
	return &pathIntegrator{
		sc:  sc,
		cfg: cfg,
		rng: rng,
	}
}

// TracePath returns the radiance gathered by following ray through the
// scene for at most cfg.NumBounces recursive bounces. The bound is
// hard: paths that survive it contribute zero radiance.
func (in *pathIntegrator) TracePath(ray types.Ray, bounce uint32) types.Vec3 {
	if bounce == in.cfg.NumBounces {
		return types.Vec3{}
	}

	// Brute-force nearest hit scan over every sphere in the scene.
	nearestIndex := -1
	var nearestDistance float32 = math32.MaxFloat32
	var nearestHit types.Vec3

	for i := range in.sc.Spheres {
		hits, count := Intersect(ray, in.sc.Spheres[i])
		if count == 0 {
			continue
		}
		distance := hits[0].Sub(ray.Origin).Len()
		if distance < nearestDistance {
			nearestIndex = i
			nearestHit = hits[0]
			nearestDistance = distance
		}
	}

	if nearestIndex == -1 {
		return in.background(ray)
	}

	sphere := in.sc.Spheres[nearestIndex]
	normal := nearestHit.Sub(sphere.Center).Normalize()

	newDir := SampleHemisphere(normal, in.rng.Float32(), in.rng.Float32())
	if debugChecks && newDir.Dot(normal) < -types.Epsilon {
		panic("cpu: sampled direction points into the surface")
	}

	// Nudge the bounce origin off the surface to avoid shadow acne.
	bounceRay := types.Ray{
		Origin:    nearestHit.Add(normal.Mul(types.Epsilon)),
		Direction: newDir,
	}

	material := in.sc.MaterialFor(sphere)
	gathered := in.TracePath(bounceRay, bounce+1)
	return material.Emissive.Add(material.Albedo.MulVec(gathered).Mul(normal.Dot(newDir)))
}

// Radiance for rays that left the scene without hitting anything.
func (in *pathIntegrator) background(ray types.Ray) types.Vec3 {
	if in.cfg.Background == tracer.BackgroundSky {
		return types.Lerp(types.Vec3{}, tracer.SkyColor, ray.Direction[1])
	}
	return types.Vec3{}
}
