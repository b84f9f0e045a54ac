package scene

import "github.com/mattrusch/SoftPT/types"

// Defines a sphere primitive. Spheres do not own their material; they
// carry a stable index into the owning scene's material table.
type Sphere struct {
	Center types.Vec3
	Radius float32

	// Index into Scene.Materials.
	MaterialID uint32
}

// Place a sphere externally tangent to a reference sphere. The radius
// is the gap between the requested center and the reference surface.
func TangentSphere(reference Sphere, center types.Vec3, materialID uint32) Sphere {
	return Sphere{
		Center:     center,
		Radius:     center.Distance(reference.Center) - reference.Radius,
		MaterialID: materialID,
	}
}

// Same as TangentSphere but with the radius shrunk by offset, leaving a
// gap between the new sphere and the reference surface.
func OffsetSphere(reference Sphere, center types.Vec3, offset float32, materialID uint32) Sphere {
	sph := TangentSphere(reference, center, materialID)
	sph.Radius -= offset
	return sph
}
