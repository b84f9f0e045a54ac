package scene

import "github.com/mattrusch/SoftPT/types"

// Defines a scene material. Shading is perfectly diffuse: Albedo scales
// the radiance gathered by the bounce chain and Emissive adds the
// material's own light contribution. Emissive components may exceed 1
// to model light sources.
type Material struct {
	// Diffuse reflectance per channel.
	Albedo types.Vec3

	// Radiant exitance (if material is a light).
	Emissive types.Vec3

	// Reserved for future specular shading models; the current
	// integrator does not consume it.
	Roughness float32
}
