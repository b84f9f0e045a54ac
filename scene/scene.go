package scene

// A fully authored scene: a material table plus the spheres referencing
// it. The scene is assembled once before rendering begins and treated
// as read-only afterwards, so it may be shared freely across tracers.
type Scene struct {
	Camera *Camera

	Materials []Material
	Spheres   []Sphere
}

func NewScene() *Scene {
	return &Scene{
		Materials: make([]Material, 0),
		Spheres:   make([]Sphere, 0),
	}
}

// Attach a camera to the scene.
func (s *Scene) SetCamera(camera *Camera) {
	s.Camera = camera
}

// Add a material to the scene and return its index in the material
// table. Indices are stable; materials are never removed.
func (s *Scene) AddMaterial(material Material) uint32 {
	s.Materials = append(s.Materials, material)
	return uint32(len(s.Materials) - 1)
}

// Add a sphere to the scene. Spheres with non-positive radii almost
// always indicate a mispacked tangent sphere so they are rejected
// instead of being silently skipped by the intersector.
func (s *Scene) AddSphere(sphere Sphere) error {
	if sphere.Radius <= 0 {
		return ErrInvalidGeometry
	}
	if sphere.MaterialID >= uint32(len(s.Materials)) {
		return ErrUnknownMaterial
	}
	s.Spheres = append(s.Spheres, sphere)
	return nil
}

// Look up the material referenced by a sphere. The sphere must have
// been added to this scene.
func (s *Scene) MaterialFor(sphere Sphere) Material {
	return s.Materials[sphere.MaterialID]
}
