package scene

import (
	"fmt"

	"github.com/mattrusch/SoftPT/types"
)

// A named, in-code authored scene.
type Preset struct {
	Name        string
	Description string
	Build       func() (*Scene, error)
}

var presets = []Preset{
	{
		Name:        "demo",
		Description: "ground sphere with seven tangent-packed spheres, three of them emissive",
		Build:       buildDemoScene,
	},
	{
		Name:        "floating",
		Description: "demo variant with the small spheres lifted off the ground sphere",
		Build:       buildFloatingScene,
	},
}

// List all available scene presets.
func Presets() []Preset {
	return presets
}

// Build the preset scene with the given name.
func FromPreset(name string) (*Scene, error) {
	for _, preset := range presets {
		if preset.Name == name {
			return preset.Build()
		}
	}
	return nil, fmt.Errorf("scene: unknown preset %q", name)
}

func demoMaterials(sc *Scene) []uint32 {
	mats := []Material{
		{Albedo: types.XYZ(1.0, 1.0, 1.0), Roughness: 1.0},
		{Albedo: types.XYZ(0.5, 1.0, 0.5), Emissive: types.XYZ(10.0, 10.0, 10.0), Roughness: 1.0},
		{Albedo: types.XYZ(1.0, 0.5, 0.5), Roughness: 1.0},
		{Albedo: types.XYZ(0.5, 0.5, 1.0), Roughness: 1.0},
		{Albedo: types.XYZ(0.5, 1.0, 0.75), Roughness: 1.0},
		{Albedo: types.XYZ(1.0, 1.0, 0.5), Emissive: types.XYZ(10.0, 5.0, 5.0), Roughness: 1.0},
		{Albedo: types.XYZ(1.0, 1.0, 1.0), Roughness: 1.0},
		{Albedo: types.XYZ(0.5, 1.0, 1.0), Emissive: types.XYZ(5.0, 5.0, 10.0), Roughness: 1.0},
	}

	ids := make([]uint32, len(mats))
	for i, mat := range mats {
		ids[i] = sc.AddMaterial(mat)
	}
	return ids
}

var demoSphereCenters = []types.Vec3{
	{0.0, 0.125, 0.0},
	{-0.5, 0.125, 0.0},
	{0.5, 0.25, 0.5},
	{0.25, 0.05, -0.25},
	{-0.25, 0.5, 1.5},
	{0.25, 0.1, 0.25},
	{-0.65, 0.05, -0.25},
}

// The classic SoftPT demo scene: a huge diffuse ground sphere with a
// handful of small spheres packed tangent to its surface.
func buildDemoScene() (*Scene, error) {
	sc := NewScene()
	matIDs := demoMaterials(sc)

	ground := Sphere{
		Center:     types.XYZ(0.0, -100.0, 0.0),
		Radius:     100.0,
		MaterialID: matIDs[0],
	}
	if err := sc.AddSphere(ground); err != nil {
		return nil, err
	}

	for i, center := range demoSphereCenters {
		if err := sc.AddSphere(TangentSphere(ground, center, matIDs[i+1])); err != nil {
			return nil, err
		}
	}

	sc.SetCamera(NewCamera(types.XYZ(0.0, 0.5, -1.0), types.XYZ(0.0, 0.0, 0.0), types.XYZ(0.0, 1.0, 0.0)))
	return sc, nil
}

// Same arrangement but packed with OffsetSphere so every small sphere
// hovers slightly above the ground surface.
func buildFloatingScene() (*Scene, error) {
	sc := NewScene()
	matIDs := demoMaterials(sc)

	ground := Sphere{
		Center:     types.XYZ(0.0, -100.0, 0.0),
		Radius:     100.0,
		MaterialID: matIDs[0],
	}
	if err := sc.AddSphere(ground); err != nil {
		return nil, err
	}

	for i, center := range demoSphereCenters {
		if err := sc.AddSphere(OffsetSphere(ground, center, 0.02, matIDs[i+1])); err != nil {
			return nil, err
		}
	}

	sc.SetCamera(NewCamera(types.XYZ(0.0, 0.5, -1.0), types.XYZ(0.0, 0.0, 0.0), types.XYZ(0.0, 1.0, 0.0)))
	return sc, nil
}
