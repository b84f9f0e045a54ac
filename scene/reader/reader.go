// Package reader loads scene definitions from local files or http
// resources. Scenes are described in a small json format: a camera, a
// material table and a sphere list. Spheres either carry an explicit
// radius or are packed tangent to a previously defined sphere:
//
//	{
//	  "camera": {"position": [0,0.5,-1], "lookAt": [0,0,0], "up": [0,1,0]},
//	  "materials": [
//	    {"albedo": [1,1,1], "roughness": 1},
//	    {"albedo": [0.5,1,0.5], "emissive": [10,10,10], "roughness": 1}
//	  ],
//	  "spheres": [
//	    {"center": [0,-100,0], "radius": 100, "material": 0},
//	    {"center": [0,0.125,0], "tangentTo": 0, "material": 1},
//	    {"center": [-0.5,0.125,0], "tangentTo": 0, "offset": 0.02, "material": 1}
//	  ]
//	}
package reader

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/mattrusch/SoftPT/log"
	scenePkg "github.com/mattrusch/SoftPT/scene"
	"github.com/mattrusch/SoftPT/types"
)

var logger = log.New("scene reader")

type cameraDef struct {
	Position [3]float32 `json:"position"`
	LookAt   [3]float32 `json:"lookAt"`
	Up       [3]float32 `json:"up"`
}

type materialDef struct {
	Albedo    [3]float32 `json:"albedo"`
	Emissive  [3]float32 `json:"emissive"`
	Roughness float32    `json:"roughness"`
}

type sphereDef struct {
	Center    [3]float32 `json:"center"`
	Radius    *float32   `json:"radius"`
	TangentTo *int       `json:"tangentTo"`
	Offset    float32    `json:"offset"`
	Material  uint32     `json:"material"`
}

type sceneDef struct {
	Camera    *cameraDef    `json:"camera"`
	Materials []materialDef `json:"materials"`
	Spheres   []sphereDef   `json:"spheres"`
}

// Read a scene definition from a local file or an http/https URL.
func ReadScene(pathToScene string) (*scenePkg.Scene, error) {
	res, err := newResource(pathToScene)
	if err != nil {
		return nil, err
	}
	defer res.Close()

	logger.Infof("parsing scene from %s", res.Path())
	start := time.Now()

	sc, err := parseScene(res)
	if err != nil {
		return nil, err
	}

	logger.Infof("parsed scene in %d ms", time.Since(start).Nanoseconds()/1000000)
	return sc, nil
}

func parseScene(res *resource) (*scenePkg.Scene, error) {
	var def sceneDef
	if err := json.NewDecoder(res).Decode(&def); err != nil {
		return nil, emitError(res, "malformed scene definition: %s", err)
	}

	if def.Camera == nil {
		return nil, emitError(res, "no camera defined")
	}
	if len(def.Materials) == 0 {
		return nil, emitError(res, "no materials defined")
	}
	if len(def.Spheres) == 0 {
		return nil, emitError(res, "no spheres defined")
	}

	sc := scenePkg.NewScene()
	for _, matDef := range def.Materials {
		sc.AddMaterial(scenePkg.Material{
			Albedo:    vec3(matDef.Albedo),
			Emissive:  vec3(matDef.Emissive),
			Roughness: matDef.Roughness,
		})
	}

	for index, sphDef := range def.Spheres {
		sphere, err := resolveSphere(sc, index, sphDef)
		if err != nil {
			return nil, emitError(res, "sphere %d: %s", index, err)
		}
		if err = sc.AddSphere(sphere); err != nil {
			return nil, emitError(res, "sphere %d: %s", index, err)
		}
	}

	sc.SetCamera(scenePkg.NewCamera(vec3(def.Camera.Position), vec3(def.Camera.LookAt), vec3(def.Camera.Up)))
	return sc, nil
}

// Resolve a sphere definition against the spheres parsed so far. A
// definition either specifies an explicit radius or packs the sphere
// tangent to an earlier one, optionally shrunk by an offset.
func resolveSphere(sc *scenePkg.Scene, index int, sphDef sphereDef) (scenePkg.Sphere, error) {
	center := vec3(sphDef.Center)

	switch {
	case sphDef.Radius != nil && sphDef.TangentTo != nil:
		return scenePkg.Sphere{}, fmt.Errorf("radius and tangentTo are mutually exclusive")
	case sphDef.Radius != nil:
		return scenePkg.Sphere{
			Center:     center,
			Radius:     *sphDef.Radius,
			MaterialID: sphDef.Material,
		}, nil
	case sphDef.TangentTo != nil:
		refIndex := *sphDef.TangentTo
		if refIndex < 0 || refIndex >= index || refIndex >= len(sc.Spheres) {
			return scenePkg.Sphere{}, fmt.Errorf("tangentTo must reference an earlier sphere")
		}
		reference := sc.Spheres[refIndex]
		if sphDef.Offset != 0 {
			return scenePkg.OffsetSphere(reference, center, sphDef.Offset, sphDef.Material), nil
		}
		return scenePkg.TangentSphere(reference, center, sphDef.Material), nil
	default:
		return scenePkg.Sphere{}, fmt.Errorf("either radius or tangentTo is required")
	}
}

func vec3(in [3]float32) types.Vec3 {
	return types.XYZ(in[0], in[1], in[2])
}

// Generate an error message that includes the resource path.
func emitError(res *resource, msgFormat string, args ...interface{}) error {
	return fmt.Errorf("reader: [%s] %s", res.Path(), fmt.Sprintf(msgFormat, args...))
}
