package cpu

import (
	"math/rand"
	"testing"

	"github.com/chewxy/math32"
	"github.com/mattrusch/SoftPT/types"
)

var frameNormals = []types.Vec3{
	types.XYZ(0, 1, 0),
	types.XYZ(0, -1, 0),
	types.XYZ(1, 0, 0),
	// Degenerate seed case: the normal coincides with the reference
	// tangent axis.
	types.XYZ(-1, 0, 0),
	types.XYZ(0, 0, 1),
	types.XYZ(0.5, 0.5, -0.70710678),
}

func TestTangentFrame(t *testing.T) {
	for index, normal := range frameNormals {
		normal = normal.Normalize()
		tangent, bitangent := TangentFrame(normal)

		if math32.Abs(tangent.Len()-1) > types.Epsilon {
			t.Fatalf("[spec %d] expected unit tangent; got length %f", index, tangent.Len())
		}
		if math32.Abs(bitangent.Len()-1) > types.Epsilon {
			t.Fatalf("[spec %d] expected unit bitangent; got length %f", index, bitangent.Len())
		}
		if dot := tangent.Dot(normal); math32.Abs(dot) > types.Epsilon {
			t.Fatalf("[spec %d] expected tangent orthogonal to normal; got dot %f", index, dot)
		}
		if dot := bitangent.Dot(normal); math32.Abs(dot) > types.Epsilon {
			t.Fatalf("[spec %d] expected bitangent orthogonal to normal; got dot %f", index, dot)
		}
		if dot := tangent.Dot(bitangent); math32.Abs(dot) > types.Epsilon {
			t.Fatalf("[spec %d] expected tangent orthogonal to bitangent; got dot %f", index, dot)
		}
	}
}

func TestSampleHemisphere(t *testing.T) {
	draws := []float32{0.0, 0.1, 0.25, 0.5, 0.75, 0.9, 0.999}

	for _, normal := range frameNormals {
		normal = normal.Normalize()
		for _, u0 := range draws {
			for _, u1 := range draws {
				dir := SampleHemisphere(normal, u0, u1)

				if math32.Abs(dir.Len()-1) > 1e-4 {
					t.Fatalf("[normal %v u0 %f u1 %f] expected unit direction; got length %f",
						normal, u0, u1, dir.Len())
				}
				if dot := dir.Dot(normal); dot < -types.Epsilon {
					t.Fatalf("[normal %v u0 %f u1 %f] expected direction in the hemisphere; got dot %f",
						normal, u0, u1, dot)
				}
			}
		}
	}
}

func TestSampleHemisphereRandomDraws(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for i := 0; i < 1000; i++ {
		normal := types.XYZ(rng.Float32()*2-1, rng.Float32()*2-1, rng.Float32()*2-1)
		if normal.Len() < 0.1 {
			continue
		}
		normal = normal.Normalize()

		dir := SampleHemisphere(normal, rng.Float32(), rng.Float32())
		if dot := dir.Dot(normal); dot < -types.Epsilon {
			t.Fatalf("[draw %d] expected direction in the hemisphere around %v; got dot %f", i, normal, dot)
		}
	}
}
