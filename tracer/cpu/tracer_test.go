package cpu

import (
	"testing"

	"github.com/mattrusch/SoftPT/scene"
	"github.com/mattrusch/SoftPT/tracer"
	"github.com/mattrusch/SoftPT/types"
)

func testCamera() *scene.Camera {
	return scene.NewCamera(types.XYZ(0, 0.5, -1), types.XYZ(0, 0, 0), types.XYZ(0, 1, 0))
}

func TestTracerInitValidation(t *testing.T) {
	sc := scene.NewScene()
	sc.SetCamera(testCamera())

	cfg := tracer.Config{FrameW: 4, FrameH: 4, NumBounces: 6}

	type spec struct {
		sc          *scene.Scene
		frameBuffer []uint8
	}
	specs := []spec{
		// No scene.
		{nil, make([]uint8, 4*4*4)},
		// No camera.
		{scene.NewScene(), make([]uint8, 4*4*4)},
		// Frame buffer too small.
		{sc, make([]uint8, 7)},
	}

	for index, s := range specs {
		tr := NewTracer("test")
		if err := tr.Init(s.sc, cfg, s.frameBuffer); err == nil {
			tr.Close()
			t.Fatalf("[spec %d] expected Init to fail", index)
		}
	}
}

func TestTracerInitDegenerateCamera(t *testing.T) {
	sc := scene.NewScene()
	sc.SetCamera(scene.NewCamera(types.XYZ(0, 0, -1), types.XYZ(0, 0, 1), types.XYZ(0, 0, 1)))

	tr := NewTracer("test")
	cfg := tracer.Config{FrameW: 4, FrameH: 4, NumBounces: 6}
	if err := tr.Init(sc, cfg, make([]uint8, 4*4*4)); err != scene.ErrDegenerateCameraBasis {
		t.Fatalf("expected ErrDegenerateCameraBasis; got %v", err)
	}
}

// Render a frame fully enclosed by a zero-albedo emissive shell: every
// pixel must converge to the saturated emissive color after a single
// sample, and channel values above 1 must clamp to 255.
func TestTracerRendersEmissiveShell(t *testing.T) {
	sc := scene.NewScene()
	matID := sc.AddMaterial(scene.Material{Emissive: types.XYZ(2.0, 0.5, 0.0), Roughness: 1.0})
	if err := sc.AddSphere(scene.Sphere{Center: types.Vec3{}, Radius: 50, MaterialID: matID}); err != nil {
		t.Fatal(err)
	}
	sc.SetCamera(testCamera())

	const frameW, frameH = 8, 8
	frameBuffer := make([]uint8, frameW*frameH*4)

	tr := NewTracer("test")
	cfg := tracer.Config{FrameW: frameW, FrameH: frameH, NumBounces: 6}
	if err := tr.Init(sc, cfg, frameBuffer); err != nil {
		t.Fatalf("expected Init to succeed; got %v", err)
	}
	defer tr.Close()

	doneChan := make(chan uint32)
	tr.Enqueue(tracer.BlockRequest{
		BlockY:          0,
		BlockH:          frameH,
		SamplesPerPixel: 4,
		Seed:            1,
		DoneChan:        doneChan,
	})

	if rows := <-doneChan; rows != frameH {
		t.Fatalf("expected %d completed rows; got %d", frameH, rows)
	}

	for px := 0; px < frameW*frameH; px++ {
		r, g, b, a := frameBuffer[px*4], frameBuffer[px*4+1], frameBuffer[px*4+2], frameBuffer[px*4+3]
		if r != 255 || g != 127 || b != 0 || a != 255 {
			t.Fatalf("[pixel %d] expected (255,127,0,255); got (%d,%d,%d,%d)", px, r, g, b, a)
		}
	}

	stats := tr.Stats()
	if stats.BlockH != frameH {
		t.Fatalf("expected stats for %d rows; got %d", frameH, stats.BlockH)
	}
}
