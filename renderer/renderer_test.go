package renderer

import (
	"image/color"
	"testing"

	"github.com/mattrusch/SoftPT/scene"
	"github.com/mattrusch/SoftPT/tracer"
	"github.com/mattrusch/SoftPT/types"
)

func emissiveShellScene(t *testing.T) *scene.Scene {
	sc := scene.NewScene()
	matID := sc.AddMaterial(scene.Material{Emissive: types.XYZ(2.0, 0.5, 0.0), Roughness: 1.0})
	if err := sc.AddSphere(scene.Sphere{Center: types.Vec3{}, Radius: 50, MaterialID: matID}); err != nil {
		t.Fatal(err)
	}
	sc.SetCamera(scene.NewCamera(types.XYZ(0, 0.5, -1), types.XYZ(0, 0, 0), types.XYZ(0, 1, 0)))
	return sc
}

func TestNewDefaultValidation(t *testing.T) {
	noCamera := scene.NewScene()

	type spec struct {
		sc     *scene.Scene
		opts   Options
		expErr error
	}
	specs := []spec{
		{nil, Options{FrameW: 8, FrameH: 8}, ErrSceneNotDefined},
		{noCamera, Options{FrameW: 8, FrameH: 8}, ErrCameraNotDefined},
		{emissiveShellScene(t), Options{FrameW: 0, FrameH: 8}, ErrInvalidFrameDims},
		{emissiveShellScene(t), Options{FrameW: 8, FrameH: 0}, ErrInvalidFrameDims},
	}

	for index, s := range specs {
		if _, err := NewDefault(s.sc, tracer.NaiveScheduler(), s.opts); err != s.expErr {
			t.Fatalf("[spec %d] expected error %v; got %v", index, s.expErr, err)
		}
	}
}

func TestNewDefaultDegenerateCamera(t *testing.T) {
	sc := scene.NewScene()
	sc.SetCamera(scene.NewCamera(types.XYZ(0, 0, -1), types.XYZ(0, 0, 1), types.XYZ(0, 0, 1)))

	if _, err := NewDefault(sc, tracer.NaiveScheduler(), Options{FrameW: 8, FrameH: 8}); err != scene.ErrDegenerateCameraBasis {
		t.Fatalf("expected ErrDegenerateCameraBasis; got %v", err)
	}
}

func TestRenderEmissiveShell(t *testing.T) {
	const frameW, frameH = 8, 8

	opts := Options{
		FrameW:          frameW,
		FrameH:          frameH,
		SamplesPerPixel: 2,
		NumWorkers:      2,
		Seed:            42,
	}

	r, err := NewDefault(emissiveShellScene(t), tracer.NaiveScheduler(), opts)
	if err != nil {
		t.Fatalf("expected renderer to initialize; got %v", err)
	}
	defer r.Close()

	sink := NewImageSink(frameW, frameH)
	if err := r.Render(sink); err != nil {
		t.Fatalf("expected render to complete; got %v", err)
	}

	// Zero albedo annihilates the bounce chain, so every pixel holds
	// the saturated emission: channels above 1 clamp at 255.
	exp := color.RGBA{R: 255, G: 127, B: 0, A: 255}
	img := sink.Image()
	for y := 0; y < frameH; y++ {
		for x := 0; x < frameW; x++ {
			if got := img.RGBAAt(x, y); got != exp {
				t.Fatalf("[pixel %d,%d] expected %v; got %v", x, y, exp, got)
			}
		}
	}

	stats := r.Stats()
	if len(stats.Tracers) != 2 {
		t.Fatalf("expected stats for 2 tracers; got %d", len(stats.Tracers))
	}
	var rows uint32
	for _, trStat := range stats.Tracers {
		rows += trStat.BlockH
	}
	if rows != frameH {
		t.Fatalf("expected tracers to cover %d rows; got %d", frameH, rows)
	}
}

func TestRenderDemoPresetCompletes(t *testing.T) {
	sc, err := scene.FromPreset("demo")
	if err != nil {
		t.Fatal(err)
	}

	opts := Options{
		FrameW:          16,
		FrameH:          12,
		SamplesPerPixel: 1,
		NumWorkers:      3,
		Background:      tracer.BackgroundSky,
		Seed:            7,
	}

	r, err := NewDefault(sc, tracer.PerfectScheduler(), opts)
	if err != nil {
		t.Fatalf("expected renderer to initialize; got %v", err)
	}
	defer r.Close()

	sink := NewImageSink(opts.FrameW, opts.FrameH)

	// Render twice so the perfect scheduler rebalances using the
	// first frame's timings.
	for frame := 0; frame < 2; frame++ {
		if err := r.Render(sink); err != nil {
			t.Fatalf("[frame %d] expected render to complete; got %v", frame, err)
		}
	}

	img := sink.Image()
	if img.RGBAAt(0, 0).A != 255 {
		t.Fatal("expected sink to hold opaque pixels")
	}
}
