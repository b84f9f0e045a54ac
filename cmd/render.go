package cmd

import (
	"bytes"
	"fmt"
	"image/png"
	"os"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"

	"github.com/mattrusch/SoftPT/renderer"
	"github.com/mattrusch/SoftPT/scene"
	"github.com/mattrusch/SoftPT/scene/reader"
	"github.com/mattrusch/SoftPT/tracer"
)

// Render a still frame.
func RenderFrame(ctx *cli.Context) error {
	setupLogging(ctx)

	opts, err := parseRenderOptions(ctx)
	if err != nil {
		return err
	}

	sc, err := loadScene(ctx)
	if err != nil {
		return err
	}

	r, err := renderer.NewDefault(sc, tracer.NaiveScheduler(), opts)
	if err != nil {
		return err
	}
	defer r.Close()

	logger.Notice("rendering frame")
	sink := renderer.NewImageSink(opts.FrameW, opts.FrameH)
	if err = r.Render(sink); err != nil {
		return err
	}

	// Display stats
	displayFrameStats(r.Stats())

	// Export PNG
	imgFile := ctx.String("out")
	f, err := os.Create(imgFile)
	if err != nil {
		return err
	}
	defer f.Close()

	start := time.Now()
	if err = png.Encode(f, sink.Image()); err != nil {
		return err
	}
	logger.Noticef("wrote frame to %s in %d ms", imgFile, time.Since(start).Nanoseconds()/1000000)

	return nil
}

// Build renderer options from the command flags. Flag values arrive
// as signed ints so they must be range-checked before converting to
// uint32; a negative value would otherwise wrap to a huge dimension.
func parseRenderOptions(ctx *cli.Context) (renderer.Options, error) {
	background, err := parseBackground(ctx.String("background"))
	if err != nil {
		return renderer.Options{}, err
	}

	opts := renderer.Options{
		Background: background,
		Seed:       ctx.Uint64("seed"),
	}

	for _, flag := range []struct {
		name string
		dst  *uint32
	}{
		{"width", &opts.FrameW},
		{"height", &opts.FrameH},
		{"spp", &opts.SamplesPerPixel},
		{"num-bounces", &opts.NumBounces},
	} {
		val := ctx.Int(flag.name)
		if val <= 0 {
			return renderer.Options{}, fmt.Errorf("%s must be a positive integer; got %d", flag.name, val)
		}
		*flag.dst = uint32(val)
	}

	// Zero workers selects one worker per CPU core.
	numWorkers := ctx.Int("workers")
	if numWorkers < 0 {
		return renderer.Options{}, fmt.Errorf("workers must be a non-negative integer; got %d", numWorkers)
	}
	opts.NumWorkers = uint32(numWorkers)

	return opts, nil
}

// Load the scene file argument or fall back to the named preset.
func loadScene(ctx *cli.Context) (*scene.Scene, error) {
	if ctx.NArg() > 1 {
		return nil, fmt.Errorf("expected at most one scene file argument")
	}
	if ctx.NArg() == 1 {
		return reader.ReadScene(ctx.Args().First())
	}
	return scene.FromPreset(ctx.String("preset"))
}

func parseBackground(mode string) (tracer.Background, error) {
	switch mode {
	case "black":
		return tracer.BackgroundBlack, nil
	case "sky":
		return tracer.BackgroundSky, nil
	}
	return tracer.BackgroundBlack, fmt.Errorf("unsupported background mode %q", mode)
}

func displayFrameStats(stats renderer.FrameStats) {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Tracer", "Block height", "% of frame", "Render time"})
	for _, stat := range stats.Tracers {
		table.Append([]string{
			stat.Id,
			fmt.Sprintf("%d", stat.BlockH),
			fmt.Sprintf("%02.1f %%", stat.FramePercent),
			stat.RenderTime.String(),
		})
	}
	table.SetFooter([]string{"", "", "TOTAL", stats.RenderTime.String()})

	table.Render()
	logger.Noticef("frame statistics\n%s", buf.String())
}
