package cmd

import (
	"flag"
	"strings"
	"testing"

	"github.com/urfave/cli"

	"github.com/mattrusch/SoftPT/tracer"
)

func TestParseRenderOptions(t *testing.T) {
	set := makeFrameFlagSet(t,
		"width", "64",
		"height", "48",
		"spp", "2",
		"background", "sky",
		"seed", "42",
	)

	opts, err := parseRenderOptions(cli.NewContext(nil, set, nil))
	if err != nil {
		t.Fatal(err)
	}

	if opts.FrameW != 64 || opts.FrameH != 48 {
		t.Fatalf("expected 64x48 frame dims; got %dx%d", opts.FrameW, opts.FrameH)
	}
	if opts.SamplesPerPixel != 2 {
		t.Fatalf("expected 2 samples per pixel; got %d", opts.SamplesPerPixel)
	}
	if opts.Background != tracer.BackgroundSky {
		t.Fatalf("expected sky background; got %d", opts.Background)
	}
	if opts.Seed != 42 {
		t.Fatalf("expected seed 42; got %d", opts.Seed)
	}
}

func TestParseRenderOptionsRejectsOutOfRangeFlags(t *testing.T) {
	type spec struct {
		flagName  string
		flagValue string
		expError  string
	}
	specs := []spec{
		{"width", "-1", "width must be a positive integer; got -1"},
		{"height", "0", "height must be a positive integer; got 0"},
		{"spp", "-4", "spp must be a positive integer; got -4"},
		{"num-bounces", "-6", "num-bounces must be a positive integer; got -6"},
		{"workers", "-2", "workers must be a non-negative integer; got -2"},
		{"background", "plaid", `unsupported background mode "plaid"`},
	}

	for index, s := range specs {
		set := makeFrameFlagSet(t, s.flagName, s.flagValue)

		_, err := parseRenderOptions(cli.NewContext(nil, set, nil))
		if err == nil || !strings.Contains(err.Error(), s.expError) {
			t.Fatalf("[spec %d] expected error containing %q; got %v", index, s.expError, err)
		}
	}
}

// Register the frame command flags with their defaults and apply the
// given name/value overrides.
func makeFrameFlagSet(t *testing.T, overrides ...string) *flag.FlagSet {
	set := flag.NewFlagSet("frame", flag.ContinueOnError)
	set.Int("width", 512, "")
	set.Int("height", 512, "")
	set.Int("spp", 4, "")
	set.Int("num-bounces", 6, "")
	set.Int("workers", 0, "")
	set.Uint64("seed", 0, "")
	set.String("background", "black", "")

	for index := 0; index < len(overrides); index += 2 {
		if err := set.Set(overrides[index], overrides[index+1]); err != nil {
			t.Fatalf("setting flag %s: %v", overrides[index], err)
		}
	}
	return set
}
