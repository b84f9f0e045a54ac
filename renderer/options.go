package renderer

import (
	"runtime"
	"time"

	"github.com/mattrusch/SoftPT/tracer"
)

const (
	defaultSamplesPerPixel uint32 = 4
	defaultNumBounces      uint32 = 6
)

type Options struct {
	// Frame dims.
	FrameW uint32
	FrameH uint32

	// Number of path samples averaged per pixel. Defaults to 4; high
	// quality runs typically use 1024.
	SamplesPerPixel uint32

	// Hard bound for the number of indirect bounces. Defaults to 6.
	NumBounces uint32

	// Radiance model for rays that escape the scene.
	Background tracer.Background

	// Number of cpu tracers working the frame. Defaults to the number
	// of logical cores.
	NumWorkers uint32

	// Base seed for the per-block random generators. Leave 0 for a
	// time-derived seed; set it to reproduce a frame exactly.
	Seed uint64
}

// Fill in defaults and reject frame dimensions the tracers cannot work
// with.
func (o *Options) init() error {
	if o.FrameW == 0 || o.FrameH == 0 {
		return ErrInvalidFrameDims
	}
	if o.SamplesPerPixel == 0 {
		o.SamplesPerPixel = defaultSamplesPerPixel
	}
	if o.NumBounces == 0 {
		o.NumBounces = defaultNumBounces
	}
	if o.NumWorkers == 0 {
		o.NumWorkers = uint32(runtime.NumCPU())
	}
	if o.NumWorkers > o.FrameH {
		o.NumWorkers = o.FrameH
	}
	if o.Seed == 0 {
		o.Seed = uint64(time.Now().UnixNano())
	}
	return nil
}
