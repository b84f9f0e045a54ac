package tracer

import (
	"time"

	"github.com/mattrusch/SoftPT/scene"
	"github.com/mattrusch/SoftPT/types"
)

type Background uint8

const (
	// Rays that escape the scene gather no radiance.
	BackgroundBlack Background = iota

	// Rays that escape the scene gather a vertical black-to-sky
	// gradient keyed off the ray direction's y component.
	BackgroundSky
)

// The sky color used by the BackgroundSky gradient.
var SkyColor = types.XYZ(0.25, 0.55, 0.75)

// Frame-wide settings shared by every block of a render. The frame
// buffer uses RGBA ordering with 4 bytes per pixel; tracers only ever
// write the rows assigned to them so no synchronization is required.
type Config struct {
	FrameW uint32
	FrameH uint32

	// Hard recursion bound for the path integrator.
	NumBounces uint32

	// Radiance for rays that leave the scene.
	Background Background
}

// A unit of work that is processed by a tracer.
type BlockRequest struct {
	// Block start row and height.
	BlockY uint32
	BlockH uint32

	// The number of traced paths per pixel.
	SamplesPerPixel uint32

	// Seed for the tracer's random number generator. Each block
	// draws from its own generator so blocks can run concurrently
	// and frames can be reproduced.
	Seed uint64

	// A channel to signal on block completion with the number of
	// completed rows.
	DoneChan chan<- uint32

	// A channel to signal if an error occurs.
	ErrChan chan<- error
}

// Tracer statistics.
type Stats struct {
	// The rendered block height.
	BlockH uint32

	// The time spent rendering this block.
	RenderTime time.Duration
}

type Tracer interface {
	// Get tracer id.
	Id() string

	// Get the tracer's relative computation speed estimate. The
	// block schedulers use it to split the first frame before any
	// timing feedback exists.
	Speed() uint32

	// Setup the tracer for a new frame.
	Init(sc *scene.Scene, cfg Config, frameBuffer []uint8) error

	// Enqueue block request.
	Enqueue(BlockRequest)

	// Shutdown and cleanup tracer.
	Close()

	// Retrieve last block statistics.
	Stats() *Stats
}
