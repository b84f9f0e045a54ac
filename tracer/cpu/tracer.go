package cpu

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/mattrusch/SoftPT/log"
	"github.com/mattrusch/SoftPT/scene"
	"github.com/mattrusch/SoftPT/tracer"
	"github.com/mattrusch/SoftPT/types"
)

// An in-process software tracer. Each instance runs a single worker
// goroutine that renders the blocks enqueued by the renderer into the
// shared frame buffer.
type cpuTracer struct {
	logger log.Logger

	sync.Mutex

	// The tracer id.
	id string

	// The scene shared by all tracers. Read-only during rendering.
	sc      *scene.Scene
	frustum *scene.Frustum

	// Frame settings and the shared output buffer. The tracer only
	// writes bytes for the rows assigned to it.
	cfg         tracer.Config
	frameBuffer []uint8

	// A channel for receiving block requests from the renderer.
	blockReqChan chan tracer.BlockRequest

	// A channel for signaling the worker to exit.
	closeChan chan struct{}

	// Statistics for last rendered block.
	stats *tracer.Stats
}

// Create a new cpu tracer.
func NewTracer(id string) tracer.Tracer {
	return &cpuTracer{
		logger:       log.New(fmt.Sprintf("cpu tracer (%s)", id)),
		id:           id,
		blockReqChan: make(chan tracer.BlockRequest),
		stats:        &tracer.Stats{},
	}
}

// Get tracer id.
func (tr *cpuTracer) Id() string {
	return tr.id
}

// Get the tracer's relative speed estimate. All cpu tracers run on
// identical cores so they report the same baseline speed.
func (tr *cpuTracer) Speed() uint32 {
	return 1
}

// Setup the tracer for a new frame and start its worker.
func (tr *cpuTracer) Init(sc *scene.Scene, cfg tracer.Config, frameBuffer []uint8) error {
	tr.Lock()
	defer tr.Unlock()

	if sc == nil {
		return fmt.Errorf("cpu: no scene defined")
	}
	if sc.Camera == nil {
		return fmt.Errorf("cpu: no camera defined")
	}
	if uint32(len(frameBuffer)) < cfg.FrameW*cfg.FrameH*4 {
		return fmt.Errorf("cpu: frame buffer too small for %dx%d frame", cfg.FrameW, cfg.FrameH)
	}

	frustum, err := sc.Camera.Frustum(cfg.FrameW, cfg.FrameH)
	if err != nil {
		return err
	}

	tr.sc = sc
	tr.cfg = cfg
	tr.frustum = frustum
	tr.frameBuffer = frameBuffer

	if tr.closeChan == nil {
		tr.startWorker()
	}

	return nil
}

// Enqueue block request.
func (tr *cpuTracer) Enqueue(blockReq tracer.BlockRequest) {
	tr.blockReqChan <- blockReq
}

// Shutdown and cleanup tracer.
func (tr *cpuTracer) Close() {
	tr.Lock()
	defer tr.Unlock()

	if tr.closeChan != nil {
		tr.closeChan <- struct{}{}

		// wait for worker to ack close and shutdown channel
		<-tr.closeChan
		close(tr.closeChan)
		tr.closeChan = nil
	}
}

// Retrieve last block statistics.
func (tr *cpuTracer) Stats() *tracer.Stats {
	return tr.stats
}

func (tr *cpuTracer) startWorker() {
	tr.closeChan = make(chan struct{})
	go func() {
		for {
			select {
			case <-tr.closeChan:
				tr.closeChan <- struct{}{}
				return
			case blockReq := <-tr.blockReqChan:
				start := time.Now()
				tr.process(blockReq)
				tr.stats.BlockH = blockReq.BlockH
				tr.stats.RenderTime = time.Since(start)
				blockReq.DoneChan <- blockReq.BlockH
			}
		}
	}()
}

// Render a block of rows into the frame buffer. The block carries its
// own generator seed so concurrent blocks never contend on a shared
// random stream and frames stay reproducible.
func (tr *cpuTracer) process(blockReq tracer.BlockRequest) {
	rng := rand.New(rand.NewSource(int64(blockReq.Seed)))
	in := newPathIntegrator(tr.sc, tr.cfg, rng)

	sampleScaler := 1.0 / float32(blockReq.SamplesPerPixel)

	for y := blockReq.BlockY; y < blockReq.BlockY+blockReq.BlockH; y++ {
		offset := y * tr.cfg.FrameW * 4
		for x := uint32(0); x < tr.cfg.FrameW; x++ {
			ray := tr.frustum.PrimaryRay(x, y)

			var colorSum types.Vec3
			for s := uint32(0); s < blockReq.SamplesPerPixel; s++ {
				colorSum = colorSum.Add(in.TracePath(ray, 0))
			}
			color := colorSum.Mul(sampleScaler)

			tr.frameBuffer[offset] = uint8(types.Saturate(color[0]) * 255.0)
			tr.frameBuffer[offset+1] = uint8(types.Saturate(color[1]) * 255.0)
			tr.frameBuffer[offset+2] = uint8(types.Saturate(color[2]) * 255.0)
			tr.frameBuffer[offset+3] = 255
			offset += 4
		}
	}

	tr.logger.Debugf("rendered rows %d-%d", blockReq.BlockY, blockReq.BlockY+blockReq.BlockH-1)
}
