package renderer

import (
	"fmt"
	"time"

	"github.com/mattrusch/SoftPT/log"
	"github.com/mattrusch/SoftPT/scene"
	"github.com/mattrusch/SoftPT/tracer"
	"github.com/mattrusch/SoftPT/tracer/cpu"
)

// The default renderer splits the frame into one block per attached
// tracer and rebalances the split between frames using the scheduler's
// timing feedback.
type defaultRenderer struct {
	logger log.Logger

	sc        *scene.Scene
	scheduler tracer.BlockScheduler
	opts      Options

	tracers     []tracer.Tracer
	frameBuffer []uint8

	stats FrameStats
}

// Create a renderer backed by a pool of cpu tracers, one per worker.
func NewDefault(sc *scene.Scene, scheduler tracer.BlockScheduler, opts Options) (Renderer, error) {
	if sc == nil {
		return nil, ErrSceneNotDefined
	}
	if sc.Camera == nil {
		return nil, ErrCameraNotDefined
	}
	if err := opts.init(); err != nil {
		return nil, err
	}

	r := &defaultRenderer{
		logger:      log.New("renderer"),
		sc:          sc,
		scheduler:   scheduler,
		opts:        opts,
		tracers:     make([]tracer.Tracer, 0, opts.NumWorkers),
		frameBuffer: make([]uint8, opts.FrameW*opts.FrameH*4),
	}

	cfg := tracer.Config{
		FrameW:     opts.FrameW,
		FrameH:     opts.FrameH,
		NumBounces: opts.NumBounces,
		Background: opts.Background,
	}

	for i := uint32(0); i < opts.NumWorkers; i++ {
		tr := cpu.NewTracer(fmt.Sprintf("cpu-%d", i))
		if err := tr.Init(sc, cfg, r.frameBuffer); err != nil {
			r.Close()
			return nil, err
		}
		r.tracers = append(r.tracers, tr)
	}

	if len(r.tracers) == 0 {
		return nil, ErrNoTracers
	}

	r.logger.Infof("attached %d cpu tracers for a %dx%d frame", len(r.tracers), opts.FrameW, opts.FrameH)
	return r, nil
}

// Render frame into the supplied pixel sink.
func (r *defaultRenderer) Render(sink PixelSink) error {
	start := time.Now()

	blockAssignment := r.scheduler.Schedule(r.tracers, r.opts.FrameH)

	doneChan := make(chan uint32, len(r.tracers))
	errChan := make(chan error, len(r.tracers))

	var blockY uint32
	for idx, tr := range r.tracers {
		tr.Enqueue(tracer.BlockRequest{
			BlockY:          blockY,
			BlockH:          blockAssignment[idx],
			SamplesPerPixel: r.opts.SamplesPerPixel,
			Seed:            r.opts.Seed + uint64(blockY),
			DoneChan:        doneChan,
			ErrChan:         errChan,
		})
		blockY += blockAssignment[idx]
	}

	var pendingRows = r.opts.FrameH
	for pendingRows > 0 {
		select {
		case rows := <-doneChan:
			pendingRows -= rows
		case err := <-errChan:
			return err
		}
	}

	r.collectStats(blockAssignment, time.Since(start))
	r.blit(sink)
	return nil
}

// Shutdown renderer and any attached tracer.
func (r *defaultRenderer) Close() {
	for _, tr := range r.tracers {
		tr.Close()
	}
	r.tracers = r.tracers[:0]
}

// Get render statistics.
func (r *defaultRenderer) Stats() FrameStats {
	return r.stats
}

func (r *defaultRenderer) collectStats(blockAssignment []uint32, renderTime time.Duration) {
	r.stats = FrameStats{
		Tracers:    make([]TracerStat, len(r.tracers)),
		RenderTime: renderTime,
	}

	for idx, tr := range r.tracers {
		trStats := tr.Stats()
		r.stats.Tracers[idx] = TracerStat{
			Id:           tr.Id(),
			BlockH:       blockAssignment[idx],
			FramePercent: 100.0 * float32(blockAssignment[idx]) / float32(r.opts.FrameH),
			RenderTime:   trStats.RenderTime,
		}
	}
}

// Push the completed frame buffer through the pixel sink.
func (r *defaultRenderer) blit(sink PixelSink) {
	var offset uint32
	for y := uint32(0); y < r.opts.FrameH; y++ {
		for x := uint32(0); x < r.opts.FrameW; x++ {
			sink.SetPixel(x, y, RGB8{
				R: r.frameBuffer[offset],
				G: r.frameBuffer[offset+1],
				B: r.frameBuffer[offset+2],
			})
			offset += 4
		}
	}
}
