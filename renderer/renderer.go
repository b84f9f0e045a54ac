package renderer

type Renderer interface {
	// Render frame into the supplied pixel sink.
	Render(sink PixelSink) error

	// Shutdown renderer and any attached tracer.
	Close()

	// Get render statistics.
	Stats() FrameStats
}
