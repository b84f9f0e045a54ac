package renderer

import (
	"image"
	"image/color"
)

// An 8-bit RGB triple, the only output the renderer produces.
type RGB8 struct {
	R, G, B uint8
}

// PixelSink consumes the per-pixel output of a render. The renderer
// pushes every pixel of the frame exactly once per Render call; it
// never opens windows or manages a display surface itself.
type PixelSink interface {
	SetPixel(x, y uint32, c RGB8)
}

// An in-memory pixel sink backed by an image.RGBA, suitable for
// encoding to PNG after the render completes.
type ImageSink struct {
	img *image.RGBA
}

func NewImageSink(frameW, frameH uint32) *ImageSink {
	return &ImageSink{
		img: image.NewRGBA(image.Rect(0, 0, int(frameW), int(frameH))),
	}
}

func (s *ImageSink) SetPixel(x, y uint32, c RGB8) {
	s.img.SetRGBA(int(x), int(y), color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff})
}

// Get the accumulated frame.
func (s *ImageSink) Image() *image.RGBA {
	return s.img
}
