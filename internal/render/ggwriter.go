package render

import (
	"fmt"
	"image"

	"github.com/fogleman/gg"
)

// GGWriter encodes pixel buffers to PNG via a gg drawing context. Cells are
// upscaled with nearest-neighbor so the blocky map style survives.
type GGWriter struct {
	Scale int
}

// NewGGWriter returns a writer with the standard 4x upscale.
func NewGGWriter() *GGWriter {
	return &GGWriter{Scale: 4}
}

// Write saves the RGBA buffer as a PNG at path.
func (w *GGWriter) Write(pix []uint8, gw, gh int, path string) error {
	if len(pix) != 4*gw*gh {
		return fmt.Errorf("render: pixel buffer size %d does not match %dx%d grid", len(pix), gw, gh)
	}
	scale := w.Scale
	if scale < 1 {
		scale = 1
	}

	img := image.NewRGBA(image.Rect(0, 0, gw*scale, gh*scale))
	for y := 0; y < gh*scale; y++ {
		srcRow := (y / scale) * gw
		for x := 0; x < gw*scale; x++ {
			src := (srcRow + x/scale) * 4
			dst := img.PixOffset(x, y)
			copy(img.Pix[dst:dst+4], pix[src:src+4])
		}
	}

	dc := gg.NewContextForImage(img)
	return dc.SavePNG(path)
}
