package fractal

import "image/color"

// PixelBuffer is a row-major RGBA surface, overwritten in place every frame.
type PixelBuffer struct {
	Width  int
	Height int
	Pix    []color.RGBA
}

// NewPixelBuffer allocates an opaque black buffer.
func NewPixelBuffer(width, height int) *PixelBuffer {
	b := &PixelBuffer{
		Width:  width,
		Height: height,
		Pix:    make([]color.RGBA, width*height),
	}
	for i := range b.Pix {
		b.Pix[i].A = 255
	}
	return b
}

// At returns the pixel at (x, y).
func (b *PixelBuffer) At(x, y int) color.RGBA {
	return b.Pix[y*b.Width+x]
}

