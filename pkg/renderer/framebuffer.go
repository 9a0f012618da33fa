package renderer

import (
	"fmt"
	"image"
	"image/color"
	"sync"
)

// RowWriter receives finished scanlines. Each call carries 3*width bytes of
// RGB data for a single row, where row 0 is the top of the image.
type RowWriter interface {
	CommitRow(row int, pixels []uint8) error
}

// FrameBuffer is a row-major 8-bit RGB image shared by all workers
type FrameBuffer struct {
	Width  int
	Height int
	Pix    []uint8

	mu sync.Mutex
}

// NewFrameBuffer allocates a black frame buffer
func NewFrameBuffer(width, height int) *FrameBuffer {
	return &FrameBuffer{
		Width:  width,
		Height: height,
		Pix:    make([]uint8, width*height*3),
	}
}

// CommitRow copies a finished scanline into the buffer under a single lock
func (fb *FrameBuffer) CommitRow(row int, pixels []uint8) error {
	if row < 0 || row >= fb.Height {
		return fmt.Errorf("renderer: row %d outside frame of height %d", row, fb.Height)
	}
	if len(pixels) != fb.Width*3 {
		return fmt.Errorf("renderer: row %d has %d bytes, expected %d", row, len(pixels), fb.Width*3)
	}

	fb.mu.Lock()
	copy(fb.Pix[row*fb.Width*3:], pixels)
	fb.mu.Unlock()
	return nil
}

// At returns the RGB triple at (x, y), with y = 0 being the top row
func (fb *FrameBuffer) At(x, y int) (r, g, b uint8) {
	offset := (y*fb.Width + x) * 3
	return fb.Pix[offset], fb.Pix[offset+1], fb.Pix[offset+2]
}

// Image converts the buffer to an image.RGBA for encoding
func (fb *FrameBuffer) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, fb.Width, fb.Height))
	for y := 0; y < fb.Height; y++ {
		for x := 0; x < fb.Width; x++ {
			r, g, b := fb.At(x, y)
			img.SetRGBA(x, y, color.RGBA{R: r, G: g, B: b, A: 255})
		}
	}
	return img
}
