package output

import (
	"bufio"
	"fmt"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/df07/go-montecarlo-tracer/pkg/renderer"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// Encoder serializes a frame buffer to w
type Encoder func(w io.Writer, fb *renderer.FrameBuffer) error

var encoders = map[string]Encoder{
	".ppm":  WritePPM,
	".png":  WritePNG,
	".bmp":  WriteBMP,
	".tif":  WriteTIFF,
	".tiff": WriteTIFF,
}

// EncoderFor returns the encoder matching the file extension of path
func EncoderFor(path string) (Encoder, error) {
	ext := strings.ToLower(filepath.Ext(path))
	enc, ok := encoders[ext]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	return enc, nil
}

// Save writes the frame buffer to path, picking the format from the extension
func Save(path string, fb *renderer.FrameBuffer) error {
	enc, err := EncoderFor(path)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}

	w := bufio.NewWriter(f)
	if err := enc(w, fb); err != nil {
		f.Close()
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// WritePPM writes a plain-text P3 image: a header followed by one "r g b"
// line per pixel, top to bottom and left to right.
func WritePPM(w io.Writer, fb *renderer.FrameBuffer) error {
	if _, err := fmt.Fprintf(w, "P3\n%d %d\n255\n", fb.Width, fb.Height); err != nil {
		return err
	}
	for y := 0; y < fb.Height; y++ {
		for x := 0; x < fb.Width; x++ {
			r, g, b := fb.At(x, y)
			if _, err := fmt.Fprintf(w, "%d %d %d\n", r, g, b); err != nil {
				return err
			}
		}
	}
	return nil
}

// WritePNG encodes the frame buffer as PNG
func WritePNG(w io.Writer, fb *renderer.FrameBuffer) error {
	return png.Encode(w, fb.Image())
}

// WriteBMP encodes the frame buffer as BMP
func WriteBMP(w io.Writer, fb *renderer.FrameBuffer) error {
	return bmp.Encode(w, fb.Image())
}

// WriteTIFF encodes the frame buffer as deflate-compressed TIFF
func WriteTIFF(w io.Writer, fb *renderer.FrameBuffer) error {
	return tiff.Encode(w, fb.Image(), &tiff.Options{Compression: tiff.Deflate})
}
