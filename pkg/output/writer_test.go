package output

import (
	"bytes"
	"errors"
	"image"
	"os"
	"path/filepath"
	"testing"

	"github.com/df07/go-montecarlo-tracer/pkg/renderer"
)

func testFrame(t *testing.T) *renderer.FrameBuffer {
	t.Helper()
	fb := renderer.NewFrameBuffer(2, 2)
	if err := fb.CommitRow(0, []uint8{255, 0, 0, 0, 255, 0}); err != nil {
		t.Fatalf("CommitRow failed: %v", err)
	}
	if err := fb.CommitRow(1, []uint8{0, 0, 255, 10, 20, 30}); err != nil {
		t.Fatalf("CommitRow failed: %v", err)
	}
	return fb
}

func TestWritePPM(t *testing.T) {
	var buf bytes.Buffer
	if err := WritePPM(&buf, testFrame(t)); err != nil {
		t.Fatalf("WritePPM failed: %v", err)
	}

	expected := "P3\n2 2\n255\n255 0 0\n0 255 0\n0 0 255\n10 20 30\n"
	if buf.String() != expected {
		t.Errorf("expected\n%q\ngot\n%q", expected, buf.String())
	}
}

func TestSave_RoundTrip(t *testing.T) {
	tests := []struct {
		name string
		file string
	}{
		{"png", "frame.png"},
		{"bmp", "frame.bmp"},
		{"tiff", "frame.tiff"},
		{"tif uppercase", "FRAME.TIF"},
	}

	fb := testFrame(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), tt.file)
			if err := Save(path, fb); err != nil {
				t.Fatalf("Save failed: %v", err)
			}

			f, err := os.Open(path)
			if err != nil {
				t.Fatalf("open failed: %v", err)
			}
			defer f.Close()

			img, _, err := image.Decode(f)
			if err != nil {
				t.Fatalf("decode failed: %v", err)
			}
			if img.Bounds().Dx() != 2 || img.Bounds().Dy() != 2 {
				t.Fatalf("unexpected bounds %v", img.Bounds())
			}

			r, g, b, _ := img.At(1, 1).RGBA()
			if r>>8 != 10 || g>>8 != 20 || b>>8 != 30 {
				t.Errorf("expected (10,20,30) at (1,1), got (%d,%d,%d)", r>>8, g>>8, b>>8)
			}
		})
	}
}

func TestSave_PPMFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "frame.ppm")
	if err := Save(path, testFrame(t)); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("P3\n2 2\n255\n")) {
		t.Errorf("unexpected PPM header %q", data)
	}
}

func TestSave_UnsupportedFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "frame.exr")
	err := Save(path, testFrame(t))
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Fatalf("expected ErrUnsupportedFormat, got %v", err)
	}
	if _, statErr := os.Stat(path); !os.IsNotExist(statErr) {
		t.Error("no file should be created for an unsupported format")
	}
}
