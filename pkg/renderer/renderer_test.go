package renderer

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/df07/go-montecarlo-tracer/pkg/core"
	"github.com/df07/go-montecarlo-tracer/pkg/geometry"
	"github.com/df07/go-montecarlo-tracer/pkg/material"
)

// constantIntegrator returns the same radiance for every ray
type constantIntegrator struct {
	color core.Vec3
}

func (c constantIntegrator) RayColor(ray core.Ray, sampler core.Sampler) core.Vec3 {
	return c.color
}

// panickingIntegrator fails on every ray
type panickingIntegrator struct{}

func (panickingIntegrator) RayColor(ray core.Ray, sampler core.Sampler) core.Vec3 {
	panic("degenerate geometry")
}

// countingScheduler wraps a row counter and records every row it hands out
type countingScheduler struct {
	inner   RowScheduler
	mu      sync.Mutex
	claimed map[int]int
}

func newCountingScheduler(height int) *countingScheduler {
	return &countingScheduler{inner: NewRowCounter(height), claimed: make(map[int]int)}
}

func (s *countingScheduler) Next() (int, bool) {
	row, ok := s.inner.Next()
	if ok {
		s.mu.Lock()
		s.claimed[row]++
		s.mu.Unlock()
	}
	return row, ok
}

// recordingWriter counts row commits
type recordingWriter struct {
	mu      sync.Mutex
	written map[int]int
	width   int
}

func (w *recordingWriter) CommitRow(row int, pixels []uint8) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if len(pixels) != w.width*3 {
		return errors.New("short row")
	}
	w.written[row]++
	return nil
}

func testConfig(width, height, workers int) Config {
	config := DefaultConfig()
	config.Width = width
	config.Height = height
	config.SamplesPerPixel = 4
	config.MaxDepth = 5
	config.NumWorkers = workers
	return config
}

func testCamera(aspect float64) *Camera {
	return NewCamera(CameraConfig{
		LookFrom:    core.NewVec3(0, 0, 0),
		LookAt:      core.NewVec3(0, 0, -1),
		Up:          core.NewVec3(0, 1, 0),
		VFov:        90,
		AspectRatio: aspect,
	})
}

func TestRenderRows_EachRowWrittenExactlyOnce(t *testing.T) {
	tests := []struct {
		name    string
		height  int
		workers int
	}{
		{"single worker", 13, 1},
		{"more workers than rows", 3, 8},
		{"many rows", 97, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := testConfig(5, tt.height, tt.workers)
			r, err := NewRenderer(constantIntegrator{core.NewVec3(0.5, 0.5, 0.5)}, testCamera(1), config)
			if err != nil {
				t.Fatalf("NewRenderer failed: %v", err)
			}

			scheduler := newCountingScheduler(tt.height)
			writer := &recordingWriter{written: make(map[int]int), width: 5}
			stats, err := r.RenderRows(context.Background(), scheduler, writer)
			if err != nil {
				t.Fatalf("RenderRows failed: %v", err)
			}

			for row := 0; row < tt.height; row++ {
				if scheduler.claimed[row] != 1 {
					t.Errorf("row %d claimed %d times", row, scheduler.claimed[row])
				}
				if writer.written[row] != 1 {
					t.Errorf("row %d written %d times", row, writer.written[row])
				}
			}
			if len(writer.written) != tt.height {
				t.Errorf("expected %d distinct rows, got %d", tt.height, len(writer.written))
			}
			if stats.TotalRows != tt.height {
				t.Errorf("expected %d rows in stats, got %d", tt.height, stats.TotalRows)
			}
			if stats.TotalSamples != tt.height*5*config.SamplesPerPixel {
				t.Errorf("unexpected sample total %d", stats.TotalSamples)
			}
			if len(stats.Workers) != tt.workers {
				t.Errorf("expected %d worker stats, got %d", tt.workers, len(stats.Workers))
			}
		})
	}
}

func TestRender_ConstantRadianceIsGammaCorrected(t *testing.T) {
	r, err := NewRenderer(constantIntegrator{core.NewVec3(0.25, 1, 0)}, testCamera(2), testConfig(8, 4, 2))
	if err != nil {
		t.Fatalf("NewRenderer failed: %v", err)
	}

	fb, _, err := r.Render(context.Background())
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	for y := 0; y < fb.Height; y++ {
		for x := 0; x < fb.Width; x++ {
			red, green, blue := fb.At(x, y)
			if red != 128 || green != 255 || blue != 0 {
				t.Fatalf("pixel (%d,%d) = (%d,%d,%d), expected (128,255,0)", x, y, red, green, blue)
			}
		}
	}
}

func TestToneMap(t *testing.T) {
	nan := core.NewVec3(0, 0, 0)
	nan.X = nan.X / nan.X

	tests := []struct {
		name     string
		sum      core.Vec3
		samples  int
		expected [3]uint8
	}{
		{"black", core.NewVec3(0, 0, 0), 1, [3]uint8{0, 0, 0}},
		{"averaged", core.NewVec3(1, 4, 0), 4, [3]uint8{128, 255, 0}},
		{"nan becomes black", nan, 1, [3]uint8{0, 0, 0}},
		{"negative clamps to black", core.NewVec3(-1, -0.5, 0), 1, [3]uint8{0, 0, 0}},
		{"overexposed clamps to 255", core.NewVec3(100, 2, 1), 1, [3]uint8{255, 255, 255}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := toneMap(tt.sum, tt.samples)
			if got != tt.expected {
				t.Errorf("expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestRender_WorkerPanicFailsRender(t *testing.T) {
	r, err := NewRenderer(panickingIntegrator{}, testCamera(1), testConfig(4, 16, 3))
	if err != nil {
		t.Fatalf("NewRenderer failed: %v", err)
	}

	fb, _, err := r.Render(context.Background())
	if !errors.Is(err, ErrWorkerPanic) {
		t.Fatalf("expected ErrWorkerPanic, got %v", err)
	}
	if fb != nil {
		t.Error("expected no frame buffer from a failed render")
	}
}

func TestRender_CancelledContext(t *testing.T) {
	r, err := NewRenderer(constantIntegrator{core.NewVec3(1, 1, 1)}, testCamera(1), testConfig(4, 16, 2))
	if err != nil {
		t.Fatalf("NewRenderer failed: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	fb, stats, err := r.Render(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if fb != nil {
		t.Error("expected no frame buffer from a cancelled render")
	}
	if stats.TotalRows != 0 {
		t.Errorf("expected no rows rendered, got %d", stats.TotalRows)
	}
}

func TestRender_DeterministicAcrossWorkerCounts(t *testing.T) {
	world := geometry.NewHittableList(
		geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, material.NewLambertian(core.NewVec3(0.7, 0.3, 0.3))),
		geometry.NewSphere(core.NewVec3(0, -100.5, -1), 100, material.NewMetal(core.NewVec3(0.8, 0.8, 0.8), 0.3)),
	)

	render := func(workers int) *FrameBuffer {
		config := testConfig(16, 9, workers)
		config.Background = core.NewVec3(0.7, 0.8, 1.0)
		fb, _, err := Render(context.Background(), world, nil, testCamera(16.0/9.0), config)
		if err != nil {
			t.Fatalf("Render failed: %v", err)
		}
		return fb
	}

	a := render(1)
	b := render(4)
	for i := range a.Pix {
		if a.Pix[i] != b.Pix[i] {
			t.Fatalf("byte %d differs between worker counts: %d vs %d", i, a.Pix[i], b.Pix[i])
		}
	}

	// The sphere sits in the middle of the frame and must differ from the sky
	cr, cg, cb := a.At(8, 4)
	sr, sg, sb := a.At(0, 0)
	if cr == sr && cg == sg && cb == sb {
		t.Error("expected the sphere to be visible against the background")
	}
}

func TestRender_RejectsBadInputs(t *testing.T) {
	world := geometry.NewHittableList()

	if _, _, err := Render(context.Background(), nil, nil, testCamera(1), testConfig(4, 4, 1)); !errors.Is(err, ErrNoWorld) {
		t.Errorf("expected ErrNoWorld, got %v", err)
	}
	if _, _, err := Render(context.Background(), world, nil, nil, testConfig(4, 4, 1)); !errors.Is(err, ErrNoCamera) {
		t.Errorf("expected ErrNoCamera, got %v", err)
	}
	if _, _, err := Render(context.Background(), world, nil, testCamera(1), testConfig(0, 4, 1)); !errors.Is(err, ErrInvalidDimensions) {
		t.Errorf("expected ErrInvalidDimensions, got %v", err)
	}
}
