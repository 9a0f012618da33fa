package renderer

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/df07/go-montecarlo-tracer/pkg/core"
	"github.com/df07/go-montecarlo-tracer/pkg/geometry"
	"github.com/df07/go-montecarlo-tracer/pkg/integrator"
	"github.com/df07/go-montecarlo-tracer/pkg/log"
)

// Renderer drives an integrator over every pixel of a frame
type Renderer struct {
	integrator integrator.Integrator
	camera     *Camera
	config     Config
	logger     log.Logger
}

// NewRenderer creates a renderer after validating its inputs
func NewRenderer(integ integrator.Integrator, camera *Camera, config Config) (*Renderer, error) {
	if integ == nil {
		return nil, ErrNoWorld
	}
	if camera == nil {
		return nil, ErrNoCamera
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &Renderer{
		integrator: integ,
		camera:     camera,
		config:     config,
		logger:     log.New("renderer"),
	}, nil
}

// Render traces the full frame with a fresh row counter and returns the
// resulting frame buffer. No buffer is returned when the render fails.
func (r *Renderer) Render(ctx context.Context) (*FrameBuffer, RenderStats, error) {
	fb := NewFrameBuffer(r.config.Width, r.config.Height)
	stats, err := r.RenderRows(ctx, NewRowCounter(r.config.Height), fb)
	if err != nil {
		return nil, stats, err
	}
	return fb, stats, nil
}

// RenderRows renders every row handed out by scheduler and commits each
// finished scanline to writer.
func (r *Renderer) RenderRows(ctx context.Context, scheduler RowScheduler, writer RowWriter) (RenderStats, error) {
	pool := NewWorkerPool(r.config.Workers())
	r.logger.Infof("rendering %dx%d at %d spp, max depth %d, with %d workers",
		r.config.Width, r.config.Height, r.config.SamplesPerPixel, r.config.MaxDepth, pool.GetNumWorkers())

	start := time.Now()
	workerStats, err := pool.Run(ctx, scheduler, func(workerID, row int) (int, error) {
		pixels, samples := r.renderRow(row)
		if err := writer.CommitRow(row, pixels); err != nil {
			return samples, err
		}
		return samples, nil
	})

	var stats RenderStats
	for _, ws := range workerStats {
		stats.addWorker(ws)
	}
	stats.RenderTime = time.Since(start)

	if err != nil {
		r.logger.Errorf("render failed after %d rows: %v", stats.TotalRows, err)
		return stats, err
	}

	r.logger.Infof("rendered %d rows (%d samples) in %v", stats.TotalRows, stats.TotalSamples, stats.RenderTime)
	return stats, nil
}

// renderRow traces one scanline into a local buffer. Row 0 is the top of the
// image. The sampler is seeded from the row index so the output does not
// depend on which worker claimed the row.
func (r *Renderer) renderRow(row int) ([]uint8, int) {
	width, height := r.config.Width, r.config.Height
	spp := r.config.SamplesPerPixel
	sampler := core.NewSeededSampler(r.config.Seed + int64(row))

	uScale := 1.0 / math.Max(1, float64(width-1))
	vScale := 1.0 / math.Max(1, float64(height-1))
	j := height - 1 - row

	pixels := make([]uint8, width*3)
	for i := 0; i < width; i++ {
		var color core.Vec3
		for s := 0; s < spp; s++ {
			jitter := sampler.Get2D()
			u := (float64(i) + jitter.X) * uScale
			v := (float64(j) + jitter.Y) * vScale
			ray := r.camera.GetRay(u, v, sampler)
			color = color.Add(r.integrator.RayColor(ray, sampler))
		}

		rgb := toneMap(color, spp)
		copy(pixels[i*3:], rgb[:])
	}

	return pixels, width * spp
}

// toneMap averages the accumulated radiance, applies gamma 2 and quantizes to
// 8 bits. Non-finite components are zeroed before quantization.
func toneMap(sum core.Vec3, samples int) [3]uint8 {
	c := sum.Multiply(1.0 / float64(samples)).Sanitize()
	c = c.Max(core.NewVec3(0, 0, 0)).GammaCorrect(2.0).Clamp(0, 0.999)
	return [3]uint8{
		uint8(256 * c.X),
		uint8(256 * c.Y),
		uint8(256 * c.Z),
	}
}

// Render is the one-call entry point: it path traces world as seen through
// camera and returns a row-major RGB frame buffer with row 0 at the top.
// lights may be nil when the scene has nothing to importance sample.
func Render(ctx context.Context, world geometry.Hittable, lights *geometry.HittableList, camera *Camera, config Config) (*FrameBuffer, RenderStats, error) {
	if world == nil {
		return nil, RenderStats{}, ErrNoWorld
	}
	if err := config.Validate(); err != nil {
		return nil, RenderStats{}, fmt.Errorf("invalid render config: %w", err)
	}

	tracer := integrator.NewPathTracer(world, lights, config.Background, config.MaxDepth)
	r, err := NewRenderer(tracer, camera, config)
	if err != nil {
		return nil, RenderStats{}, err
	}
	return r.Render(ctx)
}
