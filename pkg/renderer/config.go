package renderer

import (
	"fmt"
	"runtime"

	"github.com/df07/go-montecarlo-tracer/pkg/core"
	"github.com/shirou/gopsutil/v3/cpu"
)

// Config holds the frame and sampling settings for a render
type Config struct {
	Width           int       // Frame width in pixels
	Height          int       // Frame height in pixels
	SamplesPerPixel int       // Jittered rays traced per pixel
	MaxDepth        int       // Maximum path length
	NumWorkers      int       // Worker goroutines; 0 picks one per logical CPU
	Background      core.Vec3 // Radiance returned by rays that escape the scene
	Seed            int64     // Base seed; row j is sampled with Seed+j
}

// DefaultConfig returns sensible default values
func DefaultConfig() Config {
	return Config{
		Width:           400,
		Height:          225,
		SamplesPerPixel: 100,
		MaxDepth:        50,
		NumWorkers:      0,
		Background:      core.NewVec3(0, 0, 0),
		Seed:            1,
	}
}

// Validate checks that the configuration describes a renderable frame
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: got %dx%d", ErrInvalidDimensions, c.Width, c.Height)
	}
	if c.SamplesPerPixel <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidSamples, c.SamplesPerPixel)
	}
	if c.MaxDepth <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidDepth, c.MaxDepth)
	}
	return nil
}

// Workers resolves the configured worker count
func (c Config) Workers() int {
	if c.NumWorkers > 0 {
		return c.NumWorkers
	}
	return DefaultWorkerCount()
}

// DefaultWorkerCount returns the number of logical CPUs on this host
func DefaultWorkerCount() int {
	count, err := cpu.Counts(true)
	if err != nil || count <= 0 {
		return runtime.NumCPU()
	}
	return count
}
