package scene

import (
	"fmt"

	"github.com/df07/go-montecarlo-tracer/pkg/core"
	"github.com/df07/go-montecarlo-tracer/pkg/geometry"
	"github.com/df07/go-montecarlo-tracer/pkg/log"
	"github.com/df07/go-montecarlo-tracer/pkg/renderer"
)

var logger = log.New("scene")

// Scene contains all the elements needed for rendering
type Scene struct {
	Name         string
	Objects      *geometry.HittableList // Top-level objects in the scene
	Lights       *geometry.HittableList // Emitters to importance sample; may be empty
	CameraConfig renderer.CameraConfig
	Config       renderer.Config   // Recommended render settings
	World        geometry.Hittable // Acceleration structure, set by Preprocess
}

// Options carries the inputs a scene builder may need
type Options struct {
	Sampler     core.Sampler // Randomness for procedural placement and BVH construction
	TexturePath string       // Image for textured scenes; empty uses a fallback texture
}

// newScene creates an empty scene with the given camera and settings
func newScene(name string, cameraConfig renderer.CameraConfig, config renderer.Config) *Scene {
	return &Scene{
		Name:         name,
		Objects:      geometry.NewHittableList(),
		Lights:       geometry.NewHittableList(),
		CameraConfig: cameraConfig,
		Config:       config,
	}
}

// Add appends objects to the scene
func (s *Scene) Add(objects ...geometry.Hittable) {
	for _, object := range objects {
		s.Objects.Add(object)
	}
}

// AddLight adds an emitter to the scene and, separately, a sampling proxy
// for it to the light list. The proxy is usually the emitter itself, but an
// emitter wrapped in FlipFace can be sampled through its unflipped shape.
func (s *Scene) AddLight(emitter, proxy geometry.Hittable) {
	s.Objects.Add(emitter)
	s.Lights.Add(proxy)
}

// Preprocess prepares the scene for rendering by building a BVH over its
// objects for the camera's shutter interval
func (s *Scene) Preprocess(sampler core.Sampler) error {
	bvh, err := geometry.NewBVHNode(s.Objects.Objects, s.CameraConfig.Time0, s.CameraConfig.Time1, sampler)
	if err != nil {
		return fmt.Errorf("failed to build BVH for scene %q: %w", s.Name, err)
	}
	s.World = bvh

	logger.Debugf("scene %q: built BVH over %d objects (depth %d), %d lights",
		s.Name, s.Objects.Len(), bvh.Depth(), s.Lights.Len())
	return nil
}

// Camera creates the scene camera
func (s *Scene) Camera() *renderer.Camera {
	return renderer.NewCamera(s.CameraConfig)
}

// baseConfig returns the recommended settings for a scene with the given
// width, aspect ratio and background
func baseConfig(width int, aspectRatio float64, samples int, background core.Vec3) renderer.Config {
	config := renderer.DefaultConfig()
	config.Width = width
	config.Height = int(float64(width) / aspectRatio)
	config.SamplesPerPixel = samples
	config.Background = background
	return config
}
