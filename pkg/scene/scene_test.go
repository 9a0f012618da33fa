package scene

import (
	"context"
	"errors"
	"math/rand"
	"testing"

	"github.com/df07/go-montecarlo-tracer/pkg/core"
	"github.com/df07/go-montecarlo-tracer/pkg/geometry"
	"github.com/df07/go-montecarlo-tracer/pkg/renderer"
)

func testOptions() Options {
	return Options{Sampler: core.NewRandomSampler(rand.New(rand.NewSource(42)))}
}

func TestNames(t *testing.T) {
	expected := []string{
		"cornell-box",
		"cornell-smoke",
		"earth",
		"final-scene",
		"random-spheres",
		"simple-light",
		"two-perlin-spheres",
		"two-spheres",
	}

	names := Names()
	if len(names) != len(expected) {
		t.Fatalf("expected %d scenes, got %d: %v", len(expected), len(names), names)
	}
	for i, name := range expected {
		if names[i] != name {
			t.Errorf("scene %d: expected %q, got %q", i, name, names[i])
		}
	}

	for _, info := range List() {
		if info.Description == "" {
			t.Errorf("scene %q has no description", info.Name)
		}
	}
}

func TestLookup_UnknownScene(t *testing.T) {
	if _, err := Lookup("teapot"); !errors.Is(err, ErrUnknownScene) {
		t.Errorf("expected ErrUnknownScene, got %v", err)
	}
	if _, err := Build("teapot", testOptions()); !errors.Is(err, ErrUnknownScene) {
		t.Errorf("expected ErrUnknownScene from Build, got %v", err)
	}
}

func TestBuild_AllScenes(t *testing.T) {
	tests := []struct {
		name   string
		lights int
	}{
		{"random-spheres", 0},
		{"two-spheres", 0},
		{"two-perlin-spheres", 0},
		{"earth", 0},
		{"simple-light", 2},
		{"cornell-box", 2},
		{"cornell-smoke", 1},
		{"final-scene", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := Build(tt.name, testOptions())
			if err != nil {
				t.Fatalf("Build failed: %v", err)
			}

			if s.Name != tt.name {
				t.Errorf("expected name %q, got %q", tt.name, s.Name)
			}
			if s.World == nil {
				t.Fatal("expected a preprocessed world")
			}
			if s.Lights.Len() != tt.lights {
				t.Errorf("expected %d lights, got %d", tt.lights, s.Lights.Len())
			}
			if err := s.Config.Validate(); err != nil {
				t.Errorf("recommended config is invalid: %v", err)
			}

			worldBox, ok := s.World.BoundingBox(s.CameraConfig.Time0, s.CameraConfig.Time1)
			if !ok {
				t.Fatal("world should be bounded")
			}
			listBox, ok := s.Objects.BoundingBox(s.CameraConfig.Time0, s.CameraConfig.Time1)
			if !ok {
				t.Fatal("object list should be bounded")
			}
			if worldBox != listBox {
				t.Errorf("BVH box %v differs from object list box %v", worldBox, listBox)
			}
		})
	}
}

func TestBuild_EarthFallsBackWithoutImage(t *testing.T) {
	opts := testOptions()
	opts.TexturePath = "does/not/exist.png"

	s, err := Build("earth", opts)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if s.Objects.Len() != 1 {
		t.Errorf("expected a single globe, got %d objects", s.Objects.Len())
	}
}

func TestPreprocess_UnboundedObject(t *testing.T) {
	s := newScene("unbounded", outdoorCamera(0), baseConfig(10, 1, 1, black))
	s.Add(geometry.NewHittableList())

	err := s.Preprocess(testOptions().Sampler)
	if !errors.Is(err, geometry.ErrUnboundedHittable) {
		t.Errorf("expected ErrUnboundedHittable, got %v", err)
	}
	if s.World != nil {
		t.Error("world should stay unset after a failed preprocess")
	}
}

func TestBaseConfig(t *testing.T) {
	config := baseConfig(400, 16.0/9.0, 50, skyBlue)
	if config.Width != 400 || config.Height != 225 {
		t.Errorf("expected 400x225, got %dx%d", config.Width, config.Height)
	}
	if config.SamplesPerPixel != 50 {
		t.Errorf("expected 50 spp, got %d", config.SamplesPerPixel)
	}
	if config.Background != skyBlue {
		t.Errorf("expected sky background, got %v", config.Background)
	}
}

func TestCornellBox_RendersLitInterior(t *testing.T) {
	s, err := Build("cornell-box", testOptions())
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	config := s.Config
	config.Width = 12
	config.Height = 12
	config.SamplesPerPixel = 8
	config.MaxDepth = 8
	config.NumWorkers = 2

	fb, stats, err := renderer.Render(context.Background(), s.World, s.Lights, s.Camera(), config)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if stats.TotalRows != 12 {
		t.Errorf("expected 12 rows, got %d", stats.TotalRows)
	}

	lit := 0
	for _, v := range fb.Pix {
		if v > 0 {
			lit++
		}
	}
	if lit < len(fb.Pix)/4 {
		t.Errorf("expected most of the box to receive light, only %d of %d channels are non-zero", lit, len(fb.Pix))
	}
}
