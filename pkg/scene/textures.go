package scene

import (
	"github.com/df07/go-montecarlo-tracer/pkg/core"
	"github.com/df07/go-montecarlo-tracer/pkg/geometry"
	"github.com/df07/go-montecarlo-tracer/pkg/loaders"
	"github.com/df07/go-montecarlo-tracer/pkg/material"
	"github.com/df07/go-montecarlo-tracer/pkg/texture"
)

// NewTwoPerlinSpheresScene creates a marble ground sphere and a marble ball
func NewTwoPerlinSpheresScene(opts Options) *Scene {
	s := newScene("two-perlin-spheres", outdoorCamera(0), baseConfig(400, 16.0/9.0, 100, skyBlue))

	marble := material.NewTexturedLambertian(texture.NewNoise(texture.NewPerlin(opts.Sampler), 4))
	s.Add(
		geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, marble),
		geometry.NewSphere(core.NewVec3(0, 2, 0), 2, marble),
	)

	return s
}

// NewEarthScene creates a single globe textured with the image at
// opts.TexturePath
func NewEarthScene(opts Options) *Scene {
	s := newScene("earth", outdoorCamera(0), baseConfig(400, 16.0/9.0, 100, skyBlue))

	s.Add(geometry.NewSphere(core.NewVec3(0, 0, 0), 2, material.NewTexturedLambertian(loadTexture(opts.TexturePath))))
	return s
}

// loadTexture loads an image texture, falling back to a checker pattern when
// no path is given or the image cannot be decoded
func loadTexture(path string) texture.Texture {
	fallback := texture.NewCheckerColors(core.NewVec3(0.1, 0.2, 0.6), core.NewVec3(0.2, 0.6, 0.2))
	if path == "" {
		logger.Warning("no texture image given, using checker fallback")
		return fallback
	}

	img, err := loaders.LoadImageTexture(path)
	if err != nil {
		logger.Warningf("could not load texture %q, using checker fallback: %v", path, err)
		return fallback
	}

	logger.Infof("loaded %dx%d texture from %s", img.Width, img.Height, path)
	return img
}
