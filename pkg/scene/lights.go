package scene

import (
	"github.com/df07/go-montecarlo-tracer/pkg/core"
	"github.com/df07/go-montecarlo-tracer/pkg/geometry"
	"github.com/df07/go-montecarlo-tracer/pkg/material"
	"github.com/df07/go-montecarlo-tracer/pkg/renderer"
	"github.com/df07/go-montecarlo-tracer/pkg/texture"
)

var black = core.NewVec3(0, 0, 0)

// NewSimpleLightScene creates the marble spheres lit only by a rectangular
// light and a spherical light
func NewSimpleLightScene(opts Options) *Scene {
	cameraConfig := renderer.CameraConfig{
		LookFrom:      core.NewVec3(26, 3, 6),
		LookAt:        core.NewVec3(0, 2, 0),
		Up:            core.NewVec3(0, 1, 0),
		VFov:          20.0,
		AspectRatio:   16.0 / 9.0,
		Aperture:      0.0,
		FocusDistance: 10.0,
		Time0:         0.0,
		Time1:         1.0,
	}
	s := newScene("simple-light", cameraConfig, baseConfig(400, 16.0/9.0, 400, black))

	marble := material.NewTexturedLambertian(texture.NewNoise(texture.NewPerlin(opts.Sampler), 4))
	s.Add(
		geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, marble),
		geometry.NewSphere(core.NewVec3(0, 2, 0), 2, marble),
	)

	light := material.NewDiffuseLight(core.NewVec3(4, 4, 4))
	rect := geometry.NewXYRect(3, 5, 1, 3, -2, light)
	bulb := geometry.NewSphere(core.NewVec3(0, 7, 0), 2, light)
	s.AddLight(rect, rect)
	s.AddLight(bulb, bulb)

	return s
}
