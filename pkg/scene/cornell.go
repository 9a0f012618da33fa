package scene

import (
	"github.com/df07/go-montecarlo-tracer/pkg/core"
	"github.com/df07/go-montecarlo-tracer/pkg/geometry"
	"github.com/df07/go-montecarlo-tracer/pkg/material"
	"github.com/df07/go-montecarlo-tracer/pkg/renderer"
)

// Cornell box dimensions (standard 555x555x555 units)
const boxSize = 555.0

func cornellCamera() renderer.CameraConfig {
	return renderer.CameraConfig{
		LookFrom:      core.NewVec3(278, 278, -800), // Position camera outside the box looking in
		LookAt:        core.NewVec3(278, 278, 0),
		Up:            core.NewVec3(0, 1, 0),
		VFov:          40.0,
		AspectRatio:   1.0,
		Aperture:      0.0,
		FocusDistance: 10.0,
		Time0:         0.0,
		Time1:         1.0,
	}
}

// addCornellWalls adds the five walls of the box: green on the left (x=555),
// red on the right (x=0), white floor, ceiling and back
func addCornellWalls(s *Scene) {
	red := material.NewLambertian(core.NewVec3(0.65, 0.05, 0.05))
	white := material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73))
	green := material.NewLambertian(core.NewVec3(0.12, 0.45, 0.15))

	s.Add(
		geometry.NewYZRect(0, boxSize, 0, boxSize, boxSize, green),
		geometry.NewYZRect(0, boxSize, 0, boxSize, 0, red),
		geometry.NewXZRect(0, boxSize, 0, boxSize, 0, white),
		geometry.NewXZRect(0, boxSize, 0, boxSize, boxSize, white),
		geometry.NewXYRect(0, boxSize, 0, boxSize, boxSize, white),
	)
}

// addCeilingLight adds a downward-facing area light just below the ceiling
func addCeilingLight(s *Scene, x0, x1, z0, z1 float64, emission core.Vec3) {
	rect := geometry.NewXZRect(x0, x1, z0, z1, boxSize-1, material.NewDiffuseLight(emission))
	s.AddLight(geometry.NewFlipFace(rect), rect)
}

// NewCornellBoxScene creates a classic Cornell box with a rotated aluminium
// block and a glass sphere, both sampled as lights alongside the ceiling lamp
func NewCornellBoxScene(opts Options) *Scene {
	s := newScene("cornell-box", cornellCamera(), baseConfig(400, 1.0, 100, black))

	addCornellWalls(s)
	addCeilingLight(s, 213, 343, 227, 332, core.NewVec3(15, 15, 15))

	aluminum := material.NewMetal(core.NewVec3(0.8, 0.85, 0.88), 0.0)
	var tall geometry.Hittable = geometry.NewBox(core.NewVec3(0, 0, 0), core.NewVec3(165, 330, 165), aluminum)
	tall = geometry.NewRotateY(tall, 15)
	tall = geometry.NewTranslate(tall, core.NewVec3(265, 0, 295))
	s.Add(tall)

	glass := geometry.NewSphere(core.NewVec3(190, 90, 190), 90, material.NewDielectric(1.5))
	s.AddLight(glass, glass)

	return s
}

// NewCornellSmokeScene replaces the Cornell blocks with dark and light smoke
func NewCornellSmokeScene(opts Options) *Scene {
	s := newScene("cornell-smoke", cornellCamera(), baseConfig(400, 1.0, 200, black))

	addCornellWalls(s)
	addCeilingLight(s, 113, 443, 127, 432, core.NewVec3(7, 7, 7))

	white := material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73))

	var tall geometry.Hittable = geometry.NewBox(core.NewVec3(0, 0, 0), core.NewVec3(165, 330, 165), white)
	tall = geometry.NewRotateY(tall, 15)
	tall = geometry.NewTranslate(tall, core.NewVec3(265, 0, 295))

	var short geometry.Hittable = geometry.NewBox(core.NewVec3(0, 0, 0), core.NewVec3(165, 165, 165), white)
	short = geometry.NewRotateY(short, -18)
	short = geometry.NewTranslate(short, core.NewVec3(130, 0, 65))

	s.Add(
		geometry.NewConstantMediumColor(tall, 0.01, core.NewVec3(0, 0, 0)),
		geometry.NewConstantMediumColor(short, 0.01, core.NewVec3(1, 1, 1)),
	)

	return s
}
