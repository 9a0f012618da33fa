package scene

import (
	"github.com/df07/go-montecarlo-tracer/pkg/core"
	"github.com/df07/go-montecarlo-tracer/pkg/geometry"
	"github.com/df07/go-montecarlo-tracer/pkg/material"
	"github.com/df07/go-montecarlo-tracer/pkg/renderer"
	"github.com/df07/go-montecarlo-tracer/pkg/texture"
)

// NewFinalScene creates the showcase scene: a field of random-height boxes,
// a moving sphere, glass, metal, fog, an image globe, marble and an instanced
// cluster of small spheres
func NewFinalScene(opts Options) *Scene {
	cameraConfig := renderer.CameraConfig{
		LookFrom:      core.NewVec3(478, 278, -600),
		LookAt:        core.NewVec3(278, 278, 0),
		Up:            core.NewVec3(0, 1, 0),
		VFov:          40.0,
		AspectRatio:   1.0,
		Aperture:      0.0,
		FocusDistance: 10.0,
		Time0:         0.0,
		Time1:         1.0,
	}
	s := newScene("final-scene", cameraConfig, baseConfig(400, 1.0, 1000, black))
	sampler := opts.Sampler

	// Ground: 20x20 boxes of random height, grouped in their own BVH
	ground := material.NewLambertian(core.NewVec3(0.48, 0.83, 0.53))
	const boxesPerSide = 20
	boxes := make([]geometry.Hittable, 0, boxesPerSide*boxesPerSide)
	for i := 0; i < boxesPerSide; i++ {
		for j := 0; j < boxesPerSide; j++ {
			w := 100.0
			x0 := -1000.0 + float64(i)*w
			z0 := -1000.0 + float64(j)*w
			y1 := core.RandomRange(sampler, 1, 101)
			boxes = append(boxes, geometry.NewBox(core.NewVec3(x0, 0, z0), core.NewVec3(x0+w, y1, z0+w), ground))
		}
	}
	s.Add(mustBVH(boxes, cameraConfig, sampler))

	rect := geometry.NewXZRect(123, 423, 147, 412, 554, material.NewDiffuseLight(core.NewVec3(7, 7, 7)))
	s.AddLight(geometry.NewFlipFace(rect), rect)

	center1 := core.NewVec3(400, 400, 200)
	center2 := center1.Add(core.NewVec3(30, 0, 0))
	s.Add(geometry.NewMovingSphere(center1, center2, 0, 1, 50, material.NewLambertian(core.NewVec3(0.7, 0.3, 0.1))))

	s.Add(
		geometry.NewSphere(core.NewVec3(260, 150, 45), 50, material.NewDielectric(1.5)),
		geometry.NewSphere(core.NewVec3(0, 150, 145), 50, material.NewMetal(core.NewVec3(0.8, 0.8, 0.9), 1.0)),
	)

	// A glass ball filled with blue fog, and thin mist over the whole scene
	boundary := geometry.NewSphere(core.NewVec3(360, 150, 145), 70, material.NewDielectric(1.5))
	s.Add(boundary, geometry.NewConstantMediumColor(boundary, 0.2, core.NewVec3(0.2, 0.4, 0.9)))
	mist := geometry.NewSphere(core.NewVec3(0, 0, 0), 5000, material.NewDielectric(1.5))
	s.Add(geometry.NewConstantMediumColor(mist, 0.0001, core.NewVec3(1, 1, 1)))

	s.Add(geometry.NewSphere(core.NewVec3(400, 200, 400), 100, material.NewTexturedLambertian(loadTexture(opts.TexturePath))))
	marble := texture.NewNoise(texture.NewPerlin(sampler), 0.1)
	s.Add(geometry.NewSphere(core.NewVec3(220, 280, 300), 80, material.NewTexturedLambertian(marble)))

	// Cluster of small white spheres, rotated and moved as one instance
	white := material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73))
	const clusterSize = 1000
	cluster := make([]geometry.Hittable, 0, clusterSize)
	for i := 0; i < clusterSize; i++ {
		cluster = append(cluster, geometry.NewSphere(core.RandomVec3(sampler, 0, 165), 10, white))
	}
	var instance geometry.Hittable = mustBVH(cluster, cameraConfig, sampler)
	instance = geometry.NewRotateY(instance, 15)
	instance = geometry.NewTranslate(instance, core.NewVec3(-100, 270, 395))
	s.Add(instance)

	return s
}

// mustBVH groups objects that are bounded by construction
func mustBVH(objects []geometry.Hittable, cameraConfig renderer.CameraConfig, sampler core.Sampler) *geometry.BVHNode {
	bvh, err := geometry.NewBVHNode(objects, cameraConfig.Time0, cameraConfig.Time1, sampler)
	if err != nil {
		panic(err)
	}
	return bvh
}
