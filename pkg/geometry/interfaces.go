package geometry

import (
	"github.com/df07/go-montecarlo-tracer/pkg/core"
	"github.com/df07/go-montecarlo-tracer/pkg/material"
	"github.com/df07/go-montecarlo-tracer/pkg/pdf"
)

// Hittable interface for objects that can be hit by rays.
// The sampler is only consumed by stochastic surfaces (participating media).
type Hittable interface {
	Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*material.HitRecord, bool)
	BoundingBox(time0, time1 float64) (core.AABB, bool)
}

// PDFValue returns the solid-angle density of sampling direction toward h from
// origin, or 0 if h cannot be importance-sampled
func PDFValue(h Hittable, origin, direction core.Vec3) float64 {
	if target, ok := h.(pdf.Target); ok {
		return target.PDFValue(origin, direction)
	}
	return 0
}

// RandomDirection samples a direction from origin toward h, or returns an
// arbitrary fixed direction if h cannot be importance-sampled
func RandomDirection(h Hittable, origin core.Vec3, sampler core.Sampler) core.Vec3 {
	if target, ok := h.(pdf.Target); ok {
		return target.Random(origin, sampler)
	}
	return core.NewVec3(1, 0, 0)
}
