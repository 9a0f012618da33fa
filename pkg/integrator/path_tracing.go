package integrator

import (
	"math"

	"github.com/df07/go-montecarlo-tracer/pkg/core"
	"github.com/df07/go-montecarlo-tracer/pkg/geometry"
	"github.com/df07/go-montecarlo-tracer/pkg/material"
	"github.com/df07/go-montecarlo-tracer/pkg/pdf"
)

// rayEpsilon keeps scattered rays from re-intersecting the surface they left
const rayEpsilon = 0.001

// PathTracer implements unidirectional path tracing with a constant background.
// Paths are truncated after MaxDepth bounces, which biases the estimate
// slightly dark in exchange for bounded work.
type PathTracer struct {
	World      geometry.Hittable
	Lights     pdf.Target // Importance-sampled emitters, nil for pure BRDF sampling
	Background core.Vec3  // Radiance for rays that escape the scene
	MaxDepth   int
}

// NewPathTracer creates a path tracer over world. A nil or empty lights list
// disables light sampling.
func NewPathTracer(world geometry.Hittable, lights *geometry.HittableList, background core.Vec3, maxDepth int) *PathTracer {
	pt := &PathTracer{
		World:      world,
		Background: background,
		MaxDepth:   maxDepth,
	}
	if lights != nil && lights.Len() > 0 {
		pt.Lights = lights
	}
	return pt
}

// RayColor computes the color for a single ray using the configured depth
func (pt *PathTracer) RayColor(ray core.Ray, sampler core.Sampler) core.Vec3 {
	return pt.Radiance(ray, pt.MaxDepth, sampler)
}

// Radiance estimates incoming radiance along ray with at most depth bounces.
// Each bounce adds throughput·emitted; specular scatters multiply throughput by
// attenuation, while PDF-carrying scatters also weight by scatteringPDF/pdf.
func (pt *PathTracer) Radiance(ray core.Ray, depth int, sampler core.Sampler) core.Vec3 {
	radiance := core.Vec3{}
	throughput := core.NewVec3(1, 1, 1)

	for ; depth > 0; depth-- {
		hit, isHit := pt.World.Hit(ray, rayEpsilon, math.Inf(1), sampler)
		if !isHit {
			return radiance.Add(throughput.MultiplyVec(pt.Background))
		}

		emitted := material.Emitted(hit.Material, ray, hit)
		radiance = radiance.Add(throughput.MultiplyVec(emitted))

		scatter, didScatter := hit.Material.Scatter(ray, hit, sampler)
		if !didScatter {
			return radiance
		}

		if scatter.IsSpecular() {
			throughput = throughput.MultiplyVec(scatter.Attenuation)
			ray = scatter.Scattered
			continue
		}

		samplingPDF := scatter.PDF
		if pt.Lights != nil {
			samplingPDF = pdf.NewMixturePDF(pdf.NewHittablePDF(pt.Lights, hit.Point), scatter.PDF)
		}

		scattered := core.NewRay(hit.Point, samplingPDF.Generate(sampler), ray.Time)
		pdfValue := samplingPDF.Value(scattered.Direction)
		if pdfValue <= 0 {
			return radiance
		}

		scatteringPDF := hit.Material.ScatteringPDF(ray, hit, scattered)
		throughput = throughput.MultiplyVec(scatter.Attenuation).Multiply(scatteringPDF / pdfValue)
		ray = scattered
	}

	return radiance
}
