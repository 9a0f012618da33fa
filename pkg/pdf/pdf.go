package pdf

import (
	"math"

	"github.com/df07/go-montecarlo-tracer/pkg/core"
)

// PDF is a direction distribution that can be both sampled and evaluated
type PDF interface {
	// Value returns the solid-angle density of direction
	Value(direction core.Vec3) float64
	// Generate draws a direction from the distribution
	Generate(sampler core.Sampler) core.Vec3
}

// Target is a surface that can be importance-sampled from an external point
type Target interface {
	PDFValue(origin, direction core.Vec3) float64
	Random(origin core.Vec3, sampler core.Sampler) core.Vec3
}

// CosinePDF is a cosine-weighted distribution around an axis
type CosinePDF struct {
	uvw core.ONB
}

// NewCosinePDF creates a cosine-weighted PDF around w
func NewCosinePDF(w core.Vec3) *CosinePDF {
	return &CosinePDF{uvw: core.NewONBFromW(w)}
}

// Value returns cos(θ)/π, or 0 below the hemisphere
func (p *CosinePDF) Value(direction core.Vec3) float64 {
	cosine := direction.Normalize().Dot(p.uvw.W)
	if cosine <= 0 {
		return 0
	}
	return cosine / math.Pi
}

// Generate draws a cosine-weighted direction in the PDF's basis
func (p *CosinePDF) Generate(sampler core.Sampler) core.Vec3 {
	return p.uvw.Local(core.SampleCosineDirection(sampler.Get2D()))
}

// HittablePDF samples directions toward a surface as seen from an origin
type HittablePDF struct {
	target Target
	origin core.Vec3
}

// NewHittablePDF creates a PDF sampling target from origin
func NewHittablePDF(target Target, origin core.Vec3) *HittablePDF {
	return &HittablePDF{target: target, origin: origin}
}

// Value delegates to the target's solid-angle density
func (p *HittablePDF) Value(direction core.Vec3) float64 {
	return p.target.PDFValue(p.origin, direction)
}

// Generate delegates to the target's direction sampler
func (p *HittablePDF) Generate(sampler core.Sampler) core.Vec3 {
	return p.target.Random(p.origin, sampler)
}

// MixturePDF is an equal-weight combination of two PDFs
type MixturePDF struct {
	first  PDF
	second PDF
}

// NewMixturePDF creates a 50/50 mixture of two PDFs
func NewMixturePDF(first, second PDF) *MixturePDF {
	return &MixturePDF{first: first, second: second}
}

// Value returns the average of both densities
func (p *MixturePDF) Value(direction core.Vec3) float64 {
	return 0.5*p.first.Value(direction) + 0.5*p.second.Value(direction)
}

// Generate picks one of the two PDFs with equal probability and samples it
func (p *MixturePDF) Generate(sampler core.Sampler) core.Vec3 {
	if sampler.Get1D() < 0.5 {
		return p.first.Generate(sampler)
	}
	return p.second.Generate(sampler)
}
