package integrator

import (
	"github.com/df07/go-montecarlo-tracer/pkg/core"
)

// Integrator defines the interface for light transport algorithms
type Integrator interface {
	// RayColor estimates the radiance arriving along ray
	RayColor(ray core.Ray, sampler core.Sampler) core.Vec3
}
