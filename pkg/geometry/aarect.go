package geometry

import (
	"math"

	"github.com/df07/go-montecarlo-tracer/pkg/core"
	"github.com/df07/go-montecarlo-tracer/pkg/material"
)

// Plane identifies the orientation of an axis-aligned rectangle
type Plane int

const (
	PlaneXY Plane = iota // constant Z
	PlaneXZ              // constant Y
	PlaneYZ              // constant X
)

// axes returns the two in-plane axes and the constant axis
func (p Plane) axes() (a, b, k int) {
	switch p {
	case PlaneXY:
		return 0, 1, 2
	case PlaneXZ:
		return 0, 2, 1
	default:
		return 1, 2, 0
	}
}

// rectThickness pads the constant axis so the bounding box has non-zero width
const rectThickness = 0.0001

// AARect is an axis-aligned rectangle spanning [A0,A1]×[B0,B1] on the plane
// where the constant axis equals K. The outward normal points along +K.
type AARect struct {
	Plane    Plane
	A0, A1   float64
	B0, B1   float64
	K        float64
	Material material.Material
}

// NewXYRect creates a rectangle in the plane z = k
func NewXYRect(x0, x1, y0, y1, k float64, mat material.Material) *AARect {
	return &AARect{Plane: PlaneXY, A0: x0, A1: x1, B0: y0, B1: y1, K: k, Material: mat}
}

// NewXZRect creates a rectangle in the plane y = k
func NewXZRect(x0, x1, z0, z1, k float64, mat material.Material) *AARect {
	return &AARect{Plane: PlaneXZ, A0: x0, A1: x1, B0: z0, B1: z1, K: k, Material: mat}
}

// NewYZRect creates a rectangle in the plane x = k
func NewYZRect(y0, y1, z0, z1, k float64, mat material.Material) *AARect {
	return &AARect{Plane: PlaneYZ, A0: y0, A1: y1, B0: z0, B1: z1, K: k, Material: mat}
}

// Normal returns the outward normal of the rectangle
func (r *AARect) Normal() core.Vec3 {
	_, _, k := r.Plane.axes()
	return core.Vec3{}.WithAxis(k, 1)
}

// Area returns the surface area of the rectangle
func (r *AARect) Area() float64 {
	return (r.A1 - r.A0) * (r.B1 - r.B0)
}

// Hit tests if a ray crosses the rectangle's plane inside its extent
func (r *AARect) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*material.HitRecord, bool) {
	a, b, k := r.Plane.axes()

	t := (r.K - ray.Origin.Axis(k)) / ray.Direction.Axis(k)
	if t < tMin || t > tMax {
		return nil, false
	}

	x := ray.Origin.Axis(a) + t*ray.Direction.Axis(a)
	y := ray.Origin.Axis(b) + t*ray.Direction.Axis(b)
	if x < r.A0 || x > r.A1 || y < r.B0 || y > r.B1 {
		return nil, false
	}

	hitRecord := &material.HitRecord{
		T:        t,
		Point:    ray.At(t),
		UV:       core.NewVec2((x-r.A0)/(r.A1-r.A0), (y-r.B0)/(r.B1-r.B0)),
		Material: r.Material,
	}
	hitRecord.SetFaceNormal(ray, r.Normal())

	return hitRecord, true
}

// BoundingBox returns the rectangle's extent padded slightly along the constant axis
func (r *AARect) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	a, b, k := r.Plane.axes()
	min := core.Vec3{}.WithAxis(a, r.A0).WithAxis(b, r.B0).WithAxis(k, r.K-rectThickness)
	max := core.Vec3{}.WithAxis(a, r.A1).WithAxis(b, r.B1).WithAxis(k, r.K+rectThickness)
	return core.NewAABB(min, max), true
}

// PDFValue converts the uniform area density to solid angle: distance²/(cosθ·area)
func (r *AARect) PDFValue(origin, direction core.Vec3) float64 {
	hit, ok := r.Hit(core.NewRay(origin, direction, 0), 0.001, math.Inf(1), nil)
	if !ok {
		return 0
	}

	distanceSquared := hit.T * hit.T * direction.LengthSquared()
	cosine := math.Abs(direction.Dot(hit.Normal)) / direction.Length()
	return distanceSquared / (cosine * r.Area())
}

// Random returns the direction from origin to a uniformly sampled point on the rectangle
func (r *AARect) Random(origin core.Vec3, sampler core.Sampler) core.Vec3 {
	a, b, k := r.Plane.axes()
	sample := sampler.Get2D()
	point := core.Vec3{}.
		WithAxis(a, r.A0+sample.X*(r.A1-r.A0)).
		WithAxis(b, r.B0+sample.Y*(r.B1-r.B0)).
		WithAxis(k, r.K)
	return point.Subtract(origin)
}
