package geometry

import (
	"math"
	"math/rand"
	"testing"

	"github.com/df07/go-montecarlo-tracer/pkg/core"
	"github.com/df07/go-montecarlo-tracer/pkg/material"
)

// unbounded is a hittable without a bounding box
type unbounded struct{}

func (unbounded) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*material.HitRecord, bool) {
	return nil, false
}

func (unbounded) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	return core.AABB{}, false
}

func TestHittableList_HitReturnsClosest(t *testing.T) {
	far := NewSphere(core.NewVec3(0, 0, -10), 1, nil)
	near := NewSphere(core.NewVec3(0, 0, -3), 1, nil)
	list := NewHittableList(far, near)

	hit, ok := list.Hit(core.NewRay(core.Vec3{}, core.NewVec3(0, 0, -1), 0), 0.001, math.Inf(1), nil)
	if !ok {
		t.Fatal("Expected a hit")
	}
	if math.Abs(hit.T-2) > 1e-9 {
		t.Errorf("Expected closest hit at t=2, got %f", hit.T)
	}
}

func TestHittableList_BoundingBox(t *testing.T) {
	t.Run("Empty list", func(t *testing.T) {
		if _, ok := NewHittableList().BoundingBox(0, 1); ok {
			t.Error("Expected empty list to be unbounded")
		}
	})

	t.Run("Unbounded child", func(t *testing.T) {
		list := NewHittableList(NewSphere(core.Vec3{}, 1, nil), unbounded{})
		if _, ok := list.BoundingBox(0, 1); ok {
			t.Error("Expected list with unbounded child to be unbounded")
		}
	})

	t.Run("Union of children", func(t *testing.T) {
		list := NewHittableList(NewSphere(core.Vec3{}, 1, nil), NewSphere(core.NewVec3(5, 0, 0), 2, nil))
		box, ok := list.BoundingBox(0, 1)
		expected := core.NewAABB(core.NewVec3(-1, -2, -2), core.NewVec3(7, 2, 2))
		if !ok || box != expected {
			t.Errorf("Expected %v, got %v", expected, box)
		}
	})
}

func TestHittableList_PDFAveragesChildren(t *testing.T) {
	up := NewXZRect(-1, 1, -1, 1, 2, nil)
	down := NewXZRect(-1, 1, -1, 1, -2, nil)
	lights := NewHittableList(up, down)
	origin := core.Vec3{}

	expected := 0.5 * up.PDFValue(origin, core.NewVec3(0, 1, 0))
	if got := lights.PDFValue(origin, core.NewVec3(0, 1, 0)); math.Abs(got-expected) > 1e-12 {
		t.Errorf("Expected %f, got %f", expected, got)
	}

	sampler := core.NewRandomSampler(rand.New(rand.NewSource(42)))
	upCount := 0
	for i := 0; i < 1000; i++ {
		if lights.Random(origin, sampler).Y > 0 {
			upCount++
		}
	}
	if upCount < 400 || upCount > 600 {
		t.Errorf("Expected roughly half the samples toward each light, got %d/1000 upward", upCount)
	}
}

func TestPDFValue_NonSampleable(t *testing.T) {
	if got := PDFValue(unbounded{}, core.Vec3{}, core.NewVec3(0, 1, 0)); got != 0 {
		t.Errorf("Expected 0 for a non-sampleable surface, got %f", got)
	}
	if got := RandomDirection(unbounded{}, core.Vec3{}, nil); got != core.NewVec3(1, 0, 0) {
		t.Errorf("Expected fixed fallback direction, got %v", got)
	}
}
