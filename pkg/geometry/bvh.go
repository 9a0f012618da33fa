package geometry

import (
	"fmt"
	"sort"

	"github.com/df07/go-montecarlo-tracer/pkg/core"
	"github.com/df07/go-montecarlo-tracer/pkg/material"
)

// BVHNode is a node in a median-split bounding volume hierarchy. A node
// built from a single object references it as both children.
type BVHNode struct {
	Left  Hittable
	Right Hittable
	Box   core.AABB
}

// bvhEntry pairs an object with its bounding box, computed once at build time
type bvhEntry struct {
	object Hittable
	box    core.AABB
}

// NewBVHNode builds a BVH over objects for the shutter interval [time0, time1].
// Every object must report a bounding box. The input slice is not modified.
func NewBVHNode(objects []Hittable, time0, time1 float64, sampler core.Sampler) (*BVHNode, error) {
	if len(objects) == 0 {
		return nil, ErrEmptyList
	}

	entries := make([]bvhEntry, len(objects))
	for i, object := range objects {
		box, ok := object.BoundingBox(time0, time1)
		if !ok {
			return nil, fmt.Errorf("%w: object %d (%T)", ErrUnboundedHittable, i, object)
		}
		entries[i] = bvhEntry{object: object, box: box}
	}

	return buildBVH(entries, sampler), nil
}

// buildBVH recursively splits entries at the median along a random axis
func buildBVH(entries []bvhEntry, sampler core.Sampler) *BVHNode {
	axis := core.RandomInt(sampler, 0, 2)

	var left, right bvhEntry
	switch len(entries) {
	case 1:
		left, right = entries[0], entries[0]
	case 2:
		left, right = entries[0], entries[1]
		if right.box.Min.Axis(axis) < left.box.Min.Axis(axis) {
			left, right = right, left
		}
	default:
		sort.Slice(entries, func(i, j int) bool {
			return entries[i].box.Min.Axis(axis) < entries[j].box.Min.Axis(axis)
		})

		mid := len(entries) / 2
		leftNode := buildBVH(entries[:mid], sampler)
		rightNode := buildBVH(entries[mid:], sampler)
		left = bvhEntry{object: leftNode, box: leftNode.Box}
		right = bvhEntry{object: rightNode, box: rightNode.Box}
	}

	return &BVHNode{
		Left:  left.object,
		Right: right.object,
		Box:   core.SurroundingBox(left.box, right.box),
	}
}

// Hit tests the left subtree, then the right subtree restricted to hits
// closer than any left hit
func (n *BVHNode) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*material.HitRecord, bool) {
	if !n.Box.Hit(ray, tMin, tMax) {
		return nil, false
	}

	leftHit, hitLeft := n.Left.Hit(ray, tMin, tMax, sampler)
	if hitLeft {
		tMax = leftHit.T
	}

	if rightHit, hitRight := n.Right.Hit(ray, tMin, tMax, sampler); hitRight {
		return rightHit, true
	}
	return leftHit, hitLeft
}

// BoundingBox returns the cached union of both children's boxes
func (n *BVHNode) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	return n.Box, true
}

// Depth returns the height of the tree rooted at n
func (n *BVHNode) Depth() int {
	depth := 0
	for _, child := range []Hittable{n.Left, n.Right} {
		if node, ok := child.(*BVHNode); ok {
			if d := node.Depth(); d > depth {
				depth = d
			}
		}
	}
	return depth + 1
}
