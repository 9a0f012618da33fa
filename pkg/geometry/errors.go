package geometry

import "errors"

var (
	// ErrUnboundedHittable is returned when a BVH input reports no bounding box
	ErrUnboundedHittable = errors.New("geometry: hittable has no bounding box")
	// ErrEmptyList is returned when a BVH is built from an empty object list
	ErrEmptyList = errors.New("geometry: cannot build a BVH from an empty list")
)
