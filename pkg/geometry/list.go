package geometry

import (
	"github.com/df07/go-nextweek-raytracer/pkg/core"
	"github.com/df07/go-nextweek-raytracer/pkg/material"
)

// List is an unordered collection of shapes tested by linear scan
type List struct {
	Shapes []Shape
}

// NewList creates a list from the given shapes
func NewList(shapes ...Shape) *List {
	return &List{Shapes: shapes}
}

// Add appends shapes to the list
func (l *List) Add(shapes ...Shape) {
	l.Shapes = append(l.Shapes, shapes...)
}

// Len returns the number of shapes in the list
func (l *List) Len() int {
	return len(l.Shapes)
}

// Hit returns the closest hit among all shapes. Each hit shrinks the
// search interval for the remaining shapes.
func (l *List) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*material.HitRecord, bool) {
	var closest *material.HitRecord
	closestSoFar := tMax

	for _, shape := range l.Shapes {
		if hit, ok := shape.Hit(ray, tMin, closestSoFar, sampler); ok {
			closest = hit
			closestSoFar = hit.T
		}
	}

	return closest, closest != nil
}

// BoundingBox merges the boxes of all shapes. An empty list, or one holding
// an unbounded shape, has no bounding box.
func (l *List) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	if len(l.Shapes) == 0 {
		return core.AABB{}, false
	}

	var result core.AABB
	for i, shape := range l.Shapes {
		box, ok := shape.BoundingBox(time0, time1)
		if !ok {
			return core.AABB{}, false
		}
		if i == 0 {
			result = box
		} else {
			result = result.Surrounding(box)
		}
	}
	return result, true
}
