package geometry

import (
	"github.com/df07/go-nextweek-raytracer/pkg/core"
	"github.com/df07/go-nextweek-raytracer/pkg/material"
)

// Box is an axis-aligned box built from six rectangles
type Box struct {
	Min, Max core.Vec3
	sides    *List
}

// NewBox creates a box spanning the corners min and max
func NewBox(min, max core.Vec3, mat material.Material) *Box {
	sides := NewList(
		NewXYRect(min.X, max.X, min.Y, max.Y, max.Z, mat),
		NewXYRect(min.X, max.X, min.Y, max.Y, min.Z, mat),
		NewXZRect(min.X, max.X, min.Z, max.Z, max.Y, mat),
		NewXZRect(min.X, max.X, min.Z, max.Z, min.Y, mat),
		NewYZRect(min.Y, max.Y, min.Z, max.Z, max.X, mat),
		NewYZRect(min.Y, max.Y, min.Z, max.Z, min.X, mat),
	)
	return &Box{Min: min, Max: max, sides: sides}
}

// Hit returns the nearest side hit by the ray
func (b *Box) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*material.HitRecord, bool) {
	return b.sides.Hit(ray, tMin, tMax, sampler)
}

// BoundingBox returns exactly the box corners
func (b *Box) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	return core.NewAABB(b.Min, b.Max), true
}
