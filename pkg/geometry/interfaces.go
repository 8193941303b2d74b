package geometry

import (
	"github.com/df07/go-nextweek-raytracer/pkg/core"
	"github.com/df07/go-nextweek-raytracer/pkg/material"
)

// Shape interface for objects that can be hit by rays
type Shape interface {
	// Hit returns the nearest intersection with t in [tMin, tMax].
	// The sampler is only consumed by probabilistic shapes such as media.
	Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*material.HitRecord, bool)

	// BoundingBox returns a box enclosing the shape over the time interval
	// [time0, time1], or false if the shape is unbounded
	BoundingBox(time0, time1 float64) (core.AABB, bool)
}
