package geometry

import (
	"math"

	"github.com/df07/go-nextweek-raytracer/pkg/core"
	"github.com/df07/go-nextweek-raytracer/pkg/material"
)

// Translate moves a shape by a fixed offset
type Translate struct {
	Shape  Shape
	Offset core.Vec3
}

// NewTranslate wraps shape so that it appears shifted by offset
func NewTranslate(shape Shape, offset core.Vec3) *Translate {
	return &Translate{Shape: shape, Offset: offset}
}

// Hit moves the ray into object space, delegates, and moves the hit back
func (t *Translate) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*material.HitRecord, bool) {
	moved := core.NewRayAt(ray.Origin.Subtract(t.Offset), ray.Direction, ray.Time)
	hit, ok := t.Shape.Hit(moved, tMin, tMax, sampler)
	if !ok {
		return nil, false
	}

	hit.Point = hit.Point.Add(t.Offset)
	// Direction is unchanged, so the normal and face flag carry over
	return hit, true
}

// BoundingBox returns the child box shifted by the offset
func (t *Translate) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	box, ok := t.Shape.BoundingBox(time0, time1)
	if !ok {
		return core.AABB{}, false
	}
	return box.Translate(t.Offset), true
}

// RotateY rotates a shape about the Y axis
type RotateY struct {
	Shape    Shape
	sinTheta float64
	cosTheta float64
	box      core.AABB
	hasBox   bool
}

// NewRotateY wraps shape rotated by angle degrees about the Y axis.
// The bounding box is computed once over [0, 1] from the eight rotated
// corners of the child's box, which is conservative but not tight.
func NewRotateY(shape Shape, angle float64) *RotateY {
	radians := angle * math.Pi / 180
	r := &RotateY{
		Shape:    shape,
		sinTheta: math.Sin(radians),
		cosTheta: math.Cos(radians),
	}

	childBox, ok := shape.BoundingBox(0, 1)
	if !ok {
		return r
	}

	corners := childBox.Corners()
	for i, corner := range corners {
		corners[i] = r.toWorld(corner)
	}
	r.box = core.NewAABBFromPoints(corners[:]...)
	r.hasBox = true
	return r
}

// toObject rotates a world-space vector by -theta
func (r *RotateY) toObject(v core.Vec3) core.Vec3 {
	return core.NewVec3(
		r.cosTheta*v.X-r.sinTheta*v.Z,
		v.Y,
		r.sinTheta*v.X+r.cosTheta*v.Z,
	)
}

// toWorld rotates an object-space vector by +theta
func (r *RotateY) toWorld(v core.Vec3) core.Vec3 {
	return core.NewVec3(
		r.cosTheta*v.X+r.sinTheta*v.Z,
		v.Y,
		-r.sinTheta*v.X+r.cosTheta*v.Z,
	)
}

// Hit rotates the ray into object space, delegates, and rotates the result back
func (r *RotateY) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*material.HitRecord, bool) {
	rotated := core.NewRayAt(r.toObject(ray.Origin), r.toObject(ray.Direction), ray.Time)

	hit, ok := r.Shape.Hit(rotated, tMin, tMax, sampler)
	if !ok {
		return nil, false
	}

	hit.Point = r.toWorld(hit.Point)
	hit.Normal = r.toWorld(hit.Normal)
	return hit, true
}

// BoundingBox returns the precomputed rotated bounds
func (r *RotateY) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	return r.box, r.hasBox
}
