package geometry

import (
	"math"

	"github.com/df07/go-nextweek-raytracer/pkg/core"
	"github.com/df07/go-nextweek-raytracer/pkg/material"
)

// rectThickness pads the flat axis of a rectangle's bounding box so that
// the box has non-zero volume
const rectThickness = 0.0001

// Plane selects which two axes span an axis-aligned rectangle.
// A and B are the in-plane axes, K the constant axis.
type Plane interface {
	Axes() (a, b, k int)
}

// XY is the plane z = k
type XY struct{}

// XZ is the plane y = k
type XZ struct{}

// YZ is the plane x = k
type YZ struct{}

func (XY) Axes() (int, int, int) { return 0, 1, 2 }
func (XZ) Axes() (int, int, int) { return 0, 2, 1 }
func (YZ) Axes() (int, int, int) { return 1, 2, 0 }

// Rect is an axis-aligned rectangle spanning [A0, A1]×[B0, B1] on the
// plane selected by P, offset K along the remaining axis
type Rect[P Plane] struct {
	A0, A1   float64
	B0, B1   float64
	K        float64
	Material material.Material
}

// NewRect creates an axis-aligned rectangle
func NewRect[P Plane](a0, a1, b0, b1, k float64, material material.Material) *Rect[P] {
	return &Rect[P]{A0: a0, A1: a1, B0: b0, B1: b1, K: k, Material: material}
}

// NewXYRect creates a rectangle on the plane z = k
func NewXYRect(x0, x1, y0, y1, k float64, material material.Material) *Rect[XY] {
	return NewRect[XY](x0, x1, y0, y1, k, material)
}

// NewXZRect creates a rectangle on the plane y = k
func NewXZRect(x0, x1, z0, z1, k float64, material material.Material) *Rect[XZ] {
	return NewRect[XZ](x0, x1, z0, z1, k, material)
}

// NewYZRect creates a rectangle on the plane x = k
func NewYZRect(y0, y1, z0, z1, k float64, material material.Material) *Rect[YZ] {
	return NewRect[YZ](y0, y1, z0, z1, k, material)
}

// Hit intersects the ray with the plane and checks the rectangle extents
func (r *Rect[P]) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*material.HitRecord, bool) {
	var plane P
	axisA, axisB, axisK := plane.Axes()

	// A ray parallel to the plane gives an infinite or NaN t
	t := (r.K - ray.Origin.At(axisK)) / ray.Direction.At(axisK)
	if math.IsInf(t, 0) || !(t >= tMin && t <= tMax) {
		return nil, false
	}

	point := ray.At(t)
	a := point.At(axisA)
	b := point.At(axisB)
	if !(a >= r.A0 && a <= r.A1 && b >= r.B0 && b <= r.B1) {
		return nil, false
	}

	hitRecord := &material.HitRecord{
		T:        t,
		Point:    point,
		UV:       core.NewVec2((a-r.A0)/(r.A1-r.A0), (b-r.B0)/(r.B1-r.B0)),
		Material: r.Material,
	}
	hitRecord.SetFaceNormal(ray, core.Vec3{}.WithAxis(axisK, 1))

	return hitRecord, true
}

// BoundingBox returns the rectangle extents padded along the flat axis
func (r *Rect[P]) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	var plane P
	axisA, axisB, axisK := plane.Axes()

	min := core.Vec3{}.
		WithAxis(axisA, r.A0).
		WithAxis(axisB, r.B0).
		WithAxis(axisK, r.K-rectThickness)
	max := core.Vec3{}.
		WithAxis(axisA, r.A1).
		WithAxis(axisB, r.B1).
		WithAxis(axisK, r.K+rectThickness)

	return core.NewAABB(min, max), true
}
