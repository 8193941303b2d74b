package geometry

import (
	"math/rand"
	"sort"

	"github.com/golang/glog"

	"github.com/df07/go-nextweek-raytracer/pkg/core"
	"github.com/df07/go-nextweek-raytracer/pkg/material"
)

// BVHNode is an interior node of the bounding volume hierarchy. Children
// are either shapes or further nodes; a single shape is stored as both
// children.
type BVHNode struct {
	Left  Shape
	Right Shape
	Box   core.AABB
}

// BVH is a bounding volume hierarchy over a fixed set of shapes. It is
// immutable once built and safe for concurrent Hit calls.
type BVH struct {
	Root *BVHNode // nil for an empty hierarchy
}

// NewBVH builds a hierarchy over shapes, with bounding boxes valid over
// [time0, time1]. Split axes are drawn from random. The input slice is not
// modified.
func NewBVH(shapes []Shape, time0, time1 float64, random *rand.Rand) *BVH {
	if len(shapes) == 0 {
		return &BVH{}
	}

	// Work on a copy so callers can keep using their slice
	shapesCopy := make([]Shape, len(shapes))
	copy(shapesCopy, shapes)

	b := &bvhBuilder{time0: time0, time1: time1, random: random}
	return &BVH{Root: b.build(shapesCopy)}
}

type bvhBuilder struct {
	time0, time1 float64
	random       *rand.Rand
}

// build recursively splits shapes at the median of the box minimums along a
// random axis. shapes is sorted in place.
func (b *bvhBuilder) build(shapes []Shape) *BVHNode {
	axis := b.random.Intn(3)
	node := &BVHNode{}

	switch len(shapes) {
	case 1:
		node.Left = shapes[0]
		node.Right = shapes[0]
	case 2:
		if b.boxMin(shapes[0], axis) <= b.boxMin(shapes[1], axis) {
			node.Left, node.Right = shapes[0], shapes[1]
		} else {
			node.Left, node.Right = shapes[1], shapes[0]
		}
	default:
		sort.Slice(shapes, func(i, j int) bool {
			return b.boxMin(shapes[i], axis) < b.boxMin(shapes[j], axis)
		})
		mid := len(shapes) / 2
		node.Left = b.build(shapes[:mid])
		node.Right = b.build(shapes[mid:])
	}

	node.Box = b.box(node.Left).Surrounding(b.box(node.Right))
	return node
}

// box returns the shape's bounding box, or an empty box with a warning when
// the shape is unbounded
func (b *bvhBuilder) box(shape Shape) core.AABB {
	box, ok := shape.BoundingBox(b.time0, b.time1)
	if !ok {
		glog.Warningf("No bounding box in BVH construction for %T, using empty box", shape)
		return core.AABB{}
	}
	return box
}

func (b *bvhBuilder) boxMin(shape Shape, axis int) float64 {
	return b.box(shape).Min.At(axis)
}

// Hit tests if a ray intersects any shape in the BVH
func (bvh *BVH) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*material.HitRecord, bool) {
	if bvh.Root == nil {
		return nil, false
	}
	return bvh.Root.Hit(ray, tMin, tMax, sampler)
}

// BoundingBox returns the root box, or false for an empty hierarchy
func (bvh *BVH) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	if bvh.Root == nil {
		return core.AABB{}, false
	}
	return bvh.Root.Box, true
}

// Hit probes the left child, then the right child with the interval
// shortened to the left hit. A right hit is therefore always the closer one.
func (n *BVHNode) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*material.HitRecord, bool) {
	if !n.Box.Hit(ray, tMin, tMax) {
		return nil, false
	}

	leftHit, hitLeft := n.Left.Hit(ray, tMin, tMax, sampler)
	rightMax := tMax
	if hitLeft {
		rightMax = leftHit.T
	}
	if rightHit, hitRight := n.Right.Hit(ray, tMin, rightMax, sampler); hitRight {
		return rightHit, true
	}
	return leftHit, hitLeft
}

// BoundingBox returns the node's precomputed box
func (n *BVHNode) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	return n.Box, true
}
