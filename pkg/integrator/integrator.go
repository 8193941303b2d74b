package integrator

import (
	"github.com/df07/go-nextweek-raytracer/pkg/core"
	"github.com/df07/go-nextweek-raytracer/pkg/geometry"
)

// Integrator defines the interface for light transport algorithms
type Integrator interface {
	// RayColor computes the radiance arriving along ray from world
	RayColor(ray core.Ray, world geometry.Shape, sampler core.Sampler) core.Color
}

// Background gives the radiance of rays that escape the scene
type Background interface {
	Color(ray core.Ray) core.Color
}

// SolidBackground returns the same color in every direction
type SolidBackground struct {
	Value core.Color
}

// NewSolidBackground creates a constant background
func NewSolidBackground(color core.Color) SolidBackground {
	return SolidBackground{Value: color}
}

// Color returns the constant background color
func (b SolidBackground) Color(ray core.Ray) core.Color {
	return b.Value
}

// GradientBackground blends from Bottom to Top by the height of the ray direction
type GradientBackground struct {
	Top    core.Color
	Bottom core.Color
}

// NewGradientBackground creates a vertical sky gradient
func NewGradientBackground(top, bottom core.Color) GradientBackground {
	return GradientBackground{Top: top, Bottom: bottom}
}

// Color lerps between the two colors by the Y of the unit direction
func (b GradientBackground) Color(ray core.Ray) core.Color {
	t := 0.5 * (ray.Direction.Normalize().Y + 1.0)
	return b.Bottom.Multiply(1.0 - t).Add(b.Top.Multiply(t))
}
