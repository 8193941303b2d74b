package material

import (
	"math"

	"github.com/df07/go-nextweek-raytracer/pkg/core"
)

// ColorSource provides spatially-varying colors for materials
type ColorSource interface {
	// Evaluate returns color at given UV coordinates and 3D point
	// UV is used for image textures, point for procedural textures
	Evaluate(uv core.Vec2, point core.Vec3) core.Color
}

// SolidColor provides uniform color
type SolidColor struct {
	Color core.Color
}

// NewSolidColor creates a new solid color source
func NewSolidColor(color core.Color) *SolidColor {
	return &SolidColor{Color: color}
}

// Evaluate returns the solid color regardless of UV or position
func (s *SolidColor) Evaluate(uv core.Vec2, point core.Vec3) core.Color {
	return s.Color
}

// CheckerTexture alternates between two color sources in a 3D checker
// pattern driven by the sign of sin(10x)·sin(10y)·sin(10z)
type CheckerTexture struct {
	Odd  ColorSource
	Even ColorSource
}

// NewCheckerTexture creates a checker texture from two color sources
func NewCheckerTexture(odd, even ColorSource) *CheckerTexture {
	return &CheckerTexture{Odd: odd, Even: even}
}

// NewSolidCheckerTexture creates a checker texture from two solid colors
func NewSolidCheckerTexture(odd, even core.Color) *CheckerTexture {
	return NewCheckerTexture(NewSolidColor(odd), NewSolidColor(even))
}

// Evaluate picks the odd or even source at the given point
func (c *CheckerTexture) Evaluate(uv core.Vec2, point core.Vec3) core.Color {
	sines := math.Sin(10*point.X) * math.Sin(10*point.Y) * math.Sin(10*point.Z)
	if sines < 0 {
		return c.Odd.Evaluate(uv, point)
	}
	return c.Even.Evaluate(uv, point)
}

// NoiseTexture is a marble-like pattern from Perlin turbulence
type NoiseTexture struct {
	Noise *Perlin
	Scale float64
}

// NewNoiseTexture creates a noise texture with its own Perlin tables
func NewNoiseTexture(scale float64, random core.Sampler) *NoiseTexture {
	return &NoiseTexture{Noise: NewPerlin(random), Scale: scale}
}

// Evaluate returns a gray level 0.5·(1 + sin(scale·z + 10·turb(p)))
func (n *NoiseTexture) Evaluate(uv core.Vec2, point core.Vec3) core.Color {
	return core.RepeatColor(0.5 * (1 + math.Sin(n.Scale*point.Z+10*n.Noise.Turbulence(point, 7))))
}
