package material

import (
	"math"

	"github.com/df07/go-nextweek-raytracer/pkg/core"
)

const perlinPointCount = 256

// Perlin is a gradient noise generator over a 256-entry lattice
type Perlin struct {
	gradients [perlinPointCount]core.Vec3
	permX     [perlinPointCount]int
	permY     [perlinPointCount]int
	permZ     [perlinPointCount]int
}

// NewPerlin builds random gradient and permutation tables
func NewPerlin(random core.Sampler) *Perlin {
	p := &Perlin{}
	for i := range p.gradients {
		g := random.Get3D()
		p.gradients[i] = core.NewVec3(2*g.X-1, 2*g.Y-1, 2*g.Z-1).Normalize()
	}
	generatePermutation(&p.permX, random)
	generatePermutation(&p.permY, random)
	generatePermutation(&p.permZ, random)
	return p
}

// generatePermutation fills perm with a Fisher-Yates shuffle of 0..n-1
func generatePermutation(perm *[perlinPointCount]int, random core.Sampler) {
	for i := range perm {
		perm[i] = i
	}
	for i := len(perm) - 1; i > 0; i-- {
		target := int(random.Get1D() * float64(i+1))
		perm[i], perm[target] = perm[target], perm[i]
	}
}

// Noise returns smoothed gradient noise in roughly [-1, 1]
func (p *Perlin) Noise(point core.Vec3) float64 {
	fx, fy, fz := math.Floor(point.X), math.Floor(point.Y), math.Floor(point.Z)
	u, v, w := point.X-fx, point.Y-fy, point.Z-fz
	i, j, k := int(fx), int(fy), int(fz)

	var c [2][2][2]core.Vec3
	for di := 0; di < 2; di++ {
		for dj := 0; dj < 2; dj++ {
			for dk := 0; dk < 2; dk++ {
				c[di][dj][dk] = p.gradients[p.permX[(i+di)&255]^p.permY[(j+dj)&255]^p.permZ[(k+dk)&255]]
			}
		}
	}

	return perlinInterpolation(&c, u, v, w)
}

// perlinInterpolation blends the eight corner gradients with Hermite smoothing
func perlinInterpolation(c *[2][2][2]core.Vec3, u, v, w float64) float64 {
	uu := u * u * (3 - 2*u)
	vv := v * v * (3 - 2*v)
	ww := w * w * (3 - 2*w)

	accum := 0.0
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			for k := 0; k < 2; k++ {
				fi, fj, fk := float64(i), float64(j), float64(k)
				weight := core.NewVec3(u-fi, v-fj, w-fk)
				accum += (fi*uu + (1-fi)*(1-uu)) *
					(fj*vv + (1-fj)*(1-vv)) *
					(fk*ww + (1-fk)*(1-ww)) *
					c[i][j][k].Dot(weight)
			}
		}
	}
	return accum
}

// Turbulence sums depth octaves of noise, halving the weight and doubling
// the frequency each time
func (p *Perlin) Turbulence(point core.Vec3, depth int) float64 {
	accum := 0.0
	weight := 1.0
	for i := 0; i < depth; i++ {
		accum += weight * p.Noise(point)
		weight *= 0.5
		point = point.Multiply(2)
	}
	return accum
}
