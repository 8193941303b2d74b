package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-nextweek-raytracer/pkg/core"
	"github.com/df07/go-nextweek-raytracer/pkg/material"
)

func TestConstantMedium_ZeroDensityNeverHits(t *testing.T) {
	boundary := NewBox(core.NewVec3(0, 0, 0), core.NewVec3(1, 1, 1), nil)
	medium := NewConstantMedium(boundary, 0, core.NewColor(1, 1, 1))
	sampler := core.NewSeededSampler(42)

	hits := 0
	for i := 0; i < 1000; i++ {
		origin := core.NewVec3(sampler.Get1D(), sampler.Get1D(), -2)
		if _, ok := medium.Hit(core.NewRay(origin, core.NewVec3(0, 0, 1)), 0.001, math.Inf(1), sampler); ok {
			hits++
		}
	}
	if hits != 0 {
		t.Errorf("Expected no scattering in an empty medium, got %d/1000 hits", hits)
	}
}

func TestConstantMedium_HitRateFollowsDensity(t *testing.T) {
	boundary := NewBox(core.NewVec3(0, 0, 0), core.NewVec3(1, 1, 1), nil)
	density := 1.0
	medium := NewConstantMedium(boundary, density, core.NewColor(1, 1, 1))
	sampler := core.NewSeededSampler(42)

	const n = 4000
	hits := 0
	for i := 0; i < n; i++ {
		ray := core.NewRay(core.NewVec3(0.5, 0.5, -2), core.NewVec3(0, 0, 1))
		hit, ok := medium.Hit(ray, 0.001, math.Inf(1), sampler)
		if !ok {
			continue
		}
		hits++
		if hit.T < 2 || hit.T > 3 {
			t.Fatalf("Scatter at t=%f outside the boundary [2, 3]", hit.T)
		}
		if _, isotropic := hit.Material.(*material.Isotropic); !isotropic {
			t.Fatalf("Expected isotropic phase function, got %T", hit.Material)
		}
	}

	// Probability of scattering within one unit is 1 - e^-1
	expected := 1 - math.Exp(-density)
	rate := float64(hits) / n
	if math.Abs(rate-expected) > 0.03 {
		t.Errorf("Expected hit rate near %f, got %f", expected, rate)
	}
}

func TestConstantMedium_RayStartingInside(t *testing.T) {
	boundary := NewSphere(core.Vec3{}, 1, nil)
	medium := NewConstantMedium(boundary, 1000, core.NewColor(1, 1, 1))

	hit, ok := medium.Hit(core.NewRay(core.Vec3{}, core.NewVec3(1, 0, 0)), 0.001, math.Inf(1), core.NewSeededSampler(1))
	if !ok {
		t.Fatal("Expected a dense medium to scatter a ray starting inside")
	}
	if hit.T < 0.001 || hit.T > 1 {
		t.Errorf("Expected scatter between origin and exit, got t=%f", hit.T)
	}
}

func TestConstantMedium_IntervalBeforeBoundary(t *testing.T) {
	boundary := NewSphere(core.NewVec3(0, 0, -10), 1, nil)
	medium := NewConstantMedium(boundary, 1000, core.NewColor(1, 1, 1))

	ray := core.NewRay(core.Vec3{}, core.NewVec3(0, 0, -1))
	if _, ok := medium.Hit(ray, 0.001, 5, core.NewSeededSampler(1)); ok {
		t.Error("Expected no hit when tMax ends before the medium")
	}
}
