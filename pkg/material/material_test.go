package material

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/df07/go-nextweek-raytracer/pkg/core"
)

func upHit() HitRecord {
	return HitRecord{
		Point:     core.NewVec3(0, 0, 0),
		Normal:    core.NewVec3(0, 1, 0),
		T:         1,
		FrontFace: true,
	}
}

func TestLambertian_AlwaysScatters(t *testing.T) {
	albedo := core.NewColor(0.5, 0.7, 0.9)
	lambertian := NewLambertian(albedo)
	sampler := core.NewSeededSampler(42)
	ray := core.NewRayAt(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0), 0.25)

	for i := 0; i < 100; i++ {
		scatter, didScatter := lambertian.Scatter(ray, upHit(), sampler)
		if !didScatter {
			t.Fatal("Lambertian should always scatter")
		}
		if scatter.Attenuation != albedo {
			t.Fatalf("Expected attenuation %v, got %v", albedo, scatter.Attenuation)
		}
		// normal + unit sphere sample stays in the upper hemisphere
		if scatter.Scattered.Direction.Y < 0 {
			t.Fatalf("Scattered direction %v points below the surface", scatter.Scattered.Direction)
		}
		if scatter.Scattered.Time != 0.25 {
			t.Fatalf("Expected scattered ray to keep time 0.25, got %f", scatter.Scattered.Time)
		}
	}
}

func TestMetal_PerfectReflection(t *testing.T) {
	metal := NewMetal(core.NewColor(0.8, 0.8, 0.8), 0)
	ray := core.NewRay(core.NewVec3(-1, 1, 0), core.NewVec3(1, -1, 0))

	scatter, ok := metal.Scatter(ray, upHit(), core.NewSeededSampler(1))
	if !ok {
		t.Fatal("Expected mirror reflection")
	}
	expected := core.NewVec3(1, 1, 0).Normalize()
	if scatter.Scattered.Direction.Subtract(expected).Length() > 1e-12 {
		t.Errorf("Expected direction %v, got %v", expected, scatter.Scattered.Direction)
	}
}

func TestMetal_AbsorbsBelowSurface(t *testing.T) {
	metal := NewMetal(core.NewColor(0.8, 0.8, 0.8), 1)
	// Grazing ray: the fuzz sphere pushes many reflections under the surface
	ray := core.NewRay(core.NewVec3(-1, 0.01, 0), core.NewVec3(1, -0.01, 0))
	sampler := core.NewSeededSampler(3)

	absorbed := 0
	for i := 0; i < 200; i++ {
		scatter, ok := metal.Scatter(ray, upHit(), sampler)
		if !ok {
			absorbed++
			continue
		}
		if scatter.Scattered.Direction.Dot(upHit().Normal) <= 0 {
			t.Fatalf("Metal returned a scattered ray below the surface: %v", scatter.Scattered.Direction)
		}
	}
	if absorbed == 0 {
		t.Error("Expected some grazing rays to be absorbed")
	}
}

func TestMetal_ClampsFuzz(t *testing.T) {
	if NewMetal(core.Color{}, 3).Fuzzness != 1 {
		t.Error("Expected fuzz above 1 to clamp to 1")
	}
	if NewMetal(core.Color{}, -1).Fuzzness != 0 {
		t.Error("Expected negative fuzz to clamp to 0")
	}
}

func TestDielectric_AlwaysScattersWhite(t *testing.T) {
	glass := NewDielectric(1.5)
	sampler := core.NewSeededSampler(42)

	tests := []struct {
		name      string
		direction core.Vec3
		frontFace bool
	}{
		{"normal incidence entering", core.NewVec3(0, -1, 0), true},
		{"oblique entering", core.NewVec3(1, -1, 0), true},
		{"grazing exiting", core.NewVec3(1, -0.05, 0), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit := upHit()
			hit.FrontFace = tt.frontFace
			for i := 0; i < 50; i++ {
				scatter, ok := glass.Scatter(core.NewRay(core.NewVec3(0, 1, 0), tt.direction), hit, sampler)
				if !ok {
					t.Fatal("Dielectric should never absorb")
				}
				if diff := cmp.Diff(core.RepeatColor(1), scatter.Attenuation); diff != "" {
					t.Fatalf("unexpected attenuation (-want +got):\n%s", diff)
				}
			}
		})
	}
}

func TestDielectric_TotalInternalReflection(t *testing.T) {
	glass := NewDielectric(1.5)
	hit := upHit()
	hit.FrontFace = false
	incoming := core.NewVec3(1, -0.05, 0)

	scatter, _ := glass.Scatter(core.NewRay(core.NewVec3(0, 1, 0), incoming), hit, core.NewSeededSampler(1))
	expected := incoming.Normalize().Reflect(hit.Normal)
	if scatter.Scattered.Direction.Subtract(expected).Length() > 1e-12 {
		t.Errorf("Expected reflection %v, got %v", expected, scatter.Scattered.Direction)
	}
}

func TestReflectance(t *testing.T) {
	// Normal incidence on glass is r0 = 0.04
	if r := Reflectance(1, 1.5); math.Abs(r-0.04) > 1e-12 {
		t.Errorf("Expected 0.04 at normal incidence, got %f", r)
	}
	// Grazing incidence reflects everything
	if r := Reflectance(0, 1.5); math.Abs(r-1) > 1e-12 {
		t.Errorf("Expected 1 at grazing incidence, got %f", r)
	}
}

func TestDiffuseLight(t *testing.T) {
	light := NewDiffuseLight(core.NewColor(4, 4, 4))

	if _, ok := light.Scatter(core.NewRay(core.Vec3{}, core.NewVec3(0, -1, 0)), upHit(), core.NewSeededSampler(1)); ok {
		t.Error("Diffuse light should never scatter")
	}
	if got := light.Emitted(core.NewVec2(0.5, 0.5), core.Vec3{}); got != core.NewColor(4, 4, 4) {
		t.Errorf("Expected emission (4,4,4), got %v", got)
	}
}

func TestNonEmittersAreBlack(t *testing.T) {
	materials := map[string]Material{
		"lambertian": NewLambertian(core.NewColor(1, 1, 1)),
		"metal":      NewMetal(core.NewColor(1, 1, 1), 0),
		"dielectric": NewDielectric(1.5),
		"isotropic":  NewIsotropic(core.NewColor(1, 1, 1)),
	}
	for name, m := range materials {
		t.Run(name, func(t *testing.T) {
			if !m.Emitted(core.Vec2{}, core.Vec3{}).IsBlack() {
				t.Errorf("%s should not emit light", name)
			}
		})
	}
}

func TestIsotropic_ScattersInAllDirections(t *testing.T) {
	iso := NewIsotropic(core.NewColor(0.2, 0.4, 0.9))
	sampler := core.NewSeededSampler(42)
	ray := core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0))

	below := 0
	for i := 0; i < 200; i++ {
		scatter, ok := iso.Scatter(ray, upHit(), sampler)
		if !ok {
			t.Fatal("Isotropic should always scatter")
		}
		if scatter.Attenuation != core.NewColor(0.2, 0.4, 0.9) {
			t.Fatalf("Unexpected attenuation %v", scatter.Attenuation)
		}
		if scatter.Scattered.Direction.Y < 0 {
			below++
		}
	}
	if below == 0 || below == 200 {
		t.Errorf("Expected directions on both sides of the normal, got %d/200 below", below)
	}
}

func TestSetFaceNormal(t *testing.T) {
	outward := core.NewVec3(0, 0, 1)

	var front HitRecord
	front.SetFaceNormal(core.NewRay(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, -1)), outward)
	if !front.FrontFace || front.Normal != outward {
		t.Errorf("Expected front face with outward normal, got %v %v", front.FrontFace, front.Normal)
	}

	var back HitRecord
	back.SetFaceNormal(core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 1)), outward)
	if back.FrontFace || back.Normal != outward.Negate() {
		t.Errorf("Expected back face with flipped normal, got %v %v", back.FrontFace, back.Normal)
	}
}
