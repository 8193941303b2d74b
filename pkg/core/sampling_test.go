package core

import (
	"math"
	"testing"
)

func TestSamplePointInUnitSphere(t *testing.T) {
	sampler := NewSeededSampler(42)
	for i := 0; i < 1000; i++ {
		p := SamplePointInUnitSphere(sampler.Get3D())
		if p.Length() > 1+1e-9 {
			t.Fatalf("Point %v lies outside the unit sphere", p)
		}
	}
}

func TestSamplePointInUnitDisk(t *testing.T) {
	sampler := NewSeededSampler(42)
	for i := 0; i < 1000; i++ {
		p := SamplePointInUnitDisk(sampler.Get2D())
		if p.Z != 0 {
			t.Fatalf("Disk sample %v has non-zero z", p)
		}
		if p.Length() > 1+1e-9 {
			t.Fatalf("Point %v lies outside the unit disk", p)
		}
	}

	if center := SamplePointInUnitDisk(NewVec2(0.5, 0.5)); center != (Vec3{}) {
		t.Errorf("Expected center sample to map to origin, got %v", center)
	}
}

func TestSeededSamplerDeterministic(t *testing.T) {
	a := NewSeededSampler(7)
	b := NewSeededSampler(7)
	for i := 0; i < 10; i++ {
		if a.Get1D() != b.Get1D() {
			t.Fatal("Expected identical sequences for identical seeds")
		}
	}
}

func TestRandomInRange(t *testing.T) {
	sampler := NewSeededSampler(1)
	for i := 0; i < 100; i++ {
		v := RandomInRange(sampler, -2, 3)
		if v < -2 || v >= 3 || math.IsNaN(v) {
			t.Fatalf("Value %f outside [-2, 3)", v)
		}
	}
}
