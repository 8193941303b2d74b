package scene

import (
	"context"
	"math/rand"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/xerrors"

	"github.com/df07/go-nextweek-raytracer/pkg/core"
	"github.com/df07/go-nextweek-raytracer/pkg/material"
	"github.com/df07/go-nextweek-raytracer/pkg/renderer"
)

func TestRegistryBuildsEveryScene(t *testing.T) {
	tests := []struct {
		id     int
		name   string
		shapes int // 0 means "at least one"
	}{
		{1, "random_scene", 0},
		{2, "two_spheres", 2},
		{3, "two_perlin_spheres", 2},
		{4, "earth", 1},
		{5, "simple_light", 3},
		{6, "empty_cornell_box", 6},
		{7, "cornell_box", 8},
		{8, "smoke_cornell_box", 8},
		{9, "final_scene", 11},
	}

	if got := len(List()); got != len(tests) {
		t.Fatalf("List() returned %d scenes, want %d", got, len(tests))
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			random := rand.New(rand.NewSource(42))
			s, err := Build(tt.id, random)
			if err != nil {
				t.Fatalf("Build(%d) failed: %v", tt.id, err)
			}
			if s.Name != tt.name {
				t.Errorf("Name = %q, want %q", s.Name, tt.name)
			}
			if tt.shapes > 0 && s.GetPrimitiveCount() != tt.shapes {
				t.Errorf("GetPrimitiveCount() = %d, want %d", s.GetPrimitiveCount(), tt.shapes)
			}
			if s.GetPrimitiveCount() == 0 {
				t.Fatal("scene has no shapes")
			}

			s.Preprocess(random)
			box, ok := s.World().BoundingBox(s.CameraConfig.OpenTime, s.CameraConfig.CloseTime)
			if !ok {
				t.Fatal("preprocessed world has no bounding box")
			}
			if !box.IsValid() {
				t.Errorf("world bounding box is inverted: %+v", box)
			}
		})
	}
}

func TestRandomSceneLayout(t *testing.T) {
	s := NewRandomScene(rand.New(rand.NewSource(7)))

	// Ground, at most 22x22 small spheres, three large spheres
	if n := s.GetPrimitiveCount(); n < 4 || n > 1+22*22+3 {
		t.Errorf("GetPrimitiveCount() = %d, out of range", n)
	}
	if s.CameraConfig.Aperture != 0.1 {
		t.Errorf("Aperture = %v, want 0.1", s.CameraConfig.Aperture)
	}

	// Same seed builds the same scene
	again := NewRandomScene(rand.New(rand.NewSource(7)))
	if again.GetPrimitiveCount() != s.GetPrimitiveCount() {
		t.Errorf("rebuilding with the same seed gave %d shapes, want %d",
			again.GetPrimitiveCount(), s.GetPrimitiveCount())
	}
	box, _ := worldBox(s)
	boxAgain, _ := worldBox(again)
	if diff := cmp.Diff(box, boxAgain); diff != "" {
		t.Errorf("bounding box differs between identical builds (-first +second):\n%s", diff)
	}
}

func worldBox(s *Scene) (core.AABB, bool) {
	return s.World().BoundingBox(0, 1)
}

func TestLookupUnknownScene(t *testing.T) {
	for _, id := range []int{-1, 0, 10} {
		_, err := Lookup(id)
		if !xerrors.Is(err, ErrUnknownScene) {
			t.Errorf("Lookup(%d) error = %v, want ErrUnknownScene", id, err)
		}
		if _, err := Build(id, rand.New(rand.NewSource(1))); !xerrors.Is(err, ErrUnknownScene) {
			t.Errorf("Build(%d) error = %v, want ErrUnknownScene", id, err)
		}
	}
}

func TestRenderConfig(t *testing.T) {
	random := rand.New(rand.NewSource(1))
	tests := []struct {
		name     string
		scene    *Scene
		override renderer.SamplingConfig
		want     [3]int // width, height, samples
	}{
		{"defaults", NewTwoSpheresScene(random), renderer.SamplingConfig{}, [3]int{400, 225, 100}},
		{"simple light samples", NewSimpleLightScene(random), renderer.SamplingConfig{}, [3]int{400, 225, 400}},
		{"cornell", NewCornellScene(random), renderer.SamplingConfig{}, [3]int{600, 600, 200}},
		{"final", NewFinalScene(random), renderer.SamplingConfig{}, [3]int{800, 800, 10000}},
		{"width override", NewTwoSpheresScene(random), renderer.SamplingConfig{Width: 200}, [3]int{200, 112, 100}},
		{"cornell override", NewCornellScene(random), renderer.SamplingConfig{Width: 64, SamplesPerPixel: 3}, [3]int{64, 64, 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := tt.scene.RenderConfig(tt.override)
			got := [3]int{config.Width, config.Height, config.SamplesPerPixel}
			if got != tt.want {
				t.Errorf("RenderConfig() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEarthFallsBackToCyan(t *testing.T) {
	saved := EarthTexturePath
	EarthTexturePath = filepath.Join(t.TempDir(), "missing.png")
	defer func() { EarthTexturePath = saved }()

	s := NewEarthScene(rand.New(rand.NewSource(1)))
	sampler := core.NewSeededSampler(1)

	ray := core.NewRay(core.NewVec3(0, 0, 10), core.NewVec3(0, 0, -1))
	hit, ok := s.World().Hit(ray, 0.001, 1e9, sampler)
	if !ok {
		t.Fatal("ray at the earth missed")
	}
	result, ok := hit.Material.Scatter(ray, *hit, sampler)
	if !ok {
		t.Fatal("earth material absorbed the ray")
	}
	if diff := cmp.Diff(material.MissingTextureColor, result.Attenuation); diff != "" {
		t.Errorf("attenuation mismatch (-want +got):\n%s", diff)
	}
}

func TestCornellRenders(t *testing.T) {
	random := rand.New(rand.NewSource(3))
	s := NewCornellScene(random)
	s.Preprocess(random)

	config := s.RenderConfig(renderer.SamplingConfig{Width: 16, SamplesPerPixel: 2, MaxDepth: 5, NumWorkers: 2})
	img, stats, err := s.NewRaytracer(config, nil).Render(context.Background())
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 16 || b.Dy() != 16 {
		t.Errorf("image is %dx%d, want 16x16", b.Dx(), b.Dy())
	}
	if stats.TotalSamples != 16*16*2 {
		t.Errorf("TotalSamples = %d, want %d", stats.TotalSamples, 16*16*2)
	}
}
