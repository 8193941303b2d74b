package scene

import (
	"math/rand"

	"golang.org/x/xerrors"
)

// ErrUnknownScene is returned when no scene is registered under an ID
var ErrUnknownScene = xerrors.New("unknown scene")

// Builder constructs a scene, drawing any randomness from random
type Builder func(random *rand.Rand) *Scene

// Entry is a registered scene
type Entry struct {
	ID    int
	Name  string
	Build Builder
}

// registry lists the reference scenes in ID order
var registry = []Entry{
	{1, "random_scene", NewRandomScene},
	{2, "two_spheres", NewTwoSpheresScene},
	{3, "two_perlin_spheres", NewTwoPerlinSpheresScene},
	{4, "earth", NewEarthScene},
	{5, "simple_light", NewSimpleLightScene},
	{6, "empty_cornell_box", NewEmptyCornellScene},
	{7, "cornell_box", NewCornellScene},
	{8, "smoke_cornell_box", NewSmokeCornellScene},
	{9, "final_scene", NewFinalScene},
}

// List returns the registered scenes in ID order
func List() []Entry {
	entries := make([]Entry, len(registry))
	copy(entries, registry)
	return entries
}

// Lookup returns the registry entry for id
func Lookup(id int) (Entry, error) {
	for _, entry := range registry {
		if entry.ID == id {
			return entry, nil
		}
	}
	return Entry{}, xerrors.Errorf("scene %d: %w", id, ErrUnknownScene)
}

// Build constructs the scene registered under id
func Build(id int, random *rand.Rand) (*Scene, error) {
	entry, err := Lookup(id)
	if err != nil {
		return nil, err
	}
	return entry.Build(random), nil
}
