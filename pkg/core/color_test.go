package core

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestColor_Operations(t *testing.T) {
	a := NewColor(0.25, 0.5, 1)
	b := NewColor(2, 2, 0.5)

	tests := []struct {
		name     string
		got      Color
		expected Color
	}{
		{"Add", a.Add(b), NewColor(2.25, 2.5, 1.5)},
		{"Multiply", a.Multiply(2), NewColor(0.5, 1, 2)},
		{"MultiplyColor", a.MultiplyColor(b), NewColor(0.5, 1, 0.5)},
		{"Divide", b.Divide(2), NewColor(1, 1, 0.25)},
		{"Sqrt", a.Sqrt(), NewColor(0.5, 0.7071067811865476, 1)},
		{"Clamp", NewColor(-1, 0.5, 3).Clamp(0, 0.999), NewColor(0, 0.5, 0.999)},
		{"Clamp NaN", NewColor(math.NaN(), 2, 0.25).Clamp(0, 1), NewColor(0, 1, 0.25)},
		{"FromBytes", ColorFromBytes([]uint8{255, 0, 51, 255}, 1.0/255), NewColor(1, 0, 0.2)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.expected, tt.got, cmpopts.EquateApprox(0, 1e-12)); diff != "" {
				t.Errorf("unexpected color (-want +got):\n%s", diff)
			}
		})
	}
}

func TestColor_IsBlack(t *testing.T) {
	if !RepeatColor(0).IsBlack() {
		t.Error("Expected zero color to be black")
	}
	if NewColor(0, 0, 0.01).IsBlack() {
		t.Error("Expected non-zero color to not be black")
	}
}
