package geometry_test

import (
	"math"
	"testing"

	"inkwell/internal/geometry"
)

func TestClampUnit(t *testing.T) {
	cases := []struct {
		name     string
		input    float64
		expected float64
	}{
		{"in range", 0.42, 0.42},
		{"zero", 0, 0},
		{"one", 1, 1},
		{"negative", -0.5, 0},
		{"above one", 5, 1},
		{"nan", math.NaN(), 0},
		{"positive inf", math.Inf(1), 0},
		{"negative inf", math.Inf(-1), 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := geometry.ClampUnit(tc.input); got != tc.expected {
				t.Fatalf("ClampUnit(%v) = %v, want %v", tc.input, got, tc.expected)
			}
		})
	}
}

func TestCoerceFinite(t *testing.T) {
	if got := geometry.CoerceFinite(-270.5); got != -270.5 {
		t.Fatalf("expected rotation preserved, got %v", got)
	}
	if got := geometry.CoerceFinite(math.NaN()); got != 0 {
		t.Fatalf("expected NaN coerced to 0, got %v", got)
	}
	if got := geometry.CoerceFinite(math.Inf(1)); got != 0 {
		t.Fatalf("expected Inf coerced to 0, got %v", got)
	}
}

func TestClampUnitBox(t *testing.T) {
	x, y, w, h := -0.5, 0.25, 5.0, math.NaN()
	geometry.ClampUnitBox(&x, &y, &w, &h)
	if x != 0 || y != 0.25 || w != 1 || h != 0 {
		t.Fatalf("unexpected clamp result: %v %v %v %v", x, y, w, h)
	}
}
