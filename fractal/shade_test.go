package fractal

import (
	"image/color"
	"math"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{-1, 0},
		{0, 0.5},
		{1, 1},
	}
	for _, tc := range tests {
		if got := Normalize(tc.in); got != tc.want {
			t.Errorf("Normalize(%f) = %f, want %f", tc.in, got, tc.want)
		}
	}
}

func TestBreathing(t *testing.T) {
	if b := Breathing(0, 2); b != 0.5 {
		t.Errorf("Breathing(0) = %f, want 0.5", b)
	}
	if b := Breathing(math.Pi/4, 2); math.Abs(b-1) > 1e-12 {
		t.Errorf("Breathing(pi/4) = %f, want 1", b)
	}
	if b := Breathing(3*math.Pi/4, 2); math.Abs(b) > 1e-12 {
		t.Errorf("Breathing(3pi/4) = %f, want 0", b)
	}
}

func TestShade(t *testing.T) {
	weights := DefaultShading().Weights
	red := [3]float32{1, 0, 0}

	tests := []struct {
		name string
		base [3]float32
		v, b float64
		want color.RGBA
	}{
		{"full noise", red, 1, 0.5, color.RGBA{255, 0, 0, 255}},
		{"no noise", red, 0, 0.5, color.RGBA{127, 102, 76, 255}},
		{"dark breath", red, 0, 0, color.RGBA{0, 0, 0, 255}},
		{"bright breath", [3]float32{0, 0, 0}, 0, 1, color.RGBA{255, 204, 153, 255}},
		// Out-of-range noise still lands in byte range
		{"overshoot high", [3]float32{1, 1, 1}, 1.7, 1, color.RGBA{255, 255, 255, 255}},
		{"overshoot low", [3]float32{1, 1, 1}, -0.6, 0, color.RGBA{0, 0, 0, 255}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Shade(tc.base, tc.v, tc.b, weights)
			if got != tc.want {
				t.Errorf("Shade = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestToByteClamps(t *testing.T) {
	nan := float32(math.NaN())
	tests := []struct {
		in   float32
		want uint8
	}{
		{-3, 0},
		{0, 0},
		{0.5, 127},
		{1, 255},
		{42, 255},
		{nan, 0},
	}
	for _, tc := range tests {
		if got := toByte(tc.in); got != tc.want {
			t.Errorf("toByte(%f) = %d, want %d", tc.in, got, tc.want)
		}
	}
}
