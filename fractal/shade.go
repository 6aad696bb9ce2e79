package fractal

import (
	"image/color"
	"math"
)

// Shading controls how a normalized noise value becomes a color.
type Shading struct {
	BreathingFreq float64
	Weights       [3]float32 // Breathing weight per R, G, B
}

// DefaultShading returns the stock breathing frequency and channel weights.
func DefaultShading() Shading {
	return Shading{
		BreathingFreq: 2,
		Weights:       [3]float32{1.0, 0.8, 0.6},
	}
}

// Normalize maps noise output from [-1, 1] to [0, 1]. Values outside the
// nominal range are passed through and clamped per channel later.
func Normalize(n float64) float64 {
	return (n + 1) / 2
}

// Breathing is the global brightness oscillation for time t. It does not
// depend on pixel position.
func Breathing(t, freq float64) float64 {
	return 0.5 + 0.5*math.Sin(t*freq)
}

// Shade blends the base color with the breathing term:
// c = base*v + (1-v)*b*weight, clamped to [0, 1] and scaled to a byte.
func Shade(base [3]float32, v, b float64, weights [3]float32) color.RGBA {
	fv := float32(v)
	fb := float32(b)
	var out [3]uint8
	for c := 0; c < 3; c++ {
		out[c] = toByte(base[c]*fv + (1-fv)*fb*weights[c])
	}
	return color.RGBA{R: out[0], G: out[1], B: out[2], A: 255}
}

func toByte(c float32) uint8 {
	if c > 1 {
		c = 1
	}
	if c < 0 || c != c {
		c = 0
	}
	return uint8(c * 255)
}
