package fractal

import (
	"errors"
	"fmt"

	"github.com/aquilax/go-perlin"
	"github.com/ojrac/opensimplex-go"
)

// Noise backend names accepted in field.backend.
const (
	BackendLibnoise = "libnoise"
	BackendPerlin   = "perlin"
	BackendSimplex  = "simplex"
)

// ErrUnknownBackend is returned for an unrecognised noise backend name.
var ErrUnknownBackend = errors.New("unknown noise backend")

// Field is a 3D coherent-noise function configured from one Params.
// Output is nominally in [-1, 1] but may overshoot for high persistence.
// Implementations must be safe for concurrent Eval3 calls.
type Field interface {
	Eval3(x, y, z float64) float64
}

// FieldFactory builds a Field for a parameter set.
type FieldFactory func(p Params) Field

// Backends lists the supported backend names.
func Backends() []string {
	return []string{BackendLibnoise, BackendPerlin, BackendSimplex}
}

// NewFieldFactory returns the factory for the named backend.
func NewFieldFactory(backend string) (FieldFactory, error) {
	switch backend {
	case BackendLibnoise, "":
		return func(p Params) Field { return newLibnoiseField(p) }, nil
	case BackendPerlin:
		return func(p Params) Field { return newPerlinField(p) }, nil
	case BackendSimplex:
		return func(p Params) Field { return newSimplexField(p) }, nil
	}
	return nil, fmt.Errorf("%w: %q (want one of %v)", ErrUnknownBackend, backend, Backends())
}

// perlinField wraps go-perlin, which weights octave i by 1/alpha^i and
// multiplies coordinates by beta per octave.
type perlinField struct {
	frequency float64
	noise     *perlin.Perlin
}

func newPerlinField(p Params) *perlinField {
	alpha := 2.0
	if p.Persistence > 0 {
		alpha = 1 / p.Persistence
	}
	return &perlinField{
		frequency: p.Frequency,
		noise:     perlin.NewPerlin(alpha, p.Lacunarity, int32(p.Octaves), int64(p.Seed)),
	}
}

func (f *perlinField) Eval3(x, y, z float64) float64 {
	return f.noise.Noise3D(x*f.frequency, y*f.frequency, z*f.frequency)
}

// simplexField is an OpenSimplex FBM normalized by the amplitude sum.
type simplexField struct {
	frequency   float64
	lacunarity  float64
	persistence float64
	octaves     int
	norm        float64
	noise       opensimplex.Noise
}

func newSimplexField(p Params) *simplexField {
	f := &simplexField{
		frequency:   p.Frequency,
		lacunarity:  p.Lacunarity,
		persistence: p.Persistence,
		octaves:     p.Octaves,
		noise:       opensimplex.New(int64(p.Seed)),
	}
	amp := 1.0
	for i := 0; i < p.Octaves; i++ {
		f.norm += amp
		amp *= p.Persistence
	}
	if f.norm == 0 {
		f.norm = 1
	}
	return f
}

func (f *simplexField) Eval3(x, y, z float64) float64 {
	var total float64
	freq := f.frequency
	amp := 1.0
	for i := 0; i < f.octaves; i++ {
		total += f.noise.Eval3(x*freq, y*freq, z*freq) * amp
		freq *= f.lacunarity
		amp *= f.persistence
	}
	return total / f.norm
}
