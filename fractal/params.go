// Package fractal rasterizes an animated fractal-noise field into RGBA pixels.
package fractal

import (
	"log/slog"
	"math/rand"

	"github.com/pthm-cable/dreamscape/config"
)

// Params is one complete fractal configuration. Values are replaced
// wholesale, never edited in place once handed to a Generator.
type Params struct {
	Frequency   float64
	Octaves     int
	Amplitude   float64 // Carried for completeness; rasterization does not apply it
	Lacunarity  float64
	Persistence float64
	Seed        int32
	BaseColor   [3]float32 // RGB in [0, 1]
}

// LogValue implements slog.LogValuer for structured logging.
func (p Params) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Float64("frequency", p.Frequency),
		slog.Int("octaves", p.Octaves),
		slog.Float64("amplitude", p.Amplitude),
		slog.Float64("lacunarity", p.Lacunarity),
		slog.Float64("persistence", p.Persistence),
		slog.Int("seed", int(p.Seed)),
		slog.Any("base_color", p.BaseColor[:]),
	)
}

// Span is a closed sampling interval.
type Span struct {
	Min, Max float64
}

func (s Span) sample(rng *rand.Rand) float64 {
	return s.Min + rng.Float64()*(s.Max-s.Min)
}

// Ranges holds the distributions random parameter sets are drawn from.
type Ranges struct {
	Frequency         Span
	OctavesMin        int
	OctavesMax        int // inclusive
	Amplitude         Span
	AmplitudeFactor   float64
	Lacunarity        Span
	Persistence       Span
	PersistenceFactor float64
}

// DefaultRanges returns the stock distributions.
func DefaultRanges() Ranges {
	return Ranges{
		Frequency:         Span{0.5, 5},
		OctavesMin:        2,
		OctavesMax:        8,
		Amplitude:         Span{0.5, 5},
		AmplitudeFactor:   0.5,
		Lacunarity:        Span{0.5, 5},
		Persistence:       Span{0.5, 5},
		PersistenceFactor: 0.3,
	}
}

// RangesFromConfig converts the params section of the config.
func RangesFromConfig(c config.ParamsConfig) Ranges {
	return Ranges{
		Frequency:         Span{c.Frequency.Min, c.Frequency.Max},
		OctavesMin:        c.OctavesMin,
		OctavesMax:        c.OctavesMax,
		Amplitude:         Span{c.Amplitude.Min, c.Amplitude.Max},
		AmplitudeFactor:   c.AmplitudeFactor,
		Lacunarity:        Span{c.Lacunarity.Min, c.Lacunarity.Max},
		Persistence:       Span{c.Persistence.Min, c.Persistence.Max},
		PersistenceFactor: c.PersistenceFactor,
	}
}

// RandomParams draws a fresh parameter set from rng.
func RandomParams(rng *rand.Rand, r Ranges) Params {
	p := Params{
		Frequency:   r.Frequency.sample(rng),
		Octaves:     r.OctavesMin + rng.Intn(r.OctavesMax-r.OctavesMin+1),
		Amplitude:   r.Amplitude.sample(rng) * r.AmplitudeFactor,
		Lacunarity:  r.Lacunarity.sample(rng),
		Persistence: r.Persistence.sample(rng) * r.PersistenceFactor,
		Seed:        rng.Int31(),
	}
	for i := range p.BaseColor {
		p.BaseColor[i] = rng.Float32()
	}
	return p
}
