package fractal

import (
	"math/rand"
	"testing"

	"github.com/pthm-cable/dreamscape/config"
)

func TestRandomParamsWithinRanges(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	r := DefaultRanges()

	seenOctaves := make(map[int]bool)
	for i := 0; i < 2000; i++ {
		p := RandomParams(rng, r)

		if p.Frequency < 0.5 || p.Frequency > 5 {
			t.Fatalf("frequency %f out of [0.5, 5]", p.Frequency)
		}
		if p.Octaves < 2 || p.Octaves > 8 {
			t.Fatalf("octaves %d out of [2, 8]", p.Octaves)
		}
		if p.Amplitude < 0.25 || p.Amplitude > 2.5 {
			t.Fatalf("amplitude %f out of [0.25, 2.5]", p.Amplitude)
		}
		if p.Lacunarity < 0.5 || p.Lacunarity > 5 {
			t.Fatalf("lacunarity %f out of [0.5, 5]", p.Lacunarity)
		}
		if p.Persistence < 0.15 || p.Persistence > 1.5 {
			t.Fatalf("persistence %f out of [0.15, 1.5]", p.Persistence)
		}
		if p.Seed < 0 {
			t.Fatalf("seed %d is negative", p.Seed)
		}
		for c, v := range p.BaseColor {
			if v < 0 || v > 1 {
				t.Fatalf("base color channel %d = %f out of [0, 1]", c, v)
			}
		}
		seenOctaves[p.Octaves] = true
	}

	// Both ends of the inclusive octave range are reachable
	for o := 2; o <= 8; o++ {
		if !seenOctaves[o] {
			t.Errorf("octave count %d never drawn", o)
		}
	}
}

func TestRandomParamsSeeded(t *testing.T) {
	a := RandomParams(rand.New(rand.NewSource(99)), DefaultRanges())
	b := RandomParams(rand.New(rand.NewSource(99)), DefaultRanges())
	if a != b {
		t.Errorf("same seed produced different params: %+v vs %+v", a, b)
	}
}

func TestRangesFromConfigMatchesDefaults(t *testing.T) {
	cfg, err := config.Load("")
	if err != nil {
		t.Fatal(err)
	}
	if got := RangesFromConfig(cfg.Params); got != DefaultRanges() {
		t.Errorf("config ranges %+v differ from defaults %+v", got, DefaultRanges())
	}
}
