package fractal

import (
	"math"
	"math/rand"
)

// lattice is an improved-Perlin gradient lattice with its own permutation.
type lattice struct {
	perm [512]int
}

func newLattice(seed int64) *lattice {
	l := &lattice{}
	rng := rand.New(rand.NewSource(seed))

	var perm [256]int
	for i := range perm {
		perm[i] = i
	}

	for i := len(perm) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		perm[i], perm[j] = perm[j], perm[i]
	}

	for i := 0; i < 256; i++ {
		l.perm[i] = perm[i]
		l.perm[i+256] = perm[i]
	}

	return l
}

// noise3 returns gradient noise in roughly [-1, 1].
func (l *lattice) noise3(x, y, z float64) float64 {
	fx, fy, fz := math.Floor(x), math.Floor(y), math.Floor(z)

	// & 255 wraps negative cells too
	X := int(fx) & 255
	Y := int(fy) & 255
	Z := int(fz) & 255

	x -= fx
	y -= fy
	z -= fz

	u := fade(x)
	v := fade(y)
	w := fade(z)

	p := &l.perm
	A := p[X] + Y
	AA := p[A] + Z
	AB := p[A+1] + Z
	B := p[X+1] + Y
	BA := p[B] + Z
	BB := p[B+1] + Z

	return lerp(w, lerp(v, lerp(u, grad3D(p[AA], x, y, z),
		grad3D(p[BA], x-1, y, z)),
		lerp(u, grad3D(p[AB], x, y-1, z),
			grad3D(p[BB], x-1, y-1, z))),
		lerp(v, lerp(u, grad3D(p[AA+1], x, y, z-1),
			grad3D(p[BA+1], x-1, y, z-1)),
			lerp(u, grad3D(p[AB+1], x, y-1, z-1),
				grad3D(p[BB+1], x-1, y-1, z-1))))
}

func fade(t float64) float64 {
	return t * t * t * (t*(t*6-15) + 10)
}

func lerp(t, a, b float64) float64 {
	return a + t*(b-a)
}

func grad3D(hash int, x, y, z float64) float64 {
	h := hash & 15
	u := x
	if h >= 8 {
		u = y
	}
	v := y
	if h >= 4 {
		if h == 12 || h == 14 {
			v = x
		} else {
			v = z
		}
	}
	if h&1 != 0 {
		u = -u
	}
	if h&2 != 0 {
		v = -v
	}
	return u + v
}

// libnoiseField sums octaves the way libnoise's Perlin module does: each
// octave gets its own seed, coordinates grow by lacunarity and the signal
// weight shrinks by persistence.
type libnoiseField struct {
	frequency   float64
	lacunarity  float64
	persistence float64
	octaves     []*lattice
}

func newLibnoiseField(p Params) *libnoiseField {
	f := &libnoiseField{
		frequency:   p.Frequency,
		lacunarity:  p.Lacunarity,
		persistence: p.Persistence,
		octaves:     make([]*lattice, p.Octaves),
	}
	for i := range f.octaves {
		f.octaves[i] = newLattice(int64(p.Seed) + int64(i))
	}
	return f
}

func (f *libnoiseField) Eval3(x, y, z float64) float64 {
	x *= f.frequency
	y *= f.frequency
	z *= f.frequency

	var value float64
	weight := 1.0
	for _, l := range f.octaves {
		value += l.noise3(x, y, z) * weight
		x *= f.lacunarity
		y *= f.lacunarity
		z *= f.lacunarity
		weight *= f.persistence
	}
	return value
}
