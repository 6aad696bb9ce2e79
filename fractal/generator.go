package fractal

import (
	"math/rand"

	"github.com/pthm-cable/dreamscape/camera"
)

// Options configures a Generator.
type Options struct {
	Backend string  // noise backend name, see Backends
	Scale   float64 // plane units per pixel at zoom 1
	Shading Shading
	Ranges  Ranges
	Workers int // 0 = GOMAXPROCS
}

// DefaultOptions returns the stock generator configuration.
func DefaultOptions() Options {
	return Options{
		Backend: BackendLibnoise,
		Scale:   0.05,
		Shading: DefaultShading(),
		Ranges:  DefaultRanges(),
	}
}

// Generator owns the active fractal parameters and rasterizes frames.
// It is not safe for concurrent use; the render loop owns it.
type Generator struct {
	opts     Options
	rng      *rand.Rand
	newField FieldFactory

	params Params
	field  Field
	pool   *rowPool
}

// NewGenerator creates a generator with freshly randomized parameters.
// rng is used only by ResetParams.
func NewGenerator(opts Options, rng *rand.Rand) (*Generator, error) {
	factory, err := NewFieldFactory(opts.Backend)
	if err != nil {
		return nil, err
	}
	g := &Generator{
		opts:     opts,
		rng:      rng,
		newField: factory,
		pool:     newRowPool(opts.Workers),
	}
	g.ResetParams()
	return g, nil
}

// ResetParams draws a fresh random parameter set and applies it immediately.
func (g *Generator) ResetParams() Params {
	g.SetParams(RandomParams(g.rng, g.opts.Ranges))
	return g.params
}

// SetParams replaces the active parameter set.
func (g *Generator) SetParams(p Params) {
	g.params = p
	g.field = g.newField(p)
}

// Params returns the active parameter set.
func (g *Generator) Params() Params {
	return g.params
}

// Generate overwrites every pixel of buf for clock time t under the given
// rotation (radians) and zoom. Output depends only on the active params
// and the arguments.
func (g *Generator) Generate(buf *PixelBuffer, t float64, rotation, zoom float32) {
	view := camera.NewView(buf.Width, buf.Height, g.opts.Scale, zoom, rotation)
	b := Breathing(t, g.opts.Shading.BreathingFreq)
	base := g.params.BaseColor
	weights := g.opts.Shading.Weights
	field := g.field

	g.pool.run(buf.Height, func(start, end int) {
		for y := start; y < end; y++ {
			row := buf.Pix[y*buf.Width : (y+1)*buf.Width]
			for x := range row {
				rx, ry := view.ToPlane(x, y)
				v := Normalize(field.Eval3(rx, ry, t))
				row[x] = Shade(base, v, b, weights)
			}
		}
	})
}

// Close stops the rasterization workers.
func (g *Generator) Close() {
	g.pool.stop()
}
