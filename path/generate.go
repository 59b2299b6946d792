package path

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/cwbudde/algo-epicycle/dsp/core"
	"github.com/cwbudde/algo-epicycle/dsp/cpx"
)

// Generator produces deterministic closed sample paths suitable for the
// transform pipeline. All generated paths have a power-of-two sample count
// and close on themselves (the sample after the last is the first again).
type Generator struct {
	samples int
	jitter  float64
	seed    int64
}

// Option configures a Generator.
type Option func(*Generator)

// WithSamples sets the sample count. It must be a power of two; generation
// fails otherwise.
func WithSamples(n int) Option {
	return func(g *Generator) {
		g.samples = n
	}
}

// WithJitter adds deterministic pseudo-random displacement of the given
// amplitude to every sample, seeded for reproducibility.
func WithJitter(amplitude float64, seed int64) Option {
	return func(g *Generator) {
		g.jitter = amplitude
		g.seed = seed
	}
}

// NewGenerator creates a configured path generator. The default sample count
// is 256.
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{samples: 256, seed: 1}
	for _, opt := range opts {
		if opt != nil {
			opt(g)
		}
	}
	return g
}

func (g *Generator) validate() error {
	if !core.IsPowerOfTwo(g.samples) {
		return fmt.Errorf("%w: %d samples", ErrNotPowerOfTwo, g.samples)
	}
	return nil
}

func (g *Generator) finish(data []cpx.Complex) []cpx.Complex {
	if g.jitter == 0 {
		return data
	}

	rng := rand.New(rand.NewSource(g.seed))
	for i, v := range data {
		data[i] = cpx.New(
			v.Re+(rng.Float64()*2-1)*g.jitter,
			v.Im+(rng.Float64()*2-1)*g.jitter,
		)
	}
	return data
}

// Circle generates a circle of the given radius centered on the origin.
func (g *Generator) Circle(radius float64) ([]cpx.Complex, error) {
	return g.Ellipse(radius, radius)
}

// Ellipse generates an axis-aligned ellipse with semi-axes a and b.
func (g *Generator) Ellipse(a, b float64) ([]cpx.Complex, error) {
	if err := g.validate(); err != nil {
		return nil, err
	}
	if a <= 0 || b <= 0 {
		return nil, fmt.Errorf("path: ellipse semi-axes must be > 0: %f, %f", a, b)
	}

	data := make([]cpx.Complex, g.samples)
	for i := range data {
		t := 2 * math.Pi * float64(i) / float64(g.samples)
		data[i] = cpx.New(a*math.Cos(t), b*math.Sin(t))
	}
	return g.finish(data), nil
}

// Lissajous generates a Lissajous figure with integer frequencies fx and fy
// and phase offset delta. The curve closes after one period.
func (g *Generator) Lissajous(fx, fy int, delta float64) ([]cpx.Complex, error) {
	if err := g.validate(); err != nil {
		return nil, err
	}
	if fx <= 0 || fy <= 0 {
		return nil, fmt.Errorf("path: lissajous frequencies must be > 0: %d, %d", fx, fy)
	}

	data := make([]cpx.Complex, g.samples)
	for i := range data {
		t := 2 * math.Pi * float64(i) / float64(g.samples)
		data[i] = cpx.New(math.Sin(float64(fx)*t+delta), math.Sin(float64(fy)*t))
	}
	return g.finish(data), nil
}

// Polygon generates a regular polygon with the given number of sides,
// traversed at uniform speed along the perimeter.
func (g *Generator) Polygon(sides int, radius float64) ([]cpx.Complex, error) {
	if err := g.validate(); err != nil {
		return nil, err
	}
	if sides < 3 {
		return nil, fmt.Errorf("path: polygon needs at least 3 sides: %d", sides)
	}
	if radius <= 0 {
		return nil, fmt.Errorf("path: polygon radius must be > 0: %f", radius)
	}

	vertex := func(k int) cpx.Complex {
		angle := 2 * math.Pi * float64(k%sides) / float64(sides)
		return cpx.New(radius*math.Cos(angle), radius*math.Sin(angle))
	}

	data := make([]cpx.Complex, g.samples)
	for i := range data {
		s := float64(i) * float64(sides) / float64(g.samples)
		edge := int(s)
		frac := s - float64(edge)

		a := vertex(edge)
		b := vertex(edge + 1)
		data[i] = cpx.New(a.Re+frac*(b.Re-a.Re), a.Im+frac*(b.Im-a.Im))
	}
	return g.finish(data), nil
}
