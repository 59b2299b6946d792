// Package epicycle reconstructs closed 2-D paths from their Fourier spectrum
// as a truncated sum of rotating vectors ordered by descending contribution.
//
// A [Model] pairs every frequency-domain coefficient with its harmonic index,
// sorts the pairs by descending amplitude once at construction, and then
// answers repeated coordinate queries: the first k sorted terms capture the k
// most energetic frequency components, giving the best trace for a given term
// budget.
//
// # Usage
//
//	m, err := epicycle.FromFile("drawing.txt")
//	if err != nil { ... }
//	for t := 0.0; t < 2*math.Pi; t += 0.001 {
//		coord, err := m.CoordinateAt(t, 32)
//		// plot coord.X, coord.Y
//	}
package epicycle

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/cwbudde/algo-epicycle/dsp/cpx"
	"github.com/cwbudde/algo-epicycle/dsp/fourier"
	"github.com/cwbudde/algo-epicycle/dsp/spectrum"
	"github.com/cwbudde/algo-epicycle/path"
)

// ErrInvalidPrecision reports a coordinate query that asked for more terms
// than the model holds. Always recoverable: retry with a smaller precision.
var ErrInvalidPrecision = errors.New("epicycle: invalid precision")

const defaultAmplitudeFloor = 1e-9

// Term is one frequency-indexed coefficient of a model.
//
// Frequency is the coefficient's 0-based position in the forward-transform
// output and survives reordering; it is the "which harmonic" identity that
// multiplies time during reconstruction.
type Term struct {
	Coefficient cpx.Complex
	Frequency   uint

	amplitude float64
}

// Amplitude returns the term's cached Euclidean norm.
func (t Term) Amplitude() float64 {
	return t.amplitude
}

// Coordinate is a reconstructed 2-D point.
type Coordinate struct {
	X float64
	Y float64
}

// Model owns the sorted frequency-indexed coefficients of one path.
// It is immutable after construction; concurrent readers need no locking.
type Model struct {
	terms          []Term
	amplitudeFloor float64
}

// Option configures a Model at construction time.
type Option func(*Model)

// WithAmplitudeFloor sets the radius below which reconstruction stops
// accumulating further terms. Because terms are sorted by descending
// amplitude, everything after the first sub-floor term is equally or less
// significant, so skipping it changes results only by floating-point noise.
// A floor of 0 disables the early exit. The default is 1e-9.
func WithAmplitudeFloor(floor float64) Option {
	return func(m *Model) {
		if floor >= 0 {
			m.amplitudeFloor = floor
		}
	}
}

// NewModel builds a model from frequency-domain coefficients, typically the
// output of [fourier.FFT]. Each coefficient is paired with its 0-based
// frequency index; the pairs are then stably sorted by descending amplitude,
// so equal-amplitude terms keep ascending frequency order.
func NewModel(coeffs []cpx.Complex, opts ...Option) *Model {
	m := &Model{
		terms:          make([]Term, len(coeffs)),
		amplitudeFloor: defaultAmplitudeFloor,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(m)
		}
	}

	amps := spectrum.Amplitudes(coeffs)
	for i, c := range coeffs {
		m.terms[i] = Term{Coefficient: c, Frequency: uint(i), amplitude: amps[i]}
	}

	sort.SliceStable(m.terms, func(i, j int) bool {
		return m.terms[i].amplitude > m.terms[j].amplitude
	})

	return m
}

// FromSamples transforms a copy of the time-domain samples and builds a model
// from the result. The caller's slice is left untouched. len(samples) must be
// a power of two; see [path.New] for validated construction.
func FromSamples(samples []cpx.Complex, opts ...Option) *Model {
	data := append([]cpx.Complex(nil), samples...)
	fourier.FFT(data)
	return NewModel(data, opts...)
}

// FromPath transforms a validated path in place and builds a model from it.
// The path's sample data is consumed by the transform.
func FromPath(p *path.Path, opts ...Option) *Model {
	fourier.FFT(p.Data)
	return NewModel(p.Data, opts...)
}

// FromFile loads, validates and normalizes a path file, transforms it and
// builds a model.
func FromFile(name string, opts ...Option) (*Model, error) {
	p, err := path.Load(name)
	if err != nil {
		return nil, err
	}
	return FromPath(p, opts...), nil
}

// Len returns the number of terms, which equals the input sample count.
func (m *Model) Len() int {
	return len(m.terms)
}

// Term returns the i-th term in descending-amplitude order.
func (m *Model) Term(i int) Term {
	return m.terms[i]
}

// CoordinateAt reconstructs the 2-D coordinate at the given time using the
// first precision sorted terms:
//
//	x = sum of r·cos(f·time + phase)
//	y = sum of r·sin(f·time + phase)
//
// Time is in radians of the base revolution; sweeping [0, 2*pi) traces the
// whole path once. Callers may instead pre-scale time into a cycle fraction,
// as long as they do so consistently.
//
// A precision outside [0, Len()] fails with [ErrInvalidPrecision] carrying
// the requested and maximum values; the result is never silently clamped.
// Repeated calls with identical arguments return identical coordinates.
func (m *Model) CoordinateAt(time float64, precision int) (Coordinate, error) {
	if precision < 0 || precision > len(m.terms) {
		return Coordinate{}, fmt.Errorf("%w: requested %d, have %d terms",
			ErrInvalidPrecision, precision, len(m.terms))
	}

	var x, y float64
	for i := 0; i < precision; i++ {
		term := m.terms[i]

		radius := term.amplitude
		if m.amplitudeFloor > 0 && radius < m.amplitudeFloor {
			break
		}

		angle := float64(term.Frequency)*time + term.Coefficient.Phase()
		x += radius * math.Cos(angle)
		y += radius * math.Sin(angle)
	}

	return Coordinate{X: x, Y: y}, nil
}
