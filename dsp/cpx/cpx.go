// Package cpx provides the complex value type used throughout the transform
// and reconstruction pipeline.
//
// The type is a plain two-field struct rather than the builtin complex128 so
// that the transform engine and the epicycle model can address the real and
// imaginary components directly and so that equality can be tolerance-based.
// Values are never mutated after construction; all arithmetic returns new
// values.
package cpx

import "math"

// Epsilon is the per-component absolute tolerance used by [Complex.Equal].
const Epsilon = 1e-8

// Complex is a two-component complex value.
type Complex struct {
	Re float64
	Im float64
}

// New returns the complex value re + im*i.
func New(re, im float64) Complex {
	return Complex{Re: re, Im: im}
}

// Add returns a + b.
func Add(a, b Complex) Complex {
	return Complex{Re: a.Re + b.Re, Im: a.Im + b.Im}
}

// Minus returns a - b.
func Minus(a, b Complex) Complex {
	return Complex{Re: a.Re - b.Re, Im: a.Im - b.Im}
}

// Mul returns a * b using the four-multiplication form
// (ac - bd, ad + bc).
func Mul(a, b Complex) Complex {
	return Complex{
		Re: a.Re*b.Re - a.Im*b.Im,
		Im: a.Re*b.Im + a.Im*b.Re,
	}
}

// Amplitude returns the Euclidean norm sqrt(Re² + Im²).
func (c Complex) Amplitude() float64 {
	return math.Sqrt(c.Re*c.Re + c.Im*c.Im)
}

// Phase returns the single-argument arctangent of Im/Re in radians.
//
// This is NOT equivalent to math.Atan2: for Re < 0 the result is off by pi,
// and for Re == 0 the ratio is ±Inf or NaN and the special value propagates
// through math.Atan untrapped. The quadrant-unaware form is kept on purpose;
// the sorted reconstruction in the epicycle package is calibrated against it.
func (c Complex) Phase() float64 {
	return math.Atan(c.Im / c.Re)
}

// Equal reports whether c and other match within [Epsilon] on each component
// independently. Intended for assertions over floating-point pipelines, not
// for production branching; near the tolerance boundary it is not transitive.
func (c Complex) Equal(other Complex) bool {
	return math.Abs(c.Re-other.Re) <= Epsilon && math.Abs(c.Im-other.Im) <= Epsilon
}
