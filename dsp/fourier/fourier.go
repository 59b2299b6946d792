package fourier

import (
	"math"

	"github.com/cwbudde/algo-epicycle/dsp/cpx"
)

// Butterfly reorders data in place by the bit-reversal permutation: the
// element at index i moves to the index whose binary representation is the
// mirror of i within the bit-width of len(data)-1.
//
// The target index is advanced as a bit-reversed counter: clear set bits from
// the top down, then set the highest clear one. Applying Butterfly twice
// restores the original order. len(data) must be a power of two.
func Butterfly[T any](data []T) {
	target := 0
	for position := range data {
		if target > position {
			data[position], data[target] = data[target], data[position]
		}

		mask := len(data) >> 1
		for target&mask != 0 {
			target &^= mask
			mask >>= 1
		}
		target |= mask
	}
}

// FFT computes the forward discrete Fourier transform of data in place using
// the iterative radix-2 decimation-in-time algorithm.
//
// After the call data holds the spectrum in natural order. The input is
// consumed; callers that still need the samples must copy first. len(data)
// must be a power of two (>= 1); anything else is a precondition violation
// with unspecified results.
//
// Each stage seeds its twiddle factor once from delta = -pi/step and advances
// it with the half-angle recurrence, so the total number of transcendental
// calls is O(log n) rather than O(n log n).
func FFT(data []cpx.Complex) {
	Butterfly(data)

	length := len(data)
	for step := 1; step < length; step <<= 1 {
		jump := step << 1
		delta := -math.Pi / float64(step)
		tempSin := math.Sin(delta * 0.5)

		factorMultiplier := cpx.New(-2*tempSin*tempSin, math.Sin(delta))
		factor := cpx.New(1, 0)

		for group := 0; group < step; group++ {
			for pair := group; pair < length; pair += jump {
				matched := pair + step
				product := cpx.Mul(factor, data[matched])
				data[matched] = cpx.Minus(data[pair], product)
				data[pair] = cpx.Add(data[pair], product)
			}
			factor = cpx.Add(cpx.Mul(factorMultiplier, factor), factor)
		}
	}
}

// DFT computes the discrete Fourier transform of data by direct summation,
// X[k] = sum over n of x[n]·exp(-2·pi·i·k·n/N).
//
// The input is left untouched and a fresh slice is returned. O(n²) time, any
// length is valid. This is the correctness oracle for [FFT].
func DFT(data []cpx.Complex) []cpx.Complex {
	n := len(data)
	results := make([]cpx.Complex, 0, n)

	for term := 0; term < n; term++ {
		sum := cpx.New(0, 0)
		for i := 0; i < n; i++ {
			angle := 2 * math.Pi * float64(term) * float64(i) / float64(n)
			exp := cpx.New(math.Cos(angle), -math.Sin(angle))
			sum = cpx.Add(sum, cpx.Mul(data[i], exp))
		}
		results = append(results, sum)
	}

	return results
}
