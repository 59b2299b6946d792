// Package fourier implements the discrete Fourier transform over [cpx.Complex]
// sequences: an in-place iterative radix-2 decimation-in-time FFT and a direct
// O(n²) reference DFT.
//
// The fast path operates destructively on its input and requires a
// power-of-two length. Length validation deliberately lives with the caller
// (see the path package); this package trusts the precondition, which keeps
// the hot loops branch-free.
//
// # Usage
//
// Transform a sample path in place:
//
//	data := make([]cpx.Complex, 1024)
//	// ... fill data ...
//	fourier.FFT(data) // data now holds the spectrum in natural order
//
// The reference transform accepts any length and leaves its input untouched:
//
//	spectrum := fourier.DFT(data)
package fourier
