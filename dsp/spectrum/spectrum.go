// Package spectrum provides batch amplitude, power and phase extraction over
// coefficient slices produced by the transform engine.
package spectrum

import (
	"sync"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-epicycle/dsp/cpx"
)

// scratchBuf holds pooled scratch memory for struct-of-arrays unpacking.
type scratchBuf struct {
	data []float64
}

var scratchPool = sync.Pool{
	New: func() any { return &scratchBuf{} },
}

func getScratch(n int) (re, im []float64, buf *scratchBuf) {
	buf = scratchPool.Get().(*scratchBuf)
	need := 2 * n
	if cap(buf.data) < need {
		buf.data = make([]float64, need)
	} else {
		buf.data = buf.data[:need]
	}
	return buf.data[:n], buf.data[n:need], buf
}

func putScratch(buf *scratchBuf) {
	scratchPool.Put(buf)
}

// Amplitudes returns |X[k]| for each coefficient.
//
// The computation is SIMD-backed where available (AVX2, SSE2, NEON). Scratch
// buffers are pooled internally, so in steady state this allocates only the
// output slice.
func Amplitudes(in []cpx.Complex) []float64 {
	if len(in) == 0 {
		return nil
	}

	out := make([]float64, len(in))
	AmplitudesInto(out, in)
	return out
}

// AmplitudesInto computes |X[k]| for each coefficient into dst.
// dst must have the same length as in.
func AmplitudesInto(dst []float64, in []cpx.Complex) {
	if len(in) == 0 {
		return
	}

	re, im, buf := getScratch(len(in))
	for i, c := range in {
		re[i] = c.Re
		im[i] = c.Im
	}

	vecmath.Magnitude(dst, re, im)
	putScratch(buf)
}

// Power returns |X[k]|² for each coefficient.
//
// SIMD-backed like [Amplitudes]; allocates only the output slice in steady
// state.
func Power(in []cpx.Complex) []float64 {
	if len(in) == 0 {
		return nil
	}

	out := make([]float64, len(in))
	re, im, buf := getScratch(len(in))

	for i, c := range in {
		re[i] = c.Re
		im[i] = c.Im
	}

	vecmath.Power(out, re, im)
	putScratch(buf)
	return out
}

// Phases returns the phase angle of each coefficient in radians.
//
// The angle is the single-argument arctangent of Im/Re (see [cpx.Complex.Phase]),
// so it matches what the epicycle reconstruction consumes, not math.Atan2.
func Phases(in []cpx.Complex) []float64 {
	if len(in) == 0 {
		return nil
	}
	out := make([]float64, len(in))
	for i, c := range in {
		out[i] = c.Phase()
	}
	return out
}
