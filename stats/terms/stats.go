// Package terms computes statistics over the term-amplitude distribution of
// an epicycle model, mainly to guide the choice of reconstruction precision.
package terms

import (
	"fmt"

	"github.com/cwbudde/algo-epicycle/dsp/cpx"
	"github.com/cwbudde/algo-epicycle/dsp/spectrum"
	"github.com/cwbudde/algo-epicycle/epicycle"
)

// Stats holds statistics over a model's sorted term amplitudes.
type Stats struct {
	TermCount int
	Max       float64 // leading term amplitude
	MaxFreq   uint    // frequency index of the leading term
	Min       float64 // trailing term amplitude
	Sum       float64
	Average   float64
	Energy    float64 // sum of squared amplitudes
}

// Calculate computes amplitude statistics for a model.
func Calculate(m *epicycle.Model) Stats {
	n := m.Len()
	if n == 0 {
		return Stats{}
	}

	coeffs := make([]cpx.Complex, n)
	for i := range coeffs {
		coeffs[i] = m.Term(i).Coefficient
	}
	power := spectrum.Power(coeffs)

	s := Stats{
		TermCount: n,
		Max:       m.Term(0).Amplitude(),
		MaxFreq:   m.Term(0).Frequency,
		Min:       m.Term(n - 1).Amplitude(),
	}
	for i := 0; i < n; i++ {
		s.Sum += m.Term(i).Amplitude()
		s.Energy += power[i]
	}
	s.Average = s.Sum / float64(n)

	return s
}

// CoverageCount returns the smallest precision whose cumulative energy
// reaches the given fraction of the model's total energy. Because terms are
// sorted by descending amplitude this is the cheapest precision achieving
// that coverage. fraction must be in (0, 1]. A model with zero total energy
// needs no terms at all.
func CoverageCount(m *epicycle.Model, fraction float64) (int, error) {
	if fraction <= 0 || fraction > 1 {
		return 0, fmt.Errorf("terms: coverage fraction must be in (0, 1]: %f", fraction)
	}

	total := Calculate(m).Energy
	if total == 0 {
		return 0, nil
	}

	running := 0.0
	for i := 0; i < m.Len(); i++ {
		a := m.Term(i).Amplitude()
		running += a * a
		if running >= fraction*total {
			return i + 1, nil
		}
	}

	// Floating-point accumulation can leave the running sum a hair short.
	return m.Len(), nil
}

// CumulativeCoverage returns, for each precision 1..Len, the fraction of
// total energy captured by the leading terms. Returns nil for an empty or
// zero-energy model.
func CumulativeCoverage(m *epicycle.Model) []float64 {
	total := Calculate(m).Energy
	if total == 0 {
		return nil
	}

	out := make([]float64, m.Len())
	running := 0.0
	for i := 0; i < m.Len(); i++ {
		a := m.Term(i).Amplitude()
		running += a * a
		out[i] = running / total
	}
	return out
}
