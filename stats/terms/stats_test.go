package terms

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-epicycle/dsp/cpx"
	"github.com/cwbudde/algo-epicycle/epicycle"
)

func testModel() *epicycle.Model {
	return epicycle.NewModel([]cpx.Complex{
		cpx.New(1, 0),  // amplitude 1, frequency 0
		cpx.New(0, 4),  // amplitude 4, frequency 1
		cpx.New(3, 4),  // amplitude 5, frequency 2
		cpx.New(-2, 0), // amplitude 2, frequency 3
	})
}

func TestCalculate(t *testing.T) {
	s := Calculate(testModel())

	if s.TermCount != 4 {
		t.Fatalf("TermCount = %d, want 4", s.TermCount)
	}
	if s.Max != 5 || s.MaxFreq != 2 {
		t.Errorf("Max/MaxFreq = %v/%d, want 5/2", s.Max, s.MaxFreq)
	}
	if s.Min != 1 {
		t.Errorf("Min = %v, want 1", s.Min)
	}
	if math.Abs(s.Sum-12) > 1e-12 {
		t.Errorf("Sum = %v, want 12", s.Sum)
	}
	if math.Abs(s.Average-3) > 1e-12 {
		t.Errorf("Average = %v, want 3", s.Average)
	}
	// 25 + 16 + 4 + 1
	if math.Abs(s.Energy-46) > 1e-12 {
		t.Errorf("Energy = %v, want 46", s.Energy)
	}
}

func TestCalculateEmpty(t *testing.T) {
	s := Calculate(epicycle.NewModel(nil))
	if s != (Stats{}) {
		t.Errorf("empty model stats = %+v, want zero value", s)
	}
}

func TestCoverageCount(t *testing.T) {
	m := testModel()

	// Cumulative energy fractions: 25/46, 41/46, 45/46, 46/46.
	cases := []struct {
		fraction float64
		want     int
	}{
		{0.5, 1},
		{25.0 / 46, 1},
		{0.85, 2},
		{0.97, 3},
		{1.0, 4},
	}
	for _, tc := range cases {
		got, err := CoverageCount(m, tc.fraction)
		if err != nil {
			t.Fatalf("CoverageCount(%v): %v", tc.fraction, err)
		}
		if got != tc.want {
			t.Errorf("CoverageCount(%v) = %d, want %d", tc.fraction, got, tc.want)
		}
	}
}

func TestCoverageCountValidation(t *testing.T) {
	m := testModel()

	for _, fraction := range []float64{0, -0.5, 1.5} {
		if _, err := CoverageCount(m, fraction); err == nil {
			t.Errorf("CoverageCount(%v) should fail", fraction)
		}
	}
}

func TestCoverageCountZeroEnergy(t *testing.T) {
	m := epicycle.NewModel([]cpx.Complex{cpx.New(0, 0), cpx.New(0, 0)})

	got, err := CoverageCount(m, 0.9)
	if err != nil {
		t.Fatalf("CoverageCount: %v", err)
	}
	if got != 0 {
		t.Errorf("zero-energy model needs %d terms, want 0", got)
	}
}

func TestCumulativeCoverage(t *testing.T) {
	cov := CumulativeCoverage(testModel())

	want := []float64{25.0 / 46, 41.0 / 46, 45.0 / 46, 1}
	if len(cov) != len(want) {
		t.Fatalf("length = %d, want %d", len(cov), len(want))
	}
	for i := range want {
		if math.Abs(cov[i]-want[i]) > 1e-12 {
			t.Errorf("coverage[%d] = %v, want %v", i, cov[i], want[i])
		}
	}

	if CumulativeCoverage(epicycle.NewModel(nil)) != nil {
		t.Error("empty model coverage should be nil")
	}
}
