package biquad

import (
	"math"
	"testing"
)

// tolerance for floating-point comparisons.
const eps = 1e-12

func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func lowpassCoeffs() Coefficients {
	return Coefficients{B0: 0.25, B1: 0.5, B2: 0.25, A1: -0.2, A2: 0.04}
}

func TestNewSection(t *testing.T) {
	c := Coefficients{B0: 1, B1: 2, B2: 3, A1: 4, A2: 5}
	s := NewSection(c)
	if s.Coefficients != c {
		t.Fatalf("coefficients mismatch: got %v, want %v", s.Coefficients, c)
	}
	if st := s.State(); st != [2]float64{0, 0} {
		t.Fatalf("initial state not zero: %v", st)
	}
}

func TestProcessSample_DFIIT(t *testing.T) {
	// Hand-traced DF-II-T with x = [1, 0, 0, 0]:
	//
	// n=0: y=0.25       d0=0.55     d1=0.24
	// n=1: y=0.55       d0=0.35     d1=-0.022
	// n=2: y=0.35       d0=0.048    d1=-0.014
	// n=3: y=0.048
	s := NewSection(lowpassCoeffs())

	want := []float64{0.25, 0.55, 0.35, 0.048}
	for i, w := range want {
		var x float64
		if i == 0 {
			x = 1
		}
		if y := s.ProcessSample(x); !almostEqual(y, w, eps) {
			t.Errorf("sample %d: got %.15f, want %.15f", i, y, w)
		}
	}
}

func TestProcessBlock_MatchesSample(t *testing.T) {
	s1 := NewSection(lowpassCoeffs())
	input := []float64{1, 0.5, -0.3, 0.7, 0, -1, 0.2, 0.8}
	ref := make([]float64, len(input))
	for i, x := range input {
		ref[i] = s1.ProcessSample(x)
	}

	s2 := NewSection(lowpassCoeffs())
	block := make([]float64, len(input))
	copy(block, input)
	s2.ProcessBlock(block)

	for i := range block {
		if !almostEqual(block[i], ref[i], eps) {
			t.Errorf("sample %d: ProcessBlock=%.15f, ProcessSample=%.15f", i, block[i], ref[i])
		}
	}
	if s1.State() != s2.State() {
		t.Fatalf("state mismatch: %v vs %v", s1.State(), s2.State())
	}
}

func TestReset(t *testing.T) {
	s := NewSection(lowpassCoeffs())
	s.ProcessSample(1)
	s.Reset()
	if st := s.State(); st != [2]float64{0, 0} {
		t.Fatalf("state after Reset = %v", st)
	}
}

func TestState_SaveRestore(t *testing.T) {
	s := NewSection(lowpassCoeffs())
	s.ProcessSample(1)
	saved := s.State()
	a := s.ProcessSample(0.3)

	s.SetState(saved)
	b := s.ProcessSample(0.3)
	if a != b {
		t.Fatalf("restored state produced %v, want %v", b, a)
	}
}

func TestDCGain(t *testing.T) {
	c := lowpassCoeffs()
	g, ok := c.DCGain()
	if !ok {
		t.Fatal("expected finite DC gain")
	}
	if !almostEqual(g, 1/0.84, eps) {
		t.Fatalf("DCGain = %v, want %v", g, 1/0.84)
	}

	integrator := Coefficients{B0: 1, A1: -1}
	if _, ok := integrator.DCGain(); ok {
		t.Fatal("expected no DC gain for a pole at z=1")
	}
}

func TestPrime_NoTransient(t *testing.T) {
	s := NewSection(lowpassCoeffs())
	y0 := s.Prime(2)
	for i := range 16 {
		if y := s.ProcessSample(2); !almostEqual(y, y0, 1e-12) {
			t.Fatalf("sample %d: got %v, want steady %v", i, y, y0)
		}
	}
}

func TestPrime_PoleAtDCResets(t *testing.T) {
	s := NewSection(Coefficients{B0: 1, A1: -1})
	s.ProcessSample(3)
	if y := s.Prime(1); y != 0 {
		t.Fatalf("Prime = %v, want 0", y)
	}
	if st := s.State(); st != [2]float64{0, 0} {
		t.Fatalf("state = %v, want zero", st)
	}
}

func TestProcessSample_StabilityLongRun(t *testing.T) {
	s := NewSection(lowpassCoeffs())
	y := s.ProcessSample(1)
	for range 10000 {
		y = s.ProcessSample(0)
	}
	if math.Abs(y) > 1e-12 || math.IsNaN(y) {
		t.Fatalf("impulse response did not decay: %v", y)
	}
}
