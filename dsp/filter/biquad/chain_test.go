package biquad

import "testing"

// twoSectionCoeffs returns two biquad sections for a 4th-order-like cascade.
func twoSectionCoeffs() []Coefficients {
	return []Coefficients{
		{B0: 0.25, B1: 0.5, B2: 0.25, A1: -0.2, A2: 0.04},
		{B0: 0.1, B1: 0.2, B2: 0.1, A1: -0.5, A2: 0.1},
	}
}

func TestNewChain(t *testing.T) {
	c := NewChain(twoSectionCoeffs())
	if c.NumSections() != 2 {
		t.Fatalf("NumSections: got %d, want 2", c.NumSections())
	}
	if c.Order() != 4 {
		t.Fatalf("Order: got %d, want 4", c.Order())
	}
	if c.Gain() != 1 {
		t.Fatalf("default gain: got %v, want 1", c.Gain())
	}
	if NewChain(twoSectionCoeffs(), WithGain(0.5)).Gain() != 0.5 {
		t.Fatal("WithGain not applied")
	}
}

func TestChain_ProcessSample_MatchesManualCascade(t *testing.T) {
	coeffs := twoSectionCoeffs()
	section1 := NewSection(coeffs[0])
	section2 := NewSection(coeffs[1])
	chain := NewChain(coeffs)

	input := []float64{1, 0.5, -0.3, 0.7, 0, -1, 0.2, 0.8}
	for i, x := range input {
		ref := section2.ProcessSample(section1.ProcessSample(x))
		if got := chain.ProcessSample(x); !almostEqual(got, ref, eps) {
			t.Errorf("sample %d: chain=%.15f, ref=%.15f", i, got, ref)
		}
	}
}

func TestChain_ProcessBlock_WithGain(t *testing.T) {
	input := []float64{1, 0.5, -0.3, 0.7, 0, -1, 0.2, 0.8}

	ref := NewChain(twoSectionCoeffs(), WithGain(2))
	want := make([]float64, len(input))
	for i, x := range input {
		want[i] = ref.ProcessSample(x)
	}

	chain := NewChain(twoSectionCoeffs(), WithGain(2))
	block := append([]float64(nil), input...)
	chain.ProcessBlock(block)

	for i := range block {
		if !almostEqual(block[i], want[i], eps) {
			t.Errorf("sample %d: block=%.15f, sample=%.15f", i, block[i], want[i])
		}
	}
}

func TestChain_PrimeMatchesDCResponse(t *testing.T) {
	chain := NewChain(twoSectionCoeffs(), WithGain(0.5))
	y0 := chain.Prime(1.5)

	h := real(chain.Response(0, 1000))
	if !almostEqual(y0, 1.5*h, 1e-12) {
		t.Fatalf("Prime = %v, want %v", y0, 1.5*h)
	}
	for i := range 8 {
		if y := chain.ProcessSample(1.5); !almostEqual(y, y0, 1e-12) {
			t.Fatalf("sample %d: %v, want %v", i, y, y0)
		}
	}
}

func TestChain_State_SaveRestore(t *testing.T) {
	chain := NewChain(twoSectionCoeffs())
	chain.ProcessSample(1)
	saved := chain.State()
	a := chain.ProcessSample(-0.4)

	chain.Reset()
	chain.SetState(saved)
	if b := chain.ProcessSample(-0.4); a != b {
		t.Fatalf("restored chain produced %v, want %v", b, a)
	}
	if chain.Section(1).Coefficients != twoSectionCoeffs()[1] {
		t.Fatal("Section accessor returned wrong section")
	}
}
