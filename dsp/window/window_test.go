package window

import (
	"math"
	"testing"
)

func TestGenerate_Symmetric(t *testing.T) {
	for _, typ := range []Type{TypeRectangular, TypeHann, TypeHamming} {
		t.Run(typ.String(), func(t *testing.T) {
			w := Generate(typ, 33)
			if len(w) != 33 {
				t.Fatalf("len=%d, want 33", len(w))
			}
			for i := range w {
				if math.Abs(w[i]-w[len(w)-1-i]) > 1e-12 {
					t.Fatalf("asymmetric at %d: %v vs %v", i, w[i], w[len(w)-1-i])
				}
				if w[i] < 0 || w[i] > 1+1e-12 {
					t.Fatalf("coefficient[%d]=%v outside [0,1]", i, w[i])
				}
			}
			if math.Abs(w[16]-1) > 1e-12 {
				t.Fatalf("centre=%v, want 1", w[16])
			}
		})
	}
}

func TestGenerate_EndPoints(t *testing.T) {
	hann := Generate(TypeHann, 16)
	if hann[0] != 0 || math.Abs(hann[15]) > 1e-15 {
		t.Fatalf("Hann ends = %v, %v; want 0", hann[0], hann[15])
	}
	hamming := Generate(TypeHamming, 16)
	if math.Abs(hamming[0]-0.08) > 1e-12 {
		t.Fatalf("Hamming start = %v, want 0.08", hamming[0])
	}
}

func TestGenerate_Periodic(t *testing.T) {
	w := Generate(TypeHann, 8, WithPeriodic())
	// The periodic form is the symmetric form of length 9 without its
	// last sample.
	ref := Generate(TypeHann, 9)
	for i := range w {
		if math.Abs(w[i]-ref[i]) > 1e-12 {
			t.Fatalf("index %d: %v vs %v", i, w[i], ref[i])
		}
	}
}

func TestGenerate_InvalidLength(t *testing.T) {
	if w := Generate(TypeHann, 0); w != nil {
		t.Fatalf("expected nil, got %v", w)
	}
	if _, err := Hann(0); err == nil {
		t.Fatal("expected error for zero-length Hann")
	}
	if _, err := Hamming(-1); err == nil {
		t.Fatal("expected error for negative-length Hamming")
	}
	if w := Generate(TypeHann, 1); len(w) != 1 || w[0] != 0 {
		t.Fatalf("single sample window = %v", w)
	}
}

func TestUnknownTypeIsRectangular(t *testing.T) {
	w := Generate(Type(99), 4)
	for i, v := range w {
		if v != 1 {
			t.Fatalf("coefficient[%d]=%v, want 1", i, v)
		}
	}
	if Type(99).String() != "Type(99)" {
		t.Fatalf("String = %q", Type(99).String())
	}
}

func TestPowerGain(t *testing.T) {
	g, err := PowerGain([]float64{1, 2, 2})
	if err != nil || g != 9 {
		t.Fatalf("PowerGain = %v, %v; want 9", g, err)
	}
	if _, err := PowerGain(nil); err == nil {
		t.Fatal("expected error for empty coefficients")
	}
}

func TestApplyCoefficients(t *testing.T) {
	out, err := ApplyCoefficients([]float64{1, 2, 3}, []float64{0.5, 0.5, 2})
	if err != nil {
		t.Fatal(err)
	}
	want := []float64{0.5, 1, 6}
	for i := range want {
		if out[i] != want[i] {
			t.Fatalf("out[%d]=%v, want %v", i, out[i], want[i])
		}
	}
	if _, err := ApplyCoefficients([]float64{1}, []float64{1, 2}); err == nil {
		t.Fatal("expected length mismatch error")
	}
}
