package comb

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-emg/internal/testutil"
)

func TestDesignNotch_Coefficients(t *testing.T) {
	c, err := DesignNotch(50, 5, 1000)
	if err != nil {
		t.Fatal(err)
	}
	if c.N != 20 {
		t.Fatalf("N = %d, want 20", c.N)
	}
	beta := math.Tan(math.Pi / 10)
	if math.Abs(c.B-1/(1+beta)) > 1e-15 || math.Abs(c.A-(1-beta)/(1+beta)) > 1e-15 {
		t.Fatalf("unexpected coefficients %+v", c)
	}
}

func TestDesignNotch_Response(t *testing.T) {
	sr := 1000.0
	c, err := DesignNotch(50, 5, sr)
	if err != nil {
		t.Fatal(err)
	}
	for k := 0; k <= 9; k++ {
		if got := c.MagnitudeDB(float64(50*k), sr); got > -100 {
			t.Fatalf("harmonic %d: %.2f dB, want deep notch", k, got)
		}
	}
	// Half-way between harmonics the comb is transparent.
	if got := c.MagnitudeDB(75, sr); math.Abs(got) > 0.01 {
		t.Fatalf("75 Hz: %.4f dB, want ~0", got)
	}
	// Notch edges sit at +-fundamental/(2q).
	if got := c.MagnitudeDB(55, sr); math.Abs(got+3.0103) > 0.01 {
		t.Fatalf("55 Hz: %.4f dB, want -3.01", got)
	}
}

func TestDesignNotch_InvalidParams(t *testing.T) {
	tests := []struct {
		name          string
		fund, q, rate float64
	}{
		{"zero rate", 50, 5, 0},
		{"zero fundamental", 0, 5, 1000},
		{"above nyquist", 600, 5, 1000},
		{"zero q", 50, 0, 1000},
		{"non-integer period", 60, 5, 1000},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := DesignNotch(tt.fund, tt.q, tt.rate); !errors.Is(err, ErrInvalidParams) {
				t.Fatalf("err = %v, want ErrInvalidParams", err)
			}
		})
	}
}

func TestNotch_RemovesMainsHum(t *testing.T) {
	sr := 1000.0
	c, err := DesignNotch(50, 5, sr)
	if err != nil {
		t.Fatal(err)
	}
	n, err := NewNotch(c)
	if err != nil {
		t.Fatal(err)
	}
	if n.Order() != 20 {
		t.Fatalf("Order = %d, want 20", n.Order())
	}

	hum := testutil.DeterministicSine(50, sr, 1, 4000)
	n.ProcessBlock(hum)
	for i := 3000; i < len(hum); i++ {
		if math.Abs(hum[i]) > 1e-3 {
			t.Fatalf("sample %d: residual %v", i, hum[i])
		}
	}
}

func TestNotch_PrimeRejectsDC(t *testing.T) {
	c, err := DesignNotch(50, 5, 1000)
	if err != nil {
		t.Fatal(err)
	}
	n, err := NewNotch(c)
	if err != nil {
		t.Fatal(err)
	}
	if y := n.Prime(3); y != 0 {
		t.Fatalf("Prime = %v, want 0", y)
	}
	for i := range 50 {
		if y := n.ProcessSample(3); math.Abs(y) > 1e-15 {
			t.Fatalf("sample %d: %v, want 0", i, y)
		}
	}
}

func TestNewNotch_InvalidLength(t *testing.T) {
	if _, err := NewNotch(NotchCoefficients{N: 0}); !errors.Is(err, ErrInvalidParams) {
		t.Fatalf("err = %v, want ErrInvalidParams", err)
	}
}
