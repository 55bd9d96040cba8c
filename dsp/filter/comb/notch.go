package comb

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/cwbudde/algo-emg/dsp/core"
	"github.com/cwbudde/algo-emg/dsp/delay"
)

// periodTolerance bounds how far sampleRate/fundamental may sit from an
// integer before the comb is rejected.
const periodTolerance = 1e-9

// NotchCoefficients describes H(z) = B (1 - z^-N) / (1 - A z^-N).
type NotchCoefficients struct {
	N int
	B float64
	A float64
}

// DesignNotch designs a notching comb at fundamental (Hz) and all of its
// harmonics, including DC. q sets the -3 dB notch width to fundamental/q.
// sampleRate must be an integer multiple of fundamental.
func DesignNotch(fundamental, q, sampleRate float64) (NotchCoefficients, error) {
	if sampleRate <= 0 || math.IsNaN(sampleRate) || math.IsInf(sampleRate, 0) {
		return NotchCoefficients{}, fmt.Errorf("%w: sample rate must be > 0: %g", ErrInvalidParams, sampleRate)
	}
	if !(fundamental > 0 && fundamental < sampleRate/2) {
		return NotchCoefficients{}, fmt.Errorf("%w: fundamental %g Hz outside (0, %g)", ErrInvalidParams, fundamental, sampleRate/2)
	}
	if !(q > 0) || math.IsInf(q, 0) {
		return NotchCoefficients{}, fmt.Errorf("%w: quality factor must be > 0: %g", ErrInvalidParams, q)
	}

	ratio := sampleRate / fundamental
	n := math.Round(ratio)
	if math.Abs(ratio-n) > periodTolerance*ratio {
		return NotchCoefficients{}, fmt.Errorf("%w: sample rate %g is not a multiple of %g Hz", ErrInvalidParams, sampleRate, fundamental)
	}

	// -3 dB edges at +-fundamental/(2q) around every harmonic.
	beta := math.Tan(math.Pi / (2 * q))

	return NotchCoefficients{
		N: int(n),
		B: 1 / (1 + beta),
		A: (1 - beta) / (1 + beta),
	}, nil
}

// Response returns H(e^jw) at freqHz.
func (c NotchCoefficients) Response(freqHz, sampleRate float64) complex128 {
	w := 2 * math.Pi * freqHz / sampleRate
	zN := cmplx.Exp(complex(0, -w*float64(c.N)))
	return complex(c.B, 0) * (1 - zN) / (1 - complex(c.A, 0)*zN)
}

// MagnitudeDB returns 20*log10(|H(f)|).
func (c NotchCoefficients) MagnitudeDB(freqHz, sampleRate float64) float64 {
	return 20 * math.Log10(cmplx.Abs(c.Response(freqHz, sampleRate)))
}

// Notch is the running state of a notching comb.
type Notch struct {
	NotchCoefficients

	in  *delay.Line
	out *delay.Line
}

// NewNotch returns a Notch with zero history.
func NewNotch(c NotchCoefficients) (*Notch, error) {
	if c.N < 1 {
		return nil, fmt.Errorf("%w: comb length must be >= 1: %d", ErrInvalidParams, c.N)
	}
	in, err := delay.New(c.N)
	if err != nil {
		return nil, err
	}
	out, err := delay.New(c.N)
	if err != nil {
		return nil, err
	}
	return &Notch{NotchCoefficients: c, in: in, out: out}, nil
}

// ProcessSample filters one input sample and returns the output.
func (n *Notch) ProcessSample(x float64) float64 {
	y := n.B*(x-n.in.Read(n.N)) + n.A*n.out.Read(n.N)
	y = core.FlushDenormals(y)
	n.in.Write(x)
	n.out.Write(y)
	return y
}

// ProcessBlock filters buf in place.
func (n *Notch) ProcessBlock(buf []float64) {
	for i, x := range buf {
		buf[i] = n.ProcessSample(x)
	}
}

// Prime loads the steady state of a constant input x. The comb rejects DC,
// so the steady output is always 0.
func (n *Notch) Prime(x float64) float64 {
	n.in.Fill(x)
	n.out.Fill(0)
	return 0
}

// Reset clears the history.
func (n *Notch) Reset() {
	n.in.Reset()
	n.out.Reset()
}

// Order returns the filter order N.
func (n *Notch) Order() int {
	return n.N
}
