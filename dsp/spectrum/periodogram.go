package spectrum

import (
	"errors"
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"

	"github.com/cwbudde/algo-emg/dsp/window"
	timestats "github.com/cwbudde/algo-emg/stats/time"
)

// ErrTooShort is returned when a signal has fewer than two samples.
var ErrTooShort = errors.New("spectrum: need at least 2 samples")

// Estimate is a one-sided power spectral density.
type Estimate struct {
	// Power holds FFTSize/2+1 bins from DC to Nyquist, in units^2/Hz.
	Power      []float64
	SampleRate float64
	FFTSize    int
}

// Frequency returns the centre frequency of bin i in Hz.
func (e Estimate) Frequency(i int) float64 {
	if e.FFTSize == 0 {
		return 0
	}
	return float64(i) * e.SampleRate / float64(e.FFTSize)
}

// Option configures Periodogram.
type Option func(*periodogramConfig)

type periodogramConfig struct {
	window  window.Type
	fftSize int
	detrend bool
}

// WithWindow selects the taper. The default is a periodic Hann window.
func WithWindow(t window.Type) Option {
	return func(c *periodogramConfig) { c.window = t }
}

// WithFFTSize sets a minimum FFT size. The effective size is the next power
// of two that covers both this value and the signal length.
func WithFFTSize(n int) Option {
	return func(c *periodogramConfig) {
		if n > 0 {
			c.fftSize = n
		}
	}
}

// WithDetrend controls whether the mean is removed before windowing. It is
// enabled by default.
func WithDetrend(enabled bool) Option {
	return func(c *periodogramConfig) { c.detrend = enabled }
}

// Periodogram returns the windowed one-sided power spectral density of x.
// The signal is zero-padded to a power-of-two FFT size.
func Periodogram(x []float64, sampleRate float64, opts ...Option) (Estimate, error) {
	if len(x) < 2 {
		return Estimate{}, fmt.Errorf("%w: got %d", ErrTooShort, len(x))
	}
	if !(sampleRate > 0) || math.IsInf(sampleRate, 0) {
		return Estimate{}, fmt.Errorf("spectrum: sample rate must be > 0: %g", sampleRate)
	}

	cfg := periodogramConfig{window: window.TypeHann, detrend: true}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	n := len(x)
	fftSize := nextPow2(max(n, cfg.fftSize))

	w := window.Generate(cfg.window, n, window.WithPeriodic())
	gain, err := window.PowerGain(w)
	if err != nil {
		return Estimate{}, err
	}
	if gain == 0 {
		return Estimate{}, fmt.Errorf("spectrum: window %v has zero power", cfg.window)
	}

	centred := x
	if cfg.detrend {
		offset := timestats.Mean(x)
		centred = make([]float64, n)
		for i, v := range x {
			centred[i] = v - offset
		}
	}
	tapered, err := window.ApplyCoefficients(centred, w)
	if err != nil {
		return Estimate{}, err
	}

	in := make([]complex128, fftSize)
	for i, v := range tapered {
		in[i] = complex(v, 0)
	}

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return Estimate{}, fmt.Errorf("spectrum: fft plan: %w", err)
	}
	out := make([]complex128, fftSize)
	if err := plan.Forward(out, in); err != nil {
		return Estimate{}, fmt.Errorf("spectrum: fft: %w", err)
	}

	bins := fftSize/2 + 1
	power := make([]float64, bins)
	powerInto(power, out[:bins])

	scale := 1 / (sampleRate * gain)
	for k := range power {
		power[k] *= scale
		if k > 0 && k < fftSize/2 {
			power[k] *= 2
		}
	}

	return Estimate{Power: power, SampleRate: sampleRate, FFTSize: fftSize}, nil
}

func nextPow2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}
