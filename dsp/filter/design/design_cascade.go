package design

import (
	"fmt"

	"github.com/cwbudde/algo-emg/dsp/filter/biquad"
	"github.com/cwbudde/algo-emg/dsp/filter/design/pass"
)

// ButterworthLP designs a lowpass Butterworth cascade.
//
// For odd orders, the final section is first-order (B2=A2=0).
func ButterworthLP(freq float64, order int, sampleRate float64) []biquad.Coefficients {
	return pass.ButterworthLP(freq, order, sampleRate)
}

// ButterworthHP designs a highpass Butterworth cascade.
//
// For odd orders, the final section is first-order (B2=A2=0).
func ButterworthHP(freq float64, order int, sampleRate float64) []biquad.Coefficients {
	return pass.ButterworthHP(freq, order, sampleRate)
}

// ButterworthBandpass designs a bandpass cascade as a Butterworth highpass
// at low followed by a Butterworth lowpass at high, each of the given
// order. Both edges sit at -3 dB.
func ButterworthBandpass(low, high float64, order int, sampleRate float64) ([]biquad.Coefficients, error) {
	if order <= 0 {
		return nil, fmt.Errorf("%w: order must be > 0: %d", ErrInvalidParams, order)
	}
	if !(low > 0 && low < high && high < sampleRate/2) {
		return nil, fmt.Errorf("%w: band [%g, %g] Hz outside (0, %g)", ErrInvalidParams, low, high, sampleRate/2)
	}

	hp := pass.ButterworthHP(low, order, sampleRate)
	lp := pass.ButterworthLP(high, order, sampleRate)

	sections := make([]biquad.Coefficients, 0, len(hp)+len(lp))
	sections = append(sections, hp...)
	sections = append(sections, lp...)
	return sections, nil
}

// NotchHarmonics designs one notch per harmonic k*fundamental below
// Nyquist. Every notch has the same bandwidth fundamental/q, so the quality
// factor of the k-th notch is k*q.
func NotchHarmonics(fundamental, q, sampleRate float64) ([]biquad.Coefficients, error) {
	if _, ok := normalizedW0(fundamental, sampleRate); !ok {
		return nil, fmt.Errorf("%w: notch frequency %g Hz outside (0, %g)", ErrInvalidParams, fundamental, sampleRate/2)
	}
	if q <= 0 {
		return nil, fmt.Errorf("%w: quality factor must be > 0: %g", ErrInvalidParams, q)
	}

	var sections []biquad.Coefficients
	for k := 1; float64(k)*fundamental < sampleRate/2; k++ {
		sections = append(sections, Notch(float64(k)*fundamental, float64(k)*q, sampleRate))
	}
	return sections, nil
}
