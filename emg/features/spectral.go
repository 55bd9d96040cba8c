package features

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-emg/dsp/spectrum"
	"github.com/cwbudde/algo-emg/emg"
	"github.com/cwbudde/algo-emg/stats/frequency"
)

// MeanFrequency returns the power-weighted mean frequency of x in Hz from a
// Hann-windowed periodogram. It falls as a muscle fatigues.
func MeanFrequency(x []float64, fs float64) (float64, error) {
	s, err := spectralStats(x, fs)
	if err != nil {
		return 0, err
	}
	return s.MeanFrequency, nil
}

// MedianFrequency returns the frequency in Hz below which half of the
// power of x lies.
func MedianFrequency(x []float64, fs float64) (float64, error) {
	s, err := spectralStats(x, fs)
	if err != nil {
		return 0, err
	}
	return s.MedianFrequency, nil
}

func spectralStats(x []float64, fs float64) (frequency.Stats, error) {
	if !(fs > 0) || math.IsInf(fs, 0) {
		return frequency.Stats{}, emg.InvalidParameter("sample rate", fs, "must be > 0")
	}
	est, err := spectrum.Periodogram(x, fs)
	if err != nil {
		if errors.Is(err, spectrum.ErrTooShort) {
			return frequency.Stats{}, emg.Insufficient("spectral feature", len(x), 2)
		}
		return frequency.Stats{}, fmt.Errorf("features: %w", err)
	}

	s := frequency.Calculate(est.Power, fs)
	if !(s.TotalPower > 0) || math.IsInf(s.TotalPower, 0) {
		return frequency.Stats{}, fmt.Errorf("%w: no spectral power", emg.ErrDegenerateInput)
	}
	return s, nil
}
