package features

import (
	"fmt"

	"github.com/cwbudde/algo-vecmath"
	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/floats"

	"github.com/cwbudde/algo-emg/emg"
	timestats "github.com/cwbudde/algo-emg/stats/time"
)

// RMS returns the root mean square sqrt(mean(x^2)).
func RMS(x []float64) (float64, error) {
	if len(x) == 0 {
		return 0, emg.Insufficient("rms", 0, 1)
	}
	return timestats.Calculate(x).RMS, nil
}

// MAV returns the mean absolute value mean(|x|).
func MAV(x []float64) (float64, error) {
	if len(x) == 0 {
		return 0, emg.Insufficient("mav", 0, 1)
	}
	return timestats.Calculate(x).MeanAbs, nil
}

// MAD returns the unscaled median absolute deviation median(|x - median(x)|).
func MAD(x []float64) (float64, error) {
	if len(x) == 0 {
		return 0, emg.Insufficient("mad", 0, 1)
	}
	v, err := stats.MedianAbsoluteDeviation(stats.Float64Data(x))
	if err != nil {
		return 0, fmt.Errorf("features: mad: %w", err)
	}
	return v, nil
}

// WFL returns the waveform length sum(|x[i+1] - x[i]|).
func WFL(x []float64) (float64, error) {
	if len(x) < 2 {
		return 0, emg.Insufficient("wfl", len(x), 2)
	}
	return timestats.Calculate(x).WaveformLength, nil
}

// Max returns the largest sample.
func Max(x []float64) (float64, error) {
	if len(x) == 0 {
		return 0, emg.Insufficient("max", 0, 1)
	}
	return floats.Max(x), nil
}

// TKEO returns the Teager-Kaiser energy x[i]^2 - x[i+1]*x[i-1] for every
// interior sample, so the result has len(x)-2 elements.
func TKEO(x []float64) ([]float64, error) {
	n := len(x)
	if n < 3 {
		return nil, emg.Insufficient("tkeo", n, 3)
	}
	mid := x[1 : n-1]

	out := make([]float64, n-2)
	vecmath.MulBlock(out, mid, mid)

	cross := make([]float64, n-2)
	vecmath.ScaleBlock(cross, x[2:], -1)
	vecmath.MulBlockInPlace(cross, x[:n-2])
	vecmath.AddBlockInPlace(out, cross)

	return out, nil
}
