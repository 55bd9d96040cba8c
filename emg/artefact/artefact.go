package artefact

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-emg/dsp/core"
	"github.com/cwbudde/algo-emg/dsp/filter/comb"
	"github.com/cwbudde/algo-emg/emg"
	"github.com/cwbudde/algo-emg/emg/outlier"
	"github.com/cwbudde/algo-emg/emg/peaks"
	timestats "github.com/cwbudde/algo-emg/stats/time"
)

// Report describes what Remove suppressed.
type Report struct {
	// Period is the comb delay in samples, fs/freq.
	Period int
	// Peaks are the primary suppression anchors.
	Peaks []int
	// Outliers are the secondary suppression anchors from the Nalimov test.
	Outliers []int
}

// Period returns the comb delay fs/freq in samples (integer division).
func Period(fs, freq int) (int, error) {
	if fs <= 0 {
		return 0, emg.InvalidParameter("fs", fs, "must be > 0")
	}
	if freq <= 0 {
		return 0, emg.InvalidParameter("freq", freq, "must be > 0")
	}
	l := fs / freq
	if l < 1 {
		return 0, emg.InvalidParameter("freq", freq, fmt.Sprintf("must not exceed fs (%d)", fs))
	}
	return l, nil
}

// Remove suppresses an artefact repeating at freq Hz in data sampled at
// fs Hz and returns a new slice of the same length.
//
// The result is the rectified, mean-centred comb residual with the
// neighbourhoods of its peaks and outliers zeroed. It is not in the units
// or polarity of data; the first Period samples are always zero before
// centring.
func Remove(data []float64, fs, freq int, opts ...Option) ([]float64, error) {
	out, _, err := RemoveWithReport(data, fs, freq, opts...)
	return out, err
}

// RemoveWithReport is Remove that also returns the suppression anchors.
func RemoveWithReport(data []float64, fs, freq int, opts ...Option) ([]float64, Report, error) {
	cfg := ApplyOptions(opts...)
	if err := validate(cfg); err != nil {
		return nil, Report{}, err
	}

	period, err := Period(fs, freq)
	if err != nil {
		return nil, Report{}, err
	}
	rep := Report{Period: period}

	filtered, err := comb.FeedForward(data, period, cfg.CombCoefficient)
	if err != nil {
		return nil, rep, fmt.Errorf("artefact: comb: %w", err)
	}

	mean := timestats.Mean(filtered)
	for i, v := range filtered {
		filtered[i] = math.Abs(v - mean)
	}

	rep.Peaks = peaks.Find(filtered, peaks.WithMinDistance(cfg.PeakDistance))
	Suppress(filtered, rep.Peaks, cfg.HalfWidth)

	rep.Outliers, err = outlier.Nalimov(filtered, cfg.OutlierOptions...)
	if err != nil {
		return nil, rep, fmt.Errorf("artefact: outlier pass: %w", err)
	}
	Suppress(filtered, rep.Outliers, cfg.HalfWidth)

	return filtered, rep, nil
}

// Suppress zeroes buf[a-halfWidth : a+halfWidth] around every anchor a,
// clipped to the bounds of buf.
func Suppress(buf []float64, anchors []int, halfWidth int) {
	for _, a := range anchors {
		core.ZeroRange(buf, a-halfWidth, a+halfWidth)
	}
}

func validate(cfg Config) error {
	if math.IsNaN(cfg.CombCoefficient) || math.IsInf(cfg.CombCoefficient, 0) {
		return emg.InvalidParameter("comb coefficient", cfg.CombCoefficient, "must be finite")
	}
	if cfg.HalfWidth < 0 {
		return emg.InvalidParameter("half width", cfg.HalfWidth, "must be >= 0")
	}
	if cfg.PeakDistance < 1 {
		return emg.InvalidParameter("peak distance", cfg.PeakDistance, "must be >= 1")
	}
	return nil
}
