// Package outlier implements the Nalimov outlier test over a 1-D sample
// sequence.
package outlier

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/cwbudde/algo-emg/dsp/core"
	"github.com/cwbudde/algo-emg/emg"
)

// DefaultRankCount is the number of top scores the threshold is drawn from.
const DefaultRankCount = 10

type config struct {
	rankCount int
}

// Option configures Nalimov.
type Option func(*config)

// WithRankCount sets how many of the largest scores define the threshold.
// The threshold is the smallest of those k scores.
func WithRankCount(k int) Option {
	return func(c *config) {
		c.rankCount = k
	}
}

// Scores returns the Nalimov statistic of every sample:
//
//	s_i = |x_i - mean| / std * sqrt(n / (n-1))
//
// where std is the population standard deviation.
func Scores(x []float64) ([]float64, error) {
	n := len(x)
	if n <= 1 {
		return nil, fmt.Errorf("%w: outlier test needs more than one sample, got %d", emg.ErrDegenerateInput, n)
	}
	return scores(x)
}

func scores(x []float64) ([]float64, error) {
	if !core.AllFinite(x) {
		return nil, fmt.Errorf("%w: non-finite sample", emg.ErrDegenerateInput)
	}

	n := float64(len(x))
	mean, std := stat.PopMeanStdDev(x, nil)
	if math.IsNaN(std) || math.IsInf(std, 0) {
		return nil, fmt.Errorf("%w: non-finite variance", emg.ErrDegenerateInput)
	}
	if std == 0 {
		return nil, fmt.Errorf("%w: zero variance", emg.ErrDegenerateInput)
	}

	factor := math.Sqrt(n/(n-1)) / std
	out := make([]float64, len(x))
	for i, v := range x {
		out[i] = math.Abs(v-mean) * factor
	}
	return out, nil
}

// Nalimov returns, in ascending order, the indices whose score is strictly
// greater than the smallest of the RankCount largest scores. Samples tied
// at that threshold are not reported, so at most RankCount-1 indices are
// returned.
func Nalimov(x []float64, opts ...Option) ([]int, error) {
	cfg := config{rankCount: DefaultRankCount}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if cfg.rankCount < 1 {
		return nil, emg.InvalidParameter("rank count", cfg.rankCount, "must be >= 1")
	}

	n := len(x)
	if n <= 1 {
		return nil, fmt.Errorf("%w: outlier test needs more than one sample, got %d", emg.ErrDegenerateInput, n)
	}
	if n < cfg.rankCount {
		return nil, emg.Insufficient("outlier test", n, cfg.rankCount)
	}

	s, err := scores(x)
	if err != nil {
		return nil, err
	}

	sorted := make([]float64, n)
	copy(sorted, s)
	sort.Float64s(sorted)
	threshold := sorted[n-cfg.rankCount]

	var out []int
	for i, v := range s {
		if v > threshold {
			out = append(out, i)
		}
	}
	return out, nil
}
