package comb

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-emg/dsp/delay"
)

// ErrInvalidParams is returned for periods, frequencies or quality factors
// that do not describe a realizable comb.
var ErrInvalidParams = errors.New("comb: invalid parameters")

// Difference is a feed-forward comb y[n] = x[n] - Coeff*x[n-Period].
// Until Period samples of history exist the output is 0.
type Difference struct {
	line   *delay.Line
	coeff  float64
	period int
	seen   int
}

// NewDifference returns a feed-forward comb with the given period in
// samples and delayed-tap coefficient.
func NewDifference(period int, coeff float64) (*Difference, error) {
	if period < 1 {
		return nil, fmt.Errorf("%w: period must be >= 1: %d", ErrInvalidParams, period)
	}
	line, err := delay.New(period)
	if err != nil {
		return nil, err
	}
	return &Difference{line: line, coeff: coeff, period: period}, nil
}

// Period returns the comb delay in samples.
func (d *Difference) Period() int { return d.period }

// ProcessSample filters one input sample and returns the output.
func (d *Difference) ProcessSample(x float64) float64 {
	var y float64
	if d.seen >= d.period {
		y = x - d.coeff*d.line.Read(d.period)
	} else {
		d.seen++
	}
	d.line.Write(x)
	return y
}

// ProcessBlock filters buf in place.
func (d *Difference) ProcessBlock(buf []float64) {
	for i, x := range buf {
		buf[i] = d.ProcessSample(x)
	}
}

// Reset clears the history.
func (d *Difference) Reset() {
	d.line.Reset()
	d.seen = 0
}

// FeedForward returns data filtered by a fresh Difference comb. The input
// is not modified and the output has the same length.
func FeedForward(data []float64, period int, coeff float64) ([]float64, error) {
	d, err := NewDifference(period, coeff)
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(data))
	copy(out, data)
	d.ProcessBlock(out)
	return out, nil
}
