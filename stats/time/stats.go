// Package time computes amplitude statistics of a sampled signal in the
// time domain.
package time

import "math"

// Summary holds amplitude statistics of one signal segment.
type Summary struct {
	Length         int
	Mean           float64
	MeanAbs        float64 // mean absolute value
	RMS            float64
	Variance       float64 // population variance
	StdDev         float64
	Peak           float64 // max |x|
	WaveformLength float64 // sum |x[i]-x[i-1]|
	ZeroCrossings  int
}

// Calculate returns the Summary of signal in a single pass. An empty signal
// yields the zero Summary.
func Calculate(signal []float64) Summary {
	var acc Accumulator
	acc.Update(signal)
	return acc.Result()
}

// Mean returns the arithmetic mean using compensated summation.
func Mean(signal []float64) float64 {
	if len(signal) == 0 {
		return 0
	}
	var sum, c float64
	for _, x := range signal {
		y := x - c
		t := sum + y
		c = (t - sum) - y
		sum = t
	}
	return sum / float64(len(signal))
}

// Accumulator collects a Summary incrementally across blocks. Feeding the
// same samples in any block partition gives the same Result as Calculate.
type Accumulator struct {
	n       int
	mean    float64
	m2      float64
	sumAbs  float64
	sumSq   float64
	peak    float64
	wl      float64
	zc      int
	last    float64
	hasLast bool
}

// Update adds samples to the running statistics.
func (a *Accumulator) Update(samples []float64) {
	for _, x := range samples {
		a.n++
		delta := x - a.mean
		a.mean += delta / float64(a.n)
		a.m2 += delta * (x - a.mean)

		ax := math.Abs(x)
		a.sumAbs += ax
		a.sumSq += x * x
		if ax > a.peak {
			a.peak = ax
		}

		if a.hasLast {
			a.wl += math.Abs(x - a.last)
			if a.last*x < 0 {
				a.zc++
			}
		}
		a.last = x
		a.hasLast = true
	}
}

// Result returns the statistics of everything seen so far.
func (a *Accumulator) Result() Summary {
	if a.n == 0 {
		return Summary{}
	}
	nf := float64(a.n)
	variance := a.m2 / nf
	return Summary{
		Length:         a.n,
		Mean:           a.mean,
		MeanAbs:        a.sumAbs / nf,
		RMS:            math.Sqrt(a.sumSq / nf),
		Variance:       variance,
		StdDev:         math.Sqrt(variance),
		Peak:           a.peak,
		WaveformLength: a.wl,
		ZeroCrossings:  a.zc,
	}
}

// Reset clears the accumulator.
func (a *Accumulator) Reset() {
	*a = Accumulator{}
}
