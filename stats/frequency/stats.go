// Package frequency computes spectral moments of a one-sided power
// spectrum, as used for muscle fatigue tracking.
package frequency

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Stats holds spectral moments of a one-sided power spectrum.
type Stats struct {
	BinCount        int
	TotalPower      float64
	MeanFrequency   float64 // power-weighted mean frequency (Hz)
	MedianFrequency float64 // frequency splitting power into halves (Hz)
	PeakFrequency   float64 // frequency of the largest bin (Hz)
	Spread          float64 // power-weighted std dev around the mean (Hz)
}

// BinFrequency returns the frequency in Hz of bin i of a one-sided spectrum
// with binCount bins, i.e. an FFT size of 2*(binCount-1).
func BinFrequency(i int, sampleRate float64, binCount int) float64 {
	if binCount < 2 {
		return 0
	}
	return float64(i) * sampleRate / float64(2*(binCount-1))
}

// Frequencies returns the bin frequencies for a spectrum of binCount bins.
func Frequencies(sampleRate float64, binCount int) []float64 {
	out := make([]float64, binCount)
	for i := range out {
		out[i] = BinFrequency(i, sampleRate, binCount)
	}
	return out
}

// Calculate computes all moments of power. Spectra with fewer than two bins
// or zero total power yield zero moments.
func Calculate(power []float64, sampleRate float64) Stats {
	n := len(power)
	s := Stats{BinCount: n}
	if n < 2 {
		if n == 1 {
			s.TotalPower = power[0]
		}
		return s
	}

	s.TotalPower = floats.Sum(power)
	if s.TotalPower <= 0 {
		return s
	}

	freqs := Frequencies(sampleRate, n)
	s.MeanFrequency = floats.Dot(freqs, power) / s.TotalPower
	s.MedianFrequency = median(power, freqs, s.TotalPower)
	s.PeakFrequency = freqs[floats.MaxIdx(power)]

	var acc float64
	for i, p := range power {
		d := freqs[i] - s.MeanFrequency
		acc += d * d * p
	}
	s.Spread = math.Sqrt(acc / s.TotalPower)

	return s
}

// MeanFrequency returns sum(f_i * P_i) / sum(P_i).
func MeanFrequency(power []float64, sampleRate float64) float64 {
	return Calculate(power, sampleRate).MeanFrequency
}

// MedianFrequency returns the lowest bin frequency at which the cumulative
// power reaches half of the total.
func MedianFrequency(power []float64, sampleRate float64) float64 {
	return Calculate(power, sampleRate).MedianFrequency
}

func median(power, freqs []float64, total float64) float64 {
	half := total / 2
	var cum float64
	for i, p := range power {
		cum += p
		if cum >= half {
			return freqs[i]
		}
	}
	return freqs[len(freqs)-1]
}
