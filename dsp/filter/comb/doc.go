// Package comb implements comb filters built on dsp/delay lines.
//
// [Difference] is the fixed-coefficient feed-forward comb
// y[n] = x[n] - b*x[n-L] that cancels every component periodic in L
// samples. [Notch] is the recursive comb
// H(z) = b (1 - z^-N) / (1 - a z^-N) that notches a fundamental and all of
// its harmonics, the usual way to strip mains interference from biosignals.
package comb
