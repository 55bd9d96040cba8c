// Package biquad provides biquad (second-order IIR) filter runtime primitives.
//
// A [Section] implements Direct Form II Transposed processing for a single
// second-order section defined by [Coefficients]. Multiple sections can be
// cascaded via [Chain] for higher-order filters such as the Butterworth band
// edges used for EMG bandpass filtering.
//
// Both types can be primed with the steady state of a constant input, which
// the zero-phase driver in dsp/filter/zerophase uses to suppress start-up
// transients.
//
// This package provides the processing runtime only. Coefficient design
// lives in dsp/filter/design.
package biquad
