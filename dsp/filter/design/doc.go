// Package design provides digital IIR filter coefficient designers.
//
// The functions in this package produce biquad coefficients consumable by
// dsp/filter/biquad for runtime processing: RBJ-style single sections
// (Lowpass, Highpass, Notch), Butterworth cascades and the composite
// bandpass and harmonic notch banks used for EMG conditioning.
//
// The sub-package design/pass holds the Butterworth cascade designers.
package design
