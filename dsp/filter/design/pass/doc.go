// Package pass designs lowpass and highpass Butterworth cascades as biquad
// sections. Second-order sections use the RBJ cookbook prototypes, which for
// Butterworth quality factors equal the bilinear transform of the analog
// Butterworth poles prewarped at the cutoff.
package pass
