// Package spectrum estimates one-sided power spectra of real signals and
// provides helpers for working with complex FFT bins.
package spectrum
