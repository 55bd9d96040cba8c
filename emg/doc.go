// Package emg holds the error taxonomy shared by the surface
// electromyography processing packages:
//
//   - emg/outlier: Nalimov outlier test
//   - emg/peaks: local-maximum detection with minimum spacing
//   - emg/artefact: removal of periodic stimulation artefacts
//   - emg/filtrect: line-noise notch, band-pass and rectification
//   - emg/features: amplitude and spectral features
//
// Every entry point is a pure function over []float64 and returns a freshly
// allocated result. Failures wrap one of the sentinels below, so callers
// can branch with errors.Is and inspect offending inputs with errors.As on
// *ParameterError.
package emg
