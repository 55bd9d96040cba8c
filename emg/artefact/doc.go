// Package artefact removes periodic stimulation artefacts, such as those
// injected by functional electrical stimulation, from an EMG recording.
//
// The recording is differenced against itself one stimulation period
// earlier, which cancels anything that repeats exactly with the period.
// The residual is centred and rectified, then the samples around its
// remaining peaks and Nalimov outliers are zeroed.
package artefact
