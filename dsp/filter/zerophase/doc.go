// Package zerophase runs a causal filter forwards and backwards over a
// finite signal so that the combined response has no phase delay.
//
// The signal is extended at both ends by odd reflection and the filter
// state is primed with the steady state of the first sample of each pass,
// which keeps start-up transients out of the returned samples.
package zerophase
