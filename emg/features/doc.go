// Package features computes amplitude and spectral features of EMG
// segments.
//
// Scalar features take a 1-D segment. The Matrix variants take a rank-2
// slice and an explicit Axis, so the reduction direction is never inferred
// from the shape of the input.
package features
