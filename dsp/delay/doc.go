// Package delay provides a fixed-size circular delay line used by the comb
// filters.
package delay
