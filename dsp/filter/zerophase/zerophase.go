package zerophase

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-emg/dsp/core"
)

// ErrSignalTooShort is returned when the signal is not longer than the
// reflection padding.
var ErrSignalTooShort = errors.New("zerophase: signal too short")

// Filter is a causal filter that can be primed with a constant input.
// Both *biquad.Chain and *comb.Notch satisfy it.
type Filter interface {
	ProcessBlock(buf []float64)
	Prime(x float64) float64
	Reset()
}

// PadLength returns the default reflection length for a filter of the
// given order: three times the number of coefficients.
func PadLength(order int) int {
	if order < 0 {
		order = 0
	}
	return 3 * (order + 1)
}

// Apply filters data forwards and backwards with f and returns a new slice
// of the same length. padLen samples are reflected at each end before
// filtering; data must be strictly longer than padLen. f is left reset.
func Apply(f Filter, data []float64, padLen int) ([]float64, error) {
	if padLen < 0 {
		return nil, fmt.Errorf("zerophase: pad length must be >= 0: %d", padLen)
	}
	n := len(data)
	if n == 0 || n <= padLen {
		return nil, fmt.Errorf("%w: %d samples, need more than %d", ErrSignalTooShort, n, padLen)
	}

	ext := extend(data, padLen)

	f.Reset()
	f.Prime(ext[0])
	f.ProcessBlock(ext)

	core.Reverse(ext)
	f.Reset()
	f.Prime(ext[0])
	f.ProcessBlock(ext)
	core.Reverse(ext)
	f.Reset()

	out := make([]float64, n)
	copy(out, ext[padLen:padLen+n])
	return out, nil
}

// extend reflects data around its end points: the padding mirrors the
// signal through the first and last sample values.
func extend(data []float64, padLen int) []float64 {
	n := len(data)
	ext := make([]float64, n+2*padLen)
	first, last := data[0], data[n-1]
	for i := range padLen {
		ext[i] = 2*first - data[padLen-i]
		ext[padLen+n+i] = 2*last - data[n-2-i]
	}
	copy(ext[padLen:], data)
	return ext
}
