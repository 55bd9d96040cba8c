package core

// Clone returns a copy of src backed by a new array.
// A nil src yields an empty, non-nil slice.
func Clone(src []float64) []float64 {
	out := make([]float64, len(src))
	copy(out, src)
	return out
}

// Zero sets all values in buf to 0.
func Zero(buf []float64) {
	for i := range buf {
		buf[i] = 0
	}
}

// ZeroRange sets buf[start:end] to 0. Indices are clamped to valid bounds,
// so ranges hanging off either end of buf are partially applied and ranges
// entirely outside buf are ignored.
func ZeroRange(buf []float64, start, end int) {
	start = ClampInt(start, 0, len(buf))
	end = ClampInt(end, 0, len(buf))
	if start >= end {
		return
	}
	Zero(buf[start:end])
}

// Reverse reverses buf in place.
func Reverse(buf []float64) {
	for i, j := 0, len(buf)-1; i < j; i, j = i+1, j-1 {
		buf[i], buf[j] = buf[j], buf[i]
	}
}
