// Package peaks locates local maxima in a 1-D signal and thins them to a
// minimum horizontal spacing.
package peaks

import (
	"math"
	"sort"
)

type config struct {
	minDistance int
	minHeight   float64
}

// Option configures Find.
type Option func(*config)

// WithMinDistance requires at least d samples between reported peaks.
// Values below 1 disable distance selection.
func WithMinDistance(d int) Option {
	return func(c *config) {
		c.minDistance = d
	}
}

// WithMinHeight drops peaks lower than h.
func WithMinHeight(h float64) Option {
	return func(c *config) {
		c.minHeight = h
	}
}

// Find returns the positions of local maxima in x, in ascending order.
//
// A peak is a sample strictly greater than its left neighbour followed by a
// flat run of equal samples that ends in a strictly smaller one. Flat tops
// are reported at their midpoint, rounded down. The first and last samples
// are never peaks.
//
// With a minimum distance, peaks are kept from highest to lowest (on equal
// heights the later peak wins) and every kept peak discards the peaks
// closer than the distance.
func Find(x []float64, opts ...Option) []int {
	cfg := config{minHeight: math.Inf(-1)}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	found := localMaxima(x)

	if !math.IsInf(cfg.minHeight, -1) {
		kept := found[:0]
		for _, p := range found {
			if x[p] >= cfg.minHeight {
				kept = append(kept, p)
			}
		}
		found = kept
	}

	if cfg.minDistance > 1 && len(found) > 1 {
		found = selectByDistance(x, found, cfg.minDistance)
	}
	return found
}

func localMaxima(x []float64) []int {
	var out []int
	last := len(x) - 1
	i := 1
	for i < last {
		if x[i-1] < x[i] {
			ahead := i + 1
			for ahead < last && x[ahead] == x[i] {
				ahead++
			}
			if x[ahead] < x[i] {
				right := ahead - 1
				out = append(out, (i+right)/2)
				i = ahead
				continue
			}
		}
		i++
	}
	return out
}

// selectByDistance keeps the highest peaks so that no two kept peaks are
// closer than distance samples. peaks must be ascending.
func selectByDistance(x []float64, peaks []int, distance int) []int {
	n := len(peaks)
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	// Stable ascending sort by height; walking it backwards visits higher
	// peaks first and, among equal heights, later peaks first.
	sort.SliceStable(order, func(a, b int) bool {
		return x[peaks[order[a]]] < x[peaks[order[b]]]
	})

	keep := make([]bool, n)
	for i := range keep {
		keep[i] = true
	}

	for i := n - 1; i >= 0; i-- {
		j := order[i]
		if !keep[j] {
			continue
		}
		for k := j - 1; k >= 0 && peaks[j]-peaks[k] < distance; k-- {
			keep[k] = false
		}
		for k := j + 1; k < n && peaks[k]-peaks[j] < distance; k++ {
			keep[k] = false
		}
	}

	out := make([]int, 0, n)
	for i, p := range peaks {
		if keep[i] {
			out = append(out, p)
		}
	}
	return out
}
