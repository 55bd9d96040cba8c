package peaks

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFind_LocalMaxima(t *testing.T) {
	tests := []struct {
		name string
		x    []float64
		want []int
	}{
		{"empty", nil, nil},
		{"too short", []float64{1, 2}, nil},
		{"single", []float64{0, 1, 0}, []int{1}},
		{"edges excluded", []float64{5, 1, 2, 1, 5}, []int{2}},
		{"monotonic", []float64{1, 2, 3, 4}, nil},
		{"flat top odd", []float64{0, 1, 1, 1, 0}, []int{2}},
		{"flat top even rounds down", []float64{0, 1, 1, 1, 1, 0}, []int{2}},
		{"plateau reaching end", []float64{0, 1, 1, 1}, nil},
		{"shoulder", []float64{0, 1, 1, 2, 0}, []int{3}},
		{"several", []float64{0, 3, 0, 2, 0, 4, 4, 0}, []int{1, 3, 5}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Find(tt.x))
		})
	}
}

func TestFind_MinDistancePrefersHigher(t *testing.T) {
	x := []float64{0, 1, 0, 3, 0, 2, 0, 0, 0, 0, 0, 5, 0}
	assert.Equal(t, []int{3, 11}, Find(x, WithMinDistance(4)))
}

func TestFind_MinDistanceTiesKeepLater(t *testing.T) {
	x := []float64{0, 2, 0, 2, 0}
	assert.Equal(t, []int{3}, Find(x, WithMinDistance(3)))
}

func TestFind_MinDistanceExactSpacingKept(t *testing.T) {
	x := []float64{0, 1, 0, 0, 1, 0}
	assert.Equal(t, []int{1, 4}, Find(x, WithMinDistance(3)))
	assert.Equal(t, []int{4}, Find(x, WithMinDistance(4)))
}

func TestFind_DiscardedPeakDoesNotSuppress(t *testing.T) {
	// 2 is removed by 3, so it cannot remove 1 in turn.
	x := []float64{0, 3, 0, 0, 2, 0, 0, 1, 0}
	assert.Equal(t, []int{1, 7}, Find(x, WithMinDistance(4)))
}

func TestFind_MinHeight(t *testing.T) {
	x := []float64{0, 1, 0, 3, 0, 2, 0}
	assert.Equal(t, []int{3, 5}, Find(x, WithMinHeight(2)))
	assert.Empty(t, Find(x, WithMinHeight(10)))
}

func TestFind_DistanceOneIsNoOp(t *testing.T) {
	x := []float64{0, 1, 0, 1, 0}
	assert.Equal(t, Find(x), Find(x, WithMinDistance(1)))
}

func TestFind_DoesNotModifyInput(t *testing.T) {
	x := []float64{0, 2, 0, 3, 0}
	orig := append([]float64(nil), x...)
	Find(x, WithMinDistance(5), WithMinHeight(1))
	assert.Equal(t, orig, x)
}
