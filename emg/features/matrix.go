package features

import (
	"fmt"

	"github.com/cwbudde/algo-emg/emg"
)

// Axis selects the reduction direction of a Matrix feature.
type Axis int

const (
	// AxisRows reduces down the rows: one value per column. Each column is
	// a channel and each row a time sample.
	AxisRows Axis = iota
	// AxisColumns reduces along each row: one value per row. Each row is a
	// channel; rows may differ in length.
	AxisColumns
)

func (a Axis) String() string {
	switch a {
	case AxisRows:
		return "rows"
	case AxisColumns:
		return "columns"
	default:
		return fmt.Sprintf("Axis(%d)", int(a))
	}
}

// MAVMatrix returns MAV per channel of m.
func MAVMatrix(m [][]float64, axis Axis) ([]float64, error) {
	return reduce(m, axis, MAV)
}

// WFLMatrix returns WFL per channel of m.
func WFLMatrix(m [][]float64, axis Axis) ([]float64, error) {
	return reduce(m, axis, WFL)
}

// RMSMatrix returns RMS per channel of m.
func RMSMatrix(m [][]float64, axis Axis) ([]float64, error) {
	return reduce(m, axis, RMS)
}

func reduce(m [][]float64, axis Axis, f func([]float64) (float64, error)) ([]float64, error) {
	switch axis {
	case AxisRows:
		cols, err := columns(m)
		if err != nil {
			return nil, err
		}
		return reduceEach(cols, f)
	case AxisColumns:
		if len(m) == 0 {
			return nil, emg.Insufficient("matrix feature", 0, 1)
		}
		return reduceEach(m, f)
	default:
		return nil, emg.InvalidParameter("axis", axis, "must be AxisRows or AxisColumns")
	}
}

func reduceEach(channels [][]float64, f func([]float64) (float64, error)) ([]float64, error) {
	out := make([]float64, len(channels))
	for i, ch := range channels {
		v, err := f(ch)
		if err != nil {
			return nil, fmt.Errorf("channel %d: %w", i, err)
		}
		out[i] = v
	}
	return out, nil
}

// columns transposes a rectangular m into per-column slices.
func columns(m [][]float64) ([][]float64, error) {
	if len(m) == 0 || len(m[0]) == 0 {
		return nil, emg.Insufficient("matrix feature", 0, 1)
	}
	width := len(m[0])
	for i, row := range m {
		if len(row) != width {
			return nil, emg.InvalidParameter("matrix", fmt.Sprintf("row %d", i),
				fmt.Sprintf("has %d columns, want %d", len(row), width))
		}
	}

	cols := make([][]float64, width)
	for j := range cols {
		col := make([]float64, len(m))
		for i, row := range m {
			col[i] = row[j]
		}
		cols[j] = col
	}
	return cols, nil
}
