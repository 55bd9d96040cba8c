package emg

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidParameter reports a configuration value outside its
	// allowed range.
	ErrInvalidParameter = errors.New("emg: invalid parameter")

	// ErrDegenerateInput reports input whose statistics are undefined,
	// such as a single sample, zero variance or non-finite values.
	ErrDegenerateInput = errors.New("emg: degenerate input")

	// ErrInsufficientSamples reports input shorter than an operation needs.
	ErrInsufficientSamples = errors.New("emg: insufficient samples")
)

// ParameterError names the input that failed validation.
type ParameterError struct {
	Name   string
	Value  any
	Reason string
}

func (e *ParameterError) Error() string {
	return fmt.Sprintf("emg: invalid %s %v: %s", e.Name, e.Value, e.Reason)
}

// Unwrap makes a ParameterError match ErrInvalidParameter.
func (e *ParameterError) Unwrap() error {
	return ErrInvalidParameter
}

// InvalidParameter returns a *ParameterError for name.
func InvalidParameter(name string, value any, reason string) error {
	return &ParameterError{Name: name, Value: value, Reason: reason}
}

// Insufficient wraps ErrInsufficientSamples with the required and actual
// sample counts.
func Insufficient(op string, got, need int) error {
	return fmt.Errorf("%w: %s needs %d samples, got %d", ErrInsufficientSamples, op, need, got)
}
