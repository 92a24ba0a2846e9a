package params

import (
	"errors"
	"fmt"
)

// ErrInvalidParameter is the sentinel wrapped by every strict parameter
// rejection. Use errors.Is(err, ErrInvalidParameter) to detect the family.
var ErrInvalidParameter = errors.New("invalid parameter")

// ParameterError describes a single rejected parameter value.
type ParameterError struct {
	Param  string // Parameter name, e.g. "star_class"
	Value  any    // The rejected value
	Reason string // Human-readable reason for rejection
}

func (e *ParameterError) Error() string {
	return fmt.Sprintf("parameter %q: %s (got %v)", e.Param, e.Reason, e.Value)
}

// Unwrap makes every ParameterError match ErrInvalidParameter.
func (e *ParameterError) Unwrap() error { return ErrInvalidParameter }

// NewParameterError builds a ParameterError for the given parameter.
func NewParameterError(param string, value any, reason string) error {
	return &ParameterError{Param: param, Value: value, Reason: reason}
}
