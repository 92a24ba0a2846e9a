package chart

import "fmt"

// SpecError represents a single invalid field in a chart specification.
type SpecError struct {
	Field  string // Dotted path into the spec, e.g. "traces[2].y"
	Reason string // Human-readable reason for failure
}

func (e *SpecError) Error() string {
	return fmt.Sprintf("field %q: %s", e.Field, e.Reason)
}

// AggregateError represents multiple specification failures.
type AggregateError struct {
	Errors []error
}

func (e *AggregateError) Error() string {
	if len(e.Errors) == 1 {
		return e.Errors[0].Error()
	}
	msg := fmt.Sprintf("%d spec errors:\n", len(e.Errors))
	for i, err := range e.Errors {
		msg += fmt.Sprintf("  %d. %s\n", i+1, err.Error())
	}
	return msg
}

// SpecErrors returns all field errors if err is an AggregateError.
// Otherwise returns nil.
func SpecErrors(err error) []error {
	if aggr, ok := err.(*AggregateError); ok {
		return aggr.Errors
	}
	return nil
}
