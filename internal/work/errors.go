package work

import "errors"

// Domain errors for configuring a demonstration.
var (
	// ErrParameterBounds indicates a value outside its configured limits.
	ErrParameterBounds = errors.New("work: parameter out of valid bounds")

	// ErrInvalidPacing indicates an unknown animation pacing mode.
	ErrInvalidPacing = errors.New("work: unknown animation pacing")

	// ErrInvalidLimits indicates a slider range with min > max or a non-positive step.
	ErrInvalidLimits = errors.New("work: invalid slider limits")
)

// ParamError wraps an error with the offending parameter.
type ParamError struct {
	Name    string
	Value   float64
	Wrapped error
}

func (e *ParamError) Error() string {
	return e.Name + ": " + e.Wrapped.Error()
}

func (e *ParamError) Unwrap() error {
	return e.Wrapped
}
