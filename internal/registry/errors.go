package registry

import "errors"

var (
	// ErrServiceNotFound is returned when an operation targets an undefined id.
	ErrServiceNotFound = errors.New("service not found")
	// ErrParameterNotFound is returned when a %placeholder% names no parameter.
	ErrParameterNotFound = errors.New("parameter not found")
	// ErrInvalidArgumentIndex is returned for out-of-range argument replacement.
	ErrInvalidArgumentIndex = errors.New("invalid argument index")
	// ErrCircularReference is returned for alias or parent cycles.
	ErrCircularReference = errors.New("circular reference")
)
