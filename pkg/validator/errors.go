package validator

import "errors"

var (
	// ErrEmptyRule is returned when a rule spec compiles to no checks.
	ErrEmptyRule = errors.New("validator: rule spec contains no checks")

	// ErrUnknownCheck is returned when a rule names a check that is not in
	// the engine's table. This is an engine fault, not a validation failure.
	ErrUnknownCheck = errors.New("validator: unknown check")

	// ErrInvalidArgument is returned when a check argument cannot be parsed,
	// e.g. a non-numeric bound in "min:abc".
	ErrInvalidArgument = errors.New("validator: invalid check argument")
)
