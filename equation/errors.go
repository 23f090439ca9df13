package equation

import "errors"

var (
	// Scope validation errors
	ErrNoVariables       = errors.New("equation: variable list is empty")
	ErrTooManyVariables  = errors.New("equation: variable list exceeds MaxVariables")
	ErrDuplicateVariable = errors.New("equation: duplicate variable")

	// Transformation errors
	ErrVariableMismatch = errors.New("equation: variable lists differ")
	ErrUnknownVariable  = errors.New("equation: variable not in scope")
)
