package validator

import "errors"

var (
	// ErrValidationFailed matches every ValidationError and ValidationErrors value via errors.Is.
	ErrValidationFailed = errors.New("validation failed")

	// ErrInvalidExpression is returned when an expression validator cannot be compiled.
	ErrInvalidExpression = errors.New("invalid validation expression")

	// ErrInvalidPattern is returned when a pattern validator receives a malformed regular expression.
	ErrInvalidPattern = errors.New("invalid validation pattern")
)
