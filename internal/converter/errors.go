package converter

import "errors"

var (
	// ErrMalformedObject is returned when an object-typed value is not valid
	// JSON text.
	ErrMalformedObject = errors.New("malformed object value")
	// ErrEvaluation is returned when a function-typed value names no
	// registered function and cannot be evaluated as an expression.
	ErrEvaluation = errors.New("function value evaluation failed")
)
