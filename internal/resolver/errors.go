// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package resolver

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-envjson/internal/converter"
)

// Kinds of fatal resolution errors. A *FatalError always wraps exactly one
// of them.
var (
	// ErrRequired indicates a required variable with no value from the
	// environment, a default or a mode override.
	ErrRequired = errors.New("required variable has no value")
	// ErrUnsupportedType indicates a declared or inferred type with no
	// converter.
	ErrUnsupportedType = errors.New("unsupported variable type")
	// ErrInvalidValue indicates a value rejected by its type's validator or
	// an object value that is not valid JSON.
	ErrInvalidValue = errors.New("invalid variable value")
	// ErrEvaluation indicates a function-typed value that could not be
	// evaluated.
	ErrEvaluation = errors.New("variable evaluation failed")
)

// FatalError reports the variable that stopped a resolver pass.
type FatalError struct {
	// Key is the variable name.
	Key string
	// Kind is one of ErrRequired, ErrUnsupportedType, ErrInvalidValue or
	// ErrEvaluation.
	Kind error
	// Type is the type name that was looked up, as declared or inferred.
	Type any
	// Value is the raw value before parsing.
	Value any
	// Err is the underlying cause, if any.
	Err error
}

func (e *FatalError) Error() string {
	var msg string
	switch e.Kind {
	case ErrRequired:
		msg = fmt.Sprintf("Required environment variable `%s`", e.Key)
	case ErrUnsupportedType:
		msg = fmt.Sprintf("Unsupported type for environment variable `%s`: %s", e.Key, converter.Stringify(e.Type))
	case ErrEvaluation:
		msg = fmt.Sprintf("Cannot evaluate environment variable `%s`: %s", e.Key, converter.Stringify(e.Value))
	default:
		msg = fmt.Sprintf("Invalid value for environment variable `%s`: %s", e.Key, converter.Stringify(e.Value))
	}

	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap exposes both the kind and the cause to errors.Is and errors.As.
func (e *FatalError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}
