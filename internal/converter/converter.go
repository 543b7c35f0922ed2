// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package converter implements the parse and validate pair of every
// supported variable type.
//
// The set of types is closed: string, number, boolean, date, object and
// function. Parsing is only ever applied to string input (values read from
// the environment or string literals in the configuration file); values of
// any other kind are validated as they are.
package converter

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"time"
)

// Func is a programmatically registered function value. It receives a copy
// of the namespace as resolved so far.
type Func func(vars map[string]any) (any, error)

// Functions maps a name, as written in the configuration, to a Func.
type Functions map[string]Func

// Evaluator evaluates function-typed text that does not name a registered
// Func.
type Evaluator interface {
	Eval(src string, vars map[string]any) (any, error)
}

// Scope exposes the values visible to function-typed variables.
type Scope interface {
	Values() map[string]any
}

// Table dispatches parse and validate calls over the closed Type set.
type Table struct {
	funcs     Functions
	evaluator Evaluator
}

// NewTable builds a Table. evaluator may be nil, in which case only
// registered functions can be used by function-typed variables.
func NewTable(evaluator Evaluator, funcs Functions) *Table {
	if funcs == nil {
		funcs = Functions{}
	}
	return &Table{funcs: funcs, evaluator: evaluator}
}

// Register adds or replaces a named function.
func (t *Table) Register(name string, fn Func) {
	t.funcs[name] = fn
}

// Parse converts raw text into a value of typ.
//
// Parse failures of string, number, boolean and date do not return an
// error: they yield a value that the matching validator rejects. Object and
// function parsing return ErrMalformedObject and ErrEvaluation respectively.
func (t *Table) Parse(typ Type, raw string, scope Scope) (any, error) {
	switch typ {
	case TypeString:
		return raw, nil
	case TypeNumber:
		return ParseFloat(raw), nil
	case TypeBoolean:
		return parseBoolean(raw), nil
	case TypeDate:
		if d, ok := ParseDate(raw); ok {
			return d, nil
		}
		return nil, nil
	case TypeObject:
		var v any
		if err := json.Unmarshal([]byte(raw), &v); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrMalformedObject, err)
		}
		return v, nil
	case TypeFunction:
		return t.call(raw, scope)
	default:
		return nil, fmt.Errorf("no parser for type %d", typ)
	}
}

// Validate reports whether v is an acceptable value of typ. Function values
// have no validator and are always accepted.
func (t *Table) Validate(typ Type, v any) bool {
	switch typ {
	case TypeString:
		_, ok := v.(string)
		return ok
	case TypeNumber:
		return !isNaN(v)
	case TypeBoolean:
		_, ok := v.(bool)
		return ok
	case TypeDate:
		_, ok := v.(time.Time)
		return ok
	case TypeObject:
		switch v.(type) {
		case map[string]any, []any, time.Time, Func:
			return true
		}
		return false
	case TypeFunction:
		return true
	default:
		return false
	}
}

func (t *Table) call(raw string, scope Scope) (any, error) {
	var vars map[string]any
	if scope != nil {
		vars = scope.Values()
	}

	if fn, ok := t.funcs[raw]; ok {
		v, err := fn(vars)
		if err != nil {
			return nil, fmt.Errorf("%w: function %q: %w", ErrEvaluation, raw, err)
		}
		return v, nil
	}

	if t.evaluator == nil {
		return nil, fmt.Errorf("%w: no function registered as %q", ErrEvaluation, raw)
	}

	v, err := t.evaluator.Eval(raw, vars)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEvaluation, err)
	}
	return v, nil
}

// parseBoolean maps "true" and "false" and nothing else.
func parseBoolean(raw string) any {
	switch raw {
	case "true":
		return true
	case "false":
		return false
	default:
		return nil
	}
}

// isNaN mirrors the coercing isNaN check of the number validator.
func isNaN(v any) bool {
	switch t := v.(type) {
	case float64:
		return math.IsNaN(t)
	case int, int64, bool, nil, time.Time:
		return false
	case string:
		return math.IsNaN(ParseNumber(t))
	case []any:
		switch len(t) {
		case 0:
			return false
		case 1:
			return isNaN(t[0])
		}
		return true
	default:
		return true
	}
}

// Stringify renders v the way it is written back into the environment
// mapping.
func Stringify(v any) string {
	switch t := v.(type) {
	case nil:
		return "null"
	case string:
		return t
	case bool:
		return strconv.FormatBool(t)
	case float64:
		return FormatNumber(t)
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case time.Time:
		return t.Format(time.RFC3339Nano)
	default:
		b, err := json.Marshal(t)
		if err != nil {
			return fmt.Sprint(t)
		}
		return string(b)
	}
}
