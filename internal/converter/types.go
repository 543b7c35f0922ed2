// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package converter

// Type is the closed set of value types a variable can be coerced to.
type Type int

const (
	TypeString Type = iota + 1
	TypeNumber
	TypeBoolean
	TypeDate
	TypeObject
	TypeFunction
)

var typeNames = map[Type]string{
	TypeString:   "string",
	TypeNumber:   "number",
	TypeBoolean:  "boolean",
	TypeDate:     "date",
	TypeObject:   "object",
	TypeFunction: "function",
}

// String returns the name used for the type in configuration files.
func (t Type) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return "unknown"
}

// ParseType maps a declared or inferred type name onto a Type. The second
// result is false when no converter exists for name.
func ParseType(name string) (Type, bool) {
	for t, n := range typeNames {
		if n == name {
			return t, true
		}
	}
	return 0, false
}

// TypeOf returns the type name inferred from a decoded JSON value, using the
// same rules as JavaScript's typeof: arrays and null are objects.
func TypeOf(v any) string {
	switch v.(type) {
	case string:
		return "string"
	case float64, int, int64:
		return "number"
	case bool:
		return "boolean"
	case Func:
		return "function"
	default:
		return "object"
	}
}
