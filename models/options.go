package models

import "math"

// Reserved field names of an options record. Every other field is a
// mode-specific override.
const (
	OptionDefault  = "default"
	OptionType     = "type"
	OptionRequired = "required"
)

// Options is a read-only view over a per-variable declaration.
type Options struct {
	fields map[string]any
}

// OptionsOf builds the options view of a declaration. A JSON object is an
// options record. An array is a record too, but one without fields, so it
// declares no default, type or mode override. Any other value is shorthand
// for {"default": value}.
func OptionsOf(declaration any) Options {
	switch d := declaration.(type) {
	case map[string]any:
		return Options{fields: d}
	case []any:
		return Options{}
	default:
		return Options{fields: map[string]any{OptionDefault: declaration}}
	}
}

// Default returns the default value. JSON null counts as present.
func (o Options) Default() (any, bool) {
	v, ok := o.fields[OptionDefault]
	return v, ok
}

// ForMode returns the override declared for mode. An empty mode never
// matches.
func (o Options) ForMode(mode string) (any, bool) {
	if mode == "" {
		return nil, false
	}
	v, ok := o.fields[mode]
	return v, ok
}

// Type returns the declared type exactly as written, which may not be a
// string at all.
func (o Options) Type() (any, bool) {
	v, ok := o.fields[OptionType]
	return v, ok
}

// Required reports whether the "required" field is truthy.
func (o Options) Required() bool {
	return truthy(o.fields[OptionRequired])
}

func truthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case float64:
		return t != 0 && !math.IsNaN(t)
	case string:
		return t != ""
	default:
		return true
	}
}
