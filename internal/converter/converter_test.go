// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package converter

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubEvaluator struct {
	src  string
	vars map[string]any
	out  any
	err  error
}

func (s *stubEvaluator) Eval(src string, vars map[string]any) (any, error) {
	s.src = src
	s.vars = vars
	return s.out, s.err
}

type mapScope map[string]any

func (m mapScope) Values() map[string]any { return m }

// ── Types ─────────────────────────────────────────────────────────────────────

func TestParseType(t *testing.T) {
	for _, typ := range []Type{TypeString, TypeNumber, TypeBoolean, TypeDate, TypeObject, TypeFunction} {
		got, ok := ParseType(typ.String())
		require.True(t, ok, typ.String())
		assert.Equal(t, typ, got)
	}

	for _, name := range []string{"", "int", "String", "array", "null"} {
		_, ok := ParseType(name)
		assert.False(t, ok, name)
	}

	assert.Equal(t, "unknown", Type(0).String())
}

func TestTypeOf(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want string
	}{
		{"string", "x", "string"},
		{"float", 1.5, "number"},
		{"int", 3, "number"},
		{"bool", false, "boolean"},
		{"null", nil, "object"},
		{"array", []any{1.0}, "object"},
		{"map", map[string]any{}, "object"},
		{"func", Func(func(map[string]any) (any, error) { return nil, nil }), "function"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TypeOf(tt.in))
		})
	}
}

// ── Parse ─────────────────────────────────────────────────────────────────────

func TestParse_Scalars(t *testing.T) {
	table := NewTable(nil, nil)

	v, err := table.Parse(TypeString, "hello", nil)
	require.NoError(t, err)
	assert.Equal(t, "hello", v)

	v, err = table.Parse(TypeNumber, "3000", nil)
	require.NoError(t, err)
	assert.Equal(t, 3000.0, v)

	v, err = table.Parse(TypeNumber, "abc", nil)
	require.NoError(t, err)
	assert.True(t, math.IsNaN(v.(float64)))

	v, err = table.Parse(TypeBoolean, "true", nil)
	require.NoError(t, err)
	assert.Equal(t, true, v)

	v, err = table.Parse(TypeBoolean, "false", nil)
	require.NoError(t, err)
	assert.Equal(t, false, v)

	v, err = table.Parse(TypeBoolean, "yes", nil)
	require.NoError(t, err)
	assert.Nil(t, v)

	v, err = table.Parse(TypeDate, "2024-01-02", nil)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC), v)

	v, err = table.Parse(TypeDate, "never", nil)
	require.NoError(t, err)
	assert.Nil(t, v)
}

func TestParse_Object(t *testing.T) {
	table := NewTable(nil, nil)

	v, err := table.Parse(TypeObject, `{"a":1,"b":[true]}`, nil)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"a": 1.0, "b": []any{true}}, v)

	v, err = table.Parse(TypeObject, `null`, nil)
	require.NoError(t, err)
	assert.Nil(t, v)

	_, err = table.Parse(TypeObject, `{"a":`, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMalformedObject)
}

func TestParse_FunctionRegistered(t *testing.T) {
	eval := &stubEvaluator{}
	table := NewTable(eval, Functions{
		"double": func(vars map[string]any) (any, error) {
			return vars["N"].(float64) * 2, nil
		},
	})

	v, err := table.Parse(TypeFunction, "double", mapScope{"N": 21.0})
	require.NoError(t, err)
	assert.Equal(t, 42.0, v)
	assert.Empty(t, eval.src, "registered functions must not reach the evaluator")
}

func TestParse_FunctionRegisterReplaces(t *testing.T) {
	table := NewTable(nil, nil)
	table.Register("f", func(map[string]any) (any, error) { return "one", nil })
	table.Register("f", func(map[string]any) (any, error) { return "two", nil })

	v, err := table.Parse(TypeFunction, "f", nil)
	require.NoError(t, err)
	assert.Equal(t, "two", v)
}

func TestParse_FunctionEvaluator(t *testing.T) {
	eval := &stubEvaluator{out: "ok"}
	table := NewTable(eval, nil)

	v, err := table.Parse(TypeFunction, "upper(NAME)", mapScope{"NAME": "x"})
	require.NoError(t, err)
	assert.Equal(t, "ok", v)
	assert.Equal(t, "upper(NAME)", eval.src)
	assert.Equal(t, map[string]any{"NAME": "x"}, eval.vars)
}

func TestParse_FunctionErrors(t *testing.T) {
	boom := errors.New("boom")

	t.Run("registered function fails", func(t *testing.T) {
		table := NewTable(nil, Functions{"f": func(map[string]any) (any, error) { return nil, boom }})
		_, err := table.Parse(TypeFunction, "f", nil)
		assert.ErrorIs(t, err, ErrEvaluation)
		assert.ErrorIs(t, err, boom)
	})

	t.Run("evaluator fails", func(t *testing.T) {
		table := NewTable(&stubEvaluator{err: boom}, nil)
		_, err := table.Parse(TypeFunction, "1 +", nil)
		assert.ErrorIs(t, err, ErrEvaluation)
		assert.ErrorIs(t, err, boom)
	})

	t.Run("no evaluator", func(t *testing.T) {
		table := NewTable(nil, nil)
		_, err := table.Parse(TypeFunction, "missing", nil)
		assert.ErrorIs(t, err, ErrEvaluation)
	})
}

func TestParse_UnknownType(t *testing.T) {
	_, err := NewTable(nil, nil).Parse(Type(99), "x", nil)
	assert.Error(t, err)
}

// ── Validate ──────────────────────────────────────────────────────────────────

func TestValidate(t *testing.T) {
	table := NewTable(nil, nil)
	fn := Func(func(map[string]any) (any, error) { return nil, nil })
	now := time.Now()

	tests := []struct {
		name string
		typ  Type
		in   any
		want bool
	}{
		{"string accepts string", TypeString, "x", true},
		{"string rejects number", TypeString, 1.0, false},
		{"string rejects nil", TypeString, nil, false},

		{"number accepts float", TypeNumber, 1.5, true},
		{"number rejects NaN", TypeNumber, math.NaN(), false},
		{"number accepts infinity", TypeNumber, math.Inf(1), true},
		{"number accepts numeric string", TypeNumber, "12", true},
		{"number rejects text", TypeNumber, "abc", false},
		{"number accepts bool", TypeNumber, true, true},
		{"number accepts nil", TypeNumber, nil, true},
		{"number accepts empty array", TypeNumber, []any{}, true},
		{"number accepts single numeric array", TypeNumber, []any{"3"}, true},
		{"number rejects longer array", TypeNumber, []any{1.0, 2.0}, false},
		{"number rejects map", TypeNumber, map[string]any{}, false},

		{"boolean accepts bool", TypeBoolean, false, true},
		{"boolean rejects nil", TypeBoolean, nil, false},
		{"boolean rejects string", TypeBoolean, "true", false},

		{"date accepts time", TypeDate, now, true},
		{"date rejects nil", TypeDate, nil, false},
		{"date rejects string", TypeDate, "2024-01-01", false},

		{"object accepts map", TypeObject, map[string]any{"a": 1.0}, true},
		{"object accepts array", TypeObject, []any{}, true},
		{"object accepts date", TypeObject, now, true},
		{"object accepts func", TypeObject, fn, true},
		{"object rejects nil", TypeObject, nil, false},
		{"object rejects string", TypeObject, "{}", false},
		{"object rejects number", TypeObject, 1.0, false},

		{"function accepts anything", TypeFunction, nil, true},
		{"function accepts number", TypeFunction, 1.0, true},

		{"unknown type rejects", Type(0), "x", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, table.Validate(tt.typ, tt.in))
		})
	}
}

// ── Stringify ─────────────────────────────────────────────────────────────────

func TestStringify(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want string
	}{
		{"nil", nil, "null"},
		{"string", "abc", "abc"},
		{"bool", true, "true"},
		{"integral float", 3000.0, "3000"},
		{"fraction", 0.25, "0.25"},
		{"int", 7, "7"},
		{"int64", int64(-9), "-9"},
		{"date", time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC), "2024-01-02T03:04:05Z"},
		{"object", map[string]any{"a": 1.0}, `{"a":1}`},
		{"array", []any{"x", 2.0}, `["x",2]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Stringify(tt.in))
		})
	}
}
