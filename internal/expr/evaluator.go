// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package expr

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
	"github.com/zclconf/go-cty/cty/function/stdlib"
)

// ThisVar is the variable holding the whole namespace as an object.
const ThisVar = "this"

// Evaluator evaluates expressions against a snapshot of the namespace.
type Evaluator struct {
	functions map[string]function.Function
}

// NewEvaluator returns an Evaluator with the default function set.
func NewEvaluator() *Evaluator {
	return &Evaluator{functions: defaultFunctions()}
}

// Eval parses src as a single expression and evaluates it with vars in
// scope. The result is converted to plain Go values: string, float64, bool,
// []any, map[string]any or nil.
func (e *Evaluator) Eval(src string, vars map[string]any) (any, error) {
	expression, diags := hclsyntax.ParseExpression([]byte(src), "expression", hcl.Pos{Line: 1, Column: 1})
	if diags.HasErrors() {
		return nil, fmt.Errorf("error parsing expression: %w", diags)
	}

	val, diags := expression.Value(e.evalContext(vars))
	if diags.HasErrors() {
		return nil, fmt.Errorf("error evaluating expression: %w", diags)
	}

	return ToNative(val)
}

func (e *Evaluator) evalContext(vars map[string]any) *hcl.EvalContext {
	variables := make(map[string]cty.Value, len(vars)+1)
	this := make(map[string]cty.Value, len(vars))

	for name, v := range vars {
		val, err := ToCty(v)
		if err != nil {
			// values with no expression form are visible as null
			val = cty.NullVal(cty.DynamicPseudoType)
		}
		this[name] = val
		if hclsyntax.ValidIdentifier(name) && name != ThisVar {
			variables[name] = val
		}
	}
	variables[ThisVar] = cty.ObjectVal(this)

	return &hcl.EvalContext{
		Variables: variables,
		Functions: e.functions,
	}
}

func defaultFunctions() map[string]function.Function {
	return map[string]function.Function{
		"abs":        stdlib.AbsoluteFunc,
		"coalesce":   stdlib.CoalesceFunc,
		"format":     stdlib.FormatFunc,
		"join":       stdlib.JoinFunc,
		"jsondecode": stdlib.JSONDecodeFunc,
		"jsonencode": stdlib.JSONEncodeFunc,
		"length":     stdlib.LengthFunc,
		"lower":      stdlib.LowerFunc,
		"max":        stdlib.MaxFunc,
		"min":        stdlib.MinFunc,
		"replace":    stdlib.ReplaceFunc,
		"split":      stdlib.SplitFunc,
		"substr":     stdlib.SubstrFunc,
		"tobool":     stdlib.MakeToFunc(cty.Bool),
		"tonumber":   stdlib.MakeToFunc(cty.Number),
		"tostring":   stdlib.MakeToFunc(cty.String),
		"trimspace":  stdlib.TrimSpaceFunc,
		"upper":      stdlib.UpperFunc,
	}
}
