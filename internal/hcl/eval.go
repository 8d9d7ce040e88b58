package hcl

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
	"github.com/zclconf/go-cty/cty/function/stdlib"
)

// newEvalContext returns the evaluation context of one file: the stdlib
// helpers, env() and the config_dir variable.
func newEvalContext(configDir string, lookupEnv func(string) (string, bool)) *hcl.EvalContext {
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"config_dir": cty.StringVal(configDir),
		},
		Functions: map[string]function.Function{
			"env":      envFunc(lookupEnv),
			"concat":   stdlib.ConcatFunc,
			"distinct": stdlib.DistinctFunc,
			"format":   stdlib.FormatFunc,
			"join":     stdlib.JoinFunc,
			"length":   stdlib.LengthFunc,
			"lower":    stdlib.LowerFunc,
			"split":    stdlib.SplitFunc,
			"upper":    stdlib.UpperFunc,
		},
	}
}

// envFunc reads an environment variable. env(name) fails when the variable is
// unset; env(name, default) falls back to default.
func envFunc(lookupEnv func(string) (string, bool)) function.Function {
	if lookupEnv == nil {
		lookupEnv = os.LookupEnv
	}
	return function.New(&function.Spec{
		Params: []function.Parameter{
			{Name: "name", Type: cty.String},
		},
		VarParam: &function.Parameter{Name: "default", Type: cty.String},
		Type:     function.StaticReturnType(cty.String),
		Impl: func(args []cty.Value, _ cty.Type) (cty.Value, error) {
			if len(args) > 2 {
				return cty.NilVal, fmt.Errorf("env takes at most one default, got %d", len(args)-1)
			}
			name := args[0].AsString()
			if v, ok := lookupEnv(name); ok {
				return cty.StringVal(v), nil
			}
			if len(args) == 2 {
				return args[1], nil
			}
			return cty.NilVal, fmt.Errorf("environment variable %q is not set", name)
		},
	})
}
