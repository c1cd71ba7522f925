// Package eval expands computed expressions inside input values before
// they are rendered. Expansion is strictly a producer-side step; the
// encoder itself never evaluates anything.
package eval

import (
	"os"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// Env carries the variables visible to expressions, typically built
// from -e flags.
type Env map[string]any

func exprOpts() []expr.Option {
	return []expr.Option{
		expr.Function("getenv", func(params ...any) (any, error) {
			return os.Getenv(params[0].(string)), nil
		},
			new(func(string) string)),
	}
}

// EvalString compiles and runs one expression against env.
func EvalString(src string, env Env) (any, error) {
	program, err := expr.Compile(src, exprOpts()...)
	if err != nil {
		return nil, err
	}
	return vm.Run(program, map[string]any(env))
}
