// Package filter narrows a ranked leaderboard with expr-lang expressions.
package filter

import (
	"maps"
	"slices"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/s0up4200/golfboard/scoring"
)

// exprFilter implements CompiledFilter using the expr language
type exprFilter struct {
	expression string
	program    *vm.Program
	helpers    map[string]any
}

// ExprCompilerOption configures an expr compiler
type ExprCompilerOption func(*exprCompiler)

// WithCustomFunctions adds custom helper functions
func WithCustomFunctions(funcs map[string]any) ExprCompilerOption {
	return func(c *exprCompiler) {
		maps.Copy(c.helperFuncs, funcs)
	}
}

// NewExprCompiler creates a new expr-based filter compiler
func NewExprCompiler(opts ...ExprCompilerOption) Compiler {
	c := &exprCompiler{
		helperFuncs: make(map[string]any),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// exprCompiler implements Compiler for expr-based filters
type exprCompiler struct {
	helperFuncs map[string]any
}

// Compile compiles an expression into an executable filter. Unknown
// identifiers are rejected at compile time.
func (c *exprCompiler) Compile(expression string) (CompiledFilter, error) {
	expression = strings.TrimSpace(expression)
	if expression == "" {
		return nil, &CompilationError{
			Expression: expression,
			Reason:     "empty expression",
		}
	}

	// a zero standing gives the checker every field and helper type
	env := c.environment(scoring.Standing{})

	program, err := expr.Compile(expression,
		expr.Env(env),
		expr.AsBool(),
	)
	if err != nil {
		return nil, &CompilationError{
			Expression: expression,
			Reason:     "failed to compile expression",
			Err:        err,
		}
	}

	return &exprFilter{
		expression: expression,
		program:    program,
		helpers:    c.helperFuncs,
	}, nil
}

func (c *exprCompiler) environment(standing scoring.Standing) map[string]any {
	env := createRuntimeEnvironment(standing)
	maps.Copy(env, c.helperFuncs)
	return env
}

// Evaluate evaluates the filter against a standing
func (f *exprFilter) Evaluate(standing scoring.Standing) (bool, error) {
	env := createRuntimeEnvironment(standing)
	maps.Copy(env, f.helpers)

	result, err := expr.Run(f.program, env)
	if err != nil {
		return false, &EvaluationError{
			Expression: f.expression,
			Player:     standing.Name,
			Err:        err,
		}
	}

	// AsBool guarantees the type
	return result.(bool), nil
}

// Expression returns the original expression
func (f *exprFilter) Expression() string {
	return f.expression
}

// addHelperFunctions adds the standing-independent helpers to env
func addHelperFunctions(env map[string]any) {
	// Case-insensitive string helpers. contains, startsWith and endsWith
	// are operators in expr and cannot be used as function names.
	env["containsFold"] = func(str, substr string) bool {
		return strings.Contains(strings.ToLower(str), strings.ToLower(substr))
	}
	env["startsWithFold"] = func(str, prefix string) bool {
		return strings.HasPrefix(strings.ToLower(str), strings.ToLower(prefix))
	}
	env["endsWithFold"] = func(str, suffix string) bool {
		return strings.HasSuffix(strings.ToLower(str), strings.ToLower(suffix))
	}
	env["lower"] = strings.ToLower
	env["upper"] = strings.ToUpper
}

// createRuntimeEnvironment creates the runtime environment for filter evaluation
func createRuntimeEnvironment(standing scoring.Standing) map[string]any {
	env := make(map[string]any, 16)

	addHelperFunctions(env)

	env["Standing"] = standing

	env["bestScore"] = createBestScoreFunc(standing.Best)
	env["worstScore"] = createWorstScoreFunc(standing.Best)

	// Direct properties for convenience
	env["Name"] = standing.Name
	env["PlayerID"] = standing.PlayerID
	env["Rank"] = standing.Rank
	env["Average"] = standing.Average
	env["Rounds"] = standing.Rounds
	env["Best"] = slices.Clone(standing.Best)

	return env
}

func createBestScoreFunc(best []int) func() int {
	return func() int {
		if len(best) == 0 {
			return 0
		}
		return slices.Min(best)
	}
}

func createWorstScoreFunc(best []int) func() int {
	return func() int {
		if len(best) == 0 {
			return 0
		}
		return slices.Max(best)
	}
}
