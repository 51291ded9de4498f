package filter

import (
	"github.com/s0up4200/golfboard/scoring"
)

var defaultCompiler = NewExprCompiler()

// CompileFilter compiles an expression with the default compiler, or with a
// fresh one when options are given
func CompileFilter(expression string, opts ...ExprCompilerOption) (CompiledFilter, error) {
	if len(opts) == 0 {
		return defaultCompiler.Compile(expression)
	}
	return NewExprCompiler(opts...).Compile(expression)
}

// Apply returns the standings that match f, in their original order.
// Ranks are left untouched so a filtered view keeps overall positions.
// A nil filter returns the standings unchanged.
func Apply(f Filter, standings []scoring.Standing) ([]scoring.Standing, error) {
	if f == nil {
		return standings, nil
	}

	matched := make([]scoring.Standing, 0, len(standings))
	for _, s := range standings {
		ok, err := f.Evaluate(s)
		if err != nil {
			return nil, err
		}
		if ok {
			matched = append(matched, s)
		}
	}
	return matched, nil
}
