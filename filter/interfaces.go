package filter

import (
	"github.com/s0up4200/golfboard/scoring"
)

// Filter defines the basic interface for leaderboard filters
type Filter interface {
	// Evaluate checks if a standing matches the filter criteria
	Evaluate(standing scoring.Standing) (bool, error)
}

// CompiledFilter represents a pre-compiled filter ready for evaluation
type CompiledFilter interface {
	Filter

	// Expression returns the original filter expression
	Expression() string
}

// Compiler compiles filter expressions into executable filters
type Compiler interface {
	// Compile parses and compiles a filter expression
	Compile(expression string) (CompiledFilter, error)
}
