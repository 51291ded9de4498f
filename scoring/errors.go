package scoring

import (
	"errors"
	"fmt"
)

// Common errors
var (
	// ErrFinalized is returned by Add once the aggregator has been finalized
	ErrFinalized = errors.New("aggregator already finalized")
	// ErrMissingName indicates a result without a player name
	ErrMissingName = errors.New("missing player name")
	// ErrMissingScore indicates a result without a usable gross score
	ErrMissingScore = errors.New("missing gross score")
	// ErrInvalidMinRounds indicates a qualifying threshold below one round
	ErrInvalidMinRounds = errors.New("minimum rounds must be at least 1")
)

// AggregationError describes a result record that was rejected
type AggregationError struct {
	PlayerID string
	Name     string
	Err      error
}

func (e *AggregationError) Error() string {
	switch {
	case e.Name != "":
		return fmt.Sprintf("rejected result for %q: %v", e.Name, e.Err)
	case e.PlayerID != "":
		return fmt.Sprintf("rejected result for player %s: %v", e.PlayerID, e.Err)
	default:
		return fmt.Sprintf("rejected result: %v", e.Err)
	}
}

func (e *AggregationError) Unwrap() error {
	return e.Err
}
