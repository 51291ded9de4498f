package season

import (
	"errors"
	"fmt"
)

// ErrSeasonNotFound indicates no season name contains the configured year
var ErrSeasonNotFound = errors.New("season not found")

// ResolutionError is fatal: the season or its events could not be resolved
type ResolutionError struct {
	Year int
	Op   string
	Err  error
}

func (e *ResolutionError) Error() string {
	return fmt.Sprintf("failed to resolve season %d: %s: %v", e.Year, e.Op, e.Err)
}

func (e *ResolutionError) Unwrap() error {
	return e.Err
}

// Level identifies which part of the hierarchy a FetchError affected
type Level string

const (
	LevelEvent      Level = "event"
	LevelRound      Level = "round"
	LevelTournament Level = "tournament"
)

// FetchError is recoverable: the affected unit is skipped and the walk continues
type FetchError struct {
	Level Level
	// Unit is a human readable path such as "Spring Medal / Round 1"
	Unit string
	Err  error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("failed to fetch %s %q: %v", e.Level, e.Unit, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}
