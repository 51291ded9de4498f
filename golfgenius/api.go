package golfgenius

import (
	"context"
	"time"
)

// API defines the GolfGenius operations used to walk a season
type API interface {
	// GetSeasons lists every season visible to the API key
	GetSeasons(ctx context.Context) ([]Season, error)

	// GetEvents lists the events of a season
	GetEvents(ctx context.Context, seasonID ID) ([]Event, error)

	// GetRounds lists the rounds of an event
	GetRounds(ctx context.Context, eventID ID) ([]Round, error)

	// GetTournaments lists the tournaments played in an event round
	GetTournaments(ctx context.Context, eventID, roundID ID) ([]Tournament, error)

	// GetTournamentResults returns the individual results of a tournament
	GetTournamentResults(ctx context.Context, eventID, roundID, tournamentID ID) ([]PlayerResult, error)
}

// Observer is notified after every HTTP round trip.
// status is 0 when no response was received.
type Observer interface {
	ObserveRequest(route string, status int, elapsed time.Duration)
}

var _ API = (*Client)(nil)
