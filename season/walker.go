// Package season walks a GolfGenius season from its events down to the
// individual tournament results and feeds every gross score to an aggregator.
package season

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/s0up4200/golfboard/golfgenius"
	"github.com/s0up4200/golfboard/scoring"
)

// DefaultYear is the season processed when none is configured
const DefaultYear = 2025

// Config holds the walker settings
type Config struct {
	SeasonYear int
}

// Skip records a unit of the hierarchy that could not be fetched
type Skip struct {
	Level  Level  `json:"level"`
	Unit   string `json:"unit"`
	Reason string `json:"reason"`
}

// Summary describes what a walk visited
type Summary struct {
	Season      golfgenius.Season
	Events      int
	Rounds      int
	Tournaments int
	Results     int
	Rejected    int
	Skipped     []Skip
}

// Walker resolves a season and collects its results, one request at a time
type Walker struct {
	api    golfgenius.API
	cfg    Config
	logger zerolog.Logger
}

// NewWalker creates a new Walker
func NewWalker(api golfgenius.API, cfg Config, logger zerolog.Logger) *Walker {
	if cfg.SeasonYear == 0 {
		cfg.SeasonYear = DefaultYear
	}
	return &Walker{
		api:    api,
		cfg:    cfg,
		logger: logger,
	}
}

// ResolveSeason returns the first season whose name contains the configured year
func (w *Walker) ResolveSeason(ctx context.Context) (golfgenius.Season, error) {
	year := fmt.Sprintf("%d", w.cfg.SeasonYear)
	w.logger.Info().Int("year", w.cfg.SeasonYear).Msg("Resolving season")

	seasons, err := w.api.GetSeasons(ctx)
	if err != nil {
		return golfgenius.Season{}, &ResolutionError{Year: w.cfg.SeasonYear, Op: "list seasons", Err: err}
	}

	for _, s := range seasons {
		if strings.Contains(s.Name, year) {
			w.logger.Info().
				Str("season_id", s.ID.String()).
				Str("season", s.Name).
				Msg("Found season")
			return s, nil
		}
	}

	return golfgenius.Season{}, &ResolutionError{Year: w.cfg.SeasonYear, Op: "match season name", Err: ErrSeasonNotFound}
}

// Walk resolves the season and adds every result of every tournament to agg.
// Only season and event resolution failures are returned; failures further
// down skip the affected unit and are reported in the Summary.
func (w *Walker) Walk(ctx context.Context, agg *scoring.Aggregator) (*Summary, error) {
	s, err := w.ResolveSeason(ctx)
	if err != nil {
		return nil, err
	}

	summary := &Summary{Season: s}

	events, err := w.api.GetEvents(ctx, s.ID)
	if err != nil {
		return nil, &ResolutionError{Year: w.cfg.SeasonYear, Op: "list events", Err: err}
	}
	w.logger.Info().Int("count", len(events)).Msg("Found events")

	for _, event := range events {
		if err := w.walkEvent(ctx, event, agg, summary); err != nil {
			return nil, err
		}
	}

	w.logger.Info().
		Int("events", summary.Events).
		Int("rounds", summary.Rounds).
		Int("tournaments", summary.Tournaments).
		Int("results", summary.Results).
		Int("rejected", summary.Rejected).
		Int("skipped", len(summary.Skipped)).
		Msg("Season walk complete")

	return summary, nil
}

func (w *Walker) walkEvent(ctx context.Context, event golfgenius.Event, agg *scoring.Aggregator, summary *Summary) error {
	eventName := label(event.Name, "event", event.ID)
	summary.Events++

	log := w.logger.With().Str("event", eventName).Logger()
	log.Info().Msg("Processing event")

	rounds, err := w.api.GetRounds(ctx, event.ID)
	if err != nil {
		w.skip(summary, &FetchError{Level: LevelEvent, Unit: eventName, Err: err})
		return nil
	}
	log.Debug().Int("count", len(rounds)).Msg("Found rounds")

	for _, round := range rounds {
		roundName := eventName + " / " + label(round.Name, "round", round.ID)
		summary.Rounds++

		tournaments, err := w.api.GetTournaments(ctx, event.ID, round.ID)
		if err != nil {
			w.skip(summary, &FetchError{Level: LevelRound, Unit: roundName, Err: err})
			continue
		}
		log.Debug().Str("round", roundName).Int("count", len(tournaments)).Msg("Found tournaments")

		for _, tournament := range tournaments {
			unit := roundName + " / " + label(tournament.Name, "tournament", tournament.ID)

			results, err := w.api.GetTournamentResults(ctx, event.ID, round.ID, tournament.ID)
			if err != nil {
				w.skip(summary, &FetchError{Level: LevelTournament, Unit: unit, Err: err})
				continue
			}
			summary.Tournaments++

			if err := w.addResults(unit, results, agg, summary); err != nil {
				return err
			}
		}
	}

	return nil
}

func (w *Walker) addResults(unit string, results []golfgenius.PlayerResult, agg *scoring.Aggregator, summary *Summary) error {
	accepted := 0
	for _, r := range results {
		err := agg.Add(scoring.Result{
			PlayerID:   r.MemberID.String(),
			Name:       r.Name,
			GrossScore: r.GrossScore.Value,
			HasScore:   r.GrossScore.Valid,
		})

		var aggErr *scoring.AggregationError
		switch {
		case err == nil:
			accepted++
		case errors.As(err, &aggErr):
			summary.Rejected++
			w.logger.Debug().Err(err).Str("tournament", unit).Msg("Skipping result")
		default:
			return fmt.Errorf("failed to add results for %s: %w", unit, err)
		}
	}

	summary.Results += accepted
	if accepted > 0 {
		w.logger.Info().Str("tournament", unit).Int("players", accepted).Msg("Retrieved scores")
	}
	return nil
}

func (w *Walker) skip(summary *Summary, err *FetchError) {
	w.logger.Warn().Err(err.Err).Str("level", string(err.Level)).Str("unit", err.Unit).Msg("Skipping unit")
	summary.Skipped = append(summary.Skipped, Skip{
		Level:  err.Level,
		Unit:   err.Unit,
		Reason: err.Err.Error(),
	})
}

func label(name, kind string, id golfgenius.ID) string {
	if name = strings.TrimSpace(name); name != "" {
		return name
	}
	return kind + " " + id.String()
}
