package cmd

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/s0up4200/golfboard/config"
	"github.com/s0up4200/golfboard/filter"
	"github.com/s0up4200/golfboard/metrics"
	"github.com/s0up4200/golfboard/report"
	"github.com/s0up4200/golfboard/scoring"
	"github.com/s0up4200/golfboard/season"
)

// leaderboardCmd is the explicit form of the root command
var leaderboardCmd = &cobra.Command{
	Use:     "leaderboard",
	Aliases: []string{"lb"},
	Short:   "Build and print the season leaderboard",
	Long: `Fetch every tournament result of the configured season and print players
ranked by the average of their best rounds.

Filter examples:
  golfboard leaderboard -f 'Average < 80'
  golfboard leaderboard -f 'containsFold(Name, "smith") and Rounds >= 8'
  golfboard leaderboard -f 'lower(Name) contains "smith"'
  golfboard leaderboard -f 'Rounds > minRounds() and bestScore() < 70'`,
	PreRunE: initializeApp,
	RunE:    runLeaderboard,
}

func init() {
	rootCmd.AddCommand(leaderboardCmd)
}

func runLeaderboard(cmd *cobra.Command, args []string) error {
	expr, err := getFilterExpression(cfg.Filter, filterExpr, preset)
	if err != nil {
		return err
	}

	return buildLeaderboard(context.Background(), cfg, expr, cmd.OutOrStdout(), logger)
}

// buildLeaderboard runs the full pipeline and renders the report to out
func buildLeaderboard(ctx context.Context, cfg *config.Config, expression string, out io.Writer, log zerolog.Logger) (err error) {
	start := time.Now()
	recorder := metrics.NewRecorder()

	defer func() {
		recorder.RecordRun(time.Since(start), err == nil)
		if cfg.Metrics.Textfile == "" {
			return
		}
		if werr := recorder.WriteTextfile(cfg.Metrics.Textfile); werr != nil {
			log.Warn().Err(werr).Str("path", cfg.Metrics.Textfile).Msg("Failed to write metrics")
		}
	}()

	// Validate everything local before the first request
	calc, err := scoring.NewCalculator(cfg.Season.MinRounds)
	if err != nil {
		return err
	}

	var compiled filter.CompiledFilter
	if expression != "" {
		compiled, err = filter.CompileFilter(expression, filter.WithCustomFunctions(map[string]any{
			"minRounds": calc.MinRounds,
		}))
		if err != nil {
			return fmt.Errorf("invalid filter expression: %w", err)
		}
	}

	renderer, err := report.New(report.Format(cfg.Report.Format), report.Options{
		Precision:   cfg.Report.Precision,
		ShowSkipped: cfg.Report.ShowSkipped,
	})
	if err != nil {
		return err
	}

	client, err := newClient(cfg, log, recorder)
	if err != nil {
		return err
	}

	log.Info().
		Int("year", cfg.Season.Year).
		Int("min_rounds", cfg.Season.MinRounds).
		Msg("Starting leaderboard generation")

	walker := season.NewWalker(client, season.Config{SeasonYear: cfg.Season.Year}, log)
	agg := scoring.NewAggregator()

	summary, err := walker.Walk(ctx, agg)
	if err != nil {
		return err
	}
	recorder.RecordWalk(summary)

	snapshot := agg.Finalize()
	standings := calc.Calculate(snapshot)
	recorder.RecordLeaderboard(snapshot.Len(), len(standings))

	log.Info().
		Int("players", snapshot.Len()).
		Int("qualifying", len(standings)).
		Msg("Leaderboard calculated")

	visible, err := filter.Apply(compiled, standings)
	if err != nil {
		return fmt.Errorf("failed to apply filter: %w", err)
	}
	if compiled != nil {
		log.Info().Str("filter", expression).Int("matched", len(visible)).Msg("Filter applied")
	}

	return renderer.Render(out, &report.Report{
		Season:    summary.Season.Name,
		MinRounds: calc.MinRounds(),
		Players:   snapshot.Len(),
		Filter:    expression,
		Standings: visible,
		Skipped:   summary.Skipped,
	})
}

// getFilterExpression determines the filter expression to use.
// An empty result means no filtering.
func getFilterExpression(presets config.FilterConfig, expr, presetName string) (string, error) {
	// Priority: command line filter > preset
	if expr != "" {
		return expr, nil
	}

	if presetName != "" {
		// viper lowercases map keys
		if presetFilter, ok := presets[strings.ToLower(presetName)]; ok {
			return presetFilter, nil
		}
		return "", fmt.Errorf("preset '%s' not found in config", presetName)
	}

	return "", nil
}
