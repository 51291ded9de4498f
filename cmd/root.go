package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/s0up4200/golfboard/config"
	"github.com/s0up4200/golfboard/golfgenius"
)

var (
	cfgFile string
	cfg     *config.Config
	logger  zerolog.Logger
	runID   string

	version   = "dev"
	buildTime = "unknown"

	// Command flags
	filterExpr string
	preset     string
)

// rootCmd represents the base command; run without a subcommand it prints the leaderboard
var rootCmd = &cobra.Command{
	Use:   "golfboard",
	Short: "Seasonal best-rounds gross leaderboard for GolfGenius clubs",
	Long: `golfboard walks every event, round and tournament of a GolfGenius season,
collects each player's gross scores and ranks players by the average of their
best rounds. Players need at least --min-rounds rounds to qualify.`,
	SilenceUsage: true,
	PreRunE:      initializeApp,
	RunE:         runLeaderboard,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// SetVersion records build information for the version and update commands
func SetVersion(v, built string) {
	version = v
	buildTime = built
	rootCmd.Version = v
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
	rootCmd.PersistentFlags().Int("year", 0, "season year to process (default 2025)")
	rootCmd.PersistentFlags().Int("min-rounds", 0, "rounds needed to qualify and rounds averaged (default 5)")
	rootCmd.PersistentFlags().String("format", "", "report format: text or json")
	rootCmd.PersistentFlags().StringVarP(&filterExpr, "filter", "f", "", "filter expression applied to ranked players")
	rootCmd.PersistentFlags().StringVarP(&preset, "preset", "p", "", "use a preset filter from config")

	// Add subcommands
	rootCmd.AddCommand(testCmd)
	rootCmd.AddCommand(versionCmd)
}

// initializeApp loads .env and the configuration, then sets up logging
func initializeApp(cmd *cobra.Command, args []string) error {
	if err := config.LoadDotEnv(); err != nil {
		return err
	}

	var err error
	cfg, err = config.Load(cfgFile, cmd.Flags())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	runID = uuid.NewString()
	logger = setupLogger(cfg.Logging).With().Str("run_id", runID).Logger()

	return nil
}

// setupLogger configures the zerolog logger
func setupLogger(cfg config.LoggingConfig) zerolog.Logger {
	// Set log level
	level := zerolog.InfoLevel
	switch strings.ToLower(cfg.Level) {
	case "debug":
		level = zerolog.DebugLevel
	case "warn":
		level = zerolog.WarnLevel
	case "error":
		level = zerolog.ErrorLevel
	}

	zerolog.SetGlobalLevel(level)

	// Configure output format
	if cfg.Format == "json" {
		return zerolog.New(os.Stderr).With().Timestamp().Logger()
	}

	// Console format
	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
		NoColor:    !cfg.Color || !stderrIsTerminal(),
	}

	return zerolog.New(output).With().Timestamp().Logger()
}

func stderrIsTerminal() bool {
	fd := os.Stderr.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// newClient builds a GolfGenius client from the loaded configuration
func newClient(cfg *config.Config, log zerolog.Logger, observer golfgenius.Observer) (*golfgenius.Client, error) {
	opts := []golfgenius.Option{
		golfgenius.WithTimeout(cfg.GolfGenius.Timeout),
		golfgenius.WithRequestDelay(cfg.GolfGenius.RequestDelay),
	}
	if observer != nil {
		opts = append(opts, golfgenius.WithObserver(observer))
	}

	client, err := golfgenius.NewClient(cfg.GolfGenius.BaseURL, cfg.GolfGenius.APIKey, log, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create GolfGenius client: %w", err)
	}
	return client, nil
}

// testCmd represents the test command
var testCmd = &cobra.Command{
	Use:     "test",
	Short:   "Test connection to GolfGenius",
	Long:    `Test the API key against GolfGenius and list the seasons it can see.`,
	PreRunE: initializeApp,
	RunE:    runTest,
}

func runTest(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Testing connection to GolfGenius at %s...\n", cfg.GolfGenius.BaseURL)

	client, err := newClient(cfg, logger, nil)
	if err != nil {
		return err
	}

	ctx := context.Background()
	if err := client.TestConnection(ctx); err != nil {
		return fmt.Errorf("connection failed: %w", err)
	}
	fmt.Fprintln(out, "✓ Connection successful!")

	seasons, err := client.GetSeasons(ctx)
	if err != nil {
		return err
	}

	year := fmt.Sprintf("%d", cfg.Season.Year)
	fmt.Fprintf(out, "\nSeasons (%d):\n", len(seasons))
	for _, s := range seasons {
		marker := " "
		if strings.Contains(s.Name, year) {
			marker = "*"
		}
		fmt.Fprintf(out, "  %s %s (ID: %s)\n", marker, s.Name, s.ID)
	}

	return nil
}

// versionCmd prints build information
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "golfboard %s (built %s)\n", version, buildTime)
	},
}
