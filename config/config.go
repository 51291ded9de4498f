package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/s0up4200/golfboard/golfgenius"
	"github.com/s0up4200/golfboard/report"
	"github.com/s0up4200/golfboard/scoring"
	"github.com/s0up4200/golfboard/season"
)

// EnvPrefix prefixes every environment override, e.g. GOLFBOARD_SEASON_YEAR
const EnvPrefix = "GOLFBOARD"

// flagBindings maps command line flags to configuration keys
var flagBindings = map[string]string{
	"year":       "season.year",
	"min-rounds": "season.min_rounds",
	"format":     "report.format",
}

// LoadDotEnv loads variables from the given .env files into the process
// environment. Missing files are ignored and existing variables win.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, p := range paths {
		if err := godotenv.Load(p); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("error loading %s: %w", p, err)
		}
	}
	return nil
}

// Load loads the configuration from defaults, an optional config file, the
// environment and finally any changed flags in flags (which may be nil).
func Load(configPath string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	// Set default values
	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		// Look for config in standard locations
		v.SetConfigName("config")
		v.SetConfigType("yaml")

		// Check current directory first
		v.AddConfigPath(".")

		// Check home directory
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".golfboard"))
		}

		// Check /etc
		v.AddConfigPath("/etc/golfboard/")
	}

	// Environment overrides
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if err := v.BindEnv("golfgenius.api_key", EnvPrefix+"_GOLFGENIUS_API_KEY", "GOLFGENIUS_API_KEY"); err != nil {
		return nil, fmt.Errorf("error binding environment: %w", err)
	}

	if err := bindFlags(v, flags); err != nil {
		return nil, err
	}

	// Read config file; only an explicitly requested file is mandatory
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configPath != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	cfg.GolfGenius.APIKey = strings.TrimSpace(cfg.GolfGenius.APIKey)

	// Validate configuration
	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

func bindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	if flags == nil {
		return nil
	}
	for name, key := range flagBindings {
		flag := flags.Lookup(name)
		if flag == nil {
			continue
		}
		if err := v.BindPFlag(key, flag); err != nil {
			return fmt.Errorf("error binding flag --%s: %w", name, err)
		}
	}
	return nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// GolfGenius defaults
	v.SetDefault("golfgenius.base_url", golfgenius.DefaultBaseURL)
	v.SetDefault("golfgenius.api_key", "")
	v.SetDefault("golfgenius.timeout", golfgenius.DefaultTimeout)
	v.SetDefault("golfgenius.request_delay", golfgenius.DefaultRequestDelay)

	// Season defaults
	v.SetDefault("season.year", season.DefaultYear)
	v.SetDefault("season.min_rounds", scoring.DefaultMinRounds)

	// Report defaults
	v.SetDefault("report.format", string(report.FormatText))
	v.SetDefault("report.precision", report.DefaultPrecision)
	v.SetDefault("report.show_skipped", true)

	// Metrics defaults
	v.SetDefault("metrics.textfile", "")

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.color", true)
}

// validate checks if the configuration is valid
func validate(cfg *Config) error {
	if cfg.GolfGenius.APIKey == "" || cfg.GolfGenius.APIKey == "your-api-key-here" {
		return ErrMissingAPIKey
	}

	if cfg.GolfGenius.Timeout <= 0 {
		return fmt.Errorf("golfgenius.timeout must be positive")
	}

	if cfg.GolfGenius.RequestDelay < 0 {
		return fmt.Errorf("golfgenius.request_delay must not be negative")
	}

	if cfg.Season.Year < 1900 || cfg.Season.Year > 9999 {
		return fmt.Errorf("invalid season.year: %d", cfg.Season.Year)
	}

	if cfg.Season.MinRounds < 1 {
		return fmt.Errorf("season.min_rounds must be at least 1, got %d", cfg.Season.MinRounds)
	}

	format, err := report.ParseFormat(cfg.Report.Format)
	if err != nil {
		return fmt.Errorf("invalid report.format: %w", err)
	}
	cfg.Report.Format = string(format)

	if cfg.Report.Precision < 0 || cfg.Report.Precision > 6 {
		return fmt.Errorf("report.precision must be between 0 and 6")
	}

	// Validate logging level
	validLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[cfg.Logging.Level] {
		return fmt.Errorf("invalid logging level: %s", cfg.Logging.Level)
	}

	// Validate logging format
	validFormats := map[string]bool{
		"console": true,
		"json":    true,
	}
	if !validFormats[cfg.Logging.Format] {
		return fmt.Errorf("invalid logging format: %s", cfg.Logging.Format)
	}

	return nil
}
